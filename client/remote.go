package client

import (
	"context"
	"fmt"
	"log/slog"
	"rblock/pb"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// DefaultTimeout bounds every leaderboard call.
const DefaultTimeout = 2 * time.Second

// Standing is the last leaderboard answer the client got.
type Standing struct {
	// Known is false until the first successful response.
	Known bool
	// Score is the score the rank belongs to.
	Score uint32
	Rank  uint32
	Top   []uint32
}

// RemoteClient submits scores to the leaderboard off the game loop. Only
// the latest pending score is sent, older ones are dropped.
type RemoteClient struct {
	logger  *slog.Logger
	client  pb.ScoreClient
	conn    *grpc.ClientConn
	topK    uint32
	timeout time.Duration
	session string

	// ctx is the parent of every call, Close cancels it.
	ctx       context.Context
	cancel    context.CancelFunc
	submitCh  chan uint32
	updatedCh chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup

	mu       sync.Mutex
	standing Standing
}

func NewRemoteClient(l *slog.Logger, addr string, topK uint32, timeout time.Duration) (*RemoteClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("unable to create gRPC client: %w", err)
	}
	r := newRemoteClient(l, pb.NewScoreClient(conn), topK, timeout)
	r.conn = conn
	return r, nil
}

func newRemoteClient(l *slog.Logger, c pb.ScoreClient, topK uint32, timeout time.Duration) *RemoteClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithCancel(context.Background())
	r := &RemoteClient{
		ctx:       ctx,
		cancel:    cancel,
		logger:    l,
		client:    c,
		topK:      topK,
		timeout:   timeout,
		session:   uuid.NewString(),
		submitCh:  make(chan uint32, 1),
		updatedCh: make(chan struct{}, 1),
	}
	r.wg.Add(1)
	go r.listen()
	return r
}

// Submit queues a score without blocking. A score still waiting to be sent
// is replaced.
func (r *RemoteClient) Submit(score uint32) {
	for {
		select {
		case r.submitCh <- score:
			return
		default:
		}
		select {
		case <-r.submitCh:
		default:
		}
	}
}

// Standing returns a copy of the last known standing.
func (r *RemoteClient) Standing() Standing {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.standing
	s.Top = append([]uint32(nil), r.standing.Top...)
	return s
}

// Updated fires after every successful response.
func (r *RemoteClient) Updated() <-chan struct{} {
	return r.updatedCh
}

func (r *RemoteClient) Close() {
	r.closeOnce.Do(func() {
		r.cancel()
		r.wg.Wait()
		if r.conn != nil {
			if err := r.conn.Close(); err != nil {
				r.logger.Error("unable to close gRPC client", slog.String("error", err.Error()))
			}
		}
	})
}

func (r *RemoteClient) listen() {
	defer r.wg.Done()
	for {
		select {
		case score := <-r.submitCh:
			r.query(score)
		case <-r.ctx.Done():
			return
		}
	}
}

func (r *RemoteClient) query(score uint32) {
	ctx, cancel := context.WithTimeout(r.ctx, r.timeout)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, pb.SessionKey, r.session)

	res, err := r.client.QueryScore(ctx, &pb.ScoreRequest{Score: score, Topk: r.topK})
	if err != nil {
		st, _ := status.FromError(err)
		switch st.Code() {
		case codes.Canceled:
			r.logger.Debug("QueryScore canceled", slog.String("msg", st.Message()))
		case codes.DeadlineExceeded, codes.Unavailable:
			r.logger.Warn("leaderboard unreachable", slog.String("code", st.Code().String()), slog.String("msg", st.Message()))
		default:
			r.logger.Error("unable to query score", slog.String("error", err.Error()))
		}
		return
	}
	if !res.GetSuccess() {
		r.logger.Warn("leaderboard refused score", slog.Uint64("score", uint64(score)))
		return
	}

	r.mu.Lock()
	r.standing = Standing{
		Known: true,
		Score: score,
		Rank:  res.GetRank(),
		Top:   append([]uint32(nil), res.GetScores()...),
	}
	r.mu.Unlock()
	r.logger.Debug("score ranked", slog.Uint64("score", uint64(score)), slog.Uint64("rank", uint64(res.GetRank())))

	select {
	case r.updatedCh <- struct{}{}:
	default:
	}
}
