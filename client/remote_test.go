package client

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"rblock/leaderboard"
	"rblock/pb"
	"rblock/server"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

func testLeaderboard(store *leaderboard.Store) (pb.ScoreClient, func()) {
	lis := bufconn.Listen(1024 * 1024)
	s := server.NewGRPCServer(slog.New(slog.DiscardHandler), store)
	go func() {
		if err := s.Serve(lis); err != nil {
			log.Printf("unable to serve: %v", err)
		}
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet", grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
		return lis.Dial()
	}), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Printf("error connecting to server: %v", err)
	}

	return pb.NewScoreClient(conn), func() {
		conn.Close()
		s.Stop()
	}
}

func waitStanding(t *testing.T, r *RemoteClient) Standing {
	t.Helper()
	select {
	case <-r.Updated():
		return r.Standing()
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for a leaderboard answer")
	}
	return Standing{}
}

func TestRemoteClient(t *testing.T) {
	store := leaderboard.New(0)
	for _, s := range []uint32{50, 30} {
		if _, err := store.Submit(s, 0); err != nil {
			t.Fatalf("unable to seed store: %v", err)
		}
	}
	c, closer := testLeaderboard(store)
	defer closer()

	r := newRemoteClient(slog.New(slog.DiscardHandler), c, 2, time.Second)
	defer r.Close()

	if got := r.Standing(); got.Known {
		t.Fatalf("wanted an unknown standing before any answer, got %+v", got)
	}

	r.Submit(40)
	got := waitStanding(t, r)
	if !got.Known || got.Score != 40 || got.Rank != 1 {
		t.Errorf("wanted score 40 at rank 1, got %+v", got)
	}
	if len(got.Top) != 2 || got.Top[0] != 50 || got.Top[1] != 40 {
		t.Errorf("wanted top [50 40], got %v", got.Top)
	}

	// a tie shares the best rank.
	r.Submit(50)
	got = waitStanding(t, r)
	if got.Rank != 0 {
		t.Errorf("wanted rank 0 for a tie, got %d", got.Rank)
	}
	if store.Len() != 4 {
		t.Errorf("wanted 4 recorded scores, got %d", store.Len())
	}
}

func TestRemoteClientStandingIsACopy(t *testing.T) {
	c, closer := testLeaderboard(leaderboard.New(0))
	defer closer()
	r := newRemoteClient(slog.New(slog.DiscardHandler), c, 5, time.Second)
	defer r.Close()

	r.Submit(7)
	got := waitStanding(t, r)
	got.Top[0] = 1000
	if r.Standing().Top[0] != 7 {
		t.Errorf("wanted the cached standing to be untouched")
	}
}

func TestRemoteClientKeepsLastStanding(t *testing.T) {
	c, closer := testLeaderboard(leaderboard.New(3))
	defer closer()
	r := newRemoteClient(slog.New(slog.DiscardHandler), c, 3, time.Second)
	defer r.Close()

	r.Submit(12)
	want := waitStanding(t, r)

	// an invalid request fails, the previous answer stays.
	r.topK = 4
	r.Submit(99)
	select {
	case <-r.Updated():
		t.Fatalf("wanted no update for a failed request")
	case <-time.After(50 * time.Millisecond):
	}
	if got := r.Standing(); got.Score != want.Score || got.Rank != want.Rank {
		t.Errorf("wanted standing %+v, got %+v", want, got)
	}
}

func TestRemoteClientUnreachable(t *testing.T) {
	r, err := NewRemoteClient(slog.New(slog.DiscardHandler), "passthrough:///127.0.0.1:1", 10, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("unable to create client: %v", err)
	}
	defer r.Close()

	r.Submit(3)
	select {
	case <-r.Updated():
		t.Fatalf("wanted no update from an unreachable leaderboard")
	case <-time.After(200 * time.Millisecond):
	}
	if r.Standing().Known {
		t.Errorf("wanted the rank to stay unknown")
	}
}

func TestRemoteClientSubmitNeverBlocks(t *testing.T) {
	blocked := make(chan struct{})
	r := newRemoteClient(slog.New(slog.DiscardHandler), &stuckClient{release: blocked}, 1, time.Second)
	defer r.Close()
	defer close(blocked)

	done := make(chan struct{})
	go func() {
		for i := range 100 {
			r.Submit(uint32(i)) //nolint:gosec
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Submit blocked on a slow leaderboard")
	}
}

func TestRemoteClientCloseCancelsCall(t *testing.T) {
	sc := &stuckClient{release: make(chan struct{}), started: make(chan struct{}, 1), errCh: make(chan error, 1)}
	r := newRemoteClient(slog.New(slog.DiscardHandler), sc, 1, time.Minute)

	r.Submit(5)
	select {
	case <-sc.started:
	case <-time.After(time.Second):
		t.Fatalf("timeout waiting for the call to start")
	}

	closed := make(chan struct{})
	go func() { r.Close(); close(closed) }()
	select {
	case <-closed:
	case <-time.After(time.Second):
		t.Fatalf("Close waited on a call it should have canceled")
	}
	if err := <-sc.errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("wanted the call to be canceled, got %v", err)
	}
	r.Close()
}

// stuckClient answers only once release is closed.
type stuckClient struct {
	release chan struct{}
	started chan struct{}
	errCh   chan error
}

func (s *stuckClient) QueryScore(ctx context.Context, _ *pb.ScoreRequest, _ ...grpc.CallOption) (*pb.ScoreResponse, error) {
	if s.started != nil {
		select {
		case s.started <- struct{}{}:
		default:
		}
	}
	select {
	case <-s.release:
	case <-ctx.Done():
		if s.errCh != nil {
			s.errCh <- ctx.Err()
		}
		return nil, ctx.Err()
	}
	return &pb.ScoreResponse{Success: true}, nil
}
