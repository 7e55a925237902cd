package server

import (
	"context"
	"errors"
	"log/slog"
	"rblock/leaderboard"
	"rblock/pb"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type scoreServer struct {
	pb.UnimplementedScoreServer
	store  *leaderboard.Store
	logger *slog.Logger
}

func New(l *slog.Logger, s *leaderboard.Store) pb.ScoreServer {
	return &scoreServer{store: s, logger: l}
}

// NewGRPCServer returns a gRPC server with the Score service registered and
// every call logged.
func NewGRPCServer(l *slog.Logger, s *leaderboard.Store) *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(loggingInterceptor(l)))
	pb.RegisterScoreServer(srv, New(l, s))
	return srv
}

func (s *scoreServer) QueryScore(_ context.Context, req *pb.ScoreRequest) (*pb.ScoreResponse, error) {
	res, err := s.store.Submit(req.GetScore(), req.GetTopk())
	if err != nil {
		if errors.Is(err, leaderboard.ErrTopKTooLarge) {
			return nil, status.Errorf(codes.InvalidArgument, "topk %d: %v", req.GetTopk(), err)
		}
		return nil, status.Errorf(codes.Internal, "failed to record score: %v", err)
	}
	s.logger.Debug("score recorded",
		slog.String("entry", res.ID.String()),
		slog.Uint64("score", uint64(req.GetScore())),
		slog.Uint64("rank", uint64(res.Rank)),
	)
	return &pb.ScoreResponse{
		Success: true,
		Rank:    res.Rank,
		Scores:  res.Top,
	}, nil
}

func loggingInterceptor(l *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		attrs := []any{
			slog.String("request_id", uuid.New().String()),
			slog.String("method", info.FullMethod),
		}
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if v := md.Get(pb.SessionKey); len(v) > 0 {
				attrs = append(attrs, slog.String("session", v[0]))
			}
		}

		resp, err := handler(ctx, req)

		attrs = append(attrs,
			slog.String("code", status.Code(err).String()),
			slog.Duration("took", time.Since(start)),
		)
		if err != nil {
			l.Warn("rpc failed", append(attrs, slog.String("error", err.Error()))...)
			return resp, err
		}
		l.Info("rpc", attrs...)
		return resp, nil
	}
}
