package main

import (
	"flag"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"rblock/leaderboard"
	"rblock/server"
	"syscall"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:8020", "address to listen on")
	maxTopK := flag.Uint("max-topk", 100, "largest topk a client may ask for, 0 for no limit")
	debug := flag.Bool("debug", false, "log every recorded score")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	defer lis.Close()

	s := server.NewGRPCServer(logger, leaderboard.New(uint32(*maxTopK))) //nolint:gosec
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		logger.Info("shutting down")
		s.GracefulStop()
	}()

	logger.Info("starting server", slog.String("addr", lis.Addr().String()))
	if err := s.Serve(lis); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
