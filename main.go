package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"rblock/client"
	"time"

	"github.com/eiannone/keyboard"
	"golang.org/x/term"
)

const (
	hideCursor = "\033[2J\033[?25l" // also clear screen
	showCursor = "\033[26;0H\n\r\033[?25h"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:8020", "leaderboard server address")
	topK := flag.Uint("topk", 10, "number of top scores to ask the leaderboard for")
	noGhost := flag.Bool("noghost", false, "disable ghost piece")
	logFile := flag.String("log", "", "write debug logs to this file")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "seed for the tetromino sequence") //nolint:gosec
	timeout := flag.Duration("timeout", client.DefaultTimeout, "leaderboard request timeout")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) { //nolint:gosec
		log.Fatal("rblock needs an interactive terminal")
	}

	logger := slog.New(slog.DiscardHandler)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("unable to open log file: %v", err)
		}
		defer f.Close()
		logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	c, err := client.New(logger, &client.Options{
		Address: *addr,
		TopK:    uint32(*topK), //nolint:gosec
		NoGhost: *noGhost,
		Seed:    *seed,
		Timeout: *timeout,
	})
	if err != nil {
		log.Fatalf("unable to start rblock: %v", err)
	}
	defer func() {
		if err := keyboard.Close(); err != nil {
			logger.Error("unable to close keyboard", slog.String("error", err.Error()))
		}
	}()

	fmt.Print(hideCursor)
	defer fmt.Print(showCursor)
	c.Start()
}
