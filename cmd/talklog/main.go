package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/kotonoha-lab/talklog/internal/api"
	"github.com/kotonoha-lab/talklog/internal/config"
	"github.com/kotonoha-lab/talklog/internal/sentiment"
	"github.com/kotonoha-lab/talklog/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("talklog starting", "port", cfg.Port)

	st := store.New()

	classifier := sentiment.New(cfg.SentimentLexicon)
	if cfg.SentimentLexicon != "" {
		slog.Info("sentiment lexicon override", "path", cfg.SentimentLexicon)
	}

	srv := api.NewServer(cfg, st, classifier)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("talklog ready", "port", cfg.Port, "session_gap", cfg.SessionGap)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("talklog stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
