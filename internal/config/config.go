package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port             int
	LogLevel         string
	SessionGap       time.Duration
	BurstWindow      time.Duration
	MinTokenLength   int
	TopWords         int
	MaxUploadBytes   int64
	SentimentLexicon string
}

func Load() Config {
	return Config{
		Port:             envInt("TALKLOG_PORT", 8690),
		LogLevel:         envStr("LOG_LEVEL", "info"),
		SessionGap:       envDuration("TALKLOG_SESSION_GAP", time.Hour),
		BurstWindow:      envDuration("TALKLOG_BURST_WINDOW", 30*time.Minute),
		MinTokenLength:   envInt("TALKLOG_MIN_TOKEN_LEN", 2),
		TopWords:         envInt("TALKLOG_TOP_WORDS", 30),
		MaxUploadBytes:   envInt64("TALKLOG_MAX_UPLOAD_BYTES", 10*1024*1024),
		SentimentLexicon: envStr("TALKLOG_SENTIMENT_LEXICON", ""),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
