package logger

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the process-wide zap logger. LOG_MODE=console switches to
// the human-readable encoder for local work.
func NewLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	if os.Getenv("LOG_MODE") == "console" {
		cfg = zap.NewDevelopmentConfig()
	}

	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return l
}
