package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-vps-showcase/config"
)

func configureLogging(cfg *config.Config) error {
	level := strings.TrimSpace(cfg.Log.Level)
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Log.Level, err)
	}
	logrus.SetLevel(parsed)
	logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	return nil
}

// muteLogging silences the global logger while a full-screen program owns the terminal.
// The returned func restores stderr output.
func muteLogging() func() {
	logrus.SetOutput(io.Discard)
	return func() {
		logrus.SetOutput(os.Stderr)
	}
}
