package logging_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reelscore/internal/config"
	"reelscore/internal/logging"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Logging.Format = "json"
	cfg.Logging.Level = "debug"

	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("hello", "key", "value")

	data, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, "reelscore.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Fatalf("expected JSON log line, got %q", string(data))
	}
}

func TestWithContextTagsRunAndStage(t *testing.T) {
	ctx := logging.WithRunID(context.Background(), "abc123")
	ctx = logging.WithStage(ctx, "cleaning")

	if id, ok := logging.RunIDFromContext(ctx); !ok || id != "abc123" {
		t.Fatalf("unexpected run id: %q (%v)", id, ok)
	}
	if stage, ok := logging.StageFromContext(ctx); !ok || stage != "cleaning" {
		t.Fatalf("unexpected stage: %q (%v)", stage, ok)
	}
	if logger := logging.WithContext(ctx, logging.NewNop()); logger == nil {
		t.Fatal("expected logger")
	}
}
