package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lexicam/internal/config"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicam.log")
	logger, err := New(config.LogConfig{File: path, Level: config.LogInfo})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("detect ok")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"msg":"detect ok"`) {
		t.Errorf("log output missing info entry: %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry written at info level: %s", out)
	}
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(config.LogConfig{File: filepath.Join(t.TempDir(), "x.log"), Level: "chatty"})
	if err == nil {
		t.Fatal("expected error for unknown level")
	}
}
