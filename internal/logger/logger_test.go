package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dbsmedya/greenshare/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"debug", "debug"},
		{"info", "info"},
		{"", "info"},
		{"warn", "warn"},
		{"error", "error"},
		{"unknown", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input).String(); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		output  string
		wantErr bool
	}{
		{"stdout", "stdout", false},
		{"stderr", "stderr", false},
		{"default", "", false},
		{"file", filepath.Join(dir, "greenshare.log"), false},
		{"unwritable file", filepath.Join(dir, "missing", "greenshare.log"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(&config.LoggingConfig{Level: "info", Format: "json", Output: tt.output})
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !strings.Contains(err.Error(), "failed to open log file") {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if logger == nil {
				t.Fatal("New() returned nil logger without error")
			}
		})
	}
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	if logger == nil {
		t.Fatal("NewNop() returned nil")
	}
	logger.WithSource("renewables.csv").WithRequest("GET", "/").Error("discarded")
}

func TestContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&config.LoggingConfig{Level: "info", Format: "json"}, &buf)

	logger.WithSource("mysql:renewable_share").WithRequest("GET", "/api/kpis").Infow("Request served", "status", 200)
	_ = logger.Sync()

	out := buf.String()
	for _, want := range []string{
		`"source":"mysql:renewable_share"`,
		`"method":"GET"`,
		`"path":"/api/kpis"`,
		`"status":200`,
		`"msg":"Request served"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s: %s", want, out)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&config.LoggingConfig{Level: "warn", Format: "text"}, &buf)

	logger.Info("Data loaded")
	logger.Warn("Dropped rows without a renewable share")
	_ = logger.Sync()

	out := buf.String()
	if strings.Contains(out, "Data loaded") {
		t.Error("info entry should be filtered at warn level")
	}
	if !strings.Contains(out, "Dropped rows without a renewable share") {
		t.Error("warn entry missing")
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greenshare.log")
	logger, err := New(&config.LoggingConfig{Level: "info", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.WithSource("renewables.csv").Info("Data loaded")
	_ = logger.Sync()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "renewables.csv") {
		t.Errorf("log file should carry source context: %s", content)
	}
}
