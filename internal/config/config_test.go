package config

import (
	"testing"

	"github.com/dbsmedya/greenshare/internal/dataset"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test data defaults
	if cfg.Data.Driver != "csv" {
		t.Errorf("expected data driver 'csv', got %s", cfg.Data.Driver)
	}
	if cfg.Data.Columns.Country != "Country" || cfg.Data.Columns.Year != "Year" || cfg.Data.Columns.Share != "Renewable_Share" {
		t.Errorf("unexpected default columns: %+v", cfg.Data.Columns)
	}

	// Test source defaults
	if cfg.Source.Port != 3306 {
		t.Errorf("expected source port 3306, got %d", cfg.Source.Port)
	}
	if cfg.Source.TLS != "preferred" {
		t.Errorf("expected source TLS 'preferred', got %s", cfg.Source.TLS)
	}

	// Test dashboard defaults
	if cfg.Dashboard.EULabel != dataset.LabelEU27 {
		t.Errorf("expected eu_label %q, got %q", dataset.LabelEU27, cfg.Dashboard.EULabel)
	}
	if len(cfg.Dashboard.AggregateLabels) != 2 {
		t.Errorf("expected 2 aggregate labels, got %d", len(cfg.Dashboard.AggregateLabels))
	}
	want := []string{"Germany", "France", "Sweden"}
	if len(cfg.Dashboard.DefaultCountries) != len(want) {
		t.Fatalf("expected default countries %v, got %v", want, cfg.Dashboard.DefaultCountries)
	}
	for i, c := range want {
		if cfg.Dashboard.DefaultCountries[i] != c {
			t.Errorf("expected default country %d to be %s, got %s", i, c, cfg.Dashboard.DefaultCountries[i])
		}
	}
	if cfg.Dashboard.LeaderboardSize != 10 {
		t.Errorf("expected leaderboard_size 10, got %d", cfg.Dashboard.LeaderboardSize)
	}
	if cfg.Dashboard.BarScale != "Greens" || cfg.Dashboard.MapScale != "YlGn" {
		t.Errorf("unexpected colour scales: bar=%s map=%s", cfg.Dashboard.BarScale, cfg.Dashboard.MapScale)
	}

	// Test server defaults
	if cfg.Server.Port != 8501 {
		t.Errorf("expected server port 8501, got %d", cfg.Server.Port)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected logging level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected logging format 'json', got %s", cfg.Logging.Format)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config to validate, got: %v", err)
	}
}

func TestDefaultConfigIsolated(t *testing.T) {
	a := DefaultConfig()
	b := DefaultConfig()

	a.Dashboard.DefaultCountries[0] = "Austria"
	if b.Dashboard.DefaultCountries[0] != "Germany" {
		t.Error("expected DefaultConfig to return independent slices")
	}
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		cfg  ServerConfig
		want string
	}{
		{ServerConfig{Port: 8501}, ":8501"},
		{ServerConfig{Host: "127.0.0.1", Port: 9000}, "127.0.0.1:9000"},
	}

	for _, tt := range tests {
		if got := tt.cfg.Addr(); got != tt.want {
			t.Errorf("Addr() = %q, expected %q", got, tt.want)
		}
	}
}
