// Package config provides configuration structures and loading for greenshare.
package config

import "github.com/dbsmedya/greenshare/internal/dataset"

// Config represents the complete application configuration.
type Config struct {
	Data      DataConfig      `yaml:"data" mapstructure:"data"`
	Source    DatabaseConfig  `yaml:"source" mapstructure:"source"`
	Dashboard DashboardConfig `yaml:"dashboard" mapstructure:"dashboard"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Logging   LoggingConfig   `yaml:"logging" mapstructure:"logging"`
}

// DataConfig describes where the renewable share table comes from.
type DataConfig struct {
	Driver  string        `yaml:"driver" mapstructure:"driver"` // csv or mysql
	Path    string        `yaml:"path" mapstructure:"path"`     // CSV file, when driver is csv
	Table   string        `yaml:"table" mapstructure:"table"`   // table name, when driver is mysql
	Columns ColumnsConfig `yaml:"columns" mapstructure:"columns"`
}

// ColumnsConfig maps the three columns the dashboard needs to their source names.
type ColumnsConfig struct {
	Country string `yaml:"country" mapstructure:"country"`
	Year    string `yaml:"year" mapstructure:"year"`
	Share   string `yaml:"share" mapstructure:"share"`
}

// DatabaseConfig represents a MySQL connection used when data.driver is mysql.
type DatabaseConfig struct {
	Host               string `yaml:"host" mapstructure:"host"`
	Port               int    `yaml:"port" mapstructure:"port"`
	User               string `yaml:"user" mapstructure:"user"`
	Password           string `yaml:"password" mapstructure:"password"`
	Database           string `yaml:"database" mapstructure:"database"`
	TLS                string `yaml:"tls" mapstructure:"tls"` // disable, preferred, required
	MaxConnections     int    `yaml:"max_connections" mapstructure:"max_connections"`
	MaxIdleConnections int    `yaml:"max_idle_connections" mapstructure:"max_idle_connections"`
}

// DashboardConfig controls what the dashboard shows.
type DashboardConfig struct {
	Title            string   `yaml:"title" mapstructure:"title"`
	AggregateLabels  []string `yaml:"aggregate_labels" mapstructure:"aggregate_labels"`
	EULabel          string   `yaml:"eu_label" mapstructure:"eu_label"`
	DefaultCountries []string `yaml:"default_countries" mapstructure:"default_countries"`
	LeaderboardSize  int      `yaml:"leaderboard_size" mapstructure:"leaderboard_size"`
	BarScale         string   `yaml:"bar_scale" mapstructure:"bar_scale"` // ColorBrewer sequential palette
	MapScale         string   `yaml:"map_scale" mapstructure:"map_scale"`
	SourceNote       string   `yaml:"source_note" mapstructure:"source_note"`
}

// ServerConfig represents the HTTP server settings.
type ServerConfig struct {
	Host           string   `yaml:"host" mapstructure:"host"`
	Port           int      `yaml:"port" mapstructure:"port"`
	Mode           string   `yaml:"mode" mapstructure:"mode"` // debug, release, test
	ReadTimeout    int      `yaml:"read_timeout" mapstructure:"read_timeout"`   // seconds
	WriteTimeout   int      `yaml:"write_timeout" mapstructure:"write_timeout"` // seconds
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Driver: "csv",
			Path:   "cleaned_renewable_data.csv",
			Table:  "renewable_share",
			Columns: ColumnsConfig{
				Country: "Country",
				Year:    "Year",
				Share:   "Renewable_Share",
			},
		},
		Source: DatabaseConfig{
			Port:               3306,
			TLS:                "preferred",
			MaxConnections:     5,
			MaxIdleConnections: 2,
		},
		Dashboard: DashboardConfig{
			Title:            "Renewable Energy Transition in Europe",
			AggregateLabels:  dataset.DefaultAggregateLabels(),
			EULabel:          dataset.LabelEU27,
			DefaultCountries: []string{"Germany", "France", "Sweden"},
			LeaderboardSize:  10,
			BarScale:         "Greens",
			MapScale:         "YlGn",
			SourceNote:       "Data Source: Eurostat (sdg_07_40)",
		},
		Server: ServerConfig{
			Host:           "",
			Port:           8501,
			Mode:           "release",
			ReadTimeout:    5,
			WriteTimeout:   10,
			AllowedOrigins: []string{"http://localhost:8501"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}
