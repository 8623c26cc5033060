package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile   string
	dataPath  string
	logLevel  string
	logFormat string
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "greenshare",
	Short: "EU renewable energy share dashboard",
	Long: `A dashboard over Eurostat renewable energy shares (sdg_07_40) per
country and year.

Features:
  - Country and year range filtering with a line chart per country
  - Headline KPIs: latest EU average, top performer, reporting countries
  - Top 10 leaderboard and choropleth map for the selected year
  - CSV or MySQL input, XLSX export`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadDotEnv()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"Path to configuration file (optional)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "",
		"Override CSV data file path")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable coloured terminal output")
}

// loadDotEnv reads .env from the working directory if present so that
// GREENSHARE_* variables can live next to the data file.
func loadDotEnv() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	DataPath  string
	LogLevel  string
	LogFormat string
	Port      int
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		DataPath:  dataPath,
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Port:      servePort,
	}
}
