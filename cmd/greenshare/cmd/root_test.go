package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecute(t *testing.T) {
	// Execute exits the process on error, only its presence is checked here
	assert.NotNil(t, Execute)
}

func TestVersionVariables(t *testing.T) {
	assert.NotEmpty(t, Version, "Version should not be empty")
	assert.NotEmpty(t, Commit, "Commit should not be empty")
}

func TestCLIFlagsDefaults(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	for name, want := range map[string]string{
		"config":     "",
		"data":       "",
		"log-level":  "",
		"log-format": "",
		"no-color":   "false",
	} {
		f := flags.Lookup(name)
		if assert.NotNil(t, f, "missing flag %s", name) {
			assert.Equal(t, want, f.DefValue, "default of --%s", name)
		}
	}
	assert.Equal(t, "c", flags.Lookup("config").Shorthand)
}

func TestGetConfigFile(t *testing.T) {
	originalCfgFile := cfgFile
	defer func() {
		cfgFile = originalCfgFile
	}()

	tests := []struct {
		name     string
		cfgValue string
		want     string
	}{
		{name: "no config file", cfgValue: "", want: ""},
		{name: "custom config file", cfgValue: "/etc/greenshare/greenshare.yaml", want: "/etc/greenshare/greenshare.yaml"},
		{name: "config file with spaces", cfgValue: "/path/to/my config.yaml", want: "/path/to/my config.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgFile = tt.cfgValue
			assert.Equal(t, tt.want, GetConfigFile())
		})
	}
}

func TestGetCLIOverrides(t *testing.T) {
	defer resetGlobals()

	dataPath = "data.csv"
	logLevel = "debug"
	logFormat = "text"
	servePort = 9000

	assert.Equal(t, CLIOverrides{
		DataPath:  "data.csv",
		LogLevel:  "debug",
		LogFormat: "text",
		Port:      9000,
	}, GetCLIOverrides())
}

func TestCommandsRegistered(t *testing.T) {
	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range []string{"serve", "kpi", "leaderboard", "filter", "export", "validate", "version"} {
		assert.True(t, registered[name], "%s command should be added to root command", name)
	}
}

func TestCommandsDocumented(t *testing.T) {
	for _, c := range []struct {
		name string
		long string
	}{
		{"serve", serveCmd.Long},
		{"kpi", kpiCmd.Long},
		{"leaderboard", leaderboardCmd.Long},
		{"filter", filterCmd.Long},
		{"export", exportCmd.Long},
		{"validate", validateCmd.Long},
	} {
		assert.Contains(t, c.long, "Example:", c.name)
		assert.Contains(t, c.long, "greenshare "+c.name, c.name)
	}
}

func TestCommandFlags(t *testing.T) {
	assert.NotNil(t, serveCmd.Flags().Lookup("port"))
	assert.NotNil(t, leaderboardCmd.Flags().Lookup("year"))
	assert.NotNil(t, leaderboardCmd.Flags().Lookup("top"))
	for _, c := range []string{"country", "from", "to"} {
		assert.NotNil(t, filterCmd.Flags().Lookup(c), "filter --%s", c)
		assert.NotNil(t, exportCmd.Flags().Lookup(c), "export --%s", c)
	}
	out := exportCmd.Flags().Lookup("out")
	if assert.NotNil(t, out) {
		assert.Equal(t, []string{"true"}, out.Annotations["cobra_annotation_bash_completion_one_required_flag"])
	}
	assert.Nil(t, validateCmd.Flags().Lookup("country"))
}
