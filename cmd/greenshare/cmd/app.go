package cmd

import (
	"context"
	"fmt"

	"github.com/dbsmedya/greenshare/internal/analysis"
	"github.com/dbsmedya/greenshare/internal/config"
	"github.com/dbsmedya/greenshare/internal/dataset"
	"github.com/dbsmedya/greenshare/internal/logger"
	"github.com/dbsmedya/greenshare/internal/source"
)

// app bundles what every command needs.
type app struct {
	cfg   *config.Config
	log   *logger.Logger
	src   source.Source
	cache *source.Cache
}

// loadConfig reads the config file, applies CLI overrides and validates.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	o := GetCLIOverrides()
	cfg.ApplyOverrides(o.DataPath, o.LogLevel, o.LogFormat, o.Port)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newApp wires config, logger, source and cache. Report commands keep stdout
// for their tables, so stdout logging is moved to stderr unless serving.
func newApp(serving bool) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if !serving && (cfg.Logging.Output == "stdout" || cfg.Logging.Output == "") {
		cfg.Logging.Output = "stderr"
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	src, err := source.New(cfg)
	if err != nil {
		return nil, err
	}

	cls := dataset.NewClassifier(cfg.Dashboard.AggregateLabels)
	return &app{
		cfg:   cfg,
		log:   log,
		src:   src,
		cache: source.NewCache(src, cls, log),
	}, nil
}

// snapshot loads the dataset; a failure here is fatal for the command.
func (a *app) snapshot(ctx context.Context) (*analysis.Snapshot, error) {
	snap, err := a.cache.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load data from %s: %w", a.src.Name(), err)
	}
	return snap, nil
}

func (a *app) close() {
	if err := source.Close(a.src); err != nil {
		a.log.Warnw("Failed to close data source", "error", err)
	}
	_ = a.log.Sync()
}

// selectionFlags are shared by the commands that filter.
type selectionFlags struct {
	countries []string
	from      int
	to        int
}

// selection normalises the flags against snap. Unset countries fall back to
// the configured defaults.
func (f *selectionFlags) selection(snap *analysis.Snapshot, defaults []string, countriesSet bool) analysis.NormalizedSelection {
	sel := analysis.Selection{Countries: f.countries, From: f.from, To: f.to}
	if !countriesSet {
		sel.Countries = defaults
	}
	return analysis.NormalizeSelection(sel, snap.Roster, snap.Bounds)
}
