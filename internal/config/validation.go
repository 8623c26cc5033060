package config

import (
	"fmt"
	"strings"

	"github.com/dbsmedya/greenshare/internal/sqlutil"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, c.validateData()...)

	if c.Data.Driver == "mysql" {
		errors = append(errors, c.validateDatabase("source", &c.Source)...)
	}

	errors = append(errors, c.validateDashboard()...)
	errors = append(errors, c.validateServer()...)
	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateData() ValidationErrors {
	var errors ValidationErrors

	switch c.Data.Driver {
	case "csv":
		if c.Data.Path == "" {
			errors = append(errors, ValidationError{
				Field:   "data.path",
				Message: "path is required when driver is 'csv'",
			})
		}
	case "mysql":
		if !sqlutil.IsValidIdentifier(c.Data.Table) {
			errors = append(errors, ValidationError{
				Field:   "data.table",
				Message: "table must be a plain identifier (letters, digits, underscore)",
			})
		}
		cols := map[string]string{
			"data.columns.country": c.Data.Columns.Country,
			"data.columns.year":    c.Data.Columns.Year,
			"data.columns.share":   c.Data.Columns.Share,
		}
		for field, name := range cols {
			if !sqlutil.IsValidIdentifier(name) {
				errors = append(errors, ValidationError{
					Field:   field,
					Message: "column must be a plain identifier when driver is 'mysql'",
				})
			}
		}
	default:
		errors = append(errors, ValidationError{
			Field:   "data.driver",
			Message: "driver must be 'csv' or 'mysql'",
		})
	}

	if c.Data.Columns.Country == "" {
		errors = append(errors, ValidationError{Field: "data.columns.country", Message: "column name is required"})
	}
	if c.Data.Columns.Year == "" {
		errors = append(errors, ValidationError{Field: "data.columns.year", Message: "column name is required"})
	}
	if c.Data.Columns.Share == "" {
		errors = append(errors, ValidationError{Field: "data.columns.share", Message: "column name is required"})
	}

	return errors
}

func (c *Config) validateDatabase(prefix string, db *DatabaseConfig) ValidationErrors {
	var errors ValidationErrors

	if db.Host == "" {
		errors = append(errors, ValidationError{
			Field:   prefix + ".host",
			Message: "host is required",
		})
	}

	if db.Port <= 0 || db.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".port",
			Message: "port must be between 1 and 65535",
		})
	}

	if db.User == "" {
		errors = append(errors, ValidationError{
			Field:   prefix + ".user",
			Message: "user is required",
		})
	}

	if db.Database == "" {
		errors = append(errors, ValidationError{
			Field:   prefix + ".database",
			Message: "database name is required",
		})
	}

	validTLS := map[string]bool{"disable": true, "preferred": true, "required": true, "": true}
	if !validTLS[db.TLS] {
		errors = append(errors, ValidationError{
			Field:   prefix + ".tls",
			Message: "tls must be 'disable', 'preferred', or 'required'",
		})
	}

	if db.MaxConnections < 0 {
		errors = append(errors, ValidationError{
			Field:   prefix + ".max_connections",
			Message: "max_connections cannot be negative",
		})
	}

	return errors
}

func (c *Config) validateDashboard() ValidationErrors {
	var errors ValidationErrors
	d := c.Dashboard

	if d.EULabel == "" {
		errors = append(errors, ValidationError{
			Field:   "dashboard.eu_label",
			Message: "eu_label is required",
		})
	} else {
		found := false
		for _, l := range d.AggregateLabels {
			if l == d.EULabel {
				found = true
				break
			}
		}
		if !found {
			errors = append(errors, ValidationError{
				Field:   "dashboard.eu_label",
				Message: "eu_label must be one of aggregate_labels",
			})
		}
	}

	if d.LeaderboardSize <= 0 {
		errors = append(errors, ValidationError{
			Field:   "dashboard.leaderboard_size",
			Message: "leaderboard_size must be positive",
		})
	}

	if d.BarScale == "" {
		errors = append(errors, ValidationError{Field: "dashboard.bar_scale", Message: "bar_scale is required"})
	}
	if d.MapScale == "" {
		errors = append(errors, ValidationError{Field: "dashboard.map_scale", Message: "map_scale is required"})
	}

	return errors
}

func (c *Config) validateServer() ValidationErrors {
	var errors ValidationErrors

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   "server.port",
			Message: "port must be between 1 and 65535",
		})
	}

	validModes := map[string]bool{"debug": true, "release": true, "test": true, "": true}
	if !validModes[c.Server.Mode] {
		errors = append(errors, ValidationError{
			Field:   "server.mode",
			Message: "mode must be 'debug', 'release', or 'test'",
		})
	}

	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		errors = append(errors, ValidationError{
			Field:   "server.timeouts",
			Message: "read_timeout and write_timeout cannot be negative",
		})
	}

	for _, origin := range c.Server.AllowedOrigins {
		if origin == "*" || strings.HasPrefix(origin, "http://") || strings.HasPrefix(origin, "https://") {
			continue
		}
		errors = append(errors, ValidationError{
			Field:   "server.allowed_origins",
			Message: fmt.Sprintf("origin %q must be '*' or start with http:// or https://", origin),
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
