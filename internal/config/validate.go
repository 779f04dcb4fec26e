package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidationError collects multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// validate checks the config for internal consistency and returns a
// ValidationError if any checks fail. All checks run; errors are collected,
// not short-circuited.
func validate(cfg *Config) error {
	var errs []string

	switch cfg.Source.Kind {
	case SourceDemo:
	case SourceFile:
		if cfg.Source.Path == "" {
			errs = append(errs, "source.path is required when source.kind is \"file\"")
		} else {
			switch strings.ToLower(filepath.Ext(cfg.Source.Path)) {
			case ".yaml", ".yml", ".json":
			default:
				errs = append(errs, fmt.Sprintf("source.path %q must end in .yaml, .yml or .json", cfg.Source.Path))
			}
		}
	default:
		errs = append(errs, fmt.Sprintf("source.kind %q must be \"demo\" or \"file\"", cfg.Source.Kind))
	}

	if cfg.Source.RefreshInterval <= 0 {
		errs = append(errs, "source.refresh_interval must be positive")
	}
	if cfg.Source.Timeout <= 0 {
		errs = append(errs, "source.timeout must be positive")
	}
	if cfg.UI.TileWidth <= 0 {
		errs = append(errs, "ui.tile_width must be positive")
	}
	if cfg.UI.Margin() < 0 {
		errs = append(errs, "ui.tile_margin must not be negative")
	}
	if cfg.UI.RelabelInterval <= 0 {
		errs = append(errs, "ui.relabel_interval must be positive")
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
