package life

import (
	"fmt"
	"strconv"

	"lifegrid/pkg/core"
)

// Config holds parameters for the Life simulation.
type Config struct {
	Width  int
	Height int

	Seed    int64
	Workers int

	Pattern  string
	Density  float64
	PatternX int
	PatternY int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Width:   50,
		Height:  50,
		Seed:    42,
		Workers: 1,
		Pattern: PatternRandom,
		Density: 0.5,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		if _, known := lookupPattern(v); known {
			c.Pattern = v
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["pattern-x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.PatternX = parsed
		}
	}
	if v, ok := cfg["pattern-y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.PatternY = parsed
		}
	}
	return c
}

// Validate reports the first setting that cannot produce a runnable grid.
func (c Config) Validate() error {
	if _, err := core.CheckedArea(c.Width, c.Height); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if _, ok := lookupPattern(c.Pattern); !ok {
		return fmt.Errorf("unknown pattern %q", c.Pattern)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density %v outside [0, 1]", c.Density)
	}
	return nil
}
