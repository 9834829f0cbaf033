package conway

import (
	"strconv"

	"conway/pkg/life"
)

// Config controls the board the sim is built with.
type Config struct {
	Width   int
	Height  int
	Workers int
	// Pattern, when set, is stamped in the middle of the board on Reset
	// instead of randomizing it.
	Pattern string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 30, Height: 15, Workers: life.DefaultWorkers}
}

// FromMap populates a Config from a string map.
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
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		if _, known := life.LookupPattern(v); known {
			c.Pattern = v
		}
	}
	return c
}
