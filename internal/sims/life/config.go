package life

import (
	"strconv"
	"strings"

	"torlife/internal/core"
)

// Config describes a Life-family rule as the neighbor counts that birth a
// dead cell and keep a live cell alive.
type Config struct {
	Birth   []int
	Survive []int
}

// DefaultConfig returns the standard Conway rule (B3/S23).
func DefaultConfig() Config {
	return Config{Birth: []int{3}, Survive: []int{2, 3}}
}

// HighLifeConfig returns the HighLife variant (B36/S23).
func HighLifeConfig() Config {
	return Config{Birth: []int{3, 6}, Survive: []int{2, 3}}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Count lists are comma-separated, e.g. "birth": "3,6"; an empty string is an
// empty list. Unparseable values keep the default.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["birth"]; ok {
		if counts, ok := parseCounts(v); ok {
			c.Birth = counts
		}
	}
	if v, ok := cfg["survive"]; ok {
		if counts, ok := parseCounts(v); ok {
			c.Survive = counts
		}
	}
	return c
}

func parseCounts(v string) ([]int, bool) {
	if strings.TrimSpace(v) == "" {
		return nil, true
	}
	var counts []int
	for _, part := range strings.Split(v, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 8 {
			return nil, false
		}
		counts = append(counts, n)
	}
	return counts, true
}

// StepFunc builds the step function implementing the configured rule.
func (c Config) StepFunc() core.StepFunc {
	var birth, survive [9]bool
	for _, n := range c.Birth {
		if n >= 0 && n <= 8 {
			birth[n] = true
		}
	}
	for _, n := range c.Survive {
		if n >= 0 && n <= 8 {
			survive[n] = true
		}
	}
	return stepFunc(func(alive bool, neighbors int) bool {
		if alive {
			return survive[neighbors]
		}
		return birth[neighbors]
	})
}
