// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sunfmin/mcp-go-calculator/pkg/calculator"
	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
)

const (
	EnvDebug             = "CALC_DEBUG"
	EnvDivisionPrecision = "CALC_DIVISION_PRECISION"
)

// Config holds settings shared by the CLI and the MCP server.
type Config struct {
	Debug             bool
	DivisionPrecision int
}

// Load builds a Config from the process environment.
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config using lookup to read variables.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{DivisionPrecision: calculator.DefaultDivisionPrecision}

	if v, ok := lookup(EnvDebug); ok {
		cfg.Debug = logger.DebugEnabled(v)
	}

	if v, ok := lookup(EnvDivisionPrecision); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvDivisionPrecision, v, err)
		}
		if n < 1 {
			return cfg, fmt.Errorf("invalid %s %q: must be at least 1", EnvDivisionPrecision, v)
		}
		cfg.DivisionPrecision = n
	}
	return cfg, nil
}

// Apply pushes the settings into the calculator package.
func (c Config) Apply() {
	calculator.SetDivisionPrecision(c.DivisionPrecision)
}
