// SPDX-License-Identifier: MIT

package worksheet

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/lvopt/branchbound"
	"github.com/katalvlaran/lvopt/graphical"
	"github.com/katalvlaran/lvopt/simplex"
	"github.com/katalvlaran/lvopt/transport"
	"github.com/katalvlaran/lvopt/tsp"
)

// DefaultConfigFile is read when LoadConfig gets an empty path.
const DefaultConfigFile = "optcalc.json"

// Config holds solver settings persisted to optcalc.json.
// Zero values are replaced by the solver defaults in ApplyDefaults.
type Config struct {
	Method        string  `json:"method"`
	BigM          float64 `json:"bigM"`
	MaxIterations int     `json:"maxIterations"`
	Eps           float64 `json:"eps"`
	RecordHistory bool    `json:"recordHistory"`

	DetTol float64 `json:"detTol"`

	IntTol   float64 `json:"intTol"`
	MaxNodes int     `json:"maxNodes"`

	TwoOpt bool `json:"twoOpt"`

	TransportEps float64 `json:"transportEps"`
}

// DefaultConfig returns a Config carrying every solver default.
func DefaultConfig() Config {
	var c Config
	c.ApplyDefaults()

	return c
}

// LoadConfig loads configuration from path, or DefaultConfigFile when path is
// empty. A missing file yields defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.ApplyDefaults()
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	cfg.ApplyDefaults()
	if _, err := simplex.ParseMethod(cfg.Method); err != nil {
		return cfg, fmt.Errorf("config method: %w", err)
	}

	return cfg, nil
}

// ApplyDefaults populates zero values with the solver defaults.
func (c *Config) ApplyDefaults() {
	var (
		sx = simplex.DefaultOptions()
		gr = graphical.DefaultOptions()
		bb = branchbound.DefaultOptions()
		tr = transport.DefaultOptions()
	)
	if c.Method == "" {
		c.Method = sx.Method.String()
	}
	if c.BigM <= 0 {
		c.BigM = sx.BigM
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = sx.MaxIterations
	}
	if c.Eps <= 0 {
		c.Eps = sx.Eps
	}
	if c.DetTol <= 0 {
		c.DetTol = gr.DetTol
	}
	if c.IntTol <= 0 {
		c.IntTol = bb.IntTol
	}
	if c.MaxNodes <= 0 {
		c.MaxNodes = bb.MaxNodes
	}
	if c.TransportEps <= 0 {
		c.TransportEps = tr.Eps
	}
}

// SimplexOptions maps the config onto simplex.Options. A non-empty method
// overrides Config.Method.
func (c Config) SimplexOptions(method string) (simplex.Options, error) {
	if method == "" {
		method = c.Method
	}
	m, err := simplex.ParseMethod(method)
	if err != nil {
		return simplex.Options{}, err
	}

	return simplex.Options{
		Method:        m,
		BigM:          c.BigM,
		MaxIterations: c.MaxIterations,
		Eps:           c.Eps,
		RecordHistory: c.RecordHistory,
	}, nil
}

// GraphicalOptions maps the config onto graphical.Options.
func (c Config) GraphicalOptions() graphical.Options {
	return graphical.Options{Eps: c.Eps, DetTol: c.DetTol}
}

// BranchBoundOptions maps the config onto branchbound.Options.
func (c Config) BranchBoundOptions(method string) (branchbound.Options, error) {
	sx, err := c.SimplexOptions(method)
	if err != nil {
		return branchbound.Options{}, err
	}
	sx.RecordHistory = false

	return branchbound.Options{Simplex: sx, IntTol: c.IntTol, MaxNodes: c.MaxNodes}, nil
}

// TSPOptions maps the config onto tsp.Options for the given start and labels.
func (c Config) TSPOptions(start int, labels []string) tsp.Options {
	o := tsp.DefaultOptions()
	o.StartVertex = start
	o.TwoOpt = c.TwoOpt
	o.Labels = labels

	return o
}

// TransportOptions maps the config onto transport.Options.
func (c Config) TransportOptions() transport.Options {
	return transport.Options{Eps: c.TransportEps}
}
