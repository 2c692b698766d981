package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/mixology-sim/sim"
	"github.com/inference-sim/mixology-sim/sim/trace"
	"github.com/inference-sim/mixology-sim/sim/workload"
)

// Report formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var validFormats = map[string]bool{FormatText: true, FormatJSON: true}

// RunConfig is the full run configuration, loadable from a YAML file via --config.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type RunConfig struct {
	Workload   workload.WorkloadSpec `yaml:"workload"`
	Strategies []string              `yaml:"strategies"` // empty = all, in report order
	Format     string                `yaml:"format"`
	Trace      string                `yaml:"trace"`
}

// DefaultRunConfig returns the reference configuration.
func DefaultRunConfig() *RunConfig {
	return &RunConfig{
		Workload: *workload.DefaultWorkloadSpec(),
		Format:   FormatText,
		Trace:    string(trace.TraceLevelNone),
	}
}

// LoadRunConfig parses a YAML run configuration on top of the defaults.
// Uses strict field checking: typos must cause errors.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	cfg := DefaultRunConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing run config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that all fields in the config are valid.
func (c *RunConfig) Validate() error {
	if err := c.Workload.Validate(); err != nil {
		return fmt.Errorf("workload: %w", err)
	}
	if !validFormats[c.Format] {
		return fmt.Errorf("unknown format %q; valid: text, json", c.Format)
	}
	if !trace.IsValidTraceLevel(c.Trace) {
		return fmt.Errorf("unknown trace level %q; valid: none, decisions", c.Trace)
	}
	if _, err := sim.SelectStrategies(c.Strategies); err != nil {
		return err
	}
	return nil
}
