package app

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML defaults file. Values from the file act
// as defaults only; anything given explicitly on the command line wins.
type FileConfig struct {
	Output  string `yaml:"output"`
	Min     *int   `yaml:"min"`
	Verbose *bool  `yaml:"verbose"`
}

// LoadFileConfig parses the YAML defaults file at path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("config file: %w", err)
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("config file %q: %w", path, err)
	}
	return fc, nil
}

// Apply overlays the file values onto cfg. minSet and outputSet flag
// fields the command line provided explicitly; those are left alone.
func (fc FileConfig) Apply(cfg *Config, minSet, outputSet bool) {
	if fc.Min != nil && !minSet {
		cfg.MinRun = *fc.Min
	}
	if fc.Output != "" && !outputSet {
		cfg.OutputPath = fc.Output
	}
	if fc.Verbose != nil && *fc.Verbose {
		cfg.Verbose = true
	}
}
