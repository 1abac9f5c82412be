package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultProblem = "reference"
	DefaultMethod  = "rk4"
	DefaultH       = 0.05
)

// Config describes one solve. XEnd of 0 means the problem's own
// interval end.
type Config struct {
	Problem string     `yaml:"problem"`
	Method  string     `yaml:"method"`
	H       float64    `yaml:"h"`
	CoarseH float64    `yaml:"coarse_h"`
	XEnd    float64    `yaml:"x_end"`
	Init    InitConfig `yaml:"init"`
}

// InitConfig overrides a problem's built-in initial data when Override
// is set; otherwise the registry values are used.
type InitConfig struct {
	Override bool    `yaml:"override"`
	X0       float64 `yaml:"x0"`
	Y0       float64 `yaml:"y0"`
	DY0      float64 `yaml:"dy0"`
}

func DefaultConfig() *Config {
	return &Config{
		Problem: DefaultProblem,
		Method:  DefaultMethod,
		H:       DefaultH,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ComparisonH returns the coarse step used for the Runge estimate,
// defaulting to twice the fine step.
func (c *Config) ComparisonH() float64 {
	if c.CoarseH > 0 {
		return c.CoarseH
	}
	return 2 * c.H
}
