package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultModel  = "lorenz96"
	DefaultScheme = "heun"
	DefaultDim    = 40
	DefaultSteps  = 10000
	DefaultDt     = 0.001
	DefaultF      = 8.0
	DefaultRate   = 0.1
)

type Config struct {
	Model  string      `yaml:"model"`
	Scheme string      `yaml:"scheme"`
	Dim    int         `yaml:"dim"`
	Steps  int         `yaml:"steps"`
	Dt     float64     `yaml:"dt"`
	Seed   int64       `yaml:"seed"`
	Noise  NoiseConfig `yaml:"noise"`
	Params ParamConfig `yaml:"params"`
}

type NoiseConfig struct {
	Sigma float64 `yaml:"sigma"`
}

type ParamConfig struct {
	F    float64 `yaml:"f"`
	Rate float64 `yaml:"rate"`
	Mean float64 `yaml:"mean"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:  DefaultModel,
		Scheme: DefaultScheme,
		Dim:    DefaultDim,
		Steps:  DefaultSteps,
		Dt:     DefaultDt,
		Params: ParamConfig{
			F:    DefaultF,
			Rate: DefaultRate,
		},
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
