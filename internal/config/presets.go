package config

var Presets = map[string]map[string]*Config{
	"lorenz96": {
		"standard": {
			Model: "lorenz96", Scheme: "heun", Dim: 40, Steps: 10000, Dt: 0.001,
			Params: ParamConfig{F: 8.0},
		},
		"weak": {
			Model: "lorenz96", Scheme: "rk4", Dim: 40, Steps: 10000, Dt: 0.001,
			Params: ParamConfig{F: 5.0},
		},
		"strong": {
			Model: "lorenz96", Scheme: "rk4", Dim: 40, Steps: 20000, Dt: 0.0005,
			Params: ParamConfig{F: 16.0},
		},
		"stochastic": {
			Model: "lorenz96", Scheme: "euler", Dim: 40, Steps: 10000, Dt: 0.001,
			Noise:  NoiseConfig{Sigma: 0.3},
			Params: ParamConfig{F: 8.0},
		},
	},
	"meanrev": {
		"decay": {
			Model: "meanrev", Scheme: "rk4", Dim: 1, Steps: 1000, Dt: 0.01,
			Params: ParamConfig{Rate: 0.1},
		},
		"noisy": {
			Model: "meanrev", Scheme: "euler", Dim: 1, Steps: 10000, Dt: 0.01,
			Noise:  NoiseConfig{Sigma: 0.2},
			Params: ParamConfig{Rate: 0.1},
		},
		"fast": {
			Model: "meanrev", Scheme: "heun", Dim: 1, Steps: 500, Dt: 0.005,
			Params: ParamConfig{Rate: 1.0},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
