package config

var Presets = map[string]map[string]*Config{
	"reference": {
		"demo": {
			Problem: "reference", Method: "rk4", H: 0.05, XEnd: 1.0,
		},
		"coarse": {
			Problem: "reference", Method: "rk4", H: 0.1, XEnd: 1.0,
		},
		"fine": {
			Problem: "reference", Method: "rk4", H: 0.01, XEnd: 1.0,
		},
		"euler": {
			Problem: "reference", Method: "euler", H: 0.05, XEnd: 1.0,
		},
	},
	"harmonic": {
		"period": {
			Problem: "harmonic", Method: "rk4", H: 0.01, XEnd: 6.283185307179586,
		},
		"adams": {
			Problem: "harmonic", Method: "adams3", H: 0.01, XEnd: 6.283185307179586,
		},
	},
	"damped": {
		"decay": {
			Problem: "damped", Method: "rk4", H: 0.01, XEnd: 5.0,
		},
	},
	"vanderpol": {
		"cycle": {
			Problem: "vanderpol", Method: "rk4", H: 0.005, XEnd: 10.0,
		},
	},
}

func GetPreset(problem, preset string) *Config {
	problemPresets, ok := Presets[problem]
	if !ok {
		return nil
	}
	cfg, ok := problemPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(problem string) []string {
	problemPresets, ok := Presets[problem]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(problemPresets))
	for name := range problemPresets {
		names = append(names, name)
	}
	return names
}
