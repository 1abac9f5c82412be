package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Problem != "reference" {
		t.Errorf("expected problem reference, got %s", cfg.Problem)
	}
	if cfg.H <= 0 {
		t.Error("h should be positive")
	}
	if cfg.XEnd != 0 {
		t.Error("default x_end should defer to the problem interval")
	}
}

func TestComparisonH(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.ComparisonH(); got != 2*cfg.H {
		t.Errorf("expected coarse step %g, got %g", 2*cfg.H, got)
	}

	cfg.CoarseH = 0.25
	if got := cfg.ComparisonH(); got != 0.25 {
		t.Errorf("expected explicit coarse step 0.25, got %g", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Problem = "harmonic"
	cfg.Method = "adams3"
	cfg.H = 0.02
	cfg.Init = InitConfig{Override: true, Y0: 0.5, DY0: 1.0}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Problem != "harmonic" || loaded.Method != "adams3" {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	if loaded.H != 0.02 {
		t.Errorf("expected h 0.02, got %g", loaded.H)
	}
	if !loaded.Init.Override || loaded.Init.Y0 != 0.5 {
		t.Errorf("round trip lost init override: %+v", loaded.Init)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("reference", "coarse")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.H != 0.1 {
		t.Errorf("expected h 0.1, got %f", cfg.H)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("reference", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "demo"); cfg != nil {
		t.Error("expected nil for nonexistent problem")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("reference"); len(presets) == 0 {
		t.Error("expected presets for reference")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent problem")
	}
}
