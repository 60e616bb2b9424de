package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML MathCatchConfig
	if err := yaml.Unmarshal(GetDefaultYAML("mathcatch"), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if fromYAML != DefaultMathCatchConfig() {
		t.Errorf("embedded defaults differ from DefaultMathCatchConfig:\n%+v\n%+v", fromYAML, DefaultMathCatchConfig())
	}
}

func TestLoadMathCatchCustomPathOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("spawn:\n  max_symbols: 4\ngameplay:\n  lives: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMathCatch(path)
	if err != nil {
		t.Fatalf("LoadMathCatch() error = %v", err)
	}

	if cfg.Spawn.MaxSymbols != 4 || cfg.Gameplay.Lives != 5 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Unspecified keys keep defaults
	if cfg.Spawn.DelayMs != 800 || cfg.Field.Columns != 10 {
		t.Errorf("defaults lost in overlay: %+v", cfg)
	}
}

func TestLoadMathCatchMissingFile(t *testing.T) {
	_, err := LoadMathCatch(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadMathCatchInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte("field:\n  columns: 0\nspawn:\n  digit_chance: 1.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadMathCatch(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "field.columns") || !strings.Contains(msg, "digit_chance") {
		t.Errorf("error should list every problem, got %q", msg)
	}
}

func TestValidateCatcherWiderThanField(t *testing.T) {
	cfg := DefaultMathCatchConfig()
	cfg.Catcher.Width = cfg.Field.Width + 1
	if err := cfg.Validate(); err == nil {
		t.Error("catcher wider than field should be rejected")
	}
}

func TestColumnWidth(t *testing.T) {
	if w := DefaultMathCatchConfig().ColumnWidth(); w != 80 {
		t.Errorf("ColumnWidth() = %v, expected 80", w)
	}
}

func TestMarshalRoundTripsDefaults(t *testing.T) {
	data, err := Marshal(DefaultMathCatchConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "max_symbols: 10") {
		t.Errorf("marshalled config missing keys:\n%s", data)
	}
}
