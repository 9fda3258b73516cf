package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var tunnel TunnelConfig
	if err := yaml.Unmarshal(GetDefaultYAML("tunnel"), &tunnel); err != nil {
		t.Fatalf("tunnel.yaml: %v", err)
	}
	want := DefaultTunnelConfig()
	if tunnel.Layout != want.Layout || tunnel.MaxDepth != want.MaxDepth || tunnel.Intro != want.Intro {
		t.Errorf("tunnel.yaml = %+v, expected %+v", tunnel, want)
	}

	var fishing FishingConfig
	if err := yaml.Unmarshal(GetDefaultYAML("fishing"), &fishing); err != nil {
		t.Fatalf("fishing.yaml: %v", err)
	}
	if fishing != DefaultFishingConfig() {
		t.Errorf("fishing.yaml = %+v, expected %+v", fishing, DefaultFishingConfig())
	}

	var steps FootstepsConfig
	if err := yaml.Unmarshal(GetDefaultYAML("footsteps"), &steps); err != nil {
		t.Fatalf("footsteps.yaml: %v", err)
	}
	if steps != DefaultFootstepsConfig() {
		t.Errorf("footsteps.yaml = %+v", steps)
	}

	var tiger TigerConfig
	if err := yaml.Unmarshal(GetDefaultYAML("tiger"), &tiger); err != nil {
		t.Fatalf("tiger.yaml: %v", err)
	}
	if tiger != DefaultTigerConfig() {
		t.Errorf("tiger.yaml = %+v", tiger)
	}

	if GetDefaultYAML("unknown") != nil {
		t.Error("unknown game should have no defaults")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "footsteps.yaml")
	if err := os.WriteFile(path, []byte("board_size: 8\nstarting_energy: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFootsteps(path)
	if err != nil {
		t.Fatalf("LoadFootsteps: %v", err)
	}
	if cfg.BoardSize != 9 {
		t.Errorf("even board size should round up to 9, got %d", cfg.BoardSize)
	}
	if cfg.StartingEnergy != 50 {
		t.Errorf("zero energy should fall back to 50, got %d", cfg.StartingEnergy)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadTiger(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("lambs: [1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTiger(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestLoadTunnelFillsBlanks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tunnel.yaml")
	if err := os.WriteFile(path, []byte("assets: /srv/maps\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTunnel(path)
	if err != nil {
		t.Fatalf("LoadTunnel: %v", err)
	}
	if cfg.Assets != "/srv/maps" {
		t.Errorf("assets = %q", cfg.Assets)
	}
	if cfg.Layout != "gbd1/gbd1.layout" || cfg.MaxDepth != 20 || cfg.Intro == "" {
		t.Errorf("blank fields not defaulted: %+v", cfg)
	}
}

func TestApplyFishingPreset(t *testing.T) {
	cfg := DefaultFishingConfig()
	ApplyFishingPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 || cfg.Board.Size != 7 {
		t.Errorf("hard preset = %+v", cfg)
	}

	ApplyFishingPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestDifficultyWait(t *testing.T) {
	dm := NewDifficultyManager(DefaultFishingConfig().Difficulty)

	if got := dm.Wait(3.0, 0, 0); got != 3.0 {
		t.Errorf("Wait at level 0 = %v, expected 3", got)
	}
	if got := dm.Wait(3.0, 20, 0); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("Wait at max level = %v, expected 1.5", got)
	}
	if got := dm.Wait(3.0, 500, 0); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("Wait past max level = %v, expected 1.5", got)
	}

	dm.SetEnabled(false)
	if got := dm.Wait(3.0, 20, 0); got != 3.0 {
		t.Errorf("disabled progression should keep the base wait, got %v", got)
	}
}

func TestDifficultyLevelTime(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: ProgressByTime, MaxAt: 100},
	})

	if got := dm.Level(0, 50); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level at half time = %v, expected 0.75", got)
	}
	if !dm.IsEnabled() {
		t.Error("expected progression enabled")
	}
}
