package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/eve-anki/shipdeck/internal/ships"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shipdeck.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Paths.SDE != "data/eve.sqlite" {
		t.Errorf("Expected default SDE path, got %s", cfg.Paths.SDE)
	}
	if cfg.Paths.Catalog != "output/ships.csv" {
		t.Errorf("Expected default catalog path, got %s", cfg.Paths.Catalog)
	}
	if cfg.Attributes.MetaLevel != 633 || cfg.Attributes.TechLevel != 422 {
		t.Errorf("Expected attribute IDs 633/422, got %d/%d", cfg.Attributes.MetaLevel, cfg.Attributes.TechLevel)
	}

	rules := cfg.Rules()
	if !rules.IsSkinned(ships.ShipRecord{Name: "Police Pursuit Comet"}) {
		t.Errorf("Expected default denylist to apply")
	}
	if rules.IsSkinned(ships.ShipRecord{Name: "Miasmos Quafe Ultra Edition"}) {
		t.Errorf("Expected default allow-list to apply")
	}

	if name, _ := cfg.TechLevelNames().Lookup(3); name != "Tech III" {
		t.Errorf("Expected Tech III, got %q", name)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
paths:
  sde: /srv/sde/eve.sqlite
  cards: deck
log_level: debug
classification:
  skinned_ships:
    - Custom Skin
  not_skinned_ships: []
tech_levels:
  4: Precursor
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Paths.SDE != "/srv/sde/eve.sqlite" {
		t.Errorf("Expected SDE path from file, got %s", cfg.Paths.SDE)
	}
	if cfg.Paths.Renders != "data/Renders" {
		t.Errorf("Expected default renders path to survive, got %s", cfg.Paths.Renders)
	}
	if cfg.Paths.Cards != "deck" {
		t.Errorf("Expected cards path from file, got %s", cfg.Paths.Cards)
	}

	level, err := cfg.Level()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("Expected debug level, got %v (%v)", level, err)
	}

	rules := cfg.Rules()
	if !rules.IsSkinned(ships.ShipRecord{Name: "Custom Skin"}) {
		t.Errorf("Expected configured denylist to apply")
	}
	if rules.IsSkinned(ships.ShipRecord{Name: "Police Pursuit Comet"}) {
		t.Errorf("Expected configured denylist to replace the default one")
	}
	if !rules.IsSkinned(ships.ShipRecord{Name: "Miasmos Quafe Ultra Edition"}) {
		t.Errorf("Expected empty allow-list to drop the default exception")
	}

	if name, ok := cfg.TechLevelNames().Lookup(4); !ok || name != "Precursor" {
		t.Errorf("Expected Precursor for tech level 4, got %q", name)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "paths:\n  catalog: from-file.csv\n")
	t.Setenv(EnvCatalog, "from-env.csv")
	t.Setenv(EnvRenders, "  ")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Paths.Catalog != "from-env.csv" {
		t.Errorf("Expected catalog path from environment, got %s", cfg.Paths.Catalog)
	}
	if cfg.Paths.Renders != "data/Renders" {
		t.Errorf("Expected blank environment value to be ignored, got %s", cfg.Paths.Renders)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad yaml", content: "paths: [\n"},
		{name: "bad log level", content: "log_level: chatty\n"},
		{name: "empty path", content: "paths:\n  sde: \"\"\n"},
		{name: "bad attribute", content: "attributes:\n  meta_level: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Errorf("Expected error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Expected error for missing config file")
	}
}
