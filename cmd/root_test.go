package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eve-anki/shipdeck/internal/testsupport"
)

func TestRootExtract(t *testing.T) {
	output := filepath.Join(t.TempDir(), "ships.csv")

	root := NewRootCmd()
	root.SetArgs([]string{"extract", "--sde", testsupport.NewSnapshot(t), "--output", output, "--summary=false"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	if err := root.Execute(); err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != testsupport.ExpectedCatalog {
		t.Errorf("Expected:\n%s\nGot:\n%s", testsupport.ExpectedCatalog, string(data))
	}
}

func TestRootConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "shipdeck.yaml")
	content := "paths:\n  catalog: " + filepath.Join(dir, "custom.csv") + "\nclassification:\n  skinned_ships: [Rifter]\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	root := NewRootCmd()
	root.SetArgs([]string{"--config", configPath, "extract", "--sde", testsupport.NewSnapshot(t), "--summary=false"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	if err := root.Execute(); err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "custom.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Rifter,Frigate,Tech I,1,0,,Minmatar,Minmatar,587,TRUE") {
		t.Errorf("Expected Rifter flagged by configured denylist, got:\n%s", string(data))
	}
	if !strings.Contains(string(data), "Goru's Shuttle,Shuttle,Tech I,1,0,,Caldari,,33513,FALSE") {
		t.Errorf("Expected default denylist replaced, got:\n%s", string(data))
	}
}

func TestRootConfigCommand(t *testing.T) {
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetArgs([]string{"config"})
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	if err := root.Execute(); err != nil {
		t.Fatalf("config failed: %v", err)
	}

	for _, want := range []string{"sde: data/eve.sqlite", "meta_level: 633", "Police Pursuit Comet"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected %q in output, got:\n%s", want, out.String())
		}
	}
}
