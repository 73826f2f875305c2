package deckcmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eve-anki/shipdeck/internal/config"
	"github.com/eve-anki/shipdeck/internal/sde"
	"github.com/eve-anki/shipdeck/internal/testsupport"
)

func TestExecuteExtract(t *testing.T) {
	snapshot := testsupport.NewSnapshot(t)
	output := filepath.Join(t.TempDir(), "output", "ships.csv")

	var out bytes.Buffer
	if err := executeExtract(context.Background(), &out, config.Default(), snapshot, output, true); err != nil {
		t.Fatalf("executeExtract failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != testsupport.ExpectedCatalog {
		t.Errorf("Expected:\n%s\nGot:\n%s", testsupport.ExpectedCatalog, string(data))
	}

	if !strings.Contains(out.String(), "7 ships") {
		t.Errorf("Expected ship count in output, got:\n%s", out.String())
	}
}

func TestExecuteExtractIsDeterministic(t *testing.T) {
	snapshot := testsupport.NewSnapshot(t)
	dir := t.TempDir()
	first := filepath.Join(dir, "first.csv")
	second := filepath.Join(dir, "second.csv")

	for _, path := range []string{first, second} {
		if err := executeExtract(context.Background(), &bytes.Buffer{}, config.Default(), snapshot, path, false); err != nil {
			t.Fatalf("executeExtract failed: %v", err)
		}
	}

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("Expected byte-identical catalogs across runs")
	}
}

func TestExecuteExtractMissingAttribute(t *testing.T) {
	snapshot := testsupport.NewSnapshot(t, `DELETE FROM dgmTypeAttributes WHERE typeID = 11371 AND attributeID = 422`)
	output := filepath.Join(t.TempDir(), "ships.csv")

	err := executeExtract(context.Background(), &bytes.Buffer{}, config.Default(), snapshot, output, false)
	if !errors.Is(err, sde.ErrMissingAttribute) {
		t.Fatalf("Expected ErrMissingAttribute, got %v", err)
	}
	if _, err := os.Stat(output); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected no catalog after failure, got %v", err)
	}
}

func TestExecuteExtractMissingSnapshot(t *testing.T) {
	dir := t.TempDir()
	err := executeExtract(context.Background(), &bytes.Buffer{}, config.Default(), filepath.Join(dir, "eve.sqlite"), filepath.Join(dir, "ships.csv"), false)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestExtractThenCards(t *testing.T) {
	snapshot := testsupport.NewSnapshot(t)
	dir := t.TempDir()
	catalogPath := filepath.Join(dir, "ships.parquet")
	renders := filepath.Join(dir, "Renders")
	testsupport.WriteRenders(t, renders, testsupport.PublishedShips...)

	if err := executeExtract(context.Background(), &bytes.Buffer{}, config.Default(), snapshot, catalogPath, false); err != nil {
		t.Fatalf("executeExtract failed: %v", err)
	}

	var out bytes.Buffer
	if err := executeCards(&out, catalogPath, renders, filepath.Join(dir, "anki")); err != nil {
		t.Fatalf("executeCards failed: %v", err)
	}

	if !strings.Contains(out.String(), "Cards:        4") {
		t.Errorf("Expected 4 cards, got:\n%s", out.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "anki", "collection.media", "587.png")); err != nil {
		t.Errorf("Expected Rifter render to be copied: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "anki", "collection.media", "99999.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected unreleased ship render to be skipped, got %v", err)
	}
}

func TestExecuteInspect(t *testing.T) {
	catalogPath := filepath.Join(t.TempDir(), "ships.csv")
	if err := os.WriteFile(catalogPath, []byte(testsupport.ExpectedCatalog), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		filter   inspectFilter
		contains []string
		excludes []string
		count    string
	}{
		{
			name:     "by name",
			filter:   inspectFilter{name: "firetail"},
			contains: []string{"Republic Fleet Firetail", "Firetail Tribal Skin"},
			excludes: []string{"Wolf"},
			count:    "2 of 7",
		},
		{
			name:     "ignored only",
			filter:   inspectFilter{ignoredOnly: true},
			contains: []string{"Goru's Shuttle", "? Mystery Hull"},
			excludes: []string{"Rifter"},
			count:    "3 of 7",
		},
		{
			name:     "retained only",
			filter:   inspectFilter{retainedOnly: true},
			contains: []string{"Rifter", "Wolf"},
			excludes: []string{"Goru's Shuttle"},
			count:    "4 of 7",
		},
		{
			name:   "limit",
			filter: inspectFilter{limit: 2},
			count:  "2 of 7",
		},
		{
			name:   "no match",
			filter: inspectFilter{name: "Titan"},
			count:  "No matching ships",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := executeInspect(&out, catalogPath, tt.filter); err != nil {
				t.Fatalf("executeInspect failed: %v", err)
			}
			got := out.String()
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Expected output to contain %q, got:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("Expected output without %q, got:\n%s", unwanted, got)
				}
			}
			if !strings.Contains(got, tt.count) {
				t.Errorf("Expected %q in output, got:\n%s", tt.count, got)
			}
		})
	}
}

func TestExtractCmdUsesConfigPaths(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.SDE = testsupport.NewSnapshot(t)
	cfg.Paths.Catalog = filepath.Join(t.TempDir(), "ships.csv")

	cmd := NewExtractCmd(cfg)
	cmd.SetArgs([]string{"--summary=false"})
	cmd.SetOut(&bytes.Buffer{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if _, err := os.Stat(cfg.Paths.Catalog); err != nil {
		t.Errorf("Expected catalog at configured path: %v", err)
	}
}
