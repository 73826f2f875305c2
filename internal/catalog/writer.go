package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/eve-anki/shipdeck/internal/ships"
)

// Rows sorts a copy of the records by name and serializes them with their
// ignore flag. Name ties fall back to type ID so output stays deterministic.
func Rows(records []ships.ShipRecord, rules ships.Rules) []Row {
	sorted := make([]ships.ShipRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].TypeID < sorted[j].TypeID
	})

	rows := make([]Row, 0, len(sorted))
	for _, rec := range sorted {
		rows = append(rows, NewRow(rec, rules.Ignore(rec)))
	}
	return rows
}

// Write writes the records as a comma-separated catalog with a header row
func Write(w io.Writer, records []ships.ShipRecord, rules ships.Rules) error {
	return writeCSV(w, Rows(records, rules))
}

func writeCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("failed to write catalog header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row.Values()); err != nil {
			return fmt.Errorf("failed to write catalog row %q: %w", row.Ship, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush catalog: %w", err)
	}
	return nil
}

// WriteFile writes the catalog to path, creating parent directories. Paths
// ending in .parquet produce a Parquet file, anything else CSV.
func WriteFile(path string, records []ships.ShipRecord, rules ships.Rules) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create catalog file: %w", err)
	}
	defer file.Close()

	rows := Rows(records, rules)
	if isParquet(path) {
		err = writeParquet(file, rows)
	} else {
		err = writeCSV(file, rows)
	}
	if err != nil {
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close catalog file: %w", err)
	}

	slog.Info("Wrote catalog", "path", path, "rows", len(rows))
	return nil
}

func isParquet(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".parquet")
}
