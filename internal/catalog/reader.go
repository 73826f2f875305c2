package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a catalog file (CSV or Parquet, by extension)
func Load(path string) ([]Row, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".parquet":
		return loadParquet(path)
	case ".csv", ".txt", "":
		return loadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s (supported: .csv, .parquet)", ext)
	}
}

func loadCSV(path string) ([]Row, error) {
	slog.Debug("Opening catalog", "path", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	rows, err := ReadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("Finished reading catalog", "path", path, "rows", len(rows))
	return rows, nil
}

// ReadCSV reads a comma-separated catalog. The header must name every catalog
// column; column order does not matter.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header", ErrMalformedRow)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: header has no %q column", ErrMalformedRow, col)
		}
	}

	var rows []Row
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, csv.ErrFieldCount) {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog row: %w", err)
		}
		rows = append(rows, rowFromFields(fields, index))
	}

	return rows, nil
}
