package deckcmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/eve-anki/shipdeck/internal/catalog"
	"github.com/eve-anki/shipdeck/internal/report"
)

type inspectFilter struct {
	name         string
	ignoredOnly  bool
	retainedOnly bool
	limit        int
}

func (f inspectFilter) match(row catalog.Row) bool {
	if f.name != "" && !strings.Contains(strings.ToLower(row.Ship), strings.ToLower(f.name)) {
		return false
	}
	ignored := row.Ignore == catalog.IgnoreTrue
	if f.ignoredOnly && !ignored {
		return false
	}
	if f.retainedOnly && ignored {
		return false
	}
	return true
}

func executeInspect(out io.Writer, catalogPath string, filter inspectFilter) error {
	rows, err := catalog.Load(catalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	var matched []catalog.Row
	for _, row := range rows {
		if !filter.match(row) {
			continue
		}
		matched = append(matched, row)
		if filter.limit > 0 && len(matched) == filter.limit {
			break
		}
	}

	if len(matched) == 0 {
		fmt.Fprintf(out, "No matching ships in %s\n", catalogPath)
		return nil
	}

	fmt.Fprintln(out, report.CatalogRows(matched))
	fmt.Fprintf(out, "%d of %d ships shown\n", len(matched), len(rows))
	return nil
}
