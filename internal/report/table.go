package report

import (
	"sort"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/eve-anki/shipdeck/internal/catalog"
	"github.com/eve-anki/shipdeck/internal/ships"
)

// Alignment of a table column
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Table renders rows under upper-cased headers with rounded borders. Short
// rows are padded with empty cells.
func Table(headers []string, rows [][]string, aligns []Alignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == AlignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// MetaGroupCount tallies ships of one meta group
type MetaGroupCount struct {
	MetaGroup string
	Total     int
	Ignored   int
}

// CountMetaGroups tallies records per meta group, sorted by meta group name
func CountMetaGroups(records []ships.ShipRecord, rules ships.Rules) []MetaGroupCount {
	byGroup := make(map[string]*MetaGroupCount)
	for _, rec := range records {
		c, ok := byGroup[rec.MetaGroup]
		if !ok {
			c = &MetaGroupCount{MetaGroup: rec.MetaGroup}
			byGroup[rec.MetaGroup] = c
		}
		c.Total++
		if rules.Ignore(rec) {
			c.Ignored++
		}
	}

	counts := make([]MetaGroupCount, 0, len(byGroup))
	for _, c := range byGroup {
		counts = append(counts, *c)
	}
	sort.Slice(counts, func(i, j int) bool {
		return counts[i].MetaGroup < counts[j].MetaGroup
	})
	return counts
}

// MetaGroupSummary renders per meta group totals for an extraction run
func MetaGroupSummary(records []ships.ShipRecord, rules ships.Rules) string {
	counts := CountMetaGroups(records, rules)

	rows := make([][]string, 0, len(counts)+1)
	var total, ignored int
	for _, c := range counts {
		rows = append(rows, []string{c.MetaGroup, strconv.Itoa(c.Total), strconv.Itoa(c.Ignored), strconv.Itoa(c.Total - c.Ignored)})
		total += c.Total
		ignored += c.Ignored
	}
	rows = append(rows, []string{"All", strconv.Itoa(total), strconv.Itoa(ignored), strconv.Itoa(total - ignored)})

	return Table(
		[]string{"Meta Group", "Ships", "Ignored", "Retained"},
		rows,
		[]Alignment{AlignLeft, AlignRight, AlignRight, AlignRight},
	)
}

// CatalogRows renders catalog rows in the catalog's column order
func CatalogRows(rows []catalog.Row) string {
	values := make([][]string, 0, len(rows))
	for _, row := range rows {
		values = append(values, row.Values())
	}

	aligns := make([]Alignment, len(catalog.Columns))
	for i, col := range catalog.Columns {
		switch col {
		case catalog.ColTechLevel, catalog.ColMetaLevel, catalog.ColTypeID:
			aligns[i] = AlignRight
		}
	}
	return Table(catalog.Columns, values, aligns)
}
