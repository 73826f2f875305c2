package cards

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/eve-anki/shipdeck/internal/catalog"
	"github.com/eve-anki/shipdeck/internal/fileutil"
)

// File layout inside the card output directory, as Anki expects it
const (
	ImportFileName = "anki.csv"
	MediaDirName   = "collection.media"
)

// ImportHeader is the first line of the import file. The leading '#' makes
// Anki treat the line as a comment.
var ImportHeader = []string{"# Type ID", "Ship", "Ship Type", "Meta Group", "Hull", "Race", "Image", "Category Tag"}

// Card is one flashcard note
type Card struct {
	TypeID      string
	Ship        string
	ShipType    string
	MetaGroup   string
	Hull        string
	Race        string
	Image       string // HTML img tag pointing at the render
	CategoryTag string
}

// Options configures a card build
type Options struct {
	CatalogPath string
	RendersDir  string
	OutputDir   string
}

// Result summarizes a card build
type Result struct {
	CatalogRows int
	Cards       int
	ImportPath  string
	MediaDir    string
}

// Retained drops rows whose Ignore column is exactly "TRUE". The match is
// case-sensitive: any other value keeps the row.
func Retained(rows []catalog.Row) []catalog.Row {
	kept := make([]catalog.Row, 0, len(rows))
	for _, row := range rows {
		if row.Ignore == catalog.IgnoreTrue {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}

// ImageFile returns the render filename for a type ID
func ImageFile(typeID string) string {
	return typeID + ".png"
}

// FromRow builds the card for a catalog row
func FromRow(row catalog.Row) Card {
	return Card{
		TypeID:      row.TypeID,
		Ship:        row.Ship,
		ShipType:    row.ShipClass,
		MetaGroup:   row.MetaGroup,
		Hull:        row.Hull,
		Race:        row.Race,
		Image:       fmt.Sprintf(`<img src="%s">`, ImageFile(row.TypeID)),
		CategoryTag: "type:" + strings.ReplaceAll(row.ShipClass, " ", "_"),
	}
}

// FromRows builds cards for the retained rows of a catalog
func FromRows(rows []catalog.Row) []Card {
	retained := Retained(rows)
	cards := make([]Card, 0, len(retained))
	for _, row := range retained {
		cards = append(cards, FromRow(row))
	}
	return cards
}

// WriteImport writes cards as a tab-separated Anki import file
func WriteImport(w io.Writer, cards []Card) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write(ImportHeader); err != nil {
		return fmt.Errorf("failed to write import header: %w", err)
	}
	for _, c := range cards {
		record := []string{c.TypeID, c.Ship, c.ShipType, c.MetaGroup, c.Hull, c.Race, c.Image, c.CategoryTag}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write card %q: %w", c.Ship, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush import file: %w", err)
	}
	return nil
}

// CopyImages copies the render of every card from fromDir to toDir. All
// renders are checked before anything is copied, and the first missing one
// fails the whole operation.
func CopyImages(cards []Card, fromDir, toDir string) error {
	sources := make([]string, 0, len(cards))
	for _, c := range cards {
		sources = append(sources, filepath.Join(fromDir, ImageFile(c.TypeID)))
	}
	if err := fileutil.RequireFiles(sources...); err != nil {
		return fmt.Errorf("failed to find ship render: %w", err)
	}

	if err := os.MkdirAll(toDir, 0755); err != nil {
		return fmt.Errorf("failed to create image directory: %w", err)
	}

	for i, src := range sources {
		dst := filepath.Join(toDir, ImageFile(cards[i].TypeID))
		if err := fileutil.CopyFile(src, dst); err != nil {
			return fmt.Errorf("failed to copy render of %q: %w", cards[i].Ship, err)
		}
		slog.Debug("Copied render", "ship", cards[i].Ship, "file", dst)
	}
	return nil
}

// Build reads the catalog, writes the import file and copies the renders of
// every retained ship into the output directory.
func Build(opts Options) (*Result, error) {
	slog.Info("Loading catalog", "path", opts.CatalogPath)
	rows, err := catalog.Load(opts.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	cards := FromRows(rows)
	slog.Info("Filtered catalog", "rows", len(rows), "cards", len(cards))

	result := &Result{
		CatalogRows: len(rows),
		Cards:       len(cards),
		ImportPath:  filepath.Join(opts.OutputDir, ImportFileName),
		MediaDir:    filepath.Join(opts.OutputDir, MediaDirName),
	}

	// Images first: a missing render must not leave an import file behind
	if err := CopyImages(cards, opts.RendersDir, result.MediaDir); err != nil {
		return nil, err
	}

	file, err := os.Create(result.ImportPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create import file: %w", err)
	}
	defer file.Close()

	if err := WriteImport(file, cards); err != nil {
		return nil, err
	}
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("failed to close import file: %w", err)
	}

	slog.Info("Wrote card import", "path", result.ImportPath, "images", result.MediaDir)
	return result, nil
}
