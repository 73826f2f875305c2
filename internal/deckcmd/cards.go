package deckcmd

import (
	"fmt"
	"io"

	"github.com/eve-anki/shipdeck/internal/cards"
)

func executeCards(out io.Writer, catalogPath, rendersDir, outputDir string) error {
	result, err := cards.Build(cards.Options{
		CatalogPath: catalogPath,
		RendersDir:  rendersDir,
		OutputDir:   outputDir,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nCard build complete!\n")
	fmt.Fprintf(out, "  Catalog rows: %d\n", result.CatalogRows)
	fmt.Fprintf(out, "  Cards:        %d\n", result.Cards)
	fmt.Fprintf(out, "  Skipped:      %d\n", result.CatalogRows-result.Cards)
	fmt.Fprintf(out, "  Import file:  %s\n", result.ImportPath)
	fmt.Fprintf(out, "  Images:       %s\n", result.MediaDir)
	fmt.Fprintf(out, "\nNext steps:\n")
	fmt.Fprintf(out, "  1. Copy the contents of %s into your Anki profile's collection.media folder\n", result.MediaDir)
	fmt.Fprintf(out, "  2. Import %s in Anki (File > Import, fields separated by tab)\n", result.ImportPath)

	return nil
}
