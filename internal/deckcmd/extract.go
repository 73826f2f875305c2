package deckcmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/eve-anki/shipdeck/internal/catalog"
	"github.com/eve-anki/shipdeck/internal/config"
	"github.com/eve-anki/shipdeck/internal/report"
	"github.com/eve-anki/shipdeck/internal/sde"
	"github.com/eve-anki/shipdeck/internal/ships"
)

func executeExtract(ctx context.Context, out io.Writer, cfg *config.Config, sdePath, outputPath string, summary bool) error {
	slog.Info("Starting extraction", "sde", sdePath, "output", outputPath)

	store, err := sde.Open(ctx, sdePath)
	if err != nil {
		return err
	}
	defer store.Close()

	enricher := ships.NewEnricher(store, cfg.TechLevelNames(), cfg.ShipAttributes())
	records, err := enricher.Extract(ctx)
	if err != nil {
		return fmt.Errorf("failed to extract ships: %w", err)
	}

	rules := cfg.Rules()
	if err := catalog.WriteFile(outputPath, records, rules); err != nil {
		return err
	}

	if summary {
		fmt.Fprintln(out, report.MetaGroupSummary(records, rules))
	}
	fmt.Fprintf(out, "Catalog written to %s (%d ships)\n", outputPath, len(records))

	return nil
}
