package deckcmd

import (
	"fmt"

	"github.com/eve-anki/shipdeck/internal/config"
	"github.com/spf13/cobra"
)

// NewExtractCmd creates the extract command for building the ship catalog
func NewExtractCmd(cfg *config.Config) *cobra.Command {
	var sdePath string
	var outputPath string
	var summary bool

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract ships from an SDE snapshot into a CSV catalog",
		Long: `Read every published ship from an EVE Online Static Data Export (SQLite),
resolve race, meta group, base hull and market group, and write a catalog
sorted by ship name.

Each row carries an Ignore flag (TRUE/FALSE). Skinned ships (cosmetic
variants of another hull) and unreleased ships (names starting with '?')
are flagged, not removed, so the catalog always lists every ship.

Output ending in .parquet is written as a Parquet file instead of CSV.`,
		Example: `  # Extract using the default paths (data/eve.sqlite -> output/ships.csv)
  shipdeck extract

  # Extract from a specific snapshot
  shipdeck extract --sde ~/Downloads/sqlite-latest.sqlite --output ships.csv

  # Write a Parquet catalog instead
  shipdeck extract --output output/ships.parquet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sdePath == "" {
				sdePath = cfg.Paths.SDE
			}
			if outputPath == "" {
				outputPath = cfg.Paths.Catalog
			}
			return executeExtract(cmd.Context(), cmd.OutOrStdout(), cfg, sdePath, outputPath, summary)
		},
	}

	cmd.Flags().StringVar(&sdePath, "sde", "", "Path to the SDE SQLite snapshot (default from config)")
	cmd.Flags().StringVar(&outputPath, "output", "", "Path to the catalog file to write (default from config)")
	cmd.Flags().BoolVar(&summary, "summary", true, "Print ship counts per meta group")

	return cmd
}

// NewCardsCmd creates the cards command for building the Anki import
func NewCardsCmd(cfg *config.Config) *cobra.Command {
	var catalogPath string
	var rendersDir string
	var outputDir string

	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Build an Anki import file and image folder from the catalog",
		Long: `Read the ship catalog, drop every row whose Ignore column is exactly "TRUE",
and write a tab-separated Anki import file (anki.csv) plus a collection.media
folder holding the <type id>.png render of each remaining ship.

All renders must exist. If a single one is missing the command fails
without writing the import file.`,
		Example: `  # Build cards using the default paths
  shipdeck cards

  # Use renders from the SDE image export
  shipdeck cards --renders ~/Downloads/Renders --output deck`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if catalogPath == "" {
				catalogPath = cfg.Paths.Catalog
			}
			if rendersDir == "" {
				rendersDir = cfg.Paths.Renders
			}
			if outputDir == "" {
				outputDir = cfg.Paths.Cards
			}
			return executeCards(cmd.OutOrStdout(), catalogPath, rendersDir, outputDir)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to the ship catalog (default from config)")
	cmd.Flags().StringVar(&rendersDir, "renders", "", "Directory holding <type id>.png renders (default from config)")
	cmd.Flags().StringVar(&outputDir, "output", "", "Output directory for anki.csv and collection.media (default from config)")

	return cmd
}

// NewInspectCmd creates the inspect command for reviewing catalog rows
func NewInspectCmd(cfg *config.Config) *cobra.Command {
	var catalogPath string
	var name string
	var ignoredOnly bool
	var retainedOnly bool
	var limit int

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show catalog rows as a table",
		Long: `Show rows from a ship catalog (CSV or Parquet) as a table.

Useful for reviewing which ships were flagged before building cards.`,
		Example: `  # Show every flagged ship
  shipdeck inspect --ignored

  # Show all Firetail variants
  shipdeck inspect --name firetail`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if catalogPath == "" {
				catalogPath = cfg.Paths.Catalog
			}
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}
			filter := inspectFilter{
				name:         name,
				ignoredOnly:  ignoredOnly,
				retainedOnly: retainedOnly,
				limit:        limit,
			}
			return executeInspect(cmd.OutOrStdout(), catalogPath, filter)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to the ship catalog (default from config)")
	cmd.Flags().StringVar(&name, "name", "", "Only show ships whose name contains this text (case-insensitive)")
	cmd.Flags().BoolVar(&ignoredOnly, "ignored", false, "Only show rows flagged as ignored")
	cmd.Flags().BoolVar(&retainedOnly, "retained", false, "Only show rows that become cards")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of rows to show (0 for all)")
	cmd.MarkFlagsMutuallyExclusive("ignored", "retained")

	return cmd
}
