package cmd

import (
	"log/slog"
	"os"

	"github.com/eve-anki/shipdeck/internal/config"
	"github.com/eve-anki/shipdeck/internal/deckcmd"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cfg := config.Default()
	var configPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "shipdeck",
		Short: "EVE Online ship catalog and Anki flashcard builder",
		Long: `Shipdeck turns an EVE Online Static Data Export into ship flashcards.

First extract a ship catalog from the SDE SQLite snapshot, review it, then
build an Anki import file together with the ship renders.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			if configPath == "" {
				configPath = os.Getenv(config.EnvConfig)
			}
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			*cfg = *loaded

			level, _ := cfg.Level()
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (or "+config.EnvConfig+")")
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose logging")

	// Add subcommands
	cmd.AddCommand(deckcmd.NewExtractCmd(cfg))
	cmd.AddCommand(deckcmd.NewCardsCmd(cfg))
	cmd.AddCommand(deckcmd.NewInspectCmd(cfg))
	cmd.AddCommand(newConfigCmd(cfg))

	return cmd
}
