package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/wqr11/test-10x/internal/catalog"
	"github.com/wqr11/test-10x/internal/config"
	"github.com/wqr11/test-10x/internal/page"
	"github.com/wqr11/test-10x/internal/render"
	"github.com/wqr11/test-10x/internal/view"
)

var (
	catalogFlag string
	verboseFlag bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "coursecards",
	Short: "Browse the course card catalog",
	Long: `Coursecards renders the course catalog as card markup and lets you filter it
by category tab, search it by title, author or category, and load more cards.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "Path to a catalog TOML file (defaults to the built-in catalog)")
	RootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log handled events to stderr")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verboseFlag {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadCatalog picks the --catalog flag, then the configured path, then the built-in catalog
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	path := catalogFlag
	if path == "" {
		path = cfg.CatalogPath
	}
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

// newSession parses the host page, fills the cards container with the whole
// catalog and binds a controller to it
func newSession(store *catalog.Catalog, logger *slog.Logger) (*view.Controller, error) {
	doc, err := page.Default()
	if err != nil {
		return nil, err
	}

	if cards := doc.ElementByID(page.CardsID); cards != nil {
		page.ReplaceChildren(cards, render.RenderCards(store.All())...)
	}

	return view.New(doc, store, logger)
}
