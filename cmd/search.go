package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wqr11/test-10x/internal/config"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search cards by title, author or category",
	Long: `Search prints the cards whose title, author or category contains the query,
ignoring case. Several arguments are joined with spaces.

Examples:
  coursecards search design
  coursecards search Jerome`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		store, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		cards := store.Search(strings.Join(args, " "))
		newCardPrinter(cmd.OutOrStdout(), cfg.UseColor()).printCards(cards)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(searchCmd)
}
