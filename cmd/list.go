package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wqr11/test-10x/internal/card"
	"github.com/wqr11/test-10x/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the cards in the catalog",
	Long: `List prints every card in catalog order. Use --category with a tab key
(MARKETING, MANAGEMENT, HR, DESIGN, DEVELOPMENT) to show a single category.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		store, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		key, _ := cmd.Flags().GetString("category")

		cards := store.All()
		if key != "" {
			if _, ok := card.CategoryByKey(key); !ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "Unknown category %q, nothing matches.\n", key)
			}
			cards = store.CardsByKey(key)
		}

		newCardPrinter(cmd.OutOrStdout(), cfg.UseColor()).printCards(cards)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("category", "c", "", "Only show cards of this category key")
}
