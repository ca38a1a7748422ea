package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wqr11/test-10x/internal/config"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the catalog page as HTML",
	Long: `Render builds the catalog page, replays a tab click, an optional search and
any number of load clicks against it, and prints the resulting HTML.

Examples:
  coursecards render --category MARKETING --load 1
  coursecards render --search design --cards-only`,
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

		ctrl, err := newSession(store, newLogger(cmd.ErrOrStderr()))
		if err != nil {
			return err
		}

		tab, _ := cmd.Flags().GetString("category")
		if !cmd.Flags().Changed("category") {
			tab = cfg.DefaultTab
		}
		handled, err := ctrl.ClickTabKey(tab)
		if err != nil {
			return err
		}
		if !handled {
			return fmt.Errorf("no tab for category: %s", tab)
		}

		if cmd.Flags().Changed("search") {
			query, _ := cmd.Flags().GetString("search")
			if err := ctrl.Input(query); err != nil {
				return err
			}
		}

		loads, _ := cmd.Flags().GetInt("load")
		for i := 0; i < loads; i++ {
			if err := ctrl.ClickLoad(); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		if cardsOnly, _ := cmd.Flags().GetBool("cards-only"); cardsOnly {
			markup, err := ctrl.CardsHTML()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, markup)
			return nil
		}

		if err := ctrl.Document().Render(out); err != nil {
			return fmt.Errorf("error rendering page: %w", err)
		}
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("category", "c", "", "Tab to click first (category key or 'all'; defaults to the configured tab)")
	renderCmd.Flags().StringP("search", "s", "", "Text to type into the search field")
	renderCmd.Flags().IntP("load", "l", 0, "Number of times to click the load button")
	renderCmd.Flags().Bool("cards-only", false, "Print only the cards container markup")
}
