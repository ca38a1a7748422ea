package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wqr11/test-10x/internal/card"
	"github.com/wqr11/test-10x/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage coursecards configuration",
	Long:  `Commands for inspecting and changing the coursecards configuration file.`,
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		catalogPath := cfg.CatalogPath
		if catalogPath == "" {
			catalogPath = "(built-in)"
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config file: %s\n", config.GetConfigFilePath())
		fmt.Fprintf(out, "Default tab: %s\n", cfg.DefaultTab)
		fmt.Fprintf(out, "Catalog:     %s\n", catalogPath)
		fmt.Fprintf(out, "Color:       %t\n", cfg.UseColor())
		return nil
	},
}

// configSetDefaultTabCmd represents the config set-default-tab command
var configSetDefaultTabCmd = &cobra.Command{
	Use:   "set-default-tab [category]",
	Short: "Set the tab shown when a session starts",
	Long: `Set the tab that browse and render click first. Use a category key
(MARKETING, MANAGEMENT, HR, DESIGN, DEVELOPMENT) or 'all'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if strings.EqualFold(key, "all") {
			key = "all"
		} else if _, ok := card.CategoryByKey(key); !ok {
			return fmt.Errorf("unknown category: %s", key)
		}

		if err := config.SetDefaultTab(key); err != nil {
			return fmt.Errorf("error setting default tab: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default tab set to: %s\n", key)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetDefaultTabCmd)
}
