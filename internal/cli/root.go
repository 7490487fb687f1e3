package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/groupbuy-labs/groupbuy-cli/internal/app"
	"github.com/groupbuy-labs/groupbuy-cli/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "groupbuy",
		Short: "Group-buy offer orchestrator for Ethereum",
		Long: `groupbuy browses, creates, and joins time-boxed group-buy offers whose
state lives in on-chain contracts, paying with an ERC-20 token.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			v := config.SetupViper()
			bindGlobalFlags(v, cmd)

			// browse owns the terminal; flow progress must stay off stdout.
			if cmd.Name() == "browse" {
				v.Set("tui", true)
			}

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output machine-readable JSON")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., goerli)")
	rootCmd.PersistentFlags().Duration("timeout", config.DefaultTimeout, "Overall command timeout")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "offers",
		Title: "Offer Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "wallet",
		Title: "Wallet Commands",
	})

	listCmd := NewListCmd()
	listCmd.GroupID = "offers"
	rootCmd.AddCommand(listCmd)

	showCmd := NewShowCmd()
	showCmd.GroupID = "offers"
	rootCmd.AddCommand(showCmd)

	createCmd := NewCreateCmd()
	createCmd.GroupID = "offers"
	rootCmd.AddCommand(createCmd)

	joinCmd := NewJoinCmd()
	joinCmd.GroupID = "offers"
	rootCmd.AddCommand(joinCmd)

	withdrawCmd := NewWithdrawCmd()
	withdrawCmd.GroupID = "offers"
	rootCmd.AddCommand(withdrawCmd)

	browseCmd := NewBrowseCmd()
	browseCmd.GroupID = "offers"
	rootCmd.AddCommand(browseCmd)

	balanceCmd := NewBalanceCmd()
	balanceCmd.GroupID = "wallet"
	rootCmd.AddCommand(balanceCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// bindGlobalFlags binds command flags to viper
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	// Only bind flags that exist and have been changed
	for _, name := range []string{"debug", "non-interactive", "json", "network", "timeout"} {
		if f := cmd.Flag(name); f != nil && f.Changed {
			v.Set(name, f.Value.String())
		}
	}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
