package cli

import (
	"github.com/spf13/cobra"

	"github.com/groupbuy-labs/groupbuy-cli/internal/cli/render"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List group-buy offers from the registry",
		Long: `List every offer the registry knows, newest last.

The directory and all offer summaries come from one batched contract call,
so the list is a consistent snapshot.`,
		Example: `  # List all offers
  groupbuy list

  # List offers on a specific network
  groupbuy list -n goerli`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListOffers.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewOffersRenderer(cmd.OutOrStdout())
			return renderer.RenderCatalogue(result)
		},
	}

	return cmd
}
