package cli

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/groupbuy-labs/groupbuy-cli/internal/app"
	"github.com/groupbuy-labs/groupbuy-cli/internal/cli/render"
	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [offer-address|query]",
		Short: "Show one offer with its buyer list",
		Long: `Show an offer's full detail view, including the lazily fetched buyer
list and the actions available to the configured wallet.

The argument is a 0x contract address or a product-name query; ambiguous
queries are resolved interactively. Without an argument the offer is
picked from the whole catalogue.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if err := app.Controller.Bootstrap(cmd.Context()); err != nil {
				return err
			}

			if err := selectOffer(cmd, app, args); err != nil {
				return err
			}

			snap := app.Controller.Snapshot()
			renderer := render.NewOfferRenderer(cmd.OutOrStdout(), app.Config)
			return renderer.RenderOffer(snap.Selected, snap.Eligibility)
		},
	}

	return cmd
}

// selectOffer resolves the offer argument. A 0x address selects directly;
// anything else is a product-name query against the catalogue, resolved
// interactively when it stays ambiguous. No argument prompts over the
// whole catalogue.
func selectOffer(cmd *cobra.Command, a *app.App, args []string) error {
	snap := a.Controller.Snapshot()
	if len(args) == 1 && common.IsHexAddress(args[0]) {
		return a.Controller.Select(cmd.Context(), common.HexToAddress(args[0]))
	}

	candidates := snap.Catalogue
	prompt := "Select an offer"
	if len(args) == 1 {
		candidates = filterOffers(snap.Catalogue, args[0])
		if len(candidates) == 0 {
			return fmt.Errorf("no offer matches %q", args[0])
		}
		prompt = fmt.Sprintf("Offers matching %q", args[0])
	}
	if len(candidates) == 0 {
		return fmt.Errorf("no offers found")
	}

	offer, err := a.Selector.SelectOffer(cmd.Context(), candidates, prompt)
	if err != nil {
		return err
	}
	return a.Controller.Select(cmd.Context(), offer.Address)
}

// filterOffers narrows the catalogue to offers whose product name contains
// the query, case-insensitively.
func filterOffers(offers []*models.Offer, query string) []*models.Offer {
	query = strings.ToLower(query)
	var matched []*models.Offer
	for _, offer := range offers {
		if strings.Contains(strings.ToLower(offer.ProductName), query) {
			matched = append(matched, offer)
		}
	}
	return matched
}
