package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/groupbuy-labs/groupbuy-cli/internal/cli/render"
	"github.com/groupbuy-labs/groupbuy-cli/internal/usecase"
)

// offerFile is the YAML shape accepted by --file.
type offerFile struct {
	Name            string `yaml:"name"`
	Description     string `yaml:"description"`
	Price           string `yaml:"price"`
	DurationMinutes uint64 `yaml:"duration_minutes"`
}

// NewCreateCmd creates the create command
func NewCreateCmd() *cobra.Command {
	var (
		name            string
		description     string
		price           string
		durationMinutes uint64
		file            string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new group-buy offer",
		Long: `Create a new offer through the registry contract. The offer stays open
for the given duration, after which the seller can withdraw the collected
funds.

Prices are decimal token amounts, e.g. "12.50".`,
		Example: `  # Create from flags
  groupbuy create --name "Espresso machine" --price 12.50 --duration 30

  # Create from a YAML file
  groupbuy create --file offer.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.CreateOfferParams{
				ProductName:        name,
				ProductDescription: description,
				Price:              price,
				DurationMinutes:    durationMinutes,
			}
			if file != "" {
				params, err = loadOfferFile(file)
				if err != nil {
					return err
				}
			}

			if err := app.Controller.Bootstrap(cmd.Context()); err != nil {
				return err
			}

			result, err := app.Controller.CreateOffer(cmd.Context(), params)
			if err != nil {
				return err
			}

			txRenderer := render.NewTransactionRenderer(cmd.OutOrStdout(), app.Config)
			txRenderer.RenderTx("offer created", result.TxHash)

			if result.Catalogue != nil {
				fmt.Fprintln(cmd.OutOrStdout())
				return render.NewOffersRenderer(cmd.OutOrStdout()).
					RenderCatalogue(&usecase.CatalogueResult{Offers: result.Catalogue})
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Product name")
	cmd.Flags().StringVar(&description, "description", "", "Product description")
	cmd.Flags().StringVar(&price, "price", "", "Per-buyer price, e.g. 12.50")
	cmd.Flags().Uint64Var(&durationMinutes, "duration", 0, "Offer duration in minutes")
	cmd.Flags().StringVar(&file, "file", "", "Read the offer from a YAML file instead of flags")

	return cmd
}

// loadOfferFile reads the offer definition from YAML. Validation stays with
// the use case; the file only has to parse.
func loadOfferFile(path string) (usecase.CreateOfferParams, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return usecase.CreateOfferParams{}, fmt.Errorf("failed to read offer file: %w", err)
	}

	var file offerFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return usecase.CreateOfferParams{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return usecase.CreateOfferParams{
		ProductName:        file.Name,
		ProductDescription: file.Description,
		Price:              file.Price,
		DurationMinutes:    file.DurationMinutes,
	}, nil
}
