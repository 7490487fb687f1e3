package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
)

// CreateOfferParams is the creation form. Price is the display-unit decimal
// string the user typed; conversion to minor units happens here, once.
type CreateOfferParams struct {
	ProductName        string
	ProductDescription string
	Price              string
	DurationMinutes    uint64
}

// CreateOffer drives the offer creation flow: validate locally, submit the
// registry call, wait for finalization, then refresh the directory so the
// new offer and its assigned address appear in the catalogue.
type CreateOffer struct {
	registry   OfferRegistry
	wallet     WalletSession
	listOffers *ListOffers
	sink       FlowSink
	log        *slog.Logger
}

// NewCreateOffer creates a new CreateOffer use case.
func NewCreateOffer(registry OfferRegistry, wallet WalletSession, listOffers *ListOffers, sink FlowSink, log *slog.Logger) *CreateOffer {
	return &CreateOffer{
		registry:   registry,
		wallet:     wallet,
		listOffers: listOffers,
		sink:       sink,
		log:        log,
	}
}

// Run executes the create flow. Validation failures short-circuit before any
// remote call; submission or finalization failures leave the directory
// unrefreshed so the form can be resubmitted as-is.
func (uc *CreateOffer) Run(ctx context.Context, params CreateOfferParams) (*CreateOfferResult, error) {
	priceMinor, err := uc.validate(params)
	if err != nil {
		return nil, err
	}

	tx, err := uc.registry.CreateOffer(ctx, params.DurationMinutes*60, priceMinor, params.ProductName, params.ProductDescription)
	if err != nil {
		uc.sink.OnFlow(ctx, models.FlowStatusFailed(err))
		return nil, err
	}
	uc.sink.OnFlow(ctx, models.FlowStatusAwaitingConfirmation(tx))

	if _, err := uc.wallet.AwaitFinalization(ctx, tx); err != nil {
		uc.sink.OnFlow(ctx, models.FlowStatusFailed(err))
		return nil, err
	}
	uc.sink.OnFlow(ctx, models.FlowStatusSucceeded(tx))

	result := &CreateOfferResult{TxHash: tx}
	catalogue, err := uc.listOffers.Run(ctx)
	if err != nil {
		// The offer exists on-chain; only the refresh failed.
		uc.log.Warn("directory refresh after create failed", "err", err)
		return result, nil
	}
	result.Catalogue = catalogue.Offers
	return result, nil
}

// validate checks the four required fields and converts the price. No remote
// call is made on failure.
func (uc *CreateOffer) validate(params CreateOfferParams) (priceMinor *big.Int, err error) {
	if params.ProductName == "" {
		return nil, fmt.Errorf("%w: product name is required", models.ErrInvalidInput)
	}
	if params.ProductDescription == "" {
		return nil, fmt.Errorf("%w: product description is required", models.ErrInvalidInput)
	}
	if params.DurationMinutes == 0 {
		return nil, fmt.Errorf("%w: duration must be at least one minute", models.ErrInvalidInput)
	}
	minor, perr := models.ParseAmount(params.Price)
	if perr != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidInput, perr)
	}
	if minor.Sign() <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", models.ErrInvalidInput)
	}
	return minor, nil
}
