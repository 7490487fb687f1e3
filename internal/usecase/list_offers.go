package usecase

import (
	"context"
	"log/slog"
)

// ListOffers builds the catalogue: the full address list from the registry,
// then one batched summary read. All-or-nothing — a failure publishes no
// partial catalogue.
type ListOffers struct {
	registry OfferRegistry
	log      *slog.Logger
}

// NewListOffers creates a new ListOffers use case.
func NewListOffers(registry OfferRegistry, log *slog.Logger) *ListOffers {
	return &ListOffers{registry: registry, log: log}
}

// Run fetches the catalogue. Buyer lists are left unpopulated; the detail
// loader fills them on demand.
func (uc *ListOffers) Run(ctx context.Context) (*CatalogueResult, error) {
	addrs, err := uc.registry.ListAddresses(ctx)
	if err != nil {
		return nil, err
	}
	if len(addrs) == 0 {
		return &CatalogueResult{}, nil
	}

	offers, err := uc.registry.GetSummaries(ctx, addrs)
	if err != nil {
		return nil, err
	}

	uc.log.Debug("catalogue refreshed", "offers", len(offers))
	return &CatalogueResult{Offers: offers}, nil
}
