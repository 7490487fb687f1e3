package usecase

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"

	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
)

// LoadBuyers enriches one offer with its current buyer list, fetched from
// the offer's own contract in storage order.
type LoadBuyers struct {
	offers OfferContract
	log    *slog.Logger
}

// NewLoadBuyers creates a new LoadBuyers use case.
func NewLoadBuyers(offers OfferContract, log *slog.Logger) *LoadBuyers {
	return &LoadBuyers{offers: offers, log: log}
}

// Run fetches the buyer list for the offer. On failure the caller keeps the
// previously known list rather than clearing it.
func (uc *LoadBuyers) Run(ctx context.Context, offer *models.Offer) ([]common.Address, error) {
	if offer == nil {
		return nil, models.ErrInvalidInput
	}

	buyers, err := uc.offers.GetBuyers(ctx, offer.Address)
	if err != nil {
		return nil, err
	}

	uc.log.Debug("buyer list fetched", "offer", offer.Address, "buyers", len(buyers))
	return buyers, nil
}
