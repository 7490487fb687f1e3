package usecase

import (
	"context"
	"log/slog"

	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
)

// WithdrawFunds drives the seller's withdrawal. Eligibility gating is the
// caller's job, consistent with the evaluator being the single source of
// that logic; the contract re-checks on-chain regardless.
type WithdrawFunds struct {
	offers OfferContract
	wallet WalletSession
	sink   FlowSink
	log    *slog.Logger
}

// NewWithdrawFunds creates a new WithdrawFunds use case.
func NewWithdrawFunds(offers OfferContract, wallet WalletSession, sink FlowSink, log *slog.Logger) *WithdrawFunds {
	return &WithdrawFunds{offers: offers, wallet: wallet, sink: sink, log: log}
}

// Run submits the withdraw call and waits for finalization. No refresh
// afterwards: withdrawal changes neither the buyer list nor the offer state.
func (uc *WithdrawFunds) Run(ctx context.Context, offer *models.Offer) (*WithdrawResult, error) {
	if offer == nil {
		return nil, nil
	}

	tx, err := uc.offers.WithdrawFunds(ctx, offer.Address)
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

	uc.log.Debug("funds withdrawn", "offer", offer.Address, "tx", tx)
	return &WithdrawResult{TxHash: tx}, nil
}
