package usecase

import (
	"context"
	"log/slog"
	"math/big"

	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
)

// ApprovalCeilingMinor is the allowance granted to an offer contract before
// placing an order: 1,000 display units, well above any single price. The
// generous fixed ceiling amortizes approval cost across future offers at the
// cost of a larger-than-needed allowance; a deliberate trade-off carried
// over from the original client, not a bug.
var ApprovalCeilingMinor = big.NewInt(1_000_000_000)

// PlaceOrder drives the two-phase join flow: the payment token must first
// grant the offer contract an allowance, then the order call can move the
// funds.
type PlaceOrder struct {
	offers OfferContract
	token  TokenContract
	wallet WalletSession
	sink   FlowSink
	log    *slog.Logger
}

// NewPlaceOrder creates a new PlaceOrder use case.
func NewPlaceOrder(offers OfferContract, token TokenContract, wallet WalletSession, sink FlowSink, log *slog.Logger) *PlaceOrder {
	return &PlaceOrder{
		offers: offers,
		token:  token,
		wallet: wallet,
		sink:   sink,
		log:    log,
	}
}

// Run executes both phases. A failure at either phase stops the flow; no
// partial membership is assumed client-side — the contract is authoritative
// for whether the approval alone had any effect.
func (uc *PlaceOrder) Run(ctx context.Context, offer *models.Offer) (*PlaceOrderResult, error) {
	if offer == nil {
		return nil, nil
	}

	// Phase A: allowance for this offer's contract.
	approvalTx, err := uc.token.Approve(ctx, offer.Address, ApprovalCeilingMinor)
	if err != nil {
		uc.sink.OnFlow(ctx, models.FlowStatusFailed(err))
		return nil, err
	}
	uc.sink.OnFlow(ctx, models.FlowStatusAwaitingApproval(approvalTx))

	if _, err := uc.wallet.AwaitFinalization(ctx, approvalTx); err != nil {
		uc.sink.OnFlow(ctx, models.FlowStatusFailed(err))
		return nil, err
	}

	// Phase B: the order itself.
	orderTx, err := uc.offers.PlaceOrder(ctx, offer.Address)
	if err != nil {
		uc.sink.OnFlow(ctx, models.FlowStatusFailed(err))
		return nil, err
	}
	uc.sink.OnFlow(ctx, models.FlowStatusAwaitingConfirmation(orderTx))

	if _, err := uc.wallet.AwaitFinalization(ctx, orderTx); err != nil {
		uc.sink.OnFlow(ctx, models.FlowStatusFailed(err))
		return nil, err
	}
	uc.sink.OnFlow(ctx, models.FlowStatusSucceeded(orderTx))

	result := &PlaceOrderResult{ApprovalTx: approvalTx, OrderTx: orderTx}
	buyers, err := uc.offers.GetBuyers(ctx, offer.Address)
	if err != nil {
		// The order is final on-chain; only the refresh failed. The
		// caller keeps its previous buyer list.
		uc.log.Warn("buyer refresh after order failed", "offer", offer.Address, "err", err)
		return result, nil
	}
	result.Buyers = buyers
	return result, nil
}
