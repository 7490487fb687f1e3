package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
)

// TxRequest is one remote call ready for signing and submission. GasLimit is
// the bounded resource ceiling the flows attach per call; zero lets the
// wallet estimate.
type TxRequest struct {
	To       common.Address
	Data     []byte
	Value    *big.Int
	GasLimit uint64
}

// WalletSession is the wallet capability: identity, signing, and the
// finalization wait. Implementations map their failures onto the
// models error taxonomy.
type WalletSession interface {
	// RequestAccounts returns the addresses the wallet controls.
	// models.ErrWalletUnavailable when no key is configured.
	RequestAccounts(ctx context.Context) ([]common.Address, error)

	// SignAndSend signs and submits one transaction, returning its hash.
	// models.ErrUserRejected or models.ErrSubmissionFailed on failure.
	SignAndSend(ctx context.Context, req TxRequest) (common.Hash, error)

	// AwaitFinalization blocks until the transaction is durably accepted.
	// One wait per submitted action; no tight polling.
	// models.ErrFinalizationFailed on revert or timeout.
	AwaitFinalization(ctx context.Context, tx common.Hash) (*types.Receipt, error)
}

// OfferRegistry is the manager contract that tracks all offers.
type OfferRegistry interface {
	// ListAddresses returns every offer contract address.
	ListAddresses(ctx context.Context) ([]common.Address, error)

	// GetSummaries batch-reads summary fields for all given offers in one
	// call. Buyers are not populated.
	GetSummaries(ctx context.Context, addrs []common.Address) ([]*models.Offer, error)

	// CreateOffer submits the registry's create call and returns the
	// transaction hash.
	CreateOffer(ctx context.Context, durationSeconds uint64, priceMinor *big.Int, name, description string) (common.Hash, error)
}

// OfferContract covers per-offer calls, addressed by the offer's contract.
type OfferContract interface {
	GetBuyers(ctx context.Context, offer common.Address) ([]common.Address, error)
	PlaceOrder(ctx context.Context, offer common.Address) (common.Hash, error)
	WithdrawFunds(ctx context.Context, offer common.Address) (common.Hash, error)
}

// TokenContract is the payment token capability.
type TokenContract interface {
	Approve(ctx context.Context, spender common.Address, amountMinor *big.Int) (common.Hash, error)
	BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error)
	Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error)
}

// FlowSink receives flow status transitions as they happen, so the UI can
// show progress while a flow is suspended on the network.
type FlowSink interface {
	OnFlow(ctx context.Context, status models.FlowStatus)
}

// NopFlowSink discards flow transitions.
type NopFlowSink struct{}

func (NopFlowSink) OnFlow(context.Context, models.FlowStatus) {}

// OfferSelector resolves an ambiguous offer query to a single offer,
// interactively when necessary.
type OfferSelector interface {
	SelectOffer(ctx context.Context, offers []*models.Offer, prompt string) (*models.Offer, error)
}

// Use case result types

// CatalogueResult is a freshly fetched catalogue.
type CatalogueResult struct {
	Offers []*models.Offer
}

// CreateOfferResult reports a finalized create flow. Catalogue is the
// directory refresh that picked up the new offer's assigned address.
type CreateOfferResult struct {
	TxHash    common.Hash
	Catalogue []*models.Offer
}

// PlaceOrderResult reports a finalized two-phase join flow.
type PlaceOrderResult struct {
	ApprovalTx common.Hash
	OrderTx    common.Hash

	// Buyers is the re-fetched buyer list including the new order.
	Buyers []common.Address
}

// WithdrawResult reports a finalized withdraw flow.
type WithdrawResult struct {
	TxHash common.Hash
}

// BalanceResult reports the session's token position.
type BalanceResult struct {
	Balance   *big.Int
	Allowance *big.Int
	Spender   common.Address
}
