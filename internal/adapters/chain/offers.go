package chain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/bindings"
	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
	"github.com/groupbuy-labs/groupbuy-cli/internal/usecase"
)

// orderGasLimit caps placeOrder and withdrawFunds calls. Both move token
// balances and append storage, nothing more.
const orderGasLimit = 700_000

// OfferAdapter implements per-offer contract calls. One adapter serves
// every offer; the target address travels with each call.
type OfferAdapter struct {
	client   *ethclient.Client
	wallet   usecase.WalletSession
	groupbuy *bindings.GroupBuy
	log      *slog.Logger
}

// NewOfferAdapter creates an adapter for offer contract calls.
func NewOfferAdapter(client *ethclient.Client, wallet usecase.WalletSession, log *slog.Logger) *OfferAdapter {
	return &OfferAdapter{
		client:   client,
		wallet:   wallet,
		groupbuy: bindings.NewGroupBuy(),
		log:      log,
	}
}

// GetBuyers returns the offer's buyer list in contract storage order.
func (a *OfferAdapter) GetBuyers(ctx context.Context, offer common.Address) ([]common.Address, error) {
	out, err := a.client.CallContract(ctx, ethereum.CallMsg{
		To:   &offer,
		Data: a.groupbuy.PackGetAllOrders(),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: getAllOrders on %s: %v", models.ErrOfferUnreachable, offer, err)
	}

	buyers, err := a.groupbuy.UnpackGetAllOrders(out)
	if err != nil {
		return nil, fmt.Errorf("%w: decode getAllOrders: %v", models.ErrOfferUnreachable, err)
	}
	return buyers, nil
}

// PlaceOrder submits the order transaction against the offer contract.
// The token allowance must already be in place.
func (a *OfferAdapter) PlaceOrder(ctx context.Context, offer common.Address) (common.Hash, error) {
	return a.wallet.SignAndSend(ctx, usecase.TxRequest{
		To:       offer,
		Data:     a.groupbuy.PackPlaceOrder(),
		GasLimit: orderGasLimit,
	})
}

// WithdrawFunds submits the seller payout transaction.
func (a *OfferAdapter) WithdrawFunds(ctx context.Context, offer common.Address) (common.Hash, error) {
	return a.wallet.SignAndSend(ctx, usecase.TxRequest{
		To:       offer,
		Data:     a.groupbuy.PackWithdrawFunds(),
		GasLimit: orderGasLimit,
	})
}

var _ usecase.OfferContract = (*OfferAdapter)(nil)
