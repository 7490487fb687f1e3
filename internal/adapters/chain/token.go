package chain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/groupbuy-labs/groupbuy-cli/internal/config"
	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/bindings"
	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
	"github.com/groupbuy-labs/groupbuy-cli/internal/usecase"
)

// approveGasLimit caps the ERC-20 approve call, a single storage write.
const approveGasLimit = 100_000

// TokenAdapter implements payment token calls against the network's
// configured ERC-20 contract.
type TokenAdapter struct {
	client  *ethclient.Client
	wallet  usecase.WalletSession
	address common.Address
	token   *bindings.ERC20
	log     *slog.Logger
}

// NewTokenAdapter creates a token adapter for the configured network.
func NewTokenAdapter(cfg *config.RuntimeConfig, client *ethclient.Client, wallet usecase.WalletSession, log *slog.Logger) *TokenAdapter {
	return &TokenAdapter{
		client:  client,
		wallet:  wallet,
		address: cfg.Network.Token,
		token:   bindings.NewERC20(),
		log:     log,
	}
}

// Approve grants spender an allowance of amountMinor token minor units.
func (a *TokenAdapter) Approve(ctx context.Context, spender common.Address, amountMinor *big.Int) (common.Hash, error) {
	return a.wallet.SignAndSend(ctx, usecase.TxRequest{
		To:       a.address,
		Data:     a.token.PackApprove(spender, amountMinor),
		GasLimit: approveGasLimit,
	})
}

// BalanceOf returns owner's token balance in minor units.
func (a *TokenAdapter) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	out, err := a.call(ctx, a.token.PackBalanceOf(owner))
	if err != nil {
		return nil, fmt.Errorf("%w: balanceOf: %v", models.ErrOfferUnreachable, err)
	}
	return a.token.UnpackBalanceOf(out)
}

// Allowance returns how much spender may still move from owner's balance.
func (a *TokenAdapter) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	out, err := a.call(ctx, a.token.PackAllowance(owner, spender))
	if err != nil {
		return nil, fmt.Errorf("%w: allowance: %v", models.ErrOfferUnreachable, err)
	}
	return a.token.UnpackAllowance(out)
}

func (a *TokenAdapter) call(ctx context.Context, data []byte) ([]byte, error) {
	return a.client.CallContract(ctx, ethereum.CallMsg{To: &a.address, Data: data}, nil)
}

var _ usecase.TokenContract = (*TokenAdapter)(nil)
