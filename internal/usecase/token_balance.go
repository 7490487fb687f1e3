package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
)

// TokenBalance reads the session's payment-token balance, and optionally the
// allowance already granted to a specific offer contract.
type TokenBalance struct {
	token TokenContract
}

// NewTokenBalance creates a new TokenBalance use case.
func NewTokenBalance(token TokenContract) *TokenBalance {
	return &TokenBalance{token: token}
}

// Run reads balance and, when spender is non-zero, the current allowance.
func (uc *TokenBalance) Run(ctx context.Context, owner, spender common.Address) (*BalanceResult, error) {
	if owner == (common.Address{}) {
		return nil, models.ErrWalletUnavailable
	}

	balance, err := uc.token.BalanceOf(ctx, owner)
	if err != nil {
		return nil, err
	}

	result := &BalanceResult{Balance: balance, Spender: spender}
	if spender != (common.Address{}) {
		allowance, err := uc.token.Allowance(ctx, owner, spender)
		if err != nil {
			return nil, err
		}
		result.Allowance = allowance
	}
	return result, nil
}
