package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"

	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
	"github.com/groupbuy-labs/groupbuy-cli/internal/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockWalletSession is a mock implementation of WalletSession
type MockWalletSession struct {
	mock.Mock
}

func (m *MockWalletSession) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]common.Address), args.Error(1)
}

func (m *MockWalletSession) SignAndSend(ctx context.Context, req usecase.TxRequest) (common.Hash, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(common.Hash), args.Error(1)
}

func (m *MockWalletSession) AwaitFinalization(ctx context.Context, tx common.Hash) (*types.Receipt, error) {
	args := m.Called(ctx, tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Receipt), args.Error(1)
}

// MockOfferRegistry is a mock implementation of OfferRegistry
type MockOfferRegistry struct {
	mock.Mock
}

func (m *MockOfferRegistry) ListAddresses(ctx context.Context) ([]common.Address, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]common.Address), args.Error(1)
}

func (m *MockOfferRegistry) GetSummaries(ctx context.Context, addrs []common.Address) ([]*models.Offer, error) {
	args := m.Called(ctx, addrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Offer), args.Error(1)
}

func (m *MockOfferRegistry) CreateOffer(ctx context.Context, durationSeconds uint64, priceMinor *big.Int, name, description string) (common.Hash, error) {
	args := m.Called(ctx, durationSeconds, priceMinor, name, description)
	return args.Get(0).(common.Hash), args.Error(1)
}

// MockOfferContract is a mock implementation of OfferContract
type MockOfferContract struct {
	mock.Mock
}

func (m *MockOfferContract) GetBuyers(ctx context.Context, offer common.Address) ([]common.Address, error) {
	args := m.Called(ctx, offer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]common.Address), args.Error(1)
}

func (m *MockOfferContract) PlaceOrder(ctx context.Context, offer common.Address) (common.Hash, error) {
	args := m.Called(ctx, offer)
	return args.Get(0).(common.Hash), args.Error(1)
}

func (m *MockOfferContract) WithdrawFunds(ctx context.Context, offer common.Address) (common.Hash, error) {
	args := m.Called(ctx, offer)
	return args.Get(0).(common.Hash), args.Error(1)
}

// MockTokenContract is a mock implementation of TokenContract
type MockTokenContract struct {
	mock.Mock
}

func (m *MockTokenContract) Approve(ctx context.Context, spender common.Address, amountMinor *big.Int) (common.Hash, error) {
	args := m.Called(ctx, spender, amountMinor)
	return args.Get(0).(common.Hash), args.Error(1)
}

func (m *MockTokenContract) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockTokenContract) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	args := m.Called(ctx, owner, spender)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

// recordingSink captures every flow transition in order.
type recordingSink struct {
	statuses []models.FlowStatus
}

func (r *recordingSink) OnFlow(_ context.Context, status models.FlowStatus) {
	r.statuses = append(r.statuses, status)
}

func (r *recordingSink) phases() []models.FlowPhase {
	out := make([]models.FlowPhase, len(r.statuses))
	for i, s := range r.statuses {
		out[i] = s.Phase
	}
	return out
}
