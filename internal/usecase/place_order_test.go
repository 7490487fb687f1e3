package usecase_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
	"github.com/groupbuy-labs/groupbuy-cli/internal/usecase"
)

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()
	offerAddr := common.HexToAddress("0x4444444444444444444444444444444444444444")
	buyer := common.HexToAddress("0x2222222222222222222222222222222222222222")
	approvalTx := common.HexToHash("0x0a")
	orderTx := common.HexToHash("0x0b")
	receipt := &types.Receipt{Status: types.ReceiptStatusSuccessful}

	offer := &models.Offer{Address: offerAddr, PriceMinor: big.NewInt(5_000_000), State: models.OfferOpen}

	t.Run("nil offer aborts silently with zero remote calls", func(t *testing.T) {
		offers := new(MockOfferContract)
		token := new(MockTokenContract)
		wallet := new(MockWalletSession)
		sink := &recordingSink{}

		uc := usecase.NewPlaceOrder(offers, token, wallet, sink, testLogger())
		result, err := uc.Run(ctx, nil)

		assert.NoError(t, err)
		assert.Nil(t, result)
		token.AssertNotCalled(t, "Approve")
		offers.AssertNotCalled(t, "PlaceOrder")
		assert.Empty(t, sink.statuses)
	})

	t.Run("both phases in order, then buyer refresh", func(t *testing.T) {
		offers := new(MockOfferContract)
		token := new(MockTokenContract)
		wallet := new(MockWalletSession)
		sink := &recordingSink{}

		// The allowance is the fixed generous ceiling, not the offer price.
		token.On("Approve", ctx, offerAddr, usecase.ApprovalCeilingMinor).Return(approvalTx, nil)
		wallet.On("AwaitFinalization", ctx, approvalTx).Return(receipt, nil)
		offers.On("PlaceOrder", ctx, offerAddr).Return(orderTx, nil)
		wallet.On("AwaitFinalization", ctx, orderTx).Return(receipt, nil)
		offers.On("GetBuyers", ctx, offerAddr).Return([]common.Address{buyer}, nil)

		uc := usecase.NewPlaceOrder(offers, token, wallet, sink, testLogger())
		result, err := uc.Run(ctx, offer)

		require.NoError(t, err)
		assert.Equal(t, approvalTx, result.ApprovalTx)
		assert.Equal(t, orderTx, result.OrderTx)
		assert.Equal(t, []common.Address{buyer}, result.Buyers)
		assert.Equal(t, []models.FlowPhase{
			models.FlowAwaitingApproval,
			models.FlowAwaitingConfirmation,
			models.FlowSucceeded,
		}, sink.phases())
	})

	t.Run("approval failure never reaches phase B", func(t *testing.T) {
		offers := new(MockOfferContract)
		token := new(MockTokenContract)
		wallet := new(MockWalletSession)
		sink := &recordingSink{}

		token.On("Approve", ctx, offerAddr, usecase.ApprovalCeilingMinor).Return(common.Hash{}, models.ErrUserRejected)

		uc := usecase.NewPlaceOrder(offers, token, wallet, sink, testLogger())
		_, err := uc.Run(ctx, offer)

		assert.ErrorIs(t, err, models.ErrUserRejected)
		offers.AssertNotCalled(t, "PlaceOrder")
		offers.AssertNotCalled(t, "GetBuyers")
		assert.Equal(t, []models.FlowPhase{models.FlowFailed}, sink.phases())
	})

	t.Run("approval finalization failure never reaches phase B", func(t *testing.T) {
		offers := new(MockOfferContract)
		token := new(MockTokenContract)
		wallet := new(MockWalletSession)
		sink := &recordingSink{}

		token.On("Approve", ctx, offerAddr, usecase.ApprovalCeilingMinor).Return(approvalTx, nil)
		wallet.On("AwaitFinalization", ctx, approvalTx).Return(nil, models.ErrFinalizationFailed)

		uc := usecase.NewPlaceOrder(offers, token, wallet, sink, testLogger())
		_, err := uc.Run(ctx, offer)

		assert.ErrorIs(t, err, models.ErrFinalizationFailed)
		offers.AssertNotCalled(t, "PlaceOrder")
	})

	t.Run("order failure leaves the buyer list untouched", func(t *testing.T) {
		offers := new(MockOfferContract)
		token := new(MockTokenContract)
		wallet := new(MockWalletSession)
		sink := &recordingSink{}

		token.On("Approve", ctx, offerAddr, usecase.ApprovalCeilingMinor).Return(approvalTx, nil)
		wallet.On("AwaitFinalization", ctx, approvalTx).Return(receipt, nil)
		offers.On("PlaceOrder", ctx, offerAddr).Return(common.Hash{}, models.ErrSubmissionFailed)

		uc := usecase.NewPlaceOrder(offers, token, wallet, sink, testLogger())
		_, err := uc.Run(ctx, offer)

		assert.ErrorIs(t, err, models.ErrSubmissionFailed)
		offers.AssertNotCalled(t, "GetBuyers")
	})

	t.Run("buyer refresh failure still reports the finalized order", func(t *testing.T) {
		offers := new(MockOfferContract)
		token := new(MockTokenContract)
		wallet := new(MockWalletSession)
		sink := &recordingSink{}

		token.On("Approve", ctx, offerAddr, usecase.ApprovalCeilingMinor).Return(approvalTx, nil)
		wallet.On("AwaitFinalization", ctx, approvalTx).Return(receipt, nil)
		offers.On("PlaceOrder", ctx, offerAddr).Return(orderTx, nil)
		wallet.On("AwaitFinalization", ctx, orderTx).Return(receipt, nil)
		offers.On("GetBuyers", ctx, offerAddr).Return(nil, models.ErrOfferUnreachable)

		uc := usecase.NewPlaceOrder(offers, token, wallet, sink, testLogger())
		result, err := uc.Run(ctx, offer)

		require.NoError(t, err)
		assert.Equal(t, orderTx, result.OrderTx)
		assert.Nil(t, result.Buyers)
	})
}
