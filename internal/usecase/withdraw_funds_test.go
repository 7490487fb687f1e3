package usecase_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
	"github.com/groupbuy-labs/groupbuy-cli/internal/usecase"
)

func TestWithdrawFunds(t *testing.T) {
	ctx := context.Background()
	offerAddr := common.HexToAddress("0x4444444444444444444444444444444444444444")
	tx := common.HexToHash("0x0c")

	offer := &models.Offer{Address: offerAddr, State: models.OfferEnded}

	t.Run("nil offer aborts silently", func(t *testing.T) {
		offers := new(MockOfferContract)
		wallet := new(MockWalletSession)

		uc := usecase.NewWithdrawFunds(offers, wallet, &recordingSink{}, testLogger())
		result, err := uc.Run(ctx, nil)

		assert.NoError(t, err)
		assert.Nil(t, result)
		offers.AssertNotCalled(t, "WithdrawFunds")
	})

	t.Run("submit and finalize", func(t *testing.T) {
		offers := new(MockOfferContract)
		wallet := new(MockWalletSession)
		sink := &recordingSink{}

		offers.On("WithdrawFunds", ctx, offerAddr).Return(tx, nil)
		wallet.On("AwaitFinalization", ctx, tx).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)

		uc := usecase.NewWithdrawFunds(offers, wallet, sink, testLogger())
		result, err := uc.Run(ctx, offer)

		require.NoError(t, err)
		assert.Equal(t, tx, result.TxHash)
		assert.Equal(t, []models.FlowPhase{
			models.FlowAwaitingConfirmation,
			models.FlowSucceeded,
		}, sink.phases())
		// No refresh: withdrawal changes neither buyers nor state.
		offers.AssertNotCalled(t, "GetBuyers")
	})

	t.Run("revert surfaces as finalization failure", func(t *testing.T) {
		offers := new(MockOfferContract)
		wallet := new(MockWalletSession)
		sink := &recordingSink{}

		offers.On("WithdrawFunds", ctx, offerAddr).Return(tx, nil)
		wallet.On("AwaitFinalization", ctx, tx).Return(nil, models.ErrFinalizationFailed)

		uc := usecase.NewWithdrawFunds(offers, wallet, sink, testLogger())
		_, err := uc.Run(ctx, offer)

		assert.ErrorIs(t, err, models.ErrFinalizationFailed)
		assert.Equal(t, []models.FlowPhase{
			models.FlowAwaitingConfirmation,
			models.FlowFailed,
		}, sink.phases())
	})
}
