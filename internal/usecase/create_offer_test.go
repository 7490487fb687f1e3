package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
	"github.com/groupbuy-labs/groupbuy-cli/internal/usecase"
)

func validCreateParams() usecase.CreateOfferParams {
	return usecase.CreateOfferParams{
		ProductName:        "Mechanical keyboard",
		ProductDescription: "Group buy for 10 units",
		Price:              "12.50",
		DurationMinutes:    30,
	}
}

func TestCreateOfferValidation(t *testing.T) {
	ctx := context.Background()

	mutations := map[string]func(*usecase.CreateOfferParams){
		"empty name":        func(p *usecase.CreateOfferParams) { p.ProductName = "" },
		"empty description": func(p *usecase.CreateOfferParams) { p.ProductDescription = "" },
		"empty price":       func(p *usecase.CreateOfferParams) { p.Price = "" },
		"zero price":        func(p *usecase.CreateOfferParams) { p.Price = "0" },
		"malformed price":   func(p *usecase.CreateOfferParams) { p.Price = "twelve" },
		"zero duration":     func(p *usecase.CreateOfferParams) { p.DurationMinutes = 0 },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			registry := new(MockOfferRegistry)
			wallet := new(MockWalletSession)
			sink := &recordingSink{}
			uc := usecase.NewCreateOffer(registry, wallet, usecase.NewListOffers(registry, testLogger()), sink, testLogger())

			params := validCreateParams()
			mutate(&params)

			_, err := uc.Run(ctx, params)

			assert.ErrorIs(t, err, models.ErrInvalidInput)
			// Local validation must issue zero remote calls.
			registry.AssertNotCalled(t, "CreateOffer")
			wallet.AssertNotCalled(t, "AwaitFinalization")
			assert.Empty(t, sink.statuses)
		})
	}
}

func TestCreateOfferFlow(t *testing.T) {
	ctx := context.Background()
	tx := common.HexToHash("0x0101")
	newOffer := common.HexToAddress("0xcccccccccccccccccccccccccccccccccccccccc")

	t.Run("success refreshes the directory", func(t *testing.T) {
		registry := new(MockOfferRegistry)
		wallet := new(MockWalletSession)
		sink := &recordingSink{}

		// Minutes are converted to seconds, price to minor units.
		registry.On("CreateOffer", ctx, uint64(1800), big.NewInt(12_500_000),
			"Mechanical keyboard", "Group buy for 10 units").Return(tx, nil)
		wallet.On("AwaitFinalization", ctx, tx).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
		registry.On("ListAddresses", ctx).Return([]common.Address{newOffer}, nil)
		registry.On("GetSummaries", ctx, []common.Address{newOffer}).Return([]*models.Offer{{Address: newOffer}}, nil)

		uc := usecase.NewCreateOffer(registry, wallet, usecase.NewListOffers(registry, testLogger()), sink, testLogger())
		result, err := uc.Run(ctx, validCreateParams())

		require.NoError(t, err)
		assert.Equal(t, tx, result.TxHash)
		require.Len(t, result.Catalogue, 1)
		assert.Equal(t, newOffer, result.Catalogue[0].Address)
		assert.Equal(t, []models.FlowPhase{
			models.FlowAwaitingConfirmation,
			models.FlowSucceeded,
		}, sink.phases())
	})

	t.Run("submission failure skips the refresh", func(t *testing.T) {
		registry := new(MockOfferRegistry)
		wallet := new(MockWalletSession)
		sink := &recordingSink{}

		registry.On("CreateOffer", ctx, uint64(1800), big.NewInt(12_500_000),
			"Mechanical keyboard", "Group buy for 10 units").Return(common.Hash{}, models.ErrSubmissionFailed)

		uc := usecase.NewCreateOffer(registry, wallet, usecase.NewListOffers(registry, testLogger()), sink, testLogger())
		_, err := uc.Run(ctx, validCreateParams())

		assert.ErrorIs(t, err, models.ErrSubmissionFailed)
		registry.AssertNotCalled(t, "ListAddresses")
		assert.Equal(t, []models.FlowPhase{models.FlowFailed}, sink.phases())
	})

	t.Run("finalization failure skips the refresh", func(t *testing.T) {
		registry := new(MockOfferRegistry)
		wallet := new(MockWalletSession)
		sink := &recordingSink{}

		registry.On("CreateOffer", ctx, uint64(1800), big.NewInt(12_500_000),
			"Mechanical keyboard", "Group buy for 10 units").Return(tx, nil)
		wallet.On("AwaitFinalization", ctx, tx).Return(nil, models.ErrFinalizationFailed)

		uc := usecase.NewCreateOffer(registry, wallet, usecase.NewListOffers(registry, testLogger()), sink, testLogger())
		_, err := uc.Run(ctx, validCreateParams())

		assert.ErrorIs(t, err, models.ErrFinalizationFailed)
		registry.AssertNotCalled(t, "ListAddresses")
	})

	t.Run("refresh failure after success still reports the transaction", func(t *testing.T) {
		registry := new(MockOfferRegistry)
		wallet := new(MockWalletSession)
		sink := &recordingSink{}

		registry.On("CreateOffer", ctx, uint64(1800), big.NewInt(12_500_000),
			"Mechanical keyboard", "Group buy for 10 units").Return(tx, nil)
		wallet.On("AwaitFinalization", ctx, tx).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
		registry.On("ListAddresses", ctx).Return(nil, errors.New("rpc down"))

		uc := usecase.NewCreateOffer(registry, wallet, usecase.NewListOffers(registry, testLogger()), sink, testLogger())
		result, err := uc.Run(ctx, validCreateParams())

		require.NoError(t, err)
		assert.Equal(t, tx, result.TxHash)
		assert.Nil(t, result.Catalogue)
	})
}
