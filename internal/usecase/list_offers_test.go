package usecase_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
	"github.com/groupbuy-labs/groupbuy-cli/internal/usecase"
)

func TestListOffers(t *testing.T) {
	ctx := context.Background()
	addrA := common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	addrB := common.HexToAddress("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")

	t.Run("batched summaries become the catalogue", func(t *testing.T) {
		offers := []*models.Offer{
			{Address: addrA, ProductName: "Keyboard", PriceMinor: big.NewInt(12_500_000)},
			{Address: addrB, ProductName: "Monitor", PriceMinor: big.NewInt(200_000_000)},
		}

		registry := new(MockOfferRegistry)
		registry.On("ListAddresses", ctx).Return([]common.Address{addrA, addrB}, nil)
		registry.On("GetSummaries", ctx, []common.Address{addrA, addrB}).Return(offers, nil)

		uc := usecase.NewListOffers(registry, testLogger())
		result, err := uc.Run(ctx)

		require.NoError(t, err)
		assert.Equal(t, offers, result.Offers)
		// Buyers stay unpopulated until the detail loader runs.
		for _, offer := range result.Offers {
			assert.Nil(t, offer.Buyers)
		}
	})

	t.Run("empty registry yields empty catalogue without a batch call", func(t *testing.T) {
		registry := new(MockOfferRegistry)
		registry.On("ListAddresses", ctx).Return([]common.Address{}, nil)

		uc := usecase.NewListOffers(registry, testLogger())
		result, err := uc.Run(ctx)

		require.NoError(t, err)
		assert.Empty(t, result.Offers)
		registry.AssertNotCalled(t, "GetSummaries", ctx, mock.Anything)
	})

	t.Run("address list failure publishes nothing", func(t *testing.T) {
		registry := new(MockOfferRegistry)
		registry.On("ListAddresses", ctx).Return(nil, models.ErrRegistryUnreachable)

		uc := usecase.NewListOffers(registry, testLogger())
		result, err := uc.Run(ctx)

		assert.ErrorIs(t, err, models.ErrRegistryUnreachable)
		assert.Nil(t, result)
	})

	t.Run("summary failure publishes no partial catalogue", func(t *testing.T) {
		registry := new(MockOfferRegistry)
		registry.On("ListAddresses", ctx).Return([]common.Address{addrA}, nil)
		registry.On("GetSummaries", ctx, []common.Address{addrA}).Return(nil, models.ErrRegistryUnreachable)

		uc := usecase.NewListOffers(registry, testLogger())
		result, err := uc.Run(ctx)

		assert.ErrorIs(t, err, models.ErrRegistryUnreachable)
		assert.Nil(t, result)
	})
}
