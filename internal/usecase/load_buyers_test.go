package usecase_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
	"github.com/groupbuy-labs/groupbuy-cli/internal/usecase"
)

func TestLoadBuyers(t *testing.T) {
	ctx := context.Background()
	offerAddr := common.HexToAddress("0x4444444444444444444444444444444444444444")
	first := common.HexToAddress("0x2222222222222222222222222222222222222222")
	second := common.HexToAddress("0x3333333333333333333333333333333333333333")

	t.Run("returns addresses in storage order", func(t *testing.T) {
		offers := new(MockOfferContract)
		offers.On("GetBuyers", ctx, offerAddr).Return([]common.Address{second, first}, nil)

		uc := usecase.NewLoadBuyers(offers, testLogger())
		buyers, err := uc.Run(ctx, &models.Offer{Address: offerAddr})

		require.NoError(t, err)
		assert.Equal(t, []common.Address{second, first}, buyers)
	})

	t.Run("nil offer is invalid input", func(t *testing.T) {
		uc := usecase.NewLoadBuyers(new(MockOfferContract), testLogger())
		_, err := uc.Run(ctx, nil)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})

	t.Run("fetch failure passes through for the caller to retain state", func(t *testing.T) {
		offers := new(MockOfferContract)
		offers.On("GetBuyers", ctx, offerAddr).Return(nil, models.ErrOfferUnreachable)

		uc := usecase.NewLoadBuyers(offers, testLogger())
		_, err := uc.Run(ctx, &models.Offer{Address: offerAddr})

		assert.ErrorIs(t, err, models.ErrOfferUnreachable)
	})
}
