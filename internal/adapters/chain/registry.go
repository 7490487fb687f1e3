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

// createGasLimit caps the registry's create call. The factory deploys a
// fresh offer contract, so the ceiling sits well above a plain call.
const createGasLimit = 1_200_000

// RegistryAdapter implements the offer registry against the manager
// contract: the directory of offer addresses, the batched summary view,
// and offer creation.
type RegistryAdapter struct {
	client  *ethclient.Client
	wallet  usecase.WalletSession
	address common.Address
	manager *bindings.GroupBuyManager
	log     *slog.Logger
}

// NewRegistryAdapter creates a registry adapter for the configured network.
func NewRegistryAdapter(cfg *config.RuntimeConfig, client *ethclient.Client, wallet usecase.WalletSession, log *slog.Logger) *RegistryAdapter {
	return &RegistryAdapter{
		client:  client,
		wallet:  wallet,
		address: cfg.Network.Registry,
		manager: bindings.NewGroupBuyManager(),
		log:     log,
	}
}

// ListAddresses returns every offer contract address the registry knows,
// in creation order.
func (a *RegistryAdapter) ListAddresses(ctx context.Context) ([]common.Address, error) {
	out, err := a.call(ctx, a.manager.PackGetGroupBuys())
	if err != nil {
		return nil, fmt.Errorf("%w: getGroupBuys: %v", models.ErrRegistryUnreachable, err)
	}

	addrs, err := a.manager.UnpackGetGroupBuys(out)
	if err != nil {
		return nil, fmt.Errorf("%w: decode getGroupBuys: %v", models.ErrRegistryUnreachable, err)
	}
	return addrs, nil
}

// GetSummaries fetches the batched offer view for addrs in one call and
// zips the parallel arrays into offers. A ragged response means the
// registry and this client disagree on the ABI, so the whole batch fails.
func (a *RegistryAdapter) GetSummaries(ctx context.Context, addrs []common.Address) ([]*models.Offer, error) {
	out, err := a.call(ctx, a.manager.PackGetGroupBuyInfo(addrs))
	if err != nil {
		return nil, fmt.Errorf("%w: getGroupBuyInfo: %v", models.ErrRegistryUnreachable, err)
	}

	info, err := a.manager.UnpackGetGroupBuyInfo(out)
	if err != nil {
		return nil, fmt.Errorf("%w: decode getGroupBuyInfo: %v", models.ErrRegistryUnreachable, err)
	}

	n := len(addrs)
	if len(info.EndTime) != n || len(info.Price) != n || len(info.Seller) != n ||
		len(info.GroupBuyState) != n || len(info.ProductName) != n || len(info.ProductDescription) != n {
		return nil, fmt.Errorf("%w: getGroupBuyInfo returned ragged arrays for %d offers", models.ErrRegistryUnreachable, n)
	}

	offers := make([]*models.Offer, n)
	for i := 0; i < n; i++ {
		state := models.OfferOpen
		if info.GroupBuyState[i].Sign() != 0 {
			state = models.OfferEnded
		}
		offers[i] = &models.Offer{
			Address:            addrs[i],
			Seller:             info.Seller[i],
			ProductName:        info.ProductName[i],
			ProductDescription: info.ProductDescription[i],
			PriceMinor:         info.Price[i],
			EndTime:            info.EndTime[i].Uint64(),
			State:              state,
		}
	}
	return offers, nil
}

// CreateOffer submits the create transaction and returns its hash without
// waiting for it to be mined.
func (a *RegistryAdapter) CreateOffer(ctx context.Context, durationSeconds uint64, priceMinor *big.Int, name, description string) (common.Hash, error) {
	data, err := a.manager.TryPackCreateGroupbuy(
		new(big.Int).SetUint64(durationSeconds), priceMinor, name, description)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	return a.wallet.SignAndSend(ctx, usecase.TxRequest{
		To:       a.address,
		Data:     data,
		GasLimit: createGasLimit,
	})
}

func (a *RegistryAdapter) call(ctx context.Context, data []byte) ([]byte, error) {
	return a.client.CallContract(ctx, ethereum.CallMsg{To: &a.address, Data: data}, nil)
}

var _ usecase.OfferRegistry = (*RegistryAdapter)(nil)
