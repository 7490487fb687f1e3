package adapters

import (
	"fmt"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/google/wire"

	"github.com/groupbuy-labs/groupbuy-cli/internal/adapters/chain"
	"github.com/groupbuy-labs/groupbuy-cli/internal/adapters/interactive"
	"github.com/groupbuy-labs/groupbuy-cli/internal/adapters/progress"
	"github.com/groupbuy-labs/groupbuy-cli/internal/adapters/wallet"
	"github.com/groupbuy-labs/groupbuy-cli/internal/config"
	"github.com/groupbuy-labs/groupbuy-cli/internal/usecase"
)

// ProvideEthClient dials the configured network's RPC endpoint.
func ProvideEthClient(cfg *config.RuntimeConfig) (*ethclient.Client, error) {
	client, err := ethclient.Dial(cfg.Network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC %s: %w", cfg.Network.RPCURL, err)
	}
	return client, nil
}

// ProvideFlowSink fans flow transitions out to the recorder that backs the
// controller's snapshots and to a terminal renderer. Non-interactive and
// JSON runs get plain line output instead of a spinner. TUI runs get the
// recorder alone: the full-screen UI owns stdout and renders flow status
// from its snapshots, so nothing else may write to the terminal.
func ProvideFlowSink(cfg *config.RuntimeConfig, recorder *usecase.FlowRecorder) usecase.FlowSink {
	if cfg.TUI {
		return recorder
	}

	var display usecase.FlowSink
	if cfg.NonInteractive || cfg.JSON {
		display = progress.NewPlainFlowSink()
	} else {
		display = progress.NewSpinnerFlowSink()
	}
	return usecase.NewBroadcastSink(recorder, display)
}

// WalletSet provides the key-backed wallet session
var WalletSet = wire.NewSet(
	wallet.NewKeySession,
	wire.Bind(new(usecase.WalletSession), new(*wallet.KeySession)),
)

// ChainSet provides contract-call implementations
var ChainSet = wire.NewSet(
	chain.NewRegistryAdapter,
	wire.Bind(new(usecase.OfferRegistry), new(*chain.RegistryAdapter)),

	chain.NewOfferAdapter,
	wire.Bind(new(usecase.OfferContract), new(*chain.OfferAdapter)),

	chain.NewTokenAdapter,
	wire.Bind(new(usecase.TokenContract), new(*chain.TokenAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.OfferSelector), new(*interactive.SelectorAdapter)),
)

// ProgressSet provides flow status reporting
var ProgressSet = wire.NewSet(
	usecase.NewFlowRecorder,
	ProvideFlowSink,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ProvideEthClient,

	WalletSet,
	ChainSet,
	InteractiveSet,
	ProgressSet,
)
