package config

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// RuntimeConfig is the fully resolved configuration injected into use cases
// and adapters. Flags, environment, and groupbuy.toml are merged once at
// startup; nothing reads viper after this point.
type RuntimeConfig struct {
	// ConfigDir is the directory holding groupbuy.toml, or the CWD when no
	// file was found.
	ConfigDir string

	// Network is the selected target network. Never nil after Provider.
	Network *Network

	// PrivateKey is the hex-encoded signing key, usually sourced from
	// GROUPBUY_PRIVATE_KEY via .env. Empty means read-only mode.
	PrivateKey string

	Debug          bool
	NonInteractive bool
	JSON           bool

	// TUI marks a run where a full-screen terminal UI owns stdout. Flow
	// progress must not be printed directly; the UI reads it from the
	// recorder instead.
	TUI bool

	// Timeout bounds one command invocation end to end, including
	// finalization waits.
	Timeout time.Duration
}

// Network describes one chain the client can talk to, with the deployed
// registry and payment-token contract addresses.
type Network struct {
	Name        string
	RPCURL      string
	ChainID     uint64
	Registry    common.Address
	Token       common.Address
	ExplorerURL string
}

// ExplorerAddressURL renders an explorer link for an address, or empty when
// the network has no explorer configured.
func (n *Network) ExplorerAddressURL(addr common.Address) string {
	if n.ExplorerURL == "" {
		return ""
	}
	return n.ExplorerURL + "/address/" + addr.Hex()
}

// ExplorerTxURL renders an explorer link for a transaction, or empty when
// the network has no explorer configured.
func (n *Network) ExplorerTxURL(tx common.Hash) string {
	if n.ExplorerURL == "" {
		return ""
	}
	return n.ExplorerURL + "/tx/" + tx.Hex()
}

// File is the on-disk shape of groupbuy.toml.
type File struct {
	DefaultNetwork string                 `toml:"default_network"`
	Networks       map[string]FileNetwork `toml:"networks"`
}

// FileNetwork is one [networks.<name>] table in groupbuy.toml. Addresses are
// hex strings in the file and validated during resolution.
type FileNetwork struct {
	RPCURL      string `toml:"rpc_url"`
	ChainID     uint64 `toml:"chain_id"`
	Registry    string `toml:"registry"`
	Token       string `toml:"token"`
	ExplorerURL string `toml:"explorer_url"`
}
