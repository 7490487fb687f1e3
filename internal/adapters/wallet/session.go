package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/groupbuy-labs/groupbuy-cli/internal/config"
	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
	"github.com/groupbuy-labs/groupbuy-cli/internal/usecase"
)

// receiptPollInterval is how often AwaitFinalization re-checks for a
// receipt. Goerli blocks arrive roughly every 12s; polling faster than
// this only burns RPC quota.
const receiptPollInterval = 2 * time.Second

// KeySession implements the wallet session with a locally held private
// key: accounts, signing, and receipt tracking all go through one
// ethclient connection.
type KeySession struct {
	client  *ethclient.Client
	chainID *big.Int
	key     *ecdsa.PrivateKey
	address common.Address
	log     *slog.Logger
}

// NewKeySession creates a session from the runtime config. A missing or
// empty private key is not an error here; the session simply reports no
// accounts and read-only commands keep working.
func NewKeySession(cfg *config.RuntimeConfig, client *ethclient.Client, log *slog.Logger) (*KeySession, error) {
	s := &KeySession{
		client:  client,
		chainID: new(big.Int).SetUint64(cfg.Network.ChainID),
		log:     log,
	}

	if cfg.PrivateKey == "" {
		return s, nil
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	s.key = key
	s.address = crypto.PubkeyToAddress(key.PublicKey)
	return s, nil
}

// RequestAccounts returns the signer address, if a key is configured.
func (s *KeySession) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	if s.key == nil {
		return nil, models.ErrWalletUnavailable
	}
	return []common.Address{s.address}, nil
}

// SignAndSend signs the request with the session key and broadcasts it.
func (s *KeySession) SignAndSend(ctx context.Context, req usecase.TxRequest) (common.Hash, error) {
	if s.key == nil {
		return common.Hash{}, models.ErrWalletUnavailable
	}

	nonce, err := s.client.PendingNonceAt(ctx, s.address)
	if err != nil {
		return common.Hash{}, fmt.Errorf("fetch nonce: %w", err)
	}

	gasPrice, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("fetch gas price: %w", err)
	}

	value := req.Value
	if value == nil {
		value = big.NewInt(0)
	}
	tx := types.NewTransaction(nonce, req.To, value, req.GasLimit, gasPrice, req.Data)

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(s.chainID), s.key)
	if err != nil {
		return common.Hash{}, fmt.Errorf("sign transaction: %w", err)
	}

	if err := s.client.SendTransaction(ctx, signed); err != nil {
		if errors.Is(err, context.Canceled) {
			return common.Hash{}, models.ErrUserRejected
		}
		return common.Hash{}, fmt.Errorf("%w: %v", models.ErrSubmissionFailed, err)
	}

	s.log.Debug("transaction sent", "hash", signed.Hash(), "nonce", nonce, "to", req.To)
	return signed.Hash(), nil
}

// AwaitFinalization polls for the receipt until the transaction is mined
// or the context expires. A reverted transaction is a finalization error,
// not a missing receipt.
func (s *KeySession) AwaitFinalization(ctx context.Context, tx common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := s.client.TransactionReceipt(ctx, tx)
		if err == nil {
			if receipt.Status != types.ReceiptStatusSuccessful {
				return receipt, fmt.Errorf("%w: transaction %s reverted", models.ErrFinalizationFailed, tx)
			}
			s.log.Debug("transaction mined", "hash", tx, "block", receipt.BlockNumber)
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("%w: %v", models.ErrFinalizationFailed, err)
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", models.ErrFinalizationFailed, ctx.Err())
		case <-ticker.C:
		}
	}
}

var _ usecase.WalletSession = (*KeySession)(nil)
