package usecase

import (
	"context"
	"log/slog"

	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
)

// ConnectSession obtains the active user identity from the wallet. Stateless
// beyond what the wallet itself caches; safe to call repeatedly.
type ConnectSession struct {
	wallet WalletSession
	log    *slog.Logger
}

// NewConnectSession creates a new ConnectSession use case.
func NewConnectSession(wallet WalletSession, log *slog.Logger) *ConnectSession {
	return &ConnectSession{wallet: wallet, log: log}
}

// Run requests account access and returns the session for the first account.
func (uc *ConnectSession) Run(ctx context.Context) (*models.Session, error) {
	accounts, err := uc.wallet.RequestAccounts(ctx)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, models.ErrWalletUnavailable
	}

	uc.log.Debug("wallet connected", "address", accounts[0])
	return &models.Session{Address: accounts[0], Connected: true}, nil
}
