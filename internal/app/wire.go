//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/groupbuy-labs/groupbuy-cli/internal/adapters"
	"github.com/groupbuy-labs/groupbuy-cli/internal/config"
	"github.com/groupbuy-labs/groupbuy-cli/internal/logging"
	"github.com/groupbuy-labs/groupbuy-cli/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration and logging
		config.Provider,
		logging.NewLogger,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewConnectSession,
		usecase.NewListOffers,
		usecase.NewLoadBuyers,
		usecase.NewCreateOffer,
		usecase.NewPlaceOrder,
		usecase.NewWithdrawFunds,
		usecase.NewTokenBalance,
		usecase.NewController,

		// App
		NewApp,
	)
	return nil, nil
}
