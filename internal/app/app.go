package app

import (
	"log/slog"

	"github.com/groupbuy-labs/groupbuy-cli/internal/config"
	"github.com/groupbuy-labs/groupbuy-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Logger *slog.Logger

	// Shared dependencies
	Selector usecase.OfferSelector

	// The controller fronts the catalogue, selection, session, and flow
	// state for every command.
	Controller *usecase.Controller

	// Use cases addressed directly by commands that bypass the controller
	TokenBalance *usecase.TokenBalance
	ListOffers   *usecase.ListOffers
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	selector usecase.OfferSelector,
	controller *usecase.Controller,
	tokenBalance *usecase.TokenBalance,
	listOffers *usecase.ListOffers,
) (*App, error) {
	return &App{
		Config:       cfg,
		Logger:       logger,
		Selector:     selector,
		Controller:   controller,
		TokenBalance: tokenBalance,
		ListOffers:   listOffers,
	}, nil
}
