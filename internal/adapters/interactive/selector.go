package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"

	"github.com/groupbuy-labs/groupbuy-cli/internal/config"
	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
	"github.com/groupbuy-labs/groupbuy-cli/internal/usecase"
)

// SelectorAdapter handles interactive offer selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectOffer selects an offer from a list
func (s *SelectorAdapter) SelectOffer(ctx context.Context, offers []*models.Offer, prompt string) (*models.Offer, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(offers) == 0 {
		return nil, fmt.Errorf("no offers provided for selection")
	}

	// If only one match, return it directly
	if len(offers) == 1 {
		return offers[0], nil
	}

	options := formatOfferOptions(offers)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return offers[index], nil
}

// formatOfferOptions creates display strings for offer selection
func formatOfferOptions(offers []*models.Offer) []string {
	return lo.Map(offers, func(offer *models.Offer, _ int) string {
		name := color.New(color.FgWhite, color.Bold).Sprint(offer.ProductName)
		price := color.New(color.FgBlue).Sprint(offer.DisplayPrice())

		stateColor := color.New(color.FgGreen)
		if offer.State != models.OfferOpen {
			stateColor = color.New(color.FgYellow)
		}
		state := stateColor.Sprintf("[%s]", offer.State)

		return fmt.Sprintf("%s %s (%s) %s", name, state, price, offer.Address.Hex())
	})
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		// Empty search shows all items
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		pattern := fuzzy.Find(input, []string{item})
		return len(pattern) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.OfferSelector = (*SelectorAdapter)(nil)
