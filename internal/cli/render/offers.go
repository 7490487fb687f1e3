package render

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
	"github.com/groupbuy-labs/groupbuy-cli/internal/usecase"
)

// Color styles shared by the offer renderers
var (
	openStyle    = color.New(color.FgGreen)
	endedStyle   = color.New(color.FgYellow)
	failStyle    = color.New(color.FgRed)
	addressStyle = color.New(color.Faint)
	priceStyle   = color.New(color.FgCyan)
	headerStyle  = color.New(color.Bold, color.FgHiWhite)
)

// OffersRenderer renders the offer catalogue as a formatted table
type OffersRenderer struct {
	out io.Writer
}

// NewOffersRenderer creates a new catalogue renderer
func NewOffersRenderer(out io.Writer) *OffersRenderer {
	return &OffersRenderer{out: out}
}

// RenderCatalogue renders the catalogue in table format
func (r *OffersRenderer) RenderCatalogue(result *usecase.CatalogueResult) error {
	if len(result.Offers) == 0 {
		fmt.Fprintln(r.out, "No offers found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Product", "Price", "State", "Ends", "Address"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})

	now := time.Now()
	for i, offer := range result.Offers {
		t.AppendRow(table.Row{
			i + 1,
			offer.ProductName,
			priceStyle.Sprint(offer.DisplayPrice()),
			renderState(offer.State),
			renderTimeRemaining(offer, now),
			addressStyle.Sprint(offer.Address.Hex()),
		})
	}

	t.Render()
	return nil
}

func renderState(state models.OfferState) string {
	if state == models.OfferOpen {
		return openStyle.Sprint(state)
	}
	return endedStyle.Sprint(state)
}

// renderTimeRemaining shows how long an open offer stays joinable. Offers
// already past their closing time render as "closed" even when the
// contract state has not flipped yet.
func renderTimeRemaining(offer *models.Offer, now time.Time) string {
	if offer.State != models.OfferOpen {
		return "-"
	}
	remaining := offer.TimeRemaining(now)
	if remaining <= 0 {
		return "closed"
	}
	return remaining.Round(time.Minute).String()
}
