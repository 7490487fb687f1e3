package render

import (
	"fmt"
	"io"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/groupbuy-labs/groupbuy-cli/internal/config"
	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
)

// OfferRenderer renders a single offer's detail view
type OfferRenderer struct {
	out io.Writer
	cfg *config.RuntimeConfig
}

// NewOfferRenderer creates a new offer detail renderer
func NewOfferRenderer(out io.Writer, cfg *config.RuntimeConfig) *OfferRenderer {
	return &OfferRenderer{out: out, cfg: cfg}
}

// RenderOffer renders the full detail view, buyer list included when it
// has been fetched.
func (r *OfferRenderer) RenderOffer(offer *models.Offer, eligibility models.Eligibility) error {
	headerStyle.Fprintf(r.out, "%s\n", offer.ProductName)
	if offer.ProductDescription != "" {
		fmt.Fprintf(r.out, "%s\n", offer.ProductDescription)
	}
	fmt.Fprintln(r.out)

	fmt.Fprintf(r.out, "Price:    %s\n", priceStyle.Sprint(offer.DisplayPrice()))
	fmt.Fprintf(r.out, "State:    %s\n", renderState(offer.State))
	fmt.Fprintf(r.out, "Ends:     %s (%s)\n",
		time.Unix(int64(offer.EndTime), 0).Format(time.RFC1123),
		renderTimeRemaining(offer, time.Now()))
	fmt.Fprintf(r.out, "Seller:   %s\n", r.addressLink(offer.Seller))
	fmt.Fprintf(r.out, "Contract: %s\n", r.addressLink(offer.Address))

	if offer.Buyers != nil {
		fmt.Fprintf(r.out, "\nBuyers (%d):\n", len(offer.Buyers))
		for _, buyer := range offer.Buyers {
			fmt.Fprintf(r.out, "  %s\n", r.addressLink(buyer))
		}
	}

	var actions []string
	if eligibility.CanPlaceOrder {
		actions = append(actions, "join")
	}
	if eligibility.CanWithdraw {
		actions = append(actions, "withdraw")
	}
	if len(actions) > 0 {
		fmt.Fprintf(r.out, "\nAvailable actions: %v\n", actions)
	}

	return nil
}

// addressLink renders an address with its explorer URL when the network
// has one configured.
func (r *OfferRenderer) addressLink(addr common.Address) string {
	link := r.cfg.Network.ExplorerAddressURL(addr)
	if link == "" {
		return addr.Hex()
	}
	return fmt.Sprintf("%s %s", addr.Hex(), addressStyle.Sprint(link))
}
