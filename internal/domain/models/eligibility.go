package models

import "github.com/ethereum/go-ethereum/common"

// Eligibility is the set of mutating actions currently legal for a user on
// an offer, derived purely from the mirrored state. Advisory only: the
// contracts re-check everything server-side.
type Eligibility struct {
	CanPlaceOrder bool
	CanWithdraw   bool
}

// Evaluate derives eligibility from an offer and the current user. Pure; no
// caching. Callers must re-derive after every state change. A nil offer or a
// disconnected session permits nothing.
func Evaluate(offer *Offer, user common.Address) Eligibility {
	if offer == nil || user == (common.Address{}) {
		return Eligibility{}
	}
	return Eligibility{
		CanPlaceOrder: offer.State == OfferOpen &&
			user != offer.Seller &&
			!offer.HasBuyer(user),
		CanWithdraw: user == offer.Seller &&
			offer.State == OfferEnded &&
			len(offer.Buyers) > 0,
	}
}
