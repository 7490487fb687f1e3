package models

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// OfferState mirrors the state enum stored in the offer contract.
type OfferState uint8

const (
	OfferOpen OfferState = iota
	OfferEnded
)

// String returns the display name of the state.
func (s OfferState) String() string {
	switch s {
	case OfferOpen:
		return "Open"
	case OfferEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Offer is the local mirror of one group-buy offer contract. The contract is
// authoritative for every field; the local copy may be stale between reads.
type Offer struct {
	// Address is the offer contract's address and the unique catalogue key.
	Address common.Address

	// Seller created the offer and is the only party allowed to withdraw.
	Seller common.Address

	ProductName        string
	ProductDescription string

	// PriceMinor is the fixed per-buyer price in token minor units
	// (scale 10^6). Transaction inputs must use this value, never the
	// display string.
	PriceMinor *big.Int

	// EndTime is the unix timestamp after which no new orders are accepted.
	EndTime uint64

	State OfferState

	// Buyers holds the ordered buyer list in contract storage order. It is
	// populated lazily by the detail loader; nil means "not fetched yet".
	Buyers []common.Address
}

// DisplayPrice renders the price as a decimal string. Lossless for amounts
// the contracts produce, but display-only: arithmetic stays on PriceMinor.
func (o *Offer) DisplayPrice() string {
	return FormatAmount(o.PriceMinor)
}

// TimeRemaining reports how long the offer stays open relative to now.
// Zero or negative means the closing time has passed.
func (o *Offer) TimeRemaining(now time.Time) time.Duration {
	return time.Unix(int64(o.EndTime), 0).Sub(now)
}

// HasBuyer reports whether addr already placed an order. The contract
// enforces at-most-one order per address, but a duplicate entry in a stale
// local list must not change the answer.
func (o *Offer) HasBuyer(addr common.Address) bool {
	for _, b := range o.Buyers {
		if b == addr {
			return true
		}
	}
	return false
}

// Session is the wallet identity for this run of the client. It is advisory,
// used for UI gating only; the contracts re-validate every mutating call.
type Session struct {
	Address   common.Address
	Connected bool
}
