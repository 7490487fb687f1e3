package models

import (
	"fmt"
	"math/big"
	"strings"
)

// AmountScale is the number of decimal places the payment token carries.
// Prices travel on the wire as integer minor units scaled by 10^AmountScale.
const AmountScale = 6

var scaleFactor = new(big.Int).Exp(big.NewInt(10), big.NewInt(AmountScale), nil)

// ParseAmount converts a decimal display amount ("12.50") into minor units
// (12500000). Only integer math is used; more than AmountScale fractional
// digits is an error rather than a silent truncation.
func ParseAmount(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty amount")
	}

	whole, frac := s, ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		whole, frac = s[:idx], s[idx+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > AmountScale {
		return nil, fmt.Errorf("amount %q has more than %d decimal places", s, AmountScale)
	}
	// Right-pad the fraction to the full scale.
	frac += strings.Repeat("0", AmountScale-len(frac))

	w, ok := new(big.Int).SetString(whole, 10)
	if !ok || w.Sign() < 0 {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	minor := new(big.Int).Mul(w, scaleFactor)
	if frac != strings.Repeat("0", AmountScale) {
		f, ok := new(big.Int).SetString(frac, 10)
		if !ok {
			return nil, fmt.Errorf("invalid amount %q", s)
		}
		minor.Add(minor, f)
	}
	return minor, nil
}

// FormatAmount renders minor units as a decimal display string, trimming
// trailing fractional zeros ("12500000" -> "12.50", "5000000" -> "5.00").
// Two fractional digits are always kept so prices read as money.
func FormatAmount(minor *big.Int) string {
	if minor == nil {
		return "0.00"
	}
	q, r := new(big.Int).QuoRem(minor, scaleFactor, new(big.Int))
	frac := fmt.Sprintf("%0*d", AmountScale, r)
	frac = strings.TrimRight(frac, "0")
	for len(frac) < 2 {
		frac += "0"
	}
	return q.String() + "." + frac
}
