package models_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"12.50", 12_500_000},
		{"5.00", 5_000_000},
		{"5", 5_000_000},
		{"0.000001", 1},
		{"1000", 1_000_000_000},
		{".5", 500_000},
		{"0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := models.ParseAmount(tt.in)
			require.NoError(t, err)
			assert.Equal(t, big.NewInt(tt.want), got)
		})
	}

	for _, in := range []string{"", "abc", "-5", "1.2345678", "1.2.3"} {
		t.Run("rejects "+in, func(t *testing.T) {
			_, err := models.ParseAmount(in)
			assert.Error(t, err)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		minor int64
		want  string
	}{
		{12_500_000, "12.50"},
		{5_000_000, "5.00"},
		{1, "0.000001"},
		{1_000_000_500, "1000.0005"},
		{0, "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, models.FormatAmount(big.NewInt(tt.minor)))
		})
	}

	t.Run("nil is zero", func(t *testing.T) {
		assert.Equal(t, "0.00", models.FormatAmount(nil))
	})
}

// A price typed into the create form must survive the trip to calldata minor
// units and back to a catalogue display string.
func TestAmountRoundTrip(t *testing.T) {
	minor, err := models.ParseAmount("12.50")
	require.NoError(t, err)
	require.Equal(t, big.NewInt(12_500_000), minor)
	assert.Equal(t, "12.50", models.FormatAmount(minor))
}
