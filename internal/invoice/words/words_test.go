package words

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestConvertIndianNumbering(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"1", "One Rupees Only"},
		{"15", "Fifteen Rupees Only"},
		{"29", "Twenty-Nine Rupees Only"},
		{"40", "Forty Rupees Only"},
		{"100", "One Hundred Rupees Only"},
		{"105", "One Hundred Five Rupees Only"},
		{"999", "Nine Hundred Ninety-Nine Rupees Only"},
		{"1000", "One Thousand Rupees Only"},
		{"1205", "One Thousand Two Hundred Five Rupees Only"},
		{"99999", "Ninety-Nine Thousand Nine Hundred Ninety-Nine Rupees Only"},
		{"100000", "One Lakh Rupees Only"},
		{"129800", "One Lakh Twenty-Nine Thousand Eight Hundred Rupees Only"},
		{"10000000", "One Crore Rupees Only"},
		{"12345678", "One Crore Twenty-Three Lakh Forty-Five Thousand Six Hundred Seventy-Eight Rupees Only"},
	}

	for _, tc := range cases {
		got := Convert(decimal.RequireFromString(tc.amount))
		assert.Equal(t, tc.want, got, "amount %s", tc.amount)
	}
}

func TestConvertPaise(t *testing.T) {
	assert.Equal(t, "Ten Rupees and Fifty Paise Only", Convert(decimal.RequireFromString("10.50")))
	assert.Equal(t, "One Rupees and One Paise Only", Convert(decimal.RequireFromString("1.01")))
	// A fraction below half a paise narrates the rupees alone.
	assert.Equal(t, "Ten Rupees Only", Convert(decimal.RequireFromString("10.001")))
}

func TestConvertPaiseRoundingCarry(t *testing.T) {
	// 9.999 rounds the paise up to a whole rupee.
	assert.Equal(t, "Ten Rupees Only", Convert(decimal.RequireFromString("9.999")))
}

func TestConvertZeroAndNegative(t *testing.T) {
	assert.Equal(t, "", Convert(decimal.Zero))
	assert.Equal(t, "", Convert(decimal.RequireFromString("-5")))
}
