package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrPriceRequired    = errors.New("price is required")
	ErrPriceNotNumeric  = errors.New("price must be a number")
	ErrPriceNotPositive = errors.New("price must be greater than 0")
	ErrPriceTooHigh     = errors.New("price must be at most 100000")
)

// MaxPriceUSD is the sanity ceiling for a single subscription price.
var MaxPriceUSD = decimal.NewFromInt(100000)

// ParsePrice validates user-entered price text and rounds it to cents.
func ParsePrice(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, ErrPriceRequired
	}

	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, ErrPriceNotNumeric
	}

	// The ceiling applies to the text as entered, before rounding.
	if value.GreaterThan(MaxPriceUSD) {
		return decimal.Zero, ErrPriceTooHigh
	}
	value = value.Round(2)
	if !value.IsPositive() {
		return decimal.Zero, ErrPriceNotPositive
	}

	return value, nil
}

// ValidatePrice is ParsePrice without the parsed value.
func ValidatePrice(raw string) error {
	_, err := ParsePrice(raw)
	return err
}

// SumPrices adds prices with cent rounding; non-positive prices are skipped.
func SumPrices(subs []Subscription) decimal.Decimal {
	total := decimal.Zero
	for _, sub := range subs {
		if sub.PricePerMonthUSD <= 0 {
			continue
		}
		total = total.Add(decimal.NewFromFloat(sub.PricePerMonthUSD))
	}
	return total.Round(2)
}
