package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"restaurant/internal/pkg/errs"
)

// ErrPriceFormatIsInvalid indicates that a price string could not be parsed
// as a non-negative decimal currency amount.
var ErrPriceFormatIsInvalid = errs.NewValueIsInvalidError("price format")

// Price is a value object representing a fixed-point currency amount.
// The amount is kept in minor units (cents) as an integer, never as a
// floating point value, so arithmetic and comparison stay exact.
//
// Price is immutable; the zero value is a valid amount of 0.00.
//
// Example usage:
//
//	price, err := kernel.PriceFromString("12.34")
//	if err != nil {
//	    // handle malformed price
//	}
//	fmt.Println(price.String()) // "12.34"
type Price struct {
	cents int64
}

// NewPrice creates a Price from an amount in minor units (cents).
// Negative amounts are rejected: the catalog carries no negative prices.
func NewPrice(cents int64) (Price, error) {
	if cents < 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is not a non-negative amount of cents", cents))
	}
	return Price{cents: cents}, nil
}

// PriceFromString parses a formatted decimal amount such as "12.34" or "5".
// At most two fractional digits are accepted; a single fractional digit is
// treated as tenths ("5.5" is 5.50). The parse is exact, no floating point
// is involved.
func PriceFromString(s string) (Price, error) {
	whole, frac, hasFrac := strings.Cut(strings.TrimSpace(s), ".")
	if whole == "" {
		return Price{}, ErrPriceFormatIsInvalid
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 {
		return Price{}, ErrPriceFormatIsInvalid
	}

	cents := units * 100
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return Price{}, ErrPriceFormatIsInvalid
		}
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil || f < 0 {
			return Price{}, ErrPriceFormatIsInvalid
		}
		if len(frac) == 1 {
			f *= 10
		}
		cents += f
	}

	return Price{cents: cents}, nil
}

// Cents returns the amount in minor units.
func (p Price) Cents() int64 {
	return p.cents
}

// String returns the canonical decimal representation, e.g. "12.34".
// This method implements the fmt.Stringer interface.
func (p Price) String() string {
	return fmt.Sprintf("%d.%02d", p.cents/100, p.cents%100)
}

// IsEqual compares two prices for equality by amount.
func (p Price) IsEqual(other Price) bool {
	return p.cents == other.cents
}
