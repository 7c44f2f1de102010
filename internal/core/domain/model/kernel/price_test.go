package kernel_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	t.Run("should create price from cents", func(t *testing.T) {
		price, err := kernel.NewPrice(1234)

		require.NoError(t, err)
		assert.Equal(t, int64(1234), price.Cents())
		assert.Equal(t, "12.34", price.String())
	})

	t.Run("should accept zero", func(t *testing.T) {
		price, err := kernel.NewPrice(0)

		require.NoError(t, err)
		assert.Equal(t, "0.00", price.String())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewPrice(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPriceFromString(t *testing.T) {
	t.Run("should parse two fractional digits", func(t *testing.T) {
		price, err := kernel.PriceFromString("12.34")

		require.NoError(t, err)
		assert.Equal(t, int64(1234), price.Cents())
	})

	t.Run("should parse whole amount without fraction", func(t *testing.T) {
		price, err := kernel.PriceFromString("5")

		require.NoError(t, err)
		assert.Equal(t, int64(500), price.Cents())
	})

	t.Run("should treat single fractional digit as tenths", func(t *testing.T) {
		price, err := kernel.PriceFromString("5.5")

		require.NoError(t, err)
		assert.Equal(t, int64(550), price.Cents())
	})

	t.Run("should tolerate surrounding whitespace", func(t *testing.T) {
		price, err := kernel.PriceFromString(" 3.20 ")

		require.NoError(t, err)
		assert.Equal(t, int64(320), price.Cents())
	})

	t.Run("should round-trip through String", func(t *testing.T) {
		price, err := kernel.PriceFromString("7.05")

		require.NoError(t, err)
		assert.Equal(t, "7.05", price.String())

		again, err := kernel.PriceFromString(price.String())
		require.NoError(t, err)
		assert.True(t, price.IsEqual(again))
	})

	t.Run("should reject malformed amounts", func(t *testing.T) {
		for _, input := range []string{"", ".", "12.", "12.345", "abc", "-3.00", "1.-5", "1,50"} {
			_, err := kernel.PriceFromString(input)
			require.Error(t, err, "input %q", input)
		}
	})
}

func TestPrice_IsEqual(t *testing.T) {
	t.Run("should compare by amount", func(t *testing.T) {
		a, _ := kernel.NewPrice(100)
		b, _ := kernel.PriceFromString("1.00")
		c, _ := kernel.NewPrice(101)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
