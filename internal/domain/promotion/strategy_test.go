package promotion

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPercentageDiscount(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"valid percentage", 25, false},
		{"full percentage", 100, false},
		{"zero rejected", 0, true},
		{"negative rejected", -5, true},
		{"over 100 rejected", 101, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPercentageDiscount(decimal.NewFromFloat(tt.value))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDirectDiscountAmountFor(t *testing.T) {
	t.Run("percentage of base", func(t *testing.T) {
		d, err := NewPercentageDiscount(decimal.NewFromInt(10))
		require.NoError(t, err)
		amount := d.AmountFor(decimal.NewFromInt(4500))
		assert.True(t, amount.Equal(decimal.NewFromInt(450)))
	})

	t.Run("percentage result rounds half up", func(t *testing.T) {
		d, err := NewPercentageDiscount(decimal.NewFromFloat(33.33))
		require.NoError(t, err)
		amount := d.AmountFor(decimal.NewFromFloat(100))
		assert.Equal(t, "33.33", amount.StringFixed(2))
	})

	t.Run("fixed amount below base", func(t *testing.T) {
		d, err := NewFixedAmountDiscount(decimal.NewFromInt(300))
		require.NoError(t, err)
		amount := d.AmountFor(decimal.NewFromInt(1000))
		assert.True(t, amount.Equal(decimal.NewFromInt(300)))
	})

	t.Run("fixed amount capped at base", func(t *testing.T) {
		d, err := NewFixedAmountDiscount(decimal.NewFromInt(1500))
		require.NoError(t, err)
		amount := d.AmountFor(decimal.NewFromInt(1000))
		assert.True(t, amount.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("fixed amount rejects non-positive value", func(t *testing.T) {
		_, err := NewFixedAmountDiscount(decimal.Zero)
		assert.Error(t, err)
	})
}

func TestNewFixedQuantity(t *testing.T) {
	t.Run("valid two for one", func(t *testing.T) {
		s, err := NewFixedQuantity(2, 1)
		require.NoError(t, err)
		assert.Equal(t, StrategyFixedQuantity, s.Type())
	})

	t.Run("pay below one rejected", func(t *testing.T) {
		_, err := NewFixedQuantity(2, 0)
		assert.Error(t, err)
	})

	t.Run("buy not above pay rejected", func(t *testing.T) {
		_, err := NewFixedQuantity(2, 2)
		assert.Error(t, err)
	})
}

func TestFixedQuantityAmountFor(t *testing.T) {
	unitPrice := decimal.NewFromInt(1500)

	tests := []struct {
		name     string
		buy, pay int
		quantity int
		want     int64
	}{
		{"two units complete one cycle", 2, 1, 2, 1500},
		{"three units leave one leftover at full price", 2, 1, 3, 1500},
		{"four units complete two cycles", 2, 1, 4, 3000},
		{"quantity below buy yields zero", 2, 1, 1, 0},
		{"three for two single cycle", 3, 2, 3, 1500},
		{"three for two with leftovers", 3, 2, 5, 1500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewFixedQuantity(tt.buy, tt.pay)
			require.NoError(t, err)
			amount := s.AmountFor(unitPrice, tt.quantity)
			assert.True(t, amount.Equal(decimal.NewFromInt(tt.want)),
				"got %s, want %d", amount, tt.want)
		})
	}
}

func TestNewConditionalCombo(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s, err := NewConditionalCombo(1, decimal.NewFromInt(50))
		require.NoError(t, err)
		assert.Equal(t, StrategyConditionalCombo, s.Type())
	})

	t.Run("zero minimum quantity rejected", func(t *testing.T) {
		_, err := NewConditionalCombo(0, decimal.NewFromInt(50))
		assert.Error(t, err)
	})

	t.Run("percentage over 100 rejected", func(t *testing.T) {
		_, err := NewConditionalCombo(1, decimal.NewFromInt(150))
		assert.Error(t, err)
	})
}

func TestConditionalComboAmountFor(t *testing.T) {
	s, err := NewConditionalCombo(1, decimal.NewFromInt(50))
	require.NoError(t, err)

	amount := s.AmountFor(decimal.NewFromInt(800))
	assert.True(t, amount.Equal(decimal.NewFromInt(400)))
}

func TestNewFixedPricePerPack(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s, err := NewFixedPricePerPack(3, decimal.NewFromInt(2500))
		require.NoError(t, err)
		assert.Equal(t, StrategyFixedPricePerPack, s.Type())
	})

	t.Run("pack size below two rejected", func(t *testing.T) {
		_, err := NewFixedPricePerPack(1, decimal.NewFromInt(2500))
		assert.Error(t, err)
	})

	t.Run("non-positive pack price rejected", func(t *testing.T) {
		_, err := NewFixedPricePerPack(3, decimal.Zero)
		assert.Error(t, err)
	})
}

func TestFixedPricePerPackAmountFor(t *testing.T) {
	unitPrice := decimal.NewFromInt(1000)

	t.Run("complete pack discounted to pack price", func(t *testing.T) {
		s, err := NewFixedPricePerPack(3, decimal.NewFromInt(2500))
		require.NoError(t, err)

		// 3 units gross 3000, pack at 2500 saves 500
		amount := s.AmountFor(unitPrice, 3)
		assert.True(t, amount.Equal(decimal.NewFromInt(500)))
	})

	t.Run("leftover units charged in full", func(t *testing.T) {
		s, err := NewFixedPricePerPack(3, decimal.NewFromInt(2500))
		require.NoError(t, err)

		amount := s.AmountFor(unitPrice, 5)
		assert.True(t, amount.Equal(decimal.NewFromInt(500)))
	})

	t.Run("two complete packs", func(t *testing.T) {
		s, err := NewFixedPricePerPack(3, decimal.NewFromInt(2500))
		require.NoError(t, err)

		amount := s.AmountFor(unitPrice, 6)
		assert.True(t, amount.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("quantity below pack size yields zero", func(t *testing.T) {
		s, err := NewFixedPricePerPack(3, decimal.NewFromInt(2500))
		require.NoError(t, err)

		assert.True(t, s.AmountFor(unitPrice, 2).IsZero())
	})

	t.Run("pack price above gross value yields zero", func(t *testing.T) {
		s, err := NewFixedPricePerPack(2, decimal.NewFromInt(5000))
		require.NoError(t, err)

		assert.True(t, s.AmountFor(unitPrice, 4).IsZero())
	})
}
