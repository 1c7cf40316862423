package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid amount and currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromFloat(100.50), ARS)
		require.NoError(t, err)
		assert.Equal(t, ARS, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(100.50)))
	})

	t.Run("returns error for empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromFloat(100), "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "currency cannot be empty")
	})
}

func TestNewMoneyARS(t *testing.T) {
	m := NewMoneyARS(decimal.NewFromFloat(1500.00))
	assert.Equal(t, ARS, m.Currency())
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(1500.00)))
}

func TestZeroARS(t *testing.T) {
	m := ZeroARS()
	assert.True(t, m.IsZero())
	assert.Equal(t, ARS, m.Currency())
}

func TestMoneyAdd(t *testing.T) {
	t.Run("adds amounts with same currency", func(t *testing.T) {
		a := NewMoneyARS(decimal.NewFromInt(1500))
		b := NewMoneyARS(decimal.NewFromInt(800))
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, sum.Amount().Equal(decimal.NewFromInt(2300)))
	})

	t.Run("rejects mixed currencies", func(t *testing.T) {
		a := NewMoneyARS(decimal.NewFromInt(100))
		b, err := NewMoney(decimal.NewFromInt(100), USD)
		require.NoError(t, err)
		_, err = a.Add(b)
		assert.Error(t, err)
	})
}

func TestMoneySubtract(t *testing.T) {
	t.Run("subtracts amounts with same currency", func(t *testing.T) {
		a := NewMoneyARS(decimal.NewFromInt(3000))
		b := NewMoneyARS(decimal.NewFromInt(1500))
		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.True(t, diff.Amount().Equal(decimal.NewFromInt(1500)))
	})

	t.Run("rejects mixed currencies", func(t *testing.T) {
		a := NewMoneyARS(decimal.NewFromInt(500))
		b, err := NewMoney(decimal.NewFromInt(300), EUR)
		require.NoError(t, err)
		_, err = a.Subtract(b)
		assert.Error(t, err)
	})
}

func TestMoneyEquals(t *testing.T) {
	a := NewMoneyARS(decimal.NewFromInt(1000))
	b := NewMoneyARS(decimal.NewFromInt(1000))
	c, err := NewMoney(decimal.NewFromInt(1000), USD)
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestMoneyString(t *testing.T) {
	m := NewMoneyARS(decimal.NewFromFloat(1234.5))
	assert.Equal(t, "1234.50 ARS", m.String())
}
