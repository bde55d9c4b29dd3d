package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ms-concerts/internal/models"
	"ms-concerts/internal/pricing"
)

func TestPriceRangeEmpty(t *testing.T) {
	min, max := pricing.PriceRange(nil)
	assert.Equal(t, float64(0), min)
	assert.Equal(t, float64(0), max)
}

func TestPriceRange(t *testing.T) {
	min, max := pricing.PriceRange([]models.TicketType{
		{ID: 1, Price: 3500},
		{ID: 2, Price: 1000},
		{ID: 3, Price: 5000},
	})
	assert.Equal(t, float64(1000), min)
	assert.Equal(t, float64(5000), max)
}

func TestPriceRangeSingle(t *testing.T) {
	min, max := pricing.PriceRange([]models.TicketType{{ID: 1, Price: 2000}})
	assert.Equal(t, float64(2000), min)
	assert.Equal(t, float64(2000), max)
}

func TestCheckoutTotals(t *testing.T) {
	tiers := []models.TicketType{
		{ID: 1, Price: 5000},
		{ID: 2, Price: 2000},
	}
	totals := pricing.CheckoutTotals(tiers, map[int64]int{1: 2, 2: 1})

	assert.Equal(t, float64(12000), totals.Subtotal)
	assert.Equal(t, 3, totals.TicketCount)
	assert.Equal(t, float64(150), totals.ServiceFee)
	assert.Equal(t, float64(12150), totals.Total)
}

func TestCheckoutTotalsEmptySelection(t *testing.T) {
	tiers := []models.TicketType{{ID: 1, Price: 5000}}
	totals := pricing.CheckoutTotals(tiers, map[int64]int{})

	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.ServiceFee)
	assert.Zero(t, totals.Total)
	assert.Zero(t, totals.TicketCount)
}

func TestCheckoutTotalsIgnoresNonPositiveAndUnknown(t *testing.T) {
	tiers := []models.TicketType{{ID: 1, Price: 5000}}
	totals := pricing.CheckoutTotals(tiers, map[int64]int{1: 0, 2: 3, 9: -1})
	assert.Zero(t, totals.Total)
}

func TestOrderTotal(t *testing.T) {
	total := pricing.OrderTotal([]models.TicketItemInput{
		{TicketTypeID: 1, Quantity: 2, UnitPrice: 5000},
	})
	// 2×5000 + 2×50 fee
	assert.Equal(t, float64(10100), total)
}
