// Package pricing holds the pure price computations shared by concert
// listings and checkout. Amounts are minor currency units carried as float64
// at the edges; the arithmetic itself runs on decimals so repeated
// multiply-and-sum never drifts.
package pricing

import (
	"github.com/shopspring/decimal"

	"ms-concerts/internal/models"
)

// ServiceFeePerTicket is the flat surcharge added per ticket at checkout.
const ServiceFeePerTicket = 50

// Totals is the checkout summary for a set of tier selections.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	ServiceFee  float64 `json:"serviceFee"`
	Total       float64 `json:"total"`
	TicketCount int     `json:"ticketCount"`
}

// PriceRange returns the min and max tier price. An empty tier list yields
// (0, 0), which callers must read as "no pricing data", not a free event.
func PriceRange(ticketTypes []models.TicketType) (min, max float64) {
	if len(ticketTypes) == 0 {
		return 0, 0
	}
	min, max = ticketTypes[0].Price, ticketTypes[0].Price
	for _, tt := range ticketTypes[1:] {
		if tt.Price < min {
			min = tt.Price
		}
		if tt.Price > max {
			max = tt.Price
		}
	}
	return min, max
}

// CheckoutTotals sums price×quantity over every tier with a positive
// selection, then adds the flat per-ticket service fee. Selections for
// unknown tiers or with non-positive quantities are ignored. Selecting
// nothing gives all-zero totals; rejecting an empty checkout is the order
// service's call, not a pricing concern.
func CheckoutTotals(ticketTypes []models.TicketType, selections map[int64]int) Totals {
	subtotal := decimal.Zero
	count := 0
	for _, tt := range ticketTypes {
		qty := selections[tt.ID]
		if qty <= 0 {
			continue
		}
		subtotal = subtotal.Add(decimal.NewFromFloat(tt.Price).Mul(decimal.NewFromInt(int64(qty))))
		count += qty
	}
	fee := decimal.NewFromInt(int64(count) * ServiceFeePerTicket)
	total := subtotal.Add(fee)

	return Totals{
		Subtotal:    subtotal.InexactFloat64(),
		ServiceFee:  fee.InexactFloat64(),
		Total:       total.InexactFloat64(),
		TicketCount: count,
	}
}

// OrderTotal recomputes what a submitted order should cost from its line
// items: Σ unitPrice×quantity plus the per-ticket fee.
func OrderTotal(items []models.TicketItemInput) float64 {
	total := decimal.Zero
	count := 0
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		total = total.Add(decimal.NewFromFloat(it.UnitPrice).Mul(decimal.NewFromInt(int64(it.Quantity))))
		count += it.Quantity
	}
	total = total.Add(decimal.NewFromInt(int64(count) * ServiceFeePerTicket))
	return total.InexactFloat64()
}
