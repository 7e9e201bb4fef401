package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDealItemComputeTotal(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		price    string
		discount string
		want     string
	}{
		{name: "no discount", quantity: "2", price: "12.50", discount: "0", want: "25.00"},
		{name: "discount", quantity: "3", price: "100", discount: "10", want: "290.00"},
		{name: "discount equal to subtotal", quantity: "1", price: "20", discount: "20", want: "0.00"},
		{name: "discount above subtotal", quantity: "1", price: "20", discount: "50", want: "0.00"},
		{name: "fractional quantity", quantity: "1.5", price: "9.99", discount: "0", want: "14.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &DealItem{
				Quantity:  decimal.RequireFromString(tt.quantity),
				UnitPrice: decimal.RequireFromString(tt.price),
				Discount:  decimal.RequireFromString(tt.discount),
			}
			item.ComputeTotal()
			assert.Equal(t, tt.want, item.Total.StringFixed(2))
			assert.False(t, item.Total.IsNegative())
		})
	}
}
