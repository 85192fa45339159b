package models

import "github.com/shopspring/decimal"

// Persisted cart records and remote payloads carry amounts as plain JSON
// numbers, not strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartState is both the in-memory cart and the persisted record shape.
// Total is always derived from the line items, never stored independently.
type CartState struct {
	CartItems []CartItem      `json:"cartItems"`
	Total     decimal.Decimal `json:"total"`
}

func EmptyCart() CartState {
	return CartState{CartItems: []CartItem{}, Total: decimal.Zero}
}

// ComputeTotal sums unit price times quantity over all line items.
func (s CartState) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.CartItems {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Clone returns an independent copy safe to hand out as a snapshot.
func (s CartState) Clone() CartState {
	items := make([]CartItem, len(s.CartItems))
	copy(items, s.CartItems)
	return CartState{CartItems: items, Total: s.Total}
}
