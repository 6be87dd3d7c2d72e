package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNeedsReorder(t *testing.T) {
	cases := []struct {
		name     string
		quantity string
		reorder  string
		want     bool
	}{
		{"above level", "15", "10", false},
		{"exactly at level", "10", "10", true},
		{"below level", "5", "10", true},
		{"zero stock", "0", "10", true},
	}
	for _, tc := range cases {
		item := InventoryItem{
			Quantity:     decimal.RequireFromString(tc.quantity),
			ReorderLevel: decimal.RequireFromString(tc.reorder),
		}
		if got := item.NeedsReorder(); got != tc.want {
			t.Fatalf("%s: NeedsReorder = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestOutOfStock(t *testing.T) {
	cases := []struct {
		quantity string
		want     bool
	}{
		{"0", true},
		{"-2", true},
		{"0.5", false},
		{"10", false},
	}
	for _, tc := range cases {
		item := InventoryItem{Quantity: decimal.RequireFromString(tc.quantity)}
		if got := item.OutOfStock(); got != tc.want {
			t.Fatalf("quantity %s: OutOfStock = %v, want %v", tc.quantity, got, tc.want)
		}
	}
}

func TestTotalValue(t *testing.T) {
	item := InventoryItem{
		Quantity:    decimal.RequireFromString("12.5"),
		CostPerUnit: decimal.RequireFromString("80"),
	}
	if got := item.TotalValue(); !got.Equal(decimal.RequireFromString("1000")) {
		t.Fatalf("TotalValue = %s, want 1000", got)
	}
}
