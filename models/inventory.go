package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	InventoryCategorySeed       = "seed"
	InventoryCategoryFertilizer = "fertilizer"
	InventoryCategoryPesticide  = "pesticide"
	InventoryCategoryEquipment  = "equipment"
	InventoryCategoryFeed       = "feed"
	InventoryCategoryMedicine   = "medicine"
	InventoryCategoryFuel       = "fuel"
	InventoryCategoryOther      = "other"
)

type InventoryItem struct {
	gorm.Model
	UserID       uint            `gorm:"index" json:"user_id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Quantity     decimal.Decimal `gorm:"type:decimal(10,2)" json:"quantity"`
	Unit         string          `json:"unit"`
	ReorderLevel decimal.Decimal `gorm:"type:decimal(10,2)" json:"reorder_level"`
	CostPerUnit  decimal.Decimal `gorm:"type:decimal(10,2)" json:"cost_per_unit"`
	Supplier     string          `json:"supplier"`
	PurchaseDate *time.Time      `gorm:"type:date" json:"purchase_date"`
	ExpiryDate   *time.Time      `gorm:"type:date" json:"expiry_date"`
	Location     string          `json:"location"`
	Notes        string          `json:"notes"`
}

// NeedsReorder is true at or below the reorder level: hitting the level
// exactly counts as needing a reorder.
func (i *InventoryItem) NeedsReorder() bool {
	return i.Quantity.LessThanOrEqual(i.ReorderLevel)
}

// OutOfStock is the stronger flag: nothing left at all.
func (i *InventoryItem) OutOfStock() bool {
	return i.Quantity.IsZero() || i.Quantity.IsNegative()
}

func (i *InventoryItem) TotalValue() decimal.Decimal {
	return i.Quantity.Mul(i.CostPerUnit)
}
