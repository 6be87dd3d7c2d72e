package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction categories mirror the bookkeeping buckets farms actually use.
const (
	CategoryCropSale           = "crop_sale"
	CategoryLivestockSale      = "livestock_sale"
	CategorySeedPurchase       = "seed_purchase"
	CategoryFertilizerPurchase = "fertilizer_purchase"
	CategoryPesticidePurchase  = "pesticide_purchase"
	CategoryEquipmentPurchase  = "equipment_purchase"
	CategoryFuel               = "fuel"
	CategoryLabor              = "labor"
	CategoryVeterinary         = "veterinary"
	CategoryMaintenance        = "maintenance"
	CategoryUtilities          = "utilities"
	CategoryOther              = "other"
)

type FinancialTransaction struct {
	gorm.Model
	UserID          uint            `gorm:"index" json:"user_id"`
	Type            string          `json:"type"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	Date            time.Time       `gorm:"type:date;index" json:"date"`
	Description     string          `json:"description"`
	PaymentMethod   string          `json:"payment_method"`
	ReferenceNumber string          `json:"reference_number"`
	Notes           string          `json:"notes"`
}
