package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	LivestockTypeCattle  = "cattle"
	LivestockTypePoultry = "poultry"
	LivestockTypeSheep   = "sheep"
	LivestockTypeGoat    = "goat"
	LivestockTypePig     = "pig"
	LivestockTypeOther   = "other"

	LivestockStatusHealthy        = "healthy"
	LivestockStatusSick           = "sick"
	LivestockStatusUnderTreatment = "under_treatment"
	LivestockStatusPregnant       = "pregnant"
	LivestockStatusSold           = "sold"
	LivestockStatusDeceased       = "deceased"
)

type Livestock struct {
	gorm.Model
	UserID        uint             `gorm:"index" json:"user_id"`
	Type          string           `json:"type"`
	Breed         string           `json:"breed"`
	TagNumber     string           `gorm:"uniqueIndex" json:"tag_number"`
	DateAcquired  time.Time        `gorm:"type:date" json:"date_acquired"`
	DateOfBirth   *time.Time       `gorm:"type:date" json:"date_of_birth"`
	Gender        string           `json:"gender"`
	Status        string           `gorm:"default:healthy" json:"status"`
	Weight        *decimal.Decimal `gorm:"type:decimal(8,2)" json:"weight"` // kg
	PurchasePrice *decimal.Decimal `gorm:"type:decimal(10,2)" json:"purchase_price"`
	CurrentValue  *decimal.Decimal `gorm:"type:decimal(10,2)" json:"current_value"`
	Notes         string           `json:"notes"`
}

// NeedsAttention flags animals with a health status a vet should look at.
func (l *Livestock) NeedsAttention() bool {
	return l.Status == LivestockStatusSick || l.Status == LivestockStatusUnderTreatment
}

// AgeMonths returns the animal's age in whole months, or 0 when the birth
// date is unknown.
func (l *Livestock) AgeMonths(today time.Time) int {
	if l.DateOfBirth == nil {
		return 0
	}
	days := int(startOfDay(today).Sub(*l.DateOfBirth).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days / 30
}
