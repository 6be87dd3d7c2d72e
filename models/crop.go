package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	CropStatusPlanned   = "planned"
	CropStatusPlanted   = "planted"
	CropStatusGrowing   = "growing"
	CropStatusHarvested = "harvested"
	CropStatusSold      = "sold"
)

type Crop struct {
	gorm.Model
	UserID              uint             `gorm:"index" json:"user_id"`
	Name                string           `json:"name"`
	Variety             string           `json:"variety"`
	Area                decimal.Decimal  `gorm:"type:decimal(10,2)" json:"area"` // acres
	PlantingDate        time.Time        `gorm:"type:date" json:"planting_date"`
	ExpectedHarvestDate time.Time        `gorm:"type:date" json:"expected_harvest_date"`
	ActualHarvestDate   *time.Time       `gorm:"type:date" json:"actual_harvest_date"`
	Status              string           `gorm:"default:planned" json:"status"`
	ExpectedYield       *decimal.Decimal `gorm:"type:decimal(10,2)" json:"expected_yield"` // kg
	ActualYield         *decimal.Decimal `gorm:"type:decimal(10,2)" json:"actual_yield"`   // kg
	Notes               string           `json:"notes"`
}

// DaysToHarvest reports how many days remain until the expected harvest.
// Harvested or sold crops always answer 0, as does anything already past due.
func (c *Crop) DaysToHarvest(today time.Time) int {
	if c.Status == CropStatusHarvested || c.Status == CropStatusSold {
		return 0
	}
	days := int(c.ExpectedHarvestDate.Sub(startOfDay(today)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// HarvestOverdue reports a growing crop sitting past its expected harvest date.
func (c *Crop) HarvestOverdue(today time.Time) bool {
	return c.Status == CropStatusGrowing && c.ExpectedHarvestDate.Before(startOfDay(today))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
