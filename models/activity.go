package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ActivityPlanting    = "planting"
	ActivityIrrigation  = "irrigation"
	ActivityFertilizing = "fertilization"
	ActivityPesticide   = "pesticide_application"
	ActivityWeeding     = "weeding"
	ActivityHarvesting  = "harvesting"
	ActivityFeeding     = "feeding"
	ActivityVaccination = "vaccination"
	ActivityHealthCheck = "health_check"
	ActivityMilking     = "milking"
	ActivityMaintenance = "maintenance"
	ActivityOther       = "other"
)

// Activity is the append-mostly work log. MaterialsUsed maps material name
// to the quantity string the worker entered.
type Activity struct {
	gorm.Model
	UserID        uint              `gorm:"index" json:"user_id"`
	ActivityType  string            `json:"activity_type"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Date          time.Time         `gorm:"index" json:"date"`
	Duration      *int              `json:"duration"` // minutes
	LaborCost     *decimal.Decimal  `gorm:"type:decimal(10,2)" json:"labor_cost"`
	MaterialsUsed datatypes.JSONMap `json:"materials_used"`
	Notes         string            `json:"notes"`

	RelatedCropID      *uint      `json:"related_crop_id"`
	RelatedLivestockID *uint      `json:"related_livestock_id"`
	RelatedCrop        *Crop      `gorm:"constraint:OnDelete:SET NULL" json:"related_crop,omitempty"`
	RelatedLivestock   *Livestock `gorm:"constraint:OnDelete:SET NULL" json:"related_livestock,omitempty"`
}
