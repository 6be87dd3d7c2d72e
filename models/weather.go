package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WeatherData holds one manually logged reading, conceptually one per
// farm per day (not enforced by the schema).
type WeatherData struct {
	gorm.Model
	UserID          uint             `gorm:"index" json:"user_id"`
	Date            time.Time        `gorm:"type:date;index" json:"date"`
	TemperatureHigh *decimal.Decimal `gorm:"type:decimal(5,2)" json:"temperature_high"`
	TemperatureLow  *decimal.Decimal `gorm:"type:decimal(5,2)" json:"temperature_low"`
	Humidity        *int             `json:"humidity"`
	Rainfall        *decimal.Decimal `gorm:"type:decimal(6,2)" json:"rainfall"` // mm
	WindSpeed       *decimal.Decimal `gorm:"type:decimal(5,2)" json:"wind_speed"`
	Conditions      string           `json:"conditions"`
	Notes           string           `json:"notes"`
}
