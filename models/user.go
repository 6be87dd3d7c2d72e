package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RoleFarmer     = "farmer"
	RoleManager    = "manager"
	RoleWorker     = "worker"
	RoleConsultant = "consultant"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex" json:"email"`
	Password string `json:"-"`

	Profile UserProfile `json:"profile"`
}

// UserProfile is the farm-facing side of an account, one per user.
type UserProfile struct {
	gorm.Model
	UserID   uint             `gorm:"uniqueIndex" json:"user_id"`
	Role     string           `gorm:"default:farmer" json:"role"`
	Phone    string           `json:"phone"`
	FarmName string           `json:"farm_name"`
	Location string           `json:"location"`
	FarmSize *decimal.Decimal `gorm:"type:decimal(10,2)" json:"farm_size"` // acres
}

// CanViewAllFarms reports whether the role gets cross-farm aggregate views.
// Managers and consultants read every account's records but never write them.
func CanViewAllFarms(role string) bool {
	return role == RoleManager || role == RoleConsultant
}
