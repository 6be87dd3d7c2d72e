package database

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/slight125/FarmFlow/config"
	"github.com/slight125/FarmFlow/models"
	"github.com/slight125/FarmFlow/utils"
)

// Seed loads a demo account per role plus a spread of records for the
// farmer, so a fresh install has something to look at. It is a no-op when
// any user already exists.
func Seed(db *gorm.DB) error {
	log := config.GetLogger()

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Debug("seed skipped, users already present")
		return nil
	}

	hash, err := utils.HashPassword("farmflow123")
	if err != nil {
		return err
	}

	demo := []struct {
		name, email, role, farm string
	}{
		{"John Kamau", "farmer@farmflow.test", models.RoleFarmer, "Green Valley Farm"},
		{"Mary Wanjiku", "manager@farmflow.test", models.RoleManager, ""},
		{"Peter Omondi", "worker@farmflow.test", models.RoleWorker, "Green Valley Farm"},
		{"Dr. Grace Njeri", "consultant@farmflow.test", models.RoleConsultant, ""},
	}

	var farmer models.User
	for _, d := range demo {
		size := decimal.NewFromInt(25)
		u := models.User{
			Name:     d.name,
			Email:    d.email,
			Password: hash,
			Profile: models.UserProfile{
				Role:     d.role,
				FarmName: d.farm,
				Location: "Nakuru County",
				FarmSize: &size,
			},
		}
		if err := db.Create(&u).Error; err != nil {
			return err
		}
		if d.role == models.RoleFarmer {
			farmer = u
		}
	}

	today := time.Now()
	date := func(offsetDays int) time.Time {
		return today.AddDate(0, 0, offsetDays)
	}

	crops := []models.Crop{
		{UserID: farmer.ID, Name: "Maize", Variety: "H614", Area: decimal.NewFromInt(10),
			PlantingDate: date(-60), ExpectedHarvestDate: date(30), Status: models.CropStatusGrowing},
		{UserID: farmer.ID, Name: "Tomatoes", Variety: "Rio Grande", Area: decimal.NewFromInt(2),
			PlantingDate: date(-45), ExpectedHarvestDate: date(10), Status: models.CropStatusGrowing},
		{UserID: farmer.ID, Name: "Beans", Variety: "Rosecoco", Area: decimal.NewFromInt(3),
			PlantingDate: date(-90), ExpectedHarvestDate: date(-5), Status: models.CropStatusGrowing},
	}
	if err := db.Create(&crops).Error; err != nil {
		return err
	}

	weight := decimal.NewFromInt(420)
	animals := []models.Livestock{
		{UserID: farmer.ID, Type: models.LivestockTypeCattle, Breed: "Friesian", TagNumber: "GVF-001",
			DateAcquired: date(-400), Gender: "female", Status: models.LivestockStatusHealthy, Weight: &weight},
		{UserID: farmer.ID, Type: models.LivestockTypeGoat, Breed: "Galla", TagNumber: "GVF-014",
			DateAcquired: date(-200), Gender: "male", Status: models.LivestockStatusUnderTreatment},
		{UserID: farmer.ID, Type: models.LivestockTypePoultry, Breed: "Kienyeji", TagNumber: "GVF-P32",
			DateAcquired: date(-120), Gender: "female", Status: models.LivestockStatusHealthy},
	}
	if err := db.Create(&animals).Error; err != nil {
		return err
	}

	items := []models.InventoryItem{
		{UserID: farmer.ID, Name: "DAP Fertilizer", Category: models.InventoryCategoryFertilizer,
			Quantity: decimal.NewFromInt(4), Unit: "bag", ReorderLevel: decimal.NewFromInt(5),
			CostPerUnit: decimal.NewFromInt(6500)},
		{UserID: farmer.ID, Name: "Maize Seed", Category: models.InventoryCategorySeed,
			Quantity: decimal.NewFromInt(30), Unit: "kg", ReorderLevel: decimal.NewFromInt(10),
			CostPerUnit: decimal.NewFromInt(420)},
		{UserID: farmer.ID, Name: "Dairy Meal", Category: models.InventoryCategoryFeed,
			Quantity: decimal.Zero, Unit: "bag", ReorderLevel: decimal.NewFromInt(2),
			CostPerUnit: decimal.NewFromInt(3200)},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	txns := []models.FinancialTransaction{
		{UserID: farmer.ID, Type: models.TransactionIncome, Category: models.CategoryCropSale,
			Amount: decimal.NewFromInt(85000), Date: date(-12), Description: "Tomato sales, Wakulima market"},
		{UserID: farmer.ID, Type: models.TransactionExpense, Category: models.CategoryFertilizerPurchase,
			Amount: decimal.NewFromInt(26000), Date: date(-20), Description: "DAP top dressing"},
		{UserID: farmer.ID, Type: models.TransactionExpense, Category: models.CategoryLabor,
			Amount: decimal.NewFromInt(14000), Date: date(-6), Description: "Casual labour, weeding"},
	}
	if err := db.Create(&txns).Error; err != nil {
		return err
	}

	tasks := []models.Task{
		{UserID: farmer.ID, Title: "Spray tomatoes for blight", Priority: models.PriorityHigh,
			Status: models.TaskStatusPending, DueDate: date(2), RelatedCropID: &crops[1].ID},
		{UserID: farmer.ID, Title: "Repair chicken run fence", Priority: models.PriorityMedium,
			Status: models.TaskStatusPending, DueDate: date(-3)},
	}
	if err := db.Create(&tasks).Error; err != nil {
		return err
	}

	duration := 120
	acts := []models.Activity{
		{UserID: farmer.ID, ActivityType: models.ActivityIrrigation, Title: "Drip irrigation, tomato block",
			Date: today.AddDate(0, 0, -1), Duration: &duration, RelatedCropID: &crops[1].ID},
	}
	if err := db.Create(&acts).Error; err != nil {
		return err
	}

	log.Info("🌱 demo data seeded")
	return nil
}
