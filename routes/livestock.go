package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/slight125/FarmFlow/assistant"
	"github.com/slight125/FarmFlow/database"
	"github.com/slight125/FarmFlow/middleware"
	"github.com/slight125/FarmFlow/models"
	"github.com/slight125/FarmFlow/utils"
)

func SetupLivestockRoutes(app *fiber.App) {
	livestock := app.Group("/livestock", middleware.JWTMiddleware)
	livestock.Get("/", listLivestock)
	livestock.Post("/", createLivestock)
	livestock.Get("/:id", getLivestock)
	livestock.Put("/:id", updateLivestock)
	livestock.Delete("/:id", deleteLivestock)
	livestock.Get("/:id/care-plan", livestockCarePlan)
}

type livestockPayload struct {
	TagNumber     string  `json:"tag_number" validate:"required"`
	Type          string  `json:"type" validate:"required,oneof=cattle poultry sheep goat pig other"`
	Breed         string  `json:"breed"`
	Gender        string  `json:"gender" validate:"omitempty,oneof=male female"`
	DateAcquired  string  `json:"date_acquired" validate:"required"`
	DateOfBirth   string  `json:"date_of_birth"`
	Status        string  `json:"status" validate:"omitempty,oneof=healthy sick under_treatment pregnant sold deceased"`
	Weight        *string `json:"weight"`
	PurchasePrice *string `json:"purchase_price"`
	CurrentValue  *string `json:"current_value"`
	Notes         string  `json:"notes"`
}

func (p *livestockPayload) apply(animal *models.Livestock) error {
	acquired, err := utils.ParseDate(p.DateAcquired)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	birth, err := utils.ParseOptionalDate(p.DateOfBirth)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	animal.TagNumber = p.TagNumber
	animal.Type = p.Type
	animal.Breed = p.Breed
	animal.Gender = p.Gender
	animal.DateAcquired = acquired
	animal.DateOfBirth = birth
	if p.Status != "" {
		animal.Status = p.Status
	}
	for _, f := range []struct {
		raw  *string
		dst  **decimal.Decimal
		name string
	}{
		{p.Weight, &animal.Weight, "weight"},
		{p.PurchasePrice, &animal.PurchasePrice, "purchase price"},
		{p.CurrentValue, &animal.CurrentValue, "current value"},
	} {
		if f.raw == nil {
			continue
		}
		v, err := decimal.NewFromString(*f.raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid "+f.name)
		}
		*f.dst = &v
	}
	animal.Notes = p.Notes
	return nil
}

func listLivestock(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	q := database.DB.Where("user_id = ?", userID).Order("tag_number")
	if t := c.Query("type"); t != "" {
		q = q.Where("type = ?", t)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	var animals []models.Livestock
	if err := q.Find(&animals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not list livestock"})
	}
	return c.JSON(fiber.Map{"livestock": animals})
}

func getLivestock(c *fiber.Ctx) error {
	animal, err := findLivestock(c)
	if err != nil {
		return err
	}
	return c.JSON(animal)
}

func createLivestock(c *fiber.Ctx) error {
	var body livestockPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload"})
	}
	if err := utils.ValidateStruct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	animal := models.Livestock{
		UserID: middleware.UserID(c),
		Status: models.LivestockStatusHealthy,
	}
	if err := body.apply(&animal); err != nil {
		return err
	}

	var dup int64
	database.DB.Model(&models.Livestock{}).Where("tag_number = ?", animal.TagNumber).Count(&dup)
	if dup > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tag number already in use"})
	}

	if err := database.DB.Create(&animal).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create livestock record"})
	}
	return c.Status(fiber.StatusCreated).JSON(animal)
}

func updateLivestock(c *fiber.Ctx) error {
	animal, err := findLivestock(c)
	if err != nil {
		return err
	}
	var body livestockPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload"})
	}
	if err := utils.ValidateStruct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if body.TagNumber != animal.TagNumber {
		var dup int64
		database.DB.Model(&models.Livestock{}).Where("tag_number = ?", body.TagNumber).Count(&dup)
		if dup > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tag number already in use"})
		}
	}
	if err := body.apply(animal); err != nil {
		return err
	}
	if err := database.DB.Save(animal).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update livestock record"})
	}
	return c.JSON(animal)
}

func deleteLivestock(c *fiber.Ctx) error {
	animal, err := findLivestock(c)
	if err != nil {
		return err
	}
	database.DB.Model(&models.Task{}).Where("related_livestock_id = ?", animal.ID).Update("related_livestock_id", nil)
	database.DB.Model(&models.Activity{}).Where("related_livestock_id = ?", animal.ID).Update("related_livestock_id", nil)
	if err := database.DB.Delete(animal).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete livestock record"})
	}
	return c.JSON(fiber.Map{"message": "Livestock record deleted"})
}

func livestockCarePlan(c *fiber.Ctx) error {
	animal, err := findLivestock(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"care_plan": assistant.LivestockCarePlan(animal, time.Now())})
}

func findLivestock(c *fiber.Ctx) (*models.Livestock, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	var animal models.Livestock
	res := database.DB.Where("id = ? AND user_id = ?", id, middleware.UserID(c)).First(&animal)
	if res.Error != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Livestock record not found")
	}
	return &animal, nil
}
