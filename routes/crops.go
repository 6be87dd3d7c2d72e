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

func SetupCropRoutes(app *fiber.App) {
	crops := app.Group("/crops", middleware.JWTMiddleware)
	crops.Get("/", listCrops)
	crops.Post("/", createCrop)
	crops.Get("/:id", getCrop)
	crops.Put("/:id", updateCrop)
	crops.Delete("/:id", deleteCrop)
	crops.Get("/:id/recommendations", cropRecommendations)
}

type cropPayload struct {
	Name                string  `json:"name" validate:"required"`
	Variety             string  `json:"variety"`
	Area                string  `json:"area" validate:"required"`
	PlantingDate        string  `json:"planting_date" validate:"required"`
	ExpectedHarvestDate string  `json:"expected_harvest_date" validate:"required"`
	ActualHarvestDate   string  `json:"actual_harvest_date"`
	Status              string  `json:"status" validate:"omitempty,oneof=planned planted growing harvested sold"`
	ExpectedYield       *string `json:"expected_yield"`
	ActualYield         *string `json:"actual_yield"`
	Notes               string  `json:"notes"`
}

func (p *cropPayload) apply(crop *models.Crop) error {
	area, err := decimal.NewFromString(p.Area)
	if err != nil || !area.IsPositive() {
		return fiber.NewError(fiber.StatusBadRequest, "area must be a positive number")
	}
	planting, err := utils.ParseDate(p.PlantingDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	harvest, err := utils.ParseDate(p.ExpectedHarvestDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	actual, err := utils.ParseOptionalDate(p.ActualHarvestDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	crop.Name = p.Name
	crop.Variety = p.Variety
	crop.Area = area
	crop.PlantingDate = planting
	crop.ExpectedHarvestDate = harvest
	crop.ActualHarvestDate = actual
	if p.Status != "" {
		crop.Status = p.Status
	}
	if p.ExpectedYield != nil {
		y, err := decimal.NewFromString(*p.ExpectedYield)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid expected yield")
		}
		crop.ExpectedYield = &y
	}
	if p.ActualYield != nil {
		y, err := decimal.NewFromString(*p.ActualYield)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid actual yield")
		}
		crop.ActualYield = &y
	}
	crop.Notes = p.Notes
	return nil
}

func listCrops(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	q := database.DB.Where("user_id = ?", userID).Order("planting_date desc")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	var crops []models.Crop
	if err := q.Find(&crops).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not list crops"})
	}
	return c.JSON(fiber.Map{"crops": crops})
}

func getCrop(c *fiber.Ctx) error {
	crop, err := findCrop(c)
	if err != nil {
		return err
	}
	return c.JSON(crop)
}

func createCrop(c *fiber.Ctx) error {
	var body cropPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload"})
	}
	if err := utils.ValidateStruct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	crop := models.Crop{UserID: middleware.UserID(c), Status: models.CropStatusPlanned}
	if err := body.apply(&crop); err != nil {
		return err
	}
	if err := database.DB.Create(&crop).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create crop"})
	}
	return c.Status(fiber.StatusCreated).JSON(crop)
}

func updateCrop(c *fiber.Ctx) error {
	crop, err := findCrop(c)
	if err != nil {
		return err
	}
	var body cropPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload"})
	}
	if err := utils.ValidateStruct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := body.apply(crop); err != nil {
		return err
	}
	if err := database.DB.Save(crop).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update crop"})
	}
	return c.JSON(crop)
}

func deleteCrop(c *fiber.Ctx) error {
	crop, err := findCrop(c)
	if err != nil {
		return err
	}
	// tasks and activities keep their rows, only the link is cleared
	database.DB.Model(&models.Task{}).Where("related_crop_id = ?", crop.ID).Update("related_crop_id", nil)
	database.DB.Model(&models.Activity{}).Where("related_crop_id = ?", crop.ID).Update("related_crop_id", nil)
	if err := database.DB.Delete(crop).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete crop"})
	}
	return c.JSON(fiber.Map{"message": "Crop deleted"})
}

func cropRecommendations(c *fiber.Ctx) error {
	crop, err := findCrop(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"recommendations": assistant.CropRecommendations(crop, time.Now())})
}

func findCrop(c *fiber.Ctx) (*models.Crop, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	var crop models.Crop
	res := database.DB.Where("id = ? AND user_id = ?", id, middleware.UserID(c)).First(&crop)
	if res.Error != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Crop not found")
	}
	return &crop, nil
}
