package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/slight125/FarmFlow/database"
	"github.com/slight125/FarmFlow/middleware"
	"github.com/slight125/FarmFlow/models"
	"github.com/slight125/FarmFlow/utils"
)

func SetupActivityRoutes(app *fiber.App) {
	activities := app.Group("/activities", middleware.JWTMiddleware)
	activities.Get("/", listActivities)
	activities.Post("/", createActivity)
	activities.Get("/:id", getActivity)
	activities.Put("/:id", updateActivity)
	activities.Delete("/:id", deleteActivity)
}

type activityPayload struct {
	ActivityType       string            `json:"activity_type" validate:"required"`
	Title              string            `json:"title" validate:"required"`
	Description        string            `json:"description"`
	Date               string            `json:"date" validate:"required"`
	Duration           *int              `json:"duration"`
	LaborCost          *string           `json:"labor_cost"`
	MaterialsUsed      map[string]string `json:"materials_used"`
	Notes              string            `json:"notes"`
	RelatedCropID      *uint             `json:"related_crop_id"`
	RelatedLivestockID *uint             `json:"related_livestock_id"`
}

func (p *activityPayload) apply(c *fiber.Ctx, act *models.Activity) error {
	date, err := utils.ParseDate(p.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if p.RelatedCropID != nil {
		var n int64
		database.DB.Model(&models.Crop{}).
			Where("id = ? AND user_id = ?", *p.RelatedCropID, middleware.UserID(c)).Count(&n)
		if n == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "related crop not found")
		}
	}
	if p.RelatedLivestockID != nil {
		var n int64
		database.DB.Model(&models.Livestock{}).
			Where("id = ? AND user_id = ?", *p.RelatedLivestockID, middleware.UserID(c)).Count(&n)
		if n == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "related livestock not found")
		}
	}

	act.ActivityType = p.ActivityType
	act.Title = p.Title
	act.Description = p.Description
	act.Date = date
	act.Duration = p.Duration
	if p.LaborCost != nil {
		cost, err := decimal.NewFromString(*p.LaborCost)
		if err != nil || cost.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "invalid labor cost")
		}
		act.LaborCost = &cost
	}
	if p.MaterialsUsed != nil {
		materials := datatypes.JSONMap{}
		for name, qty := range p.MaterialsUsed {
			materials[name] = qty
		}
		act.MaterialsUsed = materials
	}
	act.Notes = p.Notes
	act.RelatedCropID = p.RelatedCropID
	act.RelatedLivestockID = p.RelatedLivestockID
	return nil
}

func listActivities(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	q := database.DB.Where("user_id = ?", userID).Order("date desc, id desc")
	if t := c.Query("activity_type"); t != "" {
		q = q.Where("activity_type = ?", t)
	}
	if cropID := c.QueryInt("related_crop_id"); cropID > 0 {
		q = q.Where("related_crop_id = ?", cropID)
	}
	if animalID := c.QueryInt("related_livestock_id"); animalID > 0 {
		q = q.Where("related_livestock_id = ?", animalID)
	}
	var activities []models.Activity
	if err := q.Preload("RelatedCrop").Preload("RelatedLivestock").Find(&activities).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not list activities"})
	}
	return c.JSON(fiber.Map{"activities": activities})
}

func getActivity(c *fiber.Ctx) error {
	act, err := findActivity(c)
	if err != nil {
		return err
	}
	return c.JSON(act)
}

func createActivity(c *fiber.Ctx) error {
	var body activityPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload"})
	}
	if err := utils.ValidateStruct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	act := models.Activity{UserID: middleware.UserID(c)}
	if err := body.apply(c, &act); err != nil {
		return err
	}
	if err := database.DB.Create(&act).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not log activity"})
	}
	return c.Status(fiber.StatusCreated).JSON(act)
}

func updateActivity(c *fiber.Ctx) error {
	act, err := findActivity(c)
	if err != nil {
		return err
	}
	var body activityPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payload"})
	}
	if err := utils.ValidateStruct(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := body.apply(c, act); err != nil {
		return err
	}
	if err := database.DB.Save(act).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update activity"})
	}
	return c.JSON(act)
}

func deleteActivity(c *fiber.Ctx) error {
	act, err := findActivity(c)
	if err != nil {
		return err
	}
	if err := database.DB.Delete(act).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete activity"})
	}
	return c.JSON(fiber.Map{"message": "Activity deleted"})
}

func findActivity(c *fiber.Ctx) (*models.Activity, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	var act models.Activity
	res := database.DB.Preload("RelatedCrop").Preload("RelatedLivestock").
		Where("id = ? AND user_id = ?", id, middleware.UserID(c)).First(&act)
	if res.Error != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Activity not found")
	}
	return &act, nil
}
