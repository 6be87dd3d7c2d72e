package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/slight125/FarmFlow/assistant"
	"github.com/slight125/FarmFlow/database"
	"github.com/slight125/FarmFlow/middleware"
	"github.com/slight125/FarmFlow/models"
)

func SetupDashboardRoutes(app *fiber.App) {
	dashboard := app.Group("/dashboard", middleware.JWTMiddleware)
	dashboard.Get("/", dashboardStats)
	dashboard.Get("/insights", dashboardInsights)
}

// requestScope maps the caller to the farms they may read. Managers and
// consultants aggregate over every farm, everyone else sees their own.
func requestScope(c *fiber.Ctx) assistant.Scope {
	if middleware.AggregateScope(c) {
		return assistant.AllFarms()
	}
	return assistant.FarmScope(middleware.UserID(c))
}

// scopedQuery applies the same farm boundary as requestScope to a raw query.
func scopedQuery(c *fiber.Ctx, q *gorm.DB) *gorm.DB {
	if !middleware.AggregateScope(c) {
		q = q.Where("user_id = ?", middleware.UserID(c))
	}
	return q
}

func dashboardStats(c *fiber.Ctx) error {
	snap, err := assistant.BuildSnapshot(database.DB, requestScope(c), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not build dashboard"})
	}

	var activeLivestock int64
	if err := scopedQuery(c, database.DB.Model(&models.Livestock{})).
		Where("status NOT IN ?", []string{models.LivestockStatusSold, models.LivestockStatusDeceased}).
		Count(&activeLivestock).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not build dashboard"})
	}

	var recentActivities []models.Activity
	if err := scopedQuery(c, database.DB.Order("date desc, id desc").Limit(10)).
		Find(&recentActivities).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not build dashboard"})
	}

	var recentTransactions []models.FinancialTransaction
	if err := scopedQuery(c, database.DB.Order("date desc, id desc").Limit(5)).
		Find(&recentTransactions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not build dashboard"})
	}

	return c.JSON(fiber.Map{
		"snapshot":            snap,
		"active_livestock":    activeLivestock,
		"recent_activities":   recentActivities,
		"recent_transactions": recentTransactions,
	})
}

func dashboardInsights(c *fiber.Ctx) error {
	snap, err := assistant.BuildSnapshot(database.DB, requestScope(c), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not build insights"})
	}
	return c.JSON(fiber.Map{"insights": assistant.DashboardInsights(snap)})
}
