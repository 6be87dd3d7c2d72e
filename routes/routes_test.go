package routes

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/slight125/FarmFlow/database"
	"github.com/slight125/FarmFlow/models"
)

// setupTestApp swaps the shared handle for a throwaway in-memory store and
// returns an app with the full route surface mounted, error handler
// included so handlers returning *fiber.Error render the same JSON shape
// as production.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.UserProfile{},
		&models.Crop{}, &models.Livestock{}, &models.InventoryItem{},
		&models.FinancialTransaction{}, &models.Task{}, &models.Activity{},
		&models.WeatherData{},
	))
	database.DB = db

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})
	SetupDashboardRoutes(app)
	SetupFinanceRoutes(app)
	return app
}

func authHeader(t *testing.T, userID uint, role string) string {
	t.Helper()
	token, err := signToken(userID, role)
	require.NoError(t, err)
	return "Bearer " + token
}
