package routes

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slight125/FarmFlow/database"
	"github.com/slight125/FarmFlow/models"
)

func TestDashboardIncludesRecentContext(t *testing.T) {
	app := setupTestApp(t)
	now := time.Now()

	// 12 log entries, newest first in the response, capped at 10
	for i := 0; i < 12; i++ {
		require.NoError(t, database.DB.Create(&models.Activity{
			UserID:       1,
			ActivityType: models.ActivityWeeding,
			Title:        fmt.Sprintf("Weeding round %d", i+1),
			Date:         now.AddDate(0, 0, -i),
		}).Error)
	}

	// 7 transactions, capped at 5
	for i := 0; i < 7; i++ {
		require.NoError(t, database.DB.Create(&models.FinancialTransaction{
			UserID:   1,
			Type:     models.TransactionIncome,
			Category: models.CategoryCropSale,
			Amount:   decimal.RequireFromString("1000"),
			Date:     now.AddDate(0, 0, -i),
		}).Error)
	}

	// sold and deceased animals drop out of the active count
	for i, status := range []string{
		models.LivestockStatusHealthy,
		models.LivestockStatusSick,
		models.LivestockStatusSold,
		models.LivestockStatusDeceased,
	} {
		require.NoError(t, database.DB.Create(&models.Livestock{
			UserID:       1,
			Type:         "cattle",
			Breed:        "Friesian",
			TagNumber:    fmt.Sprintf("C-%03d", i+1),
			DateAcquired: now.AddDate(-1, 0, 0),
			Status:       status,
		}).Error)
	}
	// a neighbour's animal stays out of a farmer's count
	require.NoError(t, database.DB.Create(&models.Livestock{
		UserID:       2,
		Type:         "goat",
		Breed:        "Boer",
		TagNumber:    "G-001",
		DateAcquired: now.AddDate(-1, 0, 0),
		Status:       models.LivestockStatusHealthy,
	}).Error)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.Header.Set("Authorization", authHeader(t, 1, models.RoleFarmer))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		ActiveLivestock    int                           `json:"active_livestock"`
		RecentActivities   []models.Activity             `json:"recent_activities"`
		RecentTransactions []models.FinancialTransaction `json:"recent_transactions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, 2, body.ActiveLivestock)

	require.Len(t, body.RecentActivities, 10)
	assert.Equal(t, "Weeding round 1", body.RecentActivities[0].Title)
	assert.Equal(t, "Weeding round 10", body.RecentActivities[9].Title)

	require.Len(t, body.RecentTransactions, 5)
	assert.True(t, body.RecentTransactions[0].Date.After(body.RecentTransactions[4].Date))
}

func TestDashboardAggregateScopeCountsEveryFarm(t *testing.T) {
	app := setupTestApp(t)
	now := time.Now()

	for i, userID := range []uint{1, 2, 3} {
		require.NoError(t, database.DB.Create(&models.Livestock{
			UserID:       userID,
			Type:         "sheep",
			Breed:        "Dorper",
			TagNumber:    fmt.Sprintf("S-%03d", i+1),
			DateAcquired: now.AddDate(-1, 0, 0),
			Status:       models.LivestockStatusHealthy,
		}).Error)
	}

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.Header.Set("Authorization", authHeader(t, 9, models.RoleManager))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		ActiveLivestock int `json:"active_livestock"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 3, body.ActiveLivestock)
}
