package assistant

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slight125/FarmFlow/models"
)

func TestCropRecommendationsGrowthPhases(t *testing.T) {
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		planted   time.Time
		wantTitle string
	}{
		{"just planted", day.AddDate(0, 0, -3), "Early Growth Phase"},
		{"vegetative", day.AddDate(0, 0, -20), "Vegetative Growth"},
		{"mature", day.AddDate(0, 0, -60), "Mature Growth"},
	}
	for _, tc := range cases {
		crop := models.Crop{
			Name:                "Maize",
			PlantingDate:        tc.planted,
			ExpectedHarvestDate: day.AddDate(0, 2, 0),
		}
		recs := CropRecommendations(&crop, day)
		require.NotEmpty(t, recs, tc.name)
		assert.Equal(t, tc.wantTitle, recs[0].Title, tc.name)
	}
}

func TestCropRecommendationsHarvestWindow(t *testing.T) {
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	nearHarvest := models.Crop{
		Name:                "Maize",
		PlantingDate:        day.AddDate(0, -3, 0),
		ExpectedHarvestDate: day.AddDate(0, 0, 5),
	}
	recs := CropRecommendations(&nearHarvest, day)
	titles := recTitles(recs)
	assert.Contains(t, titles, "Harvest Ready Soon")

	overdue := models.Crop{
		Name:                "Beans",
		PlantingDate:        day.AddDate(0, -4, 0),
		ExpectedHarvestDate: day.AddDate(0, 0, -2),
	}
	titles = recTitles(CropRecommendations(&overdue, day))
	assert.Contains(t, titles, "Harvest Overdue")
	assert.NotContains(t, titles, "Harvest Ready Soon")

	// every crop gets the yield card
	assert.Contains(t, titles, "Yield Optimization")
}

func recTitles(recs []Recommendation) []string {
	out := []string{}
	for _, r := range recs {
		out = append(out, r.Title)
	}
	return out
}

func TestLivestockCarePlan(t *testing.T) {
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	mature := day.AddDate(-2, 0, 0)

	healthy := models.Livestock{Type: "cattle", Status: models.LivestockStatusHealthy, DateOfBirth: &mature}
	plan := LivestockCarePlan(&healthy, day)
	require.Len(t, plan, 3)
	assert.Equal(t, "Routine Health Check", plan[0].Title)
	assert.Equal(t, "Breeding Consideration", plan[2].Title)

	young := day.AddDate(0, -6, 0)
	sick := models.Livestock{Type: "goat", Status: models.LivestockStatusSick, DateOfBirth: &young}
	plan = LivestockCarePlan(&sick, day)
	require.Len(t, plan, 2)
	assert.Equal(t, "Immediate Attention Required", plan[0].Title)
	assert.Equal(t, "Immediate", plan[0].Frequency)
}

func TestFinancialForecastProjectsQuarterRunRate(t *testing.T) {
	db := newTestDB(t)
	day := time.Date(testNow.Year(), testNow.Month(), testNow.Day(), 0, 0, 0, 0, time.UTC)

	// 90000 income and 30000 expense over the trailing quarter
	seedTxn(t, db, 1, models.TransactionIncome, "90000", day.AddDate(0, 0, -10))
	seedTxn(t, db, 1, models.TransactionExpense, "30000", day.AddDate(0, 0, -40))

	f, err := FinancialForecast(db, FarmScope(1), testNow)
	require.NoError(t, err)

	// 30000 monthly average income grown 5%
	assert.True(t, f.NextMonthIncome.Equal(decimal.RequireFromString("31500")),
		"NextMonthIncome = %s", f.NextMonthIncome)
	assert.True(t, f.NextMonthExpenses.Equal(decimal.RequireFromString("10000")))
	assert.True(t, f.PredictedProfit.Equal(decimal.RequireFromString("21500")))

	types := []string{}
	for _, r := range f.Recommendations {
		types = append(types, r.Type)
	}
	assert.Contains(t, types, "growth")
	assert.NotContains(t, types, "cost_reduction")
}

func TestFinancialForecastEmptyHistory(t *testing.T) {
	db := newTestDB(t)

	f, err := FinancialForecast(db, FarmScope(1), testNow)
	require.NoError(t, err)
	assert.True(t, f.NextMonthIncome.IsZero())
	assert.True(t, f.PredictedProfit.IsZero())
	assert.Empty(t, f.Recommendations)
}

func TestSmartTaskSuggestionsFollowGrowthCycles(t *testing.T) {
	db := newTestDB(t)
	day := time.Date(testNow.Year(), testNow.Month(), testNow.Day(), 0, 0, 0, 0, time.UTC)

	// planted exactly 21 days ago: fertilize and pest inspection both due
	cycle := models.Crop{
		UserID: 1, Name: "Maize", Status: models.CropStatusGrowing,
		Area:         decimal.RequireFromString("2"),
		PlantingDate: day.AddDate(0, 0, -21), ExpectedHarvestDate: day.AddDate(0, 2, 0),
	}
	require.NoError(t, db.Create(&cycle).Error)

	// planted 10 days ago: neither cycle hits
	offCycle := models.Crop{
		UserID: 1, Name: "Kale", Status: models.CropStatusGrowing,
		Area:         decimal.RequireFromString("1"),
		PlantingDate: day.AddDate(0, 0, -10), ExpectedHarvestDate: day.AddDate(0, 1, 0),
	}
	require.NoError(t, db.Create(&offCycle).Error)

	require.NoError(t, db.Create(&models.Livestock{
		UserID: 1, Type: "cattle", TagNumber: "C-010",
		Status: models.LivestockStatusHealthy, DateAcquired: day.AddDate(-1, 0, 0),
	}).Error)

	out, err := SmartTaskSuggestions(db, FarmScope(1), testNow)
	require.NoError(t, err)

	titles := []string{}
	for _, s := range out {
		titles = append(titles, s.Title)
	}
	assert.Contains(t, titles, "Fertilize Maize")
	assert.Contains(t, titles, "Inspect Maize for pests")
	assert.NotContains(t, titles, "Fertilize Kale")
	assert.Contains(t, titles, "Daily livestock health check")
	assert.LessOrEqual(t, len(out), 10)
}
