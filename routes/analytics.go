package routes

import (
	"fmt"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/slight125/FarmFlow/database"
	"github.com/slight125/FarmFlow/middleware"
	"github.com/slight125/FarmFlow/models"
)

func SetupAnalyticsRoutes(app *fiber.App) {
	analytics := app.Group("/analytics", middleware.JWTMiddleware)
	analytics.Get("/", analyticsReport)
	analytics.Get("/export", exportAnalytics)
}

type monthlyFigure struct {
	Month   string          `json:"month"` // YYYY-MM
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

type analyticsData struct {
	CropsByStatus    map[string]int  `json:"crops_by_status"`
	LivestockByType  map[string]int  `json:"livestock_by_type"`
	ActivitiesByType map[string]int  `json:"activities_by_type"`
	Monthly          []monthlyFigure `json:"monthly"`
}

func buildAnalytics(userID uint, now time.Time) (*analyticsData, error) {
	data := &analyticsData{
		CropsByStatus:    map[string]int{},
		LivestockByType:  map[string]int{},
		ActivitiesByType: map[string]int{},
	}

	var crops []models.Crop
	if err := database.DB.Where("user_id = ?", userID).Find(&crops).Error; err != nil {
		return nil, err
	}
	for i := range crops {
		data.CropsByStatus[crops[i].Status]++
	}

	var animals []models.Livestock
	if err := database.DB.Where("user_id = ?", userID).Find(&animals).Error; err != nil {
		return nil, err
	}
	for i := range animals {
		data.LivestockByType[animals[i].Type]++
	}

	var activities []models.Activity
	if err := database.DB.Where("user_id = ?", userID).Find(&activities).Error; err != nil {
		return nil, err
	}
	for i := range activities {
		data.ActivitiesByType[activities[i].ActivityType]++
	}

	// trailing 12 calendar months, oldest first
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -11, 0)
	var txns []models.FinancialTransaction
	if err := database.DB.Where("user_id = ? AND date >= ?", userID, start).
		Order("date, id").Find(&txns).Error; err != nil {
		return nil, err
	}
	byMonth := map[string]*monthlyFigure{}
	for m := 0; m < 12; m++ {
		key := start.AddDate(0, m, 0).Format("2006-01")
		fig := &monthlyFigure{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
		byMonth[key] = fig
		data.Monthly = append(data.Monthly, *fig)
	}
	for i := range txns {
		key := txns[i].Date.Format("2006-01")
		fig, ok := byMonth[key]
		if !ok {
			continue
		}
		if txns[i].Type == models.TransactionIncome {
			fig.Income = fig.Income.Add(txns[i].Amount)
		} else {
			fig.Expense = fig.Expense.Add(txns[i].Amount)
		}
	}
	for i := range data.Monthly {
		fig := byMonth[data.Monthly[i].Month]
		fig.Net = fig.Income.Sub(fig.Expense)
		data.Monthly[i] = *fig
	}
	return data, nil
}

func analyticsReport(c *fiber.Ctx) error {
	data, err := buildAnalytics(middleware.UserID(c), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not build analytics"})
	}
	return c.JSON(data)
}

func exportAnalytics(c *fiber.Ctx) error {
	data, err := buildAnalytics(middleware.UserID(c), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not build analytics"})
	}

	f := excelize.NewFile()
	defer f.Close()

	const finSheet = "Finances"
	f.SetSheetName(f.GetSheetName(0), finSheet)
	f.SetSheetRow(finSheet, "A1", &[]any{"Month", "Income", "Expense", "Net"})
	for i, fig := range data.Monthly {
		cell := fmt.Sprintf("A%d", i+2)
		f.SetSheetRow(finSheet, cell, &[]any{
			fig.Month,
			fig.Income.InexactFloat64(),
			fig.Expense.InexactFloat64(),
			fig.Net.InexactFloat64(),
		})
	}

	writeCountSheet(f, "Crops", "Status", data.CropsByStatus)
	writeCountSheet(f, "Livestock", "Type", data.LivestockByType)
	writeCountSheet(f, "Activities", "Type", data.ActivitiesByType)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not write workbook"})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="farm_analytics.xlsx"`)
	return c.Send(buf.Bytes())
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func writeCountSheet(f *excelize.File, name, label string, counts map[string]int) {
	f.NewSheet(name)
	f.SetSheetRow(name, "A1", &[]any{label, "Count"})
	row := 2
	for _, key := range sortedKeys(counts) {
		f.SetSheetRow(name, fmt.Sprintf("A%d", row), &[]any{key, counts[key]})
		row++
	}
}
