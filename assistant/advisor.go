package assistant

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/slight125/FarmFlow/models"
)

// Recommendation is one card on an entity detail page.
type Recommendation struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Icon    string `json:"icon"`
	Type    string `json:"type"`
}

// CareStep is one line of a livestock care plan.
type CareStep struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	Icon      string `json:"icon"`
	Frequency string `json:"frequency"`
}

// CropRecommendations derives growth-stage and harvest-window advice for
// one crop from the injected date.
func CropRecommendations(crop *models.Crop, today time.Time) []Recommendation {
	recs := []Recommendation{}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	daysGrowing := int(day.Sub(crop.PlantingDate).Hours() / 24)
	switch {
	case daysGrowing < 7:
		recs = append(recs, Recommendation{
			Title:   "Early Growth Phase",
			Message: "Frequent watering and monitoring for germination recommended. Protect from pests.",
			Icon:    "seedling",
			Type:    "care",
		})
	case daysGrowing < 30:
		recs = append(recs, Recommendation{
			Title:   "Vegetative Growth",
			Message: "Apply balanced fertilizer and check soil moisture daily.",
			Icon:    "leaf",
			Type:    "care",
		})
	default:
		recs = append(recs, Recommendation{
			Title:   "Mature Growth",
			Message: "Monitor for flowering/fruiting. Adjust irrigation to the weather.",
			Icon:    "flower",
			Type:    "care",
		})
	}

	daysToHarvest := int(crop.ExpectedHarvestDate.Sub(day).Hours() / 24)
	if daysToHarvest >= 0 && daysToHarvest <= 7 {
		recs = append(recs, Recommendation{
			Title:   "Harvest Ready Soon",
			Message: fmt.Sprintf("Optimal harvest expected in %d days. Prepare equipment and storage.", daysToHarvest),
			Icon:    "calendar-check",
			Type:    "action",
		})
	} else if daysToHarvest < 0 {
		recs = append(recs, Recommendation{
			Title:   "Harvest Overdue",
			Message: "Immediate harvest recommended to prevent quality degradation.",
			Icon:    "exclamation-triangle",
			Type:    "urgent",
		})
	}

	recs = append(recs, Recommendation{
		Title:   "Yield Optimization",
		Message: fmt.Sprintf("Based on %s characteristics, optimal spacing and nutrient management will maximize yield.", crop.Name),
		Icon:    "chart-bar",
		Type:    "insight",
	})
	return recs
}

// LivestockCarePlan builds a care schedule from the animal's health status
// and age.
func LivestockCarePlan(animal *models.Livestock, today time.Time) []CareStep {
	plan := []CareStep{}

	if animal.Status == models.LivestockStatusHealthy {
		plan = append(plan, CareStep{
			Title:     "Routine Health Check",
			Message:   "Monthly veterinary checkup recommended to maintain optimal health.",
			Icon:      "stethoscope",
			Frequency: "Monthly",
		})
	} else {
		plan = append(plan, CareStep{
			Title:     "Immediate Attention Required",
			Message:   "Health concerns detected. Schedule a veterinary consultation urgently.",
			Icon:      "exclamation-circle",
			Frequency: "Immediate",
		})
	}

	plan = append(plan, CareStep{
		Title:     "Optimized Feeding",
		Message:   fmt.Sprintf("Nutrition plan for %s: balanced diet with seasonal adjustments.", animal.Type),
		Icon:      "utensils",
		Frequency: "Daily",
	})

	if animal.AgeMonths(today) >= 12 {
		plan = append(plan, CareStep{
			Title:     "Breeding Consideration",
			Message:   "This animal has reached breeding maturity. Consider reproductive planning.",
			Icon:      "heart",
			Frequency: "As needed",
		})
	}
	return plan
}

// Forecast projects next month's finances from the trailing quarter.
type Forecast struct {
	NextMonthIncome   decimal.Decimal      `json:"next_month_income"`
	NextMonthExpenses decimal.Decimal      `json:"next_month_expenses"`
	PredictedProfit   decimal.Decimal      `json:"predicted_profit"`
	Recommendations   []ForecastRecommends `json:"recommendations"`
}

type ForecastRecommends struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// growthFactor is the assumed month-over-month revenue growth: 5%.
var growthFactor = decimal.NewFromFloat(1.05)

// FinancialForecast averages the last 90 days into a monthly run rate and
// projects one month ahead with a modest growth assumption on income.
func FinancialForecast(db *gorm.DB, scope Scope, now time.Time) (Forecast, error) {
	summary, err := buildFinanceSummary(db, scope, now)
	if err != nil {
		return Forecast{}, err
	}

	three := decimal.NewFromInt(3)
	avgIncome := summary.Quarter.Income.Div(three)
	avgExpenses := summary.Quarter.Expense.Div(three)

	f := Forecast{
		NextMonthIncome:   avgIncome.Mul(growthFactor).Round(2),
		NextMonthExpenses: avgExpenses.Round(2),
		Recommendations:   []ForecastRecommends{},
	}
	f.PredictedProfit = f.NextMonthIncome.Sub(f.NextMonthExpenses)

	if avgExpenses.GreaterThan(avgIncome.Mul(decimal.NewFromFloat(0.8))) {
		f.Recommendations = append(f.Recommendations, ForecastRecommends{
			Type:    "cost_reduction",
			Message: "High expense ratio detected. Review recurring costs for optimization opportunities.",
		})
	}
	if avgIncome.IsPositive() {
		f.Recommendations = append(f.Recommendations, ForecastRecommends{
			Type:    "growth",
			Message: "Based on trends, around 5% revenue growth potential next month.",
		})
	}
	return f, nil
}

// TaskSuggestion is one proposed task derived from the farm's own data.
type TaskSuggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
}

const maxTaskSuggestions = 10

// SmartTaskSuggestions proposes routine work from crop growth cycles
// (fertilize every 21 days, pest inspection weekly) and livestock presence.
func SmartTaskSuggestions(db *gorm.DB, scope Scope, now time.Time) ([]TaskSuggestion, error) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	out := []TaskSuggestion{}

	var crops []models.Crop
	if err := scope.apply(db.Model(&models.Crop{})).
		Where("status = ?", models.CropStatusGrowing).
		Order("id").
		Find(&crops).Error; err != nil {
		return nil, err
	}
	for i := range crops {
		c := &crops[i]
		daysSincePlanting := int(day.Sub(c.PlantingDate).Hours() / 24)
		if daysSincePlanting <= 0 {
			continue
		}
		if daysSincePlanting%21 == 0 {
			out = append(out, TaskSuggestion{
				Title:       fmt.Sprintf("Fertilize %s", c.Name),
				Description: fmt.Sprintf("Fertilization recommended based on growth cycle (%d days)", daysSincePlanting),
				Priority:    models.PriorityMedium,
				Category:    "crop_care",
			})
		}
		if daysSincePlanting%7 == 0 {
			out = append(out, TaskSuggestion{
				Title:       fmt.Sprintf("Inspect %s for pests", c.Name),
				Description: "Weekly scheduled pest monitoring",
				Priority:    models.PriorityHigh,
				Category:    "inspection",
			})
		}
	}

	var animalCount int64
	if err := scope.apply(db.Model(&models.Livestock{})).Count(&animalCount).Error; err != nil {
		return nil, err
	}
	if animalCount > 0 {
		out = append(out, TaskSuggestion{
			Title:       "Daily livestock health check",
			Description: fmt.Sprintf("Routine monitoring for %d animal(s)", animalCount),
			Priority:    models.PriorityHigh,
			Category:    "livestock_care",
		})
	}

	if len(out) > maxTaskSuggestions {
		out = out[:maxTaskSuggestions]
	}
	return out, nil
}
