package assistant

import (
	"fmt"
	"strings"

	"github.com/slight125/FarmFlow/models"
)

const (
	InsightAlert      = "alert"
	InsightWarning    = "warning"
	InsightInfo       = "info"
	InsightSuccess    = "success"
	InsightSuggestion = "suggestion"
)

// Insight is one dashboard card.
type Insight struct {
	Type     string `json:"type"`
	Icon     string `json:"icon"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Action   string `json:"action"`
	URL      string `json:"url"`
	Priority string `json:"priority"`
}

// insightRule pairs a predicate with the card it produces. Each analyzer is
// an ordered rule list evaluated first-match-wins, so the tie-break order is
// visible in the data instead of buried in control flow.
type insightRule struct {
	when  func(*Snapshot) bool
	build func(*Snapshot) Insight
}

type analyzer struct {
	name  string
	rules []insightRule
}

// maxInsights caps the dashboard card list.
const maxInsights = 5

// DashboardInsights runs the analyzers in registration order, takes at most
// one card from each, and truncates to maxInsights. There is deliberately no
// cross-analyzer ranking: registration order is the ranking, which keeps the
// output reproducible.
func DashboardInsights(snap *Snapshot) []Insight {
	out := []Insight{}
	for _, a := range analyzers {
		for _, r := range a.rules {
			if r.when(snap) {
				if r.build != nil {
					out = append(out, r.build(snap))
				}
				break
			}
		}
		if len(out) == maxInsights {
			break
		}
	}
	return out
}

var analyzers = []analyzer{
	{name: "crop_health", rules: cropHealthRules},
	{name: "financial_health", rules: financialHealthRules},
	{name: "task_prioritization", rules: taskRules},
	{name: "livestock_health", rules: livestockRules},
	{name: "weather_impact", rules: weatherRules},
}

var cropHealthRules = []insightRule{
	{
		when: func(s *Snapshot) bool { return s.Crops.Total == 0 },
		build: func(s *Snapshot) Insight {
			return Insight{
				Type:     InsightSuggestion,
				Icon:     "seedling",
				Title:    "Start Tracking Your Crops",
				Message:  "Add your first crop to get growth recommendations and harvest predictions.",
				Action:   "Add Crop",
				URL:      "/crops/new",
				Priority: "low",
			}
		},
	},
	{
		when: func(s *Snapshot) bool { return len(upcomingHarvests(s)) > 0 },
		build: func(s *Snapshot) Insight {
			names := []string{}
			for _, c := range upcomingHarvests(s) {
				names = append(names, c.Name)
				if len(names) == 3 {
					break
				}
			}
			return Insight{
				Type:     InsightAlert,
				Icon:     "calendar-check",
				Title:    "Harvest Season Approaching",
				Message:  fmt.Sprintf("Optimal harvest time for %s within 2 weeks. Prepare harvesting equipment and storage.", strings.Join(names, ", ")),
				Action:   "View Crops",
				URL:      "/crops",
				Priority: "high",
			}
		},
	},
	{
		when: func(s *Snapshot) bool { return overdueHarvestCount(s) > 0 },
		build: func(s *Snapshot) Insight {
			return Insight{
				Type:     InsightWarning,
				Icon:     "exclamation-triangle",
				Title:    "Delayed Harvest Detected",
				Message:  fmt.Sprintf("%d crop(s) are past expected harvest date. Immediate inspection recommended to prevent quality loss.", overdueHarvestCount(s)),
				Action:   "Check Crops",
				URL:      "/crops",
				Priority: "urgent",
			}
		},
	},
	{
		when: func(s *Snapshot) bool { return true },
		build: func(s *Snapshot) Insight {
			return Insight{
				Type:     InsightInfo,
				Icon:     "lightbulb",
				Title:    "Crop Optimization",
				Message:  fmt.Sprintf("You have %d active crops. Consider crop rotation for optimal soil health.", s.Crops.Total),
				Action:   "Learn More",
				URL:      "/crops",
				Priority: "medium",
			}
		},
	},
}

var financialHealthRules = []insightRule{
	{
		when: func(s *Snapshot) bool {
			w := s.Finances.Last30Days
			return w.Income.IsZero() && w.Expense.IsZero()
		},
		build: func(s *Snapshot) Insight {
			return Insight{
				Type:     InsightSuggestion,
				Icon:     "chart-line",
				Title:    "Start Financial Tracking",
				Message:  "Financial insights will help optimize your farm profitability. Add your first transaction.",
				Action:   "Add Transaction",
				URL:      "/finance/new",
				Priority: "low",
			}
		},
	},
	{
		when: func(s *Snapshot) bool {
			w := s.Finances.Last30Days
			return w.Expense.GreaterThan(w.Income)
		},
		build: func(s *Snapshot) Insight {
			w := s.Finances.Last30Days
			return Insight{
				Type:     InsightWarning,
				Icon:     "exclamation-circle",
				Title:    "Negative Cash Flow Alert",
				Message:  fmt.Sprintf("Expenses (%s) exceeding income (%s) this month. Review cost optimization opportunities.", formatMoney(w.Expense), formatMoney(w.Income)),
				Action:   "View Finances",
				URL:      "/finance",
				Priority: "urgent",
			}
		},
	},
	{
		when: func(s *Snapshot) bool { return s.Finances.Last30Days.ProfitMargin > 30 },
		build: func(s *Snapshot) Insight {
			return Insight{
				Type:     InsightSuccess,
				Icon:     "trophy",
				Title:    "Excellent Financial Performance",
				Message:  fmt.Sprintf("%.0f%% profit margin! Your farm is performing above industry average.", s.Finances.Last30Days.ProfitMargin),
				Action:   "View Analytics",
				URL:      "/analytics",
				Priority: "low",
			}
		},
	},
	{
		when: func(s *Snapshot) bool { return true },
		build: func(s *Snapshot) Insight {
			return Insight{
				Type:     InsightInfo,
				Icon:     "coins",
				Title:    "Financial Health Check",
				Message:  fmt.Sprintf("Current profit margin: %.1f%%. Focus on cost reduction for better profitability.", s.Finances.Last30Days.ProfitMargin),
				Action:   "View Details",
				URL:      "/finance",
				Priority: "medium",
			}
		},
	},
}

var taskRules = []insightRule{
	{
		when: func(s *Snapshot) bool { return s.Tasks.Overdue > 0 },
		build: func(s *Snapshot) Insight {
			return Insight{
				Type:     InsightAlert,
				Icon:     "tasks",
				Title:    "Task Management Alert",
				Message:  fmt.Sprintf("%d overdue task(s). Prioritize completion to maintain farm efficiency.", s.Tasks.Overdue),
				Action:   "View Tasks",
				URL:      "/tasks",
				Priority: "urgent",
			}
		},
	},
	{
		when: func(s *Snapshot) bool { return s.Tasks.DueSoon > 0 },
		build: func(s *Snapshot) Insight {
			return Insight{
				Type:     InsightInfo,
				Icon:     "clock",
				Title:    "Upcoming Tasks",
				Message:  fmt.Sprintf("%d task(s) due in the next %d days. Plan ahead to avoid delays.", s.Tasks.DueSoon, s.Tasks.HorizonDays),
				Action:   "Review Tasks",
				URL:      "/tasks",
				Priority: "medium",
			}
		},
	},
	// no open tasks is a valid state, not a card
}

var livestockRules = []insightRule{
	{
		// absence of livestock is not worth a card either
		when:  func(s *Snapshot) bool { return s.Livestock.Total == 0 },
		build: nil,
	},
	{
		when: func(s *Snapshot) bool { return len(s.Livestock.NeedsAttention) > 0 },
		build: func(s *Snapshot) Insight {
			return Insight{
				Type:     InsightWarning,
				Icon:     "heartbeat",
				Title:    "Livestock Health Alert",
				Message:  fmt.Sprintf("Veterinary checkup recommended for %d animal(s) with concerning health status.", len(s.Livestock.NeedsAttention)),
				Action:   "View Livestock",
				URL:      "/livestock",
				Priority: "high",
			}
		},
	},
	{
		when: func(s *Snapshot) bool { return true },
		build: func(s *Snapshot) Insight {
			return Insight{
				Type:     InsightSuccess,
				Icon:     "horse",
				Title:    "Livestock Well-being",
				Message:  fmt.Sprintf("All %d animals showing healthy status. Monitoring continues for early issue detection.", s.Livestock.Total),
				Action:   "View Details",
				URL:      "/livestock",
				Priority: "low",
			}
		},
	},
}

var weatherRules = []insightRule{
	{
		when: func(s *Snapshot) bool { return s.Weather == nil },
		build: func(s *Snapshot) Insight {
			return Insight{
				Type:     InsightSuggestion,
				Icon:     "cloud-sun",
				Title:    "Weather Intelligence",
				Message:  "Enable weather tracking to get insights for irrigation, planting, and harvest timing.",
				Action:   "Learn More",
				URL:      "/dashboard",
				Priority: "low",
			}
		},
	},
	{
		// TODO: derive this from the recorded temperature/rainfall values;
		// the advisory below is static for now.
		when: func(s *Snapshot) bool { return true },
		build: func(s *Snapshot) Insight {
			return Insight{
				Type:     InsightInfo,
				Icon:     "umbrella",
				Title:    "Weather Advisory",
				Message:  "Weather analysis suggests optimal conditions for outdoor activities. Good time for field work.",
				Action:   "View Weather",
				URL:      "/dashboard",
				Priority: "low",
			}
		},
	},
}

func upcomingHarvests(s *Snapshot) []CropLine {
	out := []CropLine{}
	for _, c := range s.Crops.Items {
		if c.Status == models.CropStatusGrowing && !c.HarvestOverdue && c.DaysToHarvest <= 14 {
			out = append(out, c)
		}
	}
	return out
}

func overdueHarvestCount(s *Snapshot) int {
	n := 0
	for _, c := range s.Crops.Items {
		if c.HarvestOverdue {
			n++
		}
	}
	return n
}
