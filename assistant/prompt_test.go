package assistant

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptIncludesFarmFigures(t *testing.T) {
	snap := emptySnapshot()
	snap.Crops.Total = 2
	snap.Crops.Items = []CropLine{
		{Name: "Maize", Status: "growing"},
		{Name: "Beans", Status: "planted"},
	}
	snap.Tasks.Pending = 3
	snap.Tasks.Overdue = 1
	snap.Tasks.OpenTasks = []TaskLine{
		{Title: "Weed plot A", Priority: "high", DueDate: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)},
	}
	snap.Finances.MonthToDate = newFinanceWindow(money("80000"), money("30000"))
	snap.Alerts = []string{"Low stock: Dairy Meal (5 kg)"}

	prompt := BuildPrompt(snap, "Should I fertilize this week?")

	assert.Contains(t, prompt, "2 crops: Maize, Beans")
	assert.Contains(t, prompt, "Tasks: 3 pending, 1 overdue")
	assert.Contains(t, prompt, "KSh 80,000 income, KSh 30,000 expenses")
	assert.Contains(t, prompt, "Weed plot A (due 2025-06-16, high priority)")
	assert.Contains(t, prompt, "Low stock: Dairy Meal")
	assert.Contains(t, prompt, "USER QUESTION: Should I fertilize this week?")
}

func TestBuildPromptCapsListSizes(t *testing.T) {
	snap := emptySnapshot()
	snap.Crops.Total = 8
	for i := 0; i < 8; i++ {
		snap.Crops.Items = append(snap.Crops.Items, CropLine{Name: fmt.Sprintf("Crop%d", i)})
	}
	for i := 0; i < 6; i++ {
		snap.Alerts = append(snap.Alerts, fmt.Sprintf("alert %d", i))
	}

	prompt := BuildPrompt(snap, "status?")

	assert.Contains(t, prompt, "Crop4")
	assert.NotContains(t, prompt, "Crop5")
	assert.Contains(t, prompt, "and more")
	assert.Contains(t, prompt, "alert 2")
	assert.NotContains(t, prompt, "alert 3")
}

func TestBuildPromptEmptyFarm(t *testing.T) {
	prompt := BuildPrompt(emptySnapshot(), "where do I start?")
	assert.Contains(t, prompt, "0 crops")
	assert.Contains(t, prompt, "ALERTS: None")
	assert.False(t, strings.Contains(prompt, "OPEN TASKS"))
}
