package assistant

import (
	"fmt"
	"strings"
)

// caps keep the prompt inside a few thousand tokens no matter how big the
// farm gets
const (
	promptMaxCrops     = 5
	promptMaxLivestock = 5
	promptMaxTasks     = 5
	promptMaxAlerts    = 3
)

// BuildPrompt serializes the snapshot into the grounding block the
// text-generation service receives along with the user's question.
func BuildPrompt(snap *Snapshot, question string) string {
	var b strings.Builder

	cropNames := []string{}
	for i, c := range snap.Crops.Items {
		if i == promptMaxCrops {
			break
		}
		cropNames = append(cropNames, c.Name)
	}
	animalNames := []string{}
	for i, a := range snap.Livestock.Items {
		if i == promptMaxLivestock {
			break
		}
		animalNames = append(animalNames, a.Breed+" "+a.Type)
	}

	b.WriteString("You are FarmFlow Assistant, an expert agricultural advisor.\n\n")
	b.WriteString("FARM DATA SUMMARY:\n")
	fmt.Fprintf(&b, "- %d crops: %s%s\n", snap.Crops.Total, strings.Join(cropNames, ", "), moreMarker(snap.Crops.Total, promptMaxCrops))
	fmt.Fprintf(&b, "- %d animals: %s%s\n", snap.Livestock.Total, strings.Join(animalNames, ", "), moreMarker(snap.Livestock.Total, promptMaxLivestock))
	fmt.Fprintf(&b, "- Tasks: %d pending, %d overdue\n", snap.Tasks.Pending, snap.Tasks.Overdue)
	fmt.Fprintf(&b, "- Finances this month: %s income, %s expenses\n",
		formatMoney(snap.Finances.MonthToDate.Income), formatMoney(snap.Finances.MonthToDate.Expense))

	if len(snap.Tasks.OpenTasks) > 0 {
		b.WriteString("\nOPEN TASKS:\n")
		for i, t := range snap.Tasks.OpenTasks {
			if i == promptMaxTasks {
				break
			}
			fmt.Fprintf(&b, "- %s (due %s, %s priority)\n", t.Title, t.DueDate.Format("2006-01-02"), t.Priority)
		}
	}

	b.WriteString("\nALERTS: ")
	if len(snap.Alerts) == 0 {
		b.WriteString("None")
	} else {
		alerts := snap.Alerts
		if len(alerts) > promptMaxAlerts {
			alerts = alerts[:promptMaxAlerts]
		}
		b.WriteString(strings.Join(alerts, ", "))
	}
	b.WriteString("\n\n")

	b.WriteString("INSTRUCTIONS:\n")
	b.WriteString("1. Always use the exact numbers from the farm data summary above\n")
	b.WriteString("2. Provide specific, actionable advice based on the farm's actual data\n")
	b.WriteString("3. Be concise and clear (2-4 well-structured paragraphs)\n")
	b.WriteString("4. Apply agricultural best practices and modern farming techniques\n")
	b.WriteString("5. If the data is limited, acknowledge it and give general best practices\n")
	b.WriteString("6. Be conversational but professional\n\n")

	fmt.Fprintf(&b, "USER QUESTION: %s\n\nProvide a helpful, expert response that directly addresses their question using their farm's data:", question)
	return b.String()
}

func moreMarker(total, shown int) string {
	if total > shown {
		return " and more"
	}
	return ""
}
