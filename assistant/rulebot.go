package assistant

import (
	"fmt"
	"math/rand"
	"strings"
)

// Response is what the chat surface renders: a typed message plus at most
// three follow-up suggestions.
type Response struct {
	Type        string   `json:"type"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

const (
	ResponseInfo      = "info"
	ResponseAction    = "action"
	ResponseAdvice    = "advice"
	ResponseHealth    = "health"
	ResponseFinancial = "financial"
	ResponseAlertType = "alert"
	ResponseWeather   = "weather"
	ResponseGreeting  = "greeting"
	ResponseHelp      = "help"
	ResponseAI        = "ai"
	ResponseError     = "error"
)

// topicBucket is one keyword class. Buckets are checked in slice order and
// the first match wins, so earlier topics shadow later ones on overlapping
// keywords.
type topicBucket struct {
	name     string
	keywords []string
	handle   func(*Snapshot, string) Response
}

var topicBuckets = []topicBucket{
	{"crop", []string{"crop", "plant", "harvest", "seed"}, handleCropQuery},
	{"livestock", []string{"livestock", "animal", "cattle", "chicken", "goat"}, handleLivestockQuery},
	{"finance", []string{"money", "finance", "profit", "expense", "income", "cost"}, handleFinanceQuery},
	{"task", []string{"task", "todo", "schedule", "reminder"}, handleTaskQuery},
	{"weather", []string{"weather", "rain", "temperature", "climate"}, handleWeatherQuery},
	{"greeting", []string{"hello", "hi", "hey", "greetings"}, handleGreeting},
	{"help", []string{"help", "assist", "support"}, handleHelp},
}

// RuleAnswer classifies the question into a topic bucket and answers from
// the snapshot alone. Unmatched text lands in a generic fallback.
func RuleAnswer(snap *Snapshot, question string) Response {
	lower := strings.ToLower(question)
	for _, b := range topicBuckets {
		for _, kw := range b.keywords {
			if strings.Contains(lower, kw) {
				return b.handle(snap, lower)
			}
		}
	}
	return Response{
		Type:        ResponseInfo,
		Message:     "I'm learning to understand your question better. Could you rephrase it or choose from these common topics?",
		Suggestions: []string{"Crop management", "Livestock care", "Financial tracking"},
	}
}

func handleCropQuery(snap *Snapshot, msg string) Response {
	total := snap.Crops.Total
	active := snap.Crops.Growing

	if strings.Contains(msg, "how many") || strings.Contains(msg, "count") {
		return Response{
			Type:        ResponseInfo,
			Message:     fmt.Sprintf("You currently have %d total crops, with %d actively growing. Would you like detailed information about any specific crop?", total, active),
			Suggestions: []string{"Show me my crops", "Add new crop", "Crop care tips"},
		}
	}
	if strings.Contains(msg, "add") || strings.Contains(msg, "new") {
		return Response{
			Type:        ResponseAction,
			Message:     "I can help you add a new crop! Here's what you'll need: crop type, planting date, expected harvest date, and area.",
			Suggestions: []string{"Go to add crop", "What crops grow well now?", "Show growing guide"},
		}
	}
	if strings.Contains(msg, "care") || strings.Contains(msg, "tips") || strings.Contains(msg, "help") {
		return Response{
			Type: ResponseAdvice,
			Message: "Crop care tips:\n\n1. Watering: check soil moisture daily, water early morning or evening\n" +
				"2. Fertilization: apply balanced nutrients every 2-3 weeks\n" +
				"3. Pest control: inspect weekly for signs of pests or disease\n" +
				"4. Monitoring: track growth stages and adjust care accordingly",
			Suggestions: []string{"Pest identification", "Fertilizer recommendations", "Watering schedule"},
		}
	}
	return Response{
		Type:        ResponseInfo,
		Message:     fmt.Sprintf("You have %d active crops. I can help you with planting schedules, care recommendations, pest management, and harvest predictions.", active),
		Suggestions: []string{"View my crops", "Best planting time", "Harvest predictions"},
	}
}

func handleLivestockQuery(snap *Snapshot, msg string) Response {
	total := snap.Livestock.Total
	healthy := snap.Livestock.Healthy

	if strings.Contains(msg, "health") || strings.Contains(msg, "sick") {
		return Response{
			Type:        ResponseHealth,
			Message:     fmt.Sprintf("Livestock Health Report: %d out of %d animals are in healthy condition. Regular veterinary checkups are recommended every 3-6 months.", healthy, total),
			Suggestions: []string{"View livestock details", "Schedule vet visit", "Health tracking tips"},
		}
	}
	if strings.Contains(msg, "feed") || strings.Contains(msg, "nutrition") {
		return Response{
			Type: ResponseAdvice,
			Message: "Optimal feeding guidelines:\n\n- Provide a balanced diet based on animal type and age\n" +
				"- Ensure clean water is always available\n" +
				"- Adjust portions based on season and activity\n" +
				"- Include minerals and supplements as needed",
			Suggestions: []string{"Feeding schedule", "Nutritional requirements", "Feed costs"},
		}
	}
	return Response{
		Type:        ResponseInfo,
		Message:     fmt.Sprintf("You're managing %d animals. I can assist with health monitoring, feeding schedules, breeding management, and production tracking.", total),
		Suggestions: []string{"Add animal", "Health checkup reminders", "Breeding calendar"},
	}
}

func handleFinanceQuery(snap *Snapshot, msg string) Response {
	w := snap.Finances.Last30Days

	if strings.Contains(msg, "profit") || strings.Contains(msg, "earning") {
		return Response{
			Type: ResponseFinancial,
			Message: fmt.Sprintf("Financial Summary (Last 30 days):\n\nIncome: %s\nExpenses: %s\nNet Profit: %s\n\nYour profit margin is %.1f%%",
				formatMoney(w.Income), formatMoney(w.Expense), formatMoney(w.Net), w.ProfitMargin),
			Suggestions: []string{"View detailed report", "Add transaction", "Cost reduction tips"},
		}
	}
	if strings.Contains(msg, "save") || strings.Contains(msg, "reduce") || strings.Contains(msg, "cut") {
		return Response{
			Type: ResponseAdvice,
			Message: "Cost optimization suggestions:\n\n1. Review recurring expenses for negotiation opportunities\n" +
				"2. Bulk purchase inputs during off-season\n" +
				"3. Implement efficient irrigation to reduce water costs\n" +
				"4. Use organic fertilizers to cut chemical costs\n" +
				"5. Optimize feed management to minimize waste",
			Suggestions: []string{"Expense breakdown", "Budget planning", "Investment ideas"},
		}
	}
	health := "concerning"
	if w.Net.IsPositive() {
		health = "good"
	}
	return Response{
		Type: ResponseFinancial,
		Message: fmt.Sprintf("Your farm's financial health looks %s. Last 30 days: %s income, %s expenses. I can help with budgeting, forecasting, and optimization.",
			health, formatMoney(w.Income), formatMoney(w.Expense)),
		Suggestions: []string{"Monthly report", "Add expense", "Financial forecast"},
	}
}

func handleTaskQuery(snap *Snapshot, msg string) Response {
	pending := snap.Tasks.Pending
	overdue := snap.Tasks.Overdue

	if overdue > 0 {
		remaining := pending - overdue
		if remaining < 0 {
			remaining = 0
		}
		return Response{
			Type:        ResponseAlertType,
			Message:     fmt.Sprintf("Task Alert: you have %d overdue tasks and %d pending tasks. Prioritize completion to maintain farm efficiency.", overdue, remaining),
			Suggestions: []string{"View overdue tasks", "Create new task", "Task prioritization tips"},
		}
	}
	return Response{
		Type:        ResponseInfo,
		Message:     fmt.Sprintf("You have %d pending tasks. I can help you create tasks, set reminders, prioritize activities, and track completion.", pending),
		Suggestions: []string{"Create task", "View calendar", "Smart scheduling"},
	}
}

func handleWeatherQuery(snap *Snapshot, msg string) Response {
	// static advisory regardless of the recorded values, same behavior as
	// the weather insight card
	return Response{
		Type: ResponseWeather,
		Message: "Weather outlook:\n\n- Today: good conditions for field work\n" +
			"- Irrigation: check soil moisture, may need watering\n" +
			"- Planting: suitable for cool-season crops\n" +
			"- Activities: ideal for harvesting and outdoor tasks",
		Suggestions: []string{"7-day forecast", "Irrigation schedule", "Planting calendar"},
	}
}

var greetings = []string{
	"Hello! I'm your farm assistant. How can I help optimize your farm today?",
	"Hi there! Ready to make your farm more productive? Ask me anything!",
	"Greetings! I'm here to provide insights for your farm. What would you like to know?",
}

func handleGreeting(snap *Snapshot, msg string) Response {
	return Response{
		Type:        ResponseGreeting,
		Message:     greetings[rand.Intn(len(greetings))],
		Suggestions: []string{"Show dashboard insights", "Financial summary", "Task recommendations"},
	}
}

func handleHelp(snap *Snapshot, msg string) Response {
	return Response{
		Type: ResponseHelp,
		Message: "I'm your farm assistant! Here's what I can help you with:\n\n" +
			"Crops: planting schedules, care tips, pest management\n" +
			"Livestock: health monitoring, feeding guides, breeding\n" +
			"Finances: profit analysis, budgeting, cost optimization\n" +
			"Tasks: scheduling, reminders, prioritization\n" +
			"Weather: forecasts, irrigation timing, activity planning\n\n" +
			"Just ask me anything about your farm!",
		Suggestions: []string{"How many crops do I have?", "Show my financial status", "What tasks are pending?"},
	}
}
