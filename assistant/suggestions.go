package assistant

import "strings"

// followUpSuggestions picks follow-ups from the user's own question, never
// from the model's reply, so suggestions stay stable even when the external
// service is flaky.
func followUpSuggestions(question string) []string {
	kw := strings.ToLower(question)

	switch {
	case containsAny(kw, "crop", "plant", "harvest"):
		return []string{"Show crop health details", "Harvest timing recommendations", "Pest and disease prevention tips"}
	case containsAny(kw, "livestock", "animal", "cattle"):
		return []string{"Livestock feeding schedule", "Vaccination and health checkups", "Breeding management advice"}
	case containsAny(kw, "financ", "money", "profit"):
		return []string{"Cost reduction strategies", "Revenue optimization tips", "Investment recommendations"}
	case containsAny(kw, "task", "schedule", "plan"):
		return []string{"Prioritize urgent tasks", "Create weekly plan", "Task automation ideas"}
	case containsAny(kw, "weather", "rain", "season"):
		return []string{"Seasonal planning advice", "Weather-based activities", "Climate adaptation strategies"}
	default:
		return genericSuggestions()
	}
}

func genericSuggestions() []string {
	return []string{"Tell me about my farm performance", "What should I focus on today?", "Any urgent issues to address?"}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
