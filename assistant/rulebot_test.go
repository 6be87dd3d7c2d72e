package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleAnswerCropCount(t *testing.T) {
	snap := emptySnapshot()
	snap.Crops.Total = 4
	snap.Crops.Growing = 2

	resp := RuleAnswer(snap, "How many crops do I have?")
	assert.Equal(t, ResponseInfo, resp.Type)
	assert.Contains(t, resp.Message, "4 total crops")
	assert.Contains(t, resp.Message, "2 actively growing")
	assert.NotEmpty(t, resp.Suggestions)
}

func TestRuleAnswerAddCropIsAnAction(t *testing.T) {
	resp := RuleAnswer(emptySnapshot(), "I want to add a new crop")
	assert.Equal(t, ResponseAction, resp.Type)
}

func TestRuleAnswerClassifierOrder(t *testing.T) {
	snap := emptySnapshot()
	snap.Crops.Growing = 1
	snap.Livestock.Total = 3

	// mentions both topics, the crop bucket registered first wins
	resp := RuleAnswer(snap, "tell me about my plants and animals")
	assert.Contains(t, resp.Message, "1 active crops")

	// without a crop keyword the livestock bucket takes it
	resp = RuleAnswer(snap, "tell me about my animals")
	assert.Contains(t, resp.Message, "3 animals")
}

func TestRuleAnswerFinanceProfit(t *testing.T) {
	snap := emptySnapshot()
	snap.Finances.Last30Days = newFinanceWindow(money("50000"), money("20000"))

	resp := RuleAnswer(snap, "what is my profit this month?")
	assert.Equal(t, ResponseFinancial, resp.Type)
	assert.Contains(t, resp.Message, "KSh 50,000")
	assert.Contains(t, resp.Message, "KSh 20,000")
	assert.Contains(t, resp.Message, "KSh 30,000")
}

func TestRuleAnswerOverdueTasksRaiseAlert(t *testing.T) {
	snap := emptySnapshot()
	snap.Tasks.Pending = 5
	snap.Tasks.Overdue = 2

	resp := RuleAnswer(snap, "what tasks are on my schedule?")
	assert.Equal(t, ResponseAlertType, resp.Type)
	assert.Contains(t, resp.Message, "2 overdue tasks")
	assert.Contains(t, resp.Message, "3 pending tasks")
}

func TestRuleAnswerGreeting(t *testing.T) {
	resp := RuleAnswer(emptySnapshot(), "Hello there")
	assert.Equal(t, ResponseGreeting, resp.Type)
	assert.NotEmpty(t, resp.Message)
	assert.Len(t, resp.Suggestions, 3)
}

func TestRuleAnswerFallback(t *testing.T) {
	resp := RuleAnswer(emptySnapshot(), "zzz qqq xyzzy")
	assert.Equal(t, ResponseInfo, resp.Type)
	assert.Contains(t, resp.Message, "rephrase")
	assert.NotEmpty(t, resp.Suggestions)
}
