package models

import (
	"testing"
	"time"
)

func TestIsOverdue(t *testing.T) {
	today := date(2025, 6, 15)
	past := date(2025, 6, 10)
	future := date(2025, 6, 20)

	cases := []struct {
		name   string
		status string
		due    time.Time
		want   bool
	}{
		{"pending past due", TaskStatusPending, past, true},
		{"in progress past due", TaskStatusInProgress, past, true},
		{"pending due today", TaskStatusPending, today, false},
		{"pending future", TaskStatusPending, future, false},
		{"completed past due", TaskStatusCompleted, past, false},
		{"cancelled past due", TaskStatusCancelled, past, false},
	}
	for _, tc := range cases {
		task := Task{Status: tc.status, DueDate: tc.due}
		if got := task.IsOverdue(today); got != tc.want {
			t.Fatalf("%s: IsOverdue = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDueWithin(t *testing.T) {
	today := date(2025, 6, 15)

	cases := []struct {
		name   string
		status string
		due    time.Time
		days   int
		want   bool
	}{
		{"due today counts", TaskStatusPending, date(2025, 6, 15), 3, true},
		{"due on last day counts", TaskStatusPending, date(2025, 6, 18), 3, true},
		{"past horizon", TaskStatusPending, date(2025, 6, 19), 3, false},
		{"already overdue is not due soon", TaskStatusPending, date(2025, 6, 14), 3, false},
		{"completed never due soon", TaskStatusCompleted, date(2025, 6, 16), 3, false},
	}
	for _, tc := range cases {
		task := Task{Status: tc.status, DueDate: tc.due}
		if got := task.DueWithin(today, tc.days); got != tc.want {
			t.Fatalf("%s: DueWithin = %v, want %v", tc.name, got, tc.want)
		}
	}
}
