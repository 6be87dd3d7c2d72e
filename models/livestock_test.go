package models

import "testing"

func TestNeedsAttention(t *testing.T) {
	cases := []struct {
		status string
		want   bool
	}{
		{LivestockStatusHealthy, false},
		{LivestockStatusSick, true},
		{LivestockStatusUnderTreatment, true},
		{LivestockStatusPregnant, false},
		{LivestockStatusSold, false},
	}
	for _, tc := range cases {
		a := Livestock{Status: tc.status}
		if got := a.NeedsAttention(); got != tc.want {
			t.Fatalf("status %s: NeedsAttention = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestAgeMonths(t *testing.T) {
	today := date(2025, 6, 15)

	born := date(2024, 6, 15)
	a := Livestock{DateOfBirth: &born}
	if got := a.AgeMonths(today); got != 12 {
		t.Fatalf("one year old: AgeMonths = %d, want 12", got)
	}

	unknown := Livestock{}
	if got := unknown.AgeMonths(today); got != 0 {
		t.Fatalf("unknown birth date: AgeMonths = %d, want 0", got)
	}

	futureBirth := date(2025, 7, 1)
	b := Livestock{DateOfBirth: &futureBirth}
	if got := b.AgeMonths(today); got != 0 {
		t.Fatalf("future birth date: AgeMonths = %d, want 0", got)
	}
}
