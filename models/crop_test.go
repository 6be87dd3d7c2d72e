package models

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysToHarvest(t *testing.T) {
	today := date(2025, 6, 15)

	cases := []struct {
		name     string
		status   string
		expected time.Time
		want     int
	}{
		{"ten days out", CropStatusGrowing, date(2025, 6, 25), 10},
		{"due today", CropStatusGrowing, date(2025, 6, 15), 0},
		{"past due clamps to zero", CropStatusGrowing, date(2025, 6, 1), 0},
		{"harvested ignores date", CropStatusHarvested, date(2025, 7, 1), 0},
		{"sold ignores date", CropStatusSold, date(2025, 7, 1), 0},
	}
	for _, tc := range cases {
		c := Crop{Status: tc.status, ExpectedHarvestDate: tc.expected}
		if got := c.DaysToHarvest(today); got != tc.want {
			t.Fatalf("%s: DaysToHarvest = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestDaysToHarvestIgnoresTimeOfDay(t *testing.T) {
	c := Crop{Status: CropStatusGrowing, ExpectedHarvestDate: date(2025, 6, 25)}
	morning := time.Date(2025, 6, 15, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC)
	if c.DaysToHarvest(morning) != c.DaysToHarvest(evening) {
		t.Fatalf("same calendar day gave different answers: %d vs %d",
			c.DaysToHarvest(morning), c.DaysToHarvest(evening))
	}
}

func TestHarvestOverdue(t *testing.T) {
	today := date(2025, 6, 15)

	cases := []struct {
		name     string
		status   string
		expected time.Time
		want     bool
	}{
		{"growing past date", CropStatusGrowing, date(2025, 6, 10), true},
		{"growing due today is not overdue", CropStatusGrowing, date(2025, 6, 15), false},
		{"growing future", CropStatusGrowing, date(2025, 6, 20), false},
		{"harvested past date", CropStatusHarvested, date(2025, 6, 10), false},
		{"planned past date", CropStatusPlanned, date(2025, 6, 10), false},
	}
	for _, tc := range cases {
		c := Crop{Status: tc.status, ExpectedHarvestDate: tc.expected}
		if got := c.HarvestOverdue(today); got != tc.want {
			t.Fatalf("%s: HarvestOverdue = %v, want %v", tc.name, got, tc.want)
		}
	}
}
