package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-06-15")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseDate = %v, want %v", got, want)
	}

	for _, bad := range []string{"15/06/2025", "2025-6-15", "yesterday", ""} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("ParseDate(%q) expected an error", bad)
		}
	}
}

func TestParseOptionalDate(t *testing.T) {
	got, err := ParseOptionalDate("")
	if err != nil || got != nil {
		t.Fatalf("empty string: got %v, %v; want nil, nil", got, err)
	}

	got, err = ParseOptionalDate("2025-01-01")
	if err != nil || got == nil {
		t.Fatalf("valid date: got %v, %v", got, err)
	}

	if _, err := ParseOptionalDate("not-a-date"); err == nil {
		t.Fatal("expected an error for malformed input")
	}
}
