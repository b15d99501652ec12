package usecase

import (
	"testing"
	"time"
)

func TestGenerateServiceHistory(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	records := GenerateServiceHistory(now)

	if len(records) != 4 {
		t.Fatalf("len = %d, want 4", len(records))
	}

	seen := map[string]bool{}
	for _, r := range records {
		if r.ID == "" {
			t.Error("record missing id")
		}
		seen[r.Type] = true

		if r.Date.Before(now.AddDate(0, 0, -30)) || r.Date.After(now.AddDate(0, 0, 30)) {
			t.Errorf("date %v outside the month window", r.Date)
		}
		if r.Cost <= 0 {
			t.Errorf("cost = %d, want positive", r.Cost)
		}
		switch r.Status {
		case "completed", "scheduled", "pending":
		default:
			t.Errorf("unknown status %q", r.Status)
		}
	}
	if len(seen) != 4 {
		t.Errorf("types = %v, want one record per service type", seen)
	}
}
