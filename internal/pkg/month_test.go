package pkg_test

import (
	"testing"
	"time"

	"github.com/bharath-541/FinSight/internal/pkg"
)

func TestParseMonth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid", input: "2025-03", want: "2025-03"},
		{name: "valid december", input: "2024-12", want: "2024-12"},
		{name: "missing zero padding", input: "2025-3", wantErr: true},
		{name: "month out of range", input: "2025-13", wantErr: true},
		{name: "month zero", input: "2025-00", wantErr: true},
		{name: "full date", input: "2025-03-01", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "not-a-month", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			m, err := pkg.ParseMonth(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m.String() != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, m.String())
			}
		})
	}
}

func TestMonthNextPrevAcrossYear(t *testing.T) {
	t.Parallel()

	dec, _ := pkg.ParseMonth("2024-12")
	if got := dec.Next().String(); got != "2025-01" {
		t.Fatalf("expected 2025-01, got %s", got)
	}

	jan, _ := pkg.ParseMonth("2025-01")
	if got := jan.Prev().String(); got != "2024-12" {
		t.Fatalf("expected 2024-12, got %s", got)
	}
}

func TestMonthDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		month string
		days  int
	}{
		{"2025-01", 31},
		{"2025-02", 28},
		{"2024-02", 29},
		{"2025-04", 30},
	}

	for _, tt := range tests {
		m, _ := pkg.ParseMonth(tt.month)
		if got := m.Days(); got != tt.days {
			t.Fatalf("%s: expected %d days, got %d", tt.month, tt.days, got)
		}
	}
}

func TestMonthContains(t *testing.T) {
	t.Parallel()

	m, _ := pkg.ParseMonth("2025-03")

	inside := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	if !m.Contains(inside) {
		t.Fatalf("expected %v inside %s", inside, m)
	}

	firstInstant := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	if !m.Contains(firstInstant) {
		t.Fatalf("expected first instant inside")
	}

	nextMonth := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	if m.Contains(nextMonth) {
		t.Fatalf("expected start of next month outside")
	}
}
