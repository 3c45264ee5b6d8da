package models

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := ParseDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDateRange_Contains(t *testing.T) {
	r := NewDateRange(day("2011-01-05"), day("2011-01-10"))

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"Start", day("2011-01-05"), true},
		{"End", day("2011-01-10"), true},
		{"Inside", day("2011-01-07"), true},
		{"EndWithTime", day("2011-01-10").Add(23 * time.Hour), true},
		{"Before", day("2011-01-04"), false},
		{"After", day("2011-01-11"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.date); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestDateRange_Clamp(t *testing.T) {
	bounds := NewDateRange(day("2011-01-01"), day("2012-12-31"))

	tests := []struct {
		name      string
		in        DateRange
		wantStart string
		wantEnd   string
	}{
		{"Inside", NewDateRange(day("2011-03-01"), day("2011-04-01")), "2011-03-01", "2011-04-01"},
		{"BeforeMin", NewDateRange(day("2010-01-01"), day("2011-02-01")), "2011-01-01", "2011-02-01"},
		{"AfterMax", NewDateRange(day("2012-06-01"), day("2013-02-01")), "2012-06-01", "2012-12-31"},
		{"BothOutside", NewDateRange(day("2009-01-01"), day("2015-01-01")), "2011-01-01", "2012-12-31"},
		{"InvertedStaysInverted", NewDateRange(day("2012-05-01"), day("2011-05-01")), "2012-05-01", "2011-05-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Clamp(bounds)
			if got.Start.Format(DateLayout) != tt.wantStart || got.End.Format(DateLayout) != tt.wantEnd {
				t.Errorf("Clamp() = %s, want %s → %s", got, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestDateRange_EmptyAndDays(t *testing.T) {
	r := NewDateRange(day("2011-01-01"), day("2011-01-31"))
	if r.IsEmpty() {
		t.Error("forward range should not be empty")
	}
	if r.Days() != 31 {
		t.Errorf("Days() = %d, want 31", r.Days())
	}

	inverted := NewDateRange(day("2011-02-01"), day("2011-01-01"))
	if !inverted.IsEmpty() {
		t.Error("inverted range should be empty")
	}
	if inverted.Days() != 0 {
		t.Errorf("Days() = %d, want 0", inverted.Days())
	}
}

func TestParseDay_Invalid(t *testing.T) {
	if _, err := ParseDay("2011-13-01"); err == nil {
		t.Error("ParseDay should reject month 13")
	}
	if _, err := ParseDay("yesterday"); err == nil {
		t.Error("ParseDay should reject free text")
	}
}
