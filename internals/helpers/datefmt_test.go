package helper

import (
	"testing"
	"time"
)

func TestFormatDateTime(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"evening", time.Date(2024, 12, 18, 19, 0, 0, 0, time.UTC), "Wed, 18 Dec, 7:00 PM"},
		{"midnight is 12 AM", time.Date(2025, 6, 15, 0, 30, 0, 0, time.UTC), "Sun, 15 Jun, 12:30 AM"},
		{"noon is 12 PM", time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), "Sat, 1 Mar, 12:00 PM"},
		{"minutes padded", time.Date(2025, 3, 1, 9, 5, 0, 0, time.UTC), "Sat, 1 Mar, 9:05 AM"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatDateTime(tc.in); got != tc.want {
				t.Errorf("FormatDateTime(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatDateAndTime(t *testing.T) {
	in := time.Date(2024, 12, 18, 19, 0, 0, 0, time.UTC)
	if got := FormatDate(in); got != "Wed, 18 Dec" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatTime(in); got != "7:00 PM" {
		t.Errorf("FormatTime = %q", got)
	}
}

func TestIsThisWeek(t *testing.T) {
	// Sunday 2025-06-15; the week runs [15 Jun 00:00, 22 Jun 00:00) UTC.
	now := time.Date(2025, 6, 17, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   time.Time
		want bool
	}{
		{"start of week inclusive", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"mid week", time.Date(2025, 6, 20, 23, 0, 0, 0, time.UTC), true},
		{"end of week exclusive", time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC), false},
		{"before the week", time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsThisWeek(tc.in, now); got != tc.want {
				t.Errorf("IsThisWeek(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestIsTodayAndIsPast(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	if !IsToday(time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC), now) {
		t.Error("same UTC day should be today")
	}
	if IsToday(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), now) {
		t.Error("next day should not be today")
	}
	if !IsPast(now.Add(-time.Minute), now) {
		t.Error("a minute ago should be past")
	}
	if IsPast(now.Add(time.Minute), now) {
		t.Error("a minute ahead should not be past")
	}
}
