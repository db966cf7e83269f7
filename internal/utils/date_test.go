package utils

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekdayNumber(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		day  time.Time
		want int
	}{
		{"monday", date(2025, time.October, 6), 1},
		{"wednesday", date(2025, time.January, 1), 3},
		{"saturday", date(2025, time.October, 11), 6},
		{"sunday", date(2025, time.October, 12), 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WeekdayNumber(tc.day); got != tc.want {
				t.Errorf("WeekdayNumber(%v) = %d, want %d", tc.day, got, tc.want)
			}
		})
	}
}

func TestWeekdayShortName(t *testing.T) {
	t.Parallel()

	if got := WeekdayShortName(date(2025, time.October, 6)); got != "Mon" {
		t.Errorf("WeekdayShortName = %q, want Mon", got)
	}
	if got := WeekdayShortName(date(2025, time.October, 12)); got != "Sun" {
		t.Errorf("WeekdayShortName = %q, want Sun", got)
	}
}

func TestStartOfWeek(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		day          time.Time
		firstWeekday int
		want         time.Time
	}{
		{"monday first, from wednesday", date(2025, time.October, 8), 1, date(2025, time.October, 6)},
		{"monday first, from monday", date(2025, time.October, 6), 1, date(2025, time.October, 6)},
		{"monday first, from sunday", date(2025, time.October, 12), 1, date(2025, time.October, 6)},
		{"sunday first, from wednesday", date(2025, time.October, 8), 7, date(2025, time.October, 5)},
		{"year start lands on previous year", date(2025, time.January, 1), 1, date(2024, time.December, 30)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StartOfWeek(tc.day, tc.firstWeekday); !got.Equal(tc.want) {
				t.Errorf("StartOfWeek(%v, %d) = %v, want %v", tc.day, tc.firstWeekday, got, tc.want)
			}
		})
	}
}

func TestWeekBounds(t *testing.T) {
	t.Parallel()

	start, end := WeekBounds(date(2025, time.October, 8), 1)
	if !start.Equal(date(2025, time.October, 6)) {
		t.Errorf("week start = %v, want 2025-10-06", start)
	}
	if !end.Equal(date(2025, time.October, 12)) {
		t.Errorf("week end = %v, want 2025-10-12", end)
	}
}

func TestElapsedWeeks(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same week", date(2025, time.October, 6), date(2025, time.October, 12), 0},
		{"next week", date(2025, time.October, 6), date(2025, time.October, 13), 1},
		{"forty weeks", date(2024, time.December, 30), date(2025, time.October, 6), 40},
		{"one week back", date(2025, time.October, 6), date(2025, time.October, 5), -1},
		{"mid-week to mid-week backwards", date(2025, time.October, 8), date(2025, time.September, 30), -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ElapsedWeeks(tc.from, tc.to, 1); got != tc.want {
				t.Errorf("ElapsedWeeks(%v, %v) = %d, want %d", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestElapsedWeeksAcrossClockChanges(t *testing.T) {
	t.Parallel()

	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	inBerlin := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, berlin)
	}

	cases := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		// Перевод на летнее время 2025-03-30: в диапазоне на час меньше,
		// но календарных недель ровно четыре
		{"spring shift inside span", inBerlin(2025, time.March, 17), inBerlin(2025, time.April, 14), 4},
		{"one week across spring shift", inBerlin(2025, time.March, 24), inBerlin(2025, time.March, 31), 1},
		// Перевод на зимнее время 2025-10-26: лишний час тоже не должен
		// менять количество недель
		{"autumn shift inside span", inBerlin(2025, time.October, 20), inBerlin(2025, time.November, 17), 4},
		{"backwards across spring shift", inBerlin(2025, time.April, 14), inBerlin(2025, time.March, 17), -4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ElapsedWeeks(tc.from, tc.to, 1); got != tc.want {
				t.Errorf("ElapsedWeeks(%v, %v) = %d, want %d", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestFloorDivMod(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b    int
		wantDiv int
		wantMod int
	}{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{-4, 2, -2, 0},
		{0, 3, 0, 0},
		{-1, 3, -1, 2},
	}

	for _, tc := range cases {
		if got := FloorDiv(tc.a, tc.b); got != tc.wantDiv {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.wantDiv)
		}
		if got := FloorMod(tc.a, tc.b); got != tc.wantMod {
			t.Errorf("FloorMod(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.wantMod)
		}
	}
}
