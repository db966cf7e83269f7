package slot_generator_service

import (
	"testing"
	"time"

	"github.com/suchimauz/template-slots-generator/internal/core/domain"
)

func TestWeekIndexFor(t *testing.T) {
	t.Parallel()

	anchor := date(2024, time.December, 30) // понедельник

	cases := []struct {
		name              string
		day               time.Time
		totalWeekPatterns int
		want              int
	}{
		{"anchor week", date(2024, time.December, 30), 2, 0},
		{"end of anchor week", date(2025, time.January, 5), 2, 0},
		{"second week of cycle", date(2025, time.January, 6), 2, 1},
		{"cycle wraps back to first week", date(2025, time.January, 13), 2, 0},
		{"forty weeks later", date(2025, time.October, 6), 2, 0},
		{"forty four weeks later", date(2025, time.November, 3), 2, 0},
		{"single week cycle always first", date(2025, time.July, 17), 1, 0},
		{"week before anchor stays in range", date(2024, time.December, 29), 2, 1},
		{"two weeks before anchor", date(2024, time.December, 16), 2, 0},
		{"empty cycle", date(2025, time.October, 6), 0, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WeekIndexFor(tc.day, anchor, tc.totalWeekPatterns, 1); got != tc.want {
				t.Errorf("WeekIndexFor(%v, %v, %d) = %d, want %d",
					tc.day, anchor, tc.totalWeekPatterns, got, tc.want)
			}
		})
	}
}

func TestTemplateAnchorWeekStart(t *testing.T) {
	t.Parallel()

	queryDate := date(2025, time.October, 6)

	t.Run("bounded template anchors to week of its start date", func(t *testing.T) {
		template := domain.NewTemporaryTemplate(
			"bounded", "Bounded",
			date(2025, time.September, 1),
			date(2025, time.October, 1), // среда
			date(2025, time.October, 31),
			nil,
		)

		got := TemplateAnchorWeekStart(template, queryDate, 1)
		if !got.Equal(date(2025, time.September, 29)) {
			t.Errorf("anchor = %v, want 2025-09-29", got)
		}
	})

	t.Run("open template anchors to week of query year start", func(t *testing.T) {
		template := domain.NewDefaultTemplate("open", "Open", date(2025, time.August, 20), nil)

		got := TemplateAnchorWeekStart(template, queryDate, 1)
		if !got.Equal(date(2024, time.December, 30)) {
			t.Errorf("anchor = %v, want 2024-12-30", got)
		}
	})

	t.Run("anchor is stable across query dates within one year", func(t *testing.T) {
		template := domain.NewDefaultTemplate("open", "Open", date(2025, time.August, 20), nil)

		first := TemplateAnchorWeekStart(template, date(2025, time.March, 10), 1)
		second := TemplateAnchorWeekStart(template, date(2025, time.November, 3), 1)
		if !first.Equal(second) {
			t.Errorf("anchor drifted within one year: %v vs %v", first, second)
		}
	})
}
