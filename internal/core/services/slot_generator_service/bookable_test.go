package slot_generator_service

import (
	"testing"
	"time"

	"github.com/suchimauz/template-slots-generator/internal/core/domain"
	"github.com/suchimauz/template-slots-generator/internal/core/json_types"
)

func TestIsBookable(t *testing.T) {
	t.Parallel()

	slotAt := func(day time.Time, hour int) domain.TimeSlot {
		return domain.TimeSlot{
			Date:          json_types.Date{Date: day},
			StartDateTime: json_types.DateTime{Date: time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC)},
		}
	}

	now := time.Date(2025, time.October, 6, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		slot domain.TimeSlot
		want bool
	}{
		{"future day", slotAt(date(2025, time.October, 7), 9), true},
		{"today, start still ahead", slotAt(date(2025, time.October, 6), 14), true},
		{"today, start exactly now", slotAt(date(2025, time.October, 6), 10), false},
		{"today, start already passed", slotAt(date(2025, time.October, 6), 9), false},
		{"yesterday", slotAt(date(2025, time.October, 5), 14), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsBookable(tc.slot, now); got != tc.want {
				t.Errorf("IsBookable = %v, want %v", got, tc.want)
			}
		})
	}
}
