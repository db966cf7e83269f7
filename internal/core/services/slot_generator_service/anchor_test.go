package slot_generator_service

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/suchimauz/template-slots-generator/internal/core/domain"
)

func TestSlotIDRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		templateID    string
		date          time.Time
		slotPatternID string
	}{
		{"plain ids", "base-week", time.Date(2025, time.October, 6, 0, 0, 0, 0, time.UTC), "w1-mon-morning"},
		{"ids with dashes and underscores", "temp_2025-10", time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC), "slot_1"},
		{"unicode template id", "шаблон", time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), "utro"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := EncodeSlotID(tc.templateID, tc.date, tc.slotPatternID)
			if err != nil {
				t.Fatalf("EncodeSlotID: %v", err)
			}

			templateID, date, slotPatternID, err := DecodeSlotID(encoded)
			if err != nil {
				t.Fatalf("DecodeSlotID: %v", err)
			}

			if templateID != tc.templateID {
				t.Errorf("templateID = %q, want %q", templateID, tc.templateID)
			}
			if slotPatternID != tc.slotPatternID {
				t.Errorf("slotPatternID = %q, want %q", slotPatternID, tc.slotPatternID)
			}
			if date.Format("2006-01-02") != tc.date.Format("2006-01-02") {
				t.Errorf("date = %v, want %v", date, tc.date)
			}
		})
	}
}

func TestEncodeSlotIDRejectsDelimiter(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, time.October, 6, 0, 0, 0, 0, time.UTC)

	if _, err := EncodeSlotID("bad:template", day, "slot"); !errors.Is(err, domain.ErrIdentityDelimiter) {
		t.Errorf("templateID with delimiter: err = %v, want ErrIdentityDelimiter", err)
	}
	if _, err := EncodeSlotID("template", day, "bad:slot"); !errors.Is(err, domain.ErrIdentityDelimiter) {
		t.Errorf("slotPatternID with delimiter: err = %v, want ErrIdentityDelimiter", err)
	}
}

func TestDecodeSlotIDMalformed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		slotID string
	}{
		{"not base64", "%%%not-base64%%%"},
		{"two fields only", base64.RawURLEncoding.EncodeToString([]byte("template:2025-10-06"))},
		{"four fields", base64.RawURLEncoding.EncodeToString([]byte("a:2025-10-06:b:c"))},
		{"bad date", base64.RawURLEncoding.EncodeToString([]byte("a:october:b"))},
		{"empty template field", base64.RawURLEncoding.EncodeToString([]byte(":2025-10-06:b"))},
		{"empty slot field", base64.RawURLEncoding.EncodeToString([]byte("a:2025-10-06:"))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := DecodeSlotID(tc.slotID)
			if !errors.Is(err, domain.ErrMalformedIdentity) {
				t.Errorf("DecodeSlotID(%q) err = %v, want ErrMalformedIdentity", tc.slotID, err)
			}
		})
	}
}
