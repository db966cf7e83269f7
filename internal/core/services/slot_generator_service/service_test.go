package slot_generator_service

import (
	"context"
	"testing"
	"time"

	"github.com/suchimauz/template-slots-generator/internal/config"
	"github.com/suchimauz/template-slots-generator/internal/core/domain"
	"github.com/suchimauz/template-slots-generator/internal/core/json_types"
	"github.com/suchimauz/template-slots-generator/internal/core/ports/out"
)

type testLogger struct{}

func (l *testLogger) Debug(event string, fields out.LogFields) {}
func (l *testLogger) Info(event string, fields out.LogFields)  {}
func (l *testLogger) Warn(event string, fields out.LogFields)  {}
func (l *testLogger) Error(event string, fields out.LogFields) {}
func (l *testLogger) WithFields(fields out.LogFields) out.LoggerPort {
	return l
}
func (l *testLogger) WithModule(module string) out.LoggerPort {
	return l
}

type fakeTemplateStore struct {
	templates []domain.TimeSlotTemplate
}

func (s *fakeTemplateStore) GetActiveTemplates(ctx context.Context) ([]domain.TimeSlotTemplate, error) {
	return s.templates, nil
}

func (s *fakeTemplateStore) GetTemplate(ctx context.Context, templateID string) (*domain.TimeSlotTemplate, error) {
	for i := range s.templates {
		if s.templates[i].ID == templateID {
			return &s.templates[i], nil
		}
	}
	return nil, nil
}

type fakeBookingPort struct {
	bookedSlotIDs map[string]bool
}

func (p *fakeBookingPort) IsBooked(ctx context.Context, slotID, userID string) (bool, error) {
	return p.bookedSlotIDs[slotID], nil
}

func (p *fakeBookingPort) Book(ctx context.Context, templateID, slotID string, date time.Time, userID string) (*domain.Booking, error) {
	return nil, nil
}

func (p *fakeBookingPort) Cancel(ctx context.Context, slotID, userID string) error {
	return nil
}

func (p *fakeBookingPort) ListBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	return nil, nil
}

func clock(hour, minute int) json_types.ClockTime {
	return json_types.ClockTime{Time: time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)}
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Schedule.FirstWeekday = 1
	return cfg
}

// Двухнедельный бессрочный шаблон и более новый месячный оверрайд поверх него
func scenarioTemplates() []domain.TimeSlotTemplate {
	baseWeek := domain.NewDefaultTemplate(
		"base-week", "Base Week",
		date(2025, time.August, 20),
		[]domain.WeekPattern{
			{
				Index: 0,
				Days: []domain.DayPattern{
					{
						Day: domain.NumberSelector(1),
						Slots: []domain.SlotPattern{
							{ID: "w0-mon-morning", Start: clock(9, 0), End: clock(12, 0)},
							{ID: "w0-mon-afternoon", Start: clock(14, 0), End: clock(17, 0)},
						},
					},
				},
			},
			{
				Index: 1,
				Days: []domain.DayPattern{
					{
						Day: domain.NameSelector(domain.WeekdayNameMon),
						Slots: []domain.SlotPattern{
							{ID: "w1-mon-early", Start: clock(8, 0), End: clock(13, 0)},
						},
					},
				},
			},
		},
	)

	updatedMondays := domain.NewTemporaryTemplate(
		"updated-mondays", "Updated Mondays",
		date(2025, time.September, 15),
		date(2025, time.October, 1),
		date(2025, time.October, 31),
		[]domain.WeekPattern{
			{
				Index: 0,
				Days: []domain.DayPattern{
					{
						Day: domain.NumberSelector(1),
						Slots: []domain.SlotPattern{
							{ID: "upd-mon", Start: clock(8, 0), End: clock(11, 0)},
						},
					},
				},
			},
		},
	)

	return []domain.TimeSlotTemplate{baseWeek, updatedMondays}
}

func newTestService(store *fakeTemplateStore, bookings *fakeBookingPort) *SlotGeneratorService {
	if bookings == nil {
		bookings = &fakeBookingPort{}
	}
	return NewSlotGeneratorService(store, bookings, nil, testConfig(), &testLogger{})
}

type moduleRecorder struct {
	testLogger
	modules []string
}

func (l *moduleRecorder) WithModule(module string) out.LoggerPort {
	l.modules = append(l.modules, module)
	return l
}

func TestNewSlotGeneratorServiceTagsLogger(t *testing.T) {
	t.Parallel()

	// Конструктор сам вешает модуль на логгер, вызывающему оборачивать не нужно
	recorder := &moduleRecorder{}
	NewSlotGeneratorService(&fakeTemplateStore{}, &fakeBookingPort{}, nil, testConfig(), recorder)

	if len(recorder.modules) != 1 || recorder.modules[0] != "SlotGeneratorService" {
		t.Errorf("WithModule calls = %v, want exactly [SlotGeneratorService]", recorder.modules)
	}
}

func TestMaterializeSlotsOverrideDay(t *testing.T) {
	t.Parallel()

	service := newTestService(&fakeTemplateStore{templates: scenarioTemplates()}, nil)

	// Понедельник внутри диапазона оверрайда: побеждает более новый шаблон
	day := date(2025, time.October, 6)
	slots, _, err := service.MaterializeSlots(context.Background(), day, day)
	if err != nil {
		t.Fatalf("MaterializeSlots: %v", err)
	}

	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1", len(slots))
	}
	if slots[0].TemplateID != "updated-mondays" {
		t.Errorf("templateId = %q, want updated-mondays", slots[0].TemplateID)
	}
	if got := slots[0].StartDateTime.Date; got.Hour() != 8 {
		t.Errorf("start hour = %d, want 8", got.Hour())
	}
	if got := slots[0].EndDateTime.Date; got.Hour() != 11 {
		t.Errorf("end hour = %d, want 11", got.Hour())
	}
	if slots[0].IsBooked {
		t.Error("materialized slot is booked, want free")
	}
}

func TestMaterializeSlotsBaseWeekAfterOverrideExpires(t *testing.T) {
	t.Parallel()

	service := newTestService(&fakeTemplateStore{templates: scenarioTemplates()}, nil)

	// Понедельник после конца оверрайда: снова базовый шаблон, первая неделя цикла
	day := date(2025, time.November, 3)
	slots, _, err := service.MaterializeSlots(context.Background(), day, day)
	if err != nil {
		t.Fatalf("MaterializeSlots: %v", err)
	}

	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(slots))
	}
	for _, slot := range slots {
		if slot.TemplateID != "base-week" {
			t.Errorf("templateId = %q, want base-week", slot.TemplateID)
		}
	}
	if slots[0].StartDateTime.Date.Hour() != 9 || slots[1].StartDateTime.Date.Hour() != 14 {
		t.Errorf("start hours = %d and %d, want 9 and 14 in declaration order",
			slots[0].StartDateTime.Date.Hour(), slots[1].StartDateTime.Date.Hour())
	}
}

func TestMaterializeSlotsRangeIsChronological(t *testing.T) {
	t.Parallel()

	service := newTestService(&fakeTemplateStore{templates: scenarioTemplates()}, nil)

	slots, _, err := service.MaterializeSlots(
		context.Background(),
		date(2025, time.October, 30),
		date(2025, time.November, 3),
	)
	if err != nil {
		t.Fatalf("MaterializeSlots: %v", err)
	}

	// В хвосте оверрайда нет понедельников, выходные базового шаблона пустые,
	// остаются только два слота понедельника 3 ноября
	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(slots))
	}
	for i := 1; i < len(slots); i++ {
		if slots[i].StartDateTime.Date.Before(slots[i-1].StartDateTime.Date) {
			t.Errorf("slots out of chronological order: %v after %v",
				slots[i].StartDateTime.Date, slots[i-1].StartDateTime.Date)
		}
	}
}

func TestMaterializeSlotsDeterministic(t *testing.T) {
	t.Parallel()

	service := newTestService(&fakeTemplateStore{templates: scenarioTemplates()}, nil)

	first, _, err := service.MaterializeSlots(context.Background(), date(2025, time.October, 1), date(2025, time.October, 31))
	if err != nil {
		t.Fatalf("MaterializeSlots: %v", err)
	}
	second, _, err := service.MaterializeSlots(context.Background(), date(2025, time.October, 1), date(2025, time.October, 31))
	if err != nil {
		t.Fatalf("MaterializeSlots: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("runs differ in size: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("slot %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestMaterializeSlotsSkipsInvalidPatterns(t *testing.T) {
	t.Parallel()

	broken := domain.NewDefaultTemplate(
		"broken", "Broken",
		date(2025, time.August, 20),
		[]domain.WeekPattern{
			{
				Index: 0,
				Days: []domain.DayPattern{
					{
						Day: domain.NumberSelector(1),
						Slots: []domain.SlotPattern{
							{ID: "zero-length", Start: clock(10, 0), End: clock(10, 0)},
							{ID: "inverted", Start: clock(15, 0), End: clock(12, 0)},
							{ID: "valid", Start: clock(9, 0), End: clock(10, 0)},
						},
					},
				},
			},
		},
	)

	service := newTestService(&fakeTemplateStore{templates: []domain.TimeSlotTemplate{broken}}, nil)

	day := date(2025, time.October, 6)
	slots, _, err := service.MaterializeSlots(context.Background(), day, day)
	if err != nil {
		t.Fatalf("MaterializeSlots: %v", err)
	}

	if len(slots) != 1 {
		t.Fatalf("got %d slots, want only the valid one", len(slots))
	}
	_, _, slotPatternID, err := DecodeSlotID(slots[0].ID)
	if err != nil {
		t.Fatalf("DecodeSlotID: %v", err)
	}
	if slotPatternID != "valid" {
		t.Errorf("surviving slotPatternId = %q, want valid", slotPatternID)
	}
}

func TestMaterializeSlotsForUserOverlay(t *testing.T) {
	t.Parallel()

	store := &fakeTemplateStore{templates: scenarioTemplates()}
	day := date(2025, time.November, 3)

	bookedID, err := EncodeSlotID("base-week", day, "w0-mon-morning")
	if err != nil {
		t.Fatalf("EncodeSlotID: %v", err)
	}

	bookings := &fakeBookingPort{bookedSlotIDs: map[string]bool{bookedID: true}}
	service := newTestService(store, bookings)

	slots, _, err := service.MaterializeSlotsForUser(context.Background(), day, day, "user-1")
	if err != nil {
		t.Fatalf("MaterializeSlotsForUser: %v", err)
	}

	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(slots))
	}
	if !slots[0].IsBooked {
		t.Error("booked slot reported as free")
	}
	if slots[1].IsBooked {
		t.Error("free slot reported as booked")
	}

	// Без userId бронь не накладывается вовсе
	plain, _, err := service.MaterializeSlots(context.Background(), day, day)
	if err != nil {
		t.Fatalf("MaterializeSlots: %v", err)
	}
	for _, slot := range plain {
		if slot.IsBooked {
			t.Error("plain materialization leaked booking state")
		}
	}
}
