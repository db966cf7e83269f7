package memstore

import (
	"time"

	"github.com/suchimauz/template-slots-generator/internal/config"
	"github.com/suchimauz/template-slots-generator/internal/core/domain"
	"github.com/suchimauz/template-slots-generator/internal/core/json_types"
)

func clock(hour, minute int) json_types.ClockTime {
	return json_types.ClockTime{Time: time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)}
}

// Seed наполняет хранилище демо-шаблоном "Base Week" на два недельных паттерна.
// Используется в локальном режиме без настроенного удаленного хранилища
func Seed(store *TemplateStore) {
	createdAt := time.Date(2025, time.August, 20, 12, 0, 0, 0, config.TimeZone)

	baseWeek := domain.NewDefaultTemplate("base-week", "Base Week", createdAt, []domain.WeekPattern{
		{
			Index: 1,
			Days: []domain.DayPattern{
				{
					Day: domain.NumberSelector(1),
					Slots: []domain.SlotPattern{
						{ID: "w1-mon-morning", Start: clock(9, 0), End: clock(12, 0)},
						{ID: "w1-mon-afternoon", Start: clock(14, 0), End: clock(17, 0)},
					},
				},
				{
					Day: domain.NumberSelector(2),
					Slots: []domain.SlotPattern{
						{ID: "w1-tue", Start: clock(10, 0), End: clock(15, 0)},
					},
				},
				{
					Day: domain.NumberSelector(3),
					Slots: []domain.SlotPattern{
						{ID: "w1-wed", Start: clock(10, 0), End: clock(16, 0)},
					},
				},
			},
		},
		{
			Index: 2,
			Days: []domain.DayPattern{
				{
					Day: domain.NumberSelector(1),
					Slots: []domain.SlotPattern{
						{ID: "w2-mon", Start: clock(8, 0), End: clock(13, 0)},
					},
				},
				{
					Day: domain.NumberSelector(3),
					Slots: []domain.SlotPattern{
						{ID: "w2-wed", Start: clock(14, 0), End: clock(20, 0)},
					},
				},
			},
		},
	})

	store.Put(baseWeek)
}
