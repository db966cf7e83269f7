package slot_generator_service

import (
	"time"

	"github.com/suchimauz/template-slots-generator/internal/core/domain"
	"github.com/suchimauz/template-slots-generator/internal/core/json_types"
	"github.com/suchimauz/template-slots-generator/internal/core/ports/out"
	"github.com/suchimauz/template-slots-generator/internal/utils"
)

// materializeRange разворачивает шаблоны в конкретные слоты по дням диапазона,
// обе границы включительно. Операция чистая: одинаковые входы дают одинаковую
// выдачу, порядок — хронологический по датам, внутри даты по порядку объявления
// дневных паттернов, внутри дня по порядку объявления слот-паттернов
func (s *SlotGeneratorService) materializeRange(templates []domain.TimeSlotTemplate, rangeStart, rangeEnd time.Time) []domain.TimeSlot {
	firstWeekday := s.cfg.Schedule.FirstWeekday

	// Активные шаблоны сортируем от новых к старым один раз на весь диапазон
	active := make(TemplateSlice, 0, len(templates))
	for _, template := range templates {
		if template.Active {
			active = append(active, template)
		}
	}
	sorted := active.quickSortNewestFirst()

	slots := make([]domain.TimeSlot, 0)

	firstDay := utils.StartCurrentDay(rangeStart)
	lastDay := utils.StartCurrentDay(rangeEnd)

	for day := firstDay; !day.After(lastDay); day = utils.StartNextDay(day) {
		// Какой шаблон управляет этим днем
		template := resolveFromSorted(sorted, day)
		if template == nil {
			continue
		}

		anchorWeekStart := TemplateAnchorWeekStart(*template, day, firstWeekday)
		weekIndex := WeekIndexFor(day, anchorWeekStart, len(template.Weeks), firstWeekday)

		// Защита от кривых шаблонов: индекс вне списка недель пропускает день,
		// а не роняет весь диапазон
		if weekIndex < 0 || weekIndex >= len(template.Weeks) {
			s.logger.Warn("slots.materialize.week_index.out_of_range", out.LogFields{
				"templateId": template.ID,
				"date":       day.Format("2006-01-02"),
				"weekIndex":  weekIndex,
				"totalWeeks": len(template.Weeks),
			})
			continue
		}

		weekPattern := template.Weeks[weekIndex]

		for _, dayPattern := range ApplicableDayPatterns(day, weekPattern) {
			for _, slotPattern := range dayPattern.Slots {
				// Слоты нулевой и отрицательной длины не эмитим никогда
				if !slotPattern.IsValid() {
					s.logger.Warn("slots.materialize.slot_pattern.invalid", out.LogFields{
						"templateId":    template.ID,
						"slotPatternId": slotPattern.ID,
						"start":         slotPattern.Start.Time.Format("15:04"),
						"end":           slotPattern.End.Time.Format("15:04"),
					})
					continue
				}

				slotID, err := EncodeSlotID(template.ID, day, slotPattern.ID)
				if err != nil {
					s.logger.Warn("slots.materialize.identity.encode_failed", out.LogFields{
						"templateId":    template.ID,
						"slotPatternId": slotPattern.ID,
						"error":         err.Error(),
					})
					continue
				}

				slots = append(slots, domain.TimeSlot{
					ID:            slotID,
					TemplateID:    template.ID,
					Date:          json_types.Date{Date: day},
					StartDateTime: json_types.DateTime{Date: slotPattern.Start.At(day)},
					EndDateTime:   json_types.DateTime{Date: slotPattern.End.At(day)},
					// Правду о брони накладывает вызывающий
					IsBooked: false,
				})
			}
		}
	}

	return slots
}
