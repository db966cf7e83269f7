package slot_generator_service

import (
	"time"

	"github.com/suchimauz/template-slots-generator/internal/config"
	"github.com/suchimauz/template-slots-generator/internal/core/domain"
	"github.com/suchimauz/template-slots-generator/internal/utils"
)

// EffectiveRange возвращает действующий диапазон шаблона для разрешения по дате.
// Отсутствующий effectiveStart привязываем к началу календарного года запрашиваемой
// даты: якорь фиксированный и детерминированный, а не плывущее "сейчас" — иначе
// фаза недельного цикла шаблона молча сдвигалась бы со временем.
// Отсутствующий effectiveEnd это далекое будущее, шаблон бессрочный
func EffectiveRange(template domain.TimeSlotTemplate, queryDate time.Time) (time.Time, time.Time) {
	start := template.EffectiveStart.Date
	if start.IsZero() {
		start = utils.StartOfYear(queryDate)
	}

	end := template.EffectiveEnd.Date
	if end.IsZero() {
		end = time.Date(2100, time.December, 31, 0, 0, 0, 0, queryDate.Location())
	}

	return utils.StartCurrentDay(start), utils.StartCurrentDay(end)
}

// ResolveTemplateForDate определяет, какой единственный шаблон управляет датой:
// среди активных шаблонов, чей действующий диапазон содержит дату, побеждает
// самый новый по createdAt. nil — в этот день слотов нет
func ResolveTemplateForDate(templates []domain.TimeSlotTemplate, date time.Time) *domain.TimeSlotTemplate {
	active := make(TemplateSlice, 0, len(templates))
	for _, template := range templates {
		if template.Active {
			active = append(active, template)
		}
	}

	return resolveFromSorted(active.quickSortNewestFirst(), date)
}

// resolveFromSorted — то же разрешение по уже отсортированному от новых к старым
// списку активных шаблонов; материализация сортирует один раз на весь диапазон
func resolveFromSorted(sortedActive []domain.TimeSlotTemplate, date time.Time) *domain.TimeSlotTemplate {
	day := utils.StartCurrentDay(date)

	for i := range sortedActive {
		start, end := EffectiveRange(sortedActive[i], day)
		if !day.Before(start) && !day.After(end) {
			return &sortedActive[i]
		}
	}

	return nil
}

type dateRange struct {
	start time.Time
	end   time.Time
}

// reportingRange — диапазон шаблона для отчетной отбраковки.
// Сентинелы здесь свои, шире чем у разрешения по дате: открытые границы
// считаются 1900-01-01 и 2100-01-01
func reportingRange(template domain.TimeSlotTemplate) dateRange {
	r := dateRange{
		start: template.EffectiveStart.Date,
		end:   template.EffectiveEnd.Date,
	}
	if r.start.IsZero() {
		r.start = time.Date(1900, time.January, 1, 0, 0, 0, 0, config.TimeZone)
	}
	if r.end.IsZero() {
		r.end = time.Date(2100, time.January, 1, 0, 0, 0, 0, config.TimeZone)
	}
	r.start = utils.StartCurrentDay(r.start)
	r.end = utils.StartCurrentDay(r.end)
	return r
}

// RelevantTemplates — пакетная отбраковка затененных шаблонов для отчетов.
// Идем от новых к старым и выбрасываем шаблон, чей диапазон целиком накрыт
// объединением диапазонов уже оставленных более новых шаблонов.
// Это грубая проверка уровня диапазонов, отвечающая на вопрос "нужен ли шаблон
// вообще", и она сознательно не сводится к разрешению по отдельным датам
func RelevantTemplates(templates []domain.TimeSlotTemplate) []domain.TimeSlotTemplate {
	active := make(TemplateSlice, 0, len(templates))
	for _, template := range templates {
		if template.Active {
			active = append(active, template)
		}
	}

	sorted := active.quickSortNewestFirst()

	kept := make([]domain.TimeSlotTemplate, 0, len(sorted))
	keptRanges := make([]dateRange, 0, len(sorted))

	for _, template := range sorted {
		r := reportingRange(template)
		if !coveredByUnion(r, keptRanges) {
			kept = append(kept, template)
			keptRanges = append(keptRanges, r)
		}
	}

	return kept
}

// coveredByUnion проверяет, покрыт ли диапазон объединением уже оставленных.
// Диапазоны дневной гранулярности, поэтому соседние интервалы (конец одного
// за день до начала другого) сливаются в один
func coveredByUnion(r dateRange, ranges []dateRange) bool {
	if len(ranges) == 0 {
		return false
	}

	merged := mergeRanges(ranges)
	for _, m := range merged {
		if !r.start.Before(m.start) && !r.end.After(m.end) {
			return true
		}
	}

	return false
}

func mergeRanges(ranges []dateRange) []dateRange {
	sorted := make([]dateRange, len(ranges))
	copy(sorted, ranges)

	// Сортируем по началу диапазона
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].start.Before(sorted[j-1].start); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	merged := []dateRange{sorted[0]}
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		// Пересечение или стык день-в-день расширяет последний интервал
		if !r.start.After(last.end.AddDate(0, 0, 1)) {
			if r.end.After(last.end) {
				last.end = r.end
			}
			continue
		}
		merged = append(merged, r)
	}

	return merged
}
