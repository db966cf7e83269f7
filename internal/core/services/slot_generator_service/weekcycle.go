package slot_generator_service

import (
	"time"

	"github.com/suchimauz/template-slots-generator/internal/core/domain"
	"github.com/suchimauz/template-slots-generator/internal/utils"
)

// WeekIndexFor возвращает индекс недельного паттерна 0..totalWeekPatterns-1,
// который действует на дату. Паттерны крутятся циклом от якорной недели:
// week0, week1, ..., week0, week1 и так далее.
// Остаток берется floor-модулем: для дат раньше якоря индекс остается
// в [0, N), а не уходит в минус, как у встроенного оператора %
func WeekIndexFor(date, anchorWeekStart time.Time, totalWeekPatterns, firstWeekday int) int {
	if totalWeekPatterns < 1 {
		return -1
	}

	elapsed := utils.ElapsedWeeks(anchorWeekStart, date, firstWeekday)
	return utils.FloorMod(elapsed, totalWeekPatterns)
}

// TemplateAnchorWeekStart — якорная неделя шаблона, от которой считается цикл.
// Для шаблона без effectiveStart якорь детерминированно привязан к началу
// календарного года запрашиваемой даты, как и действующий диапазон
func TemplateAnchorWeekStart(template domain.TimeSlotTemplate, queryDate time.Time, firstWeekday int) time.Time {
	start := template.EffectiveStart.Date
	if start.IsZero() {
		start = utils.StartOfYear(queryDate)
	}

	return utils.StartOfWeek(start, firstWeekday)
}
