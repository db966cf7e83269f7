package slot_generator_service

import (
	"time"

	"github.com/suchimauz/template-slots-generator/internal/core/domain"
	"github.com/suchimauz/template-slots-generator/internal/utils"
)

// ApplicableDayPatterns отбирает дневные паттерны недели, подходящие к дате.
// Числовые селекторы сравниваются с ISO-номером дня недели, строковые с
// трехбуквенным именем; обе формы могут жить в одном недельном паттерне.
// Порядок объявления сохраняется, он значим для порядка слотов в выдаче
func ApplicableDayPatterns(date time.Time, week domain.WeekPattern) []domain.DayPattern {
	weekdayNumber := utils.WeekdayNumber(date)
	weekdayName := utils.WeekdayShortName(date)

	applicable := make([]domain.DayPattern, 0, len(week.Days))
	for _, dayPattern := range week.Days {
		if dayPattern.Day.Matches(weekdayNumber, weekdayName) {
			applicable = append(applicable, dayPattern)
		}
	}

	return applicable
}
