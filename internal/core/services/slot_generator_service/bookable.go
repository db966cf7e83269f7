package slot_generator_service

import (
	"time"

	"github.com/suchimauz/template-slots-generator/internal/core/domain"
	"github.com/suchimauz/template-slots-generator/internal/utils"
)

// IsBookable — опциональная проверка для вызывающего слоя:
// нельзя бронировать слот на дату строго раньше сегодняшней и слот,
// чье время начала уже прошло. Это политика презентационного уровня,
// ядро при материализации ее не применяет
func IsBookable(slot domain.TimeSlot, now time.Time) bool {
	today := utils.StartCurrentDay(now)
	if utils.StartCurrentDay(slot.Date.Date).Before(today) {
		return false
	}

	return slot.StartDateTime.Date.After(now)
}
