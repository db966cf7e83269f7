package out

import (
	"context"
	"time"

	"github.com/suchimauz/template-slots-generator/internal/core/domain"
)

// CachePort — кэширование материализованных слотов по диапазону дат.
// Материализация детерминирована, поэтому запись валидна до первого изменения
// набора шаблонов
type CachePort interface {
	GetSlots(ctx context.Context, rangeStart, rangeEnd time.Time) ([]domain.TimeSlot, bool)
	StoreSlots(ctx context.Context, rangeStart, rangeEnd time.Time, slots []domain.TimeSlot)

	// Сброс всех диапазонов, вызывается при изменении шаблонов
	InvalidateAll(ctx context.Context)
}
