package in

import (
	"context"
	"time"

	"github.com/suchimauz/template-slots-generator/internal/core/domain"
)

// SlotMaterializerUseCase — материализация бронируемых слотов из шаблонов
type SlotMaterializerUseCase interface {
	// Слоты для закрытого диапазона дат [rangeStart, rangeEnd], обе границы включительно.
	// isBooked у всех слотов false, наложение брони делает вызывающий
	MaterializeSlots(ctx context.Context, rangeStart, rangeEnd time.Time) ([]domain.TimeSlot, []domain.DebugInfo, error)

	// То же, но с наложением статуса бронирования для конкретного пользователя
	MaterializeSlotsForUser(ctx context.Context, rangeStart, rangeEnd time.Time, userID string) ([]domain.TimeSlot, []domain.DebugInfo, error)

	// Отчет по набору шаблонов: активные шаблоны, не затененные целиком более новыми
	RelevantTemplates(ctx context.Context) ([]domain.TimeSlotTemplate, error)

	// Сброс кэша слотов, дергается слушателем событий об изменении шаблонов
	InvalidateSlotsCache(ctx context.Context) error
}
