package out

import (
	"context"
	"time"

	"github.com/suchimauz/template-slots-generator/internal/core/domain"
)

// BookingPort — внешний коллаборатор, владеющий состоянием бронирований.
// Ядру от него нужны только эти операции, решений о приемлемости брони ядро не принимает.
// Book обязан быть атомарным по паре (slotId, userId): повторная попытка
// для той же пары возвращает domain.ErrAlreadyBooked, а не дубликат
type BookingPort interface {
	IsBooked(ctx context.Context, slotID, userID string) (bool, error)

	Book(ctx context.Context, templateID, slotID string, date time.Time, userID string) (*domain.Booking, error)

	// Возвращает domain.ErrBookingNotFound, если пары (slotId, userId) нет
	Cancel(ctx context.Context, slotID, userID string) error

	ListBookings(ctx context.Context, userID string) ([]domain.Booking, error)
}
