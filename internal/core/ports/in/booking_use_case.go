package in

import (
	"context"
	"time"

	"github.com/suchimauz/template-slots-generator/internal/core/domain"
)

// BookingUseCase — бронирование и отмена поверх внешнего хранилища брони
type BookingUseCase interface {
	// Возвращает domain.ErrAlreadyBooked при повторной броне той же пары (slotId, userId)
	Book(ctx context.Context, templateID, slotID string, date time.Time, userID string) (*domain.Booking, error)

	// Возвращает domain.ErrBookingNotFound, если брони нет
	Cancel(ctx context.Context, slotID, userID string) error

	IsBooked(ctx context.Context, slotID, userID string) (bool, error)

	ListBookings(ctx context.Context, userID string) ([]domain.Booking, error)
}
