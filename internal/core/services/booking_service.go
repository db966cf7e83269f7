package services

import (
	"context"
	"errors"
	"time"

	"github.com/suchimauz/template-slots-generator/internal/core/domain"
	"github.com/suchimauz/template-slots-generator/internal/core/ports/out"
)

// BookingService — тонкая обертка над внешним хранилищем брони.
// Конфликты (повторная бронь, отмена несуществующей) это бизнес-решения,
// сервис их не ретраит, а отдает вызывающему как есть
type BookingService struct {
	bookingPort out.BookingPort
	logger      out.LoggerPort
}

func NewBookingService(bookingPort out.BookingPort, logger out.LoggerPort) *BookingService {
	return &BookingService{
		bookingPort: bookingPort,
		logger:      logger.WithModule("BookingService"),
	}
}

func (s *BookingService) Book(ctx context.Context, templateID, slotID string, date time.Time, userID string) (*domain.Booking, error) {
	booking, err := s.bookingPort.Book(ctx, templateID, slotID, date, userID)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyBooked) {
			s.logger.Warn("booking.book.conflict", out.LogFields{
				"slotId": slotID,
				"userId": userID,
			})
			return nil, err
		}

		s.logger.Error("booking.book.failed", out.LogFields{
			"slotId": slotID,
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}

	s.logger.Info("booking.book.success", out.LogFields{
		"bookingId": booking.ID,
		"slotId":    slotID,
		"userId":    userID,
	})

	return booking, nil
}

func (s *BookingService) Cancel(ctx context.Context, slotID, userID string) error {
	err := s.bookingPort.Cancel(ctx, slotID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			s.logger.Warn("booking.cancel.not_found", out.LogFields{
				"slotId": slotID,
				"userId": userID,
			})
			return err
		}

		s.logger.Error("booking.cancel.failed", out.LogFields{
			"slotId": slotID,
			"userId": userID,
			"error":  err.Error(),
		})
		return err
	}

	s.logger.Info("booking.cancel.success", out.LogFields{
		"slotId": slotID,
		"userId": userID,
	})

	return nil
}

func (s *BookingService) IsBooked(ctx context.Context, slotID, userID string) (bool, error) {
	return s.bookingPort.IsBooked(ctx, slotID, userID)
}

func (s *BookingService) ListBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookingPort.ListBookings(ctx, userID)
}
