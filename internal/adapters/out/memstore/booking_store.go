package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/template-slots-generator/internal/core/domain"
	"github.com/suchimauz/template-slots-generator/internal/core/json_types"
	"github.com/suchimauz/template-slots-generator/internal/core/ports/out"
)

// BookingStore — in-memory хранилище бронирований.
// Единственное требование ядра к коллаборатору: Book атомарен по паре
// (slotId, userId), вторая бронь той же пары получает ошибку, а не дубликат.
// Здесь атомарность держится на мьютексе вокруг карты
type BookingStore struct {
	mu       sync.RWMutex
	bookings map[string]domain.Booking
	logger   out.LoggerPort
}

func NewBookingStore(logger out.LoggerPort) *BookingStore {
	return &BookingStore{
		bookings: make(map[string]domain.Booking),
		logger:   logger.WithModule("BookingStore"),
	}
}

// Ключ уникальности брони
func bookingKey(slotID, userID string) string {
	return slotID + "|" + userID
}

func (s *BookingStore) IsBooked(ctx context.Context, slotID, userID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.bookings[bookingKey(slotID, userID)]
	return exists, nil
}

func (s *BookingStore) Book(ctx context.Context, templateID, slotID string, date time.Time, userID string) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := bookingKey(slotID, userID)
	if _, exists := s.bookings[key]; exists {
		return nil, domain.ErrAlreadyBooked
	}

	booking := domain.Booking{
		ID:         uuid.New(),
		TemplateID: templateID,
		SlotID:     slotID,
		Date:       json_types.Date{Date: date},
		UserID:     userID,
		BookedAt:   time.Now(),
	}
	s.bookings[key] = booking

	return &booking, nil
}

func (s *BookingStore) Cancel(ctx context.Context, slotID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := bookingKey(slotID, userID)
	if _, exists := s.bookings[key]; !exists {
		return domain.ErrBookingNotFound
	}

	delete(s.bookings, key)
	return nil
}

func (s *BookingStore) ListBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]domain.Booking, 0)
	for _, booking := range s.bookings {
		if userID == "" || booking.UserID == userID {
			list = append(list, booking)
		}
	}

	// Стабильный порядок выдачи по времени брони
	for i := 1; i < len(list); i++ {
		for j := i; j > 0 && list[j].BookedAt.Before(list[j-1].BookedAt); j-- {
			list[j], list[j-1] = list[j-1], list[j]
		}
	}

	return list, nil
}
