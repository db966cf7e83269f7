package slot_generator_service

import (
	"context"
	"fmt"
	"time"

	"github.com/suchimauz/template-slots-generator/internal/config"
	"github.com/suchimauz/template-slots-generator/internal/core/domain"
	"github.com/suchimauz/template-slots-generator/internal/core/ports/out"
)

type SlotGeneratorService struct {
	templatePort out.TemplateStorePort
	bookingPort  out.BookingPort
	cachePort    out.CachePort
	logger       out.LoggerPort
	cfg          *config.Config
}

func NewSlotGeneratorService(
	templatePort out.TemplateStorePort,
	bookingPort out.BookingPort,
	cachePort out.CachePort,
	cfg *config.Config,
	logger out.LoggerPort,
) *SlotGeneratorService {
	return &SlotGeneratorService{
		templatePort: templatePort,
		bookingPort:  bookingPort,
		cachePort:    cachePort,
		cfg:          cfg,
		logger:       logger.WithModule("SlotGeneratorService"),
	}
}

func (s *SlotGeneratorService) MaterializeSlots(ctx context.Context, rangeStart, rangeEnd time.Time) ([]domain.TimeSlot, []domain.DebugInfo, error) {
	debugInfo := SlotGeneratorServiceDebug{
		data: make([]domain.DebugInfo, 0),
	}
	s.logger.Info("slots.materialize.started", out.LogFields{
		"rangeStart": rangeStart.Format("2006-01-02"),
		"rangeEnd":   rangeEnd.Format("2006-01-02"),
	})

	// Проверяем кэш только если он включен
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		if slots, exists := s.cachePort.GetSlots(ctx, rangeStart, rangeEnd); exists {
			s.logger.Debug("slots.materialize.cache.hit", out.LogFields{
				"slotsCount": len(slots),
			})
			return slots, debugInfo.data, nil
		}

		s.logger.Debug("slots.materialize.cache.miss", out.LogFields{})
	}

	fetch_templates_debug := domain.DebugInfo{
		Event: "slots.materialize.templates.fetch",
	}
	fetch_templates_debug.Start()

	templates, err := s.templatePort.GetActiveTemplates(ctx)
	if err != nil {
		s.logger.Error("slots.materialize.templates.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, nil, fmt.Errorf("slots.materialize.templates.fetch_failed: %w", err)
	}
	fetch_templates_debug.Elapse()
	debugInfo.AddDebugInfo(fetch_templates_debug)

	materialize_debug := domain.DebugInfo{
		Event: "slots.materialize.expand",
	}
	materialize_debug.Start()

	slots := s.materializeRange(templates, rangeStart, rangeEnd)

	materialize_debug.Elapse()
	materialize_debug.AddOption("slotsCount", fmt.Sprintf("%d", len(slots)))
	debugInfo.AddDebugInfo(materialize_debug)

	// Сохраняем в кэш только если он включен
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		s.cachePort.StoreSlots(ctx, rangeStart, rangeEnd, slots)
	}

	return slots, debugInfo.data, nil
}

func (s *SlotGeneratorService) MaterializeSlotsForUser(ctx context.Context, rangeStart, rangeEnd time.Time, userID string) ([]domain.TimeSlot, []domain.DebugInfo, error) {
	slots, debugInfo, err := s.MaterializeSlots(ctx, rangeStart, rangeEnd)
	if err != nil {
		return nil, nil, err
	}

	overlay_debug := domain.DebugInfo{
		Event: "slots.materialize.booking_overlay",
	}
	overlay_debug.Start()

	// Копируем перед наложением брони, кэш хранит слоты с isBooked=false
	overlaid := make([]domain.TimeSlot, len(slots))
	copy(overlaid, slots)

	for i := range overlaid {
		booked, err := s.bookingPort.IsBooked(ctx, overlaid[i].ID, userID)
		if err != nil {
			s.logger.Error("slots.materialize.booking_overlay.failed", out.LogFields{
				"slotId": overlaid[i].ID,
				"userId": userID,
				"error":  err.Error(),
			})
			return nil, nil, fmt.Errorf("slots.materialize.booking_overlay.failed: %w", err)
		}
		overlaid[i].IsBooked = booked
	}

	overlay_debug.Elapse()
	debugInfo = append(debugInfo, overlay_debug)

	return overlaid, debugInfo, nil
}

func (s *SlotGeneratorService) RelevantTemplates(ctx context.Context) ([]domain.TimeSlotTemplate, error) {
	templates, err := s.templatePort.GetActiveTemplates(ctx)
	if err != nil {
		s.logger.Error("templates.relevant.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("templates.relevant.fetch_failed: %w", err)
	}

	relevant := RelevantTemplates(templates)

	s.logger.Debug("templates.relevant.resolved", out.LogFields{
		"totalCount":    len(templates),
		"relevantCount": len(relevant),
	})

	return relevant, nil
}

func (s *SlotGeneratorService) InvalidateSlotsCache(ctx context.Context) error {
	if s.cachePort == nil || !s.cfg.Cache.Enabled {
		return nil
	}

	s.cachePort.InvalidateAll(ctx)
	s.logger.Info("slots.cache.invalidated", out.LogFields{})

	return nil
}
