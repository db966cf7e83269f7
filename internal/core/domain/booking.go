package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/template-slots-generator/internal/core/json_types"
)

// Booking — запись о бронировании слота, принадлежит внешнему хранилищу.
// Инвариант уникальности: не больше одной записи на пару (slotId, userId)
type Booking struct {
	ID         uuid.UUID       `json:"id"`
	TemplateID string          `json:"templateId"`
	SlotID     string          `json:"slotId"`
	Date       json_types.Date `json:"date"`
	UserID     string          `json:"userId"`
	BookedAt   time.Time       `json:"bookedAt"`
}
