package domain

import (
	"github.com/suchimauz/template-slots-generator/internal/core/json_types"
)

// TimeSlot — материализованный слот на конкретную календарную дату.
// Нигде не хранится, пересчитывается на каждый запрос.
// ID это чистая функция от (templateId, date, slotPatternId), поэтому
// переживает регенерацию после правок других шаблонов
type TimeSlot struct {
	ID            string              `json:"id"`
	TemplateID    string              `json:"templateId"`
	Date          json_types.Date     `json:"date"`
	StartDateTime json_types.DateTime `json:"startDateTime"`
	EndDateTime   json_types.DateTime `json:"endDateTime"`
	IsBooked      bool                `json:"isBooked"`
}
