package slot_generator_service

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/suchimauz/template-slots-generator/internal/config"
	"github.com/suchimauz/template-slots-generator/internal/core/domain"
)

// Идентичность слота: base64 от "templateId:yyyy-MM-dd:slotPatternId".
// Чистая функция от тройки, не зависит ни от позиций в списках, ни от порядка
// генерации, поэтому бронь переживает правки соседних шаблонов
const identityDelimiter = ":"

const identityDateLayout = "2006-01-02"

// EncodeSlotID кодирует идентичность слота в печатный ASCII-ключ.
// Разделитель не должен встречаться в значениях полей, иначе тройку нельзя
// восстановить однозначно, поэтому такие значения отклоняем на входе
func EncodeSlotID(templateID string, date time.Time, slotPatternID string) (string, error) {
	if strings.Contains(templateID, identityDelimiter) || strings.Contains(slotPatternID, identityDelimiter) {
		return "", fmt.Errorf("%w: %q/%q", domain.ErrIdentityDelimiter, templateID, slotPatternID)
	}

	raw := templateID + identityDelimiter + date.Format(identityDateLayout) + identityDelimiter + slotPatternID
	return base64.RawURLEncoding.EncodeToString([]byte(raw)), nil
}

// DecodeSlotID — обратная операция к EncodeSlotID.
// Любая строка, которая не раскладывается ровно в три поля с валидной датой,
// это domain.ErrMalformedIdentity
func DecodeSlotID(slotID string) (templateID string, date time.Time, slotPatternID string, err error) {
	raw, decodeErr := base64.RawURLEncoding.DecodeString(slotID)
	if decodeErr != nil {
		return "", time.Time{}, "", fmt.Errorf("%w: %v", domain.ErrMalformedIdentity, decodeErr)
	}

	parts := strings.Split(string(raw), identityDelimiter)
	if len(parts) != 3 {
		return "", time.Time{}, "", fmt.Errorf("%w: expected 3 fields, got %d", domain.ErrMalformedIdentity, len(parts))
	}
	if parts[0] == "" || parts[2] == "" {
		return "", time.Time{}, "", fmt.Errorf("%w: empty field", domain.ErrMalformedIdentity)
	}

	parsedDate, parseErr := time.ParseInLocation(identityDateLayout, parts[1], config.TimeZone)
	if parseErr != nil {
		return "", time.Time{}, "", fmt.Errorf("%w: bad date %q", domain.ErrMalformedIdentity, parts[1])
	}

	return parts[0], parsedDate, parts[2], nil
}
