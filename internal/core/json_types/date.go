package json_types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/suchimauz/template-slots-generator/internal/config"
)

func parseDate(str string) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	// Если не удалось пробуем дату со временем, но без таймзоны
	// По дефолту ставим таймзону приложения для дат без таймзоны
	if err != nil {
		location := config.TimeZone
		parsedDate, err = time.ParseInLocation("2006-01-02T15:04:05", str, location)
		if err != nil {
			// Если не удалось, пробуем как дату без времени
			parsedDate, err = time.ParseInLocation("2006-01-02", str, location)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse time: %v", err)
			}
		}
	}

	return parsedDate, nil
}

type DateTime struct {
	Date time.Time
}

// Дата обязана прийти JSON-строкой, иначе срез кавычек уронил бы процесс
func unquote(data []byte) (string, error) {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return "", fmt.Errorf("expected string, got %s", string(data))
	}
	return string(data[1 : len(data)-1]), nil
}

func (t *DateTime) UnmarshalJSON(data []byte) error {
	str, err := unquote(data)
	if err != nil {
		return err
	}

	parsedDate, err := parseDate(str)
	if err != nil {
		return err
	}

	*t = DateTime{Date: parsedDate}
	return nil
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.Format("2006-01-02T15:04:05"))
}

type Date struct {
	Date time.Time
}

func (t *Date) UnmarshalJSON(data []byte) error {
	str, err := unquote(data)
	if err != nil {
		return err
	}

	parsedDate, err := parseDate(str)
	if err != nil {
		return err
	}

	*t = Date{Date: parsedDate}
	return nil
}

func (t Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.Format("2006-01-02"))
}

// DateOrEmpty — опциональная дата, null остается нулевым time.Time.
// Используется для effectiveStart/effectiveEnd шаблонов, где null значит "не ограничено"
type DateOrEmpty struct {
	Date time.Time
}

func (t *DateOrEmpty) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	d := Date{}
	err := d.UnmarshalJSON(data)
	if err != nil {
		return err
	}

	*t = DateOrEmpty{Date: d.Date}
	return nil
}

func (t DateOrEmpty) MarshalJSON() ([]byte, error) {
	if t.Date.IsZero() {
		return json.Marshal(nil)
	}

	return json.Marshal(t.Date.Format("2006-01-02"))
}
