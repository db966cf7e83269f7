package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

// ClockTime — время без даты в формате HH:MM, как оно хранится в слот-паттернах
type ClockTime struct {
	Time time.Time
}

func (t *ClockTime) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("expected string, got %s", string(data))
	}
	str := string(data[1 : len(data)-1])
	parsedTime, err := time.Parse("15:04", str)
	if err != nil {
		// Пробуем формат с секундами
		parsedTime, err = time.Parse("15:04:05", str)
		if err != nil {
			return fmt.Errorf("failed to parse time: %v", err)
		}
	}
	*t = ClockTime{Time: parsedTime}
	return nil
}

func (t ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format("15:04"))
}

// Hour возвращает часы настенного времени
func (t ClockTime) Hour() int {
	return t.Time.Hour()
}

// Minute возвращает минуты настенного времени
func (t ClockTime) Minute() int {
	return t.Time.Minute()
}

// Before сравнивает два настенных времени в пределах одного дня
func (t ClockTime) Before(other ClockTime) bool {
	if t.Hour() != other.Hour() {
		return t.Hour() < other.Hour()
	}
	return t.Minute() < other.Minute()
}

// At совмещает настенное время с календарной датой
func (t ClockTime) At(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location())
}
