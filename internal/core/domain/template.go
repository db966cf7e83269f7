package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/suchimauz/template-slots-generator/internal/core/json_types"
)

type WeekdayName string

const (
	WeekdayNameMon WeekdayName = "Mon"
	WeekdayNameTue WeekdayName = "Tue"
	WeekdayNameWed WeekdayName = "Wed"
	WeekdayNameThu WeekdayName = "Thu"
	WeekdayNameFri WeekdayName = "Fri"
	WeekdayNameSat WeekdayName = "Sat"
	WeekdayNameSun WeekdayName = "Sun"
)

type DaySelectorKind string

const (
	DaySelectorKindNumber DaySelectorKind = "number"
	DaySelectorKindName   DaySelectorKind = "name"
)

// DaySelector — селектор дня недели в дневном паттерне.
// В данных встречаются обе формы: номер дня (1=Пн .. 7=Вс) и трехбуквенное имя.
// Храним их как размеченное объединение, сравнение диспетчеризуется по Kind
// и никогда не приводит одну форму к другой
type DaySelector struct {
	Kind   DaySelectorKind
	Number int
	Name   WeekdayName
}

func NumberSelector(n int) DaySelector {
	return DaySelector{Kind: DaySelectorKindNumber, Number: n}
}

func NameSelector(name WeekdayName) DaySelector {
	return DaySelector{Kind: DaySelectorKindName, Name: name}
}

// Matches проверяет, соответствует ли селектор дню недели.
// weekdayNumber и weekdayName описывают один и тот же календарный день
func (d DaySelector) Matches(weekdayNumber int, weekdayName string) bool {
	switch d.Kind {
	case DaySelectorKindNumber:
		return d.Number == weekdayNumber
	case DaySelectorKindName:
		return string(d.Name) == weekdayName
	}
	return false
}

func (d *DaySelector) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty day selector")
	}

	// Строка это имя дня недели, число это его номер
	if data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		// Неизвестное имя дало бы селектор, который молча никогда не совпадает
		switch WeekdayName(name) {
		case WeekdayNameMon, WeekdayNameTue, WeekdayNameWed, WeekdayNameThu,
			WeekdayNameFri, WeekdayNameSat, WeekdayNameSun:
		default:
			return fmt.Errorf("unknown weekday name: %q", name)
		}
		*d = NameSelector(WeekdayName(name))
		return nil
	}

	var number int
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	if number < 1 || number > 7 {
		return fmt.Errorf("day selector out of range: %d", number)
	}
	*d = NumberSelector(number)
	return nil
}

func (d DaySelector) MarshalJSON() ([]byte, error) {
	switch d.Kind {
	case DaySelectorKindName:
		return json.Marshal(string(d.Name))
	default:
		return json.Marshal(d.Number)
	}
}

// SlotPattern — одно бронируемое окно внутри дневного паттерна.
// Время настенное, в пределах одного календарного дня, start < end
type SlotPattern struct {
	ID    string               `json:"id"`
	Start json_types.ClockTime `json:"start"`
	End   json_types.ClockTime `json:"end"`
}

// IsValid проверяет инвариант start < end.
// Паттерны нулевой и отрицательной длины не материализуются
func (p SlotPattern) IsValid() bool {
	return p.Start.Before(p.End)
}

type DayPattern struct {
	Day   DaySelector   `json:"day"`
	Slots []SlotPattern `json:"slots"`
}

// WeekPattern — расписание одной недели цикла.
// Позиция в списке Weeks шаблона значима: индекс 0 это первая неделя цикла,
// поле Index из исходных данных на выбор паттерна не влияет
type WeekPattern struct {
	Index int          `json:"index"`
	Days  []DayPattern `json:"days"`
}

// TimeSlotTemplate — повторяющееся недельное расписание.
// Ядро шаблоны только читает, авторство и хранение на внешних коллабораторах
type TimeSlotTemplate struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Active         bool                   `json:"active"`
	EffectiveStart json_types.DateOrEmpty `json:"startDate"`
	EffectiveEnd   json_types.DateOrEmpty `json:"endDate"`
	CreatedAt      json_types.DateTime    `json:"createdAt"`
	Weeks          []WeekPattern          `json:"weeks"`
}

// NewDefaultTemplate создает бессрочный шаблон без границ действия
func NewDefaultTemplate(id, name string, createdAt time.Time, weeks []WeekPattern) TimeSlotTemplate {
	return TimeSlotTemplate{
		ID:        id,
		Name:      name,
		Active:    true,
		CreatedAt: json_types.DateTime{Date: createdAt},
		Weeks:     weeks,
	}
}

// NewTemporaryTemplate создает шаблон, действующий в заданном диапазоне дат
func NewTemporaryTemplate(id, name string, createdAt, startDate, endDate time.Time, weeks []WeekPattern) TimeSlotTemplate {
	return TimeSlotTemplate{
		ID:             id,
		Name:           name,
		Active:         true,
		EffectiveStart: json_types.DateOrEmpty{Date: startDate},
		EffectiveEnd:   json_types.DateOrEmpty{Date: endDate},
		CreatedAt:      json_types.DateTime{Date: createdAt},
		Weeks:          weeks,
	}
}
