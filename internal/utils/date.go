package utils

import (
	"fmt"
	"time"

	"github.com/suchimauz/template-slots-generator/internal/config"
)

// StartCurrentDay возвращает дату с временем 00:00, таймзона остается прежней
func StartCurrentDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartNextDay возвращает новую дату, где день увеличен на 1, время установлено на 00:00
func StartNextDay(t time.Time) time.Time {
	newDate := t.AddDate(0, 0, 1)
	return StartCurrentDay(newDate)
}

// StartOfYear возвращает 1 января того же года, время 00:00
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// WeekdayNumber возвращает номер дня недели по ISO: 1=Пн .. 7=Вс
func WeekdayNumber(t time.Time) int {
	// В time.Weekday воскресенье это 0, сдвигаем к ISO-нумерации
	return (int(t.Weekday())+6)%7 + 1
}

// WeekdayShortName возвращает трехбуквенное имя дня недели: Mon, Tue, ...
func WeekdayShortName(t time.Time) string {
	return t.Format("Mon")
}

// StartOfWeek возвращает начало календарной недели (00:00 первого дня),
// firstWeekday задает первый день недели, 1=Пн .. 7=Вс
func StartOfWeek(t time.Time, firstWeekday int) time.Time {
	day := StartCurrentDay(t)
	// Сколько дней назад был первый день недели
	back := FloorMod(WeekdayNumber(day)-firstWeekday, 7)
	return day.AddDate(0, 0, -back)
}

// WeekBounds возвращает границы календарной недели, обе включительно:
// начало это 00:00 первого дня, конец это 00:00 последнего (седьмого) дня
func WeekBounds(t time.Time, firstWeekday int) (time.Time, time.Time) {
	start := StartOfWeek(t, firstWeekday)
	return start, start.AddDate(0, 0, 6)
}

// ElapsedWeeks возвращает количество целых недель между началами недель двух дат.
// Деление именно floor, а не truncation: для дат раньше опорной результат
// отрицательный, но корректно округленный вниз
func ElapsedWeeks(from, to time.Time, firstWeekday int) int {
	fromWeek := StartOfWeek(from, firstWeekday)
	toWeek := StartOfWeek(to, firstWeekday)

	// Считаем календарные дни через UTC-полночи: вычитание в зоне с переводом
	// часов дает неполный день на границе перехода, и целая неделя
	// округлилась бы вниз до шести дней
	fromDay := time.Date(fromWeek.Year(), fromWeek.Month(), fromWeek.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(toWeek.Year(), toWeek.Month(), toWeek.Day(), 0, 0, 0, 0, time.UTC)

	days := int(toDay.Sub(fromDay).Hours() / 24)
	return FloorDiv(days, 7)
}

// FloorDiv — целочисленное деление с округлением вниз.
// Встроенный оператор / в Go округляет к нулю, для отрицательных операндов это не одно и то же
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod — остаток от деления, всегда в [0, b) при b > 0
func FloorMod(a, b int) int {
	return a - FloorDiv(a, b)*b
}

// ParseDate парсит дату из строки в формате RFC3339, если не удается, то пробует парсить дату со временем, но без таймзоны
func ParseDate(str string) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	// Если не удалось пробуем дату со временем, но без таймзоны
	// По дефолту ставим таймзону из конфига
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
