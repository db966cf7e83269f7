package slot_generator_service

import "github.com/suchimauz/template-slots-generator/internal/core/domain"

type TemplateSlice []domain.TimeSlotTemplate

// templateWins — порядок разрешения конфликтов: шаблон с более поздним
// createdAt идет раньше, при равенстве детерминированно побеждает меньший id
func templateWins(a, b domain.TimeSlotTemplate) bool {
	if !a.CreatedAt.Date.Equal(b.CreatedAt.Date) {
		return a.CreatedAt.Date.After(b.CreatedAt.Date)
	}
	return a.ID < b.ID
}

// quickSortNewestFirst — сортировка шаблонов от новых к старым
func (s TemplateSlice) quickSortNewestFirst() TemplateSlice {
	if len(s) < 2 {
		return s
	}

	// Выбираем опорный элемент
	pivot := s[len(s)/2]

	// Разделяем слайс на три части
	newer := TemplateSlice{}
	equal := TemplateSlice{}
	older := TemplateSlice{}

	for _, template := range s {
		if template.ID == pivot.ID && template.CreatedAt.Date.Equal(pivot.CreatedAt.Date) {
			equal = append(equal, template)
		} else if templateWins(template, pivot) {
			newer = append(newer, template)
		} else {
			older = append(older, template)
		}
	}

	// Рекурсивно сортируем подмассивы и объединяем их
	return append(append(newer.quickSortNewestFirst(), equal...), older.quickSortNewestFirst()...)
}
