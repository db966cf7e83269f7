package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/suchimauz/template-slots-generator/internal/core/domain"
	"github.com/suchimauz/template-slots-generator/internal/core/ports/out"
)

// TemplateStore — встроенное in-memory хранилище шаблонов.
// Используется в локальном режиме и в тестах вместо удаленного бэкенда:
// хранилища моделируются как инжектируемые порты, подмена ничего не меняет
// в поведении ядра
type TemplateStore struct {
	mu        sync.RWMutex
	templates map[string]domain.TimeSlotTemplate
	logger    out.LoggerPort
}

func NewTemplateStore(logger out.LoggerPort) *TemplateStore {
	return &TemplateStore{
		templates: make(map[string]domain.TimeSlotTemplate),
		logger:    logger.WithModule("TemplateStore"),
	}
}

// Put кладет или заменяет шаблон. Авторская операция внешнего коллаборатора,
// ядро ее не вызывает
func (s *TemplateStore) Put(template domain.TimeSlotTemplate) {
	s.mu.Lock()
	s.templates[template.ID] = template
	s.mu.Unlock()
}

func (s *TemplateStore) GetActiveTemplates(ctx context.Context) ([]domain.TimeSlotTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]domain.TimeSlotTemplate, 0, len(s.templates))
	for _, template := range s.templates {
		if template.Active {
			active = append(active, template)
		}
	}

	return active, nil
}

func (s *TemplateStore) GetTemplate(ctx context.Context, templateID string) (*domain.TimeSlotTemplate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	template, exists := s.templates[templateID]
	if !exists {
		return nil, fmt.Errorf("template not found: %s", templateID)
	}

	return &template, nil
}
