package out

import (
	"context"

	"github.com/suchimauz/template-slots-generator/internal/core/domain"
)

// TemplateStorePort — внешнее хранилище шаблонов расписаний.
// Ядро шаблоны никогда не мутирует, только читает
type TemplateStorePort interface {
	// Активные шаблоны целиком, с неделями и слот-паттернами
	GetActiveTemplates(ctx context.Context) ([]domain.TimeSlotTemplate, error)

	// Один шаблон по идентификатору
	GetTemplate(ctx context.Context, templateID string) (*domain.TimeSlotTemplate, error)
}
