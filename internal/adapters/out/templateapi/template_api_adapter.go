package templateapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/suchimauz/template-slots-generator/internal/config"
	"github.com/suchimauz/template-slots-generator/internal/core/domain"
	"github.com/suchimauz/template-slots-generator/internal/core/ports/out"
)

// TemplateApiAdapter — хранилище шаблонов за удаленным HTTP-бэкендом.
// Ядро о нем знает только как о TemplateStorePort
type TemplateApiAdapter struct {
	client   *http.Client
	baseURL  string
	username string
	password string
	logger   out.LoggerPort
}

func NewTemplateApiAdapter(cfg *config.Config, logger out.LoggerPort) *TemplateApiAdapter {
	return &TemplateApiAdapter{
		client:   &http.Client{Timeout: 10 * time.Second},
		baseURL:  cfg.Storage.URL,
		username: cfg.Storage.Username,
		password: cfg.Storage.Password,
		logger:   logger,
	}
}

func (a *TemplateApiAdapter) GetActiveTemplates(ctx context.Context) ([]domain.TimeSlotTemplate, error) {
	a.logger.Info("storage.templates.fetch", out.LogFields{})

	url := fmt.Sprintf("%s/templates?active=true", a.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		a.logger.Error("storage.templates.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("storage.templates.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("storage.templates.fetch_failed", out.LogFields{
			"status": resp.StatusCode,
		})
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var templates []domain.TimeSlotTemplate
	if err := json.NewDecoder(resp.Body).Decode(&templates); err != nil {
		a.logger.Error("storage.templates.decode_response_failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	a.logger.Debug("storage.templates.fetch_success", out.LogFields{
		"count": len(templates),
	})

	return templates, nil
}

func (a *TemplateApiAdapter) GetTemplate(ctx context.Context, templateID string) (*domain.TimeSlotTemplate, error) {
	a.logger.Info("storage.template.fetch", out.LogFields{
		"templateId": templateID,
	})

	url := fmt.Sprintf("%s/templates/%s", a.baseURL, templateID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		a.logger.Error("storage.template.fetch_failed", out.LogFields{
			"templateId": templateID,
			"error":      err.Error(),
		})
		return nil, err
	}

	req.SetBasicAuth(a.username, a.password)

	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Error("storage.template.fetch_failed", out.LogFields{
			"templateId": templateID,
			"error":      err.Error(),
		})
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.logger.Error("storage.template.fetch_failed", out.LogFields{
			"templateId": templateID,
			"status":     resp.StatusCode,
		})
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var template domain.TimeSlotTemplate
	if err := json.NewDecoder(resp.Body).Decode(&template); err != nil {
		a.logger.Error("storage.template.decode_response_failed", out.LogFields{
			"templateId": templateID,
			"error":      err.Error(),
		})
		return nil, err
	}

	return &template, nil
}
