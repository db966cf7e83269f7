package cache

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/suchimauz/template-slots-generator/internal/config"
	"github.com/suchimauz/template-slots-generator/internal/core/domain"
	"github.com/suchimauz/template-slots-generator/internal/core/ports/out"
	"github.com/suchimauz/template-slots-generator/internal/utils"
)

type SlotsCacheEntry struct {
	Slots    []domain.TimeSlot
	StoredAt time.Time
	RangeKey string
}

// SlotsCacheAdapter — LRU-кэш материализованных слотов по диапазонам дат.
// Материализация детерминирована, поэтому запись живет до первого события об
// изменении шаблонов, по которому слушатель сбрасывает кэш целиком
type SlotsCacheAdapter struct {
	cache  *lru.Cache[string, *SlotsCacheEntry]
	mu     sync.RWMutex
	logger out.LoggerPort
}

func NewSlotsCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*SlotsCacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	lruCache, err := lru.New[string, *SlotsCacheEntry](cfg.Cache.RangesSize)
	if err != nil {
		logger.Error("cache.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.RangesSize,
		})
		return nil, err
	}

	return &SlotsCacheAdapter{
		cache:  lruCache,
		logger: logger.WithModule("SlotsCacheAdapter"),
	}, nil
}

// Ключ диапазона, обе даты приводим к началу дня
func rangeKey(rangeStart, rangeEnd time.Time) string {
	return utils.StartCurrentDay(rangeStart).Format("2006-01-02") + ".." + utils.StartCurrentDay(rangeEnd).Format("2006-01-02")
}

func (c *SlotsCacheAdapter) GetSlots(ctx context.Context, rangeStart, rangeEnd time.Time) ([]domain.TimeSlot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	key := rangeKey(rangeStart, rangeEnd)
	entry, exists := c.cache.Get(key)
	if !exists {
		c.logger.Debug("cache.get.miss", out.LogFields{
			"range": key,
		})
		return nil, false
	}

	c.logger.Debug("cache.get.hit", out.LogFields{
		"range":      key,
		"slotsCount": len(entry.Slots),
	})
	return entry.Slots, true
}

func (c *SlotsCacheAdapter) StoreSlots(ctx context.Context, rangeStart, rangeEnd time.Time, slots []domain.TimeSlot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := rangeKey(rangeStart, rangeEnd)

	c.logger.Debug("cache.store", out.LogFields{
		"range":      key,
		"slotsCount": len(slots),
	})

	c.cache.Add(key, &SlotsCacheEntry{
		Slots:    slots,
		StoredAt: time.Now(),
		RangeKey: key,
	})
}

func (c *SlotsCacheAdapter) InvalidateAll(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.invalidate_all", out.LogFields{
		"entries": c.cache.Len(),
	})

	c.cache.Purge()
}
