package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/template-slots-generator/internal/adapters/in/http"
	"github.com/suchimauz/template-slots-generator/internal/adapters/in/rabbitmq"
	"github.com/suchimauz/template-slots-generator/internal/adapters/out/cache"
	"github.com/suchimauz/template-slots-generator/internal/adapters/out/logger"
	"github.com/suchimauz/template-slots-generator/internal/adapters/out/memstore"
	"github.com/suchimauz/template-slots-generator/internal/adapters/out/templateapi"
	"github.com/suchimauz/template-slots-generator/internal/config"
	"github.com/suchimauz/template-slots-generator/internal/core/ports/out"
	"github.com/suchimauz/template-slots-generator/internal/core/services"
	"github.com/suchimauz/template-slots-generator/internal/core/services/slot_generator_service"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера с таймзоной
	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"storageUrl":      cfg.Storage.URL,
		"rabbitmqEnabled": cfg.RabbitMQ.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Хранилище шаблонов: удаленный бэкенд или встроенное с демо-данными
	var templatePort out.TemplateStorePort
	if cfg.Storage.URL != "" {
		templatePort = templateapi.NewTemplateApiAdapter(cfg, log.WithModule("TemplateApiAdapter"))
	} else {
		store := memstore.NewTemplateStore(log)
		memstore.Seed(store)
		log.Info("app.storage.in_memory", out.LogFields{
			"message": "STORAGE_URL is not set, using seeded in-memory template store",
		})
		templatePort = store
	}

	bookingStore := memstore.NewBookingStore(log)

	var cachePort out.CachePort
	if cfg.Cache.Enabled {
		cacheAdapter, err := cache.NewSlotsCacheAdapter(cfg, mainLogger)
		if err != nil {
			log.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cachePort = cacheAdapter
	}

	// Инициализация сервисов
	slotGeneratorService := slot_generator_service.NewSlotGeneratorService(
		templatePort,
		bookingStore,
		cachePort,
		cfg,
		mainLogger,
	)
	bookingService := services.NewBookingService(bookingStore, mainLogger)

	// Настройка HTTP сервера
	router := gin.Default()
	controller := http.NewSlotController(slotGeneratorService, bookingService, cfg)
	controller.RegisterRoutes(router)

	// Настройка RabbitMQ слушателя только если он включен
	if cfg.RabbitMQ.Enabled {
		listener, err := rabbitmq.NewTemplateListener(
			slotGeneratorService,
			cfg,
			log.WithModule("RabbitMQListener"),
		)
		if err != nil {
			log.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if err := listener.Start(ctx); err != nil {
			log.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		// Добавляем остановку RabbitMQ в defer
		defer func() {
			if err := listener.Stop(); err != nil {
				log.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})
}
