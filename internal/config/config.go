package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

// TimeZone — таймзона приложения, проставляется при загрузке конфигурации.
// Вся арифметика дат в ядре идет в одной этой таймзоне
var TimeZone *time.Location = time.UTC

type ConfigBasicClient struct {
	Username string
	Password string
}

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"Europe/Moscow"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Auth struct {
		BasicClientsString string `env:"AUTH_BASIC_CLIENTS" envDefault:"slots_generator:slots_generator"`
		BasicClients       []ConfigBasicClient
	}

	// Удаленное хранилище шаблонов; если URL пуст, поднимаемся на встроенном
	// in-memory хранилище с демо-данными
	Storage struct {
		URL      string `env:"STORAGE_URL"`
		Username string `env:"STORAGE_USERNAME"`
		Password string `env:"STORAGE_PASSWORD"`
	}

	Schedule struct {
		// Первый день недели для вычисления границ недель, 1=Пн .. 7=Вс
		FirstWeekday int `env:"SCHEDULE_FIRST_WEEKDAY" envDefault:"1"`
	}

	RabbitMQ struct {
		Enabled bool   `env:"RABBITMQ_ENABLED"`
		URL     string `env:"RABBITMQ_URL"`
		Queue   string `env:"RABBITMQ_QUEUE" envDefault:"template-events"`
	}

	Cache struct {
		Enabled    bool `env:"CACHE_ENABLED"`
		RangesSize int  `env:"CACHE_RANGES_SIZE" envDefault:"1000"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Приведение окружения к нижнему регистру для унификации
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	// Загружаем таймзону приложения, при ошибке остаемся в UTC
	if loc, err := time.LoadLocation(cfg.App.Timezone); err == nil {
		TimeZone = loc
	}

	// Разбираем пары логин:пароль для basic-авторизации
	if cfg.Auth.BasicClients == nil {
		cfg.Auth.BasicClients = []ConfigBasicClient{}
	}
	clientPairs := strings.Split(cfg.Auth.BasicClientsString, ",")
	for _, pair := range clientPairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			cfg.Auth.BasicClients = append(cfg.Auth.BasicClients, ConfigBasicClient{
				Username: parts[0],
				Password: parts[1],
			})
		}
	}

	// Дни недели нумеруем 1..7, все остальное приводим к понедельнику
	if cfg.Schedule.FirstWeekday < 1 || cfg.Schedule.FirstWeekday > 7 {
		cfg.Schedule.FirstWeekday = 1
	}

	// Если RabbitMQ не включен, то кэш тоже не включаем
	if !cfg.RabbitMQ.Enabled {
		cfg.Cache.Enabled = false
	}

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
