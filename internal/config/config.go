// Package config предоставляет структуры и функции для парсинга и загрузки конфига
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Storage    `yaml:"storage"`
	Redis      `yaml:"redis"`
	Date       `yaml:"date"`
	Static     `yaml:"static"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":3000"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	RateLimit   float64       `yaml:"rate_limit" env:"HTTP_RATE_LIMIT" env-default:"50"`
	RateBurst   int           `yaml:"rate_burst" env:"HTTP_RATE_BURST" env-default:"100"`
}

// Storage структура для настройки хранилища
type Storage struct {
	Driver       string        `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"`
	DSN          string        `yaml:"dsn" env:"STORAGE_DSN" env-default:"./data/exercise-tracker.db"`
	QueryTimeout time.Duration `yaml:"query_timeout" env:"STORAGE_QUERY_TIMEOUT" env-default:"5s"`
}

// Redis структура для настройки подключения к redis
type Redis struct {
	Enabled     bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Address     string        `yaml:"address" env:"REDIS_ADDRESS" env-default:"localhost:6379"`
	Password    string        `yaml:"password" env:"REDIS_PASSWORD"`
	User        string        `yaml:"user" env:"REDIS_USER"`
	DB          int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	MaxRetries  int           `yaml:"max_retries" env:"REDIS_MAX_RETRIES" env-default:"3"`
	DialTimeout time.Duration `yaml:"dial_timeout" env:"REDIS_DIAL_TIMEOUT" env-default:"5s"`
	Timeout     time.Duration `yaml:"timeout" env:"REDIS_TIMEOUT" env-default:"3s"`
	TTL         time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"10m"`
}

// Date настройки вывода дат
type Date struct {
	Location string `yaml:"location" env:"DATE_LOCATION" env-default:"UTC"`
}

// Static настройки статических страниц
type Static struct {
	Landing string `yaml:"landing" env:"STATIC_LANDING"`
}

// Load читает конфиг из файла path, переменные окружения имеют приоритет.
func Load(path string) (*Config, error) {
	const op = "config.Load"
	if path == "" {
		return nil, fmt.Errorf("%s: config path is empty", op)
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: file %s does not exist", op, path)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// MustLoad загружает конфиг из файла, указанного в CONFIG_PATH.
// Если CONFIG_PATH не задан, настройки берутся только из окружения.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		var cfg Config
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from env: %s", err)
		}
		if err := cfg.validate(); err != nil {
			log.Fatalf("invalid config: %s", err)
		}
		return &cfg
	}
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// Location возвращает часовой пояс для вывода дат.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Date.Location)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Storage.DSN == "" {
		return errors.New("storage dsn is empty")
	}
	if _, err := time.LoadLocation(c.Date.Location); err != nil {
		return fmt.Errorf("date location: %w", err)
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"  RateLimit: %g\n"+
			"  RateBurst: %d\n"+
			"Storage:\n"+
			"  Driver: %s\n"+
			"  QueryTimeout: %s\n"+
			"Redis:\n"+
			"  Enabled: %t\n"+
			"  Addr: %s\n"+
			"  User: %s\n"+
			"  DB: %d\n"+
			"  TTL: %s\n"+
			"Date:\n"+
			"  Location: %s\n",
		c.Env,
		c.HTTPServer.Address,
		c.HTTPServer.Timeout,
		c.HTTPServer.IdleTimeout,
		c.RateLimit,
		c.RateBurst,
		c.Driver,
		c.QueryTimeout,
		c.Enabled,
		c.Redis.Address,
		c.User,
		c.DB,
		c.TTL,
		c.Date.Location,
	)
}
