package config

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"
)

// Поддерживаемые бэкенды хранилища
const (
	StorageBackendPostgres = "postgres"
	StorageBackendMemory   = "memory"
)

// Config хранит все настройки приложения
type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string
	ReadTimeout  int `mapstructure:"read_timeout"`
	WriteTimeout int `mapstructure:"write_timeout"`
}

// StorageConfig определяет бэкенд репозиториев.
// Backend: "postgres" (долговечное хранилище) или "memory" (демо-режим).
// Выбор выполняется один раз при старте процесса.
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
}

// DatabaseConfig содержит настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// RedisConfig содержит настройки подключения к Redis.
// Redis используется только для rate limiting; пустой Addr
// отключает лимитер целиком.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RateLimitConfig содержит настройки rate limiting для мутирующих эндпоинтов
type RateLimitConfig struct {
	// MaxRequests — максимальное количество запросов за окно
	MaxRequests int `mapstructure:"max_requests"`
	// WindowSec — длина окна в секундах
	WindowSec int `mapstructure:"window_sec"`
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Load загружает конфигурацию из файла и переменных окружения
func Load(configPath string) (*Config, error) {
	vip := viper.New() // Новый экземпляр Viper, чтобы избежать глобального состояния

	// Значения по умолчанию
	vip.SetDefault("server.port", "8080")
	vip.SetDefault("server.read_timeout", 15)
	vip.SetDefault("server.write_timeout", 15)
	vip.SetDefault("storage.backend", StorageBackendPostgres)
	vip.SetDefault("database.sslmode", "disable")
	vip.SetDefault("rate_limit.max_requests", 30)
	vip.SetDefault("rate_limit.window_sec", 60)

	// Привязываем переменные окружения явно
	vip.BindEnv("server.port", "SERVER_PORT")
	vip.BindEnv("storage.backend", "STORAGE_BACKEND")

	vip.BindEnv("database.host", "DATABASE_HOST")
	vip.BindEnv("database.port", "DATABASE_PORT")
	vip.BindEnv("database.user", "DATABASE_USER")
	vip.BindEnv("database.password", "DATABASE_PASSWORD")
	vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")

	vip.BindEnv("redis.addr", "REDIS_ADDR")
	vip.BindEnv("redis.password", "REDIS_PASSWORD")
	vip.BindEnv("redis.db", "REDIS_DB")

	vip.BindEnv("rate_limit.max_requests", "RATE_LIMIT_MAX_REQUESTS")
	vip.BindEnv("rate_limit.window_sec", "RATE_LIMIT_WINDOW_SEC")

	// Файл конфигурации опционален: значения могут прийти из окружения
	if configPath != "" {
		vip.SetConfigFile(configPath)
		if err := vip.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				log.Printf("Файл конфигурации '%s' не найден, используются переменные окружения/умолчания.", configPath)
			} else {
				log.Printf("Предупреждение: не удалось прочитать файл конфигурации '%s': %v", configPath, err)
			}
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Логирование конфигурации (только вне release-режима)
	if os.Getenv("GIN_MODE") != "release" {
		log.Printf("--- Загруженные значения конфигурации ---")
		log.Printf("Server Port: %s", cfg.Server.Port)
		log.Printf("Storage Backend: %s", cfg.Storage.Backend)
		log.Printf("Database Host: %s", cfg.Database.Host)
		log.Printf("Database Name: %s", cfg.Database.DBName)
		log.Printf("Redis Addr: %s", cfg.Redis.Addr)
		log.Printf("-----------------------------------------")
	}

	// Проверка обязательных параметров
	switch cfg.Storage.Backend {
	case StorageBackendPostgres:
		if cfg.Database.Host == "" || cfg.Database.DBName == "" || cfg.Database.User == "" {
			return nil, fmt.Errorf("database configuration (host, dbname, user) is incomplete (check DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER env vars)")
		}
	case StorageBackendMemory:
		// Память не требует внешних параметров
	default:
		return nil, fmt.Errorf("unsupported storage backend %q (expected %q or %q)",
			cfg.Storage.Backend, StorageBackendPostgres, StorageBackendMemory)
	}

	return &cfg, nil
}
