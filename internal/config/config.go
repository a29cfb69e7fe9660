package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ScoringWeights - веса составляющих итоговой оценки кандидата.
// Сумма весов контролируется продуктом, а не кодом.
type ScoringWeights struct {
	Jurisdiction float64
	Proximity    float64
	Severity     float64
}

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config (доставка событий диспетчеризации внешнему шлюзу)
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Dispatch Config
	Weights            ScoringWeights
	ProximityCapKm     float64       `env:"DISPATCH_PROXIMITY_CAP_KM" envDefault:"15"`
	MutualAidScore     float64       `env:"DISPATCH_MUTUAL_AID_SCORE" envDefault:"0.5"`
	UnitLockTimeout    time.Duration `env:"DISPATCH_LOCK_TIMEOUT" envDefault:"3s"`
	AssignMaxRetries   int           `env:"DISPATCH_ASSIGN_MAX_RETRIES" envDefault:"3"`
	AssignRetryBackoff time.Duration `env:"DISPATCH_ASSIGN_RETRY_BACKOFF" envDefault:"100ms"`

	// CategoryCompatibility - допустимые типы агентств по категориям инцидентов.
	// Пустой список для категории означает "совместимы все"
	CategoryCompatibility map[string][]string

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// defaultCategoryCompatibility покрывает наблюдаемые категории; GENERAL
// агентства совместимы с любой категорией
var defaultCategoryCompatibility = map[string][]string{
	"FIRE":     {"FIRE", "GENERAL"},
	"SMOKE":    {"FIRE", "GENERAL"},
	"MEDICAL":  {"MEDICAL", "GENERAL"},
	"INJURY":   {"MEDICAL", "GENERAL"},
	"CRIME":    {"POLICE", "GENERAL"},
	"ASSAULT":  {"POLICE", "GENERAL"},
	"ROBBERY":  {"POLICE", "GENERAL"},
	"TRAFFIC":  {"TRAFFIC", "POLICE", "GENERAL"},
	"ACCIDENT": {"TRAFFIC", "MEDICAL", "POLICE", "GENERAL"},
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		Weights: ScoringWeights{
			Jurisdiction: getEnvAsFloat("DISPATCH_WEIGHT_JURISDICTION", 0.40),
			Proximity:    getEnvAsFloat("DISPATCH_WEIGHT_PROXIMITY", 0.35),
			Severity:     getEnvAsFloat("DISPATCH_WEIGHT_SEVERITY", 0.25),
		},
		ProximityCapKm:        getEnvAsFloat("DISPATCH_PROXIMITY_CAP_KM", 15),
		MutualAidScore:        getEnvAsFloat("DISPATCH_MUTUAL_AID_SCORE", 0.5),
		UnitLockTimeout:       getEnvAsDuration("DISPATCH_LOCK_TIMEOUT", 3*time.Second),
		AssignMaxRetries:      getEnvAsInt("DISPATCH_ASSIGN_MAX_RETRIES", 3),
		AssignRetryBackoff:    getEnvAsDuration("DISPATCH_ASSIGN_RETRY_BACKOFF", 100*time.Millisecond),
		CategoryCompatibility: defaultCategoryCompatibility,
	}

	// Таблица совместимости категорий и агентств - продуктовая политика,
	// поэтому допускает переопределение JSON-ом целиком
	if raw := os.Getenv("DISPATCH_CATEGORY_COMPATIBILITY"); raw != "" {
		table := map[string][]string{}
		if err := json.Unmarshal([]byte(raw), &table); err != nil {
			return nil, fmt.Errorf("invalid DISPATCH_CATEGORY_COMPATIBILITY: %w", err)
		}
		cfg.CategoryCompatibility = table
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
