package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config armazena todas as configurações da API da delegacia.
type Config struct {
	// Geral
	Port        string `validate:"required,numeric"`
	Environment string `validate:"required,oneof=development production test"`
	LogLevel    string `validate:"required,oneof=debug info warn error"`

	// Banco de Dados (PostgreSQL)
	DatabaseURL string        `validate:"required"`
	DBTimeout   time.Duration `validate:"gt=0"`
	AutoMigrate bool

	// Rate Limiting (Redis). RedisAddr vazio desliga o limite.
	RedisAddr            string
	CacheTimeout         time.Duration `validate:"gt=0"`
	RateLimitMaxRequests int           `validate:"gt=0"`
	RateLimitPeriod      time.Duration `validate:"gt=0"`

	// Segurança (JWT)
	JWTSecretKey string        `validate:"required"`
	TokenExpiry  time.Duration `validate:"gt=0"`
}

// RateLimitEnabled indica se há um Redis configurado para o rate limiting.
func (c *Config) RateLimitEnabled() bool {
	return c.RedisAddr != ""
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// O .env, quando existe, deve ser carregado antes (godotenv, em cmd/).
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	// 1. Geral
	v.SetDefault("PORT", "3000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	// 2. Banco de Dados
	v.SetDefault("DB_TIMEOUT_SEC", 5)
	v.SetDefault("AUTO_MIGRATE", false)

	// 3. Rate Limiting
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("CACHE_TIMEOUT_SEC", 2)
	v.SetDefault("RATE_LIMIT_MAX_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_PERIOD_MIN", 1)

	// 4. Segurança
	v.SetDefault("JWT_EXPIRY_HOURS", 24)

	cfg := &Config{
		Port:        v.GetString("PORT"),
		Environment: v.GetString("ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),

		DatabaseURL: v.GetString("DATABASE_URL"),
		DBTimeout:   time.Duration(v.GetInt("DB_TIMEOUT_SEC")) * time.Second,
		AutoMigrate: v.GetBool("AUTO_MIGRATE"),

		RedisAddr:            v.GetString("REDIS_ADDR"),
		CacheTimeout:         time.Duration(v.GetInt("CACHE_TIMEOUT_SEC")) * time.Second,
		RateLimitMaxRequests: v.GetInt("RATE_LIMIT_MAX_REQUESTS"),
		RateLimitPeriod:      time.Duration(v.GetInt("RATE_LIMIT_PERIOD_MIN")) * time.Minute,

		JWTSecretKey: v.GetString("JWT_SECRET"),
		TokenExpiry:  time.Duration(v.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuração inválida: %w", err)
	}

	return cfg, nil
}
