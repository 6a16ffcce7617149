package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuracion del servicio.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	DataDir  string `env:"DATA_DIR" envDefault:"data"`

	// LLMProvider selecciona el backend: "openai" (API compatible) o "gemini".
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"gemini"`
	LLMAPIKey   string `env:"LLM_API_KEY"`
	// GoogleAPIKey se mantiene por compatibilidad con despliegues viejos;
	// si LLM_API_KEY esta vacio se usa este valor.
	GoogleAPIKey string `env:"GOOGLE_API_KEY"`
	LLMBaseURL   string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel     string `env:"LLM_MODEL" envDefault:"gemini-2.0-flash"`

	// DatabaseURL opcional: si esta presente el transcript va a Postgres,
	// si no, a un archivo SQLite dentro de DataDir.
	DatabaseURL string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret         string `env:"JWT_SECRET"`
	JWTAccessTTLHours int    `env:"JWT_ACCESS_TTL_HOURS" envDefault:"24"`
}

// LoadConfig carga la configuracion desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if cfg.LLMAPIKey == "" {
		cfg.LLMAPIKey = cfg.GoogleAPIKey
	}
	return &cfg, nil
}
