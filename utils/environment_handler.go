package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gestaobikes/database"

	"github.com/joho/godotenv"
)

const (
	ENV               = "ENV"
	PORT              = "PORT"
	STORE             = "STORE"
	AUTH_JWT_SECRET   = "AUTH_JWT_SECRET"
	MONGODB_URI       = "MONGODB_URI"
	MYSQL_URI         = "MYSQL_URI"
	REDIS_URI         = "REDIS_URI"
	TIMEZONE          = "TIMEZONE"
	LOG_LEVEL         = "LOG_LEVEL"
	CATALOG_CACHE_TTL = "CATALOG_CACHE_TTL"

	ENV_DEVELOPMENT = "development"
	ENV_HOMOLOG     = "homolog"
	ENV_RELEASE     = "production"

	DEFAULT_TIMEZONE          = "America/Sao_Paulo"
	DEFAULT_LOG_LEVEL         = "info"
	DEFAULT_CATALOG_CACHE_TTL = 5 * time.Minute
)

var allowedKeys = []string{
	ENV, PORT, STORE, AUTH_JWT_SECRET, MONGODB_URI, MYSQL_URI,
	REDIS_URI, TIMEZONE, LOG_LEVEL, CATALOG_CACHE_TTL,
}

var requiredKeys = []string{ENV, PORT, STORE, AUTH_JWT_SECRET}

var allowedEnvValues = []string{ENV_DEVELOPMENT, ENV_HOMOLOG, ENV_RELEASE}

var allowedStoreValues = []string{database.STORE_MONGO, database.STORE_MYSQL, database.STORE_MEMORY}

// LoadEnvVariables exports the .env file found in dir, if any, to the process
// environment. Unknown keys and invalid ENV values are rejected.
func LoadEnvVariables(dir string) error {
	filePath := filepath.Join(dir, ".env")

	values, err := godotenv.Read(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("[ENV] Erro ao ler o arquivo .env: %w", err)
	}

	if len(values) == 0 {
		return errors.New("[ENV] O arquivo .env está vazio")
	}

	for key, value := range values {
		if !slices.Contains(allowedKeys, key) {
			return fmt.Errorf("[ENV] Chave '%s' não é permitida. Chaves permitidas: %s",
				key, strings.Join(allowedKeys, ", "))
		}

		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("[ENV] Erro ao definir variável de ambiente %s: %w", key, err)
		}
	}
	return nil
}

type Config struct {
	Env             string
	Port            string
	Store           string
	AuthSecret      string
	MongoURI        string
	MySQLURI        string
	RedisURI        string
	Location        *time.Location
	LogLevel        string
	CatalogCacheTTL time.Duration
}

// ReadConfig validates the process environment and collects it into a Config.
func ReadConfig() (Config, error) {
	var missingKeys []string
	for _, key := range requiredKeys {
		if os.Getenv(key) == "" {
			missingKeys = append(missingKeys, key)
		}
	}

	cfg := Config{
		Env:        os.Getenv(ENV),
		Port:       os.Getenv(PORT),
		Store:      os.Getenv(STORE),
		AuthSecret: os.Getenv(AUTH_JWT_SECRET),
		MongoURI:   os.Getenv(MONGODB_URI),
		MySQLURI:   os.Getenv(MYSQL_URI),
		RedisURI:   os.Getenv(REDIS_URI),
		LogLevel:   os.Getenv(LOG_LEVEL),
	}

	switch {
	case cfg.Store == database.STORE_MONGO && cfg.MongoURI == "":
		missingKeys = append(missingKeys, MONGODB_URI)
	case cfg.Store == database.STORE_MYSQL && cfg.MySQLURI == "":
		missingKeys = append(missingKeys, MYSQL_URI)
	}

	if len(missingKeys) > 0 {
		return Config{}, fmt.Errorf("[ENV] Variáveis de ambiente obrigatórias ausentes: %s",
			strings.Join(missingKeys, ", "))
	}

	if !slices.Contains(allowedEnvValues, cfg.Env) {
		return Config{}, fmt.Errorf("[ENV] Valor inválido para ENV: %s. Valores permitidos: %s",
			cfg.Env, strings.Join(allowedEnvValues, ", "))
	}

	if !slices.Contains(allowedStoreValues, cfg.Store) {
		return Config{}, fmt.Errorf("[ENV] Valor inválido para STORE: %s. Valores permitidos: %s",
			cfg.Store, strings.Join(allowedStoreValues, ", "))
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DEFAULT_LOG_LEVEL
	}

	loc, err := LoadLocation(os.Getenv(TIMEZONE))
	if err != nil {
		return Config{}, err
	}
	cfg.Location = loc

	cfg.CatalogCacheTTL = DEFAULT_CATALOG_CACHE_TTL
	if raw := os.Getenv(CATALOG_CACHE_TTL); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl < 0 {
			return Config{}, fmt.Errorf("[ENV] Valor inválido para CATALOG_CACHE_TTL: %s", raw)
		}
		cfg.CatalogCacheTTL = ttl
	}

	return cfg, nil
}
