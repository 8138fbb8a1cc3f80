package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// BackendArquivo persiste a sessão em um arquivo JSON local.
	BackendArquivo = "arquivo"
	// BackendRedis persiste a sessão em um Redis compartilhado.
	BackendRedis = "redis"
)

// Config centraliza a configuração do console carregada do ambiente.
type Config struct {
	APIBase       string
	Timeout       time.Duration
	SessaoBackend string
	SessaoArquivo string
	RedisURL      string
	RateLimit     RateLimitConfig
	Debug         bool
}

// RateLimitConfig limita as requisições de saída; zero desativa.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load carrega variáveis de ambiente e aplica defaults seguros.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.APIBase = strings.TrimRight(strings.TrimSpace(getEnv("FIXPRO_API_BASE", "http://localhost:8089/api")), "/")
	if cfg.APIBase == "" {
		return nil, errors.New("FIXPRO_API_BASE obrigatório")
	}

	timeout, err := parseDurationEnv("FIXPRO_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.Timeout = timeout

	cfg.SessaoBackend = strings.ToLower(strings.TrimSpace(getEnv("FIXPRO_SESSAO_BACKEND", BackendArquivo)))
	switch cfg.SessaoBackend {
	case BackendArquivo, BackendRedis:
	default:
		return nil, errors.New("FIXPRO_SESSAO_BACKEND deve ser 'arquivo' ou 'redis'")
	}

	cfg.SessaoArquivo = strings.TrimSpace(getEnv("FIXPRO_SESSAO_ARQUIVO", ""))
	if cfg.SessaoArquivo == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.New("defina FIXPRO_SESSAO_ARQUIVO (diretório home indisponível)")
		}
		cfg.SessaoArquivo = filepath.Join(home, ".fixpro", "sessao.json")
	}

	cfg.RedisURL = strings.TrimSpace(getEnv("REDIS_URL", ""))
	if cfg.SessaoBackend == BackendRedis && cfg.RedisURL == "" {
		return nil, errors.New("REDIS_URL obrigatório com FIXPRO_SESSAO_BACKEND=redis")
	}

	rps, err := parseFloatEnv("FIXPRO_RATE_RPS", 0)
	if err != nil {
		return nil, err
	}
	burst, err := parseIntEnv("FIXPRO_RATE_BURST", 1)
	if err != nil {
		return nil, err
	}
	cfg.RateLimit = RateLimitConfig{RequestsPerSecond: rps, Burst: burst}

	cfg.Debug = strings.EqualFold(getEnv("FIXPRO_DEBUG", ""), "true")

	return cfg, nil
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	val := getEnv(key, "")
	if val == "" {
		return def, nil
	}
	dur, err := time.ParseDuration(val)
	if err != nil || dur < 0 {
		return 0, errors.New(key + " inválido")
	}
	return dur, nil
}

func parseFloatEnv(key string, def float64) (float64, error) {
	val := getEnv(key, "")
	if val == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil || f < 0 {
		return 0, errors.New(key + " inválido")
	}
	return f, nil
}

func parseIntEnv(key string, def int) (int, error) {
	val := getEnv(key, "")
	if val == "" {
		return def, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return 0, errors.New(key + " inválido")
	}
	return n, nil
}
