package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FIXPRO_API_BASE", "")
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err == nil {
		t.Fatal("expected erro com base vazia")
	}

	t.Setenv("FIXPRO_API_BASE", "http://localhost:8089/api/")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	// barra final removida
	if cfg.APIBase != "http://localhost:8089/api" {
		t.Fatalf("expected base sem barra got %q", cfg.APIBase)
	}
	if cfg.Timeout != 15*time.Second {
		t.Fatalf("expected timeout default got %v", cfg.Timeout)
	}
	if cfg.SessaoBackend != BackendArquivo {
		t.Fatalf("expected backend arquivo got %q", cfg.SessaoBackend)
	}
	if cfg.SessaoArquivo == "" {
		t.Fatal("expected caminho de sessão resolvido")
	}
	if cfg.RateLimit.RequestsPerSecond != 0 || cfg.RateLimit.Burst != 1 {
		t.Fatalf("rate limit default inesperado: %+v", cfg.RateLimit)
	}
}

func TestLoadRedisExigeURL(t *testing.T) {
	t.Setenv("FIXPRO_API_BASE", "http://localhost:8089/api")
	t.Setenv("FIXPRO_SESSAO_BACKEND", "redis")
	t.Setenv("REDIS_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected erro sem REDIS_URL")
	}

	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SessaoBackend != BackendRedis || cfg.RedisURL == "" {
		t.Fatalf("config inesperada: %+v", cfg)
	}
}

func TestLoadValoresInvalidos(t *testing.T) {
	t.Setenv("FIXPRO_API_BASE", "http://localhost:8089/api")

	t.Setenv("FIXPRO_TIMEOUT", "quinze")
	if _, err := Load(); err == nil {
		t.Fatal("expected erro de timeout")
	}
	t.Setenv("FIXPRO_TIMEOUT", "5s")

	t.Setenv("FIXPRO_SESSAO_BACKEND", "memoria")
	if _, err := Load(); err == nil {
		t.Fatal("expected erro de backend")
	}
	t.Setenv("FIXPRO_SESSAO_BACKEND", "arquivo")

	t.Setenv("FIXPRO_RATE_RPS", "-1")
	if _, err := Load(); err == nil {
		t.Fatal("expected erro de rate limit")
	}
}
