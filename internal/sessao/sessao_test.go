package sessao

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestArquivoStoreCicloCompleto(t *testing.T) {
	ctx := context.Background()
	caminho := filepath.Join(t.TempDir(), "sub", "sessao.json")

	store, err := NewArquivoStore(caminho)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, err := store.Ler(ctx); !errors.Is(err, ErrSessaoAusente) {
		t.Fatalf("expected ErrSessaoAusente, got %v", err)
	}

	id := int64(7)
	gravada := Sessao{Token: "abc.def.ghi", Papel: "TECHNICIAN", UsuarioID: &id}
	if err := store.Gravar(ctx, gravada); err != nil {
		t.Fatalf("gravar: %v", err)
	}

	lida, err := store.Ler(ctx)
	if err != nil {
		t.Fatalf("ler: %v", err)
	}
	if lida.Token != gravada.Token || lida.Papel != gravada.Papel {
		t.Fatalf("expected %+v got %+v", gravada, lida)
	}
	if lida.UsuarioID == nil || *lida.UsuarioID != id {
		t.Fatalf("expected userId %d got %v", id, lida.UsuarioID)
	}

	if err := store.Limpar(ctx); err != nil {
		t.Fatalf("limpar: %v", err)
	}
	if _, err := store.Ler(ctx); !errors.Is(err, ErrSessaoAusente) {
		t.Fatalf("expected ErrSessaoAusente after limpar, got %v", err)
	}

	// limpar de novo não pode falhar
	if err := store.Limpar(ctx); err != nil {
		t.Fatalf("limpar idempotente: %v", err)
	}
}

type stubRedis struct {
	store map[string]string
}

func (s *stubRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if s.store == nil {
		s.store = make(map[string]string)
	}
	switch v := value.(type) {
	case string:
		s.store[key] = v
	default:
		s.store[key] = ""
	}
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("OK")
	return cmd
}

func (s *stubRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	val, ok := s.store[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(val)
	return cmd
}

func (s *stubRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var removed int64
	for _, key := range keys {
		if _, ok := s.store[key]; ok {
			delete(s.store, key)
			removed++
		}
	}
	cmd := redis.NewIntCmd(ctx)
	cmd.SetVal(removed)
	return cmd
}

func TestRedisStoreCicloCompleto(t *testing.T) {
	ctx := context.Background()
	store := NewRedisStore(&stubRedis{}, "")

	if _, err := store.Ler(ctx); !errors.Is(err, ErrSessaoAusente) {
		t.Fatalf("expected ErrSessaoAusente, got %v", err)
	}

	id := int64(42)
	if err := store.Gravar(ctx, Sessao{Token: "tok", Papel: "ADMIN", UsuarioID: &id}); err != nil {
		t.Fatalf("gravar: %v", err)
	}

	lida, err := store.Ler(ctx)
	if err != nil {
		t.Fatalf("ler: %v", err)
	}
	if lida.Token != "tok" || lida.Papel != "ADMIN" || lida.UsuarioID == nil || *lida.UsuarioID != id {
		t.Fatalf("sessão inesperada: %+v", lida)
	}

	// sem userId a chave antiga deve sumir
	if err := store.Gravar(ctx, Sessao{Token: "tok2", Papel: "ADMIN"}); err != nil {
		t.Fatalf("gravar sem userId: %v", err)
	}
	lida, err = store.Ler(ctx)
	if err != nil {
		t.Fatalf("ler: %v", err)
	}
	if lida.UsuarioID != nil {
		t.Fatalf("expected userId ausente, got %v", *lida.UsuarioID)
	}

	if err := store.Limpar(ctx); err != nil {
		t.Fatalf("limpar: %v", err)
	}
	if _, err := store.Ler(ctx); !errors.Is(err, ErrSessaoAusente) {
		t.Fatalf("expected ErrSessaoAusente after limpar, got %v", err)
	}
}
