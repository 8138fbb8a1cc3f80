package sessao

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	chaveToken   = "token"
	chavePapel   = "role"
	chaveUsuario = "userId"
)

// Cmdable cobre os comandos Redis usados pelo store; a interface estreita
// facilita stubs em teste.
type Cmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore persiste a sessão como três chaves planas (token, role,
// userId), o mesmo formato que o armazenamento local do navegador usava.
// Útil quando o console roda em automação e a sessão precisa ser
// compartilhada.
type RedisStore struct {
	client  Cmdable
	prefixo string
}

// NewRedisStore cria o store com o prefixo de chave informado.
func NewRedisStore(client Cmdable, prefixo string) *RedisStore {
	if prefixo == "" {
		prefixo = "fixpro:sessao:"
	}
	return &RedisStore{client: client, prefixo: prefixo}
}

func (r *RedisStore) chave(sufixo string) string {
	return r.prefixo + sufixo
}

// Ler devolve a sessão gravada ou ErrSessaoAusente.
func (r *RedisStore) Ler(ctx context.Context) (Sessao, error) {
	token, err := r.client.Get(ctx, r.chave(chaveToken)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Sessao{}, ErrSessaoAusente
		}
		return Sessao{}, fmt.Errorf("sessao: ler token: %w", err)
	}
	if token == "" {
		return Sessao{}, ErrSessaoAusente
	}

	s := Sessao{Token: token}

	papel, err := r.client.Get(ctx, r.chave(chavePapel)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return Sessao{}, fmt.Errorf("sessao: ler papel: %w", err)
	}
	s.Papel = papel

	bruto, err := r.client.Get(ctx, r.chave(chaveUsuario)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return Sessao{}, fmt.Errorf("sessao: ler usuário: %w", err)
	}
	if bruto != "" {
		if id, err := strconv.ParseInt(bruto, 10, 64); err == nil {
			s.UsuarioID = &id
		}
	}

	return s, nil
}

// Gravar substitui as três chaves. Sem expiração: o backend manda na vida
// do token.
func (r *RedisStore) Gravar(ctx context.Context, s Sessao) error {
	if err := r.client.Set(ctx, r.chave(chaveToken), s.Token, 0).Err(); err != nil {
		return fmt.Errorf("sessao: gravar token: %w", err)
	}
	if err := r.client.Set(ctx, r.chave(chavePapel), s.Papel, 0).Err(); err != nil {
		return fmt.Errorf("sessao: gravar papel: %w", err)
	}
	if s.UsuarioID == nil {
		if err := r.client.Del(ctx, r.chave(chaveUsuario)).Err(); err != nil {
			return fmt.Errorf("sessao: limpar usuário: %w", err)
		}
		return nil
	}
	if err := r.client.Set(ctx, r.chave(chaveUsuario), strconv.FormatInt(*s.UsuarioID, 10), 0).Err(); err != nil {
		return fmt.Errorf("sessao: gravar usuário: %w", err)
	}
	return nil
}

// Limpar remove as três chaves.
func (r *RedisStore) Limpar(ctx context.Context) error {
	if err := r.client.Del(ctx, r.chave(chaveToken), r.chave(chavePapel), r.chave(chaveUsuario)).Err(); err != nil {
		return fmt.Errorf("sessao: limpar: %w", err)
	}
	return nil
}
