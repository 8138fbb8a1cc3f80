// Package sessao guarda a sessão autenticada do console: o token emitido
// no login, a etiqueta de papel e o id do usuário. O backend é a única
// autoridade sobre a validade do token; aqui não existe lógica de
// expiração.
package sessao

import (
	"context"
	"errors"
)

var (
	// ErrSessaoAusente é retornado quando não há sessão persistida.
	ErrSessaoAusente = errors.New("sessão ausente")
)

// Sessao espelha o que o backend devolve em POST /auth/login.
type Sessao struct {
	Token     string `json:"token"`
	Papel     string `json:"role"`
	UsuarioID *int64 `json:"userId,omitempty"`
}

// Store persiste a sessão ativa. Gravar substitui os três valores de uma
// vez, do ponto de vista de quem chama; Limpar remove todos.
type Store interface {
	Ler(ctx context.Context) (Sessao, error)
	Gravar(ctx context.Context, s Sessao) error
	Limpar(ctx context.Context) error
}
