// Package conta cuida do ciclo de autenticação do console: login,
// logout e a sessão corrente.
package conta

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/fixpro/console/internal/auth"
	"github.com/fixpro/console/internal/gateway"
	"github.com/fixpro/console/internal/normalizar"
	"github.com/fixpro/console/internal/sessao"
)

// ErrCredenciaisInvalidas indica email ou senha rejeitados pelo backend.
var ErrCredenciaisInvalidas = errors.New("email ou senha inválidos")

// Credenciais é o corpo do login.
type Credenciais struct {
	Email string `json:"email"`
	Senha string `json:"password"`
}

type respostaLogin struct {
	Token string             `json:"token"`
	Papel string             `json:"role"`
	ID    normalizar.Inteiro `json:"id"`
}

// Service autentica contra a API e mantém a sessão persistida.
type Service struct {
	gw      *gateway.Gateway
	sessoes sessao.Store
}

// NewService cria o serviço de conta.
func NewService(gw *gateway.Gateway, sessoes sessao.Store) *Service {
	return &Service{gw: gw, sessoes: sessoes}
}

// Entrar troca credenciais por um token e grava a sessão. O backend
// responde 401 para credenciais erradas, o mesmo status que derruba
// sessões expiradas; aqui o 401 vira ErrCredenciaisInvalidas porque não
// havia sessão para expirar.
func (s *Service) Entrar(ctx context.Context, cred Credenciais) (sessao.Sessao, error) {
	cred.Email = strings.TrimSpace(cred.Email)
	if cred.Email == "" || cred.Senha == "" {
		return sessao.Sessao{}, ErrCredenciaisInvalidas
	}

	var resp respostaLogin
	if err := s.gw.Post(ctx, "/auth/login", cred, &resp); err != nil {
		if errors.Is(err, gateway.ErrSessaoExpirada) {
			return sessao.Sessao{}, ErrCredenciaisInvalidas
		}
		return sessao.Sessao{}, err
	}
	if resp.Token == "" {
		return sessao.Sessao{}, ErrCredenciaisInvalidas
	}

	ses := sessao.Sessao{Token: resp.Token, Papel: resp.Papel}
	if id := int64(resp.ID); id != 0 {
		ses.UsuarioID = &id
	}
	if err := s.sessoes.Gravar(ctx, ses); err != nil {
		return sessao.Sessao{}, err
	}

	log.Info().Str("email", cred.Email).Str("papel", ses.Papel).Msg("login efetuado")
	return ses, nil
}

// Sair descarta a sessão local. Não há endpoint de logout no backend; o
// token simplesmente deixa de ser usado.
func (s *Service) Sair(ctx context.Context) error {
	return s.sessoes.Limpar(ctx)
}

// Atual devolve a sessão gravada, se houver.
func (s *Service) Atual(ctx context.Context) (sessao.Sessao, error) {
	return s.sessoes.Ler(ctx)
}

// PapelAtual resolve o papel efetivo da sessão: primeiro a claim do
// token, depois o papel gravado no login. O token não é verificado, o
// valor serve só para escolher telas e endpoints; a autorização real é
// do backend.
func (s *Service) PapelAtual(ctx context.Context) string {
	ses, err := s.sessoes.Ler(ctx)
	if err != nil {
		return ""
	}
	if papel := auth.PapelDoToken(ses.Token); papel != "" {
		return papel
	}
	return ses.Papel
}
