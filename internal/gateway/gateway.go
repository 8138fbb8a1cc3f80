// Package gateway concentra toda a comunicação com a API FixPro: injeção
// do token, tratamento global de 401 e a taxonomia de erros que os
// serviços repassam para a interface.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/fixpro/console/internal/auth"
	"github.com/fixpro/console/internal/sessao"
)

var (
	// ErrSessaoExpirada sinaliza resposta 401: a sessão local já foi
	// descartada e o usuário precisa autenticar de novo. Não há retry.
	ErrSessaoExpirada = errors.New("sessão expirada")
)

// APIError carrega uma falha HTTP devolvida pelo backend.
type APIError struct {
	Status   int
	Mensagem string
}

func (e *APIError) Error() string {
	if e.Mensagem != "" {
		return fmt.Sprintf("api fixpro: %s (status %d)", e.Mensagem, e.Status)
	}
	return fmt.Sprintf("api fixpro: status %d", e.Status)
}

// Proibido informa se o erro corresponde a uma resposta 403.
func Proibido(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusForbidden
}

// Gateway encapsula o cliente HTTP autenticado.
type Gateway struct {
	httpClient *http.Client
	baseURL    string
	sessoes    sessao.Store
	limiter    *rate.Limiter
	aoExpirar  func()
}

// Config descreve as dependências do gateway.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Sessoes sessao.Store
	// RequestsPerSecond limita as requisições de saída; zero desativa.
	RequestsPerSecond float64
	Burst             int
	// AoExpirar é chamado uma vez por 401 detectado, depois da limpeza da
	// sessão. Equivale ao redirecionamento forçado para a tela de login.
	AoExpirar func()
}

// New valida a configuração e cria o gateway.
func New(cfg Config) (*Gateway, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("gateway: base URL obrigatória")
	}
	if cfg.Sessoes == nil {
		return nil, errors.New("gateway: store de sessão obrigatório")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Gateway{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    base,
		sessoes:    cfg.Sessoes,
		limiter:    limiter,
		aoExpirar:  cfg.AoExpirar,
	}, nil
}

// Get faz GET e decodifica a resposta em out (quando não nil).
func (g *Gateway) Get(ctx context.Context, caminho string, out any) error {
	return g.chamar(ctx, http.MethodGet, caminho, nil, out)
}

// Post faz POST com corpo JSON.
func (g *Gateway) Post(ctx context.Context, caminho string, corpo, out any) error {
	return g.chamar(ctx, http.MethodPost, caminho, corpo, out)
}

// Put faz PUT com corpo JSON.
func (g *Gateway) Put(ctx context.Context, caminho string, corpo, out any) error {
	return g.chamar(ctx, http.MethodPut, caminho, corpo, out)
}

// Patch faz PATCH com corpo JSON.
func (g *Gateway) Patch(ctx context.Context, caminho string, corpo, out any) error {
	return g.chamar(ctx, http.MethodPatch, caminho, corpo, out)
}

// Delete faz DELETE; a resposta é ignorada (o backend devolve texto).
func (g *Gateway) Delete(ctx context.Context, caminho string) error {
	return g.chamar(ctx, http.MethodDelete, caminho, nil, nil)
}

func (g *Gateway) chamar(ctx context.Context, metodo, caminho string, corpo, out any) error {
	req, err := g.novaRequisicao(ctx, metodo, caminho, corpo)
	if err != nil {
		return err
	}
	return g.executar(req, out)
}

// novaRequisicao monta a requisição com os cabeçalhos padrão. Com sessão
// presente o token vai normalizado para um único prefixo Bearer; sem
// sessão a chamada segue sem autenticação.
func (g *Gateway) novaRequisicao(ctx context.Context, metodo, caminho string, corpo any) (*http.Request, error) {
	var leitor io.Reader
	if corpo != nil {
		payload, err := json.Marshal(corpo)
		if err != nil {
			return nil, fmt.Errorf("gateway: serializar corpo: %w", err)
		}
		leitor = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, metodo, g.baseURL+caminho, leitor)
	if err != nil {
		return nil, fmt.Errorf("gateway: montar requisição: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if corpo != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	ses, err := g.sessoes.Ler(ctx)
	switch {
	case err == nil:
		req.Header.Set("Authorization", auth.NormalizarAutorizacao(ses.Token))
	case errors.Is(err, sessao.ErrSessaoAusente):
		// segue sem Authorization
	default:
		return nil, err
	}

	return req, nil
}

func (g *Gateway) executar(req *http.Request, out any) error {
	if g.limiter != nil {
		if err := g.limiter.Wait(req.Context()); err != nil {
			return fmt.Errorf("gateway: limite de requisições: %w", err)
		}
	}

	inicio := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(inicio)).
		Str("request_id", req.Header.Get("X-Request-ID")).
		Msg("api_request")

	if resp.StatusCode == http.StatusUnauthorized {
		// derruba a sessão incondicionalmente; o chamador volta ao login
		if err := g.sessoes.Limpar(req.Context()); err != nil {
			log.Warn().Err(err).Msg("falha ao limpar sessão após 401")
		}
		if g.aoExpirar != nil {
			g.aoExpirar()
		}
		return ErrSessaoExpirada
	}

	if resp.StatusCode >= 400 {
		corpo, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return &APIError{Status: resp.StatusCode, Mensagem: mensagemDoCorpo(corpo)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("gateway: decodificar resposta de %s: %w", req.URL.Path, err)
	}
	return nil
}

// mensagemDoCorpo procura o campo message nas duas formas de envelope de
// erro que o backend usa; vazio quando não há nada aproveitável.
func mensagemDoCorpo(corpo []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(corpo, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	if payload.Error != nil {
		return payload.Error.Message
	}
	return ""
}
