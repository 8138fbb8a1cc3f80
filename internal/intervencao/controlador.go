package intervencao

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

var (
	// ErrRecusado indica que o usuário negou a confirmação; nenhuma
	// requisição foi enviada.
	ErrRecusado = errors.New("operação recusada pelo usuário")
	// ErrNaoEncontrada indica id ausente da coleção carregada.
	ErrNaoEncontrada = errors.New("intervenção não encontrada")
	// ErrTransicaoInvalida indica destino fora da tabela guiada.
	ErrTransicaoInvalida = errors.New("transição de status não permitida")
)

// API é o recorte do Service que o controlador consome.
type API interface {
	ListarPorPapel(ctx context.Context, papel string) ([]Intervencao, error)
	Ajustar(ctx context.Context, id int64, ajuste Ajuste) (Intervencao, error)
}

// Confirmador é o portão sim/não exibido antes de cada mutação.
type Confirmador func(titulo, texto string) bool

// Controlador mantém o espelho em memória das intervenções e aplica o
// ciclo guiado de status: confirmação, PATCH, patch otimista local e
// recarga de reconciliação. Pensado para uso em um único goroutine;
// recargas sobrepostas seguem last-write-wins, como a tela web.
type Controlador struct {
	api       API
	papel     string
	confirmar Confirmador
	itens     []Intervencao
}

// NewControlador cria o controlador para o papel informado. confirmar
// nil libera toda operação sem perguntar.
func NewControlador(api API, papel string, confirmar Confirmador) *Controlador {
	return &Controlador{api: api, papel: papel, confirmar: confirmar}
}

// Carregar substitui o espelho local pela listagem do papel atual.
func (c *Controlador) Carregar(ctx context.Context) error {
	itens, err := c.api.ListarPorPapel(ctx, c.papel)
	if err != nil {
		return err
	}
	c.itens = itens
	return nil
}

// Itens expõe o espelho atual, na ordem devolvida pelo backend.
func (c *Controlador) Itens() []Intervencao {
	return c.itens
}

// Filtrar aplica o filtro composto sobre o espelho atual.
func (c *Controlador) Filtrar(f Filtro) []Intervencao {
	return Aplicar(c.itens, f)
}

// Resumo agrega os contadores do espelho atual.
func (c *Controlador) Resumo() Resumo {
	return CalcularResumo(c.itens)
}

func (c *Controlador) indice(id int64) int {
	for i := range c.itens {
		if c.itens[i].ID == id {
			return i
		}
	}
	return -1
}

// Iniciar move CREATED ou ASSIGNED para IN_PROGRESS.
func (c *Controlador) Iniciar(ctx context.Context, id int64) error {
	return c.transitar(ctx, id, StatusEmAndamento, "Iniciar o trabalho?")
}

// Concluir move IN_PROGRESS para DONE.
func (c *Controlador) Concluir(ctx context.Context, id int64) error {
	return c.transitar(ctx, id, StatusConcluida, "Marcar como concluída?")
}

// Abandonar move IN_PROGRESS para CANCELLED.
func (c *Controlador) Abandonar(ctx context.Context, id int64) error {
	return c.transitar(ctx, id, StatusCancelada, "Cancelar a intervenção?")
}

func (c *Controlador) transitar(ctx context.Context, id int64, destino Status, titulo string) error {
	idx := c.indice(id)
	if idx < 0 {
		return fmt.Errorf("%w: id %d", ErrNaoEncontrada, id)
	}

	atual := c.itens[idx]
	if !TransicaoPermitida(atual.Status, destino) {
		return fmt.Errorf("%w: %s → %s", ErrTransicaoInvalida, atual.Status, destino)
	}

	if c.confirmar != nil && !c.confirmar(titulo, atual.Descricao) {
		return ErrRecusado
	}

	status := destino
	if _, err := c.api.Ajustar(ctx, id, Ajuste{Status: &status}); err != nil {
		return err
	}

	// patch otimista: o novo status aparece antes da recarga terminar
	c.itens[idx].Status = destino
	log.Info().Int64("intervencao", id).Str("status", string(destino)).Msg("status atualizado")

	c.recarregar(ctx)
	return nil
}

// AtualizacaoLivre altera status e descrição em uma única requisição,
// sem passar pela tabela guiada; qualquer um dos cinco status é aceito.
// Mantido por paridade com a tela web de edição do técnico.
// TODO: confirmar com o time do backend se transições arbitrárias
// (ex.: DONE → CREATED) devem ser rejeitadas também aqui.
func (c *Controlador) AtualizacaoLivre(ctx context.Context, id int64, status Status, descricao string) error {
	idx := c.indice(id)
	if idx < 0 {
		return fmt.Errorf("%w: id %d", ErrNaoEncontrada, id)
	}
	if !StatusValido(status) {
		return fmt.Errorf("%w: %s", ErrTransicaoInvalida, status)
	}

	if c.confirmar != nil && !c.confirmar("Atualizar a intervenção?", c.itens[idx].Descricao) {
		return ErrRecusado
	}

	st := status
	desc := descricao
	if _, err := c.api.Ajustar(ctx, id, Ajuste{Status: &st, Descricao: &desc}); err != nil {
		return err
	}

	c.itens[idx].Status = status
	c.itens[idx].Descricao = descricao
	log.Info().Int64("intervencao", id).Str("status", string(status)).Msg("intervenção atualizada")

	c.recarregar(ctx)
	return nil
}

// recarregar reconcilia campos desnormalizados (ex.: nome do técnico)
// que o patch otimista não conhece. Falha aqui não desfaz a operação: o
// backend já confirmou a mutação.
func (c *Controlador) recarregar(ctx context.Context) {
	if err := c.Carregar(ctx); err != nil {
		log.Warn().Err(err).Msg("recarga de reconciliação falhou")
	}
}
