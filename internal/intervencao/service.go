package intervencao

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/fixpro/console/internal/gateway"
	"github.com/fixpro/console/internal/usuario"
)

// Service consulta e mantém intervenções via API.
type Service struct {
	gw *gateway.Gateway
}

// NewService cria o serviço sobre o gateway autenticado.
func NewService(gw *gateway.Gateway) *Service {
	return &Service{gw: gw}
}

func (s *Service) listar(ctx context.Context, caminho string) ([]Intervencao, error) {
	var raw json.RawMessage
	if err := s.gw.Get(ctx, caminho, &raw); err != nil {
		return nil, err
	}
	return Normalizar(raw), nil
}

// Listar devolve a listagem completa (visão administrativa).
func (s *Service) Listar(ctx context.Context) ([]Intervencao, error) {
	return s.listar(ctx, "/interventions")
}

// ListarMinhas devolve apenas as intervenções do técnico autenticado.
func (s *Service) ListarMinhas(ctx context.Context) ([]Intervencao, error) {
	return s.listar(ctx, "/interventions/my")
}

// ListarPorTecnico devolve as intervenções atribuídas a um técnico
// específico (visão administrativa).
func (s *Service) ListarPorTecnico(ctx context.Context, tecnicoID int64) ([]Intervencao, error) {
	return s.listar(ctx, fmt.Sprintf("/interventions/technician/%d", tecnicoID))
}

// ListarPorPapel escolhe o endpoint pelo papel informado: técnico usa a
// listagem restrita, qualquer outro (inclusive papel desconhecido) tenta
// a completa. Tolera exatamente uma correção quando o endpoint primário
// responde 403. O papel vem de um token decodificado sem verificação,
// então o palpite pode estar errado; uma troca única cobre isso sem laço
// de retry. Se a troca também falhar, propaga o erro original.
func (s *Service) ListarPorPapel(ctx context.Context, papel string) ([]Intervencao, error) {
	primario, alternativo := "/interventions", "/interventions/my"
	if strings.EqualFold(papel, usuario.PapelTecnico) {
		primario, alternativo = alternativo, primario
	}

	itens, err := s.listar(ctx, primario)
	if err == nil {
		return itens, nil
	}
	if !gateway.Proibido(err) {
		return nil, err
	}

	log.Debug().Str("papel", papel).Str("endpoint", primario).Msg("listagem proibida; tentando endpoint alternativo")
	itens, errAlt := s.listar(ctx, alternativo)
	if errAlt != nil {
		return nil, err
	}
	return itens, nil
}

// Buscar devolve uma intervenção pelo id.
func (s *Service) Buscar(ctx context.Context, id int64) (Intervencao, error) {
	var raw json.RawMessage
	if err := s.gw.Get(ctx, fmt.Sprintf("/interventions/%d", id), &raw); err != nil {
		return Intervencao{}, err
	}
	return NormalizarUma(raw), nil
}

// Criar registra uma nova intervenção (operação administrativa).
func (s *Service) Criar(ctx context.Context, entrada Entrada) (Intervencao, error) {
	var raw json.RawMessage
	if err := s.gw.Post(ctx, "/interventions", entrada, &raw); err != nil {
		return Intervencao{}, err
	}
	return NormalizarUma(raw), nil
}

// Atualizar substitui os campos editáveis da intervenção (operação
// administrativa, PUT).
func (s *Service) Atualizar(ctx context.Context, id int64, entrada Entrada) (Intervencao, error) {
	var raw json.RawMessage
	if err := s.gw.Put(ctx, fmt.Sprintf("/interventions/%d", id), entrada, &raw); err != nil {
		return Intervencao{}, err
	}
	return NormalizarUma(raw), nil
}

// Ajustar aplica o PATCH do técnico (status e/ou descrição).
func (s *Service) Ajustar(ctx context.Context, id int64, ajuste Ajuste) (Intervencao, error) {
	var raw json.RawMessage
	if err := s.gw.Patch(ctx, fmt.Sprintf("/interventions/%d", id), ajuste, &raw); err != nil {
		return Intervencao{}, err
	}
	return NormalizarUma(raw), nil
}

// Remover apaga a intervenção informada.
func (s *Service) Remover(ctx context.Context, id int64) error {
	return s.gw.Delete(ctx, fmt.Sprintf("/interventions/%d", id))
}
