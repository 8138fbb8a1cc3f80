package maquina

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fixpro/console/internal/gateway"
)

// Service consulta e mantém máquinas via API.
type Service struct {
	gw *gateway.Gateway
}

// NewService cria o serviço sobre o gateway autenticado.
func NewService(gw *gateway.Gateway) *Service {
	return &Service{gw: gw}
}

// Listar devolve todas as máquinas.
func (s *Service) Listar(ctx context.Context) ([]Maquina, error) {
	var raw json.RawMessage
	if err := s.gw.Get(ctx, "/machines", &raw); err != nil {
		return nil, err
	}
	return Normalizar(raw), nil
}

// Contar devolve o total de máquinas cadastradas. A API não tem
// endpoint de contagem, então conta a listagem.
func (s *Service) Contar(ctx context.Context) (int, error) {
	maquinas, err := s.Listar(ctx)
	if err != nil {
		return 0, err
	}
	return len(maquinas), nil
}

// Criar cadastra uma nova máquina.
func (s *Service) Criar(ctx context.Context, entrada Entrada) (Maquina, error) {
	var raw json.RawMessage
	if err := s.gw.Post(ctx, "/machines", entrada, &raw); err != nil {
		return Maquina{}, err
	}
	return NormalizarUma(raw), nil
}

// Atualizar edita a máquina informada.
func (s *Service) Atualizar(ctx context.Context, id int64, entrada Entrada) (Maquina, error) {
	var raw json.RawMessage
	if err := s.gw.Put(ctx, fmt.Sprintf("/machines/%d", id), entrada, &raw); err != nil {
		return Maquina{}, err
	}
	return NormalizarUma(raw), nil
}

// Remover apaga a máquina informada.
func (s *Service) Remover(ctx context.Context, id int64) error {
	return s.gw.Delete(ctx, fmt.Sprintf("/machines/%d", id))
}
