package cliente

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fixpro/console/internal/gateway"
)

// Service consulta e mantém clientes via API.
type Service struct {
	gw *gateway.Gateway
}

// NewService cria o serviço sobre o gateway autenticado.
func NewService(gw *gateway.Gateway) *Service {
	return &Service{gw: gw}
}

// Listar devolve todos os clientes.
func (s *Service) Listar(ctx context.Context) ([]Cliente, error) {
	var raw json.RawMessage
	if err := s.gw.Get(ctx, "/clients", &raw); err != nil {
		return nil, err
	}
	return Normalizar(raw), nil
}

// Criar cadastra um novo cliente.
func (s *Service) Criar(ctx context.Context, entrada Entrada) (Cliente, error) {
	var raw json.RawMessage
	if err := s.gw.Post(ctx, "/clients", entrada, &raw); err != nil {
		return Cliente{}, err
	}
	return NormalizarUm(raw), nil
}

// Atualizar edita o cliente informado.
func (s *Service) Atualizar(ctx context.Context, id int64, entrada Entrada) (Cliente, error) {
	var raw json.RawMessage
	if err := s.gw.Put(ctx, fmt.Sprintf("/clients/%d", id), entrada, &raw); err != nil {
		return Cliente{}, err
	}
	return NormalizarUm(raw), nil
}

// Remover apaga o cliente informado.
func (s *Service) Remover(ctx context.Context, id int64) error {
	return s.gw.Delete(ctx, fmt.Sprintf("/clients/%d", id))
}
