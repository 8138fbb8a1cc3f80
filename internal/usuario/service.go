package usuario

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fixpro/console/internal/gateway"
)

// Service consulta e mantém usuários via API.
type Service struct {
	gw *gateway.Gateway
}

// NewService cria o serviço sobre o gateway autenticado.
func NewService(gw *gateway.Gateway) *Service {
	return &Service{gw: gw}
}

// Listar devolve todos os usuários.
func (s *Service) Listar(ctx context.Context) ([]Usuario, error) {
	var raw json.RawMessage
	if err := s.gw.Get(ctx, "/users", &raw); err != nil {
		return nil, err
	}
	return Normalizar(raw), nil
}

// Tecnicos filtra os usuários com papel TECHNICIAN, para listas de
// atribuição.
func (s *Service) Tecnicos(ctx context.Context) ([]Usuario, error) {
	todos, err := s.Listar(ctx)
	if err != nil {
		return nil, err
	}
	tecnicos := make([]Usuario, 0, len(todos))
	for _, u := range todos {
		if u.Papel == PapelTecnico {
			tecnicos = append(tecnicos, u)
		}
	}
	return tecnicos, nil
}

// Criar cadastra um novo usuário.
func (s *Service) Criar(ctx context.Context, entrada Entrada) (Usuario, error) {
	var raw json.RawMessage
	if err := s.gw.Post(ctx, "/users", entrada, &raw); err != nil {
		return Usuario{}, err
	}
	return NormalizarUm(raw), nil
}

// Remover apaga o usuário informado. Não existe edição: a API não expõe
// PUT para usuários.
func (s *Service) Remover(ctx context.Context, id int64) error {
	return s.gw.Delete(ctx, fmt.Sprintf("/users/%d", id))
}
