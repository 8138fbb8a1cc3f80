package intervencao

import (
	"context"
	"errors"
	"testing"
)

type stubAPI struct {
	listas   [][]Intervencao // respostas sucessivas de ListarPorPapel
	listaErr []error
	chamadas int

	ajustes    []Ajuste
	ajusteIDs  []int64
	ajusteErr  error
	ajusteResp Intervencao
}

func (s *stubAPI) ListarPorPapel(ctx context.Context, papel string) ([]Intervencao, error) {
	i := s.chamadas
	s.chamadas++
	if i < len(s.listaErr) && s.listaErr[i] != nil {
		return nil, s.listaErr[i]
	}
	if i >= len(s.listas) {
		i = len(s.listas) - 1
	}
	return s.listas[i], nil
}

func (s *stubAPI) Ajustar(ctx context.Context, id int64, ajuste Ajuste) (Intervencao, error) {
	s.ajusteIDs = append(s.ajusteIDs, id)
	s.ajustes = append(s.ajustes, ajuste)
	if s.ajusteErr != nil {
		return Intervencao{}, s.ajusteErr
	}
	return s.ajusteResp, nil
}

func base() []Intervencao {
	return []Intervencao{
		{ID: 1, Descricao: "Troca de correia", Status: StatusCriada, Prioridade: PrioridadeAlta},
		{ID: 2, Descricao: "Inspeção", Status: StatusEmAndamento, Prioridade: PrioridadeMedia},
	}
}

func TestControladorConfirmacaoRecusada(t *testing.T) {
	api := &stubAPI{listas: [][]Intervencao{base()}}
	ctrl := NewControlador(api, "TECHNICIAN", func(titulo, texto string) bool { return false })

	if err := ctrl.Carregar(context.Background()); err != nil {
		t.Fatalf("carregar: %v", err)
	}

	err := ctrl.Iniciar(context.Background(), 1)
	if !errors.Is(err, ErrRecusado) {
		t.Fatalf("expected ErrRecusado got %v", err)
	}
	if len(api.ajustes) != 0 {
		t.Fatalf("expected nenhuma requisição, got %d", len(api.ajustes))
	}
	if ctrl.Itens()[0].Status != StatusCriada {
		t.Fatalf("expected estado intacto got %s", ctrl.Itens()[0].Status)
	}
}

func TestControladorIniciarComRecarga(t *testing.T) {
	depois := base()
	depois[0].Status = StatusEmAndamento
	depois[0].TecnicoNome = "João"

	api := &stubAPI{listas: [][]Intervencao{base(), depois}}
	ctrl := NewControlador(api, "TECHNICIAN", func(titulo, texto string) bool { return true })

	if err := ctrl.Carregar(context.Background()); err != nil {
		t.Fatalf("carregar: %v", err)
	}
	if err := ctrl.Iniciar(context.Background(), 1); err != nil {
		t.Fatalf("iniciar: %v", err)
	}

	if len(api.ajustes) != 1 || api.ajusteIDs[0] != 1 {
		t.Fatalf("ajustes inesperados: ids %v", api.ajusteIDs)
	}
	if api.ajustes[0].Status == nil || *api.ajustes[0].Status != StatusEmAndamento {
		t.Fatalf("corpo do ajuste inesperado: %+v", api.ajustes[0])
	}
	if api.ajustes[0].Descricao != nil {
		t.Fatal("expected descrição ausente no ajuste guiado")
	}

	// a recarga de reconciliação traz os campos desnormalizados
	if got := ctrl.Itens()[0]; got.Status != StatusEmAndamento || got.TecnicoNome != "João" {
		t.Fatalf("item após recarga inesperado: %+v", got)
	}
}

func TestControladorPatchOtimistaSobreviveARecargaFalha(t *testing.T) {
	api := &stubAPI{
		listas:   [][]Intervencao{base()},
		listaErr: []error{nil, errors.New("rede caiu")},
	}
	ctrl := NewControlador(api, "TECHNICIAN", nil)

	if err := ctrl.Carregar(context.Background()); err != nil {
		t.Fatalf("carregar: %v", err)
	}
	if err := ctrl.Concluir(context.Background(), 2); err != nil {
		t.Fatalf("concluir: %v", err)
	}

	// o backend confirmou; a falha da recarga não desfaz o patch local
	if got := ctrl.Itens()[1].Status; got != StatusConcluida {
		t.Fatalf("expected DONE got %s", got)
	}
}

func TestControladorTransicaoInvalida(t *testing.T) {
	api := &stubAPI{listas: [][]Intervencao{base()}}
	ctrl := NewControlador(api, "ADMIN", nil)

	if err := ctrl.Carregar(context.Background()); err != nil {
		t.Fatalf("carregar: %v", err)
	}

	// id 1 está em CREATED; concluir exige IN_PROGRESS
	err := ctrl.Concluir(context.Background(), 1)
	if !errors.Is(err, ErrTransicaoInvalida) {
		t.Fatalf("expected ErrTransicaoInvalida got %v", err)
	}
	if len(api.ajustes) != 0 {
		t.Fatalf("expected nenhuma requisição, got %d", len(api.ajustes))
	}
}

func TestControladorIdDesconhecido(t *testing.T) {
	api := &stubAPI{listas: [][]Intervencao{base()}}
	ctrl := NewControlador(api, "ADMIN", nil)

	if err := ctrl.Carregar(context.Background()); err != nil {
		t.Fatalf("carregar: %v", err)
	}
	if err := ctrl.Iniciar(context.Background(), 99); !errors.Is(err, ErrNaoEncontrada) {
		t.Fatalf("expected ErrNaoEncontrada got %v", err)
	}
}

func TestControladorErroDoBackendNaoAplicaPatch(t *testing.T) {
	api := &stubAPI{
		listas:    [][]Intervencao{base()},
		ajusteErr: errors.New("500 do backend"),
	}
	ctrl := NewControlador(api, "TECHNICIAN", nil)

	if err := ctrl.Carregar(context.Background()); err != nil {
		t.Fatalf("carregar: %v", err)
	}
	if err := ctrl.Iniciar(context.Background(), 1); err == nil {
		t.Fatal("expected erro do backend")
	}
	if ctrl.Itens()[0].Status != StatusCriada {
		t.Fatalf("expected estado intacto got %s", ctrl.Itens()[0].Status)
	}
	if api.chamadas != 1 {
		t.Fatalf("expected nenhuma recarga, got %d chamadas de listagem", api.chamadas)
	}
}

func TestControladorAtualizacaoLivre(t *testing.T) {
	api := &stubAPI{listas: [][]Intervencao{base()}, listaErr: []error{nil, errors.New("sem recarga")}}
	ctrl := NewControlador(api, "TECHNICIAN", nil)

	if err := ctrl.Carregar(context.Background()); err != nil {
		t.Fatalf("carregar: %v", err)
	}

	// fora da tabela guiada: DONE direto a partir de CREATED
	if err := ctrl.AtualizacaoLivre(context.Background(), 1, StatusConcluida, "ajuste manual"); err != nil {
		t.Fatalf("atualização livre: %v", err)
	}

	aj := api.ajustes[0]
	if aj.Status == nil || *aj.Status != StatusConcluida || aj.Descricao == nil || *aj.Descricao != "ajuste manual" {
		t.Fatalf("corpo inesperado: %+v", aj)
	}
	if got := ctrl.Itens()[0]; got.Status != StatusConcluida || got.Descricao != "ajuste manual" {
		t.Fatalf("espelho inesperado: %+v", got)
	}

	if err := ctrl.AtualizacaoLivre(context.Background(), 1, Status("PAUSED"), "x"); !errors.Is(err, ErrTransicaoInvalida) {
		t.Fatalf("expected ErrTransicaoInvalida para status desconhecido, got %v", err)
	}
}
