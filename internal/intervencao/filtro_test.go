package intervencao

import "testing"

func amostra() []Intervencao {
	maq := int64(10)
	return []Intervencao{
		{ID: 1, Descricao: "Troca de correia", Prioridade: PrioridadeAlta, Status: StatusEmAndamento, MaquinaID: &maq, MaquinaNome: "Prensa A"},
		{ID: 2, Descricao: "Inspeção anual", Prioridade: PrioridadeMedia, Status: StatusCriada, MaquinaNome: "Torno B"},
		{ID: 3, Descricao: "Reparo elétrico", Prioridade: PrioridadeAlta, Status: StatusConcluida, MaquinaNome: "Prensa A"},
		{ID: 4, Descricao: "Lubrificação", Prioridade: PrioridadeBaixa, Status: StatusAtribuida, MaquinaNome: "Fresadora C"},
	}
}

func ids(itens []Intervencao) []int64 {
	out := make([]int64, len(itens))
	for i, it := range itens {
		out[i] = it.ID
	}
	return out
}

func TestAplicarFiltro(t *testing.T) {
	itens := amostra()

	tests := []struct {
		name   string
		filtro Filtro
		want   []int64
	}{
		{"sem filtro devolve tudo", Filtro{}, []int64{1, 2, 3, 4}},
		{"sentinela ALL devolve tudo", Filtro{Status: FiltroTodos, Prioridade: FiltroTodos}, []int64{1, 2, 3, 4}},
		{"busca na descrição", Filtro{Busca: "reparo"}, []int64{3}},
		{"busca no nome da máquina", Filtro{Busca: "prensa"}, []int64{1, 3}},
		{"busca com espaços", Filtro{Busca: "  PRENSA  "}, []int64{1, 3}},
		{"status", Filtro{Status: string(StatusCriada)}, []int64{2}},
		{"prioridade", Filtro{Prioridade: string(PrioridadeAlta)}, []int64{1, 3}},
		{"interseção dos três", Filtro{Busca: "prensa", Status: string(StatusConcluida), Prioridade: string(PrioridadeAlta)}, []int64{3}},
		{"interseção vazia", Filtro{Busca: "prensa", Status: string(StatusCriada)}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Aplicar(itens, tc.filtro))
			if len(got) != len(tc.want) {
				t.Fatalf("expected ids %v got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("expected ids %v got %v", tc.want, got)
				}
			}
		})
	}
}

func TestAplicarColecaoVazia(t *testing.T) {
	if got := Aplicar(nil, Filtro{Busca: "qualquer"}); len(got) != 0 {
		t.Fatalf("expected vazio got %v", got)
	}
}

func TestCalcularResumo(t *testing.T) {
	r := CalcularResumo(amostra())

	if r.Total != 4 {
		t.Fatalf("expected total 4 got %d", r.Total)
	}
	if r.Pendentes != 2 || r.Atribuidas != 1 {
		t.Fatalf("pendentes/atribuídas inesperados: %+v", r)
	}
	if r.EmAndamento != 1 || r.Concluidas != 1 || r.Canceladas != 0 {
		t.Fatalf("contadores de status inesperados: %+v", r)
	}
	if r.PrioridadeAlta != 2 || r.PrioridadeMedia != 1 || r.PrioridadeBaixa != 1 {
		t.Fatalf("contadores de prioridade inesperados: %+v", r)
	}
}

func TestCalcularResumoVazio(t *testing.T) {
	if r := CalcularResumo(nil); r != (Resumo{}) {
		t.Fatalf("expected resumo zerado got %+v", r)
	}
}
