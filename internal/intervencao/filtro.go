package intervencao

import "strings"

// FiltroTodos é o sentinela "sem filtro" usado pelas telas.
const FiltroTodos = "ALL"

// Filtro combina busca textual, status e prioridade; os três predicados
// precisam passar (interseção). Valor vazio ou ALL libera o predicado.
type Filtro struct {
	Busca      string
	Status     string
	Prioridade string
}

// Aplicar devolve os itens que passam em todos os predicados ativos. A
// busca textual é substring sem caixa sobre descrição e nome da máquina.
func Aplicar(itens []Intervencao, f Filtro) []Intervencao {
	busca := strings.ToLower(strings.TrimSpace(f.Busca))

	out := make([]Intervencao, 0, len(itens))
	for _, it := range itens {
		if busca != "" &&
			!strings.Contains(strings.ToLower(it.Descricao), busca) &&
			!strings.Contains(strings.ToLower(it.MaquinaNome), busca) {
			continue
		}
		if filtroAtivo(f.Status) && string(it.Status) != f.Status {
			continue
		}
		if filtroAtivo(f.Prioridade) && string(it.Prioridade) != f.Prioridade {
			continue
		}
		out = append(out, it)
	}
	return out
}

func filtroAtivo(valor string) bool {
	return valor != "" && !strings.EqualFold(valor, FiltroTodos)
}
