package intervencao

// Resumo agrega os contadores exibidos nos painéis: o administrativo usa
// pendentes/andamento/concluídas e a quebra por prioridade; o do técnico
// usa também as atribuídas.
type Resumo struct {
	Total           int
	Pendentes       int // CREATED + ASSIGNED
	Atribuidas      int
	EmAndamento     int
	Concluidas      int
	Canceladas      int
	PrioridadeAlta  int
	PrioridadeMedia int
	PrioridadeBaixa int
}

// CalcularResumo percorre a coleção uma vez e conta tudo.
func CalcularResumo(itens []Intervencao) Resumo {
	r := Resumo{Total: len(itens)}
	for _, it := range itens {
		switch it.Status {
		case StatusCriada:
			r.Pendentes++
		case StatusAtribuida:
			r.Pendentes++
			r.Atribuidas++
		case StatusEmAndamento:
			r.EmAndamento++
		case StatusConcluida:
			r.Concluidas++
		case StatusCancelada:
			r.Canceladas++
		}

		switch it.Prioridade {
		case PrioridadeAlta:
			r.PrioridadeAlta++
		case PrioridadeMedia:
			r.PrioridadeMedia++
		case PrioridadeBaixa:
			r.PrioridadeBaixa++
		}
	}
	return r
}
