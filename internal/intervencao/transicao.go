package intervencao

// Máquina de estados guiada: CREATED → ASSIGNED → IN_PROGRESS →
// {DONE, CANCELLED}. A tabela evita requisições que seriam recusadas;
// quem decide de verdade é o backend.

// PodeIniciar informa se o item aceita "iniciar trabalho".
func PodeIniciar(s Status) bool {
	return s == StatusCriada || s == StatusAtribuida
}

// PodeConcluir informa se o item aceita "concluir".
func PodeConcluir(s Status) bool {
	return s == StatusEmAndamento
}

// PodeCancelar informa se o item aceita "abandonar".
func PodeCancelar(s Status) bool {
	return s == StatusEmAndamento
}

// TransicaoPermitida valida o par origem→destino da tabela guiada.
func TransicaoPermitida(de, para Status) bool {
	switch para {
	case StatusEmAndamento:
		return PodeIniciar(de)
	case StatusConcluida:
		return PodeConcluir(de)
	case StatusCancelada:
		return PodeCancelar(de)
	default:
		return false
	}
}

// StatusValido informa se o valor pertence ao conjunto completo.
func StatusValido(s Status) bool {
	for _, candidato := range TodosStatus {
		if s == candidato {
			return true
		}
	}
	return false
}

// PrioridadeValida informa se o valor pertence ao conjunto completo.
func PrioridadeValida(p Prioridade) bool {
	for _, candidata := range TodasPrioridades {
		if p == candidata {
			return true
		}
	}
	return false
}
