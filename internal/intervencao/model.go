// Package intervencao implementa o ciclo de vida das intervenções de
// manutenção: normalização dos payloads, busca por papel, a máquina de
// estados guiada e o filtro em memória.
package intervencao

// Status do ciclo de vida de uma intervenção, como o backend os grava.
type Status string

const (
	StatusCriada      Status = "CREATED"
	StatusAtribuida   Status = "ASSIGNED"
	StatusEmAndamento Status = "IN_PROGRESS"
	StatusConcluida   Status = "DONE"
	StatusCancelada   Status = "CANCELLED"
)

// TodosStatus na ordem do fluxo; é o conjunto exposto ao técnico.
var TodosStatus = []Status{StatusCriada, StatusAtribuida, StatusEmAndamento, StatusConcluida, StatusCancelada}

// StatusReduzidos é a projeção simplificada usada nas telas
// administrativas (sem ASSIGNED e CANCELLED).
var StatusReduzidos = []Status{StatusCriada, StatusEmAndamento, StatusConcluida}

// Prioridade da intervenção; imutável depois da criação.
type Prioridade string

const (
	PrioridadeBaixa Prioridade = "LOW"
	PrioridadeMedia Prioridade = "MEDIUM"
	PrioridadeAlta  Prioridade = "HIGH"
)

// TodasPrioridades na ordem exibida nos formulários.
var TodasPrioridades = []Prioridade{PrioridadeBaixa, PrioridadeMedia, PrioridadeAlta}

// Intervencao é o registro normalizado mantido em memória. Os nomes de
// máquina e técnico chegam desnormalizados do backend; CriadaEm é tratado
// como opaco porque o backend serializa LocalDateTime sem fuso.
type Intervencao struct {
	ID          int64      `json:"id"`
	Descricao   string     `json:"description"`
	Prioridade  Prioridade `json:"priority"`
	Status      Status     `json:"status"`
	MaquinaID   *int64     `json:"machineId,omitempty"`
	MaquinaNome string     `json:"machineName,omitempty"`
	TecnicoID   *int64     `json:"technicianId,omitempty"`
	TecnicoNome string     `json:"technicianName,omitempty"`
	CriadaEm    string     `json:"createdAt,omitempty"`
}

// Entrada é o corpo de criação/edição administrativa. Os ids nil vão como
// null, como a tela web envia.
type Entrada struct {
	Descricao  string     `json:"description"`
	Prioridade Prioridade `json:"priority"`
	Status     Status     `json:"status"`
	MaquinaID  *int64     `json:"machineId"`
	TecnicoID  *int64     `json:"technicianId"`
}

// Ajuste é o corpo do PATCH do técnico: status e/ou descrição.
type Ajuste struct {
	Status    *Status `json:"status,omitempty"`
	Descricao *string `json:"description,omitempty"`
}
