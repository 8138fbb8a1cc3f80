package intervencao

import (
	"encoding/json"

	"github.com/fixpro/console/internal/normalizar"
)

// formaBruta cobre as duas formas em que o backend devolve relações:
// campos achatados (machineId/machineName) ou objetos aninhados.
type formaBruta struct {
	ID          normalizar.Inteiro  `json:"id"`
	Description string              `json:"description"`
	Priority    string              `json:"priority"`
	Status      string              `json:"status"`
	MachineID   *normalizar.Inteiro `json:"machineId"`
	MachineName string              `json:"machineName"`
	Machine     *struct {
		ID   normalizar.Inteiro `json:"id"`
		Name string             `json:"name"`
	} `json:"machine"`
	TechnicianID   *normalizar.Inteiro `json:"technicianId"`
	TechnicianName string              `json:"technicianName"`
	Technician     *struct {
		ID   normalizar.Inteiro `json:"id"`
		Name string             `json:"name"`
	} `json:"technician"`
	CreatedAt string `json:"createdAt"`
}

// Normalizar converte o payload bruto (lista nua ou envelope paginado)
// em coleção uniforme, preenchendo MEDIUM e CREATED quando prioridade ou
// status faltam. Normalizar o resultado de uma normalização devolve a
// mesma coleção.
func Normalizar(raw json.RawMessage) []Intervencao {
	itens := normalizar.Colecao(raw)
	out := make([]Intervencao, 0, len(itens))
	for _, item := range itens {
		var bruto formaBruta
		if err := json.Unmarshal(item, &bruto); err != nil {
			continue
		}
		out = append(out, deBruto(bruto))
	}
	return out
}

// NormalizarUma trata respostas com um único registro.
func NormalizarUma(raw json.RawMessage) Intervencao {
	var bruto formaBruta
	if err := json.Unmarshal(raw, &bruto); err != nil {
		return Intervencao{}
	}
	return deBruto(bruto)
}

func deBruto(b formaBruta) Intervencao {
	it := Intervencao{
		ID:          int64(b.ID),
		Descricao:   b.Description,
		Prioridade:  Prioridade(b.Priority),
		Status:      Status(b.Status),
		MaquinaNome: b.MachineName,
		TecnicoNome: b.TechnicianName,
		CriadaEm:    b.CreatedAt,
	}

	if it.Prioridade == "" {
		it.Prioridade = PrioridadeMedia
	}
	if it.Status == "" {
		it.Status = StatusCriada
	}

	if b.MachineID != nil && *b.MachineID != 0 {
		id := int64(*b.MachineID)
		it.MaquinaID = &id
	} else if b.Machine != nil && b.Machine.ID != 0 {
		id := int64(b.Machine.ID)
		it.MaquinaID = &id
	}
	if it.MaquinaNome == "" && b.Machine != nil {
		it.MaquinaNome = b.Machine.Name
	}

	if b.TechnicianID != nil && *b.TechnicianID != 0 {
		id := int64(*b.TechnicianID)
		it.TecnicoID = &id
	} else if b.Technician != nil && b.Technician.ID != 0 {
		id := int64(b.Technician.ID)
		it.TecnicoID = &id
	}
	if it.TecnicoNome == "" && b.Technician != nil {
		it.TecnicoNome = b.Technician.Name
	}

	return it
}
