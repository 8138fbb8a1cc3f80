// Package maquina cobre o cadastro de máquinas e seu estado operacional.
package maquina

import (
	"encoding/json"

	"github.com/fixpro/console/internal/normalizar"
)

// Estado operacional da máquina.
type Estado string

const (
	EstadoAtiva    Estado = "ACTIVE"
	EstadoQuebrada Estado = "BROKEN"
	EstadoEmReparo Estado = "UNDER_REPAIR"
)

// TodosEstados na ordem exibida nos formulários.
var TodosEstados = []Estado{EstadoAtiva, EstadoQuebrada, EstadoEmReparo}

// Maquina é o registro normalizado; o nome do cliente chega
// desnormalizado do backend.
type Maquina struct {
	ID          int64  `json:"id"`
	Nome        string `json:"name"`
	NumeroSerie string `json:"serialNumber"`
	Estado      Estado `json:"status"`
	ClienteID   *int64 `json:"clientId,omitempty"`
	ClienteNome string `json:"clientName,omitempty"`
}

// Entrada é o corpo de criação/edição aceito pelo backend. ClienteID nil
// é enviado como null, como a tela web faz.
type Entrada struct {
	Nome        string `json:"name"`
	NumeroSerie string `json:"serialNumber"`
	Estado      Estado `json:"status"`
	ClienteID   *int64 `json:"clientId"`
}

type formaBruta struct {
	ID           normalizar.Inteiro  `json:"id"`
	Name         string              `json:"name"`
	SerialNumber string              `json:"serialNumber"`
	Status       string              `json:"status"`
	ClientID     *normalizar.Inteiro `json:"clientId"`
	ClientName   string              `json:"clientName"`
}

// Normalizar converte o payload bruto (lista nua ou envelope paginado)
// em coleção uniforme, com ACTIVE como estado default.
func Normalizar(raw json.RawMessage) []Maquina {
	itens := normalizar.Colecao(raw)
	out := make([]Maquina, 0, len(itens))
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
func NormalizarUma(raw json.RawMessage) Maquina {
	var bruto formaBruta
	if err := json.Unmarshal(raw, &bruto); err != nil {
		return Maquina{}
	}
	return deBruto(bruto)
}

func deBruto(b formaBruta) Maquina {
	m := Maquina{
		ID:          int64(b.ID),
		Nome:        b.Name,
		NumeroSerie: b.SerialNumber,
		Estado:      Estado(b.Status),
		ClienteNome: b.ClientName,
	}
	if m.Estado == "" {
		m.Estado = EstadoAtiva
	}
	if b.ClientID != nil && *b.ClientID != 0 {
		id := int64(*b.ClientID)
		m.ClienteID = &id
	}
	return m
}
