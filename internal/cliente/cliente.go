// Package cliente cobre o cadastro das empresas donas das máquinas.
// Registro puro, sem estado.
package cliente

import (
	"encoding/json"

	"github.com/fixpro/console/internal/normalizar"
)

// Cliente é o registro normalizado.
type Cliente struct {
	ID       int64  `json:"id"`
	Empresa  string `json:"companyName"`
	Endereco string `json:"address"`
	Telefone string `json:"phone"`
}

// Entrada é o corpo de criação/edição aceito pelo backend.
type Entrada struct {
	Empresa  string `json:"companyName"`
	Endereco string `json:"address"`
	Telefone string `json:"phone"`
}

type formaBruta struct {
	ID          normalizar.Inteiro `json:"id"`
	CompanyName string             `json:"companyName"`
	Address     string             `json:"address"`
	Phone       string             `json:"phone"`
}

// Normalizar converte o payload bruto em coleção uniforme.
func Normalizar(raw json.RawMessage) []Cliente {
	itens := normalizar.Colecao(raw)
	out := make([]Cliente, 0, len(itens))
	for _, item := range itens {
		var bruto formaBruta
		if err := json.Unmarshal(item, &bruto); err != nil {
			continue
		}
		out = append(out, deBruto(bruto))
	}
	return out
}

// NormalizarUm trata respostas com um único registro.
func NormalizarUm(raw json.RawMessage) Cliente {
	var bruto formaBruta
	if err := json.Unmarshal(raw, &bruto); err != nil {
		return Cliente{}
	}
	return deBruto(bruto)
}

func deBruto(b formaBruta) Cliente {
	return Cliente{ID: int64(b.ID), Empresa: b.CompanyName, Endereco: b.Address, Telefone: b.Phone}
}
