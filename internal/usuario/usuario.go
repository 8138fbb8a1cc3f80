// Package usuario cobre o cadastro de usuários do sistema (ADMIN e
// TECHNICIAN). O papel é definido na criação e não é editável por aqui.
package usuario

import (
	"encoding/json"

	"github.com/fixpro/console/internal/normalizar"
)

const (
	// PapelAdmin administra cadastros e intervenções.
	PapelAdmin = "ADMIN"
	// PapelTecnico executa intervenções atribuídas.
	PapelTecnico = "TECHNICIAN"
)

// Usuario é o registro normalizado.
type Usuario struct {
	ID    int64  `json:"id"`
	Nome  string `json:"name"`
	Email string `json:"email"`
	Papel string `json:"role"`
}

// Entrada é o corpo de criação aceito pelo backend.
type Entrada struct {
	Nome  string `json:"name"`
	Email string `json:"email"`
	Senha string `json:"password"`
	Papel string `json:"role"`
}

type formaBruta struct {
	ID    normalizar.Inteiro `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
	Role  string             `json:"role"`
}

// Normalizar converte o payload bruto (lista nua ou envelope paginado)
// em coleção uniforme.
func Normalizar(raw json.RawMessage) []Usuario {
	itens := normalizar.Colecao(raw)
	out := make([]Usuario, 0, len(itens))
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
func NormalizarUm(raw json.RawMessage) Usuario {
	var bruto formaBruta
	if err := json.Unmarshal(raw, &bruto); err != nil {
		return Usuario{}
	}
	return deBruto(bruto)
}

func deBruto(b formaBruta) Usuario {
	u := Usuario{ID: int64(b.ID), Nome: b.Name, Email: b.Email, Papel: b.Role}
	if u.Papel == "" {
		u.Papel = PapelTecnico
	}
	return u
}
