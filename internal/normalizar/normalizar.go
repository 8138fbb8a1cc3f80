// Package normalizar converte os formatos heterogêneos que o backend
// devolve em formas uniformes, antes do decode por entidade.
package normalizar

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Colecao aceita tanto uma lista nua quanto o envelope paginado
// {"content": [...]}; qualquer outra forma vira coleção vazia.
func Colecao(raw json.RawMessage) []json.RawMessage {
	if len(raw) == 0 {
		return nil
	}

	var lista []json.RawMessage
	if err := json.Unmarshal(raw, &lista); err == nil {
		return lista
	}

	var envelope struct {
		Content []json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		return envelope.Content
	}

	return nil
}

// Inteiro decodifica identificadores que chegam como número ou string.
// Valores ausentes ou inválidos viram zero em vez de erro; o backend não
// emite id zero, então zero funciona como "ausente".
type Inteiro int64

// UnmarshalJSON implementa a coerção tolerante.
func (i *Inteiro) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		*i = 0
		return nil
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		*i = Inteiro(v)
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*i = Inteiro(int64(f))
		return nil
	}
	*i = 0
	return nil
}
