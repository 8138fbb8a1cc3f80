package normalizar

import (
	"encoding/json"
	"testing"
)

func TestColecao(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		itens int
	}{
		{"lista nua", `[{"id":1},{"id":2}]`, 2},
		{"envelope paginado", `{"content":[{"id":1}],"totalPages":3}`, 1},
		{"envelope vazio", `{"content":[]}`, 0},
		{"objeto sem content", `{"message":"oi"}`, 0},
		{"escalar", `42`, 0},
		{"nulo", `null`, 0},
		{"vazio", ``, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Colecao(json.RawMessage(tc.raw))
			if len(got) != tc.itens {
				t.Fatalf("expected %d itens got %d", tc.itens, len(got))
			}
		})
	}
}

func TestInteiro(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int64
	}{
		{"número", `12`, 12},
		{"string", `"34"`, 34},
		{"float", `7.0`, 7},
		{"null", `null`, 0},
		{"string vazia", `""`, 0},
		{"lixo", `"abc"`, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var i Inteiro
			if err := json.Unmarshal([]byte(tc.raw), &i); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if int64(i) != tc.want {
				t.Fatalf("expected %d got %d", tc.want, int64(i))
			}
		})
	}
}
