package sessao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ArquivoStore persiste a sessão em um arquivo JSON com permissão 0600.
type ArquivoStore struct {
	caminho string
}

// NewArquivoStore cria o store apontando para o caminho informado.
func NewArquivoStore(caminho string) (*ArquivoStore, error) {
	if strings.TrimSpace(caminho) == "" {
		return nil, errors.New("sessao: caminho do arquivo vazio")
	}
	return &ArquivoStore{caminho: caminho}, nil
}

// Ler devolve a sessão gravada ou ErrSessaoAusente.
func (a *ArquivoStore) Ler(ctx context.Context) (Sessao, error) {
	dados, err := os.ReadFile(a.caminho)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Sessao{}, ErrSessaoAusente
		}
		return Sessao{}, fmt.Errorf("sessao: ler arquivo: %w", err)
	}

	var s Sessao
	if err := json.Unmarshal(dados, &s); err != nil {
		return Sessao{}, fmt.Errorf("sessao: arquivo corrompido: %w", err)
	}
	if s.Token == "" {
		return Sessao{}, ErrSessaoAusente
	}
	return s, nil
}

// Gravar escreve a sessão via arquivo temporário e rename, para que uma
// leitura concorrente nunca veja estado parcial.
func (a *ArquivoStore) Gravar(ctx context.Context, s Sessao) error {
	if err := os.MkdirAll(filepath.Dir(a.caminho), 0o700); err != nil {
		return fmt.Errorf("sessao: criar diretório: %w", err)
	}

	dados, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("sessao: serializar: %w", err)
	}

	tmp := a.caminho + ".tmp"
	if err := os.WriteFile(tmp, dados, 0o600); err != nil {
		return fmt.Errorf("sessao: gravar arquivo: %w", err)
	}
	if err := os.Rename(tmp, a.caminho); err != nil {
		return fmt.Errorf("sessao: efetivar gravação: %w", err)
	}
	return nil
}

// Limpar remove o arquivo; ausência não é erro.
func (a *ArquivoStore) Limpar(ctx context.Context) error {
	if err := os.Remove(a.caminho); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("sessao: limpar: %w", err)
	}
	return nil
}
