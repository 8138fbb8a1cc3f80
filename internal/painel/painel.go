// Package painel monta os dados agregados da tela inicial: contadores
// de intervenções, total de máquinas e a lista de técnicos.
package painel

import (
	"context"
	"sync"

	"github.com/fixpro/console/internal/intervencao"
	"github.com/fixpro/console/internal/usuario"
)

// FonteIntervencoes é o recorte do serviço de intervenções usado aqui.
type FonteIntervencoes interface {
	ListarPorPapel(ctx context.Context, papel string) ([]intervencao.Intervencao, error)
}

// FonteMaquinas devolve quantas máquinas existem.
type FonteMaquinas interface {
	Contar(ctx context.Context) (int, error)
}

// FonteTecnicos devolve os usuários com papel de técnico.
type FonteTecnicos interface {
	Tecnicos(ctx context.Context) ([]usuario.Usuario, error)
}

// Dados é o resultado agregado exibido no painel.
type Dados struct {
	Resumo        intervencao.Resumo
	Intervencoes  []intervencao.Intervencao
	TotalMaquinas int
	Tecnicos      []usuario.Usuario
}

// Carregador reúne as três fontes do painel.
type Carregador struct {
	intervencoes FonteIntervencoes
	maquinas     FonteMaquinas
	tecnicos     FonteTecnicos
}

// NewCarregador cria o carregador. maquinas e tecnicos podem ser nil
// para o painel do técnico, que só mostra as próprias intervenções.
func NewCarregador(i FonteIntervencoes, m FonteMaquinas, t FonteTecnicos) *Carregador {
	return &Carregador{intervencoes: i, maquinas: m, tecnicos: t}
}

// Carregar dispara as consultas em paralelo e junta os resultados. O
// primeiro erro encontrado é devolvido; as demais consultas terminam de
// qualquer forma antes do retorno.
func (c *Carregador) Carregar(ctx context.Context, papel string) (Dados, error) {
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		dados Dados
		prim  error
	)

	falhar := func(err error) {
		mu.Lock()
		if prim == nil {
			prim = err
		}
		mu.Unlock()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		itens, err := c.intervencoes.ListarPorPapel(ctx, papel)
		if err != nil {
			falhar(err)
			return
		}
		dados.Intervencoes = itens
		dados.Resumo = intervencao.CalcularResumo(itens)
	}()

	if c.maquinas != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			total, err := c.maquinas.Contar(ctx)
			if err != nil {
				falhar(err)
				return
			}
			dados.TotalMaquinas = total
		}()
	}

	if c.tecnicos != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tecs, err := c.tecnicos.Tecnicos(ctx)
			if err != nil {
				falhar(err)
				return
			}
			dados.Tecnicos = tecs
		}()
	}

	wg.Wait()
	if prim != nil {
		return Dados{}, prim
	}
	return dados, nil
}
