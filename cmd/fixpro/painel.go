package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fixpro/console/internal/painel"
	"github.com/fixpro/console/internal/usuario"
)

func runPainel(ctx context.Context, a *app) error {
	papel := a.conta.PapelAtual(ctx)

	var carregador *painel.Carregador
	if strings.EqualFold(papel, usuario.PapelTecnico) {
		// técnico só enxerga as próprias intervenções
		carregador = painel.NewCarregador(a.intervencoes, nil, nil)
	} else {
		carregador = painel.NewCarregador(a.intervencoes, a.maquinas, a.usuarios)
	}

	dados, err := carregador.Carregar(ctx, papel)
	if err != nil {
		return err
	}

	r := dados.Resumo
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "intervenções\t%d\n", r.Total)
	fmt.Fprintf(w, "  pendentes\t%d\n", r.Pendentes)
	fmt.Fprintf(w, "  em andamento\t%d\n", r.EmAndamento)
	fmt.Fprintf(w, "  concluídas\t%d\n", r.Concluidas)
	fmt.Fprintf(w, "  canceladas\t%d\n", r.Canceladas)
	fmt.Fprintf(w, "prioridade alta\t%d\n", r.PrioridadeAlta)
	if !strings.EqualFold(papel, usuario.PapelTecnico) {
		fmt.Fprintf(w, "máquinas\t%d\n", dados.TotalMaquinas)
		fmt.Fprintf(w, "técnicos\t%d\n", len(dados.Tecnicos))
	}
	return w.Flush()
}
