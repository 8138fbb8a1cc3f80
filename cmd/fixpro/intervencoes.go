package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fixpro/console/internal/intervencao"
)

func runIntervencoes(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		return errors.New("uso: fixpro intervencoes list|iniciar|concluir|cancelar|criar|editar|atualizar|remover")
	}

	acao := args[0]
	args = args[1:]

	papel := a.conta.PapelAtual(ctx)
	ctrl := intervencao.NewControlador(a.intervencoes, papel, confirmar)

	switch acao {
	case "list":
		return listarIntervencoes(ctx, ctrl, args)
	case "iniciar", "concluir", "cancelar":
		return transitarIntervencao(ctx, ctrl, acao, args)
	case "criar":
		return criarIntervencao(ctx, a, args)
	case "editar":
		return editarIntervencao(ctx, a, args)
	case "atualizar":
		return atualizarIntervencao(ctx, ctrl, args)
	case "remover":
		return removerIntervencao(ctx, a, args)
	default:
		return fmt.Errorf("ação desconhecida: %s", acao)
	}
}

func listarIntervencoes(ctx context.Context, ctrl *intervencao.Controlador, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		busca      = fs.String("busca", "", "texto livre sobre descrição e máquina")
		status     = fs.String("status", intervencao.FiltroTodos, "CREATED|ASSIGNED|IN_PROGRESS|DONE|CANCELLED|ALL")
		prioridade = fs.String("prioridade", intervencao.FiltroTodos, "LOW|MEDIUM|HIGH|ALL")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := ctrl.Carregar(ctx); err != nil {
		return err
	}
	itens := ctrl.Filtrar(intervencao.Filtro{Busca: *busca, Status: *status, Prioridade: *prioridade})
	if len(itens) == 0 {
		fmt.Println("nenhuma intervenção encontrada")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tPRIORIDADE\tMÁQUINA\tTÉCNICO\tDESCRIÇÃO")
	for _, it := range itens {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			it.ID, it.Status, it.Prioridade, it.MaquinaNome, it.TecnicoNome, it.Descricao)
	}
	return w.Flush()
}

func transitarIntervencao(ctx context.Context, ctrl *intervencao.Controlador, acao string, args []string) error {
	fs := flag.NewFlagSet(acao, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	id := fs.Int64("id", 0, "id da intervenção")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return errors.New("id é obrigatório")
	}

	if err := ctrl.Carregar(ctx); err != nil {
		return err
	}

	switch acao {
	case "iniciar":
		return ctrl.Iniciar(ctx, *id)
	case "concluir":
		return ctrl.Concluir(ctx, *id)
	default:
		return ctrl.Abandonar(ctx, *id)
	}
}

func atualizarIntervencao(ctx context.Context, ctrl *intervencao.Controlador, args []string) error {
	fs := flag.NewFlagSet("atualizar", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		id        = fs.Int64("id", 0, "id da intervenção")
		status    = fs.String("status", "", "novo status")
		descricao = fs.String("descricao", "", "nova descrição")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 || *status == "" {
		return errors.New("id e status são obrigatórios")
	}

	if err := ctrl.Carregar(ctx); err != nil {
		return err
	}
	return ctrl.AtualizacaoLivre(ctx, *id, intervencao.Status(*status), *descricao)
}

func entradaIntervencao(fs *flag.FlagSet) (*string, *string, *string, *int64, *int64) {
	descricao := fs.String("descricao", "", "descrição do problema")
	prioridade := fs.String("prioridade", string(intervencao.PrioridadeMedia), "LOW|MEDIUM|HIGH")
	status := fs.String("status", string(intervencao.StatusCriada), "status")
	maquina := fs.Int64("maquina", 0, "id da máquina; zero deixa sem vínculo")
	tecnico := fs.Int64("tecnico", 0, "id do técnico; zero deixa sem atribuição")
	return descricao, prioridade, status, maquina, tecnico
}

func montarEntrada(descricao, prioridade, status *string, maquina, tecnico *int64) (intervencao.Entrada, error) {
	if *descricao == "" {
		return intervencao.Entrada{}, errors.New("descricao é obrigatória")
	}
	if !intervencao.PrioridadeValida(intervencao.Prioridade(*prioridade)) {
		return intervencao.Entrada{}, fmt.Errorf("prioridade desconhecida: %s", *prioridade)
	}
	if !intervencao.StatusValido(intervencao.Status(*status)) {
		return intervencao.Entrada{}, fmt.Errorf("status desconhecido: %s", *status)
	}

	entrada := intervencao.Entrada{
		Descricao:  *descricao,
		Prioridade: intervencao.Prioridade(*prioridade),
		Status:     intervencao.Status(*status),
	}
	if *maquina > 0 {
		entrada.MaquinaID = maquina
	}
	if *tecnico > 0 {
		entrada.TecnicoID = tecnico
	}
	return entrada, nil
}

func criarIntervencao(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("criar", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	descricao, prioridade, status, maquina, tecnico := entradaIntervencao(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	entrada, err := montarEntrada(descricao, prioridade, status, maquina, tecnico)
	if err != nil {
		return err
	}

	criada, err := a.intervencoes.Criar(ctx, entrada)
	if err != nil {
		return err
	}
	fmt.Printf("intervenção %d criada\n", criada.ID)
	return nil
}

func editarIntervencao(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("editar", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	id := fs.Int64("id", 0, "id da intervenção")
	descricao, prioridade, status, maquina, tecnico := entradaIntervencao(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return errors.New("id é obrigatório")
	}
	entrada, err := montarEntrada(descricao, prioridade, status, maquina, tecnico)
	if err != nil {
		return err
	}

	if _, err := a.intervencoes.Atualizar(ctx, *id, entrada); err != nil {
		return err
	}
	fmt.Printf("intervenção %d atualizada\n", *id)
	return nil
}

func removerIntervencao(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("remover", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	id := fs.Int64("id", 0, "id da intervenção")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return errors.New("id é obrigatório")
	}

	if !confirmar(fmt.Sprintf("Remover a intervenção %d?", *id), "") {
		return intervencao.ErrRecusado
	}
	if err := a.intervencoes.Remover(ctx, *id); err != nil {
		return err
	}
	fmt.Printf("intervenção %d removida\n", *id)
	return nil
}
