package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fixpro/console/internal/cliente"
	"github.com/fixpro/console/internal/intervencao"
	"github.com/fixpro/console/internal/maquina"
	"github.com/fixpro/console/internal/usuario"
)

func runMaquinas(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		return errors.New("uso: fixpro maquinas list|criar|editar|remover")
	}

	switch acao := args[0]; acao {
	case "list":
		maquinas, err := a.maquinas.Listar(ctx)
		if err != nil {
			return err
		}
		if len(maquinas) == 0 {
			fmt.Println("nenhuma máquina cadastrada")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOME\tSÉRIE\tESTADO\tCLIENTE")
		for _, m := range maquinas {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", m.ID, m.Nome, m.NumeroSerie, m.Estado, m.ClienteNome)
		}
		return w.Flush()

	case "criar", "editar":
		fs := flag.NewFlagSet(acao, flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		var (
			id      = fs.Int64("id", 0, "id da máquina (só editar)")
			nome    = fs.String("nome", "", "nome da máquina")
			serie   = fs.String("serie", "", "número de série")
			estado  = fs.String("estado", string(maquina.EstadoAtiva), "ACTIVE|BROKEN|UNDER_REPAIR")
			dono    = fs.Int64("cliente", 0, "id do cliente dono; zero deixa sem vínculo")
		)
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *nome == "" {
			return errors.New("nome é obrigatório")
		}

		entrada := maquina.Entrada{Nome: *nome, NumeroSerie: *serie, Estado: maquina.Estado(*estado)}
		if *dono > 0 {
			entrada.ClienteID = dono
		}

		if acao == "criar" {
			criada, err := a.maquinas.Criar(ctx, entrada)
			if err != nil {
				return err
			}
			fmt.Printf("máquina %d criada\n", criada.ID)
			return nil
		}
		if *id <= 0 {
			return errors.New("id é obrigatório")
		}
		if _, err := a.maquinas.Atualizar(ctx, *id, entrada); err != nil {
			return err
		}
		fmt.Printf("máquina %d atualizada\n", *id)
		return nil

	case "remover":
		return removerCadastro(ctx, args[1:], "máquina", a.maquinas.Remover)

	default:
		return fmt.Errorf("ação desconhecida: %s", acao)
	}
}

func runClientes(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		return errors.New("uso: fixpro clientes list|criar|editar|remover")
	}

	switch acao := args[0]; acao {
	case "list":
		clientes, err := a.clientes.Listar(ctx)
		if err != nil {
			return err
		}
		if len(clientes) == 0 {
			fmt.Println("nenhum cliente cadastrado")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEMPRESA\tENDEREÇO\tTELEFONE")
		for _, c := range clientes {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.ID, c.Empresa, c.Endereco, c.Telefone)
		}
		return w.Flush()

	case "criar", "editar":
		fs := flag.NewFlagSet(acao, flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		var (
			id       = fs.Int64("id", 0, "id do cliente (só editar)")
			empresa  = fs.String("empresa", "", "razão social")
			endereco = fs.String("endereco", "", "endereço")
			telefone = fs.String("telefone", "", "telefone de contato")
		)
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *empresa == "" {
			return errors.New("empresa é obrigatória")
		}

		entrada := cliente.Entrada{Empresa: *empresa, Endereco: *endereco, Telefone: *telefone}
		if acao == "criar" {
			criado, err := a.clientes.Criar(ctx, entrada)
			if err != nil {
				return err
			}
			fmt.Printf("cliente %d criado\n", criado.ID)
			return nil
		}
		if *id <= 0 {
			return errors.New("id é obrigatório")
		}
		if _, err := a.clientes.Atualizar(ctx, *id, entrada); err != nil {
			return err
		}
		fmt.Printf("cliente %d atualizado\n", *id)
		return nil

	case "remover":
		return removerCadastro(ctx, args[1:], "cliente", a.clientes.Remover)

	default:
		return fmt.Errorf("ação desconhecida: %s", acao)
	}
}

func runUsuarios(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		return errors.New("uso: fixpro usuarios list|criar|remover")
	}

	switch acao := args[0]; acao {
	case "list":
		usuarios, err := a.usuarios.Listar(ctx)
		if err != nil {
			return err
		}
		if len(usuarios) == 0 {
			fmt.Println("nenhum usuário cadastrado")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOME\tEMAIL\tPAPEL")
		for _, u := range usuarios {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Nome, u.Email, u.Papel)
		}
		return w.Flush()

	case "criar":
		fs := flag.NewFlagSet("criar", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		var (
			nome  = fs.String("nome", "", "nome completo")
			email = fs.String("email", "", "email de acesso")
			senha = fs.String("senha", "", "senha inicial")
			papel = fs.String("papel", usuario.PapelTecnico, "ADMIN|TECHNICIAN")
		)
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *nome == "" || *email == "" || *senha == "" {
			return errors.New("nome, email e senha são obrigatórios")
		}
		if *papel != usuario.PapelAdmin && *papel != usuario.PapelTecnico {
			return fmt.Errorf("papel desconhecido: %s", *papel)
		}

		criado, err := a.usuarios.Criar(ctx, usuario.Entrada{Nome: *nome, Email: *email, Senha: *senha, Papel: *papel})
		if err != nil {
			return err
		}
		fmt.Printf("usuário %d criado\n", criado.ID)
		return nil

	case "remover":
		return removerCadastro(ctx, args[1:], "usuário", a.usuarios.Remover)

	default:
		return fmt.Errorf("ação desconhecida: %s", acao)
	}
}

// removerCadastro fatora o fluxo comum de remoção com confirmação.
func removerCadastro(ctx context.Context, args []string, nome string, remover func(context.Context, int64) error) error {
	fs := flag.NewFlagSet("remover", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	id := fs.Int64("id", 0, "id do registro")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return errors.New("id é obrigatório")
	}

	if !confirmar(fmt.Sprintf("Remover %s %d?", nome, *id), "") {
		return intervencao.ErrRecusado
	}
	if err := remover(ctx, *id); err != nil {
		return err
	}
	fmt.Printf("%s %d removido\n", nome, *id)
	return nil
}
