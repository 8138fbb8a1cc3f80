package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fixpro/console/internal/conta"
	"github.com/fixpro/console/internal/sessao"
)

func runLogin(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		email = fs.String("email", "", "email do usuário")
		senha = fs.String("senha", "", "senha; vazio pergunta no terminal")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("email é obrigatório")
	}

	if *senha == "" {
		fmt.Print("senha: ")
		linha, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("ler senha: %w", err)
		}
		*senha = strings.TrimSpace(linha)
	}

	ses, err := a.conta.Entrar(ctx, conta.Credenciais{Email: *email, Senha: *senha})
	if err != nil {
		return err
	}

	fmt.Printf("autenticado como %s (%s)\n", *email, ses.Papel)
	return nil
}

func runLogout(ctx context.Context, a *app) error {
	if err := a.conta.Sair(ctx); err != nil {
		return err
	}
	fmt.Println("sessão encerrada")
	return nil
}

func runWhoami(ctx context.Context, a *app) error {
	ses, err := a.conta.Atual(ctx)
	if errors.Is(err, sessao.ErrSessaoAusente) {
		fmt.Println("sem sessão; use 'fixpro login'")
		return nil
	}
	if err != nil {
		return err
	}

	papel := a.conta.PapelAtual(ctx)
	if ses.UsuarioID != nil {
		fmt.Printf("papel %s, usuário %d\n", papel, *ses.UsuarioID)
	} else {
		fmt.Printf("papel %s\n", papel)
	}
	return nil
}
