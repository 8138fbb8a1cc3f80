package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fixpro/console/internal/cliente"
	"github.com/fixpro/console/internal/config"
	"github.com/fixpro/console/internal/conta"
	"github.com/fixpro/console/internal/gateway"
	"github.com/fixpro/console/internal/intervencao"
	"github.com/fixpro/console/internal/maquina"
	"github.com/fixpro/console/internal/sessao"
	"github.com/fixpro/console/internal/usuario"
)

// app agrupa os serviços montados no bootstrap.
type app struct {
	conta        *conta.Service
	intervencoes *intervencao.Service
	maquinas     *maquina.Service
	clientes     *cliente.Service
	usuarios     *usuario.Service
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuração inválida")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	store, err := montarStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("não foi possível montar o store de sessão")
	}

	gw, err := gateway.New(gateway.Config{
		BaseURL:           cfg.APIBase,
		Timeout:           cfg.Timeout,
		Sessoes:           store,
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
		AoExpirar: func() {
			fmt.Fprintln(os.Stderr, "sessão expirada; entre de novo com 'fixpro login'")
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("não foi possível montar o gateway")
	}

	a := &app{
		conta:        conta.NewService(gw, store),
		intervencoes: intervencao.NewService(gw),
		maquinas:     maquina.NewService(gw),
		clientes:     cliente.NewService(gw),
		usuarios:     usuario.NewService(gw),
	}

	ctx := context.Background()
	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "login":
		err = runLogin(ctx, a, args)
	case "logout":
		err = runLogout(ctx, a)
	case "whoami":
		err = runWhoami(ctx, a)
	case "painel":
		err = runPainel(ctx, a)
	case "intervencoes":
		err = runIntervencoes(ctx, a, args)
	case "maquinas":
		err = runMaquinas(ctx, a, args)
	case "clientes":
		err = runClientes(ctx, a, args)
	case "usuarios":
		err = runUsuarios(ctx, a, args)
	default:
		usage()
		os.Exit(1)
	}

	switch {
	case err == nil:
	case errors.Is(err, intervencao.ErrRecusado):
		fmt.Println("operação cancelada")
	case errors.Is(err, gateway.ErrSessaoExpirada):
		os.Exit(1)
	default:
		log.Fatal().Err(err).Str("comando", cmd).Msg("comando falhou")
	}
}

func montarStore(cfg *config.Config) (sessao.Store, error) {
	switch cfg.SessaoBackend {
	case config.BackendRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("REDIS_URL: %w", err)
		}
		return sessao.NewRedisStore(redis.NewClient(opts), ""), nil
	default:
		return sessao.NewArquivoStore(cfg.SessaoArquivo)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "fixpro: console da plataforma de manutenção")
	fmt.Fprintln(os.Stderr, "uso:")
	fmt.Fprintln(os.Stderr, "  fixpro login --email tec@fixpro.pt [--senha ...]")
	fmt.Fprintln(os.Stderr, "  fixpro logout | whoami | painel")
	fmt.Fprintln(os.Stderr, "  fixpro intervencoes list [--busca ...] [--status ...] [--prioridade ...]")
	fmt.Fprintln(os.Stderr, "  fixpro intervencoes iniciar|concluir|cancelar --id N")
	fmt.Fprintln(os.Stderr, "  fixpro intervencoes criar|editar|atualizar|remover ...")
	fmt.Fprintln(os.Stderr, "  fixpro maquinas|clientes|usuarios list|criar|editar|remover ...")
}

// confirmar pergunta sim/não no terminal; aceita apenas s ou sim.
func confirmar(titulo, texto string) bool {
	if texto != "" {
		fmt.Printf("%s\n  %s\n[s/N] ", titulo, texto)
	} else {
		fmt.Printf("%s [s/N] ", titulo)
	}
	linha, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	resposta := strings.ToLower(strings.TrimSpace(linha))
	return resposta == "s" || resposta == "sim"
}
