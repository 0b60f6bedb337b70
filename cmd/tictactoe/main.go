package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/harshisingh777/tic-tac-toe/config"
	"github.com/harshisingh777/tic-tac-toe/policy"
	"github.com/harshisingh777/tic-tac-toe/shell"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	var logger zerolog.Logger
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		// Keep the board readable; only problems are worth interrupting for.
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		logger = zerolog.New(output).Level(zerolog.WarnLevel).With().Timestamp().Logger()
	}
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")

	p, err := policy.Get(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("loading policy")
	}
	log.Debug().Int("entries", len(p)).Msg("policy-ready")

	sc, err := shell.NewShellController(cfg, p)
	if err != nil {
		log.Fatal().Err(err).Msg("starting shell")
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan error, 1)
	go func() {
		done <- sc.Loop()
	}()

	select {
	case <-sig:
		fmt.Println("\n" + shell.Farewell)
	case err := <-done:
		if err != nil {
			sc.Cleanup()
			log.Fatal().Err(err).Msg("game loop")
		}
	}
	sc.Cleanup()
}
