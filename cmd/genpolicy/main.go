package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/harshisingh777/tic-tac-toe/config"
	"github.com/harshisingh777/tic-tac-toe/policy"
)

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	setupLogging(cfg.GetBool(config.ConfigDebug))

	if cpuProfile := cfg.GetString(config.ConfigCPUProfile); cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	p, err := policy.Build()
	if err != nil {
		log.Fatal().Err(err).Msg("building policy")
	}
	path := cfg.GetString(config.ConfigPolicyPath)
	if err := policy.Save(path, p); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("saving policy")
	}
	fmt.Printf("Generated policy with %d states at %s\n", len(p), path)

	if cfg.GetBool(config.ConfigStats) {
		fmt.Printf("digest: %016x\n", p.Digest())
		if err := p.FprintStats(os.Stdout); err != nil {
			log.Error().Err(err).Msg("printing stats")
		}
	}
}
