package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug       = "debug"
	ConfigPolicyPath  = "policy-path"
	ConfigFirstPlayer = "first-player"
	ConfigColor       = "color"
	ConfigHistoryFile = "history-file"
	ConfigCPUProfile  = "cpu-profile"
	ConfigStats       = "stats"
)

// Who moves first in an interactive game. The first mover always plays X.
const (
	FirstPlayerHuman  = "human"
	FirstPlayerAI     = "ai"
	FirstPlayerRandom = "random"
)

type Config struct {
	viper.Viper
}

func DefaultConfig() Config {
	c := Config{}
	c.Viper = *viper.New()
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigPolicyPath, "ai_policy.json")
	c.SetDefault(ConfigFirstPlayer, FirstPlayerHuman)
	c.SetDefault(ConfigColor, true)
	c.SetDefault(ConfigHistoryFile, "/tmp/tictactoe_readline.tmp")
	c.SetDefault(ConfigCPUProfile, "")
	c.SetDefault(ConfigStats, false)
}

// Load reads settings from, in increasing priority: defaults, TICTACTOE_*
// environment variables, and command-line flags in args.
func (c *Config) Load(args []string) error {
	c.Viper = *viper.New()
	c.setDefaults()

	c.SetEnvPrefix("tictactoe")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	fs := pflag.NewFlagSet("tictactoe", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "turn on debug logging")
	fs.String(ConfigPolicyPath, c.GetString(ConfigPolicyPath),
		"policy file; .db/.sqlite paths use sqlite, anything else json")
	fs.String(ConfigFirstPlayer, FirstPlayerHuman, "who moves first: human, ai or random")
	fs.Bool(ConfigColor, true, "color X and O on the board")
	fs.String(ConfigHistoryFile, c.GetString(ConfigHistoryFile), "readline history file")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	fs.Bool(ConfigStats, false, "print the policy digest and move histogram after generating")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.BindPFlags(fs)
}
