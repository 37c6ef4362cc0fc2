// Package config loads TinyBASIC's tunable constants from an optional TOML
// file, falling back to the spec's defaults for anything the file omits or
// when the file doesn't exist at all.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds every tunable named in §6 of the spec, plus a few ambient
// toggles for the shell.
type Config struct {
	Memory struct {
		CodeSize   int `toml:"code_size"`
		ExprTokens int `toml:"expr_tokens"`
		MaxLinenum int `toml:"max_linenum"`
		HostSize   int `toml:"host_size"`
		Limit      int `toml:"limit"`
	} `toml:"memory"`

	Shell struct {
		Trace       bool `toml:"trace"`
		RawTerminal bool `toml:"raw_terminal"`
		ColorOutput bool `toml:"color_output"`
	} `toml:"shell"`
}

// Default constants, per spec.md §6.
const (
	DefaultCodeSize   = 8192
	DefaultExprTokens = 64
	DefaultMaxLinenum = 10000
	DefaultHostSize   = 4096
)

// Default returns a Config populated with spec.md's built-in defaults.
func Default() *Config {
	cfg := &Config{}
	cfg.Memory.CodeSize = DefaultCodeSize
	cfg.Memory.ExprTokens = DefaultExprTokens
	cfg.Memory.MaxLinenum = DefaultMaxLinenum
	cfg.Memory.HostSize = DefaultHostSize
	cfg.Shell.RawTerminal = true
	cfg.Shell.ColorOutput = true
	return cfg
}

// Load reads path, overlaying any keys it sets onto the defaults. A
// missing file is not an error -- it simply means "use the defaults".
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	if cfg.Memory.CodeSize <= 0 {
		cfg.Memory.CodeSize = DefaultCodeSize
	}
	if cfg.Memory.ExprTokens <= 0 {
		cfg.Memory.ExprTokens = DefaultExprTokens
	}
	if cfg.Memory.MaxLinenum <= 0 {
		cfg.Memory.MaxLinenum = DefaultMaxLinenum
	}
	if cfg.Memory.HostSize <= 0 {
		cfg.Memory.HostSize = DefaultHostSize
	}
	return cfg, nil
}
