package main

import (
	"flag"
	"os"
	"sync"
	"time"

	"github.com/jcorbin/tinybasic/internal/config"
	"github.com/jcorbin/tinybasic/internal/ioport"
	"github.com/jcorbin/tinybasic/internal/logio"
)

func main() {
	var (
		configPath string
		trace      bool
		timeout    time.Duration
		persist    string
		dump       bool
	)
	flag.StringVar(&configPath, "config", "tinybasic.toml", "config file path (missing file falls back to defaults)")
	flag.BoolVar(&trace, "trace", false, "enable trace logging of reported errors and halts")
	flag.DurationVar(&timeout, "timeout", 0, "exit after the given duration (0 disables)")
	flag.StringVar(&persist, "persist-root", "", "directory SAVE/LOAD are restricted to (default: cwd)")
	flag.BoolVar(&dump, "dump", false, "print an interpreter state dump after execution")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer os.Exit(log.ExitCode())

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Errorf("loading config: %v", err)
		return
	}
	if trace {
		cfg.Shell.Trace = true
	}

	opts := []InterpOption{
		WithPersistRoot(persist),
	}
	if cfg.Shell.Trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}

	port, closePort := makePort(cfg)
	defer closePort()
	opts = append(opts, WithPort(port))

	interp := New(cfg, opts...)
	defer interp.Close()

	if dump {
		lw := &logio.Writer{Logf: log.Leveledf("DUMP")}
		defer lw.Close()
		defer interpDumper{interp: interp, out: lw}.dump()
	}

	if timeout != 0 {
		// Closing the port's underlying stdin unblocks a pending ReadChar
		// from this same goroutine's perspective -- Run() observes it as an
		// ordinary read error, rather than a panic crossing goroutines the
		// way calling interp.halt from this timer would.
		timer := time.AfterFunc(timeout, closePort)
		defer timer.Stop()
	}

	log.ErrorIf(interp.Run())
}

// makePort picks TermPort for an interactive stdin (when raw terminal mode
// is enabled in config and stdin is a char device), falling back to
// StreamPort for piped input or when raw mode is disabled. The returned
// closer is safe to call more than once, and always closes stdin itself so
// a -timeout firing unblocks a read in progress.
func makePort(cfg *config.Config) (ioport.Port, func()) {
	var once sync.Once
	if cfg.Shell.RawTerminal {
		if fi, err := os.Stdin.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
			if tp, err := ioport.NewTermPort(int(os.Stdin.Fd()), os.Stdin, os.Stdout); err == nil {
				return tp, func() {
					once.Do(func() {
						tp.Close()
						os.Stdin.Close()
					})
				}
			}
		}
	}
	sp := ioport.NewStreamPort(os.Stdin, os.Stdout)
	return sp, func() { once.Do(func() { os.Stdin.Close() }) }
}
