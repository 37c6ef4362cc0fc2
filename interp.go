package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/jcorbin/tinybasic/internal/config"
	"github.com/jcorbin/tinybasic/internal/ioport"
	"github.com/jcorbin/tinybasic/internal/panicerr"
)

// Interpreter owns every piece of mutable state a TinyBASIC session needs:
// the code store, the expression workspace, the variable map, the
// current-line indicator, and the host-memory bridge. It's single-owner by
// construction -- the shell is the only caller driving it -- so tests can
// freely spin up independent Interpreters to run scenarios in parallel
// without ever sharing one across goroutines.
type Interpreter struct {
	logging

	port        ioport.Port
	closers     []io.Closer
	persistRoot string

	store       *codeStore
	expr        *exprWorkspace
	host        *hostMemory
	variables   [26]int32
	currentLine int
}

// New builds an Interpreter sized per cfg (or spec.md's defaults, if cfg is
// nil), then applies opts.
func New(cfg *config.Config, opts ...InterpOption) *Interpreter {
	if cfg == nil {
		cfg = config.Default()
	}
	codeSize, hostSize := cfg.Memory.CodeSize, cfg.Memory.HostSize
	if limit := cfg.Memory.Limit; limit > 0 {
		// §5's "no dynamic allocation on the hot path" extends to
		// construction time too: a configured Limit caps the code store and
		// host-memory region up front rather than letting them grow into
		// an over-budget footprint later.
		if codeSize > limit {
			codeSize = limit
		}
		if rest := limit - codeSize; hostSize > rest {
			hostSize = rest
		}
	}
	interp := &Interpreter{
		store: newCodeStore(codeSize, cfg.Memory.MaxLinenum),
		expr:  newExprWorkspace(cfg.Memory.ExprTokens),
		host:  newHostMemory(hostSize),
	}
	defaultInterpOptions.apply(interp)
	InterpOptions(opts...).apply(interp)
	return interp
}

// Close releases any resources acquired by options (terminal raw mode,
// opened files), most-recently-acquired first.
func (interp *Interpreter) Close() (err error) {
	for i := len(interp.closers) - 1; i >= 0; i-- {
		if cerr := interp.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// haltError wraps a panic value carried out of the run loop by halt, so
// Run can unwrap it back to the original error (or nil, for a clean stop).
type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}
func (err haltError) Unwrap() error { return err.error }

// halt aborts the current Run call. It is only for conditions the shell
// cannot recover from (a broken char port); ordinary user-visible errors
// are reported and handled via the statement dispatcher's TERMINATE
// directive instead.
func (interp *Interpreter) halt(err error) {
	func() {
		defer func() { recover() }()
		if interp.port != nil {
			interp.port.Flush()
		}
	}()
	func() {
		defer func() { recover() }()
		interp.logf("#", "halt: %v", err)
	}()
	panic(haltError{err})
}

func (interp *Interpreter) writeByte(b byte) {
	if err := interp.port.WriteChar(b); err != nil {
		interp.halt(err)
	}
}

func (interp *Interpreter) writeString(s string) {
	for i := 0; i < len(s); i++ {
		interp.writeByte(s[i])
	}
}

func (interp *Interpreter) readByte() byte {
	if err := interp.port.Flush(); err != nil {
		interp.halt(err)
	}
	b, err := interp.port.ReadChar()
	if err != nil {
		interp.halt(err)
	}
	return b
}

// killRequested polls the optional KillProber capability; ports that don't
// support it never interrupt the run loop this way.
func (interp *Interpreter) killRequested() bool {
	if kp, ok := interp.port.(ioport.KillProber); ok {
		return kp.KillRequested()
	}
	return false
}

func (interp *Interpreter) isInteractive() bool {
	ip, ok := interp.port.(ioport.Interactive)
	return ok && ip.IsInteractive()
}

// Run hands control to the shell's line editor and dispatch loop until the
// char port is exhausted or a panic unwinds out of it. Internal bugs are
// converted into an error by panicerr.Recover rather than crashing the
// process; a halt carrying a nil error (a clean, deliberate stop) or plain
// EOF are both reported back as a nil error.
func (interp *Interpreter) Run() error {
	err := panicerr.Recover("tinybasic", func() error {
		interp.shellLoop()
		return nil
	})
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	var he haltError
	if errors.As(err, &he) {
		if he.error == nil || errors.Is(he.error, io.EOF) {
			return nil
		}
		return he.error
	}
	return err
}
