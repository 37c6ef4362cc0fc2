package main

import (
	"bytes"
	"io"

	"github.com/jcorbin/tinybasic/internal/ioport"
)

// InterpOption configures an Interpreter at construction time, following
// the functional-options idiom used throughout this codebase.
type InterpOption interface{ apply(interp *Interpreter) }

var defaultInterpOptions = InterpOptions(
	withPort(ioport.NewStreamPort(bytes.NewReader(nil), io.Discard)),
)

// InterpOptions combines any number of options into one, flattening nested
// combinations so that apply only ever walks a single level.
func InterpOptions(opts ...InterpOption) InterpOption {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(*Interpreter) {}

type options []InterpOption

func (opts options) apply(interp *Interpreter) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(interp)
		}
	}
}

type portOption struct{ ioport.Port }

func withPort(p ioport.Port) portOption { return portOption{p} }

// WithPort supplies the char I/O port the shell and INPUT/CHAR statements
// read and write through.
func WithPort(p ioport.Port) InterpOption { return withPort(p) }

func (o portOption) apply(interp *Interpreter) {
	if interp.port != nil {
		interp.port.Flush()
	}
	interp.port = o.Port
	if cl, ok := o.Port.(io.Closer); ok {
		interp.closers = append(interp.closers, cl)
	}
}

type logfnOption func(mess string, args ...interface{})

func (fn logfnOption) apply(interp *Interpreter) { interp.logfn = fn }

// WithLogf enables trace logging of reported errors and halts through fn;
// statement dispatch and expression evaluation are not traced.
func WithLogf(fn func(mess string, args ...interface{})) InterpOption {
	return logfnOption(fn)
}

type persistRootOption string

func (dir persistRootOption) apply(interp *Interpreter) { interp.persistRoot = string(dir) }

// WithPersistRoot restricts SAVE/LOAD to files under dir. An empty root
// (the default) means the current working directory.
func WithPersistRoot(dir string) InterpOption { return persistRootOption(dir) }
