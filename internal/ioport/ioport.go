// Package ioport implements the char I/O port external collaborator: a
// single-byte read/write/kill-poll capability the interpreter core is
// given, never assumes the concrete shape of. Two implementations are
// provided: StreamPort for piped/file/test input, and TermPort for a real
// interactive terminal in raw mode.
package ioport

import (
	"bufio"
	"io"
	"sync/atomic"

	"golang.org/x/term"

	"github.com/jcorbin/tinybasic/internal/flushio"
)

// Port is the char I/O port capability the interpreter core depends on.
type Port interface {
	// ReadChar blocks for the next input byte, in input order.
	ReadChar() (byte, error)
	// WriteChar writes a single byte, unbuffered from the caller's view.
	WriteChar(b byte) error
	// Flush forces out any internally buffered output.
	Flush() error
}

// KillProber is implemented by ports that support the optional
// kill_requested() non-blocking poll.
type KillProber interface {
	KillRequested() bool
}

// Interactive is implemented by ports that know whether they're backed by
// a live terminal (used to decide whether to print the boot banner/prompt).
type Interactive interface {
	IsInteractive() bool
}

// StreamPort adapts a plain io.Reader/io.Writer pair -- piped input, a
// file, a string buffer in a test -- to Port. No byte translation is
// performed; \n already means newline and \b already means backspace in
// this kind of input.
type StreamPort struct {
	r   *bufio.Reader
	out flushio.WriteFlusher
}

// NewStreamPort builds a StreamPort over r and w.
func NewStreamPort(r io.Reader, w io.Writer) *StreamPort {
	return &StreamPort{r: bufio.NewReader(r), out: flushio.NewWriteFlusher(w)}
}

func (sp *StreamPort) ReadChar() (byte, error) { return sp.r.ReadByte() }

func (sp *StreamPort) WriteChar(b byte) error {
	_, err := sp.out.Write([]byte{b})
	return err
}

func (sp *StreamPort) Flush() error { return sp.out.Flush() }

func (sp *StreamPort) IsInteractive() bool { return false }

// TermPort puts a real terminal into raw mode so reads deliver one
// keystroke at a time with no line buffering and no kernel-side echo,
// leaving echo and backspace policy entirely to the interpreter. A
// background reader goroutine lets KillRequested poll for an
// out-of-band Ctrl-C without blocking the run loop between statements.
type TermPort struct {
	fd       int
	restore  *term.State
	out      flushio.WriteFlusher
	in       chan byte
	inErr    chan error
	killSeen int32
}

// NewTermPort puts fd (typically int(os.Stdin.Fd())) into raw mode and
// starts reading from r (typically os.Stdin) in the background.
func NewTermPort(fd int, r io.Reader, w io.Writer) (*TermPort, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	tp := &TermPort{
		fd:      fd,
		restore: state,
		out:     flushio.NewWriteFlusher(w),
		in:      make(chan byte),
		inErr:   make(chan error, 1),
	}
	go tp.readLoop(r)
	return tp, nil
}

func (tp *TermPort) readLoop(r io.Reader) {
	defer close(tp.in)
	var buf [1]byte
	for {
		if _, err := r.Read(buf[:]); err != nil {
			tp.inErr <- err
			return
		}
		b := buf[0]
		switch b {
		case 0x03: // Ctrl-C: a kill request, never delivered as program input
			atomic.StoreInt32(&tp.killSeen, 1)
			continue
		case '\r':
			b = '\n'
		case 0x7f:
			b = '\b'
		}
		tp.in <- b
	}
}

func (tp *TermPort) ReadChar() (byte, error) {
	b, ok := <-tp.in
	if !ok {
		select {
		case err := <-tp.inErr:
			return 0, err
		default:
			return 0, io.EOF
		}
	}
	return b, nil
}

func (tp *TermPort) WriteChar(b byte) error {
	_, err := tp.out.Write([]byte{b})
	return err
}

func (tp *TermPort) Flush() error { return tp.out.Flush() }

func (tp *TermPort) IsInteractive() bool { return true }

// KillRequested reports, and clears, whether a Ctrl-C arrived since the
// last call.
func (tp *TermPort) KillRequested() bool {
	return atomic.CompareAndSwapInt32(&tp.killSeen, 1, 0)
}

// Close restores the terminal's original mode.
func (tp *TermPort) Close() error {
	return term.Restore(tp.fd, tp.restore)
}
