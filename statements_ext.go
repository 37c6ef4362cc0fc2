package main

import (
	"strconv"

	"github.com/jcorbin/tinybasic/internal/runeio"
)

// portWriter adapts writeByte to io.Writer, the shape runeio.WriteANSIRune
// expects.
type portWriter struct{ interp *Interpreter }

func (pw portWriter) Write(p []byte) (int, error) {
	for _, b := range p {
		pw.interp.writeByte(b)
	}
	return len(p), nil
}

// splitArgs splits "<addr-expr>, <value-expr>" at the first comma outside
// parentheses into its two spans, per the comma-separated statement form of
// POKE/POKEW (§4.13). Without such a comma, ok is false and addr is the
// whole span. PEEK/PEEKW in statement position -- as opposed to the
// expression-grammar pseudo-function recognized by the tokenizer -- take a
// single address expression, echo the value they read, and do not use this.
func splitArgs(buf []byte, off, end int) (addr, value [2]int, ok bool) {
	depth := 0
	comma := -1
	for i := off; i < end; i++ {
		switch buf[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				comma = i
			}
		}
		if comma >= 0 {
			break
		}
	}
	if comma < 0 {
		return [2]int{off, end}, [2]int{0, 0}, false
	}
	return [2]int{off, comma}, [2]int{comma + 1, end}, true
}

func stmtPeek(interp *Interpreter, buf []byte, off, end int) Directive {
	addr, err := interp.solveExpr(buf, off, end-off)
	if err != nil {
		interp.reportError(err, string(buf[off:end]))
		return Terminate
	}
	v, err := interp.host.peek(int(addr))
	if err != nil {
		interp.reportError(err, string(buf[off:end]))
		return Terminate
	}
	interp.writeString(strconv.Itoa(int(v)))
	interp.writeString("\n")
	return Continue
}

func stmtPeekw(interp *Interpreter, buf []byte, off, end int) Directive {
	addr, err := interp.solveExpr(buf, off, end-off)
	if err != nil {
		interp.reportError(err, string(buf[off:end]))
		return Terminate
	}
	v, err := interp.host.peekWord(int(addr))
	if err != nil {
		interp.reportError(err, string(buf[off:end]))
		return Terminate
	}
	interp.writeString(strconv.Itoa(int(v)))
	interp.writeString("\n")
	return Continue
}

func stmtPoke(interp *Interpreter, buf []byte, off, end int) Directive {
	addrSpan, valueSpan, ok := splitArgs(buf, off, end)
	if !ok {
		interp.reportError(syntaxError{"POKE requires addr, value"}, string(buf[off:end]))
		return Terminate
	}
	addr, err := interp.solveExpr(buf, addrSpan[0], addrSpan[1]-addrSpan[0])
	if err != nil {
		interp.reportError(err, string(buf[off:end]))
		return Terminate
	}
	value, err := interp.solveExpr(buf, valueSpan[0], valueSpan[1]-valueSpan[0])
	if err != nil {
		interp.reportError(err, string(buf[off:end]))
		return Terminate
	}
	if err := interp.host.poke(int(addr), value&0xff); err != nil {
		interp.reportError(err, string(buf[off:end]))
		return Terminate
	}
	return Continue
}

func stmtPokew(interp *Interpreter, buf []byte, off, end int) Directive {
	addrSpan, valueSpan, ok := splitArgs(buf, off, end)
	if !ok {
		interp.reportError(syntaxError{"POKEW requires addr, value"}, string(buf[off:end]))
		return Terminate
	}
	addr, err := interp.solveExpr(buf, addrSpan[0], addrSpan[1]-addrSpan[0])
	if err != nil {
		interp.reportError(err, string(buf[off:end]))
		return Terminate
	}
	value, err := interp.solveExpr(buf, valueSpan[0], valueSpan[1]-valueSpan[0])
	if err != nil {
		interp.reportError(err, string(buf[off:end]))
		return Terminate
	}
	if err := interp.host.pokeWord(int(addr), value&0xffff); err != nil {
		interp.reportError(err, string(buf[off:end]))
		return Terminate
	}
	return Continue
}

// stmtChar implements §4.14: writes a single character, no trailing
// newline, unlike PRINT's decimal formatting. The argument is either a rune
// literal ('X', <NL>, ^C -- parsed with the same rules original_source/
// uses for character constants) or, failing that, a numeric expression
// truncated to a byte.
func stmtChar(interp *Interpreter, buf []byte, off, end int) Directive {
	i := off
	for i < end && isBlank(buf[i]) {
		i++
	}
	if i < end && (buf[i] == '\'' || buf[i] == '<' || buf[i] == '^') {
		j := end
		for j > i && isBlank(buf[j-1]) {
			j--
		}
		r, err := runeio.UnquoteRune(string(buf[i:j]))
		if err != nil {
			interp.reportError(syntaxError{err.Error()}, string(buf[off:end]))
			return Terminate
		}
		runeio.WriteANSIRune(portWriter{interp}, r)
		return Continue
	}

	value, err := interp.solveExpr(buf, off, end-off)
	if err != nil {
		interp.reportError(err, string(buf[off:end]))
		return Terminate
	}
	interp.writeByte(byte(value))
	return Continue
}

func stmtSave(interp *Interpreter, buf []byte, off, end int) Directive {
	name, ok := parseFilename(buf, off, end)
	if !ok {
		interp.reportError(syntaxError{"SAVE requires a filename"}, string(buf[off:end]))
		return Terminate
	}
	if err := interp.saveProgram(name); err != nil {
		interp.reportError(err, string(buf[off:end]))
		return Terminate
	}
	return Continue
}

func stmtLoad(interp *Interpreter, buf []byte, off, end int) Directive {
	name, ok := parseFilename(buf, off, end)
	if !ok {
		interp.reportError(syntaxError{"LOAD requires a filename"}, string(buf[off:end]))
		return Terminate
	}
	if err := interp.loadProgram(name); err != nil {
		interp.reportError(err, string(buf[off:end]))
		return Terminate
	}
	return Continue
}

// parseFilename takes the rest of the statement body verbatim (optionally
// quoted), trimming surrounding blanks.
func parseFilename(buf []byte, off, end int) (string, bool) {
	for off < end && isBlank(buf[off]) {
		off++
	}
	for end > off && isBlank(buf[end-1]) {
		end--
	}
	if off >= end {
		return "", false
	}
	if buf[off] == '"' && end-off >= 2 && buf[end-1] == '"' {
		off++
		end--
	}
	if off >= end {
		return "", false
	}
	return string(buf[off:end]), true
}
