package main

import (
	"strconv"

	"github.com/jcorbin/tinybasic/internal/numlit"
)

// stmtLet implements §4.5: X = <expr>. The keyword itself is optional (see
// dispatch's fallback), so this handler is entered either with "LET"
// already stripped or directly at the variable letter.
func stmtLet(interp *Interpreter, buf []byte, off, end int) Directive {
	i := off
	for i < end && isBlank(buf[i]) {
		i++
	}
	if i >= end || !isAlpha(buf[i]) {
		interp.reportError(syntaxError{"expected variable name"}, string(buf[off:end]))
		return Terminate
	}
	v := normalizeVar(buf[i])
	i++
	for i < end && isBlank(buf[i]) {
		i++
	}
	if i >= end || buf[i] != '=' {
		interp.reportError(syntaxError{"expected '='"}, string(buf[off:end]))
		return Terminate
	}
	i++

	value, err := interp.solveExpr(buf, i, end-i)
	if err != nil {
		interp.reportError(err, string(buf[off:end]))
		return Terminate
	}
	interp.variables[v] = value
	return Continue
}

// stmtPrint implements §4.6. Items (quoted strings or expressions)
// separated by ':'; a trailing ':' with nothing after it suppresses the
// final newline, per the Open Question resolved in favor of "buffer ends
// mid-parse" rather than a dedicated trailing-colon syntax.
func stmtPrint(interp *Interpreter, buf []byte, off, end int) Directive {
	i := off
	suppress := false
	for {
		for i < end && isBlank(buf[i]) {
			i++
		}
		if i >= end {
			break
		}

		if buf[i] == '"' {
			j := i + 1
			for j < end && buf[j] != '"' {
				j++
			}
			if j >= end {
				interp.reportError(syntaxError{"unterminated string"}, string(buf[off:end]))
				return Terminate
			}
			interp.writeString(string(buf[i+1 : j]))
			i = j + 1
		} else {
			j := i
			for j < end && buf[j] != ':' {
				j++
			}
			value, err := interp.solveExpr(buf, i, j-i)
			if err != nil {
				interp.reportError(err, string(buf[off:end]))
				return Terminate
			}
			interp.writeString(strconv.Itoa(int(value)))
			i = j
		}

		for i < end && isBlank(buf[i]) {
			i++
		}
		if i >= end {
			break
		}
		if buf[i] != ':' {
			interp.reportError(syntaxError{"garbage after PRINT item"}, string(buf[off:end]))
			return Terminate
		}
		i++
		for i < end && isBlank(buf[i]) {
			i++
		}
		if i >= end {
			suppress = true
			break
		}
	}
	if !suppress {
		interp.writeString("\n")
	}
	return Continue
}

// stmtIf implements §4.7. The comparison result is captured in a local
// before the recursive dispatch of the THEN statement, since that inner
// dispatch may clobber the expression workspace.
func stmtIf(interp *Interpreter, buf []byte, off, end int) Directive {
	i := off
	for i < end && buf[i] != '<' && buf[i] != '>' && buf[i] != '=' {
		i++
	}
	lhs, err := interp.solveExpr(buf, off, i-off)
	if err != nil {
		interp.reportError(err, string(buf[off:end]))
		return Terminate
	}
	if i >= end {
		interp.reportError(syntaxError{"missing comparison in IF"}, string(buf[off:end]))
		return Terminate
	}

	var op string
	switch buf[i] {
	case '=':
		op = "="
		i++
	case '<':
		if i+1 < end && buf[i+1] == '>' {
			op = "<>"
			i += 2
		} else {
			op = "<"
			i++
		}
	case '>':
		op = ">"
		i++
	}

	thenAt := tokenEnd(buf, i, end, "THEN")
	if thenAt >= end {
		interp.reportError(syntaxError{"missing THEN"}, string(buf[off:end]))
		return Terminate
	}
	rhs, err := interp.solveExpr(buf, i, thenAt-i)
	if err != nil {
		interp.reportError(err, string(buf[off:end]))
		return Terminate
	}

	var cond bool
	switch op {
	case "=":
		cond = lhs == rhs
	case "<>":
		cond = lhs != rhs
	case "<":
		cond = lhs < rhs
	case ">":
		cond = lhs > rhs
	}
	if !cond {
		return Continue
	}

	stmtOff := thenAt + len("THEN")
	for stmtOff < end && isBlank(buf[stmtOff]) {
		stmtOff++
	}
	return interp.dispatch(buf, stmtOff, end)
}

// stmtGoto implements §4.8.
func stmtGoto(interp *Interpreter, buf []byte, off, end int) Directive {
	i := off
	for i < end && isBlank(buf[i]) {
		i++
	}
	value, n, ok := numlit.Read(buf[i:end])
	if !ok || n == 0 {
		interp.reportError(syntaxError{"invalid line number"}, string(buf[off:end]))
		return Terminate
	}
	if value < 1 || value >= interp.store.maxLinenum {
		interp.reportError(lineNumberError{value}, string(buf[off:end]))
		return Terminate
	}
	return Goto(value)
}

// stmtInput implements §4.9, reading through the pending-input tail so it
// shares the same scratch region the line editor uses.
func stmtInput(interp *Interpreter, buf []byte, off, end int) Directive {
	i := off
	for i < end && isBlank(buf[i]) {
		i++
	}
	if i >= end || !isAlpha(buf[i]) {
		interp.reportError(syntaxError{"expected variable name"}, string(buf[off:end]))
		return Terminate
	}
	v := normalizeVar(buf[i])
	i++
	for i < end && isBlank(buf[i]) {
		i++
	}
	if i != end {
		interp.reportError(syntaxError{"garbage after INPUT variable"}, string(buf[off:end]))
		return Terminate
	}

	interp.store.resetPending()
inputLoop:
	for {
		b := interp.readByte()
		switch b {
		case '\n':
			break inputLoop
		case '\b', 0x7f:
			if interp.store.backspacePending() {
				interp.writeString("\b \b")
			}
		default:
			if !interp.store.appendPending(b) {
				interp.reportError(outOfMemoryError{1, 0}, string(buf[off:end]))
				return Terminate
			}
		}
	}

	span := interp.store.pending()
	value, err := interp.solveExpr(span, 0, len(span))
	interp.store.resetPending()
	if err != nil {
		interp.reportError(err, string(buf[off:end]))
		return Terminate
	}
	interp.variables[v] = value
	return Continue
}

func stmtRem(interp *Interpreter, buf []byte, off, end int) Directive {
	return Continue
}

func stmtClear(interp *Interpreter, buf []byte, off, end int) Directive {
	interp.writeString("\x1b[2J\x1b[H")
	return Continue
}

func stmtEnd(interp *Interpreter, buf []byte, off, end int) Directive {
	return Terminate
}

// stmtRun implements the RUN command itself: it invokes the run loop
// (§4.11) and, once that loop exits for any reason, returns Continue so
// the shell that dispatched "RUN" resumes accepting direct-mode input.
func stmtRun(interp *Interpreter, buf []byte, off, end int) Directive {
	interp.runProgram()
	return Continue
}

// stmtList implements the LIST half of §4.10.
func stmtList(interp *Interpreter, buf []byte, off, end int) Directive {
	interp.store.eachRecord(func(linenum, bodyOff, bodyLen int) {
		interp.writeString(strconv.Itoa(linenum))
		interp.writeString(" ")
		interp.writeString(string(interp.store.buf[bodyOff : bodyOff+bodyLen]))
		interp.writeString("\n")
	})
	return Continue
}

// stmtNew implements the NEW half of §4.10: prompts for confirmation and
// wipes the store only on a "Y" response.
func stmtNew(interp *Interpreter, buf []byte, off, end int) Directive {
	interp.writeString("Delete program (Y/N)? ")
	b := interp.readByte()
	interp.writeByte(b)
	interp.writeString("\n")
	if upper(b) == 'Y' {
		interp.store.wipe()
	}
	return Continue
}

// stmtMemory implements the MEMORY half of §4.10.
func stmtMemory(interp *Interpreter, buf []byte, off, end int) Directive {
	free := interp.store.size() - interp.store.codeEnd
	interp.writeString(strconv.Itoa(free))
	interp.writeString("\n")
	return Continue
}
