package main

// Directive is what a statement handler hands back to its caller: either
// "fall through to the next record", "jump to a specific line", or "stop".
// Modeling it as a sum type (rather than an in-band sentinel line number
// like MAX_LINENUM) keeps TERMINATE from ever being mistaken for a real
// jump target.
type Directive struct {
	kind   directiveKind
	target int
}

type directiveKind uint8

const (
	dirContinue directiveKind = iota
	dirGoto
	dirTerminate
)

// Continue advances to the textually next record in program order.
var Continue = Directive{kind: dirContinue}

// Terminate stops the run loop, whether from END or from an error already
// reported to the user.
var Terminate = Directive{kind: dirTerminate}

// Goto jumps to the record with line number n next.
func Goto(n int) Directive { return Directive{kind: dirGoto, target: n} }

func (d Directive) String() string {
	switch d.kind {
	case dirGoto:
		return "goto"
	case dirTerminate:
		return "terminate"
	default:
		return "continue"
	}
}

// stmtHandler parses and executes one statement body, buf[off:end), and
// returns the directive for what happens next.
type stmtHandler func(interp *Interpreter, buf []byte, off, end int) Directive

// dispatchEntry pairs a keyword with its handler; an entry whose program
// field is false is rejected while a RUN is in progress (currentLine != 0).
type dispatchEntry struct {
	keyword  string
	handler  stmtHandler
	program  bool // allowed during RUN
}

// dispatchTable is walked in order; LET's keyword-optional fallback sits
// after the explicit branches (notably LIST) so "LIST" is never swallowed
// by LET's "letter followed by space-or-equals" rule.
var dispatchTable = []dispatchEntry{
	{"PRINT", stmtPrint, true},
	{"LET", stmtLet, true},
	{"IF", stmtIf, true},
	{"GOTO", stmtGoto, true},
	{"INPUT", stmtInput, true},
	{"REM", stmtRem, true},
	{"CLEAR", stmtClear, true},
	{"END", stmtEnd, true},
	{"RUN", stmtRun, false},
	{"LIST", stmtList, false},
	{"NEW", stmtNew, false},
	{"MEMORY", stmtMemory, false},
	{"SAVE", stmtSave, false},
	{"LOAD", stmtLoad, false},
	{"PEEKW", stmtPeekw, true},
	{"POKEW", stmtPokew, true},
	{"PEEK", stmtPeek, true},
	{"POKE", stmtPoke, true},
	{"CHAR", stmtChar, true},
}

// dispatch implements §4.4: recognize the keyword at buf[off:end)
// case-insensitively, bounded by a trailing space or the end of the span,
// and invoke its handler. LET's keyword is optional: "X = expr" and
// "X expr" (a bare letter followed by space or '=') both dispatch to LET
// without the keyword, but only after every explicit keyword branch has
// had a chance to match first.
func (interp *Interpreter) dispatch(buf []byte, off, end int) Directive {
	for off < end && isBlank(buf[off]) {
		off++
	}
	if off >= end {
		return Continue
	}

	for _, entry := range dispatchTable {
		if rest, ok := matchKeyword(buf, off, end, entry.keyword); ok {
			if !entry.program && interp.currentLine != 0 {
				interp.reportError(modeError{entry.keyword}, string(buf[off:end]))
				return Terminate
			}
			return entry.handler(interp, buf, rest, end)
		}
	}

	if isAlpha(buf[off]) {
		rest := off + 1
		if rest < end && (buf[rest] == '=' || isBlank(buf[rest])) {
			return stmtLet(interp, buf, off, end)
		}
	}

	interp.reportError(unknownCommandError{string(buf[off:end])}, string(buf[off:end]))
	return Terminate
}

// matchKeyword reports whether buf[off:end) begins with kw (case
// insensitive), bounded by a space or the end of the span, and returns the
// offset of the first byte after kw and any following blanks.
func matchKeyword(buf []byte, off, end int, kw string) (rest int, ok bool) {
	if end-off < len(kw) {
		return 0, false
	}
	for i := 0; i < len(kw); i++ {
		if upper(buf[off+i]) != kw[i] {
			return 0, false
		}
	}
	rest = off + len(kw)
	if rest < end && !isBlank(buf[rest]) {
		return 0, false
	}
	for rest < end && isBlank(buf[rest]) {
		rest++
	}
	return rest, true
}

func isBlank(c byte) bool { return c == ' ' || c == '\t' }

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// tokenEnd returns the offset of the next occurrence of the keyword kw
// within buf[off:end), bounded the same way matchKeyword is, or end if kw
// does not occur. Used by IF to find its THEN.
func tokenEnd(buf []byte, off, end int, kw string) int {
	for i := off; i < end; i++ {
		if _, ok := matchKeyword(buf, i, end, kw); ok {
			if i == off || isBlank(buf[i-1]) {
				return i
			}
		}
	}
	return end
}
