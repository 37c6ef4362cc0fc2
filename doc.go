/* Package main implements a Tiny BASIC interpreter: a single-user,
line-numbered BASIC dialect that stores a program in one fixed-size byte
buffer, edits it in place by line number, and executes it
statement-by-statement with no compiled intermediate form. It targets
memory-constrained hosts -- the entire runtime (program text, variables,
evaluator workspace, line-edit buffer) lives in statically sized arrays
owned by a single *Interpreter value.

Section 1: the code store (store.go)

The code store packs the user's program into one buffer as a gap-free,
line-number-ordered sequence of records: a two-byte little-endian line
number, the line's body bytes, and a terminating NUL. A shared
"pending-input" region always sits at the tail, past the last stored
record; it is where the shell accumulates the line currently being typed,
and where INPUT stages bytes before they are interpreted. Because
this region can alias the bytes a line-number insertion is about to shift,
store_line always stages the incoming body in a fresh copy before doing any
shifting.

Section 2: the expression evaluator (eval.go)

Arithmetic, bitwise, and unary expressions are evaluated over a bounded
token array in five non-recursive passes: tokenize, resolve unary
operators, assign a precedence to every operator (bracket nesting folded in
as an additive offset rather than tracked as a separate stack), strip the
now-redundant bracket tokens, then repeatedly reduce the highest-precedence
operator (left-most wins ties, which gives left-to-right associativity)
until one value remains. PEEK and PEEKW are recognized directly by the
tokenizer as value-producing pseudo-functions, reading from the
host-memory bridge.

Section 3: statement dispatch and the run loop (dispatch.go, statements.go,
statements_ext.go, shell.go)

Keywords are matched case-insensitively, bounded by a trailing space or end
of statement; LET's keyword is optional (a bare "X = expr" or "X expr"
dispatches to it), but that fallback is tried only after every explicit
keyword, so it can never swallow LIST. Every handler returns a Directive --
Continue, Goto(n), or Terminate -- rather than raising an error, so the run
loop's control flow stays a flat switch instead of a panic/recover dance.
The shell's line editor and the run loop are the only two callers of
dispatch; the former drives direct mode, the latter drives program mode
(current line number != 0), and most editing commands are rejected in the
latter so the run loop's own bookkeeping of "where we are" stays valid.
*/
package main
