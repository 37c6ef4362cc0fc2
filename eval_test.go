package main

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInterp() *Interpreter {
	return New(nil)
}

func TestSolveExprArithmetic(t *testing.T) {
	interp := newTestInterp()
	for _, tc := range []struct {
		expr string
		want int32
	}{
		{"1+2", 3},
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"10-3-2", 5},           // left associative: (10-3)-2
		{"20/2/2", 5},           // left associative: (20/2)/2
		{"-5+10", 5},
		{"!0", -1},
		{"2*-3", -6},
		{"7%3", 1},
		{"6&3", 2},
		{"6|1", 7},
		{"6^3", 5},
	} {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := interp.solveExpr([]byte(tc.expr), 0, len(tc.expr))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSolveExprVariables(t *testing.T) {
	interp := newTestInterp()
	interp.variables[normalizeVar('A')] = 7
	interp.variables[normalizeVar('B')] = 3
	got, err := interp.solveExpr([]byte("A*B+1"), 0, len("A*B+1"))
	require.NoError(t, err)
	assert.Equal(t, int32(22), got)
}

func TestSolveExprDivideByZero(t *testing.T) {
	interp := newTestInterp()
	_, err := interp.solveExpr([]byte("1/0"), 0, 3)
	var dzErr divideByZeroError
	require.ErrorAs(t, err, &dzErr)

	_, err = interp.solveExpr([]byte("1%0"), 0, 3)
	require.ErrorAs(t, err, &dzErr)
}

func TestSolveExprSyntaxErrors(t *testing.T) {
	interp := newTestInterp()
	for _, expr := range []string{"1+", "(1+2", "1+2)", "*5", "1 2"} {
		t.Run(expr, func(t *testing.T) {
			_, err := interp.solveExpr([]byte(expr), 0, len(expr))
			var synErr syntaxError
			assert.ErrorAs(t, err, &synErr, "expected a syntax error for %q", expr)
		})
	}
}

func TestSolveExprPeekPseudoFunc(t *testing.T) {
	interp := newTestInterp()
	require.NoError(t, interp.host.poke(10, 42))
	require.NoError(t, interp.host.poke(11, 1))

	got, err := interp.solveExpr([]byte("PEEK(10)+1"), 0, len("PEEK(10)+1"))
	require.NoError(t, err)
	assert.Equal(t, int32(43), got)

	got, err = interp.solveExpr([]byte("peekw(10)"), 0, len("peekw(10)"))
	require.NoError(t, err)
	assert.Equal(t, int32(42+1<<8), got)
}

func TestSolveExprPeekUnterminated(t *testing.T) {
	interp := newTestInterp()
	_, err := interp.solveExpr([]byte("PEEK(10"), 0, len("PEEK(10"))
	var synErr syntaxError
	assert.ErrorAs(t, err, &synErr)
}

func TestSolveExprPeekOutOfRange(t *testing.T) {
	interp := New(nil)
	_, err := interp.solveExpr([]byte("PEEK(999999)"), 0, len("PEEK(999999)"))
	var rangeErr memRangeError
	assert.ErrorAs(t, err, &rangeErr)
}

// TestSolveExprDecimalRoundTrip exercises invariant 7 from the testable
// properties: expr_solve(serialize(n)) == n for representable int32 n,
// serializing negative values with a leading unary minus since the
// tokenizer's numeric-literal phase never consumes a sign itself.
func TestSolveExprDecimalRoundTrip(t *testing.T) {
	for _, n := range []int32{0, 1, -1, 42, -42, 2147483647, -2147483647, 1000000} {
		expr := strconv.FormatInt(int64(n), 10)
		interp := newTestInterp()
		got, err := interp.solveExpr([]byte(expr), 0, len(expr))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestMatchingParen(t *testing.T) {
	buf := []byte("(1+(2*3))")
	assert.Equal(t, len(buf)-1, matchingParen(buf, 0, len(buf)))
	assert.Equal(t, -1, matchingParen([]byte("(1+2"), 0, 4))
}
