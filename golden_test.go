package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGoldenS1Accumulator is scenario S1 from the testable-properties table:
// a GOTO-driven counting loop.
func TestGoldenS1Accumulator(t *testing.T) {
	script := "10 LET A = 0\n20 LET A = A + 1\n30 IF A < 5 THEN GOTO 20\n40 PRINT A\nRUN\n"
	assert.Equal(t, "5\n", runScript(t, script))
}

// TestGoldenS2PrecedenceAndBitwise is scenario S2: arithmetic precedence and
// left-to-right tie-breaking among the bitwise operators.
func TestGoldenS2PrecedenceAndBitwise(t *testing.T) {
	script := "PRINT 2 + 3 * 4\nPRINT (2 + 3) * 4\nPRINT 0xFF & 0x0F\nPRINT 5 | 2 ^ 3\n"
	assert.Equal(t, "14\n20\n15\n4\n", runScript(t, script))
}

// TestGoldenS3UnaryAndInvert is scenario S3.
func TestGoldenS3UnaryAndInvert(t *testing.T) {
	script := "PRINT -3 * -4\nPRINT !0\n"
	assert.Equal(t, "12\n-1\n", runScript(t, script))
}

// TestGoldenS4EditingReplaceAndDelete is scenario S4.
func TestGoldenS4EditingReplaceAndDelete(t *testing.T) {
	script := "10 PRINT \"A\"\n20 PRINT \"B\"\n10 PRINT \"C\"\n20\nLIST\n"
	assert.Equal(t, "10 PRINT \"C\"\n", runScript(t, script))
}

// TestGoldenS5IfFalsePathAndGotoMissing is scenario S5, both halves: the
// false IF branch falling through, and a GOTO to a missing line reporting a
// diagnostic instead of running the rest of the program.
func TestGoldenS5IfFalsePathAndGotoMissing(t *testing.T) {
	script := "10 IF 1 = 2 THEN GOTO 99\n20 PRINT \"ok\"\nRUN\n"
	assert.Equal(t, "ok\n", runScript(t, script))

	script2 := "10 IF 1 = 1 THEN GOTO 99\n20 PRINT \"ok\"\nRUN\n"
	got := runScript(t, script2)
	assert.Contains(t, got, "Line 99 not found")
	assert.NotContains(t, got, "ok")
}

// TestGoldenS6LiteralRadixes is scenario S6.
func TestGoldenS6LiteralRadixes(t *testing.T) {
	script := "PRINT 0b1011 + 0x10 + 011\n"
	assert.Equal(t, "36\n", runScript(t, script))
}
