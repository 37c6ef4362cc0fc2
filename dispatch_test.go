package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchKeyword(t *testing.T) {
	buf := []byte("PRINT 1+2")
	rest, ok := matchKeyword(buf, 0, len(buf), "PRINT")
	assert.True(t, ok)
	assert.Equal(t, "1+2", string(buf[rest:]))

	_, ok = matchKeyword(buf, 0, len(buf), "PRIN")
	assert.False(t, ok, "PRIN must not match PRINTx -- the next byte isn't a boundary")

	buf2 := []byte("print 1")
	rest, ok = matchKeyword(buf2, 0, len(buf2), "PRINT")
	assert.True(t, ok, "keyword matching is case-insensitive")
	assert.Equal(t, "1", string(buf2[rest:]))
}

func TestMatchKeywordRequiresBoundary(t *testing.T) {
	buf := []byte("PRINTER")
	_, ok := matchKeyword(buf, 0, len(buf), "PRINT")
	assert.False(t, ok, "PRINT must not match a prefix of a longer word")
}

func TestTokenEnd(t *testing.T) {
	buf := []byte("A<3 THEN GOTO 20")
	at := tokenEnd(buf, 0, len(buf), "THEN")
	assert.Equal(t, "THEN GOTO 20", string(buf[at:]))
}

func TestTokenEndAbsent(t *testing.T) {
	buf := []byte("A<3")
	at := tokenEnd(buf, 0, len(buf), "THEN")
	assert.Equal(t, len(buf), at)
}

func TestRemAndClearAndMemory(t *testing.T) {
	got := runScript(t, "REM this is ignored\nCLEAR\nMEMORY\n")
	assert.Equal(t, "\x1b[2J\x1b[H8192\n", got)
}
