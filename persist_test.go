package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	root := t.TempDir()

	writer := New(nil, WithPersistRoot(root))
	require.NoError(t, writer.store.storeLine([]byte("10 PRINT 1")))
	require.NoError(t, writer.store.storeLine([]byte("20 PRINT 2")))
	require.NoError(t, writer.saveProgram("prog.bas"))

	reader := New(nil, WithPersistRoot(root))
	require.NoError(t, reader.loadProgram("prog.bas"))

	var linenums []int
	var bodies []string
	reader.store.eachRecord(func(linenum, bodyOff, bodyLen int) {
		linenums = append(linenums, linenum)
		bodies = append(bodies, string(reader.store.buf[bodyOff:bodyOff+bodyLen]))
	})
	assert.Equal(t, []int{10, 20}, linenums)
	assert.Equal(t, []string{"PRINT 1", "PRINT 2"}, bodies)
}

func TestLoadSkipsNonDigitLines(t *testing.T) {
	root := t.TempDir()
	writer := New(nil, WithPersistRoot(root))
	require.NoError(t, writer.saveProgram("empty.bas"))

	path := writer.resolvePath("junk.bas")
	require.NoError(t, os.WriteFile(path, []byte("; a comment\n10 PRINT 1\n\n"), 0o644))

	reader := New(nil, WithPersistRoot(root))
	require.NoError(t, reader.loadProgram("junk.bas"))

	var linenums []int
	reader.store.eachRecord(func(linenum, _, _ int) { linenums = append(linenums, linenum) })
	assert.Equal(t, []int{10}, linenums)
}

func TestLoadMissingFile(t *testing.T) {
	interp := New(nil, WithPersistRoot(t.TempDir()))
	err := interp.loadProgram("nope.bas")
	assert.Error(t, err)
}
