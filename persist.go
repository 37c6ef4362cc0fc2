package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// resolvePath joins name under persistRoot, if one was configured via
// WithPersistRoot, so SAVE/LOAD can be sandboxed to a directory.
func (interp *Interpreter) resolvePath(name string) string {
	if interp.persistRoot == "" {
		return name
	}
	return filepath.Join(interp.persistRoot, name)
}

// saveProgram implements the persistence adapter's write side (§6): one
// line per record, "<linenum> <body>\n", ascending by linenum -- which the
// code store already iterates in.
func (interp *Interpreter) saveProgram(name string) error {
	f, err := os.Create(interp.resolvePath(name))
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	interp.store.eachRecord(func(linenum, bodyOff, bodyLen int) {
		fmt.Fprintf(w, "%d %s\n", linenum, interp.store.buf[bodyOff:bodyOff+bodyLen])
	})
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// loadProgram implements the persistence adapter's read side (§6): lines
// not beginning with a digit are skipped, every other line is replayed
// through storeLine as if the user had typed it.
func (interp *Interpreter) loadProgram(name string) error {
	f, err := os.Open(interp.resolvePath(name))
	if err != nil {
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if len(line) == 0 {
			continue
		}
		if line[0] < '0' || line[0] > '9' {
			continue
		}
		if err := interp.store.storeLine([]byte(line)); err != nil {
			return err
		}
	}
	return sc.Err()
}
