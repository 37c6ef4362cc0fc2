package main

import (
	"fmt"
	"io"
)

// interpDumper prints a diagnostic snapshot of an Interpreter's state: the
// stored program, variable values, and host-memory size. It never touches
// the interpreter's own char I/O port, so -dump output never interleaves
// with BASIC program output.
type interpDumper struct {
	interp *Interpreter
	out    io.Writer
}

func (d interpDumper) dump() {
	fmt.Fprintf(d.out, "# Interpreter Dump\n")
	fmt.Fprintf(d.out, "  currentLine: %v\n", d.interp.currentLine)

	fmt.Fprintf(d.out, "  program (%v/%v bytes):\n", d.interp.store.codeEnd, d.interp.store.size())
	d.interp.store.eachRecord(func(linenum, bodyOff, bodyLen int) {
		fmt.Fprintf(d.out, "    %v %s\n", linenum, d.interp.store.buf[bodyOff:bodyOff+bodyLen])
	})

	fmt.Fprintf(d.out, "  variables:\n")
	for i, v := range d.interp.variables {
		if v != 0 {
			fmt.Fprintf(d.out, "    %c = %v\n", 'A'+i, v)
		}
	}

	fmt.Fprintf(d.out, "  host memory: %v bytes\n", len(d.interp.host.buf))
}
