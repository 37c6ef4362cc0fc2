package main

import (
	"fmt"
	"strings"
)

// logging formats diagnostic trace lines (reported errors and halts) when
// enabled, entirely independent of the interpreted program's own char I/O
// port: turning on -trace must never interleave with or corrupt BASIC
// program output. Statement dispatch and expression evaluation are not
// traced.
type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
