package main

// shellLoop implements §4.12: read characters one at a time into the
// pending-input tail, dispatching whenever a newline completes a line.
// Interactive ports get a one-line boot banner and a prompt before every
// direct-mode read (SPEC_FULL.md §4.12); piped/file ports see neither.
func (interp *Interpreter) shellLoop() {
	if interp.isInteractive() {
		interp.writeString("TinyBASIC\n")
	}
	for {
		if interp.isInteractive() {
			interp.writeString("> ")
		}
		interp.readLine()
		interp.executeNewline()
	}
}

func (interp *Interpreter) readLine() {
readLoop:
	for {
		b := interp.readByte()
		switch b {
		case '\n':
			break readLoop
		case '\b', 0x7f:
			if interp.store.backspacePending() {
				interp.writeString("\b \b")
			}
		default:
			interp.store.appendPending(b)
		}
	}
}

// executeNewline implements §4.12's execute_newline: an empty line is
// ignored, a line starting with a digit is stored by line number, anything
// else is dispatched immediately in direct mode. Either way the
// pending-input region slides back to an empty span at the tail.
func (interp *Interpreter) executeNewline() {
	begin, end := interp.store.newBegin(), interp.store.newEnd
	buf := interp.store.buf

	i := begin
	for i < end && isBlank(buf[i]) {
		i++
	}
	switch {
	case i >= end:
		// empty line, nothing to do
	case buf[i] >= '0' && buf[i] <= '9':
		if err := interp.store.storeLine(buf[begin:end]); err != nil {
			interp.reportError(err, string(buf[begin:end]))
		}
	default:
		interp.dispatch(buf, i, end)
	}
	interp.store.resetPending()
}

// runProgram implements §4.11's run loop. currentLine is nonzero for the
// whole duration (program mode), and reset to 0 on every exit path so
// mode-restricted statements work again once RUN returns.
func (interp *Interpreter) runProgram() {
	if interp.store.codeEnd == 0 {
		return
	}

	index := 2 // past the first record's 2-byte linenum header
	interp.currentLine = interp.store.loadLinenum(0)

	for {
		if interp.killRequested() {
			interp.readByte()
			break
		}

		bodyLen := interp.store.bodyLen(index)
		directive := interp.dispatch(interp.store.buf, index, index+bodyLen)

		switch directive.kind {
		case dirTerminate:
			goto done

		case dirGoto:
			bodyOff := interp.store.findLine(directive.target)
			if bodyOff >= interp.store.codeEnd {
				interp.reportError(lineNotFoundError{directive.target}, "")
				goto done
			}
			index = bodyOff
			interp.currentLine = interp.store.loadLinenum(index - 2)

		default: // dirContinue
			next := index + bodyLen + 3
			if next >= interp.store.codeEnd {
				goto done
			}
			interp.currentLine = interp.store.loadLinenum(next - 2)
			index = next
		}
	}

done:
	interp.currentLine = 0
}
