// Package numlit reads decimal, binary, hex, and octal integer literals
// from a byte span, the way the original FIRST/THIRD literal() helper read
// decimal constants, but with TinyBASIC's three extra radix prefixes.
package numlit

// Read parses the integer literal at the start of span, returning its
// value and how many bytes of span were consumed. ok is false if span does
// not begin with a valid literal (in which case value is 0 and n is 0).
//
// Radix is chosen by the prefix:
//   - "0b" followed by more digits: binary
//   - "0x" followed by more digits: hexadecimal
//   - a leading "0" followed by more digits: octal
//   - anything else: decimal
//
// Unary sign is never consumed here -- a leading '+' or '-' simply isn't
// part of any accepted digit set, so Read stops (or fails) at it, leaving
// sign handling to the caller (the expression evaluator's unary phase).
func Read(span []byte) (value int, n int, ok bool) {
	end := 0
	for end < len(span) && isAlnum(span[end]) {
		end++
	}
	if end == 0 {
		return 0, 0, false
	}
	run := span[:end]

	switch {
	case len(run) > 2 && run[0] == '0' && (run[1] == 'b' || run[1] == 'B'):
		return readDigits(run[2:], 2, end)
	case len(run) > 2 && run[0] == '0' && (run[1] == 'x' || run[1] == 'X'):
		return readDigits(run[2:], 16, end)
	case len(run) > 1 && run[0] == '0':
		return readDigits(run[1:], 8, end)
	default:
		return readDigits(run, 10, end)
	}
}

func isAlnum(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func digitVal(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	default:
		return 0, false
	}
}

func readDigits(digits []byte, base, totalLen int) (value, n int, ok bool) {
	if len(digits) == 0 {
		return 0, 0, false
	}
	for _, d := range digits {
		v, valid := digitVal(d)
		if !valid || v >= base {
			return 0, 0, false
		}
		value = value*base + v
	}
	return value, totalLen, true
}
