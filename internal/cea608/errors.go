package cea608

import "fmt"

// FormatError reports a stream that is not valid SCC: bad magic line, a
// malformed data line, or a timecode earlier than its predecessor. Decoding
// stops at the first occurrence and no partial result is returned.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("scc format: line %d: %s", e.Line, e.Msg)
}

// ParityError reports a byte whose odd-parity bit check failed while parity
// checking was enabled. Like FormatError it is fatal to the whole decode.
type ParityError struct {
	Line int
	Word string
}

func (e *ParityError) Error() string {
	return fmt.Sprintf("scc parity: line %d: bad parity in word %q", e.Line, e.Word)
}
