package parser

import (
	"errors"
	"fmt"
	"strings"
)

// SyntaxError is a single scan or parse error tied to a source location.
// Incomplete marks errors caused by input ending too early; the REPL uses
// it to keep reading continuation lines.
type SyntaxError struct {
	Line       int
	Where      string // "", " at 'lexeme'" or " at end"
	Message    string
	Incomplete bool
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Message)
}

// ErrorList accumulates every error found during one scan-and-parse pass.
// Parsing never aborts on the first error; the whole batch is reported.
type ErrorList []*SyntaxError

func (l ErrorList) Error() string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// Err returns the list as an error, or nil when no errors were recorded.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l *ErrorList) add(e *SyntaxError) *SyntaxError {
	*l = append(*l, e)
	return e
}

// IsIncomplete reports whether every recorded error stems from input that
// ended mid-construct, meaning more lines could still make it valid.
func IsIncomplete(err error) bool {
	var list ErrorList
	if errors.As(err, &list) {
		if len(list) == 0 {
			return false
		}
		for _, e := range list {
			if !e.Incomplete {
				return false
			}
		}
		return true
	}
	var single *SyntaxError
	if errors.As(err, &single) {
		return single.Incomplete
	}
	return false
}
