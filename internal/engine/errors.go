package engine

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cwbudde/go-texmath/internal/perr"
	"github.com/cwbudde/go-texmath/pkg/event"
)

// contextRadius is the number of code points of input retained on each side
// of a failure when assembling its context window (spec §4.6).
const contextRadius = 15

// ParseError is the terminal, consumer-facing error the driver yields:
// the closed-set Kind plus a byte offset and a bounded context window into
// the original input, rendered the way the teacher's CompilerError renders
// a caret under the offending column.
type ParseError struct {
	Kind     perr.Kind
	Expected string
	Offset   int
	Context  string
	Marker   int // byte offset of Offset within Context
}

func (e *ParseError) Error() string {
	inner := (&perr.Error{Kind: e.Kind, Expected: e.Expected}).Error()
	if e.Context == "" {
		return inner
	}
	return fmt.Sprintf("%s (at byte %d: %q)", inner, e.Offset, e.Context)
}

// Unwrap lets callers errors.Is/As against the underlying perr.Kind-bearing
// error without reaching into an internal package.
func (e *ParseError) Unwrap() error {
	return &perr.Error{Kind: e.Kind, Expected: e.Expected}
}

// Format renders the error with a source-context window and a caret
// pointing at the failing byte, the way the teacher's CompilerError.Format
// renders a line-oriented caret under the offending column. color adds
// ANSI bold-red styling around the caret for terminal output.
func (e *ParseError) Format(color bool) string {
	inner := (&perr.Error{Kind: e.Kind, Expected: e.Expected}).Error()
	if e.Context == "" {
		return inner
	}

	var sb strings.Builder
	sb.WriteString(inner)
	sb.WriteString("\n    ")
	sb.WriteString(e.Context)
	sb.WriteString("\n    ")
	sb.WriteString(strings.Repeat(" ", runeCountUpTo(e.Context, e.Marker)))
	if color {
		sb.WriteString("\033[1;31m")
	}
	sb.WriteString("^")
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

// runeCountUpTo returns the number of code points in s[:n].
func runeCountUpTo(s string, n int) int {
	if n > len(s) {
		n = len(s)
	}
	return utf8.RuneCountInString(s[:n])
}

// buildParseError assembles a ParseError for a failure at byte offset
// `at` in the full input, taking up to contextRadius code points on each
// side.
func buildParseError(input string, at int, err error) *ParseError {
	pe, ok := err.(*perr.Error)
	kind := perr.EndOfInput
	expected := ""
	if ok {
		kind = pe.Kind
		expected = pe.Expected
	}

	if at < 0 {
		at = 0
	}
	if at > len(input) {
		at = len(input)
	}

	start := backN(input, at, contextRadius)
	end := forwardN(input, at, contextRadius)

	return &ParseError{
		Kind:     kind,
		Expected: expected,
		Offset:   at,
		Context:  input[start:end],
		Marker:   at - start,
	}
}

// backN returns the byte offset n code points before pos (clamped to 0).
func backN(s string, pos, n int) int {
	i := pos
	for ; n > 0 && i > 0; n-- {
		_, size := decodeLastRune(s[:i])
		i -= size
	}
	return i
}

// forwardN returns the byte offset n code points after pos (clamped to
// len(s)).
func forwardN(s string, pos, n int) int {
	i := pos
	for ; n > 0 && i < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size == 0 {
			break
		}
		i += size
	}
	return i
}

func decodeLastRune(s string) (rune, int) {
	r, size := utf8.DecodeLastRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return r, 1
	}
	return r, size
}

// expectedCloser names the closing marker a group kind expects, for
// UnbalancedGroup error messages.
func expectedCloser(kind event.GroupKind) string {
	switch kind {
	case event.GroupLeftRight:
		return `\right`
	case event.GroupArray, event.GroupMatrix, event.GroupCases, event.GroupAlign:
		return `\end`
	default:
		return "}"
	}
}
