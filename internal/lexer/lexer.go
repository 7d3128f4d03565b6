// Package lexer implements the token- and argument-level scanning
// operations of spec §4.2: next-token, argument, optional-argument,
// group-content, delimiter, dimension, glue and unsigned-integer.
//
// A Cursor wraps a borrowed input string and a mutable byte offset into
// it; every successful operation advances the offset in place, the way
// the teacher's Lexer advances position/readPosition on readChar. Cursor
// never mutates the input itself and never allocates for a plain token —
// every returned string is a sub-slice of the original input.
package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cwbudde/go-texmath/internal/perr"
	"github.com/cwbudde/go-texmath/internal/token"
)

// Escape is the control-sequence escape character.
const Escape = '\\'

// Cursor is a mutable read position into a borrowed input string.
type Cursor struct {
	input string
	pos   int // byte offset
}

// NewCursor returns a Cursor positioned at the start of input.
func NewCursor(input string) *Cursor {
	return &Cursor{input: input}
}

// Pos returns the current byte offset into the input.
func (c *Cursor) Pos() int { return c.pos }

// SetPos repositions the cursor to an already-computed byte offset (used
// by the engine when restoring a saved position after a failed optional
// match).
func (c *Cursor) SetPos(pos int) { c.pos = pos }

// Input returns the full original input the cursor was built from.
func (c *Cursor) Input() string { return c.input }

// Rest returns the unconsumed remainder of the input.
func (c *Cursor) Rest() string { return c.input[c.pos:] }

// Done reports whether the cursor has consumed the entire input.
func (c *Cursor) Done() bool { return c.pos >= len(c.input) }

func (c *Cursor) peekRune() (rune, int) {
	if c.pos >= len(c.input) {
		return 0, 0
	}
	r, size := utf8.DecodeRuneInString(c.input[c.pos:])
	return r, size
}

// SkipSpace advances the cursor past any run of ASCII whitespace.
func (c *Cursor) SkipSpace() {
	for {
		r, size := c.peekRune()
		if size == 0 || !isSpace(r) {
			return
		}
		c.pos += size
	}
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r)
}

// NextToken consumes and returns the next Token, skipping leading
// whitespace first.
func (c *Cursor) NextToken() (token.Token, error) {
	c.SkipSpace()
	start := c.pos
	r, size := c.peekRune()
	if size == 0 {
		return token.Token{}, perr.New(perr.EndOfInput)
	}
	if r != Escape {
		c.pos += size
		return token.Token{Kind: token.Character, Char: r, Pos: start}, nil
	}
	c.pos += size // consume '\'

	r, size = c.peekRune()
	if size == 0 {
		return token.Token{}, perr.New(perr.ControlSequence)
	}
	if !isLetter(r) {
		c.pos += size
		return token.Token{Kind: token.ControlSequence, Name: c.input[c.pos-size : c.pos], Pos: start}, nil
	}

	nameStart := c.pos
	for {
		r, size = c.peekRune()
		if size == 0 || !isLetter(r) {
			break
		}
		c.pos += size
	}
	name := c.input[nameStart:c.pos]
	c.SkipSpace()
	return token.Token{Kind: token.ControlSequence, Name: name, Pos: start}, nil
}

// Argument consumes and returns the next Argument: a brace-balanced Group
// if the next non-space character is '{', otherwise a single token.
func (c *Cursor) Argument() (token.Argument, error) {
	c.SkipSpace()
	start := c.pos
	r, size := c.peekRune()
	if size > 0 && r == '{' {
		c.pos += size
		body, err := c.scanBalanced('{', '}')
		if err != nil {
			return token.Argument{}, err
		}
		return token.Argument{Kind: token.ArgGroup, Group: body, Pos: start}, nil
	}
	tok, err := c.NextToken()
	if err != nil {
		return token.Argument{}, err
	}
	return token.Argument{Kind: token.ArgToken, Token: tok, Pos: start}, nil
}

// scanBalanced consumes up to and including the matching close rune,
// tracking nesting depth, and returns the body in between (braces
// excluded). The cursor must already be positioned just after the opening
// rune.
func (c *Cursor) scanBalanced(open, closeR rune) (string, error) {
	depth := 1
	bodyStart := c.pos
	for {
		r, size := c.peekRune()
		if size == 0 {
			return "", perr.Newf(perr.UnbalancedGroup, string(closeR))
		}
		if r == Escape {
			// An escaped control sequence never contributes to brace
			// depth, even a one-character one naming '{' or '}'.
			c.pos += size
			_, nsize := c.peekRune()
			if nsize > 0 {
				c.pos += nsize
			}
			continue
		}
		switch r {
		case open:
			depth++
			c.pos += size
		case closeR:
			depth--
			c.pos += size
			if depth == 0 {
				return c.input[bodyStart : c.pos-size], nil
			}
		default:
			c.pos += size
		}
	}
}

// OptionalArgument consumes a `[ ... ]` argument if present. If the next
// non-space character is not `[`, the cursor is left untouched (including
// the whitespace it would otherwise have skipped) and ok is false.
func (c *Cursor) OptionalArgument() (body string, ok bool, err error) {
	saved := c.pos
	c.SkipSpace()
	r, size := c.peekRune()
	if size == 0 || r != '[' {
		c.pos = saved
		return "", false, nil
	}
	c.pos += size
	body, err = c.scanBalanced('[', ']')
	if err != nil {
		return "", false, err
	}
	return body, true, nil
}

// GroupContent scans forward from the current position tracking nesting
// depth over the literal openMarker/closeMarker strings (which may be
// single characters or multi-character control sequences, e.g.
// "\begin{array}"/"\end{array}"), returning the view between the already
// -consumed opening marker and the matching closing marker. The closing
// marker is consumed; the opening marker must already have been consumed
// by the caller before this is invoked.
func (c *Cursor) GroupContent(openMarker, closeMarker string) (string, error) {
	depth := 1
	start := c.pos
	for {
		if c.pos >= len(c.input) {
			return "", perr.Newf(perr.UnbalancedGroup, closeMarker)
		}
		rest := c.input[c.pos:]
		if strings.HasPrefix(rest, closeMarker) {
			depth--
			end := c.pos
			c.pos += len(closeMarker)
			if depth == 0 {
				return c.input[start:end], nil
			}
			continue
		}
		if strings.HasPrefix(rest, openMarker) {
			depth++
			c.pos += len(openMarker)
			continue
		}
		_, size := c.peekRune()
		if size == 0 {
			size = 1
		}
		c.pos += size
	}
}

// ScanKeywordPair scans forward from the current position, depth-tracking
// over two control-sequence keywords given without their escape character
// (e.g. "left"/"right", matching `\left`/`\right`), and returns the body
// between the already-consumed opening keyword and the matching closing
// keyword (which is consumed). A keyword match requires the following
// byte not be a letter, so "\lefteqn" does not falsely open "\left".
func (c *Cursor) ScanKeywordPair(openWord, closeWord string) (string, error) {
	open := string(Escape) + openWord
	close_ := string(Escape) + closeWord
	depth := 1
	start := c.pos
	for {
		if c.pos >= len(c.input) {
			return "", perr.Newf(perr.UnbalancedGroup, `\`+closeWord)
		}
		rest := c.input[c.pos:]
		if strings.HasPrefix(rest, close_) && !wordContinues(rest, len(close_)) {
			depth--
			end := c.pos
			c.pos += len(close_)
			if depth == 0 {
				return c.input[start:end], nil
			}
			continue
		}
		if strings.HasPrefix(rest, open) && !wordContinues(rest, len(open)) {
			depth++
			c.pos += len(open)
			continue
		}
		_, size := c.peekRune()
		if size == 0 {
			size = 1
		}
		c.pos += size
	}
}

func wordContinues(s string, after int) bool {
	if after >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[after:])
	return isLetter(r)
}

// Delimiter reads the next token and maps it to a delimiter character via
// the classification tables, without assigning it a role (the caller
// knows whether it is being used as an opener, closer or fence).
func (c *Cursor) Delimiter(resolve func(token.Token) (rune, bool)) (rune, error) {
	tok, err := c.NextToken()
	if err != nil {
		return 0, err
	}
	if ch, ok := resolve(tok); ok {
		return ch, nil
	}
	return 0, perr.New(perr.Delimiter)
}

// ConsumeDigitRun consumes a maximal run of ASCII digits starting at the
// current position, allowing '.' and ',' separators inside it, each only
// when followed by at least one more digit (so "3.14" and "1,000,000" are
// each read as one run, but a trailing "3." stops before the dot).
func (c *Cursor) ConsumeDigitRun() {
	for {
		r, size := c.peekRune()
		if size == 0 {
			return
		}
		if r >= '0' && r <= '9' {
			c.pos += size
			continue
		}
		if r == '.' || r == ',' {
			saved := c.pos
			c.pos += size
			r2, size2 := c.peekRune()
			if size2 > 0 && r2 >= '0' && r2 <= '9' {
				continue
			}
			c.pos = saved
		}
		return
	}
}

// UnsignedInteger consumes a run of decimal digits and parses it.
func (c *Cursor) UnsignedInteger() (uint32, error) {
	start := c.pos
	for {
		r, size := c.peekRune()
		if size == 0 || r < '0' || r > '9' {
			break
		}
		c.pos += size
	}
	if c.pos == start {
		return 0, perr.New(perr.Number)
	}
	v, err := strconv.ParseUint(c.input[start:c.pos], 10, 32)
	if err != nil {
		return 0, perr.New(perr.Number)
	}
	return uint32(v), nil
}
