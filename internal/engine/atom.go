package engine

import (
	"unicode"

	"github.com/cwbudde/go-texmath/internal/classify"
	"github.com/cwbudde/go-texmath/internal/lexer"
	"github.com/cwbudde/go-texmath/internal/perr"
	"github.com/cwbudde/go-texmath/internal/token"
	"github.com/cwbudde/go-texmath/pkg/event"
)

// stepAtom parses exactly one atom (and, if it is suffix-eligible, any
// trailing sub/superscript) from the fragment at the top of the
// instruction stack, staging its instructions, then splices the staged
// instructions onto the stack above the fragment's remaining text.
func (d *Driver) stepAtom() error {
	frag, _ := d.instructions.top()
	cur := lexer.NewCursor(frag.pending)
	base := frag.base
	d.staging = d.staging[:0]
	d.allowAlign = frag.allowAlign
	d.aboveBelowDefault = false

	isAtom, err := d.parseAtom(cur, base, frag.allowAlign)
	if err == nil && isAtom {
		err = d.checkSuffixes(cur, base)
	}

	consumed := cur.Pos()
	frag.pending = frag.pending[consumed:]
	frag.base = base + consumed
	d.instructions.setTop(frag)

	if err != nil {
		return err
	}
	d.instructions.pushAll(d.staging)
	return nil
}

// stage appends an instruction to the current atom's staging buffer.
func (d *Driver) stage(i instruction) { d.staging = append(d.staging, i) }

func (d *Driver) stageEvent(ev event.Event) { d.stage(eventInstr(ev)) }

// parseAtom reads exactly one token from cur and produces the instructions
// for the atom it introduces. isAtom reports whether the production is
// eligible for a following sub/superscript (spec §4.4): most content is,
// but spacing, state changes, \relax and alignment markers are not.
func (d *Driver) parseAtom(cur *lexer.Cursor, base int, allowAlign bool) (bool, error) {
	tok, err := cur.NextToken()
	if err != nil {
		if pe, ok := err.(*perr.Error); ok && pe.Kind == perr.EndOfInput {
			return false, nil
		}
		return false, d.fail(base+cur.Pos(), err)
	}
	if d.opts.trace != nil {
		d.opts.trace(traceDescription(tok))
	}
	switch tok.Kind {
	case token.Character:
		return d.handleChar(cur, base, tok, allowAlign)
	default:
		return d.handleControlSequence(cur, base, tok)
	}
}

// handleChar classifies a single character token per spec §4.3.
func (d *Driver) handleChar(cur *lexer.Cursor, base int, tok token.Token, allowAlign bool) (bool, error) {
	c := tok.Char
	switch c {
	case '{':
		body, err := cur.GroupContent("{", "}")
		if err != nil {
			return false, d.fail(base+tok.Pos, err)
		}
		d.stageEvent(event.Begin{Kind: event.GroupNormal})
		d.stage(groupBodyInstr(body, base+tok.Pos+1, event.GroupNormal, false))
		d.stageEvent(event.End{})
		return true, nil
	case '}':
		return false, d.fail(base+tok.Pos, perr.Newf(perr.UnbalancedGroup, "{"))
	case '_':
		return false, d.fail(base+tok.Pos, perr.New(perr.SubscriptAsToken))
	case '^':
		return false, d.fail(base+tok.Pos, perr.New(perr.SuperscriptAsToken))
	case '&':
		if !allowAlign {
			return false, d.fail(base+tok.Pos, perr.New(perr.AlignmentChar))
		}
		d.stageEvent(event.Alignment{})
		return false, nil
	case '#':
		return false, d.fail(base+tok.Pos, perr.New(perr.HashSign))
	case '$':
		return false, d.fail(base+tok.Pos, perr.New(perr.MathShift))
	case '~':
		d.stageEvent(event.Content{Role: event.RoleText, View: " "})
		return true, nil
	case '\'':
		d.stageEvent(event.Content{Role: event.RoleOrdinary, Char: '′'})
		return true, nil
	}

	if c >= '0' && c <= '9' {
		start := tok.Pos
		cur.ConsumeDigitRun()
		d.stageEvent(event.Content{Role: event.RoleNumber, View: cur.Input()[start:cur.Pos()]})
		return true, nil
	}

	instr, err := charContentEvent(c)
	if err != nil {
		return false, d.fail(base+tok.Pos, err)
	}
	d.stageEvent(instr)
	return true, nil
}

// charContentEvent builds the leaf Content event for a single, already
// -classified character (used for both plain characters and single-token
// arguments).
func charContentEvent(c rune) (event.Event, error) {
	switch {
	case isLetterRune(c):
		return event.Content{Role: event.RoleIdentifier, Char: c}, nil
	case classify.IsBinary(c):
		return event.Content{Role: event.RoleBinaryOp, Char: c}, nil
	case classify.IsRelation(c):
		return event.Content{Role: event.RoleRelation, Char: c}, nil
	case classify.IsDelimiterChar(c):
		return event.Content{Role: event.RoleOrdinary, Char: c, Stretchy: true}, nil
	case classify.IsOperator(c):
		return event.Content{Role: event.RolePunctuation, Char: c}, nil
	default:
		return event.Content{Role: event.RoleOrdinary, Char: c}, nil
	}
}

func isLetterRune(c rune) bool {
	return unicode.IsLetter(c)
}

// traceDescription renders a short human-readable description of a token
// for WithTrace callbacks.
func traceDescription(tok token.Token) string {
	if tok.Kind == token.ControlSequence {
		return `\` + tok.Name
	}
	return string(tok.Char)
}
