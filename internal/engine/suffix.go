package engine

import (
	"github.com/cwbudde/go-texmath/internal/lexer"
	"github.com/cwbudde/go-texmath/internal/perr"
	"github.com/cwbudde/go-texmath/internal/token"
	"github.com/cwbudde/go-texmath/pkg/event"
)

// checkSuffixes looks immediately past the atom just staged in d.staging
// for one or two of `_`/`^`, and if present, prepends a Script marker and
// appends the suffix argument's instructions — splicing so that, when both
// a sub- and a superscript are present, they always end up ordered
// subscript-then-superscript in the stream regardless of which the source
// wrote first (invariant 4, spec §8). This mirrors the original reference
// parser's check_suffixes: because the base's instructions are still only
// staged (not yet pushed to the instruction stack or emitted), inserting a
// marker ahead of them is a cheap slice operation, never a re-parse.
func (d *Driver) checkSuffixes(cur *lexer.Cursor, base int) error {
	firstPos, firstChar, ok := peekScriptChar(cur)
	if !ok {
		return nil
	}

	var subInstrs, supInstrs []instruction
	var haveSub, haveSup bool

	if err := d.takeScript(cur, base, firstPos, firstChar, &subInstrs, &supInstrs, &haveSub, &haveSup); err != nil {
		return err
	}

	secondPos, secondChar, ok := peekScriptChar(cur)
	if ok {
		if (secondChar == '_' && haveSub) || (secondChar == '^' && haveSup) {
			kind := perr.DoubleSubscript
			if haveSup && secondChar == '^' {
				kind = perr.DoubleSuperscript
			}
			return d.fail(base+secondPos, perr.New(kind))
		}
		if err := d.takeScript(cur, base, secondPos, secondChar, &subInstrs, &supInstrs, &haveSub, &haveSup); err != nil {
			return err
		}
	}

	baseInstrs := append([]instruction(nil), d.staging...)
	var scriptType event.ScriptType
	switch {
	case haveSub && haveSup:
		scriptType = event.SubSuperscript
	case haveSub:
		scriptType = event.Subscript
	default:
		scriptType = event.Superscript
	}

	position := event.Adjacent
	if d.aboveBelowDefault {
		position = event.AboveBelow
	}

	d.staging = d.staging[:0]
	d.stageEvent(event.Script{Type: scriptType, Position: position})
	d.staging = append(d.staging, baseInstrs...)
	if haveSub {
		d.staging = append(d.staging, subInstrs...)
	}
	if haveSup {
		d.staging = append(d.staging, supInstrs...)
	}
	return nil
}

// peekScriptChar reports the position and identity of an upcoming `_`/`^`
// character token without consuming it.
func peekScriptChar(cur *lexer.Cursor) (int, rune, bool) {
	saved := cur.Pos()
	tok, err := cur.NextToken()
	cur.SetPos(saved)
	if err != nil || tok.Kind != token.Character || (tok.Char != '_' && tok.Char != '^') {
		return 0, 0, false
	}
	return tok.Pos, tok.Char, true
}

// takeScript consumes the `_`/`^` token already identified at pos (the
// caller peeked it; this call re-reads and commits to consuming it) and
// its required argument, recording the result into *subInstrs/*supInstrs.
func (d *Driver) takeScript(cur *lexer.Cursor, base, pos int, ch rune, subInstrs, supInstrs *[]instruction, haveSub, haveSup *bool) error {
	// Commit to consuming the marker token peekScriptChar identified.
	if _, err := cur.NextToken(); err != nil {
		return d.fail(base+pos, err)
	}

	emptyKind := perr.EmptySubscript
	if ch == '^' {
		emptyKind = perr.EmptySuperscript
	}

	// A second script marker immediately following, with no content in
	// between, is either a repeat of the same kind (DoubleSubscript /
	// DoubleSuperscript) or the other kind with nothing to attach to
	// (treated as the first marker's argument being empty).
	if pos2, ch2, ok := peekScriptChar(cur); ok {
		if ch2 == ch {
			doubleKind := perr.DoubleSubscript
			if ch == '^' {
				doubleKind = perr.DoubleSuperscript
			}
			return d.fail(base+pos2, perr.New(doubleKind))
		}
		return d.fail(base+pos, perr.New(emptyKind))
	}

	argPos := cur.Pos()
	arg, err := cur.Argument()
	if err != nil {
		if pe, ok := err.(*perr.Error); ok && pe.Kind == perr.EndOfInput {
			return d.fail(base+pos, perr.New(emptyKind))
		}
		return d.fail(base+argPos, err)
	}
	if arg.Kind == token.ArgGroup && arg.Group == "" {
		return d.fail(base+pos, perr.New(emptyKind))
	}
	instrs, err := d.argumentInstructions(cur, base, arg, event.GroupNormal)
	if err != nil {
		return err
	}

	if ch == '_' {
		*subInstrs = instrs
		*haveSub = true
	} else {
		*supInstrs = instrs
		*haveSup = true
	}
	return nil
}
