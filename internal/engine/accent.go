package engine

import (
	"github.com/cwbudde/go-texmath/internal/lexer"
	"github.com/cwbudde/go-texmath/pkg/event"
)

// accentCombining maps an accent command to the Unicode combining mark
// placed over its argument (mirroring how the original reference parser
// renders accents as a combining character applied to the base, rather
// than as a distinct visual composite).
var accentCombining = map[string]rune{
	"hat": '̂', "widehat": '̂',
	"bar": '̄', "overline": '̅',
	"dot": '̇', "ddot": '̈',
	"tilde": '̃', "widetilde": '̃',
	"vec": '⃗', "check": '̌',
	"breve": '̆', "acute": '́', "grave": '̀',
}

func init() {
	for name, mark := range accentCombining {
		registerAccent(name, mark, event.Superscript)
	}
	register("underline", registerUnderOverline(false))
	register("overbrace", registerUnderOverbrace(true))
	register("underbrace", registerUnderOverbrace(false))
}

// registerAccent wires a one-argument accent command as spec §4.3
// category 6 prescribes: a Script marker of arity two (AboveBelow
// position), its base (the argument, group-wrapped the same as any other
// user-supplied argument) as the first child, and the accent glyph itself
// as the bare second child. scriptType is Superscript for over-accents and
// Subscript for under-accents (\underline, \underbrace).
func registerAccent(name string, mark rune, scriptType event.ScriptType) {
	register(name, func(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
		instrs, err := d.consumeArgument(cur, base, event.GroupNormal)
		if err != nil {
			return false, err
		}
		d.stageEvent(event.Script{Type: scriptType, Position: event.AboveBelow})
		d.staging = append(d.staging, instrs...)
		d.stageEvent(event.Content{Role: event.RoleOrdinary, Char: mark})
		return true, nil
	})
}

// registerUnderOverline returns the handler for \underline (over==false)
// or a plain \overline-style combining line (over==true).
func registerUnderOverline(over bool) func(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
	mark := rune('̲') // combining low line
	scriptType := event.Subscript
	if over {
		mark = '̅' // combining overline
		scriptType = event.Superscript
	}
	return func(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
		instrs, err := d.consumeArgument(cur, base, event.GroupNormal)
		if err != nil {
			return false, err
		}
		d.stageEvent(event.Script{Type: scriptType, Position: event.AboveBelow})
		d.staging = append(d.staging, instrs...)
		d.stageEvent(event.Content{Role: event.RoleOrdinary, Char: mark})
		return true, nil
	}
}

// registerUnderOverbrace wires \overbrace/\underbrace: the base, then the
// stretchy brace glyph standing in for the accent, as a Script pair.
func registerUnderOverbrace(over bool) func(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
	ch := '⏟' // bottom curly bracket
	scriptType := event.Subscript
	if over {
		ch = '⏞' // top curly bracket
		scriptType = event.Superscript
	}
	return func(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
		instrs, err := d.consumeArgument(cur, base, event.GroupNormal)
		if err != nil {
			return false, err
		}
		d.stageEvent(event.Script{Type: scriptType, Position: event.AboveBelow})
		d.staging = append(d.staging, instrs...)
		d.stageEvent(event.Content{Role: event.RoleOrdinary, Char: ch, Stretchy: true})
		return true, nil
	}
}
