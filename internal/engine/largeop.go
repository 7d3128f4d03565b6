package engine

import (
	"github.com/cwbudde/go-texmath/internal/lexer"
	"github.com/cwbudde/go-texmath/pkg/event"
)

// registerLargeOp wires a control sequence producing a LargeOp content
// leaf. stacksLimits records spec §3's "above-below-default" state flag
// for this primitive: whether a following sub/superscript should compose
// with ScriptPosition AboveBelow (stacked, e.g. \sum's limits) rather than
// Adjacent (e.g. \int's, which sit beside the glyph even in display
// style). checkSuffixes (suffix.go) reads d.aboveBelowDefault, which
// stepAtom resets before every atom and this handler sets for the one it
// just produced.
func registerLargeOp(name string, ch rune, stacksLimits bool) {
	register(name, func(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
		d.stageEvent(event.Content{Role: event.RoleLargeOp, Char: ch})
		d.aboveBelowDefault = stacksLimits
		return true, nil
	})
}

// registerLargeOpWord is the textual-name counterpart (\lim, \max, ...):
// a LargeOp leaf carrying a View instead of a single Char.
func registerLargeOpWord(name string, stacksLimits bool) {
	register(name, func(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
		d.stageEvent(event.Content{Role: event.RoleLargeOp, View: name})
		d.aboveBelowDefault = stacksLimits
		return true, nil
	})
}

func init() {
	registerLargeOp("sum", '∑', true)
	registerLargeOp("prod", '∏', true)
	registerLargeOp("coprod", '∐', true)
	registerLargeOp("int", '∫', false)
	registerLargeOp("iint", '∬', false)
	registerLargeOp("iiint", '∭', false)
	registerLargeOp("oint", '∮', false)
	registerLargeOp("bigcup", '⋃', true)
	registerLargeOp("bigcap", '⋂', true)
	registerLargeOp("bigvee", '⋁', true)
	registerLargeOp("bigwedge", '⋀', true)
	registerLargeOp("bigoplus", '⨁', true)
	registerLargeOp("bigotimes", '⨂', true)
	registerLargeOp("bigodot", '⨀', true)
	registerLargeOp("biguplus", '⨄', true)
	registerLargeOp("bigsqcup", '⨆', true)

	registerLargeOpWord("lim", true)
	registerLargeOpWord("sup", false)
	registerLargeOpWord("inf", false)
	registerLargeOpWord("max", false)
	registerLargeOpWord("min", false)
	registerLargeOpWord("limsup", true)
	registerLargeOpWord("liminf", true)
	registerLargeOpWord("gcd", false)
	registerLargeOpWord("Pr", true)
}
