package engine

import (
	"github.com/cwbudde/go-texmath/internal/lexer"
	"github.com/cwbudde/go-texmath/internal/perr"
	"github.com/cwbudde/go-texmath/pkg/event"
)

func init() {
	register("text", handleText)
	register("not", registerNegation())
	register("cancel", registerNegation())
	register("char", handleChar)
	register("relax", handleRelax)
}

// handleText implements \text{...}: its argument is carried verbatim as a
// Text content view rather than being re-parsed as math (spec §4.9 treats
// text mode as opaque content, not a nested group).
func handleText(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
	pos := cur.Pos()
	arg, err := cur.Argument()
	if err != nil {
		return false, d.fail(base+pos, err)
	}
	view := arg.Group
	if view == "" {
		view = string(arg.Token.Char)
		if arg.Token.Name != "" {
			view = arg.Token.Name
		}
	}
	d.stageEvent(event.Content{Role: event.RoleText, View: view})
	return true, nil
}

// registerNegation builds the handler shared by \not and \cancel: a
// VisualNegation marker followed by the argument it strikes through.
func registerNegation() func(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
	return func(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
		instrs, err := d.consumeArgument(cur, base, event.GroupNormal)
		if err != nil {
			return false, err
		}
		d.stageEvent(event.Visual{Kind: event.VisualNegation})
		d.staging = append(d.staging, instrs...)
		return true, nil
	}
}

// handleChar implements \char N: a literal character-code reference, valid
// only in the 0-255 range (spec §4.9).
func handleChar(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
	pos := cur.Pos()
	cur.SkipSpace()
	n, err := cur.UnsignedInteger()
	if err != nil {
		return false, d.fail(base+pos, perr.New(perr.CharacterNumber))
	}
	if n > 255 {
		return false, d.fail(base+pos, perr.New(perr.InvalidCharNumber))
	}
	d.stageEvent(event.Content{Role: event.RoleOrdinary, Char: rune(n)})
	return true, nil
}

// handleRelax implements \relax as an ordinary no-op at the top level,
// unless the driver was built with WithInvalidateRelax, which some
// contexts require (spec §3's "invalidate-relax" state flag). It is not
// suffix-eligible. Contexts that must reject it outright regardless of
// this option (e.g. as a braceless script argument) detect it themselves
// before dispatch.
func handleRelax(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
	if d.opts.invalidateRelax {
		return false, d.fail(base+cur.Pos(), perr.New(perr.Relax))
	}
	return false, nil
}
