package engine

import (
	"github.com/cwbudde/go-texmath/internal/classify"
	"github.com/cwbudde/go-texmath/internal/lexer"
	"github.com/cwbudde/go-texmath/internal/perr"
	"github.com/cwbudde/go-texmath/internal/token"
	"github.com/cwbudde/go-texmath/pkg/event"
)

func init() {
	registerScopedFont("mathbf", event.FontBold)
	registerScopedFont("mathit", event.FontItalic)
	registerScopedFont("mathrm", event.FontUpright)
	registerScopedFont("mathsf", event.FontSansSerif)
	registerScopedFont("mathtt", event.FontMonospace)
	registerScopedFont("mathcal", event.FontScript)
	registerScopedFont("mathfrak", event.FontFraktur)
	registerScopedFont("mathbb", event.FontDoubleStruck)
	registerScopedFont("boldsymbol", event.FontBoldItalic)

	registerSticky("bf", event.FontBold)
	registerSticky("it", event.FontItalic)
	registerSticky("rm", event.FontUpright)
	registerSticky("sf", event.FontSansSerif)
	registerSticky("tt", event.FontMonospace)

	registerStyle("displaystyle", event.StyleDisplay)
	registerStyle("textstyle", event.StyleText)
	registerStyle("scriptstyle", event.StyleScript)
	registerStyle("scriptscriptstyle", event.StyleScriptScript)
}

// registerScopedFont wires a command that takes one required group
// argument and wraps it in an invisible group carrying the font state
// change, scoped to exactly that argument (e.g. \mathbf{x}).
func registerScopedFont(name string, font event.FontVariant) {
	register(name, func(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
		instrs, err := d.consumeArgumentBody(cur, base, event.GroupInternal, false)
		if err != nil {
			return false, err
		}
		d.stageEvent(event.Begin{Kind: event.GroupInternal})
		d.stageEvent(event.StateChange{Kind: event.StateFont, Font: font, HasFont: true})
		d.staging = append(d.staging, instrs...)
		d.stageEvent(event.End{})
		return true, nil
	})
}

// registerSticky wires a command that changes the ambient font for the
// remainder of the enclosing group, with no argument and no group of its
// own (e.g. \bf). It is not itself suffix-eligible.
func registerSticky(name string, font event.FontVariant) {
	register(name, func(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
		d.stageEvent(event.StateChange{Kind: event.StateFont, Font: font, HasFont: true})
		return false, nil
	})
}

func registerStyle(name string, style event.Style) {
	register(name, func(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
		d.stageEvent(event.StateChange{Kind: event.StateStyle, Style: style})
		return false, nil
	})
}

func init() {
	register("color", handleColorSticky)
	register("textcolor", handleTextColor)
	register("colorbox", handleColorBox)
	register("fcolorbox", handleFColorBox)
}

// handleColorSticky implements \color{name}: a sticky state change
// affecting the rest of the enclosing group, validated against the
// closed color catalog (spec §6).
func handleColorSticky(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
	name, pos, err := readColorArgument(d, cur, base)
	if err != nil {
		return false, err
	}
	if !classify.IsPrimitiveColor(name) {
		return false, d.fail(base+pos, perr.New(perr.UnknownColor))
	}
	d.stageEvent(event.StateChange{Kind: event.StateColor, Color: classify.NormalizeColor(name), ColorTarget: event.ColorText})
	return false, nil
}

// handleTextColor implements \textcolor{name}{content}: scoped, like the
// font commands.
func handleTextColor(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
	name, pos, err := readColorArgument(d, cur, base)
	if err != nil {
		return false, err
	}
	if !classify.IsPrimitiveColor(name) {
		return false, d.fail(base+pos, perr.New(perr.UnknownColor))
	}
	instrs, err := d.consumeArgumentBody(cur, base, event.GroupInternal, false)
	if err != nil {
		return false, err
	}
	d.stageEvent(event.Begin{Kind: event.GroupInternal})
	d.stageEvent(event.StateChange{Kind: event.StateColor, Color: classify.NormalizeColor(name), ColorTarget: event.ColorText})
	d.staging = append(d.staging, instrs...)
	d.stageEvent(event.End{})
	return true, nil
}

// handleColorBox implements \colorbox{name}{content}: like \textcolor but
// targeting the background.
func handleColorBox(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
	name, pos, err := readColorArgument(d, cur, base)
	if err != nil {
		return false, err
	}
	if !classify.IsPrimitiveColor(name) {
		return false, d.fail(base+pos, perr.New(perr.UnknownColor))
	}
	instrs, err := d.consumeArgumentBody(cur, base, event.GroupInternal, false)
	if err != nil {
		return false, err
	}
	d.stageEvent(event.Begin{Kind: event.GroupInternal})
	d.stageEvent(event.StateChange{Kind: event.StateColor, Color: classify.NormalizeColor(name), ColorTarget: event.ColorBackground})
	d.staging = append(d.staging, instrs...)
	d.stageEvent(event.End{})
	return true, nil
}

// handleFColorBox implements \fcolorbox{border}{fill}{content}: the
// border color is validated but, with no border-drawing event in the
// vocabulary, only the fill color and content are carried forward.
func handleFColorBox(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
	border, pos, err := readColorArgument(d, cur, base)
	if err != nil {
		return false, err
	}
	if !classify.IsPrimitiveColor(border) {
		return false, d.fail(base+pos, perr.New(perr.UnknownColor))
	}
	return handleColorBox(d, cur, base)
}

func readColorArgument(d *Driver, cur *lexer.Cursor, base int) (string, int, error) {
	pos := cur.Pos()
	arg, err := cur.Argument()
	if err != nil {
		return "", 0, d.fail(base+pos, err)
	}
	if arg.Kind == token.ArgGroup {
		return arg.Group, arg.Pos + 1, nil
	}
	if arg.Token.Kind == token.Character {
		return string(arg.Token.Char), arg.Pos, nil
	}
	return arg.Token.Name, arg.Pos, nil
}
