package engine

import (
	"github.com/cwbudde/go-texmath/internal/lexer"
	"github.com/cwbudde/go-texmath/internal/perr"
	"github.com/cwbudde/go-texmath/internal/token"
	"github.com/cwbudde/go-texmath/pkg/event"
)

func init() {
	register("frac", handleFrac)
	register("cfrac", handleCfrac)
	register("tfrac", registerStyledFrac(event.StyleText))
	register("dfrac", registerStyledFrac(event.StyleDisplay))
	register("binom", handleBinom)
	register("genfrac", handleGenfrac)
}

// fractionChildren reads the two required group/token arguments common to
// every \frac-family primitive and stages them as the Visual's two
// children, in numerator-then-denominator order.
func (d *Driver) fractionChildren(cur *lexer.Cursor, base int, bar *event.Amount) (bool, error) {
	num, err := d.consumeArgument(cur, base, event.GroupNormal)
	if err != nil {
		return false, err
	}
	den, err := d.consumeArgument(cur, base, event.GroupNormal)
	if err != nil {
		return false, err
	}
	d.stageEvent(event.Visual{Kind: event.VisualFraction, BarThickness: bar})
	d.staging = append(d.staging, num...)
	d.staging = append(d.staging, den...)
	return true, nil
}

func handleFrac(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
	return d.fractionChildren(cur, base, nil)
}

// handleCfrac implements \cfrac[pos]{num}{den}: TeX's continued-fraction
// form, conventionally rendered in display style regardless of the
// surrounding style. The optional l/r placement argument is accepted but
// has no corresponding event — there is nothing downstream to place.
func handleCfrac(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
	if _, _, err := cur.OptionalArgument(); err != nil {
		return false, d.fail(base+cur.Pos(), err)
	}
	num, err := d.consumeArgument(cur, base, event.GroupNormal)
	if err != nil {
		return false, err
	}
	den, err := d.consumeArgument(cur, base, event.GroupNormal)
	if err != nil {
		return false, err
	}
	d.stageEvent(event.Begin{Kind: event.GroupInternal})
	d.stageEvent(event.StateChange{Kind: event.StateStyle, Style: event.StyleDisplay})
	d.stageEvent(event.Visual{Kind: event.VisualFraction})
	d.staging = append(d.staging, num...)
	d.staging = append(d.staging, den...)
	d.stageEvent(event.End{})
	return true, nil
}

// registerStyledFrac builds the handler for \tfrac/\dfrac: a plain
// fraction wrapped in an invisible group that forces the given style for
// both its arguments (the way plain TeX's \tfrac/\dfrac are macros around
// \frac plus a style switch).
func registerStyledFrac(style event.Style) func(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
	return func(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
		num, err := d.consumeArgument(cur, base, event.GroupNormal)
		if err != nil {
			return false, err
		}
		den, err := d.consumeArgument(cur, base, event.GroupNormal)
		if err != nil {
			return false, err
		}
		d.stageEvent(event.Begin{Kind: event.GroupInternal})
		d.stageEvent(event.StateChange{Kind: event.StateStyle, Style: style})
		d.stageEvent(event.Visual{Kind: event.VisualFraction})
		d.staging = append(d.staging, num...)
		d.staging = append(d.staging, den...)
		d.stageEvent(event.End{})
		return true, nil
	}
}

// handleBinom implements \binom{n}{k}: a zero-thickness fraction wrapped in
// parentheses, per the usual \binom-as-\genfrac convention.
func handleBinom(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
	num, err := d.consumeArgument(cur, base, event.GroupNormal)
	if err != nil {
		return false, err
	}
	den, err := d.consumeArgument(cur, base, event.GroupNormal)
	if err != nil {
		return false, err
	}
	zero := event.Amount{Value: 0, Unit: event.UnitPt}
	d.stageEvent(event.Begin{Kind: event.GroupLeftRight, Open: '(', Close: ')', HasOpen: true, HasClose: true})
	d.stageEvent(event.Visual{Kind: event.VisualFraction, BarThickness: &zero})
	d.staging = append(d.staging, num...)
	d.staging = append(d.staging, den...)
	d.stageEvent(event.End{})
	return true, nil
}

// handleGenfrac implements \genfrac{left}{right}{thickness}{style}{num}{den}:
// the fully general form plain TeX's \frac/\binom/\cfrac all reduce to.
// left/right are delimiter tokens (possibly the null delimiter `.`),
// thickness is an empty group (default bar) or a dimension, and style is a
// single digit 0-3 selecting one of the four display styles.
func handleGenfrac(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
	leftPos := cur.Pos()
	leftArg, err := cur.Argument()
	if err != nil {
		return false, d.fail(base+leftPos, err)
	}
	left, hasLeft, err := genfracDelimiter(leftArg)
	if err != nil {
		return false, d.fail(base+leftArg.Pos, err)
	}

	rightPos := cur.Pos()
	rightArg, err := cur.Argument()
	if err != nil {
		return false, d.fail(base+rightPos, err)
	}
	right, hasRight, err := genfracDelimiter(rightArg)
	if err != nil {
		return false, d.fail(base+rightArg.Pos, err)
	}

	thickPos := cur.Pos()
	thickArg, err := cur.Argument()
	if err != nil {
		return false, d.fail(base+thickPos, err)
	}
	var bar *event.Amount
	if thickArg.Kind != token.ArgGroup || thickArg.Group != "" {
		amt, uerr := parseAmountArgument(thickArg)
		if uerr != nil {
			return false, d.fail(base+thickPos, uerr)
		}
		bar = &amt
	}

	stylePos := cur.Pos()
	styleArg, err := cur.Argument()
	if err != nil {
		return false, d.fail(base+stylePos, err)
	}
	style, serr := genfracStyle(styleArg)
	if serr != nil {
		return false, d.fail(base+stylePos, serr)
	}

	num, err := d.consumeArgument(cur, base, event.GroupNormal)
	if err != nil {
		return false, err
	}
	den, err := d.consumeArgument(cur, base, event.GroupNormal)
	if err != nil {
		return false, err
	}

	d.stageEvent(event.Begin{Kind: event.GroupLeftRight, Open: left, Close: right, HasOpen: hasLeft, HasClose: hasRight})
	d.stageEvent(event.StateChange{Kind: event.StateStyle, Style: style})
	d.stageEvent(event.Visual{Kind: event.VisualFraction, BarThickness: bar})
	d.staging = append(d.staging, num...)
	d.staging = append(d.staging, den...)
	d.stageEvent(event.End{})
	return true, nil
}

func genfracDelimiter(arg token.Argument) (rune, bool, error) {
	if arg.Kind == token.ArgGroup {
		if arg.Group == "" {
			return 0, false, nil
		}
		cur := lexer.NewCursor(arg.Group)
		return readDelimiterToken(cur)
	}
	if arg.Token.Kind == token.Character {
		if arg.Token.Char == '.' {
			return 0, false, nil
		}
		return arg.Token.Char, true, nil
	}
	return 0, false, perr.New(perr.Delimiter)
}

func parseAmountArgument(arg token.Argument) (event.Amount, error) {
	if err := requirePlainToken(arg); err != nil {
		return event.Amount{}, err
	}
	text := arg.Group
	if arg.Kind != token.ArgGroup {
		text = arg.Token.Name
	}
	c := lexer.NewCursor(text)
	return c.Dimension()
}

func genfracStyle(arg token.Argument) (event.Style, error) {
	var digit rune
	if arg.Kind == token.ArgGroup {
		if len(arg.Group) != 1 {
			return 0, perr.New(perr.Number)
		}
		digit = rune(arg.Group[0])
	} else if arg.Token.Kind == token.Character {
		digit = arg.Token.Char
	} else {
		return 0, perr.New(perr.Number)
	}
	switch digit {
	case '0':
		return event.StyleDisplay, nil
	case '1':
		return event.StyleText, nil
	case '2':
		return event.StyleScript, nil
	case '3':
		return event.StyleScriptScript, nil
	default:
		return 0, perr.New(perr.Number)
	}
}
