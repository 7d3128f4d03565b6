package lexer

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-texmath/internal/perr"
	"github.com/cwbudde/go-texmath/pkg/event"
)

var unitKeywords = map[string]event.Unit{
	"em": event.UnitEm,
	"ex": event.UnitEx,
	"mu": event.UnitMu,
	"pt": event.UnitPt,
	"in": event.UnitIn,
	"cm": event.UnitCm,
	"mm": event.UnitMm,
	"bp": event.UnitBp,
	"pc": event.UnitPc,
	"dd": event.UnitDd,
	"cc": event.UnitCc,
	"sp": event.UnitSp,
}

// Dimension parses a signed decimal magnitude followed by a unit keyword:
// an optional sign, a number in one of the forms d.d / d. / .d / d, then
// one of the fixed unit keywords; spaces after the unit are consumed.
func (c *Cursor) Dimension() (event.Amount, error) {
	c.SkipSpace()
	sign := 1.0
	if r, size := c.peekRune(); size > 0 && (r == '+' || r == '-') {
		if r == '-' {
			sign = -1
		}
		c.pos += size
		c.SkipSpace()
	}

	start := c.pos
	sawDigit := false
	for {
		r, size := c.peekRune()
		if size == 0 || r < '0' || r > '9' {
			break
		}
		sawDigit = true
		c.pos += size
	}
	if r, size := c.peekRune(); size > 0 && r == '.' {
		c.pos += size
		for {
			r, size := c.peekRune()
			if size == 0 || r < '0' || r > '9' {
				break
			}
			sawDigit = true
			c.pos += size
		}
	}
	if !sawDigit {
		return event.Amount{}, perr.New(perr.Dimension)
	}
	magnitude, err := strconv.ParseFloat(c.input[start:c.pos], 64)
	if err != nil {
		return event.Amount{}, perr.New(perr.Dimension)
	}

	c.SkipSpace()
	unitStart := c.pos
	for {
		r, size := c.peekRune()
		if size == 0 || !isLetter(r) {
			break
		}
		c.pos += size
	}
	unitName := strings.ToLower(c.input[unitStart:c.pos])
	unit, ok := unitKeywords[unitName]
	if !ok {
		return event.Amount{}, perr.New(perr.DimensionUnit)
	}
	c.SkipSpace()
	return event.Amount{Value: sign * magnitude, Unit: unit}, nil
}

// Glue parses a dimension optionally followed by `plus <dim>` and/or
// `minus <dim>`.
func (c *Cursor) Glue() (amount, plus, minus event.Amount, hasPlus, hasMinus bool, err error) {
	amount, err = c.Dimension()
	if err != nil {
		err = perr.New(perr.Glue)
		return
	}
	if c.consumeKeyword("plus") {
		plus, err = c.Dimension()
		if err != nil {
			err = perr.New(perr.Glue)
			return
		}
		hasPlus = true
	}
	if c.consumeKeyword("minus") {
		minus, err = c.Dimension()
		if err != nil {
			err = perr.New(perr.Glue)
			return
		}
		hasMinus = true
	}
	return
}

// consumeKeyword consumes word if the (whitespace-skipped) upcoming input
// starts with it followed by a non-letter, restoring position otherwise.
func (c *Cursor) consumeKeyword(word string) bool {
	saved := c.pos
	c.SkipSpace()
	if strings.HasPrefix(c.input[c.pos:], word) {
		after := c.pos + len(word)
		if after >= len(c.input) || !isLetter(rune(c.input[after])) {
			c.pos = after
			return true
		}
	}
	c.pos = saved
	return false
}
