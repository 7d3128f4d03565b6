package engine

import (
	"github.com/cwbudde/go-texmath/internal/lexer"
	"github.com/cwbudde/go-texmath/internal/token"
	"github.com/cwbudde/go-texmath/pkg/event"
)

// fixedSpaces gives each literal spacing command its conventional width in
// math units, matching plain TeX's \thinmuskip/\medmuskip/\quad family.
var fixedSpaces = map[string]float64{
	"quad": 18, "qquad": 36,
	",": 3, ":": 4, ";": 5,
	"!": -3,
}

func init() {
	for name, mu := range fixedSpaces {
		registerFixedSpace(name, mu)
	}
	register("hspace", handleHspace)
}

// registerFixedSpace wires a no-argument spacing primitive to a Space event
// with a fixed width, expressed in math units like the rest of plain TeX's
// interword spacing constants.
func registerFixedSpace(name string, mu float64) {
	register(name, func(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
		width := event.Amount{Value: mu, Unit: event.UnitMu}
		d.stageEvent(event.Space{Width: &width})
		return false, nil
	})
}

// handleHspace implements \hspace{<glue>} (and \hspace*, which plain TeX
// distinguishes only by forbidding the space from being discarded at a
// line break — a distinction this parser's flat event stream has no
// occasion to represent).
func handleHspace(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
	if len(cur.Rest()) > 0 && cur.Rest()[0] == '*' {
		cur.SetPos(cur.Pos() + 1)
	}
	pos := cur.Pos()
	arg, err := cur.Argument()
	if err != nil {
		return false, d.fail(base+pos, err)
	}
	if err := requirePlainToken(arg); err != nil {
		return false, d.fail(base+arg.Pos, err)
	}
	text := arg.Group
	if arg.Kind != token.ArgGroup {
		text = arg.Token.Name
	}
	glueCur := lexer.NewCursor(text)
	amount, _, _, _, _, err := glueCur.Glue()
	if err != nil {
		return false, d.fail(base+arg.Pos, err)
	}
	d.stageEvent(event.Space{Width: &amount})
	return false, nil
}
