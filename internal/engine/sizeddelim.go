package engine

import (
	"github.com/cwbudde/go-texmath/internal/classify"
	"github.com/cwbudde/go-texmath/internal/lexer"
	"github.com/cwbudde/go-texmath/internal/perr"
	"github.com/cwbudde/go-texmath/pkg/event"
)

// sizedDelimiterAmounts gives each of the four size steps a fixed point
// size, the way plain TeX's \big family hard-codes font-relative jumps;
// expressed here as absolute point sizes for simplicity.
var sizedDelimiterAmounts = map[string]float64{
	"big": 12, "Big": 18, "bigg": 24, "Bigg": 30,
}

func init() {
	for name, size := range sizedDelimiterAmounts {
		registerSizedDelimiter(name, size, nil)
		open, close_, fence := event.DelimiterOpen, event.DelimiterClose, event.DelimiterFence
		registerSizedDelimiter(name+"l", size, &open)
		registerSizedDelimiter(name+"r", size, &close_)
		registerSizedDelimiter(name+"m", size, &fence)
	}
}

// registerSizedDelimiter wires one \big/\Big/\bigg/\Bigg (or its l/r/m
// variant) form: it reads a single delimiter token and emits it as a
// Delimiter content event carrying an explicit DelimiterSize. forceRole
// is nil for the bare (no-suffix) form, which uses the delimiter
// character's ordinary default role; the l/r/m variants force it.
func registerSizedDelimiter(name string, points float64, forceRole *event.DelimiterRole) {
	register(name, func(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
		pos := cur.Pos()
		ch, has, err := readDelimiterToken(cur)
		if err != nil {
			return false, d.fail(base+pos, err)
		}
		if !has {
			return false, d.fail(base+pos, perr.New(perr.Delimiter))
		}
		role := event.DelimiterFence
		if forceRole != nil {
			role = *forceRole
		} else if defaultRole, ok := classify.DelimiterRole(ch); ok {
			role = defaultRole
		}
		amount := event.Amount{Value: points, Unit: event.UnitPt}
		d.stageEvent(event.Content{Role: event.RoleDelimiter, Char: ch, DelimiterRole: role, DelimiterSize: &amount})
		return true, nil
	})
}
