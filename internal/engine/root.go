package engine

import (
	"github.com/cwbudde/go-texmath/internal/lexer"
	"github.com/cwbudde/go-texmath/pkg/event"
)

func init() {
	register("sqrt", handleSqrt)
}

// handleSqrt implements \sqrt{radicand} and \sqrt[index]{radicand}: a
// VisualSquareRoot marker with one child when no index is given, or a
// VisualRoot marker with two children (radicand, index) when it is.
func handleSqrt(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
	indexPos := cur.Pos()
	indexBody, hasIndex, err := cur.OptionalArgument()
	if err != nil {
		return false, d.fail(base+indexPos, err)
	}
	// OptionalArgument leaves the cursor just past the closing ']'; the
	// body's own start is that position minus its length and the ']'.
	bodyStart := cur.Pos() - len(indexBody) - 1

	radicand, err := d.consumeArgument(cur, base, event.GroupNormal)
	if err != nil {
		return false, err
	}

	if !hasIndex {
		d.stageEvent(event.Visual{Kind: event.VisualSquareRoot})
		d.staging = append(d.staging, radicand...)
		return true, nil
	}

	var indexInstrs []instruction
	if indexBody != "" {
		indexInstrs = []instruction{
			eventInstr(event.Begin{Kind: event.GroupNormal}),
			groupBodyInstr(indexBody, base+bodyStart, event.GroupNormal, false),
			eventInstr(event.End{}),
		}
	}
	d.stageEvent(event.Visual{Kind: event.VisualRoot})
	d.staging = append(d.staging, radicand...)
	d.staging = append(d.staging, indexInstrs...)
	return true, nil
}
