package engine

import (
	"github.com/cwbudde/go-texmath/internal/classify"
	"github.com/cwbudde/go-texmath/internal/lexer"
	"github.com/cwbudde/go-texmath/internal/perr"
	"github.com/cwbudde/go-texmath/internal/token"
	"github.com/cwbudde/go-texmath/pkg/event"
)

func init() {
	register("left", handleLeft)
	register("middle", handleMiddle)
}

// handleLeft implements \left<delim> ... \right<delim>: both delimiters
// (or the null delimiter `.`) are resolved up front so the Begin event can
// carry both sides, then the body between the matching pair is captured
// whole via ScanKeywordPair — the same "opaque pending fragment" approach
// used for an ordinary brace group, so a nested \left\right pair inside
// the body is simply part of that fragment's own later parse.
func handleLeft(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
	openPos := cur.Pos()
	openCh, hasOpen, err := readDelimiterToken(cur)
	if err != nil {
		return false, d.fail(base+openPos, err)
	}
	bodyStart := cur.Pos()

	body, err := cur.ScanKeywordPair("left", "right")
	if err != nil {
		return false, d.fail(base+openPos, err)
	}

	closePos := cur.Pos()
	closeCh, hasClose, err := readDelimiterToken(cur)
	if err != nil {
		return false, d.fail(base+closePos, err)
	}

	d.stageEvent(event.Begin{Kind: event.GroupLeftRight, Open: openCh, Close: closeCh, HasOpen: hasOpen, HasClose: hasClose})
	d.stage(groupBodyInstr(body, base+bodyStart, event.GroupLeftRight, d.allowsAlignment(event.GroupLeftRight)))
	d.stageEvent(event.End{})
	return true, nil
}

// readDelimiterToken reads one token and resolves it to a delimiter
// character, or reports ok=false for the null delimiter `.`.
func readDelimiterToken(cur *lexer.Cursor) (rune, bool, error) {
	tok, err := cur.NextToken()
	if err != nil {
		return 0, false, err
	}
	if tok.Kind == token.Character {
		if tok.Char == '.' {
			return 0, false, nil
		}
		if classify.IsDelimiterChar(tok.Char) {
			return tok.Char, true, nil
		}
		return 0, false, perr.New(perr.Delimiter)
	}
	if ch, ok := classify.DelimiterByName(tok.Name); ok {
		return ch, true, nil
	}
	return 0, false, perr.New(perr.Delimiter)
}

// handleMiddle implements \middle<delim>: a fence delimiter inside an open
// \left...\right region, emitted as ordinary Delimiter content (it does
// not open or close a group of its own).
func handleMiddle(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
	pos := cur.Pos()
	ch, has, err := readDelimiterToken(cur)
	if err != nil {
		return false, d.fail(base+pos, err)
	}
	if !has {
		return false, d.fail(base+pos, perr.New(perr.Delimiter))
	}
	d.stageEvent(event.Content{Role: event.RoleDelimiter, Char: ch, DelimiterRole: event.DelimiterFence})
	return false, nil
}
