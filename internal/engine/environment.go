package engine

import (
	"github.com/cwbudde/go-texmath/internal/lexer"
	"github.com/cwbudde/go-texmath/internal/perr"
	"github.com/cwbudde/go-texmath/internal/token"
	"github.com/cwbudde/go-texmath/pkg/event"
)

func init() {
	register("begin", handleBegin)
	register("end", func(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
		return false, d.fail(base+cur.Pos(), perr.New(perr.Environment))
	})
	register(`\`, handleNewLine)
}

// handleNewLine implements the row separator \\ (lexed as the one
// -character control sequence named "\", since the escape character
// followed by a non-letter reads as a single-character control sequence):
// a NewLine event, valid only inside a group whose kind permits alignment
// (invariant 3, spec §3). An optional `[<dimen>]` extra-space argument is
// accepted and discarded, as there is no corresponding event to carry it.
func handleNewLine(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
	if len(cur.Rest()) > 0 && cur.Rest()[0] == '*' {
		cur.SetPos(cur.Pos() + 1)
	}
	pos := cur.Pos()
	if _, _, err := cur.OptionalArgument(); err != nil {
		return false, d.fail(base+pos, err)
	}
	if !d.allowAlign {
		return false, d.fail(base+pos, perr.New(perr.AlignmentChar))
	}
	d.stageEvent(event.NewLine{})
	return false, nil
}

// environmentKind describes how one named environment maps onto a group
// kind, an optional surrounding delimiter pair, and an optional style
// override (spec §4.10).
type environmentKind struct {
	kind              event.GroupKind
	open, close       rune
	hasOpen, hasClose bool
	style             *event.Style
	hasColumns        bool
}

func scriptStylePtr() *event.Style {
	s := event.StyleScript
	return &s
}

var environments = map[string]environmentKind{
	"matrix":      {kind: event.GroupMatrix},
	"pmatrix":     {kind: event.GroupMatrix, open: '(', close: ')', hasOpen: true, hasClose: true},
	"bmatrix":     {kind: event.GroupMatrix, open: '[', close: ']', hasOpen: true, hasClose: true},
	"Bmatrix":     {kind: event.GroupMatrix, open: '{', close: '}', hasOpen: true, hasClose: true},
	"vmatrix":     {kind: event.GroupMatrix, open: '|', close: '|', hasOpen: true, hasClose: true},
	"Vmatrix":     {kind: event.GroupMatrix, open: '‖', close: '‖', hasOpen: true, hasClose: true},
	"smallmatrix": {kind: event.GroupMatrix, style: scriptStylePtr()},
	"cases":       {kind: event.GroupCases, open: '{', hasOpen: true},
	"array":       {kind: event.GroupArray, hasColumns: true},
	"align":       {kind: event.GroupAlign},
	"align*":      {kind: event.GroupAlign},
	"aligned":     {kind: event.GroupAlign},
	"gather":      {kind: event.GroupAlign},
	"gathered":    {kind: event.GroupAlign},
}

// handleBegin implements \begin{env}...\end{env}: the environment name is
// read, mapped to its GroupKind and optional delimiter dressing, an array's
// column spec is parsed if required, then the body is captured whole via
// the lexer's literal-marker group-content scan (GroupContent), and
// scheduled as an alignment-enabled pending fragment.
func handleBegin(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
	namePos := cur.Pos()
	nameArg, err := cur.Argument()
	if err != nil {
		return false, d.fail(base+namePos, err)
	}
	name := nameArg.Group
	if nameArg.Kind == token.ArgToken {
		name = nameArg.Token.Name
	}

	envKind, ok := environments[name]
	if !ok {
		return false, d.fail(base+nameArg.Pos, perr.New(perr.Environment))
	}

	var columns []event.ColumnAlign
	if envKind.hasColumns {
		colPos := cur.Pos()
		colArg, err := cur.Argument()
		if err != nil {
			return false, d.fail(base+colPos, err)
		}
		spec := colArg.Group
		if colArg.Kind == token.ArgToken {
			spec = colArg.Token.Name
		}
		columns, err = parseColumnSpec(spec)
		if err != nil {
			return false, d.fail(base+colArg.Pos, err)
		}
	}

	bodyStart := cur.Pos()
	openMarker, closeMarker := `\begin{`+name+`}`, `\end{`+name+`}`
	body, err := cur.GroupContent(openMarker, closeMarker)
	if err != nil {
		return false, d.fail(base+bodyStart, err)
	}

	beginEv := event.Begin{Kind: envKind.kind, Columns: columns}
	if envKind.hasOpen || envKind.hasClose {
		d.stageEvent(event.Begin{Kind: event.GroupLeftRight, Open: envKind.open, Close: envKind.close, HasOpen: envKind.hasOpen, HasClose: envKind.hasClose})
	}
	if envKind.style != nil {
		d.stageEvent(event.Begin{Kind: event.GroupInternal})
		d.stageEvent(event.StateChange{Kind: event.StateStyle, Style: *envKind.style})
	}
	d.stageEvent(beginEv)
	d.stage(groupBodyInstr(body, base+bodyStart, envKind.kind, d.allowsAlignment(envKind.kind)))
	d.stageEvent(event.End{})
	if envKind.style != nil {
		d.stageEvent(event.End{})
	}
	if envKind.hasOpen || envKind.hasClose {
		d.stageEvent(event.End{})
	}
	return true, nil
}

// parseColumnSpec maps an array column spec like "c|cc" to its per-column
// alignment list. A run of one or two consecutive '|' attaches as a
// vertical-bar marker column rather than a data column.
func parseColumnSpec(spec string) ([]event.ColumnAlign, error) {
	var cols []event.ColumnAlign
	runes := []rune(spec)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case 'l':
			cols = append(cols, event.ColumnLeft)
		case 'c':
			cols = append(cols, event.ColumnCenter)
		case 'r':
			cols = append(cols, event.ColumnRight)
		case '|':
			if i+1 < len(runes) && runes[i+1] == '|' {
				cols = append(cols, event.ColumnDoubleVerticalBar)
				i++
			} else {
				cols = append(cols, event.ColumnVerticalBar)
			}
		case ' ', '\t', '\n', '\r':
			// ignore
		default:
			return nil, perr.New(perr.Environment)
		}
	}
	return cols, nil
}
