package engine

import (
	"github.com/cwbudde/go-texmath/internal/lexer"
	"github.com/cwbudde/go-texmath/internal/perr"
	"github.com/cwbudde/go-texmath/internal/token"
	"github.com/cwbudde/go-texmath/pkg/event"
)

// primitiveHandler implements one control sequence. It reads whatever
// further tokens/arguments it needs from cur, stages the resulting
// instructions on d, and reports whether its production is suffix
// -eligible (spec §4.4).
type primitiveHandler func(d *Driver, cur *lexer.Cursor, base int) (bool, error)

var primitives map[string]primitiveHandler

// register adds a primitive to the dispatch table. Called only from
// package-level init funcs spread across the handler-category files, so
// each file can own registering the names it implements.
func register(name string, h primitiveHandler) {
	if primitives == nil {
		primitives = make(map[string]primitiveHandler)
	}
	primitives[name] = h
}

// handleControlSequence looks up tok.Name in the dispatch table and
// invokes its handler, or reports UnknownPrimitive.
func (d *Driver) handleControlSequence(cur *lexer.Cursor, base int, tok token.Token) (bool, error) {
	h, ok := primitives[tok.Name]
	if !ok {
		return false, d.fail(base+tok.Pos, perr.New(perr.UnknownPrimitive))
	}
	return h(d, cur, base)
}

// requirePlainToken rejects a single-token argument that is a control
// sequence, for call sites that need a plain character or digit in that
// position (a dimension, glue amount, or delimiter keyword) and cannot make
// sense of a command name there.
func requirePlainToken(arg token.Argument) error {
	if arg.Kind != token.ArgGroup && arg.Token.Kind == token.ControlSequence {
		return perr.New(perr.ControlSequenceAsArgument)
	}
	return nil
}

// consumeArgument reads one required Argument from cur (a brace group or a
// single token) and returns the instructions it produces, wrapping a group
// body as [Begin(kind), pending, End] and a single token as its own leaf
// instruction(s). An empty group (`{}`) yields a nil, nil result so the
// caller can decide whether that is permitted.
func (d *Driver) consumeArgument(cur *lexer.Cursor, base int, kind event.GroupKind) ([]instruction, error) {
	arg, err := cur.Argument()
	if err != nil {
		return nil, d.fail(base+cur.Pos(), err)
	}
	return d.argumentInstructions(cur, base, arg, kind)
}

// consumeArgumentBody reads one required Argument the same way
// consumeArgument does, but for a group body returns only the raw pending
// fragment (no Begin/End of its own) with kind as its owning group: the
// caller is expected to have already staged that Begin/End pair itself
// (spec §4.3 category 2's "open an Internal group, emit the state change,
// then consume and parse their argument, then close the group" describes
// exactly one group, not a nested pair).
func (d *Driver) consumeArgumentBody(cur *lexer.Cursor, base int, kind event.GroupKind, allowAlign bool) ([]instruction, error) {
	pos := cur.Pos()
	arg, err := cur.Argument()
	if err != nil {
		return nil, d.fail(base+pos, err)
	}
	if arg.Kind == token.ArgGroup {
		if arg.Group == "" {
			return nil, nil
		}
		return []instruction{groupBodyInstr(arg.Group, base+arg.Pos+1, kind, allowAlign)}, nil
	}
	return d.leafForToken(cur, base, arg.Token)
}

func (d *Driver) argumentInstructions(cur *lexer.Cursor, base int, arg token.Argument, kind event.GroupKind) ([]instruction, error) {
	switch arg.Kind {
	case token.ArgGroup:
		if arg.Group == "" {
			return nil, nil
		}
		return []instruction{
			eventInstr(event.Begin{Kind: kind}),
			groupBodyInstr(arg.Group, base+arg.Pos+1, kind, d.allowsAlignment(kind)),
			eventInstr(event.End{}),
		}, nil
	default: // token.ArgToken
		return d.leafForToken(cur, base, arg.Token)
	}
}

// leafForToken turns an already-read single token into the instruction(s)
// it denotes, without consuming anything further and without itself
// checking for a following suffix (TeX does not chain a second suffix
// directly onto a braceless single-token argument).
func (d *Driver) leafForToken(cur *lexer.Cursor, base int, tok token.Token) ([]instruction, error) {
	switch tok.Kind {
	case token.Character:
		switch tok.Char {
		case '_':
			return nil, d.fail(base+tok.Pos, perr.New(perr.SubscriptAsToken))
		case '^':
			return nil, d.fail(base+tok.Pos, perr.New(perr.SuperscriptAsToken))
		}
		if tok.Char >= '0' && tok.Char <= '9' {
			return []instruction{eventInstr(event.Content{Role: event.RoleNumber, View: string(tok.Char)})}, nil
		}
		ev, err := charContentEvent(tok.Char)
		if err != nil {
			return nil, d.fail(base+tok.Pos, err)
		}
		return []instruction{eventInstr(ev)}, nil
	default: // token.ControlSequence
		// \relax is rejected outright as a braceless single-token argument
		// (a script suffix or a bare command argument): unlike a symbol
		// -producing primitive it has no content of its own to contribute.
		if tok.Name == "relax" {
			return nil, d.fail(base+tok.Pos, perr.New(perr.Relax))
		}
		// cur is already positioned right after tok, exactly as it would be
		// on the main dispatch path, so a symbol-producing primitive (e.g.
		// \alpha) works as a braceless argument exactly as it would as a
		// standalone atom.
		priorStaging := len(d.staging)
		_, err := d.handleControlSequence(cur, base, tok)
		if err != nil {
			return nil, err
		}
		produced := append([]instruction(nil), d.staging[priorStaging:]...)
		d.staging = d.staging[:priorStaging]
		return produced, nil
	}
}
