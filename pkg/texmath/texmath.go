// Package texmath is the public entry point of the streaming math-markup
// parser (spec §6, "External Interfaces"). It wraps internal/engine's
// Driver behind a small, stable surface: construct a Parser over a
// borrowed input string, then pull events from it one at a time until the
// sequence is exhausted or a ParseError terminates it.
//
// Content.View is a sub-slice of the exact input string passed to New for
// digit runs and braced \text bodies; package event lists the string
// fields the parser builds itself instead.
package texmath

import (
	"github.com/cwbudde/go-texmath/internal/engine"
	"github.com/cwbudde/go-texmath/pkg/event"
)

// Event is the public event vocabulary re-exported for convenience; see
// package event for the full type catalog.
type Event = event.Event

// ParseError is the single terminal error kind a Parser ever yields. See
// internal/engine.ParseError for its fields: Kind, Offset and a bounded
// context window around the failing byte.
type ParseError = engine.ParseError

// Option configures a Parser at construction time. There is no persisted
// configuration (spec §6): every Option is a pure in-process behavioral
// switch.
type Option = engine.Option

// WithAlignmentInLeftRight toggles whether `\left...\right` bodies admit
// `&`/`\\`; when true they are admitted whatever the enclosing group,
// including at top level. The spec's default (false) is recorded as a
// carried-over Open Question in spec §9.
func WithAlignmentInLeftRight(allow bool) Option { return engine.WithAlignmentInLeftRight(allow) }

// WithTrace installs a callback invoked once per atom the Parser parses,
// receiving a short human-readable description of the token that
// introduced it. Pass nil to disable tracing (the default).
func WithTrace(fn func(msg string)) Option { return engine.WithTrace(fn) }

// WithInvalidateRelax makes `\relax` an error instead of a no-op.
func WithInvalidateRelax(invalidate bool) Option { return engine.WithInvalidateRelax(invalidate) }

// Parser is a lazy, single-threaded, pull-based sequence of Events over a
// borrowed input string (spec §5: "single-threaded and cooperative").
// The zero value is not usable; build one with New.
type Parser struct {
	driver *engine.Driver
}

// New returns a Parser over input, ready to produce the event stream for
// one top-level math expression. input must outlive every Event the
// Parser produces, since some Event string fields are views into it.
func New(input string, opts ...Option) *Parser {
	return &Parser{driver: engine.New(input, opts...)}
}

// Next produces the next Event in the stream. ok is false once the
// sequence is exhausted (input consumed and every opened group closed);
// a non-nil err is the single terminal ParseError the Parser ever yields,
// after which ok is false on every subsequent call too (spec §7:
// "the parser then yields end-of-sequence").
func (p *Parser) Next() (ev Event, ok bool, err error) {
	return p.driver.Next()
}

// All drains the Parser to completion, returning every Event produced
// before either the sequence ended or a ParseError terminated it. It is a
// convenience for callers that do not need streaming consumption (tests,
// CLIs); consumers with a true streaming renderer should call Next
// directly instead.
func (p *Parser) All() ([]Event, error) {
	var events []Event
	for {
		ev, ok, err := p.driver.Next()
		if err != nil {
			return events, err
		}
		if !ok {
			return events, nil
		}
		events = append(events, ev)
	}
}

// Parse is a convenience constructor that builds a Parser over input and
// immediately drains it via All.
func Parse(input string, opts ...Option) ([]Event, error) {
	return New(input, opts...).All()
}
