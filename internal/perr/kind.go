// Package perr defines the closed set of error kinds the lexer and the
// engine can fail with (spec §7). Values of Kind carry no source context;
// the engine's driver attaches a context window and byte offset when it
// surfaces the first failure to the consumer (see pkg/texmath.ParseError).
package perr

// Kind is one of the closed set of failure reasons a parse can report.
type Kind int

const (
	UnbalancedGroup Kind = iota
	MathShift
	HashSign
	AlignmentChar
	EndOfInput
	Dimension
	Glue
	DimensionArgument
	DimensionUnit
	MathUnit
	Delimiter
	ControlSequence
	Number
	CharacterNumber
	Argument
	ControlSequenceAsArgument
	EmptySubscript
	EmptySuperscript
	DoubleSubscript
	DoubleSuperscript
	SubscriptAsToken
	SuperscriptAsToken
	UnknownPrimitive
	TextModeControlSequence
	UnknownColor
	InvalidCharNumber
	Environment
	Relax
)

var kindNames = [...]string{
	UnbalancedGroup:           "UnbalancedGroup",
	MathShift:                 "MathShift",
	HashSign:                  "HashSign",
	AlignmentChar:             "AlignmentChar",
	EndOfInput:                "EndOfInput",
	Dimension:                 "Dimension",
	Glue:                      "Glue",
	DimensionArgument:         "DimensionArgument",
	DimensionUnit:             "DimensionUnit",
	MathUnit:                  "MathUnit",
	Delimiter:                 "Delimiter",
	ControlSequence:           "ControlSequence",
	Number:                    "Number",
	CharacterNumber:           "CharacterNumber",
	Argument:                  "Argument",
	ControlSequenceAsArgument: "ControlSequenceAsArgument",
	EmptySubscript:            "EmptySubscript",
	EmptySuperscript:          "EmptySuperscript",
	DoubleSubscript:           "DoubleSubscript",
	DoubleSuperscript:         "DoubleSuperscript",
	SubscriptAsToken:          "SubscriptAsToken",
	SuperscriptAsToken:        "SuperscriptAsToken",
	UnknownPrimitive:          "UnknownPrimitive",
	TextModeControlSequence:   "TextModeControlSequence",
	UnknownColor:              "UnknownColor",
	InvalidCharNumber:         "InvalidCharNumber",
	Environment:               "Environment",
	Relax:                     "Relax",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) || kindNames[k] == "" {
		return "Kind(?)"
	}
	return kindNames[k]
}

var messages = [...]string{
	UnbalancedGroup:           "unbalanced group",
	MathShift:                 "unexpected math shift character `$`",
	HashSign:                  "unexpected hash sign `#`: only valid in macro definitions",
	AlignmentChar:             "unexpected alignment character `&`: only valid inside alignment environments",
	EndOfInput:                "unexpected end of input",
	Dimension:                 "expected a dimension specification",
	Glue:                      "expected a dimension or glue specification",
	DimensionArgument:         "expected a dimension or glue argument",
	DimensionUnit:             "expected a dimensional unit",
	MathUnit:                  "expected mathematical units (mu) in dimension specification",
	Delimiter:                 "expected a delimiter token",
	ControlSequence:           "expected a control sequence",
	Number:                    "expected a number",
	CharacterNumber:           "expected a character code in range 0-255",
	Argument:                  "expected an argument",
	ControlSequenceAsArgument: "a control sequence cannot be used as this argument",
	EmptySubscript:            "subscript has no content",
	EmptySuperscript:          "superscript has no content",
	DoubleSubscript:           "a subscript was already attached to this atom",
	DoubleSuperscript:         "a superscript was already attached to this atom",
	SubscriptAsToken:          "unexpected subscript character `_`",
	SuperscriptAsToken:        "unexpected superscript character `^`",
	UnknownPrimitive:          "unknown control sequence",
	TextModeControlSequence:   "control sequence is only valid in text mode",
	UnknownColor:              "unknown color name",
	InvalidCharNumber:         "character code out of range",
	Environment:               "malformed or unknown environment",
	Relax:                     "\\relax is not allowed here",
}

// Error is the internal, context-free error value threaded through the
// lexer and the dispatcher.
type Error struct {
	Kind Kind
	// Expected names the closer a group was expected to have, set only on
	// UnbalancedGroup when that information is known.
	Expected string
}

func (e *Error) Error() string {
	msg := messages[e.Kind]
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Kind == UnbalancedGroup && e.Expected != "" {
		return msg + ": expected " + e.Expected
	}
	return msg
}

// New builds an Error carrying kind and no further detail.
func New(kind Kind) *Error { return &Error{Kind: kind} }

// Newf builds an UnbalancedGroup-style Error naming the expected closer.
func Newf(kind Kind, expected string) *Error { return &Error{Kind: kind, Expected: expected} }
