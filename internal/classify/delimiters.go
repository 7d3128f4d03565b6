package classify

import "github.com/cwbudde/go-texmath/pkg/event"

// delimiterRole is the default functional role of a delimiter character
// when no explicit \left/\right/\middle context overrides it.
var delimiterRole = map[rune]event.DelimiterRole{
	'(':      event.DelimiterOpen,
	')':      event.DelimiterClose,
	'[':      event.DelimiterOpen,
	']':      event.DelimiterClose,
	'{':      event.DelimiterOpen,
	'}':      event.DelimiterClose,
	'|':      event.DelimiterFence,
	'/':      event.DelimiterFence,
	'\\':     event.DelimiterFence,
	0x2016:   event.DelimiterFence, // ‖
	0x2308:   event.DelimiterOpen,  // ⌈
	0x2309:   event.DelimiterClose, // ⌉
	0x230A:   event.DelimiterOpen,  // ⌊
	0x230B:   event.DelimiterClose, // ⌋
	0x27E8:   event.DelimiterOpen,  // ⟨
	0x27E9:   event.DelimiterClose, // ⟩
	0x2983:   event.DelimiterOpen,  // ⦃
	0x2984:   event.DelimiterClose, // ⦄
}

// DelimiterRole returns the default role for a delimiter character and
// reports whether c is a known delimiter at all.
func DelimiterRole(c rune) (event.DelimiterRole, bool) {
	role, ok := delimiterRole[c]
	return role, ok
}

// delimiterNames maps delimiter-like control sequence names (\langle,
// \lfloor, ...) to the character they denote.
var delimiterNames = map[string]rune{
	"lparen":    '(',
	"rparen":    ')',
	"lbrack":    '[',
	"rbrack":    ']',
	"lbrace":    '{',
	"rbrace":    '}',
	"vert":      '|',
	"|":         0x2016,
	"Vert":      0x2016,
	"langle":    0x27E8,
	"rangle":    0x27E9,
	"lfloor":    0x230A,
	"rfloor":    0x230B,
	"lceil":     0x2308,
	"rceil":     0x2309,
	"backslash": '\\',
	"lgroup":    0x2983,
	"rgroup":    0x2984,
}

// DelimiterByName resolves a delimiter-like control-sequence name (as read
// after the escape character, without it) to its character, as used by
// \left, \right, \big and friends.
func DelimiterByName(name string) (rune, bool) {
	c, ok := delimiterNames[name]
	return c, ok
}
