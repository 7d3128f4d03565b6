package classify

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// colorFold normalizes a color argument the same way the teacher's string
// builtins normalize user-facing text with golang.org/x/text: a locale
// -aware case fold rather than a hand-rolled ASCII lowercasing loop.
var colorFold = cases.Lower(language.Und)

// primitiveColors is the closed set of recognized base color names
// (xcolor's driver-independent "dvipsnames"-free core set), enumerated in
// lowercase ASCII per spec §6.
var primitiveColors = map[string]bool{
	"black": true, "white": true, "red": true, "green": true, "blue": true,
	"cyan": true, "magenta": true, "yellow": true, "gray": true, "darkgray": true,
	"lightgray": true, "brown": true, "lime": true, "olive": true, "orange": true,
	"pink": true, "purple": true, "teal": true, "violet": true,
}

// IsPrimitiveColor reports whether name denotes a recognized color,
// case-insensitively.
func IsPrimitiveColor(name string) bool {
	return primitiveColors[colorFold.String(name)]
}

// NormalizeColor case-folds name the way IsPrimitiveColor does, for
// storing a canonical color name on a StateChange event.
func NormalizeColor(name string) string {
	return colorFold.String(name)
}
