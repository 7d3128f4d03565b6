package engine

import (
	"github.com/cwbudde/go-texmath/internal/lexer"
	"github.com/cwbudde/go-texmath/pkg/event"
)

// multiGlyphRelations lists amsmath-style relations built by placing two or
// three ordinary glyphs side by side (e.g. \coloneqq is ':' followed by
// '='), wrapped in their own GroupRelation so a consumer can still treat
// the whole thing as one relation atom.
var multiGlyphRelations = map[string][]rune{
	"coloneqq":         {':', '='},
	"eqqcolon":         {'=', ':'},
	"colonequals":      {':', '='},
	"colonsim":         {':', '∼'},
	"simcolon":         {'∼', ':'},
	"colonapprox":      {':', '≈'},
	"approxcolon":      {'≈', ':'},
	"approxcoloncolon": {'≈', ':', ':'},
	"coloncolonequals": {':', ':', '='},
}

func init() {
	for name, glyphs := range multiGlyphRelations {
		registerMultiGlyphRelation(name, glyphs)
	}
}

// registerMultiGlyphRelation wires a fixed sequence of Relation content
// glyphs wrapped in Begin(GroupRelation)...End.
func registerMultiGlyphRelation(name string, glyphs []rune) {
	register(name, func(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
		d.stageEvent(event.Begin{Kind: event.GroupRelation})
		for _, g := range glyphs {
			d.stageEvent(event.Content{Role: event.RoleRelation, Char: g, RelationUnicodeVariant: false})
		}
		d.stageEvent(event.End{})
		return true, nil
	})
}
