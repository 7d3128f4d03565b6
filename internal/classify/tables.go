// Package classify implements the pure, data-driven membership tests of
// spec §4.1: is-operator, is-delimiter, is-binary, is-relation over
// Unicode scalar values, plus is-primitive-color over string views.
//
// Code-point tables are sorted inclusive ranges held in *unicode.RangeTable
// values; membership is answered by the standard library's unicode.Is,
// which does an O(log N) binary search over the range list — exactly the
// "branchless binary search" the spec calls for. golang.org/x/text/unicode/
// rangetable.Merge composes the individual tables into the combined
// "any math symbol" table exposed as Symbol.
package classify

import (
	"sort"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// operatorRanges are the generic "operator-shaped" code points: published
// Unicode ranges for punctuation/symbol characters that behave as
// operators in math mode (mirrors the reference parser's operator table).
var operatorRanges = []unicode.Range16{
	{Lo: 33, Hi: 34}, {Lo: 37, Hi: 47}, {Lo: 58, Hi: 59}, {Lo: 63, Hi: 64},
	{Lo: 91, Hi: 96}, {Lo: 123, Hi: 126}, {Lo: 168, Hi: 168}, {Lo: 172, Hi: 172},
	{Lo: 175, Hi: 180}, {Lo: 183, Hi: 185}, {Lo: 215, Hi: 215}, {Lo: 247, Hi: 247},
	{Lo: 710, Hi: 711}, {Lo: 713, Hi: 715}, {Lo: 717, Hi: 717}, {Lo: 728, Hi: 730},
	{Lo: 732, Hi: 733}, {Lo: 759, Hi: 759}, {Lo: 770, Hi: 770}, {Lo: 785, Hi: 785},
	{Lo: 800, Hi: 800}, {Lo: 802, Hi: 803}, {Lo: 805, Hi: 805}, {Lo: 807, Hi: 807},
	{Lo: 814, Hi: 814}, {Lo: 817, Hi: 817}, {Lo: 8214, Hi: 8214}, {Lo: 8216, Hi: 8223},
	{Lo: 8226, Hi: 8226}, {Lo: 8242, Hi: 8247}, {Lo: 8254, Hi: 8254}, {Lo: 8259, Hi: 8260},
	{Lo: 8279, Hi: 8279}, {Lo: 8289, Hi: 8292}, {Lo: 8411, Hi: 8412}, {Lo: 8517, Hi: 8518},
	{Lo: 8592, Hi: 8597}, {Lo: 8602, Hi: 8622}, {Lo: 8624, Hi: 8629}, {Lo: 8633, Hi: 8633},
	{Lo: 8636, Hi: 8661}, {Lo: 8666, Hi: 8688}, {Lo: 8691, Hi: 8708}, {Lo: 8710, Hi: 8711},
	{Lo: 8719, Hi: 8732}, {Lo: 8735, Hi: 8738}, {Lo: 8743, Hi: 8758}, {Lo: 8760, Hi: 8760},
	{Lo: 8764, Hi: 8764}, {Lo: 8768, Hi: 8768}, {Lo: 8844, Hi: 8846}, {Lo: 8851, Hi: 8859},
	{Lo: 8861, Hi: 8865}, {Lo: 8890, Hi: 8903}, {Lo: 8905, Hi: 8908}, {Lo: 8910, Hi: 8911},
	{Lo: 8914, Hi: 8915}, {Lo: 8965, Hi: 8966}, {Lo: 8968, Hi: 8971}, {Lo: 8976, Hi: 8976},
	{Lo: 8985, Hi: 8985}, {Lo: 8994, Hi: 8995}, {Lo: 9001, Hi: 9002}, {Lo: 9140, Hi: 9141},
	{Lo: 9165, Hi: 9165}, {Lo: 9180, Hi: 9185}, {Lo: 10098, Hi: 10099}, {Lo: 10132, Hi: 10135},
	{Lo: 10137, Hi: 10137}, {Lo: 10139, Hi: 10145}, {Lo: 10149, Hi: 10150}, {Lo: 10152, Hi: 10159},
	{Lo: 10161, Hi: 10161}, {Lo: 10163, Hi: 10163}, {Lo: 10165, Hi: 10165}, {Lo: 10168, Hi: 10168},
	{Lo: 10170, Hi: 10174}, {Lo: 10176, Hi: 10176}, {Lo: 10187, Hi: 10187}, {Lo: 10189, Hi: 10189},
	{Lo: 10214, Hi: 10225}, {Lo: 10228, Hi: 10239},
}

// binaryRanges are glyphs that act as binary operators (+, -, ×, ⊕, ...).
var binaryRanges = []unicode.Range16{
	{Lo: '+', Hi: '+'}, {Lo: ',', Hi: ','}, {Lo: '-', Hi: '-'}, {Lo: '*', Hi: '*'},
	{Lo: 0x00B1, Hi: 0x00B1}, // ±
	{Lo: 0x00D7, Hi: 0x00D7}, // ×
	{Lo: 0x00F7, Hi: 0x00F7}, // ÷
	{Lo: 0x2213, Hi: 0x2213}, // ∓
	{Lo: 0x2217, Hi: 0x2217}, // ∗
	{Lo: 0x2218, Hi: 0x2219}, // ∘ ∙
	{Lo: 0x2227, Hi: 0x222A}, // ∧ ∨ ∩ ∪
	{Lo: 0x2295, Hi: 0x2298}, // ⊕ ⊖ ⊗ ⊘
	{Lo: 0x229A, Hi: 0x229E}, // ⊚ ⊛ ⊜ ⊝ ⊞
	{Lo: 0x22A0, Hi: 0x22A1}, // ⊠ ⊡
	{Lo: 0x228C, Hi: 0x228E}, // ⊌ ⊍ ⊎
	{Lo: 0x2240, Hi: 0x2240}, // ≀
}

// relationRanges are glyphs that act as relations (=, <, ≤, ≡, ∈, ...).
var relationRanges = []unicode.Range16{
	{Lo: '<', Hi: '<'}, {Lo: '=', Hi: '='}, {Lo: '>', Hi: '>'},
	{Lo: 0x2208, Hi: 0x220D}, // ∈ ∉ ... ∋
	{Lo: 0x2224, Hi: 0x2226}, // ∤ ∥ ∦
	{Lo: 0x223C, Hi: 0x224C}, // ∼ ... ≌
	{Lo: 0x2250, Hi: 0x2256}, // ≐ ... ≖
	{Lo: 0x2260, Hi: 0x2265}, // ≠ ≡ ≢ ≣ ≤ ≥
	{Lo: 0x2266, Hi: 0x227B}, // ≦ ... ≻
	{Lo: 0x2282, Hi: 0x2287}, // ⊂ ⊃ ⊄ ⊅ ⊆ ⊇
	{Lo: 0x22A2, Hi: 0x22A9}, // ⊢ ⊣ ⊤ ⊥ ... ⊩
	{Lo: 0x22B2, Hi: 0x22B5}, // ⊲ ⊳ ⊴ ⊵
	{Lo: 0x2254, Hi: 0x2254}, // ≔
	{Lo: 0x2256, Hi: 0x2256},
}

// delimiterRanges are glyphs recognized as fence/delimiter characters.
var delimiterRanges = []unicode.Range16{
	{Lo: '(', Hi: ')'}, {Lo: '[', Hi: ']'}, {Lo: '{', Hi: '}'}, {Lo: '|', Hi: '|'}, {Lo: '/', Hi: '/'},
	{Lo: 0x2016, Hi: 0x2016}, // ‖
	{Lo: 0x2308, Hi: 0x230B}, // ⌈ ⌉ ⌊ ⌋
	{Lo: 0x27E8, Hi: 0x27E9}, // ⟨ ⟩
	{Lo: 0x2983, Hi: 0x2984}, // ⦃ ⦄
}

// table sorts the hand-authored ranges by lower bound, merges overlapping
// ones and sets each range's stride to 1, as unicode.Is requires.
func table(ranges []unicode.Range16) *unicode.RangeTable {
	rs := append([]unicode.Range16(nil), ranges...)
	sort.Slice(rs, func(i, j int) bool { return rs[i].Lo < rs[j].Lo })
	out := rs[:0]
	for _, r := range rs {
		r.Stride = 1
		if n := len(out); n > 0 && r.Lo <= out[n-1].Hi {
			out[n-1].Hi = max(out[n-1].Hi, r.Hi)
			continue
		}
		out = append(out, r)
	}
	return &unicode.RangeTable{R16: out, LatinOffset: latinOffset(out)}
}

func latinOffset(ranges []unicode.Range16) int {
	n := 0
	for _, r := range ranges {
		if r.Hi >= 0x100 {
			break
		}
		n++
	}
	return n
}

var (
	operatorTable  = table(operatorRanges)
	binaryTable    = table(binaryRanges)
	relationTable  = table(relationRanges)
	delimiterTable = table(delimiterRanges)

	// Symbol is the union of every code-point table above: any character
	// that is classified as a math symbol of some kind. It is built with
	// rangetable.Merge, the same composition helper used across the
	// x/text ecosystem for combining RangeTables.
	Symbol = rangetable.Merge(operatorTable, binaryTable, relationTable, delimiterTable)
)

// IsOperator reports whether c is classified as a generic operator glyph.
func IsOperator(c rune) bool { return unicode.Is(operatorTable, c) }

// IsBinary reports whether c is classified as a binary operator glyph.
func IsBinary(c rune) bool { return unicode.Is(binaryTable, c) }

// IsRelation reports whether c is classified as a relation glyph.
func IsRelation(c rune) bool { return unicode.Is(relationTable, c) }

// IsDelimiterChar reports whether c is classified as a fence/delimiter
// glyph, independent of which side it is used on.
func IsDelimiterChar(c rune) bool { return unicode.Is(delimiterTable, c) }
