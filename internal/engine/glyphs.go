package engine

import (
	"github.com/cwbudde/go-texmath/internal/lexer"
	"github.com/cwbudde/go-texmath/pkg/event"
)

// registerLeaf wires a control sequence that always produces exactly one
// Content leaf, consuming no further input. This is the bulk of the
// catalog: Greek/Hebrew letters, named operators, and miscellaneous
// symbols (grounded on the original reference parser's primitive table).
func registerLeaf(name string, role event.ContentRole, ch rune) {
	register(name, func(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
		d.stageEvent(event.Content{Role: role, Char: ch})
		return true, nil
	})
}

// registerWord wires a control sequence whose leaf carries a multi
// -character View rather than a single Char (named operators like \sin,
// multi-letter "function" names).
func registerWord(name string, role event.ContentRole, view string) {
	register(name, func(d *Driver, cur *lexer.Cursor, base int) (bool, error) {
		d.stageEvent(event.Content{Role: role, View: view})
		return true, nil
	})
}

func init() {
	registerGreek()
	registerHebrew()
	registerOperatorsAndRelations()
	registerFunctionNames()
	registerMiscSymbols()
}

func registerGreek() {
	lower := map[string]rune{
		"alpha": 'α', "beta": 'β', "gamma": 'γ', "delta": 'δ', "epsilon": 'ε',
		"varepsilon": 'ϵ', "zeta": 'ζ', "eta": 'η', "theta": 'θ', "vartheta": 'ϑ',
		"iota": 'ι', "kappa": 'κ', "lambda": 'λ', "mu": 'μ', "nu": 'ν', "xi": 'ξ',
		"pi": 'π', "varpi": 'ϖ', "rho": 'ρ', "varrho": 'ϱ', "sigma": 'σ',
		"varsigma": 'ς', "tau": 'τ', "upsilon": 'υ', "phi": 'φ', "varphi": 'ϕ',
		"chi": 'χ', "psi": 'ψ', "omega": 'ω',
	}
	for name, ch := range lower {
		registerLeaf(name, event.RoleIdentifier, ch)
	}
	upper := map[string]rune{
		"Gamma": 'Γ', "Delta": 'Δ', "Theta": 'Θ', "Lambda": 'Λ', "Xi": 'Ξ',
		"Pi": 'Π', "Sigma": 'Σ', "Upsilon": 'Υ', "Phi": 'Φ', "Psi": 'Ψ', "Omega": 'Ω',
	}
	for name, ch := range upper {
		registerLeaf(name, event.RoleIdentifier, ch)
	}
	registerLeaf("digamma", event.RoleIdentifier, 'ϝ')
	registerLeaf("varkappa", event.RoleIdentifier, 'ϰ')
}

func registerHebrew() {
	registerLeaf("aleph", event.RoleIdentifier, 'ℵ')
	registerLeaf("beth", event.RoleIdentifier, 'ℶ')
	registerLeaf("gimel", event.RoleIdentifier, 'ℷ')
	registerLeaf("daleth", event.RoleIdentifier, 'ℸ')
}

func registerOperatorsAndRelations() {
	binary := map[string]rune{
		"pm": '±', "mp": '∓', "times": '×', "div": '÷', "cdot": '⋅',
		"ast": '∗', "star": '⋆', "circ": '∘', "bullet": '∙',
		"oplus": '⊕', "ominus": '⊖', "otimes": '⊗', "oslash": '⊘', "odot": '⊙',
		"wedge": '∧', "vee": '∨', "cap": '∩', "cup": '∪', "setminus": '∖',
		"wr": '≀', "amalg": '⨿', "uplus": '⊎', "sqcap": '⊓', "sqcup": '⊔',
		"dagger": '†', "ddagger": '‡', "triangleleft": '◁', "triangleright": '▷',
	}
	for name, ch := range binary {
		registerLeaf(name, event.RoleBinaryOp, ch)
	}

	relation := map[string]rune{
		"leq": '≤', "le": '≤', "geq": '≥', "ge": '≥', "neq": '≠', "ne": '≠',
		"equiv": '≡', "sim": '∼', "simeq": '≃', "approx": '≈', "cong": '≅',
		"propto": '∝', "in": '∈', "notin": '∉', "ni": '∋', "subset": '⊂',
		"supset": '⊃', "subseteq": '⊆', "supseteq": '⊇', "sqsubset": '⊏',
		"sqsupset": '⊐', "sqsubseteq": '⊑', "sqsupseteq": '⊒',
		"parallel": '∥', "perp": '⊥', "mid": '∣', "nmid": '∤',
		"prec": '≺', "succ": '≻', "preceq": '≼', "succeq": '≽',
		"vdash": '⊢', "dashv": '⊣', "models": '⊨', "asymp": '≍',
		"doteq": '≐', "bowtie": '⋈', "smile": '⌣', "frown": '⌢',
	}
	for name, ch := range relation {
		registerLeaf(name, event.RoleRelation, ch)
	}

	registerLeaf("infty", event.RoleOrdinary, '∞')
	registerLeaf("partial", event.RoleOrdinary, '∂')
	registerLeaf("nabla", event.RoleOrdinary, '∇')
	registerLeaf("emptyset", event.RoleOrdinary, '∅')
	registerLeaf("varnothing", event.RoleOrdinary, '∅')
	registerLeaf("forall", event.RoleOrdinary, '∀')
	registerLeaf("exists", event.RoleOrdinary, '∃')
	registerLeaf("nexists", event.RoleOrdinary, '∄')
	registerLeaf("neg", event.RoleOrdinary, '¬')
	registerLeaf("lnot", event.RoleOrdinary, '¬')
	registerLeaf("top", event.RoleOrdinary, '⊤')
	registerLeaf("bot", event.RoleOrdinary, '⊥')
	registerLeaf("hbar", event.RoleOrdinary, 'ℏ')
	registerLeaf("ell", event.RoleOrdinary, 'ℓ')
	registerLeaf("Re", event.RoleOrdinary, 'ℜ')
	registerLeaf("Im", event.RoleOrdinary, 'ℑ')
	registerLeaf("wp", event.RoleOrdinary, '℘')
	registerLeaf("imath", event.RoleIdentifier, 'ı')
	registerLeaf("jmath", event.RoleIdentifier, 'ȷ')

	registerLeaf("cdots", event.RolePunctuation, '⋯')
	registerLeaf("ldots", event.RolePunctuation, '…')
	registerLeaf("dots", event.RolePunctuation, '…')
	registerLeaf("vdots", event.RolePunctuation, '⋮')
	registerLeaf("ddots", event.RolePunctuation, '⋱')
}

func registerFunctionNames() {
	names := []string{
		"sin", "cos", "tan", "csc", "sec", "cot",
		"sinh", "cosh", "tanh", "coth",
		"arcsin", "arccos", "arctan",
		"log", "ln", "exp",
		"arg", "deg", "det", "dim", "hom", "ker",
	}
	for _, n := range names {
		registerWord(n, event.RoleFunction, n)
	}
}

func registerMiscSymbols() {
	registerLeaf("prime", event.RoleOrdinary, '′')
	registerLeaf("angle", event.RoleOrdinary, '∠')
	registerLeaf("triangle", event.RoleOrdinary, '△')
	registerLeaf("surd", event.RoleOrdinary, '√')
	registerLeaf("flat", event.RoleOrdinary, '♭')
	registerLeaf("natural", event.RoleOrdinary, '♮')
	registerLeaf("sharp", event.RoleOrdinary, '♯')
}
