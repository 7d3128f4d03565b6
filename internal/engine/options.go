package engine

// Options carries the in-process behavioral switches a Driver accepts.
// There is no persisted configuration (spec §6: "no files, sockets,
// environment, or persisted state") — every Option is a pure function
// toggling a field here, the same functional-options shape as the
// teacher's lexer.LexerOption.
type Options struct {
	// allowAlignmentInLeftRight overrides the Open Question recorded in
	// spec §9: by default, `\left...\right` does not admit alignment
	// characters even inside an enclosing alignment environment, matching
	// the spec's chosen (possibly bug-compatible) behavior. Set true to
	// experiment with the alternative reading.
	allowAlignmentInLeftRight bool

	// trace, if non-nil, is called once per atom the driver parses, with a
	// short human-readable description — the Driver-level analogue of the
	// teacher's WithTracing.
	trace func(msg string)

	// invalidateRelax mirrors the state flag named in spec §3
	// ("invalidate-relax"): some embeddings want `\relax` rejected outright
	// rather than treated as a no-op (e.g. strict-mode validation tools).
	invalidateRelax bool
}

// Option configures a Driver at construction time.
type Option func(*Options)

// WithAlignmentInLeftRight toggles whether `\left...\right` bodies permit
// `&`/`\\` even when nested inside an alignment-enabled environment.
func WithAlignmentInLeftRight(allow bool) Option {
	return func(o *Options) { o.allowAlignmentInLeftRight = allow }
}

// WithTrace installs a callback invoked once per atom parsed, for
// debugging; pass nil (the default) to disable tracing.
func WithTrace(fn func(msg string)) Option {
	return func(o *Options) { o.trace = fn }
}

// WithInvalidateRelax makes `\relax` an error instead of a no-op,
// honoring the `invalidate-relax` state flag some contexts set (spec §3).
func WithInvalidateRelax(invalidate bool) Option {
	return func(o *Options) { o.invalidateRelax = invalidate }
}
