package engine

import "github.com/cwbudde/go-texmath/pkg/event"

// groupBodyInstr wraps a captured group body (already balanced by the
// lexer) as a pending fragment that owns exactly one group-stack level:
// when the fragment is fully consumed, that level must still equal kind,
// or the input is unbalanced (spec §4.5). The Begin/End events bracketing
// it are staged separately by the caller, matching the teacher/original's
// buffer pattern of scheduling [Begin, Substring(body), End] as one unit.
func groupBodyInstr(body string, base int, kind event.GroupKind, allowAlign bool) instruction {
	return instruction{
		pending:    body,
		base:       base,
		allowAlign: allowAlign,
		hasGroup:   true,
		wantGroup:  kind,
	}
}

// allowsAlignment reports whether a group kind permits Alignment/NewLine
// events in its body (invariant 3, spec §3). GroupLeftRight is excluded by
// default per the Open Question recorded in spec §9, overridable via
// WithAlignmentInLeftRight.
func (d *Driver) allowsAlignment(kind event.GroupKind) bool {
	switch kind {
	case event.GroupArray, event.GroupMatrix, event.GroupCases, event.GroupAlign:
		return true
	case event.GroupLeftRight:
		return d.opts.allowAlignmentInLeftRight
	default:
		return false
	}
}
