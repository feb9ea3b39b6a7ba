package pathname

import (
	"fmt"
	"slices"
)

// RelativeTo returns a relative path from base to the receiver: a path
// that, resolved against base lexically, is equivalent to the receiver.
// The computation never consults the filesystem, so it assumes no
// symbolic links change the meaning of "..".
//
// Both operands must be absolute or both relative; mixing the two fails
// with [ErrMixedAbsRel]. If base still needs upward traversal after the
// common prefix of the two cleaned paths is stripped, that is, its
// remainder contains a ".." component, the computation fails with
// [ErrDotDotBase].
//
// Two short circuits are ordinary control flow, not errors: if base is
// exactly ".", the receiver is returned unchanged, and if the receiver
// equals base (per [Path.Equal]), the result is ".".
//
//	MustNew("/Users/stouset/foo").RelativeTo(MustNew("/Users"))
//	// "stouset/foo"
//	MustNew("/Users/stouset/foo").RelativeTo(MustNew("/Library"))
//	// "../Users/stouset/foo"
func (p Path) RelativeTo(base Path) (Path, error) {
	if p.IsAbs() != base.IsAbs() {
		return Path{}, fmt.Errorf(
			"%q is not relative to %q: %w",
			p.text, base.text, ErrMixedAbsRel,
		)
	}
	if base.text == Dot {
		return p, nil
	}
	if p.Equal(base) {
		return Path{text: Dot}, nil
	}

	dest := p.Clean().Components()
	rest := base.Clean().Components()
	for len(dest) > 0 && len(rest) > 0 && dest[0] == rest[0] {
		dest, rest = dest[1:], rest[1:]
	}

	// A cleaned path contains "." only as its sole component, so at most
	// one leading "." can remain on either side.
	if len(dest) > 0 && dest[0] == Dot {
		dest = dest[1:]
	}
	if len(rest) > 0 && rest[0] == Dot {
		rest = rest[1:]
	}
	if slices.Contains(rest, DotDot) {
		return Path{}, fmt.Errorf(
			"%q is not relative to %q: %w",
			p.text, base.text, ErrDotDotBase,
		)
	}

	comps := make([]string, 0, len(rest)+len(dest))
	for range rest {
		comps = append(comps, DotDot)
	}
	comps = append(comps, dest...)
	if len(comps) == 0 {
		return Path{text: Dot}, nil
	}
	return Path{text: joinComponents(comps)}, nil
}
