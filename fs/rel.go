package fs

import (
	"context"

	"lesiw.io/pathname"
)

// Rel returns a relative path from base to target.
//
// When one operand is absolute and the other relative, both are first
// absolutized with [Abs] against the context working directory, so the
// mixed-frame case that [pathname.Path.RelativeTo] rejects succeeds
// here whenever ctx carries an absolute [WithWorkDir]. The derivation
// itself is lexical.
//
// Similar capabilities: [path/filepath.Rel].
func Rel(
	ctx context.Context, base, target pathname.Path,
) (pathname.Path, error) {
	if base.IsAbs() != target.IsAbs() {
		var err error
		if base, err = Abs(ctx, base); err != nil {
			return pathname.Path{}, err
		}
		if target, err = Abs(ctx, target); err != nil {
			return pathname.Path{}, err
		}
	}
	return target.RelativeTo(base)
}
