package fs

import (
	"context"

	"lesiw.io/pathname"
)

// Abs returns an absolute, cleaned form of name.
//
// If name is already absolute, Abs returns it cleaned. If name is
// relative, Abs resolves it against the working directory carried in
// ctx via [WithWorkDir], which must itself be absolute. With no
// absolute working directory available, Abs fails with
// [ErrUnsupported].
//
// Abs is purely lexical; it does not consult any provider.
// Similar capabilities: [path/filepath.Abs], pwd.
func Abs(ctx context.Context, name pathname.Path) (pathname.Path, error) {
	if name.IsAbs() {
		return name.Clean(), nil
	}
	if wd := WorkDir(ctx); wd.IsAbs() {
		return wd.Append(name), nil
	}
	return pathname.Path{}, &PathError{
		Op:   "abs",
		Path: name.String(),
		Err:  ErrUnsupported,
	}
}
