package fs

import (
	"context"
	"errors"

	"lesiw.io/pathname"
)

// ErrLinkLoop indicates that resolving a path required more than
// [pathname.SymloopMax] symbolic link expansions.
var ErrLinkLoop = errors.New("too many levels of symbolic links")

// RealPath resolves every symbolic link in name and returns the cleaned
// result.
// Analogous to: realpath, readlink -f.
//
// Resolution walks the cleaned path component by component. Each
// component is inspected with Lstat; when it is a symbolic link, its
// target read via ReadLink replaces it, restarting from the filesystem
// root when the target is absolute. At most [pathname.SymloopMax] link
// expansions are performed; past that bound RealPath fails with
// [ErrLinkLoop]. Every component of the path must exist.
//
// If the provider does not implement [ReadLinkFS], there are no
// symlinks to resolve and RealPath degrades to [Abs] resolution,
// falling back to a plain lexical clean when ctx carries no absolute
// working directory.
func RealPath(
	ctx context.Context, fsys FS, name pathname.Path,
) (pathname.Path, error) {
	rlfs, ok := fsys.(ReadLinkFS)
	if !ok {
		if abs, err := Abs(ctx, name); err == nil {
			return abs, nil
		}
		return name.Clean(), nil
	}

	var resolved pathname.Path
	var links int
	queue := name.Clean().Components()
	for len(queue) > 0 {
		comp := queue[0]
		queue = queue[1:]

		if comp == pathname.Root {
			resolved = pathname.MustNew(pathname.Root)
			continue
		}
		next := resolved.Join(comp).Clean()

		info, err := rlfs.Lstat(ctx, next)
		if err != nil {
			return pathname.Path{}, newPathError("realpath", next, err)
		}
		if info.Mode()&ModeSymlink == 0 {
			resolved = next
			continue
		}

		links++
		if links > pathname.SymloopMax {
			return pathname.Path{}, &PathError{
				Op:   "realpath",
				Path: name.String(),
				Err:  ErrLinkLoop,
			}
		}
		target, err := rlfs.ReadLink(ctx, next)
		if err != nil {
			return pathname.Path{}, newPathError("realpath", next, err)
		}
		// An absolute target restarts resolution at the root via its
		// own leading root component. A relative one resolves against
		// the directory holding the link, which is resolved already.
		queue = append(target.Clean().Components(), queue...)
	}

	if resolved.String() == "" {
		return pathname.MustNew(pathname.Dot), nil
	}
	return resolved, nil
}
