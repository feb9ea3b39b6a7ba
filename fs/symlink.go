package fs

import (
	"context"

	"lesiw.io/pathname"
)

// A SymlinkFS is a file system with the Symlink method.
type SymlinkFS interface {
	FS

	// Symlink creates newname as a symbolic link to oldname.
	Symlink(ctx context.Context, oldname, newname pathname.Path) error
}

// A ReadLinkFS is a file system with the ReadLink and Lstat methods.
type ReadLinkFS interface {
	FS

	// ReadLink returns the destination of the named symbolic link.
	// If the link destination is relative, ReadLink returns the
	// relative path without resolving it to an absolute one.
	ReadLink(
		ctx context.Context, name pathname.Path,
	) (pathname.Path, error)

	// Lstat returns FileInfo describing the named file.
	// If the file is a symbolic link, the returned FileInfo
	// describes the symbolic link. Lstat makes no attempt to follow
	// the link.
	Lstat(ctx context.Context, name pathname.Path) (FileInfo, error)
}

// Symlink creates newname as a symbolic link to oldname.
// Analogous to: [os.Symlink], ln -s, 9P2000.u Tsymlink.
//
// The link target oldname is stored verbatim, not cleaned: the text of a
// symlink is data, and rewriting it could change what it resolves to.
//
// Requires: [SymlinkFS]
func Symlink(
	ctx context.Context, fsys FS, oldname, newname pathname.Path,
) error {
	newname = newname.Clean()
	if sfs, ok := fsys.(SymlinkFS); ok {
		return sfs.Symlink(ctx, oldname, newname)
	}
	return &PathError{
		Op:   "symlink",
		Path: newname.String(),
		Err:  ErrUnsupported,
	}
}

// ReadLink returns the destination of the named symbolic link.
// Analogous to: [os.Readlink], readlink, 9P2000.u Treadlink.
// If the link destination is relative, ReadLink returns the relative
// path without resolving it to an absolute one.
//
// Requires: [ReadLinkFS]
func ReadLink(
	ctx context.Context, fsys FS, name pathname.Path,
) (pathname.Path, error) {
	name = name.Clean()
	if rfs, ok := fsys.(ReadLinkFS); ok {
		return rfs.ReadLink(ctx, name)
	}
	return pathname.Path{}, &PathError{
		Op:   "readlink",
		Path: name.String(),
		Err:  ErrUnsupported,
	}
}

// Lstat returns FileInfo describing the named file.
// Analogous to: [os.Lstat], stat -L, ls -l (on symlink itself).
// If the file is a symbolic link, the returned FileInfo describes the
// symbolic link. Lstat makes no attempt to follow the link.
//
// Requires: [ReadLinkFS] || [StatFS]
func Lstat(
	ctx context.Context, fsys FS, name pathname.Path,
) (FileInfo, error) {
	name = name.Clean()
	if rfs, ok := fsys.(ReadLinkFS); ok {
		return rfs.Lstat(ctx, name)
	}
	return Stat(ctx, fsys, name)
}
