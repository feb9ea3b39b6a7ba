package fs

import (
	"context"
	"errors"

	"lesiw.io/pathname"
)

// Exists reports whether the named file or directory exists. Existence
// is only ever established by an explicit provider query; a Path value
// itself carries no notion of existence.
//
// Requires: [StatFS]
func Exists(
	ctx context.Context, fsys FS, name pathname.Path,
) (bool, error) {
	_, err := Stat(ctx, fsys, name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNotExist) {
		return false, nil
	}
	return false, err
}

// IsDir reports whether the named path exists and is a directory,
// following symbolic links.
//
// Requires: [StatFS]
func IsDir(ctx context.Context, fsys FS, name pathname.Path) bool {
	info, err := Stat(ctx, fsys, name)
	return err == nil && info.IsDir()
}

// IsFile reports whether the named path exists and is a regular file,
// following symbolic links.
//
// Requires: [StatFS]
func IsFile(ctx context.Context, fsys FS, name pathname.Path) bool {
	info, err := Stat(ctx, fsys, name)
	return err == nil && info.Mode().IsRegular()
}

// IsSymlink reports whether the named path exists and is a symbolic
// link. Unlike [IsDir] and [IsFile], the link itself is inspected, not
// its target.
//
// Requires: [ReadLinkFS] || [StatFS]
func IsSymlink(ctx context.Context, fsys FS, name pathname.Path) bool {
	info, err := Lstat(ctx, fsys, name)
	return err == nil && info.Mode()&ModeSymlink != 0
}

// Size returns the size in bytes of the named file, following symbolic
// links.
//
// Requires: [StatFS]
func Size(
	ctx context.Context, fsys FS, name pathname.Path,
) (int64, error) {
	info, err := Stat(ctx, fsys, name)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
