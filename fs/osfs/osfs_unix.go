//go:build unix

package osfs

import (
	"context"
	"os"

	"lesiw.io/pathname"
	"lesiw.io/pathname/fs"
)

// Chmod implements fs.ChmodFS on Unix systems.
func (f *FS) Chmod(
	ctx context.Context, name pathname.Path, mode fs.Mode,
) error {
	return os.Chmod(f.resolve(ctx, name), mode)
}

// Chown implements fs.ChownFS on Unix systems.
func (f *FS) Chown(
	ctx context.Context, name pathname.Path, uid, gid int,
) error {
	return os.Chown(f.resolve(ctx, name), uid, gid)
}

// Compile-time interface checks for Unix-specific capabilities.
var (
	_ fs.ChmodFS = (*FS)(nil)
	_ fs.ChownFS = (*FS)(nil)
)
