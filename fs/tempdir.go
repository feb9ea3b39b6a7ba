package fs

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"lesiw.io/pathname"
)

// A TempDirFS is a file system with the TempDir method.
//
// If not implemented, [TempDir] falls back to creating a directory with
// a random name using [MkdirFS].
type TempDirFS interface {
	FS

	// TempDir creates a temporary directory with the given prefix in
	// a provider-appropriate temporary location and returns its path.
	//
	// If the provider cannot determine an appropriate temp location,
	// it should return ErrUnsupported to trigger the fallback
	// behavior.
	TempDir(ctx context.Context, prefix string) (pathname.Path, error)
}

// TempDir creates a temporary directory.
// Analogous to: [os.MkdirTemp], mktemp -d.
//
// The directory name has the pattern prefix-randomhex. The caller is
// responsible for removing the directory when done.
//
// If fsys implements [TempDirFS], TempDir uses the native
// implementation. Otherwise, TempDir falls back to creating a directory
// with a random name in the current directory with mode 0700, which
// requires [MkdirFS].
func TempDir(
	ctx context.Context, fsys FS, prefix string,
) (pathname.Path, error) {
	if tfs, ok := fsys.(TempDirFS); ok {
		dir, err := tfs.TempDir(ctx, prefix)
		if err == nil {
			return dir, nil
		}
		if !errors.Is(err, ErrUnsupported) {
			return pathname.Path{}, err
		}
	}

	if _, ok := fsys.(MkdirFS); !ok {
		return pathname.Path{}, &PathError{
			Op:   "tempdir",
			Path: prefix,
			Err:  ErrUnsupported,
		}
	}
	return tempDirFallback(ctx, fsys, prefix)
}

// tempDirFallback creates a temporary directory using Mkdir.
func tempDirFallback(
	ctx context.Context, fsys FS, prefix string,
) (pathname.Path, error) {
	var randBytes [16]byte
	if _, err := rand.Read(randBytes[:]); err != nil {
		return pathname.Path{}, &PathError{
			Op:   "tempdir",
			Path: prefix,
			Err:  err,
		}
	}

	if prefix == "" {
		prefix = "tmp"
	}
	dir, err := pathname.New(prefix + "-" + hex.EncodeToString(randBytes[:]))
	if err != nil {
		return pathname.Path{}, err
	}

	dirCtx := WithDirMode(ctx, 0700)
	if err := Mkdir(dirCtx, fsys, dir); err != nil {
		return pathname.Path{}, err
	}
	return dir, nil
}
