package fs

import (
	"context"
	"io"

	"lesiw.io/pathname"
)

// An FS is a file system with the Open method.
type FS interface {
	// Open opens the named file for reading.
	//
	// The returned reader must be closed when done. The reader may
	// also implement io.Seeker, io.ReaderAt, or other interfaces
	// depending on the implementation.
	Open(ctx context.Context, name pathname.Path) (io.ReadCloser, error)
}

// Open opens the named file for reading.
// Analogous to: [io/fs.Open], [os.Open], cat, 9P Topen, S3 GetObject.
//
// The operand is cleaned before it is handed to the provider.
//
// The returned [io.ReadCloser] must be closed when done.
//
// Requires: [FS]
func Open(
	ctx context.Context, fsys FS, name pathname.Path,
) (io.ReadCloser, error) {
	return fsys.Open(ctx, name.Clean())
}
