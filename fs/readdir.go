package fs

import (
	"context"
	"iter"

	"lesiw.io/pathname"
)

// A ReadDirFS is a file system with the ReadDir method.
type ReadDirFS interface {
	FS

	// ReadDir reads the directory and returns an iterator over its
	// entries in lexical order by name. For entries from ReadDir,
	// Path returns the zero Path.
	ReadDir(
		ctx context.Context, name pathname.Path,
	) iter.Seq2[DirEntry, error]
}

// ReadDir reads the named directory and returns an iterator over its
// entries in lexical order by name.
// Analogous to: [os.ReadDir], [io/fs.ReadDir], ls, 9P Tread on
// directory.
//
// Requires: [ReadDirFS]
func ReadDir(
	ctx context.Context, fsys FS, name pathname.Path,
) iter.Seq2[DirEntry, error] {
	name = name.Clean()
	if rdfs, ok := fsys.(ReadDirFS); ok {
		return rdfs.ReadDir(ctx, name)
	}
	return func(yield func(DirEntry, error) bool) {
		yield(nil, &PathError{
			Op:   "readdir",
			Path: name.String(),
			Err:  ErrUnsupported,
		})
	}
}
