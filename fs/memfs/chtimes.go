package memfs

import (
	"context"
	"time"

	"lesiw.io/pathname"
	"lesiw.io/pathname/fs"
)

var _ fs.ChtimesFS = (*memFS)(nil)

// Chtimes updates the modification time of the named file. The tree
// does not record access times, so atime is accepted and discarded.
func (f *memFS) Chtimes(
	ctx context.Context, name pathname.Path, atime, mtime time.Time,
) error {
	name = resolveOperand(ctx, name)
	f.Lock()
	defer f.Unlock()

	n, err := f.walk(name, true)
	if err != nil {
		return &fs.PathError{
			Op: "chtimes", Path: name.String(), Err: err,
		}
	}

	if !mtime.IsZero() {
		n.modTime = mtime
	}
	return nil
}
