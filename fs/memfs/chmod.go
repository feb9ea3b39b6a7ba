package memfs

import (
	"context"

	"lesiw.io/pathname"
	"lesiw.io/pathname/fs"
)

var _ fs.ChmodFS = (*memFS)(nil)

func (f *memFS) Chmod(
	ctx context.Context, name pathname.Path, mode fs.Mode,
) error {
	name = resolveOperand(ctx, name)
	f.Lock()
	defer f.Unlock()

	n, err := f.walk(name, true)
	if err != nil {
		return &fs.PathError{
			Op: "chmod", Path: name.String(), Err: err,
		}
	}

	n.mode = n.mode.Type() | mode.Perm()
	return nil
}
