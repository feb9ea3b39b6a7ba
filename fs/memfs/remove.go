package memfs

import (
	"context"

	"lesiw.io/pathname"
	"lesiw.io/pathname/fs"
)

var _ fs.RemoveFS = (*memFS)(nil)

func (f *memFS) Remove(ctx context.Context, name pathname.Path) error {
	name = resolveOperand(ctx, name)
	f.Lock()
	defer f.Unlock()

	dir, base, err := f.walkDir(name)
	if err != nil {
		return &fs.PathError{
			Op: "remove", Path: name.String(), Err: err,
		}
	}

	// A symlink is removed itself, never its target.
	n, ok := dir.nodes[base]
	if !ok {
		return &fs.PathError{
			Op: "remove", Path: name.String(), Err: fs.ErrNotExist,
		}
	}

	if n.dir && len(n.nodes) > 0 {
		return &fs.PathError{
			Op: "remove", Path: name.String(), Err: errDirNotEmpty,
		}
	}

	delete(dir.nodes, base)
	return nil
}
