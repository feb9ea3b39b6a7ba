package memfs

import (
	"context"

	"lesiw.io/pathname"
	"lesiw.io/pathname/fs"
)

var _ fs.RenameFS = (*memFS)(nil)

func (f *memFS) Rename(
	ctx context.Context, oldname, newname pathname.Path,
) error {
	oldname = resolveOperand(ctx, oldname)
	newname = resolveOperand(ctx, newname)
	f.Lock()
	defer f.Unlock()

	oldDir, oldBase, err := f.walkDir(oldname)
	if err != nil {
		return &fs.PathError{
			Op: "rename", Path: oldname.String(), Err: err,
		}
	}

	n, ok := oldDir.nodes[oldBase]
	if !ok {
		return &fs.PathError{
			Op: "rename", Path: oldname.String(), Err: fs.ErrNotExist,
		}
	}

	newDir, newBase, err := f.walkDir(newname)
	if err != nil {
		return &fs.PathError{
			Op: "rename", Path: newname.String(), Err: err,
		}
	}
	if existing, ok := newDir.nodes[newBase]; ok && existing.dir {
		return &fs.PathError{
			Op: "rename", Path: newname.String(), Err: fs.ErrExist,
		}
	}

	n.name = newBase
	newDir.nodes[newBase] = n
	delete(oldDir.nodes, oldBase)

	return nil
}
