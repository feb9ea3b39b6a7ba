package memfs

import (
	"context"
	"time"

	"lesiw.io/pathname"
	"lesiw.io/pathname/fs"
)

var _ fs.MkdirFS = (*memFS)(nil)

func (f *memFS) Mkdir(ctx context.Context, name pathname.Path) error {
	name = resolveOperand(ctx, name)

	// The root and "." always exist.
	if name.IsRoot() || name.IsDot() {
		return &fs.PathError{
			Op: "mkdir", Path: name.String(), Err: fs.ErrExist,
		}
	}

	f.Lock()
	defer f.Unlock()

	dir, base, err := f.walkDir(name)
	if err != nil {
		return &fs.PathError{
			Op: "mkdir", Path: name.String(), Err: err,
		}
	}

	if _, exists := dir.nodes[base]; exists {
		return &fs.PathError{
			Op: "mkdir", Path: name.String(), Err: fs.ErrExist,
		}
	}

	dir.nodes[base] = &node{
		name:    base,
		mode:    fs.DirMode(ctx) | fs.ModeDir,
		modTime: time.Now(),
		dir:     true,
		nodes:   make(map[string]*node),
	}

	return nil
}
