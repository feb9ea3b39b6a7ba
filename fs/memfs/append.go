package memfs

import (
	"context"
	"io"
	"time"

	"lesiw.io/pathname"
	"lesiw.io/pathname/fs"
)

var _ fs.AppendFS = (*memFS)(nil)

func (f *memFS) Append(
	ctx context.Context, name pathname.Path,
) (io.WriteCloser, error) {
	name = resolveOperand(ctx, name)
	f.Lock()
	defer f.Unlock()

	dir, base, err := f.walkDir(name)
	if err != nil {
		return nil, &fs.PathError{
			Op: "append", Path: name.String(), Err: err,
		}
	}

	n, ok := dir.nodes[base]
	if !ok {
		n = &node{
			name:    base,
			mode:    fs.FileMode(ctx),
			modTime: time.Now(),
		}
		dir.nodes[base] = n
	}
	if n.dir {
		return nil, &fs.PathError{
			Op: "append", Path: name.String(), Err: errIsDir,
		}
	}
	return newWriter(f, n), nil
}
