package memfs

import (
	"context"
	"time"

	"lesiw.io/pathname"
	"lesiw.io/pathname/fs"
)

var _ fs.TruncateFS = (*memFS)(nil)

func (f *memFS) Truncate(
	ctx context.Context, name pathname.Path, size int64,
) error {
	name = resolveOperand(ctx, name)
	f.Lock()
	defer f.Unlock()

	n, err := f.walk(name, true)
	if err != nil {
		return &fs.PathError{
			Op: "truncate", Path: name.String(), Err: err,
		}
	}
	if n.dir {
		return &fs.PathError{
			Op: "truncate", Path: name.String(), Err: errIsDir,
		}
	}

	if size < 0 {
		size = 0
	}

	if int64(len(n.data)) > size {
		n.data = n.data[:size]
	} else if int64(len(n.data)) < size {
		newData := make([]byte, size)
		copy(newData, n.data)
		n.data = newData
	}
	n.modTime = time.Now()

	return nil
}
