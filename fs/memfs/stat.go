package memfs

import (
	"context"
	"time"

	"lesiw.io/pathname"
	"lesiw.io/pathname/fs"
)

var _ fs.StatFS = (*memFS)(nil)

func (f *memFS) Stat(
	ctx context.Context, name pathname.Path,
) (fs.FileInfo, error) {
	name = resolveOperand(ctx, name)
	f.RLock()
	defer f.RUnlock()

	n, err := f.walk(name, true)
	if err != nil {
		return nil, &fs.PathError{
			Op: "stat", Path: name.String(), Err: err,
		}
	}

	return &fileInfo{node: n}, nil
}

var _ fs.FileInfo = (*fileInfo)(nil)

type fileInfo struct{ *node }

func (fi *fileInfo) Name() string       { return fi.node.name }
func (fi *fileInfo) Size() int64        { return int64(len(fi.node.data)) }
func (fi *fileInfo) Mode() fs.Mode      { return fi.node.mode }
func (fi *fileInfo) ModTime() time.Time { return fi.node.modTime }
func (fi *fileInfo) IsDir() bool        { return fi.node.dir }
func (fi *fileInfo) Sys() any           { return nil }
