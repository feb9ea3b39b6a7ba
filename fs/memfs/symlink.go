package memfs

import (
	"context"
	"time"

	"lesiw.io/pathname"
	"lesiw.io/pathname/fs"
)

var (
	_ fs.SymlinkFS  = (*memFS)(nil)
	_ fs.ReadLinkFS = (*memFS)(nil)
)

func (f *memFS) Symlink(
	ctx context.Context, oldname, newname pathname.Path,
) error {
	newname = resolveOperand(ctx, newname)
	f.Lock()
	defer f.Unlock()

	dir, base, err := f.walkDir(newname)
	if err != nil {
		return &fs.PathError{
			Op: "symlink", Path: newname.String(), Err: err,
		}
	}
	if _, exists := dir.nodes[base]; exists {
		return &fs.PathError{
			Op: "symlink", Path: newname.String(), Err: fs.ErrExist,
		}
	}

	// The target is stored verbatim; it is not required to exist.
	dir.nodes[base] = &node{
		name:    base,
		mode:    0777 | fs.ModeSymlink,
		modTime: time.Now(),
		link:    oldname,
	}
	return nil
}

func (f *memFS) ReadLink(
	ctx context.Context, name pathname.Path,
) (pathname.Path, error) {
	name = resolveOperand(ctx, name)
	f.RLock()
	defer f.RUnlock()

	n, err := f.walk(name, false)
	if err != nil {
		return pathname.Path{}, &fs.PathError{
			Op: "readlink", Path: name.String(), Err: err,
		}
	}
	if !n.isLink() {
		return pathname.Path{}, &fs.PathError{
			Op: "readlink", Path: name.String(), Err: fs.ErrInvalid,
		}
	}
	return n.link, nil
}

func (f *memFS) Lstat(
	ctx context.Context, name pathname.Path,
) (fs.FileInfo, error) {
	name = resolveOperand(ctx, name)
	f.RLock()
	defer f.RUnlock()

	n, err := f.walk(name, false)
	if err != nil {
		return nil, &fs.PathError{
			Op: "lstat", Path: name.String(), Err: err,
		}
	}
	return &fileInfo{node: n}, nil
}
