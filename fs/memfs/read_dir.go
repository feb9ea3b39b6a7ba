package memfs

import (
	"context"
	"iter"
	"slices"
	"strings"

	"lesiw.io/pathname"
	"lesiw.io/pathname/fs"
)

var _ fs.ReadDirFS = (*memFS)(nil)

func (f *memFS) ReadDir(
	ctx context.Context, name pathname.Path,
) iter.Seq2[fs.DirEntry, error] {
	name = resolveOperand(ctx, name)

	return func(yield func(fs.DirEntry, error) bool) {
		// Snapshot entries while holding the lock.
		f.RLock()

		n, err := f.walk(name, true)
		if err != nil {
			f.RUnlock()
			yield(nil, &fs.PathError{
				Op: "readdir", Path: name.String(), Err: err,
			})
			return
		}
		if !n.dir {
			f.RUnlock()
			yield(nil, &fs.PathError{
				Op: "readdir", Path: name.String(), Err: fs.ErrNotDir,
			})
			return
		}

		entries := make([]*dirEntry, 0, len(n.nodes))
		for _, child := range n.nodes {
			entries = append(entries, &dirEntry{
				name:  child.name,
				isDir: child.dir,
				typ:   child.mode.Type(),
				info:  &fileInfo{node: child},
			})
		}
		f.RUnlock()

		slices.SortFunc(entries, func(a, b *dirEntry) int {
			return strings.Compare(a.name, b.name)
		})

		// Yield entries without holding the lock.
		for _, entry := range entries {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}
			if !yield(entry, nil) {
				return
			}
		}
	}
}

// dirEntry implements fs.DirEntry.
type dirEntry struct {
	name  string
	isDir bool
	typ   fs.Mode
	info  fs.FileInfo
}

func (de *dirEntry) Name() string               { return de.name }
func (de *dirEntry) IsDir() bool                { return de.isDir }
func (de *dirEntry) Type() fs.Mode              { return de.typ }
func (de *dirEntry) Info() (fs.FileInfo, error) { return de.info, nil }
func (de *dirEntry) Path() pathname.Path        { return pathname.Path{} }
