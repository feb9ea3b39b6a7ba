package fs

import (
	"context"
	"iter"

	"lesiw.io/pathname"
)

// Walk traverses the filesystem rooted at root in depth-first pre-order:
// each directory's entries are yielded in lexical order, and each
// subdirectory is descended into immediately after its own entry is
// yielded.
// Analogous to: [io/fs.WalkDir], find, tree.
//
// The depth parameter controls how deep to traverse (like find
// -maxdepth):
//   - depth <= 0: unlimited depth
//   - depth >= 1: the root's entries plus depth-1 levels of
//     subdirectories
//
// Walk does not follow symbolic links. Entries are yielded for symbolic
// links themselves, but they are not traversed.
//
// Entries returned by Walk have Path populated with the full path of the
// entry: root joined with the entry's position below it, cleaned.
//
// If an error occurs reading a directory, the iteration yields a nil
// DirEntry and the error. The caller can continue iterating, skipping
// that directory, or break to stop the walk.
//
// Requires: [ReadDirFS]
func Walk(
	ctx context.Context, fsys FS, root pathname.Path, depth int,
) iter.Seq2[DirEntry, error] {
	root = root.Clean()
	if _, ok := fsys.(ReadDirFS); !ok {
		return func(yield func(DirEntry, error) bool) {
			yield(nil, &PathError{
				Op:   "walk",
				Path: root.String(),
				Err:  ErrUnsupported,
			})
		}
	}
	return func(yield func(DirEntry, error) bool) {
		walkDir(ctx, fsys, root, depth, yield)
	}
}

// walkEntry implements DirEntry with path information for Walk.
type walkEntry struct {
	name  string
	isDir bool
	typ   Mode
	info  FileInfo
	path  pathname.Path
}

func (we *walkEntry) Name() string            { return we.name }
func (we *walkEntry) IsDir() bool             { return we.isDir }
func (we *walkEntry) Type() Mode              { return we.typ }
func (we *walkEntry) Info() (FileInfo, error) { return we.info, nil }
func (we *walkEntry) Path() pathname.Path     { return we.path }

// walkDir yields dir's entries and recurses into subdirectories.
// It reports whether the caller wants iteration to continue.
func walkDir(
	ctx context.Context, fsys FS, dir pathname.Path, depth int,
	yield func(DirEntry, error) bool,
) bool {
	for entry, err := range ReadDir(ctx, fsys, dir) {
		if err != nil {
			if !yield(nil, newPathError("walk", dir, err)) {
				return false
			}
			continue
		}

		entryPath := dir.Join(entry.Name()).Clean()

		info, err := entry.Info()
		if err != nil {
			if !yield(nil, newPathError("stat", entryPath, err)) {
				return false
			}
			continue
		}

		we := &walkEntry{
			name:  entry.Name(),
			isDir: entry.IsDir(),
			typ:   entry.Type(),
			info:  info,
			path:  entryPath,
		}
		if !yield(we, nil) {
			return false
		}

		if entry.IsDir() && (depth <= 0 || depth > 1) {
			next := depth - 1
			if depth <= 0 {
				next = 0
			}
			if !walkDir(ctx, fsys, entryPath, next, yield) {
				return false
			}
		}
	}
	return true
}
