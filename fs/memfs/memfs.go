// Package memfs implements lesiw.io/pathname/fs.FS using an in-memory
// file tree.
//
// The tree supports directories, regular files, and symbolic links, so
// every wrapper in lesiw.io/pathname/fs has an in-memory provider to run
// against. All state is guarded by a single RWMutex; operations are safe
// for concurrent use.
package memfs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"lesiw.io/pathname"
	"lesiw.io/pathname/fs"
)

var (
	errIsDir       = errors.New("is a directory")
	errDirNotEmpty = errors.New("directory not empty")
)

// New returns a new empty in-memory filesystem.
func New() fs.FS {
	return &memFS{
		node: &node{
			name:    "",
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			dir:     true,
			nodes:   make(map[string]*node),
		},
	}
}

type memFS struct {
	sync.RWMutex
	*node
}

// node represents a file, directory, or symlink in the filesystem.
type node struct {
	name    string
	data    []byte
	mode    fs.Mode
	modTime time.Time
	dir     bool
	link    pathname.Path
	nodes   map[string]*node
}

func (n *node) isLink() bool {
	return n.mode&fs.ModeSymlink != 0
}

// resolveOperand applies any context working directory and cleans the
// operand. All tree lookups key off the cleaned component sequence.
func resolveOperand(
	ctx context.Context, name pathname.Path,
) pathname.Path {
	if wd := fs.WorkDir(ctx); name.IsRel() && wd.String() != "" {
		return wd.Append(name)
	}
	return name.Clean()
}

// walk traverses the tree to the node at name. Symlinks in intermediate
// components are always followed; followFinal controls whether a
// symlink at the final component is followed too. Link expansion is
// bounded by [pathname.SymloopMax].
//
// The caller must hold the lock.
func (f *memFS) walk(name pathname.Path, followFinal bool) (*node, error) {
	// stack[0] is the root; the tail is the current directory.
	stack := []*node{f.node}
	var links int

	queue := name.Clean().Components()
	for len(queue) > 0 {
		comp := queue[0]
		queue = queue[1:]

		switch comp {
		case pathname.Dot:
			continue
		case pathname.Root:
			stack = stack[:1]
			continue
		case pathname.DotDot:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
			continue
		}

		cur := stack[len(stack)-1]
		if !cur.dir {
			return nil, fs.ErrNotDir
		}
		next, ok := cur.nodes[comp]
		if !ok {
			return nil, fs.ErrNotExist
		}

		if next.isLink() && (followFinal || len(queue) > 0) {
			links++
			if links > pathname.SymloopMax {
				return nil, fs.ErrLinkLoop
			}
			queue = append(next.link.Clean().Components(), queue...)
			continue
		}
		stack = append(stack, next)
	}

	return stack[len(stack)-1], nil
}

// walkDir resolves name's parent directory, following symlinks, and
// returns it along with name's base component.
//
// The caller must hold the lock.
func (f *memFS) walkDir(name pathname.Path) (*node, string, error) {
	parent, err := f.walk(name.Dir(), true)
	if err != nil {
		return nil, "", err
	}
	if !parent.dir {
		return nil, "", fs.ErrNotDir
	}
	return parent, name.Base().String(), nil
}

var _ fs.FS = (*memFS)(nil)

func (f *memFS) Open(
	ctx context.Context, name pathname.Path,
) (io.ReadCloser, error) {
	name = resolveOperand(ctx, name)
	f.RLock()
	defer f.RUnlock()

	n, err := f.walk(name, true)
	if err != nil {
		return nil, &fs.PathError{
			Op: "open", Path: name.String(), Err: err,
		}
	}
	if n.dir {
		return nil, &fs.PathError{
			Op: "open", Path: name.String(), Err: errIsDir,
		}
	}

	return io.NopCloser(bytes.NewReader(n.data)), nil
}

type writer struct {
	*memFS
	*node
	bytes.Buffer
}

func newWriter(fsys *memFS, n *node) *writer {
	return &writer{memFS: fsys, node: n}
}

func (w *writer) Write(p []byte) (int, error) { return w.Buffer.Write(p) }

func (w *writer) Close() error {
	w.Lock()
	defer w.Unlock()

	w.node.data = append(w.node.data, w.Bytes()...)
	w.node.modTime = time.Now()

	return nil
}
