package fstest

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"lesiw.io/pathname"
	"lesiw.io/pathname/fs"
)

// walkTree builds a small fixture tree under root:
//
//	root/a.txt
//	root/b/c.txt
//	root/b/d/e.txt
//	root/f.txt
func walkTree(
	ctx context.Context, t *testing.T, fsys fs.FS, root pathname.Path,
) {
	t.Helper()

	err := fs.MkdirAll(ctx, fsys, root.Join("b", "d"))
	if err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("mkdir not supported")
		}
		t.Fatalf("MkdirAll: %v", err)
	}
	cleanup(ctx, t, fsys, root)

	for _, name := range []string{"a.txt", "b/c.txt", "b/d/e.txt", "f.txt"} {
		file := root.Join(name)
		if err := fs.WriteFile(ctx, fsys, file, []byte(name)); err != nil {
			t.Fatalf("WriteFile(%q): %v", file, err)
		}
	}
}

func walkPaths(
	ctx context.Context, t *testing.T, fsys fs.FS,
	root pathname.Path, depth int,
) []string {
	t.Helper()

	var paths []string
	for entry, err := range fs.Walk(ctx, fsys, root, depth) {
		if err != nil {
			if errors.Is(err, fs.ErrUnsupported) {
				t.Skip("walk not supported")
			}
			t.Fatalf("Walk(%q): %v", root, err)
		}
		paths = append(paths, entry.Path().String())
	}
	return paths
}

func testWalkPreOrder(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	root := pth("test_walk")
	walkTree(ctx, t, fsys, root)

	got := walkPaths(ctx, t, fsys, root, 0)
	want := []string{
		"test_walk/a.txt",
		"test_walk/b",
		"test_walk/b/c.txt",
		"test_walk/b/d",
		"test_walk/b/d/e.txt",
		"test_walk/f.txt",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Walk(%q) order mismatch (-want +got):\n%s", root, diff)
	}
}

func testWalkDepth(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	root := pth("test_walk_depth")
	walkTree(ctx, t, fsys, root)

	got := walkPaths(ctx, t, fsys, root, 1)
	want := []string{
		"test_walk_depth/a.txt",
		"test_walk_depth/b",
		"test_walk_depth/f.txt",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Walk(%q, 1) mismatch (-want +got):\n%s", root, diff)
	}

	got = walkPaths(ctx, t, fsys, root, 2)
	want = []string{
		"test_walk_depth/a.txt",
		"test_walk_depth/b",
		"test_walk_depth/b/c.txt",
		"test_walk_depth/b/d",
		"test_walk_depth/f.txt",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Walk(%q, 2) mismatch (-want +got):\n%s", root, diff)
	}
}

func testWalkEmpty(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	root := pth("test_walk_empty")
	if err := fs.Mkdir(ctx, fsys, root); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("mkdir not supported")
		}
		t.Fatalf("Mkdir(%q): %v", root, err)
	}
	cleanup(ctx, t, fsys, root)

	if paths := walkPaths(ctx, t, fsys, root, 0); len(paths) != 0 {
		t.Errorf("Walk(%q) = %v, want no entries", root, paths)
	}
}
