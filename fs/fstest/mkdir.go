package fstest

import (
	"context"
	"errors"
	"testing"

	"lesiw.io/pathname/fs"
)

func testMkdir(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	dir := pth("test_mkdir")

	if err := fs.Mkdir(ctx, fsys, dir); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("mkdir not supported")
		}
		t.Fatalf("Mkdir(%q): %v", dir, err)
	}
	cleanup(ctx, t, fsys, dir)

	if !fs.IsDir(ctx, fsys, dir) {
		t.Errorf("IsDir(%q) = false after Mkdir, want true", dir)
	}

	if err := fs.Mkdir(ctx, fsys, dir); !errors.Is(err, fs.ErrExist) {
		t.Errorf("Mkdir(%q) again = %v, want ErrExist", dir, err)
	}

	nested := pth("test_mkdir_missing/child")
	if err := fs.Mkdir(ctx, fsys, nested); err == nil {
		t.Errorf("Mkdir(%q) = nil without parent, want error", nested)
	}
}

func testMkdirAll(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	dir := pth("test_mkdirall/a/b/c")

	if err := fs.MkdirAll(ctx, fsys, dir); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("mkdir not supported")
		}
		t.Fatalf("MkdirAll(%q): %v", dir, err)
	}
	cleanup(ctx, t, fsys, pth("test_mkdirall"))

	// Every ancestor must exist, shortest first.
	for prefix := range dir.Descend() {
		if !fs.IsDir(ctx, fsys, prefix) {
			t.Errorf("IsDir(%q) = false after MkdirAll(%q)",
				prefix, dir)
		}
	}

	// Idempotent.
	if err := fs.MkdirAll(ctx, fsys, dir); err != nil {
		t.Errorf("MkdirAll(%q) again = %v, want nil", dir, err)
	}

	// Unnormalized operands create the same tree.
	alias := pth("test_mkdirall/a/./b/x/../y")
	if err := fs.MkdirAll(ctx, fsys, alias); err != nil {
		t.Fatalf("MkdirAll(%q): %v", alias, err)
	}
	if !fs.IsDir(ctx, fsys, pth("test_mkdirall/a/b/y")) {
		t.Errorf("IsDir(%q) = false after MkdirAll(%q)",
			"test_mkdirall/a/b/y", alias)
	}
}
