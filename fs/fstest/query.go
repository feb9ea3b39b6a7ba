package fstest

import (
	"context"
	"errors"
	"testing"

	"lesiw.io/pathname/fs"
)

func testQueries(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	if _, ok := fsys.(fs.StatFS); !ok {
		t.Skip("stat not supported")
	}

	dir := pth("test_query")
	file := dir.Join("file.txt")
	testData := []byte("12345")

	if err := fs.WriteFile(ctx, fsys, file, testData); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("write operations not supported")
		}
		t.Fatalf("WriteFile(%q): %v", file, err)
	}
	cleanup(ctx, t, fsys, dir)

	if exists, err := fs.Exists(ctx, fsys, file); err != nil {
		t.Fatalf("Exists(%q): %v", file, err)
	} else if !exists {
		t.Errorf("Exists(%q) = false, want true", file)
	}

	missing := pth("test_query_missing")
	if exists, err := fs.Exists(ctx, fsys, missing); err != nil {
		t.Fatalf("Exists(%q): %v", missing, err)
	} else if exists {
		t.Errorf("Exists(%q) = true, want false", missing)
	}

	if !fs.IsFile(ctx, fsys, file) {
		t.Errorf("IsFile(%q) = false, want true", file)
	}
	if fs.IsFile(ctx, fsys, dir) {
		t.Errorf("IsFile(%q) = true, want false", dir)
	}
	if !fs.IsDir(ctx, fsys, dir) {
		t.Errorf("IsDir(%q) = false, want true", dir)
	}
	if fs.IsDir(ctx, fsys, file) {
		t.Errorf("IsDir(%q) = true, want false", file)
	}
	if fs.IsSymlink(ctx, fsys, file) {
		t.Errorf("IsSymlink(%q) = true, want false", file)
	}

	size, err := fs.Size(ctx, fsys, file)
	if err != nil {
		t.Fatalf("Size(%q): %v", file, err)
	}
	if want := int64(len(testData)); size != want {
		t.Errorf("Size(%q) = %d, want %d", file, size, want)
	}
}
