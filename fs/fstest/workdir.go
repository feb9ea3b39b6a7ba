package fstest

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"lesiw.io/pathname/fs"
)

func testWorkDir(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	dir := pth("test_workdir")
	file := dir.Join("file.txt")
	testData := []byte("hello from the workdir")

	if err := fs.WriteFile(ctx, fsys, file, testData); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("write operations not supported")
		}
		t.Fatalf("WriteFile(%q): %v", file, err)
	}
	cleanup(ctx, t, fsys, dir)

	workCtx := fs.WithWorkDir(ctx, dir)
	got, err := fs.ReadFile(workCtx, fsys, pth("file.txt"))
	if err != nil {
		t.Fatalf("ReadFile with workdir: %v", err)
	}
	if !bytes.Equal(got, testData) {
		t.Errorf("ReadFile with workdir = %q, want %q", got, testData)
	}

	// Relative traversal out of the working directory stays inside
	// the filesystem.
	got, err = fs.ReadFile(
		workCtx, fsys, pth("../test_workdir/file.txt"),
	)
	if err != nil {
		t.Fatalf("ReadFile with ../ workdir path: %v", err)
	}
	if !bytes.Equal(got, testData) {
		t.Errorf("ReadFile with ../ = %q, want %q", got, testData)
	}
}
