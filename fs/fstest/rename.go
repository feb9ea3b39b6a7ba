package fstest

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"lesiw.io/pathname/fs"
)

func testRename(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	oldname, newname := pth("test_rename_old.txt"), pth("test_rename.txt")
	testData := []byte("renamed content")

	if err := fs.WriteFile(ctx, fsys, oldname, testData); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("write operations not supported")
		}
		t.Fatalf("WriteFile(%q): %v", oldname, err)
	}

	if err := fs.Rename(ctx, fsys, oldname, newname); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			cleanup(ctx, t, fsys, oldname)
			t.Skip("rename not supported")
		}
		t.Fatalf("Rename(%q, %q): %v", oldname, newname, err)
	}
	cleanup(ctx, t, fsys, newname)

	if exists, err := fs.Exists(ctx, fsys, oldname); err != nil {
		t.Fatalf("Exists(%q): %v", oldname, err)
	} else if exists {
		t.Errorf("Exists(%q) = true after Rename, want false", oldname)
	}

	got, err := fs.ReadFile(ctx, fsys, newname)
	if err != nil {
		t.Fatalf("ReadFile(%q): %v", newname, err)
	}
	if !bytes.Equal(got, testData) {
		t.Errorf("ReadFile(%q) = %q, want %q", newname, got, testData)
	}

	missing := pth("test_rename_missing.txt")
	if err := fs.Rename(ctx, fsys, missing, newname); err == nil {
		t.Errorf("Rename(%q, ...) = nil, want error", missing)
	}
}
