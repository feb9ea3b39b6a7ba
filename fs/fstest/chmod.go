package fstest

import (
	"context"
	"errors"
	"testing"

	"lesiw.io/pathname/fs"
)

func testChmod(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	if _, ok := fsys.(fs.ChmodFS); !ok {
		t.Skip("chmod not supported")
	}

	name := pth("test_chmod.txt")
	if err := fs.WriteFile(ctx, fsys, name, []byte("x")); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("write operations not supported")
		}
		t.Fatalf("WriteFile(%q): %v", name, err)
	}
	cleanup(ctx, t, fsys, name)

	if err := fs.Chmod(ctx, fsys, name, 0600); err != nil {
		t.Fatalf("Chmod(%q, 0600): %v", name, err)
	}

	info, err := fs.Stat(ctx, fsys, name)
	if err != nil {
		t.Fatalf("Stat(%q): %v", name, err)
	}
	if got := info.Mode().Perm(); got != 0600 {
		t.Errorf("Mode().Perm() = %04o after Chmod, want 0600", got)
	}

	missing := pth("test_chmod_missing.txt")
	if err := fs.Chmod(ctx, fsys, missing, 0600); err == nil {
		t.Errorf("Chmod(%q) = nil, want error", missing)
	}
}
