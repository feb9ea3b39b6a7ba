package fstest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"lesiw.io/pathname/fs"
)

func testTempDir(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	dir, err := fs.TempDir(ctx, fsys, "fstest")
	if err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("tempdir not supported")
		}
		t.Fatalf("TempDir: %v", err)
	}
	cleanup(ctx, t, fsys, dir)

	if !strings.Contains(dir.Base().String(), "fstest") {
		t.Errorf("TempDir base %q does not contain prefix %q",
			dir.Base(), "fstest")
	}
	if !fs.IsDir(ctx, fsys, dir) {
		t.Errorf("IsDir(%q) = false for TempDir result", dir)
	}

	// Distinct calls produce distinct directories.
	other, err := fs.TempDir(ctx, fsys, "fstest")
	if err != nil {
		t.Fatalf("TempDir: %v", err)
	}
	cleanup(ctx, t, fsys, other)
	if other.Equal(dir) {
		t.Errorf("TempDir returned %q twice", dir)
	}
}
