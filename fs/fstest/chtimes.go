package fstest

import (
	"context"
	"errors"
	"testing"
	"time"

	"lesiw.io/pathname/fs"
)

func testChtimes(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	if _, ok := fsys.(fs.ChtimesFS); !ok {
		t.Skip("chtimes not supported")
	}

	name := pth("test_chtimes.txt")
	if err := fs.WriteFile(ctx, fsys, name, []byte("x")); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("write operations not supported")
		}
		t.Fatalf("WriteFile(%q): %v", name, err)
	}
	cleanup(ctx, t, fsys, name)

	want := time.Date(2020, 6, 15, 12, 30, 0, 0, time.UTC)
	if err := fs.Chtimes(ctx, fsys, name, time.Time{}, want); err != nil {
		t.Fatalf("Chtimes(%q): %v", name, err)
	}

	info, err := fs.Stat(ctx, fsys, name)
	if err != nil {
		t.Fatalf("Stat(%q): %v", name, err)
	}
	if got := info.ModTime(); !got.Equal(want) {
		t.Errorf("ModTime() = %v after Chtimes, want %v", got, want)
	}
}
