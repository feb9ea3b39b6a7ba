package fs_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"lesiw.io/pathname"
	"lesiw.io/pathname/fs"
	"lesiw.io/pathname/fs/memfs"
)

func TestWalkDotRoot(t *testing.T) {
	fsys, ctx := memfs.New(), t.Context()

	err := fs.MkdirAll(ctx, fsys, pathname.MustNew("b"))
	if err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	for _, name := range []string{"a.txt", "b/c.txt"} {
		file := pathname.MustNew(name)
		if err := fs.WriteFile(ctx, fsys, file, nil); err != nil {
			t.Fatalf("WriteFile(%q): %v", file, err)
		}
	}

	var got []string
	root := pathname.MustNew(pathname.Dot)
	for entry, err := range fs.Walk(ctx, fsys, root, 0) {
		if err != nil {
			t.Fatalf("Walk: %v", err)
		}
		got = append(got, entry.Path().String())
	}
	want := []string{"a.txt", "b", "b/c.txt"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Walk(%q) mismatch (-want +got):\n%s", root, diff)
	}
}

func TestWalkMissingRoot(t *testing.T) {
	fsys, ctx := memfs.New(), t.Context()

	var errs int
	root := pathname.MustNew("no/such/dir")
	for entry, err := range fs.Walk(ctx, fsys, root, 0) {
		if err == nil {
			t.Fatalf("Walk yielded entry %q, want error", entry.Path())
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Walk error = %v, want ErrNotExist", err)
		}
		errs++
	}
	if errs != 1 {
		t.Errorf("Walk yielded %d errors, want 1", errs)
	}
}

func TestWalkUnsupported(t *testing.T) {
	fsys := struct{ fs.FS }{memfs.New()}

	var errs int
	for _, err := range fs.Walk(t.Context(), fsys, pathname.MustNew("."), 0) {
		if !errors.Is(err, fs.ErrUnsupported) {
			t.Errorf("Walk error = %v, want ErrUnsupported", err)
		}
		errs++
	}
	if errs != 1 {
		t.Errorf("Walk yielded %d errors, want 1", errs)
	}
}

func TestWalkEarlyBreak(t *testing.T) {
	fsys, ctx := memfs.New(), t.Context()

	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		file := pathname.MustNew(name)
		if err := fs.WriteFile(ctx, fsys, file, nil); err != nil {
			t.Fatalf("WriteFile(%q): %v", file, err)
		}
	}

	var seen int
	for range fs.Walk(ctx, fsys, pathname.MustNew("."), 0) {
		seen++
		break
	}
	if seen != 1 {
		t.Errorf("saw %d entries after break, want 1", seen)
	}
}
