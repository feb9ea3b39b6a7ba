package fs_test

import (
	"errors"
	"testing"

	"lesiw.io/pathname"
	"lesiw.io/pathname/fs"
	"lesiw.io/pathname/fs/memfs"
)

func TestRealPathNoReadLink(t *testing.T) {
	fsys := struct{ fs.FS }{memfs.New()}

	got, err := fs.RealPath(t.Context(), fsys, pathname.MustNew("a/./b"))
	if err != nil {
		t.Fatalf("RealPath: %v", err)
	}
	if want := "a/b"; got.String() != want {
		t.Errorf("RealPath = %q, want %q", got, want)
	}

	ctx := fs.WithWorkDir(t.Context(), pathname.MustNew("/srv"))
	got, err = fs.RealPath(ctx, fsys, pathname.MustNew("a/./b"))
	if err != nil {
		t.Fatalf("RealPath: %v", err)
	}
	if want := "/srv/a/b"; got.String() != want {
		t.Errorf("RealPath = %q, want %q", got, want)
	}
}

func TestRealPathMissingComponent(t *testing.T) {
	fsys, ctx := memfs.New(), t.Context()

	_, err := fs.RealPath(ctx, fsys, pathname.MustNew("no/such/file"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("RealPath = %v, want ErrNotExist", err)
	}
}

func TestRealPathRelativeLink(t *testing.T) {
	fsys, ctx := memfs.New(), t.Context()

	for _, dir := range []string{"a/b", "a/c"} {
		err := fs.MkdirAll(ctx, fsys, pathname.MustNew(dir))
		if err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
	}
	file := pathname.MustNew("a/b/file.txt")
	if err := fs.WriteFile(ctx, fsys, file, nil); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	err := fs.Symlink(ctx, fsys,
		pathname.MustNew("../b"), pathname.MustNew("a/c/link"))
	if err != nil {
		t.Fatalf("Symlink: %v", err)
	}

	got, err := fs.RealPath(ctx, fsys,
		pathname.MustNew("a/c/link/file.txt"))
	if err != nil {
		t.Fatalf("RealPath: %v", err)
	}
	if want := "a/b/file.txt"; got.String() != want {
		t.Errorf("RealPath = %q, want %q", got, want)
	}
}
