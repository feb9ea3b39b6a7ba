package fs_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"iter"
	"testing"

	"lesiw.io/pathname"
	"lesiw.io/pathname/fs"
	"lesiw.io/pathname/fs/memfs"
)

// coreFS exposes only the core capabilities of an underlying provider,
// hiding AppendFS, RenameFS, TruncateFS, and TempDirFS so the wrapper
// fallbacks are exercised.
type coreFS struct {
	fsys fs.FS
}

func (f coreFS) Open(
	ctx context.Context, name pathname.Path,
) (io.ReadCloser, error) {
	return f.fsys.Open(ctx, name)
}

func (f coreFS) Create(
	ctx context.Context, name pathname.Path,
) (io.WriteCloser, error) {
	return f.fsys.(fs.CreateFS).Create(ctx, name)
}

func (f coreFS) Stat(
	ctx context.Context, name pathname.Path,
) (fs.FileInfo, error) {
	return f.fsys.(fs.StatFS).Stat(ctx, name)
}

func (f coreFS) ReadDir(
	ctx context.Context, name pathname.Path,
) iter.Seq2[fs.DirEntry, error] {
	return f.fsys.(fs.ReadDirFS).ReadDir(ctx, name)
}

func (f coreFS) Mkdir(ctx context.Context, name pathname.Path) error {
	return f.fsys.(fs.MkdirFS).Mkdir(ctx, name)
}

func (f coreFS) Remove(ctx context.Context, name pathname.Path) error {
	return f.fsys.(fs.RemoveFS).Remove(ctx, name)
}

var (
	_ fs.CreateFS  = coreFS{}
	_ fs.StatFS    = coreFS{}
	_ fs.ReadDirFS = coreFS{}
	_ fs.MkdirFS   = coreFS{}
	_ fs.RemoveFS  = coreFS{}
)

func TestAppendFallback(t *testing.T) {
	fsys, ctx := coreFS{memfs.New()}, t.Context()
	name := pathname.MustNew("log.txt")

	err := fs.WriteFile(ctx, fsys, name, []byte("one "))
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	w, err := fs.Append(ctx, fsys, name)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, err := w.Write([]byte("two")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, err := fs.ReadFile(ctx, fsys, name)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if want := []byte("one two"); !bytes.Equal(got, want) {
		t.Errorf("ReadFile = %q, want %q", got, want)
	}

	if _, err := w.Write([]byte("x")); !errors.Is(err, fs.ErrClosed) {
		t.Errorf("Write after Close = %v, want ErrClosed", err)
	}
}

func TestAppendFallbackCreates(t *testing.T) {
	fsys, ctx := coreFS{memfs.New()}, t.Context()
	name := pathname.MustNew("fresh.txt")

	w, err := fs.Append(ctx, fsys, name)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, err := w.Write([]byte("data")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, err := fs.ReadFile(ctx, fsys, name)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if want := []byte("data"); !bytes.Equal(got, want) {
		t.Errorf("ReadFile = %q, want %q", got, want)
	}
}

func TestRenameFallback(t *testing.T) {
	fsys, ctx := coreFS{memfs.New()}, t.Context()
	oldname := pathname.MustNew("before.txt")
	newname := pathname.MustNew("after.txt")

	err := fs.WriteFile(ctx, fsys, oldname, []byte("contents"))
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := fs.Rename(ctx, fsys, oldname, newname); err != nil {
		t.Fatalf("Rename: %v", err)
	}

	if exists, err := fs.Exists(ctx, fsys, oldname); err != nil {
		t.Fatalf("Exists: %v", err)
	} else if exists {
		t.Errorf("Exists(%q) = true after Rename, want false", oldname)
	}
	got, err := fs.ReadFile(ctx, fsys, newname)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if want := []byte("contents"); !bytes.Equal(got, want) {
		t.Errorf("ReadFile = %q, want %q", got, want)
	}
}

func TestTruncateFallback(t *testing.T) {
	fsys, ctx := coreFS{memfs.New()}, t.Context()
	name := pathname.MustNew("trunc.txt")

	err := fs.WriteFile(ctx, fsys, name, []byte("1234567890"))
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := fs.Truncate(ctx, fsys, name, 0); err != nil {
		t.Fatalf("Truncate: %v", err)
	}
	if size, err := fs.Size(ctx, fsys, name); err != nil {
		t.Fatalf("Size: %v", err)
	} else if size != 0 {
		t.Errorf("Size = %d after Truncate, want 0", size)
	}

	missing := pathname.MustNew("missing.txt")
	if err := fs.Truncate(ctx, fsys, missing, 0); err == nil {
		t.Error("Truncate(missing, 0) = nil, want error")
	}
	err = fs.Truncate(ctx, fsys, name, 5)
	if !errors.Is(err, fs.ErrUnsupported) {
		t.Errorf("Truncate(name, 5) = %v, want ErrUnsupported", err)
	}
}

func TestTempDirFallback(t *testing.T) {
	fsys, ctx := coreFS{memfs.New()}, t.Context()

	dir, err := fs.TempDir(ctx, fsys, "scratch")
	if err != nil {
		t.Fatalf("TempDir: %v", err)
	}
	if !fs.IsDir(ctx, fsys, dir) {
		t.Errorf("IsDir(%q) = false for TempDir result", dir)
	}
	if base := dir.Base().String(); len(base) <= len("scratch-") {
		t.Errorf("TempDir base %q carries no random suffix", base)
	}
}

func TestMkdirAllOverFile(t *testing.T) {
	fsys, ctx := coreFS{memfs.New()}, t.Context()

	name := pathname.MustNew("file.txt")
	if err := fs.WriteFile(ctx, fsys, name, []byte("x")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	err := fs.MkdirAll(ctx, fsys, name)
	if !errors.Is(err, fs.ErrNotDir) {
		t.Errorf("MkdirAll over file = %v, want ErrNotDir", err)
	}

	err = fs.MkdirAll(ctx, fsys, name.Join("sub"))
	if !errors.Is(err, fs.ErrNotDir) {
		t.Errorf("MkdirAll under file = %v, want ErrNotDir", err)
	}
}
