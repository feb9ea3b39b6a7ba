package fstest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"lesiw.io/pathname/fs"
)

func testCreateAndRead(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	name := pth("test_create.txt")
	testData := []byte("hello world")

	f, err := fs.Create(ctx, fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("write operations not supported")
		}
		t.Fatalf("Create(%q): %v", name, err)
	}

	n, err := f.Write(testData)
	if err != nil {
		_ = f.Close()
		t.Fatalf("Write(%q): %v", testData, err)
	}
	if n != len(testData) {
		_ = f.Close()
		t.Fatalf("Write(%q) = %d bytes, want %d",
			testData, n, len(testData))
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(): %v", err)
	}

	// Wrapped in a func so the defer runs before Remove.
	func() {
		r, err := fs.Open(ctx, fsys, name)
		if err != nil {
			t.Fatalf("Open(%q): %v", name, err)
		}
		defer r.Close()

		readData, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("ReadAll(): %v", err)
		}
		if !bytes.Equal(readData, testData) {
			t.Errorf("ReadAll() = %q, want %q", readData, testData)
		}
	}()

	if err := fs.Remove(ctx, fsys, name); err != nil {
		t.Fatalf("Remove(%q): %v", name, err)
	}
}

func testWriteFile(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	name := pth("test_write.txt")
	testData := []byte("test data for writefile")

	if err := fs.WriteFile(ctx, fsys, name, testData); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("write operations not supported")
		}
		t.Fatalf("WriteFile(%q): %v", name, err)
	}
	cleanup(ctx, t, fsys, name)

	got, err := fs.ReadFile(ctx, fsys, name)
	if err != nil {
		t.Fatalf("ReadFile(%q): %v", name, err)
	}
	if !bytes.Equal(got, testData) {
		t.Errorf("ReadFile(%q) = %q, want %q", name, got, testData)
	}
}

func testCreateTruncates(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	name := pth("test_truncates.txt")

	long := []byte("a longer first version of the content")
	if err := fs.WriteFile(ctx, fsys, name, long); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("write operations not supported")
		}
		t.Fatalf("WriteFile(%q): %v", name, err)
	}
	cleanup(ctx, t, fsys, name)

	short := []byte("short")
	if err := fs.WriteFile(ctx, fsys, name, short); err != nil {
		t.Fatalf("WriteFile(%q): %v", name, err)
	}

	got, err := fs.ReadFile(ctx, fsys, name)
	if err != nil {
		t.Fatalf("ReadFile(%q): %v", name, err)
	}
	if !bytes.Equal(got, short) {
		t.Errorf("ReadFile(%q) = %q, want %q", name, got, short)
	}
}

func testAppend(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	name := pth("test_append.txt")

	if err := fs.WriteFile(ctx, fsys, name, []byte("first ")); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("write operations not supported")
		}
		t.Fatalf("WriteFile(%q): %v", name, err)
	}
	cleanup(ctx, t, fsys, name)

	w, err := fs.Append(ctx, fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("append not supported")
		}
		t.Fatalf("Append(%q): %v", name, err)
	}
	if _, writeErr := w.Write([]byte("second")); writeErr != nil {
		_ = w.Close()
		t.Fatalf("Write(): %v", writeErr)
	}
	if closeErr := w.Close(); closeErr != nil {
		t.Fatalf("Close(): %v", closeErr)
	}

	got, err := fs.ReadFile(ctx, fsys, name)
	if err != nil {
		t.Fatalf("ReadFile(%q): %v", name, err)
	}
	if want := []byte("first second"); !bytes.Equal(got, want) {
		t.Errorf("ReadFile(%q) = %q, want %q", name, got, want)
	}
}

func testImplicitMkdir(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	if _, ok := fsys.(fs.MkdirFS); !ok {
		t.Skip("mkdir not supported")
	}

	name := pth("implicit/nested/file.txt")
	testData := []byte("created with parents")

	if err := fs.WriteFile(ctx, fsys, name, testData); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("write operations not supported")
		}
		t.Fatalf("WriteFile(%q): %v", name, err)
	}
	cleanup(ctx, t, fsys, pth("implicit"))

	got, err := fs.ReadFile(ctx, fsys, name)
	if err != nil {
		t.Fatalf("ReadFile(%q): %v", name, err)
	}
	if !bytes.Equal(got, testData) {
		t.Errorf("ReadFile(%q) = %q, want %q", name, got, testData)
	}

	if !fs.IsDir(ctx, fsys, pth("implicit/nested")) {
		t.Errorf("IsDir(%q) = false, want true", "implicit/nested")
	}
}

func testTruncate(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	name := pth("test_truncate.txt")

	err := fs.WriteFile(ctx, fsys, name, []byte("1234567890"))
	if err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("write operations not supported")
		}
		t.Fatalf("WriteFile(%q): %v", name, err)
	}
	cleanup(ctx, t, fsys, name)

	if truncErr := fs.Truncate(ctx, fsys, name, 0); truncErr != nil {
		if errors.Is(truncErr, fs.ErrUnsupported) {
			t.Skip("truncate not supported")
		}
		t.Fatalf("Truncate(%q, 0): %v", name, truncErr)
	}

	size, err := fs.Size(ctx, fsys, name)
	if err != nil {
		t.Fatalf("Size(%q): %v", name, err)
	}
	if size != 0 {
		t.Errorf("Size(%q) = %d after truncate, want 0", name, size)
	}

	missing := pth("test_truncate_missing.txt")
	if err := fs.Truncate(ctx, fsys, missing, 0); err == nil {
		t.Errorf("Truncate(%q, 0) = nil, want error", missing)
	}
}
