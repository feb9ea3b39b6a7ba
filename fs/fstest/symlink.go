package fstest

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"lesiw.io/pathname/fs"
)

func testSymlink(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	if _, ok := fsys.(fs.SymlinkFS); !ok {
		t.Skip("symlink not supported")
	}

	target, link := pth("test_symlink_target.txt"), pth("test_symlink")
	testData := []byte("through the link")

	if err := fs.WriteFile(ctx, fsys, target, testData); err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("write operations not supported")
		}
		t.Fatalf("WriteFile(%q): %v", target, err)
	}
	cleanup(ctx, t, fsys, target)

	if err := fs.Symlink(ctx, fsys, target, link); err != nil {
		t.Fatalf("Symlink(%q, %q): %v", target, link, err)
	}
	cleanup(ctx, t, fsys, link)

	if !fs.IsSymlink(ctx, fsys, link) {
		t.Errorf("IsSymlink(%q) = false, want true", link)
	}

	got, err := fs.ReadFile(ctx, fsys, link)
	if err != nil {
		t.Fatalf("ReadFile(%q): %v", link, err)
	}
	if !bytes.Equal(got, testData) {
		t.Errorf("ReadFile(%q) = %q, want %q", link, got, testData)
	}
}

func testReadLink(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	if _, ok := fsys.(fs.SymlinkFS); !ok {
		t.Skip("symlink not supported")
	}
	if _, ok := fsys.(fs.ReadLinkFS); !ok {
		t.Skip("readlink not supported")
	}

	target, link := pth("missing/target.txt"), pth("test_readlink")

	// The target is stored verbatim and need not exist.
	if err := fs.Symlink(ctx, fsys, target, link); err != nil {
		t.Fatalf("Symlink(%q, %q): %v", target, link, err)
	}
	cleanup(ctx, t, fsys, link)

	got, err := fs.ReadLink(ctx, fsys, link)
	if err != nil {
		t.Fatalf("ReadLink(%q): %v", link, err)
	}
	if !got.Equal(target) {
		t.Errorf("ReadLink(%q) = %q, want %q", link, got, target)
	}

	info, err := fs.Lstat(ctx, fsys, link)
	if err != nil {
		t.Fatalf("Lstat(%q): %v", link, err)
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		t.Errorf("Lstat(%q) mode %v is not a symlink", link, info.Mode())
	}
}

func testRealPath(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	if _, ok := fsys.(fs.SymlinkFS); !ok {
		t.Skip("symlink not supported")
	}
	if _, ok := fsys.(fs.ReadLinkFS); !ok {
		t.Skip("readlink not supported")
	}

	dir := pth("test_realpath")
	file := dir.Join("real", "file.txt")
	err := fs.MkdirAll(ctx, fsys, dir.Join("real"))
	if err != nil {
		if errors.Is(err, fs.ErrUnsupported) {
			t.Skip("mkdir not supported")
		}
		t.Fatalf("MkdirAll: %v", err)
	}
	cleanup(ctx, t, fsys, dir)

	if wErr := fs.WriteFile(ctx, fsys, file, []byte("x")); wErr != nil {
		t.Fatalf("WriteFile(%q): %v", file, wErr)
	}

	// dirlink -> real, so dirlink/file.txt resolves through an
	// intermediate component.
	err = fs.Symlink(ctx, fsys, pth("real"), dir.Join("dirlink"))
	if err != nil {
		t.Fatalf("Symlink: %v", err)
	}
	// filelink -> dirlink/file.txt chains two links.
	err = fs.Symlink(
		ctx, fsys, pth("dirlink/file.txt"), dir.Join("filelink"),
	)
	if err != nil {
		t.Fatalf("Symlink: %v", err)
	}

	for _, tt := range []struct {
		name string
		in   string
		want string
	}{
		{"Plain", "test_realpath/real/file.txt",
			"test_realpath/real/file.txt"},
		{"DirLink", "test_realpath/dirlink/file.txt",
			"test_realpath/real/file.txt"},
		{"ChainedLink", "test_realpath/filelink",
			"test_realpath/real/file.txt"},
		{"Unnormalized", "test_realpath/./dirlink/../real/file.txt",
			"test_realpath/real/file.txt"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fs.RealPath(ctx, fsys, pth(tt.in))
			if err != nil {
				t.Fatalf("RealPath(%q): %v", tt.in, err)
			}
			if got.String() != tt.want {
				t.Errorf("RealPath(%q) = %q, want %q",
					tt.in, got, tt.want)
			}
		})
	}

	t.Run("Nonexistent", func(t *testing.T) {
		_, err := fs.RealPath(ctx, fsys, dir.Join("missing.txt"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("RealPath(missing) = %v, want ErrNotExist", err)
		}
	})
}

func testLinkLoop(ctx context.Context, t *testing.T, fsys fs.FS) {
	t.Helper()

	if _, ok := fsys.(fs.SymlinkFS); !ok {
		t.Skip("symlink not supported")
	}
	if _, ok := fsys.(fs.ReadLinkFS); !ok {
		t.Skip("readlink not supported")
	}

	a, b := pth("test_loop_a"), pth("test_loop_b")
	if err := fs.Symlink(ctx, fsys, b, a); err != nil {
		t.Fatalf("Symlink(%q, %q): %v", b, a, err)
	}
	cleanup(ctx, t, fsys, a)
	if err := fs.Symlink(ctx, fsys, a, b); err != nil {
		t.Fatalf("Symlink(%q, %q): %v", a, b, err)
	}
	cleanup(ctx, t, fsys, b)

	if _, err := fs.RealPath(ctx, fsys, a); !errors.Is(err, fs.ErrLinkLoop) {
		t.Errorf("RealPath(%q) = %v, want ErrLinkLoop", a, err)
	}
}
