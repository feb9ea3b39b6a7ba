package fs_test

import (
	"errors"
	"testing"

	"lesiw.io/pathname"
	"lesiw.io/pathname/fs"
)

func TestAbs(t *testing.T) {
	ctx := fs.WithWorkDir(t.Context(), pathname.MustNew("/home/user"))

	tests := []struct {
		name string
		want string
	}{
		{"/etc/passwd", "/etc/passwd"},
		{"/a/./b/../c", "/a/c"},
		{"notes.txt", "/home/user/notes.txt"},
		{"../shared/doc.txt", "/home/shared/doc.txt"},
		{".", "/home/user"},
	}
	for _, tt := range tests {
		got, err := fs.Abs(ctx, pathname.MustNew(tt.name))
		if err != nil {
			t.Errorf("Abs(%q) error: %v", tt.name, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("Abs(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestAbsNoWorkDir(t *testing.T) {
	_, err := fs.Abs(t.Context(), pathname.MustNew("rel/path"))
	if !errors.Is(err, fs.ErrUnsupported) {
		t.Errorf("Abs without workdir = %v, want ErrUnsupported", err)
	}
}

func TestAbsRelativeWorkDir(t *testing.T) {
	ctx := fs.WithWorkDir(t.Context(), pathname.MustNew("rel/wd"))
	_, err := fs.Abs(ctx, pathname.MustNew("file.txt"))
	if !errors.Is(err, fs.ErrUnsupported) {
		t.Errorf("Abs with relative workdir = %v, want ErrUnsupported",
			err)
	}
}

func TestRel(t *testing.T) {
	ctx := fs.WithWorkDir(t.Context(), pathname.MustNew("/srv"))

	tests := []struct {
		base   string
		target string
		want   string
	}{
		{"/a/b", "/a/b/c/d", "c/d"},
		{"/a/b", "/a/x", "../x"},
		{"a/b", "a/b", "."},
		{"/srv", "data/www", "data/www"},
		{"data", "/srv/data/logs", "logs"},
	}
	for _, tt := range tests {
		base := pathname.MustNew(tt.base)
		target := pathname.MustNew(tt.target)
		got, err := fs.Rel(ctx, base, target)
		if err != nil {
			t.Errorf("Rel(%q, %q) error: %v", tt.base, tt.target, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("Rel(%q, %q) = %q, want %q",
				tt.base, tt.target, got, tt.want)
		}
	}
}

func TestRelMixedNoWorkDir(t *testing.T) {
	base := pathname.MustNew("/a/b")
	target := pathname.MustNew("c/d")
	_, err := fs.Rel(t.Context(), base, target)
	if !errors.Is(err, fs.ErrUnsupported) {
		t.Errorf("Rel mixed without workdir = %v, want ErrUnsupported",
			err)
	}
}
