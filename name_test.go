package pathname

import (
	"errors"
	"testing"
)

func TestBase(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/usr/bin/git", "git"},
		{"foo/bar", "bar"},
		{"foo/bar/", "bar"},
		{"foo", "foo"},
		{"/", "/"},
		{"//", "/"},
		{"", "."},
		{"a/..", ".."},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := MustNew(tt.path).Base().String()
			if got != tt.want {
				t.Errorf("Base(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestDir(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/usr/bin/git", "/usr/bin"},
		{"foo/bar", "foo"},
		{"foo/bar/", "foo"},
		{"foo", "."},
		{"/foo", "/"},
		{"/", "/"},
		{"", "."},
		{"a/../b", "a/.."},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := MustNew(tt.path).Dir().String()
			if got != tt.want {
				t.Errorf("Dir(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		path     string
		wantDir  string
		wantBase string
	}{
		{"/usr/bin/git", "/usr/bin", "git"},
		{"foo/bar", "foo", "bar"},
		{"foo", ".", "foo"},
		{"/", "/", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			dir, base := MustNew(tt.path).Split()
			if dir.String() != tt.wantDir || base.String() != tt.wantBase {
				t.Errorf("Split(%q) = (%q, %q), want (%q, %q)",
					tt.path, dir, base, tt.wantDir, tt.wantBase)
			}
		})
	}
}

func TestExt(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a/b.rb", ".rb"},
		{"a.tar.gz", ".gz"},
		{"Makefile", ""},
		{"a.d/b", ""},
		{".profile", ".profile"},
		{"/", ""},
		{".", ""},
		{"..", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := MustNew(tt.path).Ext()
			if got != tt.want {
				t.Errorf("Ext(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		pattern string
		want    bool
	}{
		{"Star", "main.go", "*.go", true},
		{"StarMiss", "main.txt", "*.go", false},
		{"Question", "a.go", "?.go", true},
		{"NoSlashCross", "a/b.go", "*.go", false},
		{"SlashPattern", "a/b.go", "a/*.go", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MustNew(tt.path).Match(tt.pattern)
			if err != nil {
				t.Fatalf("Match(%q, %q) error = %v",
					tt.path, tt.pattern, err)
			}
			if got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v",
					tt.path, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestMatchBadPattern(t *testing.T) {
	_, err := MustNew("a").Match("[")
	if !errors.Is(err, ErrBadPattern) {
		t.Errorf("Match(%q, %q) error = %v, want %v",
			"a", "[", err, ErrBadPattern)
	}
}
