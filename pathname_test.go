package pathname

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", nil},
		{"Simple", "foo", nil},
		{"Absolute", "/usr/bin/git", nil},
		{"Redundant", "/a//b/./c/..", nil},
		{"Spaces", "some dir/some file", nil},
		{"Unicode", "café/menü", nil},
		{"NulOnly", "\x00", ErrInvalidPath},
		{"NulEmbedded", "a\x00b", ErrInvalidPath},
		{"NulTrailing", "/etc/passwd\x00", ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.text)
			if !errors.Is(err, tt.err) {
				t.Fatalf("New(%q) error = %v, want %v",
					tt.text, err, tt.err)
			}
			if err != nil {
				return
			}
			if got := p.String(); got != tt.text {
				t.Errorf("New(%q).String() = %q, want %q",
					tt.text, got, tt.text)
			}
		})
	}
}

func TestMustNew(t *testing.T) {
	if got := MustNew("/a/b").String(); got != "/a/b" {
		t.Errorf("MustNew(%q).String() = %q, want %q", "/a/b", got, "/a/b")
	}

	defer func() {
		if recover() == nil {
			t.Errorf("MustNew with NUL did not panic")
		}
	}()
	MustNew("a\x00b")
}

func TestIsAbs(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/", true},
		{"/foo", true},
		{"//foo", true},
		{"foo", false},
		{"foo/bar", false},
		{"./foo", false},
		{"..", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p := MustNew(tt.path)
			if got := p.IsAbs(); got != tt.want {
				t.Errorf("IsAbs(%q) = %v, want %v", tt.path, got, tt.want)
			}
			if got := p.IsRel(); got == tt.want {
				t.Errorf("IsRel(%q) = %v, want %v", tt.path, got, !tt.want)
			}
		})
	}
}

func TestIsRoot(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/", true},
		{"//", true},
		{"///", true},
		{"/foo", false},
		{"foo", false},
		{"", false},
		{".", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := MustNew(tt.path).IsRoot(); got != tt.want {
				t.Errorf("IsRoot(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsDot(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{".", true},
		{"./", false},
		{"..", false},
		{"a", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := MustNew(tt.path).IsDot(); got != tt.want {
				t.Errorf("IsDot(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsDotDot(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"..", true},
		{"../", false},
		{".", false},
		{"a/..", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := MustNew(tt.path).IsDotDot(); got != tt.want {
				t.Errorf("IsDotDot(%q) = %v, want %v",
					tt.path, got, tt.want)
			}
		})
	}
}

func TestZeroValue(t *testing.T) {
	var p Path
	if got := p.String(); got != "" {
		t.Errorf("zero Path.String() = %q, want %q", got, "")
	}
	if got := p.Clean().String(); got != "." {
		t.Errorf("zero Path.Clean() = %q, want %q", got, ".")
	}
	if !p.IsRel() {
		t.Errorf("zero Path.IsRel() = false, want true")
	}
}
