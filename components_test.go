package pathname

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComponents(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{"Relative", "usr/bin/git", []string{"usr", "bin", "git"}},
		{"Absolute", "/usr/bin/git", []string{"/", "usr", "bin", "git"}},
		{"Root", "/", []string{"/"}},
		{"RootRun", "///", []string{"/"}},
		{"Empty", "", nil},
		{"TrailingSlash", "a/b/", []string{"a", "b"}},
		{"DoubledSlash", "/a//b", []string{"/", "a", "b"}},
		{"DotsKept", "a/./../b", []string{"a", ".", "..", "b"}},
		{"Single", "foo", []string{"foo"}},
		{"DotOnly", ".", []string{"."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustNew(tt.path).Components()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Components(%q) mismatch (-want +got):\n%s",
					tt.path, diff)
			}
		})
	}
}

func TestFilenames(t *testing.T) {
	paths := []string{
		"usr/bin/git", "/usr/bin/git", "/", "///", "",
		"a/b/", "/a//b", "a/./../b", ".", "..",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			p := MustNew(path)
			want := p.Components()
			got := slices.Collect(p.Filenames())
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Filenames(%q) disagrees with Components "+
					"(-want +got):\n%s", path, diff)
			}
		})
	}
}

func TestFilenamesRestartable(t *testing.T) {
	p := MustNew("/a/b/c")
	seq := p.Filenames()

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second pass differs from first (-first +second):\n%s",
			diff)
	}
}

func TestFilenamesEarlyBreak(t *testing.T) {
	p := MustNew("/a/b/c")

	var got []string
	for name := range p.Filenames() {
		got = append(got, name)
		if len(got) == 2 {
			break
		}
	}
	want := []string{"/", "a"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("partial iteration mismatch (-want +got):\n%s", diff)
	}
}
