package pathname

import "testing"

func TestJoin(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		parts []string
		want  string
	}{
		{"Simple", "/a", []string{"b", "c"}, "/a/b/c"},
		{"Relative", "a", []string{"b"}, "a/b"},
		{"FromRoot", "/", []string{"a"}, "/a"},
		{"EmptyParts", "a", []string{"", "b", ""}, "a/b"},
		{"NoParts", "a", nil, "a"},
		{"EmptyReceiver", "", []string{"b", "c"}, "b/c"},
		{"BoundarySlashes", "a/", []string{"/b"}, "a/b"},
		{"TrailingReceiver", "a/", []string{"b"}, "a/b"},
		{"LeadingPart", "a", []string{"/b"}, "a/b"},
		{"DotDotPreserved", "/a", []string{"..", "b"}, "/a/../b"},
		{"InnerRunPreserved", "a", []string{"b//c"}, "a/b//c"},
		{"DotPreserved", "a", []string{"."}, "a/."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustNew(tt.path).Join(tt.parts...).String()
			if got != tt.want {
				t.Errorf("Join(%q, %q) = %q, want %q",
					tt.path, tt.parts, got, tt.want)
			}
		})
	}
}

func TestJoinThenClean(t *testing.T) {
	got := MustNew("/a").Join("..", "b").Clean().String()
	if want := "/b"; got != want {
		t.Errorf("Join(%q, %q, %q).Clean() = %q, want %q",
			"/a", "..", "b", got, want)
	}
}

func TestAppend(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		other string
		want  string
	}{
		{"Plain", "a", "b", "a/b"},
		{"Cleans", "/a", "../b", "/b"},
		{"RootAbsorbs", "/a", "../..", "/"},
		{"DotReceiver", ".", "a", "a"},
		{"DotOther", "a", ".", "a"},
		{"EscapesRelative", "a", "../../b", "../b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustNew(tt.path)
			got := p.Append(MustNew(tt.other)).String()
			if got != tt.want {
				t.Errorf("Append(%q, %q) = %q, want %q",
					tt.path, tt.other, got, tt.want)
			}
			if p.String() != tt.path {
				t.Errorf("Append mutated its receiver: %q, want %q",
					p.String(), tt.path)
			}
		})
	}
}

func TestAppendInPlace(t *testing.T) {
	p := MustNew("/a")

	ret := p.AppendInPlace(MustNew("../b"))
	if ret != &p {
		t.Errorf("AppendInPlace did not return its receiver")
	}
	if got, want := p.String(), "/b"; got != want {
		t.Errorf("after AppendInPlace, receiver = %q, want %q", got, want)
	}

	p.AppendInPlace(MustNew("c")).AppendInPlace(MustNew(".."))
	if got, want := p.String(), "/b"; got != want {
		t.Errorf("after chained AppendInPlace, receiver = %q, want %q",
			got, want)
	}
}

func TestParent(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/a/b", "/a"},
		{"/a", "/"},
		{"/", "/"},
		{"a/b", "a"},
		{"a", "."},
		{".", ".."},
		{"..", "../.."},
		{"", ".."},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := MustNew(tt.path).Parent().String()
			if got != tt.want {
				t.Errorf("Parent(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
