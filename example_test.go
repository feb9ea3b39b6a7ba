package pathname_test

import (
	"errors"
	"fmt"
	"slices"

	"lesiw.io/pathname"
)

func ExampleNew() {
	p, err := pathname.New("/usr/local/../bin")
	if err != nil {
		panic(err)
	}
	fmt.Println(p)

	_, err = pathname.New("bad\x00path")
	fmt.Println(errors.Is(err, pathname.ErrInvalidPath))
	// Output:
	// /usr/local/../bin
	// true
}

func ExamplePath_Clean() {
	fmt.Println(pathname.MustNew("/usr//local/./../bin").Clean())
	fmt.Println(pathname.MustNew("a/..").Clean())
	fmt.Println(pathname.MustNew("/a/../..").Clean())
	// Output:
	// /usr/bin
	// .
	// /
}

func ExamplePath_Append() {
	p := pathname.MustNew("/var/log")
	fmt.Println(p.Append(pathname.MustNew("../tmp")))
	fmt.Println(p)
	// Output:
	// /var/tmp
	// /var/log
}

func ExamplePath_Descend() {
	for q := range pathname.MustNew("/usr/bin/git").Descend() {
		fmt.Println(q)
	}
	// Output:
	// /
	// /usr
	// /usr/bin
	// /usr/bin/git
}

func ExamplePath_RelativeTo() {
	dest := pathname.MustNew("/Users/stouset/foo")

	rel, err := dest.RelativeTo(pathname.MustNew("/Users"))
	if err != nil {
		panic(err)
	}
	fmt.Println(rel)

	rel, err = dest.RelativeTo(pathname.MustNew("/Library"))
	if err != nil {
		panic(err)
	}
	fmt.Println(rel)
	// Output:
	// stouset/foo
	// ../Users/stouset/foo
}

func ExamplePath_Compare() {
	paths := []pathname.Path{
		pathname.MustNew("/a-b"),
		pathname.MustNew("/a/b"),
		pathname.MustNew("/a"),
	}
	slices.SortFunc(paths, pathname.Path.Compare)
	for _, p := range paths {
		fmt.Println(p)
	}
	// Output:
	// /a
	// /a/b
	// /a-b
}
