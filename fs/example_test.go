package fs_test

import (
	"context"
	"fmt"
	"log"

	"lesiw.io/pathname"
	"lesiw.io/pathname/fs"
	"lesiw.io/pathname/fs/osfs"
)

func ExampleReadFile() {
	fsys, ctx := osfs.NewTemp(), context.Background()
	defer fs.Close(fsys)

	name := pathname.MustNew("greeting.txt")
	err := fs.WriteFile(ctx, fsys, name, []byte("Hello, World!"))
	if err != nil {
		log.Fatal(err)
	}
	data, err := fs.ReadFile(ctx, fsys, name)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", data)
	// Output:
	// Hello, World!
}

func ExampleWalk() {
	fsys, ctx := osfs.NewTemp(), context.Background()
	defer fs.Close(fsys)

	err := fs.MkdirAll(ctx, fsys, pathname.MustNew("docs/notes"))
	if err != nil {
		log.Fatal(err)
	}
	files := []string{"docs/readme.md", "docs/notes/todo.md"}
	for _, name := range files {
		file := pathname.MustNew(name)
		if err := fs.WriteFile(ctx, fsys, file, nil); err != nil {
			log.Fatal(err)
		}
	}

	root := pathname.MustNew("docs")
	for entry, err := range fs.Walk(ctx, fsys, root, 0) {
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(entry.Path())
	}
	// Output:
	// docs/notes
	// docs/notes/todo.md
	// docs/readme.md
}

func ExampleGlob() {
	fsys, ctx := osfs.NewTemp(), context.Background()
	defer fs.Close(fsys)

	files := []string{"main.go", "main_test.go", "readme.md"}
	for _, name := range files {
		file := pathname.MustNew(name)
		if err := fs.WriteFile(ctx, fsys, file, nil); err != nil {
			log.Fatal(err)
		}
	}

	matches, err := fs.Glob(ctx, fsys, "*.go")
	if err != nil {
		log.Fatal(err)
	}
	for _, match := range matches {
		fmt.Println(match)
	}
	// Output:
	// main.go
	// main_test.go
}

func ExampleRel() {
	ctx := fs.WithWorkDir(
		context.Background(), pathname.MustNew("/home/user"),
	)

	base := pathname.MustNew("projects")
	target := pathname.MustNew("/home/user/projects/app/main.go")
	rel, err := fs.Rel(ctx, base, target)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(rel)
	// Output:
	// app/main.go
}

func ExampleRealPath() {
	fsys, ctx := osfs.NewTemp(), context.Background()
	defer fs.Close(fsys)

	err := fs.MkdirAll(ctx, fsys, pathname.MustNew("releases/v2"))
	if err != nil {
		log.Fatal(err)
	}
	err = fs.Symlink(ctx, fsys,
		pathname.MustNew("releases/v2"), pathname.MustNew("current"))
	if err != nil {
		log.Fatal(err)
	}

	real, err := fs.RealPath(ctx, fsys, pathname.MustNew("current"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(real)
	// Output:
	// releases/v2
}
