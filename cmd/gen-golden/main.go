// Command gen-golden rewrites the expected HTML in testdata/*.txtar from
// each archive's input.md.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/txtar"
	"pkt.systems/pitchmd"
)

var variants = []struct {
	name string
	opts []pitchmd.RenderOption
}{
	{name: "default.html"},
	{name: "untrusted.html", opts: []pitchmd.RenderOption{pitchmd.WithPolicy(pitchmd.Untrusted())}},
}

func main() {
	root := "testdata"
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	paths, err := filepath.Glob(filepath.Join(root, "*.txtar"))
	if err != nil {
		fatalf("glob %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no txtar archives found under %s", root)
	}
	for _, path := range paths {
		if err := regenerate(path); err != nil {
			fatalf("%s: %v", path, err)
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", path)
	}
}

func regenerate(path string) error {
	ar, err := txtar.ParseFile(path)
	if err != nil {
		return err
	}
	var input []byte
	found := false
	for _, f := range ar.Files {
		if f.Name == "input.md" {
			input, found = f.Data, true
			break
		}
	}
	if !found {
		return fmt.Errorf("missing input.md")
	}
	if err := pitchmd.ValidateInput(input); err != nil {
		return fmt.Errorf("input.md: %w", err)
	}
	files := []txtar.File{{Name: "input.md", Data: input}}
	for _, v := range variants {
		html := pitchmd.ToHTML(pitchmd.Render(string(input), v.opts...))
		files = append(files, txtar.File{Name: v.name, Data: []byte(html)})
	}
	ar.Files = files
	return os.WriteFile(path, txtar.Format(ar), 0o644)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
