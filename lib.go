package gocalc

import (
	"bufio"
	"path"
	"sort"
	"strings"

	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/gocalc/statik"
)

//go:generate statik -src=examples -f

// Example is one expression from the bundled example files.
type Example struct {
	File string
	Line int
	Expr string
}

// LoadExamples returns the expressions bundled from the examples directory,
// ordered by file name and line. Blank lines and lines starting with '#' are
// skipped.
func LoadExamples() ([]Example, error) {
	statikFS, err := fs.New()
	if err != nil {
		return nil, err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return nil, err
	}
	sort.Slice(fis, func(i, j int) bool { return fis[i].Name() < fis[j].Name() })

	var examples []Example
	for _, fi := range fis {
		if fi.IsDir() || path.Ext(fi.Name()) != ".calc" {
			continue
		}
		f, err := statikFS.Open(path.Join("/", fi.Name()))
		if err != nil {
			return nil, err
		}
		scanner := bufio.NewScanner(f)
		line := 0
		for scanner.Scan() {
			line++
			text := strings.TrimSpace(scanner.Text())
			if text == "" || strings.HasPrefix(text, "#") {
				continue
			}
			examples = append(examples, Example{File: fi.Name(), Line: line, Expr: text})
		}
		err = scanner.Err()
		f.Close()
		if err != nil {
			return nil, err
		}
	}
	return examples, nil
}
