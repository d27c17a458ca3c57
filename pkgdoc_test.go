// Copyright (c) Tailscale Inc & AUTHORS
// SPDX-License-Identifier: BSD-3-Clause

package rtkitroot

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// goFiles returns every .go file in the module, skipping directories whose
// names start with "." or "_", which the go tool ignores too.
func goFiles(t *testing.T, withTests bool) []string {
	var files []string
	err := filepath.Walk(".", func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.Mode().IsDir() && path != "." {
			if name := fi.Name(); strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
				return filepath.SkipDir
			}
		}
		if fi.Mode().IsRegular() && strings.HasSuffix(path, ".go") {
			if !withTests && strings.HasSuffix(path, "_test.go") {
				return nil
			}
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return files
}

func TestPackageDocs(t *testing.T) {
	switch runtime.GOOS {
	case "darwin", "linux":
		// Enough coverage for CI+devs.
	default:
		t.Skipf("skipping on %s", runtime.GOOS)
	}

	files := goFiles(t, false)
	byDir := map[string][]string{} // dir => files with a package doc
	for _, fileName := range files {
		fset := token.NewFileSet()
		f, err := parser.ParseFile(fset, fileName, nil, parser.PackageClauseOnly|parser.ParseComments)
		if err != nil {
			t.Fatalf("failed to ParseFile %q: %v", fileName, err)
		}
		dir := filepath.Dir(fileName)
		if _, ok := byDir[dir]; !ok {
			byDir[dir] = nil
		}
		if f.Doc != nil {
			byDir[dir] = append(byDir[dir], fileName)
			if strings.Contains(f.Doc.Text(), "SPDX-License-Identifier") {
				t.Errorf("the copyright header for %s became its package doc due to missing blank line", fileName)
			}
		}
	}
	for dir, ff := range byDir {
		if len(ff) > 1 {
			t.Logf("multiple files with package doc in %s: %q", dir, ff)
		}
		if len(ff) == 0 {
			t.Errorf("no package doc in %s", dir)
		}
	}
	t.Logf("parsed %d files", len(files))
}

func TestLicenseHeaders(t *testing.T) {
	for _, fileName := range goFiles(t, true) {
		b, err := os.ReadFile(fileName)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(string(b), "// Copyright (c) Tailscale Inc & AUTHORS\n// SPDX-License-Identifier: BSD-3-Clause\n") {
			t.Errorf("%s: missing license header", fileName)
		}
	}
}
