// Where: cli/internal/architecture/layering_test.go
// What: Layer dependency guard tests for CLI internal packages.
// Why: Keep domain free of infra and keep commands the only composition root.
package architecture

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

const internalImportPrefix = "github.com/poruru/scaffold/cli/internal/"

// forbiddenLayers maps a top-level internal package to the internal
// packages it must not import.
var forbiddenLayers = map[string][]string{
	"domain":    {"infra", "ports", "workflows", "commands", "config"},
	"infra":     {"ports", "workflows", "commands"},
	"ports":     {"workflows", "commands"},
	"workflows": {"commands"},
	"config":    {"infra", "workflows", "commands"},
}

// packageImports maps each internal package directory (relative to
// internal/) to the imports of its non-test files.
func packageImports(t *testing.T) map[string][]string {
	t.Helper()
	internalRoot := resolveInternalRoot(t)
	fset := token.NewFileSet()
	imports := map[string][]string{}

	err := filepath.WalkDir(internalRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".go") || strings.HasSuffix(d.Name(), "_test.go") {
			return nil
		}
		rel, err := filepath.Rel(internalRoot, filepath.Dir(path))
		if err != nil {
			return err
		}
		file, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		pkg := filepath.ToSlash(rel)
		for _, imp := range file.Imports {
			imports[pkg] = append(imports[pkg], strings.Trim(imp.Path.Value, "\""))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("scan internal packages: %v", err)
	}
	return imports
}

func TestLayeringRules(t *testing.T) {
	t.Parallel()

	violations := []string{}
	for pkg, imports := range packageImports(t) {
		source := topLayer(pkg)
		for _, importPath := range imports {
			target, ok := internalPackage(importPath)
			if !ok {
				continue
			}
			for _, forbidden := range forbiddenLayers[source] {
				if topLayer(target) == forbidden {
					violations = append(violations, pkg+" -> "+importPath)
				}
			}
		}
	}

	if len(violations) > 0 {
		sort.Strings(violations)
		t.Fatalf("layering rule violations:\n%s", strings.Join(violations, "\n"))
	}
}

func resolveInternalRoot(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	return filepath.Clean(filepath.Join(wd, ".."))
}

func topLayer(pkg string) string {
	first, _, _ := strings.Cut(pkg, "/")
	return first
}

func internalPackage(importPath string) (string, bool) {
	return strings.CutPrefix(importPath, internalImportPrefix)
}
