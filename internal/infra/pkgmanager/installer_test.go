package pkgmanager

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/poruru/scaffold/cli/internal/domain/project"
)

func TestInstallerInitManifest(t *testing.T) {
	r := &fakeRunner{}
	inst := New(r, "npm")
	if err := inst.InitManifest(context.Background(), "/tmp/demo"); err != nil {
		t.Fatalf("InitManifest() error = %v", err)
	}
	want := []call{{dir: "/tmp/demo", name: "npm", args: []string{"init", "-y"}}}
	if diff := cmp.Diff(want, r.calls, cmp.AllowUnexported(call{})); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestInstallerInstallDependencies(t *testing.T) {
	r := &fakeRunner{}
	inst := New(r, "npm")
	err := inst.InstallDependencies(context.Background(), "/tmp/demo", []string{"express", "cors"}, []string{"nodemon"})
	if err != nil {
		t.Fatalf("InstallDependencies() error = %v", err)
	}
	want := []call{
		{dir: "/tmp/demo", name: "npm", args: []string{"install", "express", "cors"}},
		{dir: "/tmp/demo", name: "npm", args: []string{"install", "nodemon", "-D"}},
	}
	if diff := cmp.Diff(want, r.calls, cmp.AllowUnexported(call{})); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestInstallerSkipsEmptyLists(t *testing.T) {
	r := &fakeRunner{}
	if err := New(r, "npm").InstallDependencies(context.Background(), "/tmp/demo", nil, nil); err != nil {
		t.Fatalf("InstallDependencies() error = %v", err)
	}
	if len(r.calls) != 0 {
		t.Fatalf("expected no calls, got %d", len(r.calls))
	}
}

func TestInstallerStopsOnFirstFailure(t *testing.T) {
	boom := errors.New("exit status 1")
	r := &fakeRunner{failOn: map[string]error{"install express": boom}}
	err := New(r, "npm").InstallDependencies(context.Background(), "/tmp/demo", []string{"express"}, []string{"nodemon"})

	var toolErr *project.ExternalToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("InstallDependencies() error = %v, want ExternalToolError", err)
	}
	if toolErr.Step != StepInstall || toolErr.Command != "npm install express" || !errors.Is(err, boom) {
		t.Fatalf("unexpected error detail: %#v", toolErr)
	}
	if len(r.calls) != 1 {
		t.Fatalf("dev install must not run after failure, calls = %d", len(r.calls))
	}
}

func TestInstallerContinueOnError(t *testing.T) {
	r := &fakeRunner{failOn: map[string]error{
		"install express":    errors.New("runtime failed"),
		"install nodemon -D": errors.New("dev failed"),
	}}
	inst := New(r, "npm")
	inst.ContinueOnError = true

	err := inst.InstallDependencies(context.Background(), "/tmp/demo", []string{"express"}, []string{"nodemon"})
	if err == nil {
		t.Fatal("expected joined error")
	}
	if len(r.calls) != 2 {
		t.Fatalf("expected both installs to run, calls = %d", len(r.calls))
	}
	if !project.IsExternalToolError(err) {
		t.Fatalf("expected ExternalToolError in %v", err)
	}
}

func TestInstallerCheckAvailable(t *testing.T) {
	if err := New(&fakeRunner{}, "npm").CheckAvailable(); err != nil {
		t.Fatalf("CheckAvailable() error = %v", err)
	}
	err := New(&fakeRunner{missing: true}, "npm").CheckAvailable()
	var toolErr *project.ExternalToolError
	if !errors.As(err, &toolErr) || toolErr.Step != StepLocate {
		t.Fatalf("CheckAvailable() error = %v", err)
	}
}

func TestPatchManifestScriptsPreservesOtherFields(t *testing.T) {
	root := t.TempDir()
	original := `{
  "name": "demo",
  "version": "1.0.0",
  "description": "a <b> & c",
  "main": "index.js",
  "scripts": {
    "test": "echo \"Error: no test specified\" && exit 1"
  },
  "keywords": [],
  "author": "",
  "license": "ISC",
  "type": "commonjs"
}
`
	path := filepath.Join(root, ManifestFile)
	if err := os.WriteFile(path, []byte(original), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	err := New(&fakeRunner{}, "npm").PatchManifestScripts(root, []Entry{
		{Key: "dev", Value: "nodemon index.js"},
		{Key: "start", Value: "node index.js"},
	})
	if err != nil {
		t.Fatalf("PatchManifestScripts() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	want := `{
  "name": "demo",
  "version": "1.0.0",
  "description": "a <b> & c",
  "main": "index.js",
  "scripts": {
    "test": "echo \"Error: no test specified\" && exit 1",
    "dev": "nodemon index.js",
    "start": "node index.js"
  },
  "keywords": [],
  "author": "",
  "license": "ISC",
  "type": "commonjs"
}
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("manifest mismatch (-want +got):\n%s", diff)
	}
}

func TestPatchManifestFieldsAndMissingScripts(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, ManifestFile)
	if err := os.WriteFile(path, []byte(`{"name":"demo","nested":{"a":[1,2,{"b":null}]}}`), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	err := New(&fakeRunner{}, "npm").PatchManifest(root, ManifestPatch{
		Scripts: []Entry{{Key: "start", Value: "node index.js"}},
		Fields:  []Entry{{Key: "type", Value: "module"}},
	})
	if err != nil {
		t.Fatalf("PatchManifest() error = %v", err)
	}
	got, _ := os.ReadFile(path)
	want := `{
  "name": "demo",
  "nested": {
    "a": [
      1,
      2,
      {
        "b": null
      }
    ]
  },
  "type": "module",
  "scripts": {
    "start": "node index.js"
  }
}
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("manifest mismatch (-want +got):\n%s", diff)
	}
}

func TestPatchManifestErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		write   bool
	}{
		{name: "missing manifest", write: false},
		{name: "not an object", content: `[1,2]`, write: true},
		{name: "trailing data", content: `{} {}`, write: true},
		{name: "scripts not object", content: `{"scripts": "nope"}`, write: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root := t.TempDir()
			if tc.write {
				if err := os.WriteFile(filepath.Join(root, ManifestFile), []byte(tc.content), 0o644); err != nil {
					t.Fatalf("write: %v", err)
				}
			}
			err := New(&fakeRunner{}, "npm").PatchManifestScripts(root, []Entry{{Key: "start", Value: "node index.js"}})
			var toolErr *project.ExternalToolError
			if !errors.As(err, &toolErr) || toolErr.Step != StepPatch {
				t.Fatalf("PatchManifestScripts() error = %v, want patch ExternalToolError", err)
			}
		})
	}
}

func TestApplyPatchRejectsScriptsField(t *testing.T) {
	_, err := applyPatch([]byte(`{}`), ManifestPatch{Fields: []Entry{{Key: "scripts", Value: "x"}}})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestApplyPatchEmptyObject(t *testing.T) {
	out, err := applyPatch([]byte(`{}`), ManifestPatch{})
	if err != nil {
		t.Fatalf("applyPatch() error = %v", err)
	}
	if string(out) != "{}\n" {
		t.Fatalf("applyPatch() = %q", out)
	}
}
