// Where: cli/internal/domain/template/loader.go
// What: Decode and validate the embedded registry document.
// Why: Reject malformed registry data at startup, before any prompt is shown.
package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"sync"

	"github.com/poruru/scaffold/cli/assets"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"
)

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// DefaultRegistry loads the registry embedded in the binary.
func DefaultRegistry() (*Registry, error) {
	return LoadRegistryFS(assets.TemplatesFS, assets.RegistryPath)
}

// LoadRegistryFS reads a registry document from fsys.
func LoadRegistryFS(fsys fs.FS, path string) (*Registry, error) {
	content, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}
	return LoadRegistry(content)
}

// LoadRegistry validates content against the registry schema and decodes it.
func LoadRegistry(content []byte) (*Registry, error) {
	if err := validateRegistry(content); err != nil {
		return nil, fmt.Errorf("invalid registry: %w", err)
	}
	var doc registryDocument
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("decode registry: %w", err)
	}
	return NewRegistry(doc.Templates)
}

func validateRegistry(content []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	jsonData, err := sigsyaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}
	return sch.Validate(document)
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := fs.ReadFile(assets.TemplatesFS, assets.RegistrySchemaPath)
		if err != nil {
			schemaErr = fmt.Errorf("read registry schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(assets.RegistrySchemaPath, bytes.NewReader(raw)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile(assets.RegistrySchemaPath)
	})
	return compiledSchema, schemaErr
}
