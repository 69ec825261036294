// Where: cli/assets/templates_embed.go
// What: Embed the template registry, its schema, and template file sources.
// Why: Ship the registry as data inside the binary instead of inline strings.
package assets

import "embed"

const (
	RegistryPath       = "templates/registry.yaml"
	RegistrySchemaPath = "templates/registry.schema.json"
	SourceRoot         = "templates"
)

//go:embed templates/registry.yaml templates/registry.schema.json templates/nodejs/*.tmpl
var TemplatesFS embed.FS
