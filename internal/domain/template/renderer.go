// Where: cli/internal/domain/template/renderer.go
// What: Render a descriptor's file set from embedded sources.
// Why: Produce all file contents before any write so output order is the only variable.
package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/poruru/scaffold/cli/assets"
)

var templateCache sync.Map

// RenderData is the only input to file sources. It is derived from the
// descriptor, never from user input.
type RenderData struct {
	TemplateID  string
	DefaultPort int
	Env         []string
}

// Renderer generates file contents from a source filesystem.
type Renderer struct {
	FS   fs.FS
	Root string
	// cache is shared across renderers of the embedded assets only.
	cache *sync.Map
}

// NewRenderer returns a renderer over the embedded template sources.
func NewRenderer() Renderer {
	return Renderer{FS: assets.TemplatesFS, Root: assets.SourceRoot, cache: &templateCache}
}

// RenderFiles renders every file of d in declared order.
func (r Renderer) RenderFiles(d Descriptor) ([]RenderedFile, error) {
	data := RenderData{
		TemplateID:  d.ID,
		DefaultPort: d.DefaultPort,
		Env:         d.Env,
	}
	out := make([]RenderedFile, 0, len(d.Files))
	for _, file := range d.Files {
		content, err := r.render(file.Source, data)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", file.Path, err)
		}
		out = append(out, RenderedFile{Path: file.Path, Content: content})
	}
	return out, nil
}

func (r Renderer) render(source string, data RenderData) (string, error) {
	tmpl, err := r.load(source)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r Renderer) load(source string) (*template.Template, error) {
	if r.cache != nil {
		if value, ok := r.cache.Load(source); ok {
			cached, ok := value.(*template.Template)
			if !ok {
				return nil, fmt.Errorf("template cache type mismatch for %s", source)
			}
			return cached, nil
		}
	}
	pathName := path.Join(r.Root, source)
	tmpl, err := template.New(path.Base(pathName)).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		ParseFS(r.FS, pathName)
	if err != nil {
		return nil, err
	}
	if r.cache != nil {
		r.cache.Store(source, tmpl)
	}
	return tmpl, nil
}
