// Where: cli/internal/domain/template/registry.go
// What: Immutable template registry.
// Why: Build the template table once at startup and pass it explicitly.
package template

import (
	"fmt"
	"slices"

	"github.com/poruru/scaffold/cli/internal/domain/project"
)

// Registry maps template ids to descriptors. It is read-only after NewRegistry.
type Registry struct {
	order []string
	byID  map[string]Descriptor
}

// NewRegistry builds a registry preserving the given order.
func NewRegistry(descriptors []Descriptor) (*Registry, error) {
	if len(descriptors) == 0 {
		return nil, fmt.Errorf("registry has no templates")
	}
	r := &Registry{
		order: make([]string, 0, len(descriptors)),
		byID:  make(map[string]Descriptor, len(descriptors)),
	}
	for _, d := range descriptors {
		if d.ID == "" {
			return nil, fmt.Errorf("template without id")
		}
		if _, dup := r.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate template id %q", d.ID)
		}
		if len(d.Files) == 0 {
			return nil, fmt.Errorf("template %q has no files", d.ID)
		}
		if !slices.Equal(d.Directories, StandardDirectories()) {
			return nil, fmt.Errorf("template %q: directories must be %v", d.ID, StandardDirectories())
		}
		r.order = append(r.order, d.ID)
		r.byID[d.ID] = d.clone()
	}
	return r, nil
}

// Lookup returns a copy of the descriptor for id.
func (r *Registry) Lookup(id string) (Descriptor, error) {
	d, ok := r.byID[id]
	if !ok {
		return Descriptor{}, &project.UnknownTemplateError{ID: id}
	}
	return d.clone(), nil
}

// All returns copies of every descriptor in declaration order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].clone())
	}
	return out
}
