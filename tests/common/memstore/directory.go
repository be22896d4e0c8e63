//go:build unit || e2e

package memstore

import (
	"context"

	"lease-engine/internal/domain/resource"
	"lease-engine/internal/infra"
	"lease-engine/internal/pkg/errs"
	"lease-engine/internal/usecase/shared"
)

// Directory resolves resources and projects from fixed tables.
type Directory struct {
	resources map[resource.Ref]*resource.Resource
	names     map[string]resource.Ref
	// parents maps a project to its parent; roots map to "".
	parents map[string]string
}

var (
	_ shared.ResourceResolver = (*Directory)(nil)
	_ shared.ProjectResolver  = (*Directory)(nil)
)

func NewDirectory() *Directory {
	return &Directory{
		resources: map[resource.Ref]*resource.Resource{},
		names:     map[string]resource.Ref{},
		parents:   map[string]string{},
	}
}

// AddResource registers a resource administered by owner. The resource is
// also reachable by name when name is not empty.
func (d *Directory) AddResource(resourceType, id, name, owner string) resource.Ref {
	ref := resource.Ref{Type: resourceType, ID: id}
	d.resources[ref] = resource.NewResource(ref, name, owner)
	if name != "" {
		d.names[resourceType+"/"+name] = ref
	}
	d.AddProject(owner, "")
	return ref
}

func (d *Directory) AddProject(id, parent string) *Directory {
	if _, known := d.parents[id]; !known || parent != "" {
		d.parents[id] = parent
	}
	if parent != "" {
		if _, known := d.parents[parent]; !known {
			d.parents[parent] = ""
		}
	}
	return d
}

func (d *Directory) Resolve(_ context.Context, resourceType, ident string) (*resource.Resource, error) {
	ref, err := resource.NewRef(resourceType, ident)
	if err != nil {
		return nil, err
	}
	if res, ok := d.resources[ref]; ok {
		return res, nil
	}
	if named, ok := d.names[resourceType+"/"+ident]; ok {
		return d.resources[named], nil
	}
	return nil, errs.Mark(infra.NotFound("resource "+ref.String()+" not found"), errs.ErrResourceNotFound)
}

func (d *Directory) Canonical(_ context.Context, ident string) (string, error) {
	if _, ok := d.parents[ident]; ok {
		return ident, nil
	}
	return "", errs.Mark(infra.NotFound("project "+ident+" not found"), errs.ErrProjectNotFound)
}

func (d *Directory) Lineage(_ context.Context, projectID string) ([]string, error) {
	if _, ok := d.parents[projectID]; !ok {
		return nil, errs.Mark(infra.NotFound("project "+projectID+" not found"), errs.ErrProjectNotFound)
	}
	var out []string
	seen := map[string]bool{}
	for id := projectID; id != "" && !seen[id]; id = d.parents[id] {
		seen[id] = true
		out = append(out, id)
	}
	return out, nil
}
