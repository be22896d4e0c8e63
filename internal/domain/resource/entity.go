package resource

import (
	"errors"
	"strings"
)

var (
	ErrEmptyResourceType = errors.New("resource type cannot be empty")
	ErrEmptyResourceID   = errors.New("resource id cannot be empty")
	ErrResourceIDTooLong = errors.New("resource id is too long (max 255 characters)")
)

const (
	MaxResourceIDLength = 255

	TypeIronicNode = "ironic_node"
	TypeDummyNode  = "dummy_node"

	// DefaultType applies when a caller names a resource without its type.
	DefaultType = TypeIronicNode
)

// Ref is the canonical identity of a physical resource as confirmed by the
// resolver. Caller supplied names or aliases never appear in a Ref.
type Ref struct {
	Type string
	ID   string
}

func NewRef(resourceType, id string) (Ref, error) {
	resourceType = strings.TrimSpace(resourceType)
	id = strings.TrimSpace(id)
	if resourceType == "" {
		return Ref{}, ErrEmptyResourceType
	}
	if id == "" {
		return Ref{}, ErrEmptyResourceID
	}
	if len(id) > MaxResourceIDLength {
		return Ref{}, ErrResourceIDTooLong
	}
	return Ref{Type: resourceType, ID: id}, nil
}

// LockKey names the per-resource serialization lock.
func (r Ref) LockKey() string {
	return "reservation:" + r.Type + ":" + r.ID
}

func (r Ref) String() string {
	return r.Type + "/" + r.ID
}

// Resource is what the inventory knows about a physical resource.
// OwnerProjectID administers the resource whenever no owner change applies.
type Resource struct {
	ref            Ref
	name           string
	ownerProjectID string
}

func NewResource(ref Ref, name, ownerProjectID string) *Resource {
	return &Resource{
		ref:            ref,
		name:           strings.TrimSpace(name),
		ownerProjectID: ownerProjectID,
	}
}

func (r *Resource) Ref() Ref               { return r.ref }
func (r *Resource) Name() string           { return r.name }
func (r *Resource) OwnerProjectID() string { return r.ownerProjectID }
