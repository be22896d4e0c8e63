//go:build unit || e2e

package builder

import (
	"time"

	"lease-engine/internal/domain/interval"
	"lease-engine/internal/domain/lease"
	"lease-engine/internal/domain/resource"
	reqdto "lease-engine/internal/handler/dto/request"
	"lease-engine/internal/pkg/props"
	"lease-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type LeaseBuilder struct {
	ID           uuid.UUID
	Name         string
	OfferID      *uuid.UUID
	ProjectID    string
	OwnerID      string
	ResourceType string
	ResourceID   string
	StartTime    time.Time
	EndTime      time.Time
	Status       lease.Status
	Properties   props.Properties
	CreatedAt    time.Time
}

func NewLeaseBuilder() *LeaseBuilder {
	start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	return &LeaseBuilder{
		ID:           uuid.New(),
		Name:         "node-1-lease",
		ProjectID:    "lessee",
		OwnerID:      "owner",
		ResourceType: resource.TypeIronicNode,
		ResourceID:   "node-1",
		StartTime:    start,
		EndTime:      start.Add(24 * time.Hour),
		Status:       lease.StatusCreated,
		Properties:   props.Properties{},
		CreatedAt:    start.Add(-time.Hour),
	}
}

func (b *LeaseBuilder) With(mutate func(*LeaseBuilder)) *LeaseBuilder {
	mutate(b)
	return b
}

// FromOffer makes the lease a claim on o, owned by the offering project.
func (b *LeaseBuilder) FromOffer(o *OfferBuilder) *LeaseBuilder {
	id := o.ID
	b.OfferID = &id
	b.OwnerID = o.ProjectID
	b.ResourceType = o.ResourceType
	b.ResourceID = o.ResourceID
	return b
}

func (b *LeaseBuilder) WithProject(projectID string) *LeaseBuilder {
	b.ProjectID = projectID
	return b
}

func (b *LeaseBuilder) WithWindow(start, end time.Time) *LeaseBuilder {
	b.StartTime, b.EndTime = start, end
	return b
}

func (b *LeaseBuilder) WithStatus(status lease.Status) *LeaseBuilder {
	b.Status = status
	return b
}

func (b *LeaseBuilder) Ref() resource.Ref {
	return resource.Ref{Type: b.ResourceType, ID: b.ResourceID}
}

func (b *LeaseBuilder) BuildDomain() *lease.Lease {
	slot, err := interval.New(b.StartTime, b.EndTime)
	if err != nil {
		panic(err)
	}
	return lease.Reconstruct(b.ID, b.Name, b.OfferID, b.ProjectID, b.OwnerID, b.Ref(), slot, b.Status, b.Properties, b.CreatedAt, b.CreatedAt)
}

func (b *LeaseBuilder) BuildCreateRequestDTO() reqdto.CreateLeaseRequest {
	start, end := b.StartTime, b.EndTime
	return reqdto.CreateLeaseRequest{
		Name:         b.Name,
		ProjectID:    b.ProjectID,
		ResourceType: b.ResourceType,
		ResourceID:   b.ResourceID,
		StartTime:    &start,
		EndTime:      &end,
		Properties:   b.Properties,
	}
}

func (b *LeaseBuilder) BuildView() *queries.LeaseView {
	return &queries.LeaseView{
		ID:           b.ID,
		Name:         b.Name,
		OfferID:      b.OfferID,
		ProjectID:    b.ProjectID,
		OwnerID:      b.OwnerID,
		ResourceType: b.ResourceType,
		ResourceID:   b.ResourceID,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       b.Status.String(),
		Properties:   b.Properties,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.CreatedAt,
	}
}
