//go:build unit || e2e

package builder

import (
	"time"

	"lease-engine/internal/domain/interval"
	"lease-engine/internal/domain/ownerchange"
	"lease-engine/internal/domain/resource"
	reqdto "lease-engine/internal/handler/dto/request"
	"lease-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type OwnerChangeBuilder struct {
	ID           uuid.UUID
	ResourceType string
	ResourceID   string
	FromOwnerID  string
	ToOwnerID    string
	StartTime    time.Time
	EndTime      time.Time
	Status       ownerchange.Status
	CreatedAt    time.Time
}

func NewOwnerChangeBuilder() *OwnerChangeBuilder {
	start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	return &OwnerChangeBuilder{
		ID:           uuid.New(),
		ResourceType: resource.TypeIronicNode,
		ResourceID:   "node-1",
		FromOwnerID:  "owner",
		ToOwnerID:    "other",
		StartTime:    start,
		EndTime:      start.Add(72 * time.Hour),
		Status:       ownerchange.StatusCreated,
		CreatedAt:    start.Add(-time.Hour),
	}
}

func (b *OwnerChangeBuilder) With(mutate func(*OwnerChangeBuilder)) *OwnerChangeBuilder {
	mutate(b)
	return b
}

func (b *OwnerChangeBuilder) WithWindow(start, end time.Time) *OwnerChangeBuilder {
	b.StartTime, b.EndTime = start, end
	return b
}

func (b *OwnerChangeBuilder) WithOwners(from, to string) *OwnerChangeBuilder {
	b.FromOwnerID, b.ToOwnerID = from, to
	return b
}

func (b *OwnerChangeBuilder) WithStatus(status ownerchange.Status) *OwnerChangeBuilder {
	b.Status = status
	return b
}

func (b *OwnerChangeBuilder) Ref() resource.Ref {
	return resource.Ref{Type: b.ResourceType, ID: b.ResourceID}
}

func (b *OwnerChangeBuilder) BuildDomain() *ownerchange.OwnerChange {
	slot, err := interval.New(b.StartTime, b.EndTime)
	if err != nil {
		panic(err)
	}
	return ownerchange.Reconstruct(b.ID, b.Ref(), b.FromOwnerID, b.ToOwnerID, slot, b.Status, b.CreatedAt, b.CreatedAt)
}

func (b *OwnerChangeBuilder) BuildCreateRequestDTO() reqdto.CreateOwnerChangeRequest {
	start, end := b.StartTime, b.EndTime
	return reqdto.CreateOwnerChangeRequest{
		ResourceType: b.ResourceType,
		ResourceID:   b.ResourceID,
		ToOwnerID:    b.ToOwnerID,
		StartTime:    &start,
		EndTime:      &end,
	}
}

func (b *OwnerChangeBuilder) BuildView() *queries.OwnerChangeView {
	return &queries.OwnerChangeView{
		ID:           b.ID,
		ResourceType: b.ResourceType,
		ResourceID:   b.ResourceID,
		FromOwnerID:  b.FromOwnerID,
		ToOwnerID:    b.ToOwnerID,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       b.Status.String(),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.CreatedAt,
	}
}
