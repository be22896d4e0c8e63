//go:build unit || e2e

package builder

import (
	"time"

	"lease-engine/internal/domain/interval"
	"lease-engine/internal/domain/offer"
	"lease-engine/internal/domain/resource"
	reqdto "lease-engine/internal/handler/dto/request"
	"lease-engine/internal/pkg/props"
	"lease-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferBuilder struct {
	ID           uuid.UUID
	Name         string
	ProjectID    string
	LesseeID     *string
	ResourceType string
	ResourceID   string
	StartTime    time.Time
	EndTime      time.Time
	Status       offer.Status
	Properties   props.Properties
	CreatedAt    time.Time
}

func NewOfferBuilder() *OfferBuilder {
	start := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	return &OfferBuilder{
		ID:           uuid.New(),
		Name:         "node-1-offer",
		ProjectID:    "owner",
		ResourceType: resource.TypeIronicNode,
		ResourceID:   "node-1",
		StartTime:    start,
		EndTime:      start.Add(48 * time.Hour),
		Status:       offer.StatusAvailable,
		Properties:   props.Properties{},
		CreatedAt:    start.Add(-time.Hour),
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) WithProject(projectID string) *OfferBuilder {
	b.ProjectID = projectID
	return b
}

func (b *OfferBuilder) WithLessee(projectID string) *OfferBuilder {
	b.LesseeID = &projectID
	return b
}

func (b *OfferBuilder) WithWindow(start, end time.Time) *OfferBuilder {
	b.StartTime, b.EndTime = start, end
	return b
}

func (b *OfferBuilder) WithStatus(status offer.Status) *OfferBuilder {
	b.Status = status
	return b
}

func (b *OfferBuilder) Ref() resource.Ref {
	return resource.Ref{Type: b.ResourceType, ID: b.ResourceID}
}

func (b *OfferBuilder) BuildDomain() *offer.Offer {
	slot, err := interval.New(b.StartTime, b.EndTime)
	if err != nil {
		panic(err)
	}
	return offer.Reconstruct(b.ID, b.Name, b.ProjectID, b.LesseeID, b.Ref(), slot, b.Status, b.Properties, b.CreatedAt, b.CreatedAt)
}

func (b *OfferBuilder) BuildCreateRequestDTO() reqdto.CreateOfferRequest {
	start, end := b.StartTime, b.EndTime
	return reqdto.CreateOfferRequest{
		Name:         b.Name,
		ResourceType: b.ResourceType,
		ResourceID:   b.ResourceID,
		LesseeID:     b.LesseeID,
		StartTime:    &start,
		EndTime:      &end,
		Properties:   b.Properties,
	}
}

func (b *OfferBuilder) BuildView() *queries.OfferView {
	return &queries.OfferView{
		ID:             b.ID,
		Name:           b.Name,
		ProjectID:      b.ProjectID,
		LesseeID:       b.LesseeID,
		ResourceType:   b.ResourceType,
		ResourceID:     b.ResourceID,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		Status:         b.Status.String(),
		Properties:     b.Properties,
		Availabilities: [][2]time.Time{{b.StartTime, b.EndTime}},
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	}
}
