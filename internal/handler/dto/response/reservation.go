package response

import (
	"time"

	"lease-engine/internal/pkg/props"
	"lease-engine/internal/usecase/queries"
)

type OfferResponse struct {
	ID             string           `json:"uuid"`
	Name           string           `json:"name"`
	ProjectID      string           `json:"project_id"`
	LesseeID       *string          `json:"lessee_id"`
	ResourceType   string           `json:"resource_type"`
	ResourceID     string           `json:"resource_uuid"`
	StartTime      time.Time        `json:"start_time"`
	EndTime        time.Time        `json:"end_time"`
	Status         string           `json:"status"`
	Properties     props.Properties `json:"properties"`
	Availabilities [][2]time.Time   `json:"availabilities"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func FromOfferView(v *queries.OfferView) *OfferResponse {
	availabilities := v.Availabilities
	if availabilities == nil {
		availabilities = [][2]time.Time{}
	}
	return &OfferResponse{
		ID:             v.ID.String(),
		Name:           v.Name,
		ProjectID:      v.ProjectID,
		LesseeID:       v.LesseeID,
		ResourceType:   v.ResourceType,
		ResourceID:     v.ResourceID,
		StartTime:      v.StartTime,
		EndTime:        v.EndTime,
		Status:         v.Status,
		Properties:     v.Properties.Clone(),
		Availabilities: availabilities,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func FromOfferList(items []*queries.OfferView) []*OfferResponse {
	res := make([]*OfferResponse, len(items))
	for i, it := range items {
		res[i] = FromOfferView(it)
	}
	return res
}

type LeaseResponse struct {
	ID           string           `json:"uuid"`
	Name         string           `json:"name"`
	OfferID      *string          `json:"offer_uuid"`
	ProjectID    string           `json:"project_id"`
	OwnerID      string           `json:"owner_id"`
	ResourceType string           `json:"resource_type"`
	ResourceID   string           `json:"resource_uuid"`
	StartTime    time.Time        `json:"start_time"`
	EndTime      time.Time        `json:"end_time"`
	Status       string           `json:"status"`
	Properties   props.Properties `json:"properties"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func FromLeaseView(v *queries.LeaseView) *LeaseResponse {
	var offerID *string
	if v.OfferID != nil {
		id := v.OfferID.String()
		offerID = &id
	}
	return &LeaseResponse{
		ID:           v.ID.String(),
		Name:         v.Name,
		OfferID:      offerID,
		ProjectID:    v.ProjectID,
		OwnerID:      v.OwnerID,
		ResourceType: v.ResourceType,
		ResourceID:   v.ResourceID,
		StartTime:    v.StartTime,
		EndTime:      v.EndTime,
		Status:       v.Status,
		Properties:   v.Properties.Clone(),
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromLeaseList(items []*queries.LeaseView) []*LeaseResponse {
	res := make([]*LeaseResponse, len(items))
	for i, it := range items {
		res[i] = FromLeaseView(it)
	}
	return res
}

type OwnerChangeResponse struct {
	ID           string    `json:"uuid"`
	ResourceType string    `json:"resource_type"`
	ResourceID   string    `json:"resource_uuid"`
	FromOwnerID  string    `json:"from_owner_id"`
	ToOwnerID    string    `json:"to_owner_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromOwnerChangeView(v *queries.OwnerChangeView) *OwnerChangeResponse {
	return &OwnerChangeResponse{
		ID:           v.ID.String(),
		ResourceType: v.ResourceType,
		ResourceID:   v.ResourceID,
		FromOwnerID:  v.FromOwnerID,
		ToOwnerID:    v.ToOwnerID,
		StartTime:    v.StartTime,
		EndTime:      v.EndTime,
		Status:       v.Status,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromOwnerChangeList(items []*queries.OwnerChangeView) []*OwnerChangeResponse {
	res := make([]*OwnerChangeResponse, len(items))
	for i, it := range items {
		res[i] = FromOwnerChangeView(it)
	}
	return res
}

type AdminResponse struct {
	ResourceType string    `json:"resource_type"`
	ResourceID   string    `json:"resource_uuid"`
	ProjectID    string    `json:"project_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	IsAdmin      bool      `json:"is_admin"`
}

func FromAdminView(v *queries.AdminView) *AdminResponse {
	return &AdminResponse{
		ResourceType: v.ResourceType,
		ResourceID:   v.ResourceID,
		ProjectID:    v.ProjectID,
		StartTime:    v.StartTime,
		EndTime:      v.EndTime,
		IsAdmin:      v.IsAdmin,
	}
}
