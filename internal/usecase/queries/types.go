package queries

import (
	"time"

	"lease-engine/internal/pkg/props"

	"github.com/google/uuid"
)

// StatusAny disables the status filter of a listing.
const StatusAny = "any"

type OfferView struct {
	ID             uuid.UUID        `json:"uuid"`
	Name           string           `json:"name"`
	ProjectID      string           `json:"project_id"`
	LesseeID       *string          `json:"lessee_id,omitempty"`
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

type LeaseView struct {
	ID           uuid.UUID        `json:"uuid"`
	Name         string           `json:"name"`
	OfferID      *uuid.UUID       `json:"offer_uuid,omitempty"`
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

type OwnerChangeView struct {
	ID           uuid.UUID `json:"uuid"`
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

type AdminView struct {
	ResourceType string    `json:"resource_type"`
	ResourceID   string    `json:"resource_uuid"`
	ProjectID    string    `json:"project_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	IsAdmin      bool      `json:"is_admin"`
}

// TimeWindow is an optional start/end pair from a listing request. Both
// bounds are set or neither is.
type TimeWindow struct {
	Start *time.Time
	End   *time.Time
}

type OfferListParams struct {
	ProjectID    *string
	ResourceType *string
	ResourceID   *string
	Time         TimeWindow
	TimeMode     *string
	Available    TimeWindow
	Status       *string
}

type LeaseListParams struct {
	ProjectID    *string
	OwnerID      *string
	ResourceType *string
	ResourceID   *string
	OfferID      *uuid.UUID
	Time         TimeWindow
	TimeMode     *string
	Status       *string
}

type OwnerChangeListParams struct {
	ResourceType *string
	ResourceID   *string
	// Time keeps changes that contain the window.
	Time   TimeWindow
	Status *string
}
