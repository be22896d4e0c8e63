package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Offer struct {
	ID           uuid.UUID
	Name         string
	ProjectID    string
	LesseeID     pgtype.Text
	ResourceType string
	ResourceID   string
	StartTime    pgtype.Timestamptz
	EndTime      pgtype.Timestamptz
	Status       string
	Properties   []byte
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type Lease struct {
	ID           uuid.UUID
	Name         string
	OfferID      pgtype.UUID
	ProjectID    string
	OwnerID      string
	ResourceType string
	ResourceID   string
	StartTime    pgtype.Timestamptz
	EndTime      pgtype.Timestamptz
	Status       string
	Properties   []byte
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type OwnerChange struct {
	ID           uuid.UUID
	ResourceType string
	ResourceID   string
	FromOwnerID  string
	ToOwnerID    string
	StartTime    pgtype.Timestamptz
	EndTime      pgtype.Timestamptz
	Status       string
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type Resource struct {
	ResourceType   string
	ResourceID     string
	Name           string
	OwnerProjectID string
}

type Project struct {
	ID       string
	Name     string
	ParentID pgtype.Text
}
