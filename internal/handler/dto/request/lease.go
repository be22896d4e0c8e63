package request

import (
	"time"

	"lease-engine/internal/domain/lease"
	"lease-engine/internal/pkg/props"
	"lease-engine/internal/usecase/commands"
	"lease-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// CreateLeaseRequest grants a lease on a resource the caller administers.
// ProjectID defaults to the caller.
type CreateLeaseRequest struct {
	Name         string           `json:"name" binding:"max=255"`
	ProjectID    string           `json:"project_id" binding:"max=255"`
	ResourceType string           `json:"resource_type" binding:"omitempty,resource_type"`
	ResourceID   string           `json:"resource_uuid" binding:"required,max=255"`
	StartTime    *time.Time       `json:"start_time,omitempty"`
	EndTime      *time.Time       `json:"end_time,omitempty"`
	Properties   props.Properties `json:"properties,omitempty"`
}

func (r CreateLeaseRequest) ToCommand(callerID string) (commands.CreateLeaseRequest, error) {
	var cmd commands.CreateLeaseRequest
	if err := copier.Copy(&cmd, &r); err != nil {
		return cmd, err
	}
	if cmd.ProjectID == "" {
		cmd.ProjectID = callerID
	}
	return cmd, nil
}

type UpdateLeaseRequest struct {
	Name       *string          `json:"name,omitempty" binding:"omitempty,max=255"`
	StartTime  *time.Time       `json:"start_time,omitempty"`
	EndTime    *time.Time       `json:"end_time,omitempty"`
	Status     *lease.Status    `json:"status,omitempty" binding:"omitempty,oneof=created active cancelled expired error"`
	Properties props.Properties `json:"properties,omitempty"`
}

func (r UpdateLeaseRequest) ToCommand() (commands.UpdateLeaseRequest, error) {
	var cmd commands.UpdateLeaseRequest
	err := copier.Copy(&cmd, &r)
	return cmd, err
}

// ListLeasesQuery binds the query string of GET /leases.
type ListLeasesQuery struct {
	ProjectID      *string    `form:"project_id"`
	OwnerID        *string    `form:"owner_id"`
	ResourceType   *string    `form:"resource_type" binding:"omitempty,resource_type"`
	ResourceID     *string    `form:"resource_uuid"`
	OfferID        *string    `form:"offer_uuid" binding:"omitempty,uuid"`
	StartTime      *time.Time `form:"start_time"`
	EndTime        *time.Time `form:"end_time"`
	TimeFilterType *string    `form:"time_filter_type" binding:"omitempty,time_filter"`
	Status         *string    `form:"status"`
}

func (q ListLeasesQuery) ToParams() (queries.LeaseListParams, error) {
	params := queries.LeaseListParams{
		ProjectID:    q.ProjectID,
		OwnerID:      q.OwnerID,
		ResourceType: q.ResourceType,
		ResourceID:   q.ResourceID,
		Time:         queries.TimeWindow{Start: q.StartTime, End: q.EndTime},
		TimeMode:     q.TimeFilterType,
		Status:       q.Status,
	}
	if q.OfferID != nil {
		id, err := uuid.Parse(*q.OfferID)
		if err != nil {
			return params, err
		}
		params.OfferID = &id
	}
	return params, nil
}
