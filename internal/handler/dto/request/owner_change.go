package request

import (
	"time"

	"lease-engine/internal/domain/ownerchange"
	"lease-engine/internal/usecase/commands"
	"lease-engine/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CreateOwnerChangeRequest struct {
	ResourceType string     `json:"resource_type" binding:"omitempty,resource_type"`
	ResourceID   string     `json:"resource_uuid" binding:"required,max=255"`
	ToOwnerID    string     `json:"to_owner_id" binding:"required,max=255"`
	StartTime    *time.Time `json:"start_time,omitempty"`
	EndTime      *time.Time `json:"end_time,omitempty"`
}

func (r CreateOwnerChangeRequest) ToCommand() (commands.CreateOwnerChangeRequest, error) {
	var cmd commands.CreateOwnerChangeRequest
	err := copier.Copy(&cmd, &r)
	return cmd, err
}

type UpdateOwnerChangeRequest struct {
	StartTime *time.Time          `json:"start_time,omitempty"`
	EndTime   *time.Time          `json:"end_time,omitempty"`
	Status    *ownerchange.Status `json:"status,omitempty" binding:"omitempty,oneof=created active cancelled completed"`
}

func (r UpdateOwnerChangeRequest) ToCommand() (commands.UpdateOwnerChangeRequest, error) {
	var cmd commands.UpdateOwnerChangeRequest
	err := copier.Copy(&cmd, &r)
	return cmd, err
}

// ListOwnerChangesQuery binds the query string of GET /owner_changes.
type ListOwnerChangesQuery struct {
	ResourceType *string    `form:"resource_type" binding:"omitempty,resource_type"`
	ResourceID   *string    `form:"resource_uuid"`
	StartTime    *time.Time `form:"start_time"`
	EndTime      *time.Time `form:"end_time"`
	Status       *string    `form:"status"`
}

func (q ListOwnerChangesQuery) ToParams() queries.OwnerChangeListParams {
	return queries.OwnerChangeListParams{
		ResourceType: q.ResourceType,
		ResourceID:   q.ResourceID,
		Time:         queries.TimeWindow{Start: q.StartTime, End: q.EndTime},
		Status:       q.Status,
	}
}

// AdminQuery binds the window of GET /resources/:type/:id/admin.
type AdminQuery struct {
	StartTime *time.Time `form:"start_time"`
	EndTime   *time.Time `form:"end_time"`
}
