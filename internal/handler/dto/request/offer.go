package request

import (
	"time"

	"lease-engine/internal/domain/offer"
	"lease-engine/internal/pkg/props"
	"lease-engine/internal/usecase/commands"
	"lease-engine/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CreateOfferRequest struct {
	Name         string           `json:"name" binding:"max=255"`
	ResourceType string           `json:"resource_type" binding:"omitempty,resource_type"`
	ResourceID   string           `json:"resource_uuid" binding:"required,max=255"`
	LesseeID     *string          `json:"lessee_id,omitempty" binding:"omitempty,min=1,max=255"`
	StartTime    *time.Time       `json:"start_time,omitempty"`
	EndTime      *time.Time       `json:"end_time,omitempty"`
	Properties   props.Properties `json:"properties,omitempty"`
}

func (r CreateOfferRequest) ToCommand() (commands.CreateOfferRequest, error) {
	var cmd commands.CreateOfferRequest
	err := copier.Copy(&cmd, &r)
	return cmd, err
}

type UpdateOfferRequest struct {
	Name       *string          `json:"name,omitempty" binding:"omitempty,max=255"`
	StartTime  *time.Time       `json:"start_time,omitempty"`
	EndTime    *time.Time       `json:"end_time,omitempty"`
	Status     *offer.Status    `json:"status,omitempty" binding:"omitempty,oneof=available claimed cancelled expired"`
	Properties props.Properties `json:"properties,omitempty"`
}

func (r UpdateOfferRequest) ToCommand() (commands.UpdateOfferRequest, error) {
	var cmd commands.UpdateOfferRequest
	err := copier.Copy(&cmd, &r)
	return cmd, err
}

type ClaimOfferRequest struct {
	Name       string           `json:"name" binding:"max=255"`
	StartTime  *time.Time       `json:"start_time,omitempty"`
	EndTime    *time.Time       `json:"end_time,omitempty"`
	Properties props.Properties `json:"properties,omitempty"`
}

func (r ClaimOfferRequest) ToCommand() (commands.ClaimOfferRequest, error) {
	var cmd commands.ClaimOfferRequest
	err := copier.Copy(&cmd, &r)
	return cmd, err
}

// ListOffersQuery binds the query string of GET /offers.
type ListOffersQuery struct {
	ProjectID          *string    `form:"project_id"`
	ResourceType       *string    `form:"resource_type" binding:"omitempty,resource_type"`
	ResourceID         *string    `form:"resource_uuid"`
	StartTime          *time.Time `form:"start_time"`
	EndTime            *time.Time `form:"end_time"`
	TimeFilterType     *string    `form:"time_filter_type" binding:"omitempty,time_filter"`
	AvailableStartTime *time.Time `form:"available_start_time"`
	AvailableEndTime   *time.Time `form:"available_end_time"`
	Status             *string    `form:"status"`
}

func (q ListOffersQuery) ToParams() queries.OfferListParams {
	return queries.OfferListParams{
		ProjectID:    q.ProjectID,
		ResourceType: q.ResourceType,
		ResourceID:   q.ResourceID,
		Time:         queries.TimeWindow{Start: q.StartTime, End: q.EndTime},
		TimeMode:     q.TimeFilterType,
		Available:    queries.TimeWindow{Start: q.AvailableStartTime, End: q.AvailableEndTime},
		Status:       q.Status,
	}
}
