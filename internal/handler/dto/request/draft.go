package request

import (
	"github.com/google/uuid"
)

type CreateDraftRequest struct {
	EventType string    `json:"eventType" binding:"required,oneof=closed_club open_for_all co_curricular"`
	ClubID    uuid.UUID `json:"clubId" binding:"required"`
}

// UpdateDraftRequest is a partial update; omitted fields stay as they are.
// Date and the time fields accept "" to clear a previous choice.
type UpdateDraftRequest struct {
	EventName       *string     `json:"eventName,omitempty"`
	AttendeeBracket *string     `json:"attendeeBracket,omitempty" binding:"omitempty,oneof=up_to_50 up_to_100 up_to_250 above_250"`
	Date            *string     `json:"date,omitempty"`
	StartTime       *string     `json:"startTime,omitempty"`
	EndTime         *string     `json:"endTime,omitempty"`
	AddVenueIDs     []uuid.UUID `json:"addVenueIds,omitempty"`
	RemoveVenueIDs  []uuid.UUID `json:"removeVenueIds,omitempty"`
}
