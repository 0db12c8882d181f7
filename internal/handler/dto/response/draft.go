package response

import (
	"clubvenue/internal/domain/booking"
	"clubvenue/internal/usecase"

	"github.com/google/uuid"
)

type MessagePayload struct {
	Text  string `json:"text"`
	Level string `json:"level"`
}

type VerdictResponse struct {
	Timeline     *MessagePayload `json:"timeline,omitempty"`
	Hours        *MessagePayload `json:"hours,omitempty"`
	Conflict     *MessagePayload `json:"conflict,omitempty"`
	VenueRouting *MessagePayload `json:"venueRouting,omitempty"`
	Submittable  bool            `json:"submittable"`
}

type DraftResponse struct {
	ID              uuid.UUID       `json:"id"`
	EventName       string          `json:"eventName,omitempty"`
	EventType       string          `json:"eventType"`
	AttendeeBracket string          `json:"attendeeBracket,omitempty"`
	ClubID          uuid.UUID       `json:"clubId"`
	Date            string          `json:"date,omitempty"`
	StartTime       string          `json:"startTime,omitempty"`
	EndTime         string          `json:"endTime,omitempty"`
	VenueIDs        []uuid.UUID     `json:"venueIds"`
	Verdict         VerdictResponse `json:"verdict"`
	Submitted       bool            `json:"submitted"`
}

func FromDraftState(state *usecase.DraftState) *DraftResponse {
	return &DraftResponse{
		ID:              state.ID,
		EventName:       state.EventName,
		EventType:       state.EventType.String(),
		AttendeeBracket: state.AttendeeBracket.String(),
		ClubID:          state.ClubID,
		Date:            state.Date,
		StartTime:       state.StartTime,
		EndTime:         state.EndTime,
		VenueIDs:        state.VenueIDs,
		Verdict:         fromVerdict(state.Verdict),
		Submitted:       state.Submitted,
	}
}

func fromVerdict(v booking.Verdict) VerdictResponse {
	return VerdictResponse{
		Timeline:     messageOf(v, booking.WarnTimeline),
		Hours:        messageOf(v, booking.WarnHours),
		Conflict:     messageOf(v, booking.WarnConflict),
		VenueRouting: messageOf(v, booking.WarnVenueRouting),
		Submittable:  v.Submittable(),
	}
}

func messageOf(v booking.Verdict, kind booking.WarningKind) *MessagePayload {
	msg, ok := v.Message(kind)
	if !ok {
		return nil
	}
	return &MessagePayload{Text: msg.Text, Level: string(msg.Level)}
}
