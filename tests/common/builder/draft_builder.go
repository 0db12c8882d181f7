//go:build unit

package builder

import (
	"clubvenue/internal/domain/booking"
	"clubvenue/internal/domain/catalog"
	reqdto "clubvenue/internal/handler/dto/request"
	"clubvenue/internal/usecase"

	"github.com/google/uuid"
)

// DraftBuilder assembles drafts and the catalog fixtures they edit against.
type DraftBuilder struct {
	EventType    booking.EventType
	EventName    string
	Bracket      booking.AttendeeBracket
	ClubID       uuid.UUID
	Date         string
	StartTime    string
	EndTime      string
	DirectVenues []uuid.UUID
	RestrVenues  []uuid.UUID
}

func NewDraftBuilder() *DraftBuilder {
	return &DraftBuilder{
		EventType:    booking.EventClosedClub,
		EventName:    "Robotics Workshop",
		Bracket:      booking.BracketUpTo50,
		ClubID:       uuid.New(),
		Date:         "2025-06-05",
		StartTime:    "17:00",
		EndTime:      "18:00",
		DirectVenues: []uuid.UUID{uuid.New()},
	}
}

func (b *DraftBuilder) With(mutate func(*DraftBuilder)) *DraftBuilder {
	mutate(b)
	return b
}

func (b *DraftBuilder) BuildDomain() (*booking.Draft, error) {
	draft, err := booking.NewDraft(b.EventType, b.ClubID)
	if err != nil {
		return nil, err
	}
	draft.SetEventName(b.EventName)
	if b.Bracket != "" {
		if err := draft.SetAttendeeBracket(b.Bracket); err != nil {
			return nil, err
		}
	}
	if b.Date != "" {
		d, err := booking.ParseDate(b.Date)
		if err != nil {
			return nil, err
		}
		draft.SetDate(d)
	}
	if b.StartTime != "" {
		ct, err := booking.NewClockTime(b.StartTime)
		if err != nil {
			return nil, err
		}
		draft.SetStartTime(ct)
	}
	if b.EndTime != "" {
		ct, err := booking.NewClockTime(b.EndTime)
		if err != nil {
			return nil, err
		}
		draft.SetEndTime(ct)
	}
	for _, id := range b.DirectVenues {
		draft.SelectVenue(id)
	}
	for _, id := range b.RestrVenues {
		draft.SelectVenue(id)
	}
	return draft, nil
}

// BuildSnapshot mirrors the builder's club and venues into a catalog snapshot
// so the draft resolves cleanly against it.
func (b *DraftBuilder) BuildSnapshot() *catalog.Snapshot {
	clubs := []catalog.Club{
		{ID: b.ClubID, Name: "Robotics Club", GroupCategory: "technical"},
	}
	venues := make([]catalog.Venue, 0, len(b.DirectVenues)+len(b.RestrVenues))
	for i, id := range b.DirectVenues {
		venues = append(venues, catalog.Venue{
			ID:       id,
			Name:     "Seminar Hall " + string(rune('A'+i)),
			Category: catalog.CategoryDirect,
		})
	}
	for i, id := range b.RestrVenues {
		venues = append(venues, catalog.Venue{
			ID:       id,
			Name:     "Auditorium " + string(rune('A'+i)),
			Category: catalog.CategoryRestrictedApproval,
		})
	}
	return catalog.NewSnapshot(clubs, venues)
}

func (b *DraftBuilder) BuildCreateRequestDTO() reqdto.CreateDraftRequest {
	return reqdto.CreateDraftRequest{
		EventType: b.EventType.String(),
		ClubID:    b.ClubID,
	}
}

func (b *DraftBuilder) BuildState(id uuid.UUID, verdict booking.Verdict) *usecase.DraftState {
	venueIDs := append(append([]uuid.UUID{}, b.DirectVenues...), b.RestrVenues...)
	return &usecase.DraftState{
		ID:              id,
		EventName:       b.EventName,
		EventType:       b.EventType,
		AttendeeBracket: b.Bracket,
		ClubID:          b.ClubID,
		Date:            b.Date,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		VenueIDs:        venueIDs,
		Verdict:         verdict,
	}
}
