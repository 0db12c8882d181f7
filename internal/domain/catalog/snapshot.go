package catalog

import (
	"sort"

	"github.com/google/uuid"
)

// Snapshot is the read-only catalog view a draft session edits against.
// It is loaded once per session and never refreshed mid-edit.
type Snapshot struct {
	clubs  map[uuid.UUID]Club
	venues map[uuid.UUID]Venue
}

func NewSnapshot(clubs []Club, venues []Venue) *Snapshot {
	s := &Snapshot{
		clubs:  make(map[uuid.UUID]Club, len(clubs)),
		venues: make(map[uuid.UUID]Venue, len(venues)),
	}
	for _, c := range clubs {
		s.clubs[c.ID] = c
	}
	for _, v := range venues {
		s.venues[v.ID] = v
	}
	return s
}

func (s *Snapshot) Club(id uuid.UUID) (Club, bool) {
	c, ok := s.clubs[id]
	return c, ok
}

func (s *Snapshot) Venue(id uuid.UUID) (Venue, bool) {
	v, ok := s.venues[id]
	return v, ok
}

// VenueCategories resolves the categories of the given venue ids. Unknown ids
// are skipped: a venue that vanished from the catalog cannot influence routing.
func (s *Snapshot) VenueCategories(ids []uuid.UUID) []VenueCategory {
	cats := make([]VenueCategory, 0, len(ids))
	for _, id := range ids {
		if v, ok := s.venues[id]; ok {
			cats = append(cats, v.Category)
		}
	}
	return cats
}

func (s *Snapshot) Clubs() []Club {
	out := make([]Club, 0, len(s.clubs))
	for _, c := range s.clubs {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Snapshot) Venues() []Venue {
	out := make([]Venue, 0, len(s.venues))
	for _, v := range s.venues {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
