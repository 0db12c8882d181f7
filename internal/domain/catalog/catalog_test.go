//go:build unit

package catalog_test

import (
	"testing"

	"clubvenue/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVenueCategory(t *testing.T) {
	tests := []struct {
		raw     string
		want    catalog.VenueCategory
		wantErr bool
	}{
		{raw: "A", want: catalog.CategoryDirect},
		{raw: "B", want: catalog.CategoryRestrictedApproval},
		{raw: "auto_approval", want: catalog.CategoryDirect},
		{raw: "needs_approval", want: catalog.CategoryRestrictedApproval},
		{raw: "C", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "direct", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := catalog.ParseVenueCategory(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, catalog.ErrUnknownCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSnapshot(t *testing.T) {
	clubID := uuid.New()
	directID := uuid.New()
	restrictedID := uuid.New()

	snap := catalog.NewSnapshot(
		[]catalog.Club{{ID: clubID, Name: "Drama Club", GroupCategory: "cultural"}},
		[]catalog.Venue{
			{ID: directID, Name: "Seminar Hall", Category: catalog.CategoryDirect},
			{ID: restrictedID, Name: "Main Auditorium", Category: catalog.CategoryRestrictedApproval},
		},
	)

	t.Run("club lookup", func(t *testing.T) {
		club, ok := snap.Club(clubID)
		require.True(t, ok)
		assert.Equal(t, "Drama Club", club.Name)

		_, ok = snap.Club(uuid.New())
		assert.False(t, ok)
	})

	t.Run("venue categories resolve in order", func(t *testing.T) {
		cats := snap.VenueCategories([]uuid.UUID{directID, restrictedID})
		assert.Equal(t, []catalog.VenueCategory{catalog.CategoryDirect, catalog.CategoryRestrictedApproval}, cats)
	})

	t.Run("unknown venue ids are skipped", func(t *testing.T) {
		cats := snap.VenueCategories([]uuid.UUID{uuid.New(), directID})
		assert.Equal(t, []catalog.VenueCategory{catalog.CategoryDirect}, cats)
	})

	t.Run("listings are sorted by name", func(t *testing.T) {
		venues := snap.Venues()
		require.Len(t, venues, 2)
		assert.Equal(t, "Main Auditorium", venues[0].Name)
		assert.Equal(t, "Seminar Hall", venues[1].Name)
	})
}
