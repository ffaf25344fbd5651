package repository

import (
	"context"
	"testing"
	"time"

	"github.com/gigbook/gigbook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestVenueRepo_CreateAndFindByID_GenresRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewVenueRepository(db)
	ctx := context.Background()

	venue := &models.Venue{
		Name:    "The Musical Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Phone:   "123-123-1234",
		Genres:  models.GenreList{"Jazz", "Reggae"},
	}
	require.NoError(t, repo.Create(ctx, db, venue))
	require.NotZero(t, venue.ID)

	got, err := repo.FindByID(ctx, venue.ID)

	assert.NoError(t, err)
	assert.Equal(t, models.GenreList{"Jazz", "Reggae"}, got.Genres)
}

func TestVenueRepo_FindByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewVenueRepository(db)

	_, err := repo.FindByID(context.Background(), 999)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestVenueRepo_SearchByName_CaseInsensitiveSubstring(t *testing.T) {
	db := newTestDB(t)
	repo := NewVenueRepository(db)
	ctx := context.Background()
	now := time.Now()

	seedVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	seedVenue(t, db, "Park Square Live Music & Coffee", "San Francisco", "CA")

	hop, err := repo.SearchByName(ctx, "Hop", now)
	assert.NoError(t, err)
	require.Len(t, hop, 1)
	assert.Equal(t, "The Musical Hop", hop[0].Name)

	music, err := repo.SearchByName(ctx, "music", now)
	assert.NoError(t, err)
	assert.Len(t, music, 2)
}

func TestVenueRepo_SearchByName_EmptyTermMatchesAll(t *testing.T) {
	db := newTestDB(t)
	repo := NewVenueRepository(db)

	seedVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	seedVenue(t, db, "The Dueling Pianos Bar", "New York", "NY")

	all, err := repo.SearchByName(context.Background(), "", time.Now())

	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestVenueRepo_SearchByName_MatchesNameOnly(t *testing.T) {
	db := newTestDB(t)
	repo := NewVenueRepository(db)

	seedVenue(t, db, "The Dueling Pianos Bar", "Music City", "TN")

	rows, err := repo.SearchByName(context.Background(), "Music", time.Now())

	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestVenueRepo_SearchByName_CountsUpcomingShows(t *testing.T) {
	db := newTestDB(t)
	repo := NewVenueRepository(db)
	now := time.Now()

	venue := seedVenue(t, db, "The Musical Hop", "San Francisco", "CA")
	artist := seedArtist(t, db, "Guns N Petals")
	require.NoError(t, db.Create(&models.Show{VenueID: venue.ID, ArtistID: artist.ID, StartTime: now.Add(-time.Hour)}).Error)
	require.NoError(t, db.Create(&models.Show{VenueID: venue.ID, ArtistID: artist.ID, StartTime: now.Add(time.Hour)}).Error)
	require.NoError(t, db.Create(&models.Show{VenueID: venue.ID, ArtistID: artist.ID, StartTime: now.Add(2 * time.Hour)}).Error)

	rows, err := repo.SearchByName(context.Background(), "Hop", now)

	assert.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].NumUpcomingShows)
}

func TestVenueRepo_FindAllWithUpcomingCounts_Grouping(t *testing.T) {
	db := newTestDB(t)
	repo := NewVenueRepository(db)

	seedVenue(t, db, "Paradise Rock Club", "Boston", "MA")
	seedVenue(t, db, "The Sinclair", "Boston", "MA")
	seedVenue(t, db, "The Middle East", "Cambridge", "MA")

	rows, err := repo.FindAllWithUpcomingCounts(context.Background(), time.Now())

	assert.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Boston", rows[0].City)
	assert.Equal(t, "Boston", rows[1].City)
	assert.Equal(t, "Cambridge", rows[2].City)
	for _, row := range rows {
		assert.Equal(t, "MA", row.State)
		assert.Zero(t, row.NumUpcomingShows)
	}
}

func TestVenueRepo_FindRecent_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewVenueRepository(db)

	seedVenue(t, db, "First", "Boston", "MA")
	second := seedVenue(t, db, "Second", "Boston", "MA")
	third := seedVenue(t, db, "Third", "Boston", "MA")

	venues, err := repo.FindRecent(context.Background(), 2)

	assert.NoError(t, err)
	require.Len(t, venues, 2)
	assert.Equal(t, third.ID, venues[0].ID)
	assert.Equal(t, second.ID, venues[1].ID)
}

func TestVenueRepo_FindRecent_EmptyTable(t *testing.T) {
	db := newTestDB(t)
	repo := NewVenueRepository(db)

	venues, err := repo.FindRecent(context.Background(), 10)

	assert.NoError(t, err)
	assert.Empty(t, venues)
}

func TestVenueRepo_Exists(t *testing.T) {
	db := newTestDB(t)
	repo := NewVenueRepository(db)
	ctx := context.Background()

	venue := seedVenue(t, db, "The Musical Hop", "San Francisco", "CA")

	ok, err := repo.Exists(ctx, db, venue.ID)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, db, 999)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestVenueRepo_Save_OverwritesFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewVenueRepository(db)
	ctx := context.Background()

	venue := seedVenue(t, db, "Old Name", "Boston", "MA")
	venue.Name = "New Name"
	venue.Genres = models.GenreList{"Blues"}
	require.NoError(t, repo.Save(ctx, db, venue))

	got, err := repo.FindByID(ctx, venue.ID)

	assert.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, models.GenreList{"Blues"}, got.Genres)
}
