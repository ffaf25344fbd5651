package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gigbook/gigbook/internal/models"
	"github.com/gigbook/gigbook/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --- Mock VenueRepository ---

type mockVenueRepo struct {
	createFn        func(ctx context.Context, tx *gorm.DB, venue *models.Venue) error
	saveFn          func(ctx context.Context, tx *gorm.DB, venue *models.Venue) error
	deleteFn        func(ctx context.Context, tx *gorm.DB, id uint) error
	findByIDFn      func(ctx context.Context, id uint) (*models.Venue, error)
	findAllFn       func(ctx context.Context) ([]models.Venue, error)
	findRecentFn    func(ctx context.Context, limit int) ([]models.Venue, error)
	findWithCountFn func(ctx context.Context, now time.Time) ([]repository.VenueLocationRow, error)
	searchFn        func(ctx context.Context, term string, now time.Time) ([]repository.VenueSummary, error)
	existsFn        func(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
}

func (m *mockVenueRepo) Create(ctx context.Context, tx *gorm.DB, venue *models.Venue) error {
	return m.createFn(ctx, tx, venue)
}
func (m *mockVenueRepo) Save(ctx context.Context, tx *gorm.DB, venue *models.Venue) error {
	return m.saveFn(ctx, tx, venue)
}
func (m *mockVenueRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return m.deleteFn(ctx, tx, id)
}
func (m *mockVenueRepo) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockVenueRepo) FindAll(ctx context.Context) ([]models.Venue, error) {
	return m.findAllFn(ctx)
}
func (m *mockVenueRepo) FindRecent(ctx context.Context, limit int) ([]models.Venue, error) {
	return m.findRecentFn(ctx, limit)
}
func (m *mockVenueRepo) FindAllWithUpcomingCounts(ctx context.Context, now time.Time) ([]repository.VenueLocationRow, error) {
	return m.findWithCountFn(ctx, now)
}
func (m *mockVenueRepo) SearchByName(ctx context.Context, term string, now time.Time) ([]repository.VenueSummary, error) {
	return m.searchFn(ctx, term, now)
}
func (m *mockVenueRepo) Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	return m.existsFn(ctx, tx, id)
}
func (m *mockVenueRepo) GetDB() *gorm.DB { return nil }

// --- Mock ShowRepository ---

type mockShowRepo struct {
	createFn         func(ctx context.Context, tx *gorm.DB, show *models.Show) error
	findAllFn        func(ctx context.Context) ([]models.Show, error)
	findByVenueFn    func(ctx context.Context, venueID uint) ([]models.Show, error)
	findByArtistFn   func(ctx context.Context, artistID uint) ([]models.Show, error)
	deleteByVenueFn  func(ctx context.Context, tx *gorm.DB, venueID uint) error
	deleteByArtistFn func(ctx context.Context, tx *gorm.DB, artistID uint) error
}

func (m *mockShowRepo) Create(ctx context.Context, tx *gorm.DB, show *models.Show) error {
	return m.createFn(ctx, tx, show)
}
func (m *mockShowRepo) FindAll(ctx context.Context) ([]models.Show, error) {
	return m.findAllFn(ctx)
}
func (m *mockShowRepo) FindByVenueID(ctx context.Context, venueID uint) ([]models.Show, error) {
	return m.findByVenueFn(ctx, venueID)
}
func (m *mockShowRepo) FindByArtistID(ctx context.Context, artistID uint) ([]models.Show, error) {
	return m.findByArtistFn(ctx, artistID)
}
func (m *mockShowRepo) DeleteByVenueID(ctx context.Context, tx *gorm.DB, venueID uint) error {
	return m.deleteByVenueFn(ctx, tx, venueID)
}
func (m *mockShowRepo) DeleteByArtistID(ctx context.Context, tx *gorm.DB, artistID uint) error {
	return m.deleteByArtistFn(ctx, tx, artistID)
}
func (m *mockShowRepo) GetDB() *gorm.DB { return nil }

// --- Tests ---

func TestVenueService_GetDetail_PartitionsShows(t *testing.T) {
	now := time.Now()
	venueRepo := &mockVenueRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Venue, error) {
			return &models.Venue{ID: 1, Name: "The Musical Hop", Genres: models.GenreList{"Jazz", "Reggae"}}, nil
		},
	}
	showRepo := &mockShowRepo{
		findByVenueFn: func(ctx context.Context, venueID uint) ([]models.Show, error) {
			return []models.Show{
				{ID: 1, VenueID: 1, ArtistID: 4, StartTime: now.Add(-48 * time.Hour)},
				{ID: 2, VenueID: 1, ArtistID: 5, StartTime: now.Add(-time.Hour)},
				{ID: 3, VenueID: 1, ArtistID: 6, StartTime: now.Add(time.Hour)},
			}, nil
		},
	}

	svc := NewVenueService(venueRepo, showRepo, nil)
	detail, err := svc.GetDetail(context.Background(), 1)

	assert.NoError(t, err)
	require.Len(t, detail.PastShows, 2)
	require.Len(t, detail.UpcomingShows, 1)
	assert.Equal(t, uint(3), detail.UpcomingShows[0].ID)
	assert.Equal(t, models.GenreList{"Jazz", "Reggae"}, detail.Venue.Genres)
}

func TestVenueService_GetDetail_NotFound(t *testing.T) {
	venueRepo := &mockVenueRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Venue, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewVenueService(venueRepo, &mockShowRepo{}, nil)
	_, err := svc.GetDetail(context.Background(), 999)

	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestVenueService_GetDetail_ShowQueryError(t *testing.T) {
	venueRepo := &mockVenueRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Venue, error) {
			return &models.Venue{ID: 1}, nil
		},
	}
	showRepo := &mockShowRepo{
		findByVenueFn: func(ctx context.Context, venueID uint) ([]models.Show, error) {
			return nil, errors.New("db connection failed")
		},
	}

	svc := NewVenueService(venueRepo, showRepo, nil)
	_, err := svc.GetDetail(context.Background(), 1)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "db connection failed")
}

func TestVenueService_GroupByLocation(t *testing.T) {
	venueRepo := &mockVenueRepo{
		findWithCountFn: func(ctx context.Context, now time.Time) ([]repository.VenueLocationRow, error) {
			return []repository.VenueLocationRow{
				{ID: 1, Name: "Paradise Rock Club", City: "Boston", State: "MA", NumUpcomingShows: 2},
				{ID: 2, Name: "The Sinclair", City: "Boston", State: "MA", NumUpcomingShows: 0},
				{ID: 3, Name: "The Middle East", City: "Cambridge", State: "MA", NumUpcomingShows: 1},
			}, nil
		},
	}

	svc := NewVenueService(venueRepo, &mockShowRepo{}, nil)
	areas, err := svc.GroupByLocation(context.Background())

	assert.NoError(t, err)
	require.Len(t, areas, 2)
	assert.Equal(t, "Boston", areas[0].City)
	assert.Len(t, areas[0].Venues, 2)
	assert.Equal(t, "Cambridge", areas[1].City)
	require.Len(t, areas[1].Venues, 1)
	assert.Equal(t, int64(1), areas[1].Venues[0].NumUpcomingShows)
}

func TestVenueService_GroupByLocation_SameCityDifferentState(t *testing.T) {
	venueRepo := &mockVenueRepo{
		findWithCountFn: func(ctx context.Context, now time.Time) ([]repository.VenueLocationRow, error) {
			return []repository.VenueLocationRow{
				{ID: 1, Name: "Stage One", City: "Springfield", State: "IL"},
				{ID: 2, Name: "Stage Two", City: "Springfield", State: "MA"},
			}, nil
		},
	}

	svc := NewVenueService(venueRepo, &mockShowRepo{}, nil)
	areas, err := svc.GroupByLocation(context.Background())

	assert.NoError(t, err)
	assert.Len(t, areas, 2)
}

func TestVenueService_GroupByLocation_Empty(t *testing.T) {
	venueRepo := &mockVenueRepo{
		findWithCountFn: func(ctx context.Context, now time.Time) ([]repository.VenueLocationRow, error) {
			return nil, nil
		},
	}

	svc := NewVenueService(venueRepo, &mockShowRepo{}, nil)
	areas, err := svc.GroupByLocation(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, areas)
}

func TestVenueService_Search_PassesTerm(t *testing.T) {
	var gotTerm string
	venueRepo := &mockVenueRepo{
		searchFn: func(ctx context.Context, term string, now time.Time) ([]repository.VenueSummary, error) {
			gotTerm = term
			return []repository.VenueSummary{{ID: 1, Name: "The Musical Hop"}}, nil
		},
	}

	svc := NewVenueService(venueRepo, &mockShowRepo{}, nil)
	rows, err := svc.Search(context.Background(), "Hop")

	assert.NoError(t, err)
	assert.Equal(t, "Hop", gotTerm)
	assert.Len(t, rows, 1)
}

func TestVenueService_ListRecent(t *testing.T) {
	venueRepo := &mockVenueRepo{
		findRecentFn: func(ctx context.Context, limit int) ([]models.Venue, error) {
			assert.Equal(t, 10, limit)
			return []models.Venue{{ID: 12, Name: "Newest"}, {ID: 11, Name: "Older"}}, nil
		},
	}

	svc := NewVenueService(venueRepo, &mockShowRepo{}, nil)
	venues, err := svc.ListRecent(context.Background(), 10)

	assert.NoError(t, err)
	require.Len(t, venues, 2)
	assert.Equal(t, "Newest", venues[0].Name)
}
