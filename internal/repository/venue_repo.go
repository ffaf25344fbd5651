package repository

import (
	"context"
	"strings"
	"time"

	"github.com/gigbook/gigbook/internal/models"
	"gorm.io/gorm"
)

// VenueSummary is a venue row shaped for search results and location
// listings: identity plus the number of shows starting at or after the
// reference time the query ran with.
type VenueSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

// VenueLocationRow carries the grouping key alongside the summary so the
// service can bucket venues by (city, state) without extra queries.
type VenueLocationRow struct {
	ID               uint
	Name             string
	City             string
	State            string
	NumUpcomingShows int64
}

type VenueRepository interface {
	Create(ctx context.Context, tx *gorm.DB, venue *models.Venue) error
	Save(ctx context.Context, tx *gorm.DB, venue *models.Venue) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Venue, error)
	FindAll(ctx context.Context) ([]models.Venue, error)
	FindRecent(ctx context.Context, limit int) ([]models.Venue, error)
	FindAllWithUpcomingCounts(ctx context.Context, now time.Time) ([]VenueLocationRow, error)
	SearchByName(ctx context.Context, term string, now time.Time) ([]VenueSummary, error)
	Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	GetDB() *gorm.DB
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *venueRepository) Create(ctx context.Context, tx *gorm.DB, venue *models.Venue) error {
	return tx.WithContext(ctx).Create(venue).Error
}

func (r *venueRepository) Save(ctx context.Context, tx *gorm.DB, venue *models.Venue) error {
	return tx.WithContext(ctx).Save(venue).Error
}

func (r *venueRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&models.Venue{}, id).Error
}

func (r *venueRepository) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.WithContext(ctx).First(&venue, id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) FindAll(ctx context.Context) ([]models.Venue, error) {
	var venues []models.Venue
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) FindRecent(ctx context.Context, limit int) ([]models.Venue, error) {
	var venues []models.Venue
	if err := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

// FindAllWithUpcomingCounts returns every venue with its upcoming-show count
// in a single aggregate join, so listing N venues never costs N count queries.
func (r *venueRepository) FindAllWithUpcomingCounts(ctx context.Context, now time.Time) ([]VenueLocationRow, error) {
	var rows []VenueLocationRow
	err := r.db.WithContext(ctx).
		Model(&models.Venue{}).
		Select("venues.id, venues.name, venues.city, venues.state, COUNT(shows.id) AS num_upcoming_shows").
		Joins("LEFT JOIN shows ON shows.venue_id = venues.id AND shows.start_time >= ?", now).
		Group("venues.id, venues.name, venues.city, venues.state").
		Order("venues.city, venues.state, venues.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// SearchByName matches the search term case-insensitively against the name
// column only. An empty term matches every venue.
func (r *venueRepository) SearchByName(ctx context.Context, term string, now time.Time) ([]VenueSummary, error) {
	var rows []VenueSummary
	err := r.db.WithContext(ctx).
		Model(&models.Venue{}).
		Select("venues.id, venues.name, COUNT(shows.id) AS num_upcoming_shows").
		Joins("LEFT JOIN shows ON shows.venue_id = venues.id AND shows.start_time >= ?", now).
		Where("LOWER(venues.name) LIKE ?", "%"+strings.ToLower(term)+"%").
		Group("venues.id, venues.name").
		Order("venues.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *venueRepository) Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Venue{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
