package repository

import (
	"context"

	"github.com/gigbook/gigbook/internal/models"
	"gorm.io/gorm"
)

type ShowRepository interface {
	Create(ctx context.Context, tx *gorm.DB, show *models.Show) error
	FindAll(ctx context.Context) ([]models.Show, error)
	FindByVenueID(ctx context.Context, venueID uint) ([]models.Show, error)
	FindByArtistID(ctx context.Context, artistID uint) ([]models.Show, error)
	DeleteByVenueID(ctx context.Context, tx *gorm.DB, venueID uint) error
	DeleteByArtistID(ctx context.Context, tx *gorm.DB, artistID uint) error
	GetDB() *gorm.DB
}

type showRepository struct {
	db *gorm.DB
}

func NewShowRepository(db *gorm.DB) ShowRepository {
	return &showRepository{db: db}
}

func (r *showRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *showRepository) Create(ctx context.Context, tx *gorm.DB, show *models.Show) error {
	return tx.WithContext(ctx).Create(show).Error
}

// FindAll preloads both counterparts in batched queries so callers never
// fall back to per-row lookups.
func (r *showRepository) FindAll(ctx context.Context) ([]models.Show, error) {
	var shows []models.Show
	err := r.db.WithContext(ctx).
		Preload("Artist").
		Preload("Venue").
		Order("id ASC").
		Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) FindByVenueID(ctx context.Context, venueID uint) ([]models.Show, error) {
	var shows []models.Show
	err := r.db.WithContext(ctx).
		Preload("Artist").
		Where("venue_id = ?", venueID).
		Order("start_time ASC").
		Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) FindByArtistID(ctx context.Context, artistID uint) ([]models.Show, error) {
	var shows []models.Show
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Where("artist_id = ?", artistID).
		Order("start_time ASC").
		Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) DeleteByVenueID(ctx context.Context, tx *gorm.DB, venueID uint) error {
	return tx.WithContext(ctx).Where("venue_id = ?", venueID).Delete(&models.Show{}).Error
}

func (r *showRepository) DeleteByArtistID(ctx context.Context, tx *gorm.DB, artistID uint) error {
	return tx.WithContext(ctx).Where("artist_id = ?", artistID).Delete(&models.Show{}).Error
}
