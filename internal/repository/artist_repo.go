package repository

import (
	"context"
	"strings"
	"time"

	"github.com/gigbook/gigbook/internal/models"
	"gorm.io/gorm"
)

type ArtistSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

type ArtistRepository interface {
	Create(ctx context.Context, tx *gorm.DB, artist *models.Artist) error
	Save(ctx context.Context, tx *gorm.DB, artist *models.Artist) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Artist, error)
	FindAll(ctx context.Context) ([]models.Artist, error)
	FindRecent(ctx context.Context, limit int) ([]models.Artist, error)
	SearchByName(ctx context.Context, term string, now time.Time) ([]ArtistSummary, error)
	Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	GetDB() *gorm.DB
}

type artistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *artistRepository) Create(ctx context.Context, tx *gorm.DB, artist *models.Artist) error {
	return tx.WithContext(ctx).Create(artist).Error
}

func (r *artistRepository) Save(ctx context.Context, tx *gorm.DB, artist *models.Artist) error {
	return tx.WithContext(ctx).Save(artist).Error
}

func (r *artistRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return tx.WithContext(ctx).Delete(&models.Artist{}, id).Error
}

func (r *artistRepository) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.WithContext(ctx).First(&artist, id).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) FindAll(ctx context.Context) ([]models.Artist, error) {
	var artists []models.Artist
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *artistRepository) FindRecent(ctx context.Context, limit int) ([]models.Artist, error) {
	var artists []models.Artist
	if err := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *artistRepository) SearchByName(ctx context.Context, term string, now time.Time) ([]ArtistSummary, error) {
	var rows []ArtistSummary
	err := r.db.WithContext(ctx).
		Model(&models.Artist{}).
		Select("artists.id, artists.name, COUNT(shows.id) AS num_upcoming_shows").
		Joins("LEFT JOIN shows ON shows.artist_id = artists.id AND shows.start_time >= ?", now).
		Where("LOWER(artists.name) LIKE ?", "%"+strings.ToLower(term)+"%").
		Group("artists.id, artists.name").
		Order("artists.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *artistRepository) Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Artist{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
