package repository

import (
	"testing"

	"github.com/gigbook/gigbook/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Venue{}, &models.Artist{}, &models.Show{}))
	return db
}

func seedVenue(t *testing.T, db *gorm.DB, name, city, state string) *models.Venue {
	t.Helper()

	venue := &models.Venue{
		Name:    name,
		City:    city,
		State:   state,
		Address: "1015 Folsom Street",
		Phone:   "123-123-1234",
		Genres:  models.GenreList{"Jazz"},
	}
	require.NoError(t, db.Create(venue).Error)
	return venue
}

func seedArtist(t *testing.T, db *gorm.DB, name string) *models.Artist {
	t.Helper()

	artist := &models.Artist{
		Name:   name,
		City:   "San Francisco",
		State:  "CA",
		Phone:  "326-123-5000",
		Genres: models.GenreList{"Rock n Roll"},
	}
	require.NoError(t, db.Create(artist).Error)
	return artist
}
