package models

import (
	"time"

	"gorm.io/gorm"
)

// Show joins one Artist to one Venue at a start time. Shows are created
// once and never edited.
type Show struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StartTime time.Time `gorm:"not null" json:"start_time"`
	ArtistID  uint      `gorm:"not null" json:"artist_id"`
	VenueID   uint      `gorm:"not null" json:"venue_id"`

	Artist *Artist `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE" json:"artist,omitempty"`
	Venue  *Venue  `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE" json:"venue,omitempty"`
}

func (s *Show) BeforeCreate(tx *gorm.DB) error {
	if s.StartTime.IsZero() {
		s.StartTime = time.Now()
	}
	return nil
}
