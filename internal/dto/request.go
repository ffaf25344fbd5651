package dto

import (
	"time"

	"github.com/gigbook/gigbook/internal/models"
)

type VenueForm struct {
	Name               string   `json:"name" form:"name" validate:"required"`
	City               string   `json:"city" form:"city" validate:"required"`
	State              string   `json:"state" form:"state" validate:"required"`
	Address            string   `json:"address" form:"address" validate:"required"`
	Phone              string   `json:"phone" form:"phone" validate:"required,phone"`
	Genres             []string `json:"genres" form:"genres" validate:"required,min=1,dive,required"`
	ImageLink          string   `json:"image_link" form:"image_link" validate:"omitempty,url"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link" validate:"omitempty,url"`
	Website            string   `json:"website" form:"website" validate:"omitempty,url"`
	SeekingTalent      bool     `json:"seeking_talent" form:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description"`
}

func (f *VenueForm) ToModel() *models.Venue {
	return &models.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		Genres:             models.GenreList(f.Genres),
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

type ArtistForm struct {
	Name               string   `json:"name" form:"name" validate:"required"`
	City               string   `json:"city" form:"city" validate:"required"`
	State              string   `json:"state" form:"state" validate:"required"`
	Phone              string   `json:"phone" form:"phone" validate:"required,phone"`
	Genres             []string `json:"genres" form:"genres" validate:"required,min=1,dive,required"`
	ImageLink          string   `json:"image_link" form:"image_link" validate:"omitempty,url"`
	FacebookLink       string   `json:"facebook_link" form:"facebook_link" validate:"omitempty,url"`
	Website            string   `json:"website" form:"website" validate:"omitempty,url"`
	SeekingVenue       bool     `json:"seeking_venue" form:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" form:"seeking_description"`
}

func (f *ArtistForm) ToModel() *models.Artist {
	return &models.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		Genres:             models.GenreList(f.Genres),
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}

// ShowForm requires an explicit start time; the default-to-now behavior
// only applies when the column is left unset, never to a submitted form.
type ShowForm struct {
	ArtistID  uint      `json:"artist_id" form:"artist_id" validate:"required"`
	VenueID   uint      `json:"venue_id" form:"venue_id" validate:"required"`
	StartTime time.Time `json:"start_time" form:"start_time" validate:"required"`
}

func (f *ShowForm) ToModel() *models.Show {
	return &models.Show{
		ArtistID:  f.ArtistID,
		VenueID:   f.VenueID,
		StartTime: f.StartTime,
	}
}

type SearchRequest struct {
	SearchTerm string `json:"search_term" form:"search_term"`
}
