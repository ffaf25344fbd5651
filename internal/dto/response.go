package dto

import (
	"github.com/gigbook/gigbook/internal/models"
	"github.com/gigbook/gigbook/internal/repository"
)

// ShowTimeLayout renders show times with microsecond precision and the
// timezone offset, e.g. 2035-04-01T20:00:00.000000+0000.
const ShowTimeLayout = "2006-01-02T15:04:05.000000-0700"

type ListingRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func ToVenueRefs(venues []models.Venue) []ListingRef {
	refs := make([]ListingRef, len(venues))
	for i, v := range venues {
		refs[i] = ListingRef{ID: v.ID, Name: v.Name}
	}
	return refs
}

func ToArtistRefs(artists []models.Artist) []ListingRef {
	refs := make([]ListingRef, len(artists))
	for i, a := range artists {
		refs[i] = ListingRef{ID: a.ID, Name: a.Name}
	}
	return refs
}

type HomeResponse struct {
	Venues  []ListingRef `json:"venues"`
	Artists []ListingRef `json:"artists"`
}

type VenueSearchResponse struct {
	Count int                       `json:"count"`
	Data  []repository.VenueSummary `json:"data"`
}

type ArtistSearchResponse struct {
	Count int                        `json:"count"`
	Data  []repository.ArtistSummary `json:"data"`
}

// ArtistShowEntry is one show on a venue page: the booked artist plus the
// start time.
type ArtistShowEntry struct {
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueShowEntry is one show on an artist page: the hosting venue plus the
// start time.
type VenueShowEntry struct {
	VenueID        uint   `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

type VenueDetailResponse struct {
	ID                 uint              `json:"id"`
	Name               string            `json:"name"`
	Genres             []string          `json:"genres"`
	Address            string            `json:"address"`
	City               string            `json:"city"`
	State              string            `json:"state"`
	Phone              string            `json:"phone"`
	Website            string            `json:"website"`
	FacebookLink       string            `json:"facebook_link"`
	SeekingTalent      bool              `json:"seeking_talent"`
	SeekingDescription string            `json:"seeking_description"`
	ImageLink          string            `json:"image_link"`
	PastShows          []ArtistShowEntry `json:"past_shows"`
	UpcomingShows      []ArtistShowEntry `json:"upcoming_shows"`
	PastShowsCount     int               `json:"past_shows_count"`
	UpcomingShowsCount int               `json:"upcoming_shows_count"`
}

func ToVenueDetailResponse(v *models.Venue, past, upcoming []models.Show) VenueDetailResponse {
	resp := VenueDetailResponse{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             v.Genres,
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.Website,
		FacebookLink:       v.FacebookLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		PastShows:          make([]ArtistShowEntry, 0, len(past)),
		UpcomingShows:      make([]ArtistShowEntry, 0, len(upcoming)),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	for _, s := range past {
		resp.PastShows = append(resp.PastShows, toArtistShowEntry(s))
	}
	for _, s := range upcoming {
		resp.UpcomingShows = append(resp.UpcomingShows, toArtistShowEntry(s))
	}
	return resp
}

type ArtistDetailResponse struct {
	ID                 uint             `json:"id"`
	Name               string           `json:"name"`
	Genres             []string         `json:"genres"`
	City               string           `json:"city"`
	State              string           `json:"state"`
	Phone              string           `json:"phone"`
	Website            string           `json:"website"`
	FacebookLink       string           `json:"facebook_link"`
	SeekingVenue       bool             `json:"seeking_venue"`
	SeekingDescription string           `json:"seeking_description"`
	ImageLink          string           `json:"image_link"`
	PastShows          []VenueShowEntry `json:"past_shows"`
	UpcomingShows      []VenueShowEntry `json:"upcoming_shows"`
	PastShowsCount     int              `json:"past_shows_count"`
	UpcomingShowsCount int              `json:"upcoming_shows_count"`
}

func ToArtistDetailResponse(a *models.Artist, past, upcoming []models.Show) ArtistDetailResponse {
	resp := ArtistDetailResponse{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             a.Genres,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		ImageLink:          a.ImageLink,
		PastShows:          make([]VenueShowEntry, 0, len(past)),
		UpcomingShows:      make([]VenueShowEntry, 0, len(upcoming)),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	for _, s := range past {
		resp.PastShows = append(resp.PastShows, toVenueShowEntry(s))
	}
	for _, s := range upcoming {
		resp.UpcomingShows = append(resp.UpcomingShows, toVenueShowEntry(s))
	}
	return resp
}

func toArtistShowEntry(s models.Show) ArtistShowEntry {
	entry := ArtistShowEntry{
		ArtistID:  s.ArtistID,
		StartTime: s.StartTime.Format(ShowTimeLayout),
	}
	if s.Artist != nil {
		entry.ArtistName = s.Artist.Name
		entry.ArtistImageLink = s.Artist.ImageLink
	}
	return entry
}

func toVenueShowEntry(s models.Show) VenueShowEntry {
	entry := VenueShowEntry{
		VenueID:   s.VenueID,
		StartTime: s.StartTime.Format(ShowTimeLayout),
	}
	if s.Venue != nil {
		entry.VenueName = s.Venue.Name
		entry.VenueImageLink = s.Venue.ImageLink
	}
	return entry
}

// ShowResponse is one row of the shows listing, joined with both
// counterparts.
type ShowResponse struct {
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

func ToShowResponse(s *models.Show) ShowResponse {
	resp := ShowResponse{
		VenueID:   s.VenueID,
		ArtistID:  s.ArtistID,
		StartTime: s.StartTime.Format(ShowTimeLayout),
	}
	if s.Venue != nil {
		resp.VenueName = s.Venue.Name
	}
	if s.Artist != nil {
		resp.ArtistName = s.Artist.Name
		resp.ArtistImageLink = s.Artist.ImageLink
	}
	return resp
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}
