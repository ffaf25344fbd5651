package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gigbook/gigbook/internal/models"
	"github.com/gigbook/gigbook/internal/repository"
	"github.com/gigbook/gigbook/pkg/rabbitmq"
	"gorm.io/gorm"
)

var ErrVenueNotFound = errors.New("venue not found")

// VenueArea groups the venues of one (city, state) pair.
type VenueArea struct {
	City   string                    `json:"city"`
	State  string                    `json:"state"`
	Venues []repository.VenueSummary `json:"venues"`
}

// VenueDetail carries a venue with its shows partitioned around a single
// reference instant. Counts are the partition lengths, so the numbers can
// never drift from the lists they describe.
type VenueDetail struct {
	Venue         models.Venue
	PastShows     []models.Show
	UpcomingShows []models.Show
}

type VenueService interface {
	ListAll(ctx context.Context) ([]models.Venue, error)
	ListRecent(ctx context.Context, limit int) ([]models.Venue, error)
	GroupByLocation(ctx context.Context) ([]VenueArea, error)
	Search(ctx context.Context, term string) ([]repository.VenueSummary, error)
	GetDetail(ctx context.Context, id uint) (*VenueDetail, error)
	Create(ctx context.Context, venue *models.Venue) error
	Update(ctx context.Context, id uint, in *models.Venue) (*models.Venue, error)
	Delete(ctx context.Context, id uint) error
}

type venueService struct {
	venueRepo repository.VenueRepository
	showRepo  repository.ShowRepository
	publisher *rabbitmq.Publisher
}

func NewVenueService(venueRepo repository.VenueRepository, showRepo repository.ShowRepository, publisher *rabbitmq.Publisher) VenueService {
	return &venueService{venueRepo: venueRepo, showRepo: showRepo, publisher: publisher}
}

func (s *venueService) ListAll(ctx context.Context) ([]models.Venue, error) {
	return s.venueRepo.FindAll(ctx)
}

func (s *venueService) ListRecent(ctx context.Context, limit int) ([]models.Venue, error) {
	return s.venueRepo.FindRecent(ctx, limit)
}

func (s *venueService) GroupByLocation(ctx context.Context) ([]VenueArea, error) {
	rows, err := s.venueRepo.FindAllWithUpcomingCounts(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("group venues by location: %w", err)
	}

	var areas []VenueArea
	for _, row := range rows {
		n := len(areas)
		if n == 0 || areas[n-1].City != row.City || areas[n-1].State != row.State {
			areas = append(areas, VenueArea{City: row.City, State: row.State})
			n++
		}
		areas[n-1].Venues = append(areas[n-1].Venues, repository.VenueSummary{
			ID:               row.ID,
			Name:             row.Name,
			NumUpcomingShows: row.NumUpcomingShows,
		})
	}
	return areas, nil
}

func (s *venueService) Search(ctx context.Context, term string) ([]repository.VenueSummary, error) {
	return s.venueRepo.SearchByName(ctx, term, time.Now())
}

func (s *venueService) GetDetail(ctx context.Context, id uint) (*VenueDetail, error) {
	venue, err := s.venueRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("get venue %d: %w", id, err)
	}

	shows, err := s.showRepo.FindByVenueID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shows for venue %d: %w", id, err)
	}

	detail := &VenueDetail{Venue: *venue}
	now := time.Now()
	for _, show := range shows {
		if show.StartTime.Before(now) {
			detail.PastShows = append(detail.PastShows, show)
		} else {
			detail.UpcomingShows = append(detail.UpcomingShows, show)
		}
	}
	return detail, nil
}

func (s *venueService) Create(ctx context.Context, venue *models.Venue) error {
	err := s.venueRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.venueRepo.Create(ctx, tx, venue)
	})
	if err != nil {
		return fmt.Errorf("create venue: %w", err)
	}

	s.publish("venue.created", venue)
	return nil
}

// Update is a full-record replace: every editable field is overwritten from
// the incoming value, absent fields included.
func (s *venueService) Update(ctx context.Context, id uint, in *models.Venue) (*models.Venue, error) {
	var updated *models.Venue

	err := s.venueRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		venue, err := s.venueRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVenueNotFound
			}
			return err
		}

		venue.Name = in.Name
		venue.City = in.City
		venue.State = in.State
		venue.Address = in.Address
		venue.Phone = in.Phone
		venue.ImageLink = in.ImageLink
		venue.FacebookLink = in.FacebookLink
		venue.Website = in.Website
		venue.Genres = in.Genres
		venue.SeekingTalent = in.SeekingTalent
		venue.SeekingDescription = in.SeekingDescription

		if err := s.venueRepo.Save(ctx, tx, venue); err != nil {
			return fmt.Errorf("update venue %d: %w", id, err)
		}
		updated = venue
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("venue.updated", updated)
	return updated, nil
}

// Delete removes the venue and all shows it owns in one transaction.
func (s *venueService) Delete(ctx context.Context, id uint) error {
	err := s.venueRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.venueRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVenueNotFound
			}
			return err
		}

		if err := s.showRepo.DeleteByVenueID(ctx, tx, id); err != nil {
			return fmt.Errorf("delete shows for venue %d: %w", id, err)
		}
		if err := s.venueRepo.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("delete venue %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish("venue.deleted", map[string]uint{"id": id})
	return nil
}

func (s *venueService) publish(routingKey string, payload any) {
	if s.publisher != nil {
		_ = s.publisher.Publish(routingKey, payload)
	}
}
