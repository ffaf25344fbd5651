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

var ErrArtistNotFound = errors.New("artist not found")

type ArtistDetail struct {
	Artist        models.Artist
	PastShows     []models.Show
	UpcomingShows []models.Show
}

type ArtistService interface {
	ListAll(ctx context.Context) ([]models.Artist, error)
	ListRecent(ctx context.Context, limit int) ([]models.Artist, error)
	Search(ctx context.Context, term string) ([]repository.ArtistSummary, error)
	GetDetail(ctx context.Context, id uint) (*ArtistDetail, error)
	Create(ctx context.Context, artist *models.Artist) error
	Update(ctx context.Context, id uint, in *models.Artist) (*models.Artist, error)
	Delete(ctx context.Context, id uint) error
}

type artistService struct {
	artistRepo repository.ArtistRepository
	showRepo   repository.ShowRepository
	publisher  *rabbitmq.Publisher
}

func NewArtistService(artistRepo repository.ArtistRepository, showRepo repository.ShowRepository, publisher *rabbitmq.Publisher) ArtistService {
	return &artistService{artistRepo: artistRepo, showRepo: showRepo, publisher: publisher}
}

func (s *artistService) ListAll(ctx context.Context) ([]models.Artist, error) {
	return s.artistRepo.FindAll(ctx)
}

func (s *artistService) ListRecent(ctx context.Context, limit int) ([]models.Artist, error) {
	return s.artistRepo.FindRecent(ctx, limit)
}

func (s *artistService) Search(ctx context.Context, term string) ([]repository.ArtistSummary, error) {
	return s.artistRepo.SearchByName(ctx, term, time.Now())
}

func (s *artistService) GetDetail(ctx context.Context, id uint) (*ArtistDetail, error) {
	artist, err := s.artistRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, fmt.Errorf("get artist %d: %w", id, err)
	}

	shows, err := s.showRepo.FindByArtistID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shows for artist %d: %w", id, err)
	}

	detail := &ArtistDetail{Artist: *artist}
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

func (s *artistService) Create(ctx context.Context, artist *models.Artist) error {
	err := s.artistRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.artistRepo.Create(ctx, tx, artist)
	})
	if err != nil {
		return fmt.Errorf("create artist: %w", err)
	}

	s.publish("artist.created", artist)
	return nil
}

func (s *artistService) Update(ctx context.Context, id uint, in *models.Artist) (*models.Artist, error) {
	var updated *models.Artist

	err := s.artistRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		artist, err := s.artistRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArtistNotFound
			}
			return err
		}

		artist.Name = in.Name
		artist.City = in.City
		artist.State = in.State
		artist.Phone = in.Phone
		artist.ImageLink = in.ImageLink
		artist.FacebookLink = in.FacebookLink
		artist.Website = in.Website
		artist.Genres = in.Genres
		artist.SeekingVenue = in.SeekingVenue
		artist.SeekingDescription = in.SeekingDescription

		if err := s.artistRepo.Save(ctx, tx, artist); err != nil {
			return fmt.Errorf("update artist %d: %w", id, err)
		}
		updated = artist
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("artist.updated", updated)
	return updated, nil
}

func (s *artistService) Delete(ctx context.Context, id uint) error {
	err := s.artistRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.artistRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArtistNotFound
			}
			return err
		}

		if err := s.showRepo.DeleteByArtistID(ctx, tx, id); err != nil {
			return fmt.Errorf("delete shows for artist %d: %w", id, err)
		}
		if err := s.artistRepo.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("delete artist %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish("artist.deleted", map[string]uint{"id": id})
	return nil
}

func (s *artistService) publish(routingKey string, payload any) {
	if s.publisher != nil {
		_ = s.publisher.Publish(routingKey, payload)
	}
}
