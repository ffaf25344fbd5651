package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gigbook/gigbook/internal/models"
	"github.com/gigbook/gigbook/internal/repository"
	"github.com/gigbook/gigbook/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrShowArtistNotFound = errors.New("artist for show does not exist")
	ErrShowVenueNotFound  = errors.New("venue for show does not exist")
)

type ShowService interface {
	List(ctx context.Context) ([]models.Show, error)
	Create(ctx context.Context, show *models.Show) error
}

type showService struct {
	showRepo   repository.ShowRepository
	artistRepo repository.ArtistRepository
	venueRepo  repository.VenueRepository
	publisher  *rabbitmq.Publisher
}

func NewShowService(showRepo repository.ShowRepository, artistRepo repository.ArtistRepository, venueRepo repository.VenueRepository, publisher *rabbitmq.Publisher) ShowService {
	return &showService{showRepo: showRepo, artistRepo: artistRepo, venueRepo: venueRepo, publisher: publisher}
}

func (s *showService) List(ctx context.Context) ([]models.Show, error) {
	return s.showRepo.FindAll(ctx)
}

// Create inserts a show after checking each foreign key against its own
// entity table. Either reference missing means no write at all.
func (s *showService) Create(ctx context.Context, show *models.Show) error {
	err := s.showRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := s.artistRepo.Exists(ctx, tx, show.ArtistID)
		if err != nil {
			return fmt.Errorf("check artist %d: %w", show.ArtistID, err)
		}
		if !ok {
			return ErrShowArtistNotFound
		}

		ok, err = s.venueRepo.Exists(ctx, tx, show.VenueID)
		if err != nil {
			return fmt.Errorf("check venue %d: %w", show.VenueID, err)
		}
		if !ok {
			return ErrShowVenueNotFound
		}

		if err := s.showRepo.Create(ctx, tx, show); err != nil {
			return fmt.Errorf("create show: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("show.created", show)
	}
	return nil
}
