package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"TRAVELPLANNER_BACK-END/internal/apperr"
	"TRAVELPLANNER_BACK-END/internal/models"
)

type CreateFavoriteInput struct {
	Destination   string
	Country       string
	Description   *string
	ImageURL      *string
	Tags          []string
	AISuggestions models.JSONMap
}

type FavoritePatch struct {
	Country       *string
	Description   *string
	ImageURL      *string
	Tags          *[]string
	AISuggestions *models.JSONMap
}

type FavoriteService struct {
	favorites FavoriteStore
	now       func() time.Time
}

func NewFavoriteService(favorites FavoriteStore) *FavoriteService {
	return &FavoriteService{favorites: favorites, now: time.Now}
}

// Create rejects a second favorite for the same destination. The check is not atomic.
func (s *FavoriteService) Create(ctx context.Context, userID uuid.UUID, in CreateFavoriteInput) (*models.Favorite, error) {
	destination := strings.TrimSpace(in.Destination)
	exists, err := s.CheckExists(ctx, userID, destination)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("destination already in favorites")
	}

	now := s.now()
	f := &models.Favorite{
		ID:            uuid.New(),
		UserID:        userID,
		Destination:   destination,
		Country:       strings.TrimSpace(in.Country),
		Description:   in.Description,
		ImageURL:      in.ImageURL,
		Tags:          models.StringList(in.Tags),
		AISuggestions: in.AISuggestions,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if f.Tags == nil {
		f.Tags = models.StringList{}
	}
	if err := s.favorites.Create(ctx, f); err != nil {
		return nil, storeErr(err, "favorite")
	}
	return f, nil
}

func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error) {
	list, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeErr(err, "favorites")
	}
	return list, nil
}

func (s *FavoriteService) CheckExists(ctx context.Context, userID uuid.UUID, destination string) (bool, error) {
	exists, err := s.favorites.Exists(ctx, userID, strings.TrimSpace(destination))
	if err != nil {
		return false, storeErr(err, "favorite")
	}
	return exists, nil
}

func (s *FavoriteService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Favorite, error) {
	f, err := s.favorites.GetByID(ctx, id, userID)
	if err != nil {
		return nil, storeErr(err, "favorite")
	}
	return f, nil
}

func (s *FavoriteService) Update(ctx context.Context, userID, id uuid.UUID, p FavoritePatch) (*models.Favorite, error) {
	f, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if p.Country != nil {
		f.Country = strings.TrimSpace(*p.Country)
	}
	if p.Description != nil {
		f.Description = p.Description
	}
	if p.ImageURL != nil {
		f.ImageURL = p.ImageURL
	}
	if p.Tags != nil {
		f.Tags = models.StringList(*p.Tags)
	}
	if p.AISuggestions != nil {
		f.AISuggestions = *p.AISuggestions
	}
	f.UpdatedAt = s.now()

	if err := s.favorites.Update(ctx, f); err != nil {
		return nil, storeErr(err, "favorite")
	}
	return f, nil
}

func (s *FavoriteService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.favorites.Delete(ctx, id, userID); err != nil {
		return storeErr(err, "favorite")
	}
	return nil
}
