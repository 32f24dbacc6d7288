package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"TRAVELPLANNER_BACK-END/internal/models"
)

// UserPatch holds the profile fields a user may change. Nil fields are kept.
type UserPatch struct {
	Name        *string
	Phone       *string
	Preferences *models.Preferences
}

type UserService struct {
	users UserStore
	now   func() time.Time
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users, now: time.Now}
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "user")
	}
	return u, nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, p UserPatch) (*models.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Name != nil {
		u.Name = strings.TrimSpace(*p.Name)
	}
	if p.Phone != nil {
		u.Phone = p.Phone
	}
	if p.Preferences != nil {
		u.Preferences = *p.Preferences
	}
	u.UpdatedAt = s.now()

	if err := s.users.Update(ctx, u); err != nil {
		return nil, storeErr(err, "user")
	}
	return u, nil
}
