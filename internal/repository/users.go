package repository

import (
	"context"

	"github.com/google/uuid"

	"TRAVELPLANNER_BACK-END/internal/models"
)

const userColumns = `id, email, password_hash, name, phone, preferences, is_active, created_at, updated_at`

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID, u.Email, u.PasswordHash, u.Name, u.Phone, u.Preferences, u.IsActive, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return wrapErr(err)
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) Update(ctx context.Context, u *models.User) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET name = $2, phone = $3, preferences = $4, updated_at = $5 WHERE id = $1`,
		u.ID, u.Name, u.Phone, u.Preferences, u.UpdatedAt)
	if err != nil {
		return wrapErr(err)
	}
	return expectAffected(res)
}

func scanUser(row scanner) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Phone,
		&u.Preferences, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, wrapErr(err)
	}
	return u, nil
}
