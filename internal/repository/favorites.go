package repository

import (
	"context"

	"github.com/google/uuid"

	"TRAVELPLANNER_BACK-END/internal/models"
)

const favoriteColumns = `id, user_id, destination, country, description, image_url, tags,
	ai_suggestions, created_at, updated_at`

type FavoriteRepository struct {
	db DBTX
}

func NewFavoriteRepository(db DBTX) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Create(ctx context.Context, f *models.Favorite) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO favorites (`+favoriteColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		f.ID, f.UserID, f.Destination, f.Country, f.Description, f.ImageURL, f.Tags,
		f.AISuggestions, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return wrapErr(err)
	}
	return nil
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+favoriteColumns+` FROM favorites WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	favorites := []models.Favorite{}
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err)
	}
	return favorites, nil
}

func (r *FavoriteRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Favorite, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+favoriteColumns+` FROM favorites WHERE id = $1 AND user_id = $2`, id, userID)
	return scanFavorite(row)
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID uuid.UUID, destination string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND destination = $2)`,
		userID, destination).Scan(&exists)
	if err != nil {
		return false, wrapErr(err)
	}
	return exists, nil
}

func (r *FavoriteRepository) Update(ctx context.Context, f *models.Favorite) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE favorites SET destination = $3, country = $4, description = $5, image_url = $6,
		        tags = $7, ai_suggestions = $8, updated_at = $9
		  WHERE id = $1 AND user_id = $2`,
		f.ID, f.UserID, f.Destination, f.Country, f.Description, f.ImageURL, f.Tags, f.AISuggestions, f.UpdatedAt)
	if err != nil {
		return wrapErr(err)
	}
	return expectAffected(res)
}

func (r *FavoriteRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return wrapErr(err)
	}
	return expectAffected(res)
}

func scanFavorite(row scanner) (*models.Favorite, error) {
	f := &models.Favorite{}
	err := row.Scan(&f.ID, &f.UserID, &f.Destination, &f.Country, &f.Description, &f.ImageURL,
		&f.Tags, &f.AISuggestions, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, wrapErr(err)
	}
	return f, nil
}
