package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/savorly/savorly-go/internal/model"
)

var ErrSavedRecipeNotFound = errors.New("saved recipe not found")

// SavedRecipeRepository handles saved-recipe persistence. Every query
// is scoped by user_id; the (user_id, recipe_id) pair is the natural
// key, enforced by a unique index.
type SavedRecipeRepository struct {
	db *sql.DB
}

// NewSavedRecipeRepository creates a new SavedRecipeRepository.
func NewSavedRecipeRepository(db *sql.DB) *SavedRecipeRepository {
	return &SavedRecipeRepository{db: db}
}

// Put creates the saved-recipe record for (user_id, recipe_id). A
// concurrent duplicate save collapses onto the existing row, refreshing
// saved_at, so at most one record per pair can ever exist.
func (r *SavedRecipeRepository) Put(ctx context.Context, rec *model.SavedRecipe) error {
	query := `INSERT INTO saved_recipes (user_id, recipe_id, title, image, ready_in_minutes, servings, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			title            = VALUES(title),
			image            = VALUES(image),
			ready_in_minutes = VALUES(ready_in_minutes),
			servings         = VALUES(servings),
			saved_at         = VALUES(saved_at)`

	_, err := r.db.ExecContext(ctx, query,
		rec.UserID, rec.RecipeID, rec.Title, rec.Image,
		rec.ReadyInMinutes, rec.Servings, rec.SavedAt,
	)
	return err
}

// Get retrieves one saved-recipe record by its natural key.
func (r *SavedRecipeRepository) Get(ctx context.Context, userID int64, recipeID string) (*model.SavedRecipe, error) {
	query := `SELECT id, user_id, recipe_id, title, image, ready_in_minutes, servings, saved_at
		FROM saved_recipes WHERE user_id = ? AND recipe_id = ?`

	rec := &model.SavedRecipe{}
	err := r.db.QueryRowContext(ctx, query, userID, recipeID).Scan(
		&rec.ID, &rec.UserID, &rec.RecipeID, &rec.Title, &rec.Image,
		&rec.ReadyInMinutes, &rec.Servings, &rec.SavedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSavedRecipeNotFound
		}
		return nil, err
	}

	return rec, nil
}

// ListByUser retrieves all saved recipes for a user, most recently
// saved first.
func (r *SavedRecipeRepository) ListByUser(ctx context.Context, userID int64) ([]model.SavedRecipe, error) {
	query := `SELECT id, user_id, recipe_id, title, image, ready_in_minutes, servings, saved_at
		FROM saved_recipes WHERE user_id = ? ORDER BY saved_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []model.SavedRecipe
	for rows.Next() {
		var rec model.SavedRecipe
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.RecipeID, &rec.Title, &rec.Image,
			&rec.ReadyInMinutes, &rec.Servings, &rec.SavedAt,
		); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// Delete removes one saved-recipe record by its natural key.
func (r *SavedRecipeRepository) Delete(ctx context.Context, userID int64, recipeID string) error {
	query := `DELETE FROM saved_recipes WHERE user_id = ? AND recipe_id = ?`

	result, err := r.db.ExecContext(ctx, query, userID, recipeID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrSavedRecipeNotFound
	}

	return nil
}
