package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/savorly/savorly-go/internal/model"
	"github.com/savorly/savorly-go/internal/repository"
	"github.com/savorly/savorly-go/internal/sanitize"
)

// SavedLookup is the read-only saved-recipe surface the detail view
// uses for its "is saved" indicator.
type SavedLookup interface {
	Get(ctx context.Context, userID int64, recipeID string) (*model.SavedRecipe, error)
}

// DetailService composes the detail fetch with the advisory saved
// check into one view-ready object.
type DetailService struct {
	catalog Catalog
	saved   SavedLookup
}

// NewDetailService creates a new DetailService. saved may be nil when
// the personal collection store is unavailable; detail views then
// always render unsaved.
func NewDetailService(c Catalog, saved SavedLookup) *DetailService {
	return &DetailService{catalog: c, saved: saved}
}

// Get fetches one recipe and, when a session is present (userID != 0),
// whether the user has saved it. The catalog fetch is terminal; the
// saved lookup is advisory — on failure the view still renders, with
// IsSaved false and the failure logged.
func (s *DetailService) Get(ctx context.Context, recipeID string, userID int64) (model.RecipeDetailView, error) {
	detail, err := s.catalog.GetByID(ctx, recipeID)
	if err != nil {
		return model.RecipeDetailView{}, err
	}
	detail.Summary = sanitize.Summary(detail.Summary)

	view := model.RecipeDetailView{RecipeDetail: *detail}

	if userID != 0 && s.saved != nil {
		rec, err := s.saved.Get(ctx, userID, model.CanonicalRecipeID(detail.ID))
		switch {
		case err == nil:
			view.IsSaved = rec != nil
		case errors.Is(err, repository.ErrSavedRecipeNotFound):
			// not saved
		default:
			slog.Warn("saved-status lookup failed — rendering unsaved",
				"recipe_id", recipeID, "user_id", userID, "error", err)
		}
	}

	return view, nil
}
