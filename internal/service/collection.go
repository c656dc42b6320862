package service

import (
	"context"
	"errors"

	"github.com/savorly/savorly-go/internal/model"
	"github.com/savorly/savorly-go/internal/repository"
)

var ErrNotSaved = errors.New("recipe is not in the saved collection")

// CollectionStore is the listing/removal surface of the personal
// collection store.
type CollectionStore interface {
	ListByUser(ctx context.Context, userID int64) ([]model.SavedRecipe, error)
	Delete(ctx context.Context, userID int64, recipeID string) error
}

// CollectionService serves the saved-recipes page.
type CollectionService struct {
	store CollectionStore
}

// NewCollectionService creates a new CollectionService.
func NewCollectionService(store CollectionStore) *CollectionService {
	return &CollectionService{store: store}
}

// List returns the user's saved recipes, most recently saved first.
func (s *CollectionService) List(ctx context.Context, userID int64) ([]model.SavedRecipeResponse, error) {
	if userID == 0 {
		return nil, ErrAuthenticationRequired
	}

	recs, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]model.SavedRecipeResponse, len(recs))
	for i, rec := range recs {
		result[i] = model.SavedRecipeResponse{
			RecipeID:       rec.RecipeID,
			Title:          rec.Title,
			Image:          rec.Image,
			ReadyInMinutes: rec.ReadyInMinutes,
			Servings:       rec.Servings,
			SavedAt:        rec.SavedAt,
		}
	}
	return result, nil
}

// Remove deletes one recipe from the user's collection.
func (s *CollectionService) Remove(ctx context.Context, userID int64, recipeID string) error {
	if userID == 0 {
		return ErrAuthenticationRequired
	}

	err := s.store.Delete(ctx, userID, recipeID)
	if errors.Is(err, repository.ErrSavedRecipeNotFound) {
		return ErrNotSaved
	}
	return err
}
