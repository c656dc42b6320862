package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/savorly/savorly-go/internal/model"
	"github.com/savorly/savorly-go/internal/repository"
)

var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrRecipeRequired         = errors.New("recipe id is required")
	ErrSaveInFlight           = errors.New("a save for this recipe is already in progress")
	ErrPersistenceFailed      = errors.New("failed to update saved recipes")
)

// SavedStore is the write surface of the personal collection store.
type SavedStore interface {
	Put(ctx context.Context, rec *model.SavedRecipe) error
	Delete(ctx context.Context, userID int64, recipeID string) error
}

// SaveService toggles a recipe in and out of the user's collection.
// One toggle per (user, recipe) pair may be in flight at a time;
// overlapping invocations are rejected so a double-click cannot issue
// conflicting create/delete operations.
type SaveService struct {
	store SavedStore

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewSaveService creates a new SaveService.
func NewSaveService(store SavedStore) *SaveService {
	return &SaveService{
		store:    store,
		inFlight: make(map[string]struct{}),
	}
}

// Toggle saves the recipe when currentlySaved is false and removes it
// when true, returning the new saved state. On any store failure the
// returned state equals currentlySaved — the caller rolls back to what
// it believed before.
func (s *SaveService) Toggle(ctx context.Context, userID int64, recipe model.RecipeSummary, currentlySaved bool) (bool, error) {
	if userID == 0 {
		return currentlySaved, ErrAuthenticationRequired
	}
	if recipe.ID == 0 {
		return currentlySaved, ErrRecipeRequired
	}

	recipeID := model.CanonicalRecipeID(recipe.ID)
	key := strconv.FormatInt(userID, 10) + "/" + recipeID
	if !s.acquire(key) {
		return currentlySaved, ErrSaveInFlight
	}
	defer s.release(key)

	if currentlySaved {
		err := s.store.Delete(ctx, userID, recipeID)
		// A missing record means someone already removed it; the
		// desired end state holds either way.
		if err != nil && !errors.Is(err, repository.ErrSavedRecipeNotFound) {
			return currentlySaved, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
		}
		return false, nil
	}

	rec := &model.SavedRecipe{
		UserID:         userID,
		RecipeID:       recipeID,
		Title:          recipe.Title,
		Image:          recipe.Image,
		ReadyInMinutes: recipe.ReadyInMinutes,
		Servings:       recipe.Servings,
		SavedAt:        time.Now().UTC(),
	}
	if err := s.store.Put(ctx, rec); err != nil {
		return currentlySaved, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	return true, nil
}

func (s *SaveService) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[key]; busy {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

func (s *SaveService) release(key string) {
	s.mu.Lock()
	delete(s.inFlight, key)
	s.mu.Unlock()
}
