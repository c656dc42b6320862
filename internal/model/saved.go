package model

import (
	"strconv"
	"time"
)

// SavedRecipe represents one saved-recipe record in the database. A
// user has at most one record per recipe; saving again after a remove
// produces a fresh SavedAt.
type SavedRecipe struct {
	ID             int64
	UserID         int64
	RecipeID       string
	Title          string
	Image          string
	ReadyInMinutes int
	Servings       int
	SavedAt        time.Time
}

// SavedRecipeResponse represents a saved recipe in API responses.
type SavedRecipeResponse struct {
	RecipeID       string    `json:"recipe_id"`
	Title          string    `json:"title"`
	Image          string    `json:"image"`
	ReadyInMinutes int       `json:"ready_in_minutes"`
	Servings       int       `json:"servings"`
	SavedAt        time.Time `json:"saved_at"`
}

// ToggleSaveRequest represents a save/unsave request for one recipe.
type ToggleSaveRequest struct {
	Recipe         RecipeSummary `json:"recipe"`
	CurrentlySaved bool          `json:"currently_saved"`
}

// ToggleSaveResponse reports the saved state after a toggle.
type ToggleSaveResponse struct {
	Saved bool `json:"saved"`
}

// CanonicalRecipeID converts a catalog recipe id to the string form
// used as the saved-recipe natural key.
func CanonicalRecipeID(id int64) string {
	return strconv.FormatInt(id, 10)
}
