package model

// RecipeSummary is one catalog search result. It carries just enough to
// render a result card and to create a saved-recipe record.
type RecipeSummary struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Image          string `json:"image"`
	ReadyInMinutes int    `json:"readyInMinutes"`
	Servings       int    `json:"servings"`
	Vegetarian     bool   `json:"vegetarian"`
	Vegan          bool   `json:"vegan"`
	GlutenFree     bool   `json:"glutenFree"`
}

// Ingredient is one ingredient line as the catalog provider wrote it.
type Ingredient struct {
	Original string `json:"original"`
}

// InstructionStep is one numbered cooking step.
type InstructionStep struct {
	Number int    `json:"number"`
	Step   string `json:"step"`
}

// Nutrient is one nutrition facts row.
type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// RecipeDetail is the full per-recipe payload fetched for a detail view.
// Summary holds provider HTML and must be sanitized before it is handed
// to a caller.
type RecipeDetail struct {
	RecipeSummary
	Summary              string            `json:"summary"`
	Ingredients          []Ingredient      `json:"ingredients"`
	Instructions         []InstructionStep `json:"instructions"`
	Nutrients            []Nutrient        `json:"nutrients"`
	PricePerServingCents int               `json:"pricePerServingCents"`
}

// SearchFilters narrows a catalog search. A zero-value field means
// unconstrained.
type SearchFilters struct {
	Cuisine             string
	Diet                string
	MealType            string
	MaxReadyTimeMinutes int
}

// SearchResult is the outcome of one search. Empty marks the
// "no recipes matched" state, which is a valid result and not an error.
type SearchResult struct {
	Results []RecipeSummary `json:"results"`
	Empty   bool            `json:"empty"`
}

// RecipeDetailView is what the detail endpoint renders: the recipe plus
// whether the current user has it saved. IsSaved is advisory and stays
// false when there is no session or the saved lookup failed.
type RecipeDetailView struct {
	RecipeDetail
	IsSaved bool `json:"isSaved"`
}
