package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/savorly/savorly-go/internal/catalog"
	"github.com/savorly/savorly-go/internal/middleware"
	"github.com/savorly/savorly-go/internal/model"
	"github.com/savorly/savorly-go/internal/service"
)

// RecipeHandler handles HTTP requests for catalog search, featured
// recipes and detail views.
type RecipeHandler struct {
	search        *service.SearchService
	detail        *service.DetailService
	featuredCount int
}

// NewRecipeHandler creates a new RecipeHandler. featuredCount is the
// number of featured recipes served when the request does not ask for
// a specific count.
func NewRecipeHandler(search *service.SearchService, detail *service.DetailService, featuredCount int) *RecipeHandler {
	return &RecipeHandler{search: search, detail: detail, featuredCount: featuredCount}
}

// HandleSearch handles GET /api/v1/recipes/search requests.
func (h *RecipeHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := model.SearchFilters{
		Cuisine:  q.Get("cuisine"),
		Diet:     q.Get("diet"),
		MealType: q.Get("mealType"),
	}
	if raw := q.Get("maxReadyTime"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse("maxReadyTime must be a positive integer"))
			return
		}
		filters.MaxReadyTimeMinutes = minutes
	}

	result, err := h.search.Search(r.Context(), q.Get("query"), filters)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleFeatured handles GET /api/v1/recipes/featured requests.
func (h *RecipeHandler) HandleFeatured(w http.ResponseWriter, r *http.Request) {
	count := h.featuredCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 25 {
			writeJSON(w, http.StatusBadRequest, errorResponse("count must be between 1 and 25"))
			return
		}
		count = n
	}

	recipes, err := h.search.Featured(r.Context(), count)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"recipes": recipes})
}

// HandleDetail handles GET /api/v1/recipes/{recipe_id} requests. The
// route accepts an optional session; with one, the response carries the
// user's saved status for the recipe.
func (h *RecipeHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	recipeID := chi.URLParam(r, "recipe_id")
	if _, err := strconv.ParseInt(recipeID, 10, 64); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid recipe id"))
		return
	}

	// Zero when unauthenticated; the detail service then skips the
	// saved lookup entirely.
	userID, _ := middleware.UserIDFromContext(r.Context())

	view, err := h.detail.Get(r.Context(), recipeID, userID)
	if err != nil {
		writeCatalogError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// writeCatalogError maps catalog error kinds to response statuses. A
// rejected provider credential is an operator problem, reported as a
// bad gateway rather than blaming the caller.
func writeCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrQuotaExceeded):
		writeJSON(w, http.StatusPaymentRequired, errorResponse("recipe catalog quota exceeded — please try again later"))
	case errors.Is(err, catalog.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse("recipe not found"))
	case errors.Is(err, catalog.ErrUnauthorized):
		writeJSON(w, http.StatusBadGateway, errorResponse("recipe catalog rejected our credentials"))
	case errors.Is(err, catalog.ErrUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse("recipe catalog is unavailable — please retry"))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}
