// Package catalog wraps the third-party recipe provider's HTTP API.
// Every outbound call carries the configured API key; callers never
// handle credentials. Errors are mapped to the small typed set in
// errors.go and no retries happen here — retry is orchestrator policy.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/savorly/savorly-go/internal/model"
)

// DefaultBaseURL is the production catalog provider endpoint.
const DefaultBaseURL = "https://api.spoonacular.com"

// defaultPageSize caps one search page. The provider exposes further
// pages via an offset parameter, but this client deliberately serves a
// single page.
const defaultPageSize = 20

// Option configures the Client.
type Option func(*Client)

// WithHTTPTimeout sets the HTTP client timeout.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithPageSize sets the number of results requested per search.
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// Client talks to the recipe catalog provider.
type Client struct {
	base     string
	apiKey   string
	pageSize int
	http     *http.Client
}

// New creates a catalog client. base may be empty, in which case the
// production endpoint is used.
func New(base, apiKey string, opts ...Option) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	c := &Client{
		base:     strings.TrimRight(base, "/"),
		apiKey:   apiKey,
		pageSize: defaultPageSize,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// filterParams translates SearchFilters into the provider's query
// parameter names. The mapping is static; note mealType becomes "type".
func filterParams(f model.SearchFilters) url.Values {
	v := url.Values{}
	if f.Cuisine != "" {
		v.Set("cuisine", f.Cuisine)
	}
	if f.Diet != "" {
		v.Set("diet", f.Diet)
	}
	if f.MealType != "" {
		v.Set("type", f.MealType)
	}
	if f.MaxReadyTimeMinutes > 0 {
		v.Set("maxReadyTime", strconv.Itoa(f.MaxReadyTimeMinutes))
	}
	return v
}

// Search performs one catalog search and returns at most one page of
// summaries. A zero-length result is not an error.
func (c *Client) Search(ctx context.Context, query string, filters model.SearchFilters) ([]model.RecipeSummary, error) {
	params := filterParams(filters)
	params.Set("query", query)
	params.Set("number", strconv.Itoa(c.pageSize))
	params.Set("instructionsRequired", "true")
	params.Set("fillIngredients", "true")
	params.Set("addRecipeInformation", "true")

	var envelope struct {
		Results      []model.RecipeSummary `json:"results"`
		TotalResults int                   `json:"totalResults"`
	}
	if err := c.get(ctx, "/recipes/complexSearch", params, &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}

// GetByID fetches the full detail payload for one recipe.
func (c *Client) GetByID(ctx context.Context, id string) (*model.RecipeDetail, error) {
	var raw struct {
		model.RecipeSummary
		Summary             string             `json:"summary"`
		PricePerServing     float64            `json:"pricePerServing"`
		ExtendedIngredients []model.Ingredient `json:"extendedIngredients"`
		AnalyzedInstructions []struct {
			Steps []model.InstructionStep `json:"steps"`
		} `json:"analyzedInstructions"`
		Nutrition struct {
			Nutrients []model.Nutrient `json:"nutrients"`
		} `json:"nutrition"`
	}
	path := "/recipes/" + url.PathEscape(id) + "/information"
	if err := c.get(ctx, path, url.Values{"includeNutrition": {"true"}}, &raw); err != nil {
		return nil, err
	}

	detail := &model.RecipeDetail{
		RecipeSummary:        raw.RecipeSummary,
		Summary:              raw.Summary,
		Ingredients:          raw.ExtendedIngredients,
		Nutrients:            raw.Nutrition.Nutrients,
		PricePerServingCents: int(math.Round(raw.PricePerServing)),
	}
	if len(raw.AnalyzedInstructions) > 0 {
		detail.Instructions = raw.AnalyzedInstructions[0].Steps
	}
	return detail, nil
}

// Random returns count random recipes, used for the featured section.
func (c *Client) Random(ctx context.Context, count int) ([]model.RecipeSummary, error) {
	if count <= 0 {
		count = 6
	}
	var envelope struct {
		Recipes []model.RecipeSummary `json:"recipes"`
	}
	params := url.Values{"number": {strconv.Itoa(count)}}
	if err := c.get(ctx, "/recipes/random", params, &envelope); err != nil {
		return nil, err
	}
	return envelope.Recipes, nil
}

// get issues one GET with the API key injected and decodes the JSON
// response into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: building request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	if err := statusError(res.StatusCode); err != nil {
		return err
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}
	return nil
}

// statusError maps a provider HTTP status to the client's error kinds.
func statusError(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%w (HTTP 401)", ErrUnauthorized)
	case code == http.StatusPaymentRequired:
		return fmt.Errorf("%w: daily quota exhausted (HTTP 402)", ErrQuotaExceeded)
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: too many requests (HTTP 429)", ErrQuotaExceeded)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w (HTTP 404)", ErrNotFound)
	default:
		return fmt.Errorf("%w: provider returned HTTP %d", ErrUnavailable, code)
	}
}
