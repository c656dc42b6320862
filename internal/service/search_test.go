package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/savorly/savorly-go/internal/catalog"
	"github.com/savorly/savorly-go/internal/model"
)

func newTestSearchService(c Catalog) *SearchService {
	s := NewSearchService(c)
	s.retryInterval = time.Millisecond
	return s
}

func TestSearch_BlankQueryIsNoOp(t *testing.T) {
	fake := &fakeCatalog{}
	svc := newTestSearchService(fake)

	for _, q := range []string{"", "   ", "\t\n"} {
		result, err := svc.Search(context.Background(), q, model.SearchFilters{})
		if err != nil {
			t.Fatalf("query %q: unexpected error: %v", q, err)
		}
		if !result.Empty || len(result.Results) != 0 {
			t.Errorf("query %q: expected empty result, got %+v", q, result)
		}
	}
	if fake.searchCalls != 0 {
		t.Errorf("blank queries must not hit the catalog, got %d calls", fake.searchCalls)
	}
}

func TestSearch_SingleCallWithFilters(t *testing.T) {
	fake := &fakeCatalog{searchResult: []model.RecipeSummary{
		{ID: 1, Title: "Carbonara"},
		{ID: 2, Title: "Pesto"},
	}}
	svc := newTestSearchService(fake)

	filters := model.SearchFilters{Cuisine: "italian", MealType: "main course", MaxReadyTimeMinutes: 30}
	result, err := svc.Search(context.Background(), "  pasta  ", filters)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fake.searchCalls != 1 {
		t.Errorf("expected exactly one catalog call, got %d", fake.searchCalls)
	}
	if fake.lastQuery != "pasta" {
		t.Errorf("query should be trimmed, got %q", fake.lastQuery)
	}
	if fake.lastFilters != filters {
		t.Errorf("filters should pass through unchanged, got %+v", fake.lastFilters)
	}
	if result.Empty || len(result.Results) != 2 {
		t.Errorf("expected 2 results, got %+v", result)
	}
}

func TestSearch_ZeroResultsIsEmptyNotError(t *testing.T) {
	fake := &fakeCatalog{}
	svc := newTestSearchService(fake)

	result, err := svc.Search(context.Background(), "xyzNoMatch", model.SearchFilters{})
	if err != nil {
		t.Fatalf("zero results must not be an error: %v", err)
	}
	if !result.Empty {
		t.Error("zero results should mark the result Empty")
	}
	if result.Results == nil {
		t.Error("Results should be an empty slice, not nil")
	}
}

func TestSearch_QuotaErrorSurfacesWithoutRetry(t *testing.T) {
	fake := &fakeCatalog{searchErrs: []error{catalog.ErrQuotaExceeded}}
	svc := newTestSearchService(fake)

	_, err := svc.Search(context.Background(), "pasta", model.SearchFilters{})
	if !errors.Is(err, catalog.ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
	if fake.searchCalls != 1 {
		t.Errorf("terminal errors must not be retried, got %d calls", fake.searchCalls)
	}
}

func TestSearch_RetriesUnavailableThenSucceeds(t *testing.T) {
	fake := &fakeCatalog{
		searchErrs:   []error{catalog.ErrUnavailable, nil},
		searchResult: []model.RecipeSummary{{ID: 1, Title: "Soup"}},
	}
	svc := newTestSearchService(fake)

	result, err := svc.Search(context.Background(), "soup", model.SearchFilters{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.searchCalls != 2 {
		t.Errorf("expected a retry after unavailability, got %d calls", fake.searchCalls)
	}
	if len(result.Results) != 1 {
		t.Errorf("expected the retried result, got %+v", result)
	}
}

func TestSearch_UnavailableExhaustsRetries(t *testing.T) {
	fake := &fakeCatalog{
		searchErrs: []error{catalog.ErrUnavailable, catalog.ErrUnavailable, catalog.ErrUnavailable},
	}
	svc := newTestSearchService(fake)

	_, err := svc.Search(context.Background(), "pasta", model.SearchFilters{})
	if !errors.Is(err, catalog.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if fake.searchCalls != 3 {
		t.Errorf("expected initial call plus 2 retries, got %d calls", fake.searchCalls)
	}
}

func TestFeatured_ReturnsRandomRecipes(t *testing.T) {
	fake := &fakeCatalog{randomResult: []model.RecipeSummary{{ID: 7, Title: "Tacos"}}}
	svc := newTestSearchService(fake)

	recipes, err := svc.Featured(context.Background(), 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recipes) != 1 || recipes[0].Title != "Tacos" {
		t.Errorf("unexpected recipes: %+v", recipes)
	}
}
