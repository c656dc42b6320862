package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/savorly/savorly-go/internal/catalog"
	"github.com/savorly/savorly-go/internal/model"
)

// Catalog is the outbound recipe-provider surface the orchestrators
// depend on.
type Catalog interface {
	Search(ctx context.Context, query string, filters model.SearchFilters) ([]model.RecipeSummary, error)
	GetByID(ctx context.Context, id string) (*model.RecipeDetail, error)
	Random(ctx context.Context, count int) ([]model.RecipeSummary, error)
}

// SearchService turns a free-text query plus filters into one catalog
// call. Transient provider failures are retried a bounded number of
// times with exponential backoff; every other failure kind surfaces
// unchanged on the first attempt.
type SearchService struct {
	catalog       Catalog
	maxRetries    uint64
	retryInterval time.Duration
}

// NewSearchService creates a new SearchService.
func NewSearchService(c Catalog) *SearchService {
	return &SearchService{
		catalog:       c,
		maxRetries:    2,
		retryInterval: 250 * time.Millisecond,
	}
}

// Search runs one catalog search. A blank or whitespace-only query is
// a no-op: no network call happens and an empty result comes back.
// Zero provider results are a valid result (Empty), not an error.
func (s *SearchService) Search(ctx context.Context, query string, filters model.SearchFilters) (model.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return model.SearchResult{Results: []model.RecipeSummary{}, Empty: true}, nil
	}

	var results []model.RecipeSummary
	err := s.retry(ctx, func() error {
		r, err := s.catalog.Search(ctx, query, filters)
		if err != nil {
			return err
		}
		results = r
		return nil
	})
	if err != nil {
		return model.SearchResult{}, err
	}

	if results == nil {
		results = []model.RecipeSummary{}
	}
	return model.SearchResult{Results: results, Empty: len(results) == 0}, nil
}

// Featured returns random recipes for the home page.
func (s *SearchService) Featured(ctx context.Context, count int) ([]model.RecipeSummary, error) {
	var recipes []model.RecipeSummary
	err := s.retry(ctx, func() error {
		r, err := s.catalog.Random(ctx, count)
		if err != nil {
			return err
		}
		recipes = r
		return nil
	})
	return recipes, err
}

// retry runs op with exponential backoff, retrying only transient
// catalog unavailability. Quota, credential and not-found failures are
// terminal and come back immediately.
func (s *SearchService) retry(ctx context.Context, op func() error) error {
	wrapped := func() error {
		err := op()
		if err != nil && !errors.Is(err, catalog.ErrUnavailable) {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.retryInterval

	return backoff.Retry(wrapped, backoff.WithContext(backoff.WithMaxRetries(policy, s.maxRetries), ctx))
}
