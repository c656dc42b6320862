package service

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/savorly/savorly-go/internal/model"
	"github.com/savorly/savorly-go/internal/repository"
)

// fakeCatalog records calls and returns canned data or errors.
type fakeCatalog struct {
	searchCalls  int
	lastQuery    string
	lastFilters  model.SearchFilters
	searchResult []model.RecipeSummary
	searchErrs   []error // consumed per call; nil entry means success

	detail    *model.RecipeDetail
	detailErr error

	randomResult []model.RecipeSummary
	randomErr    error
}

func (f *fakeCatalog) Search(ctx context.Context, query string, filters model.SearchFilters) ([]model.RecipeSummary, error) {
	f.searchCalls++
	f.lastQuery = query
	f.lastFilters = filters
	if len(f.searchErrs) > 0 {
		err := f.searchErrs[0]
		f.searchErrs = f.searchErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return f.searchResult, nil
}

func (f *fakeCatalog) GetByID(ctx context.Context, id string) (*model.RecipeDetail, error) {
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	return f.detail, nil
}

func (f *fakeCatalog) Random(ctx context.Context, count int) ([]model.RecipeSummary, error) {
	if f.randomErr != nil {
		return nil, f.randomErr
	}
	return f.randomResult, nil
}

// fakeSavedStore is an in-memory personal collection keyed by
// (userID, recipeID), mirroring the repository's natural-key contract.
type fakeSavedStore struct {
	mu      sync.Mutex
	records map[string]model.SavedRecipe

	putErr    error
	deleteErr error
	getErr    error
	listErr   error

	getCalls int
	// blockPut, when non-nil, makes Put wait until the channel closes.
	blockPut chan struct{}
}

func newFakeSavedStore() *fakeSavedStore {
	return &fakeSavedStore{records: make(map[string]model.SavedRecipe)}
}

func savedKey(userID int64, recipeID string) string {
	return strconv.FormatInt(userID, 10) + "/" + recipeID
}

func (f *fakeSavedStore) Put(ctx context.Context, rec *model.SavedRecipe) error {
	if f.blockPut != nil {
		<-f.blockPut
	}
	if f.putErr != nil {
		return f.putErr
	}
	f.mu.Lock()
	f.records[savedKey(rec.UserID, rec.RecipeID)] = *rec
	f.mu.Unlock()
	return nil
}

func (f *fakeSavedStore) Get(ctx context.Context, userID int64, recipeID string) (*model.SavedRecipe, error) {
	f.mu.Lock()
	f.getCalls++
	rec, found := f.records[savedKey(userID, recipeID)]
	f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	if !found {
		return nil, repository.ErrSavedRecipeNotFound
	}
	return &rec, nil
}

func (f *fakeSavedStore) Delete(ctx context.Context, userID int64, recipeID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key := savedKey(userID, recipeID)
	if _, found := f.records[key]; !found {
		return repository.ErrSavedRecipeNotFound
	}
	delete(f.records, key)
	return nil
}

func (f *fakeSavedStore) ListByUser(ctx context.Context, userID int64) ([]model.SavedRecipe, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var recs []model.SavedRecipe
	for _, rec := range f.records {
		if rec.UserID == userID {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].SavedAt.After(recs[j].SavedAt) })
	return recs, nil
}

// fakeUserStore is an in-memory user table.
type fakeUserStore struct {
	nextID int64
	byID   map[int64]model.User
	err    error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1, byID: make(map[int64]model.User)}
}

func (f *fakeUserStore) Create(ctx context.Context, user *model.User) error {
	if f.err != nil {
		return f.err
	}
	for _, u := range f.byID {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = f.nextID
	f.nextID++
	f.byID[user.ID] = *user
	return nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, found := f.byID[id]
	if !found {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}
