package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/savorly/savorly-go/internal/model"
)

func TestCollectionList_RequiresSession(t *testing.T) {
	svc := NewCollectionService(newFakeSavedStore())

	_, err := svc.List(context.Background(), 0)
	if !errors.Is(err, ErrAuthenticationRequired) {
		t.Errorf("expected ErrAuthenticationRequired, got %v", err)
	}
}

func TestCollectionList_OrderedNewestFirst(t *testing.T) {
	store := newFakeSavedStore()
	now := time.Now()
	store.records[savedKey(7, "1")] = model.SavedRecipe{
		UserID: 7, RecipeID: "1", Title: "Older", SavedAt: now.Add(-time.Hour),
	}
	store.records[savedKey(7, "2")] = model.SavedRecipe{
		UserID: 7, RecipeID: "2", Title: "Newer", SavedAt: now,
	}
	store.records[savedKey(8, "3")] = model.SavedRecipe{
		UserID: 8, RecipeID: "3", Title: "Other user", SavedAt: now,
	}

	recs, err := NewCollectionService(store).List(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records for user 7, got %d", len(recs))
	}
	if recs[0].Title != "Newer" || recs[1].Title != "Older" {
		t.Errorf("expected newest first, got %+v", recs)
	}
}

func TestCollectionRemove_NotSaved(t *testing.T) {
	svc := NewCollectionService(newFakeSavedStore())

	err := svc.Remove(context.Background(), 7, "404")
	if !errors.Is(err, ErrNotSaved) {
		t.Errorf("expected ErrNotSaved, got %v", err)
	}
}

func TestCollectionRemove_Success(t *testing.T) {
	store := newFakeSavedStore()
	store.records[savedKey(7, "1")] = model.SavedRecipe{UserID: 7, RecipeID: "1"}

	if err := NewCollectionService(store).Remove(context.Background(), 7, "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, found := store.records[savedKey(7, "1")]; found {
		t.Error("record should have been removed")
	}
}
