package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/savorly/savorly-go/internal/catalog"
	"github.com/savorly/savorly-go/internal/model"
)

func stewDetail() *model.RecipeDetail {
	return &model.RecipeDetail{
		RecipeSummary: model.RecipeSummary{ID: 42, Title: "Stew"},
		Summary:       "A <b>hearty</b> stew",
	}
}

func TestDetail_NoSessionSkipsSavedLookup(t *testing.T) {
	store := newFakeSavedStore()
	svc := NewDetailService(&fakeCatalog{detail: stewDetail()}, store)

	view, err := svc.Get(context.Background(), "42", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.IsSaved {
		t.Error("no session must render unsaved")
	}
	if store.getCalls != 0 {
		t.Errorf("no session must not touch the collection store, got %d calls", store.getCalls)
	}
}

func TestDetail_SavedLookupFailureIsAdvisory(t *testing.T) {
	store := newFakeSavedStore()
	store.getErr = errors.New("store unreachable")
	svc := NewDetailService(&fakeCatalog{detail: stewDetail()}, store)

	view, err := svc.Get(context.Background(), "42", 7)
	if err != nil {
		t.Fatalf("detail must render despite the saved lookup failing: %v", err)
	}
	if view.Title != "Stew" {
		t.Errorf("detail content missing: %+v", view)
	}
	if view.IsSaved {
		t.Error("failed lookup must default to unsaved")
	}
}

func TestDetail_ReportsSavedMembership(t *testing.T) {
	store := newFakeSavedStore()
	store.records[savedKey(7, "42")] = model.SavedRecipe{
		UserID: 7, RecipeID: "42", Title: "Stew", SavedAt: time.Now(),
	}
	svc := NewDetailService(&fakeCatalog{detail: stewDetail()}, store)

	view, err := svc.Get(context.Background(), "42", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !view.IsSaved {
		t.Error("expected IsSaved true for a saved recipe")
	}
}

func TestDetail_CatalogFailureIsTerminal(t *testing.T) {
	svc := NewDetailService(&fakeCatalog{detailErr: catalog.ErrNotFound}, newFakeSavedStore())

	_, err := svc.Get(context.Background(), "9999", 7)
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDetail_SanitizesSummaryHTML(t *testing.T) {
	detail := stewDetail()
	detail.Summary = `Tasty<script>alert("xss")</script> stew`
	svc := NewDetailService(&fakeCatalog{detail: detail}, nil)

	view, err := svc.Get(context.Background(), "42", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(view.Summary, "script") {
		t.Errorf("summary must be sanitized, got %q", view.Summary)
	}
}

func TestDetail_NilSavedStoreRendersUnsaved(t *testing.T) {
	svc := NewDetailService(&fakeCatalog{detail: stewDetail()}, nil)

	view, err := svc.Get(context.Background(), "42", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.IsSaved {
		t.Error("missing store must render unsaved")
	}
}
