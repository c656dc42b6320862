package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/savorly/savorly-go/internal/catalog"
	"github.com/savorly/savorly-go/internal/config"
	"github.com/savorly/savorly-go/internal/handler"
	"github.com/savorly/savorly-go/internal/middleware"
	"github.com/savorly/savorly-go/internal/repository"
	"github.com/savorly/savorly-go/internal/service"
	"github.com/savorly/savorly-go/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	catalogClient := catalog.New(cfg.CatalogBaseURL, cfg.CatalogAPIKey,
		catalog.WithPageSize(cfg.SearchPageSize))
	searchService := service.NewSearchService(catalogClient)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	revoked := session.NewRevocationStore(10 * time.Minute)
	defer revoked.Close()

	// The saved-recipe lookup stays nil when the database is down;
	// detail views then always render unsaved.
	var savedRepo *repository.SavedRecipeRepository

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed — auth and saved routes disabled", "error", err)
	} else {
		savedRepo = repository.NewSavedRecipeRepository(db)

		userRepo := repository.NewUserRepository(db)
		authService := service.NewAuthService(userRepo, revoked, cfg.JWTSecret, cfg.JWTExpiry)
		authHandler := handler.NewAuthHandler(authService)

		saveService := service.NewSaveService(savedRepo)
		collectionService := service.NewCollectionService(savedRepo)
		savedHandler := handler.NewSavedHandler(saveService, collectionService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/api/v1/auth/register", authHandler.HandleRegister)
			r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret, revoked))
			r.Post("/api/v1/auth/logout", authHandler.HandleLogout)
			r.Get("/api/v1/auth/me", authHandler.HandleMe)

			r.Get("/api/v1/saved", savedHandler.HandleList)
			r.Post("/api/v1/saved", savedHandler.HandleToggle)
			r.Delete("/api/v1/saved/{recipe_id}", savedHandler.HandleRemove)
		})
	}

	detailService := service.NewDetailService(catalogClient, savedLookup(savedRepo))
	recipeHandler := handler.NewRecipeHandler(searchService, detailService, cfg.FeaturedCount)

	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalJWTAuth(cfg.JWTSecret, revoked))
		r.Get("/api/v1/recipes/search", recipeHandler.HandleSearch)
		r.Get("/api/v1/recipes/featured", recipeHandler.HandleFeatured)
		r.Get("/api/v1/recipes/{recipe_id}", recipeHandler.HandleDetail)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// savedLookup converts a possibly-nil repository pointer into the
// detail service's lookup dependency without producing a non-nil
// interface wrapping a nil pointer.
func savedLookup(repo *repository.SavedRecipeRepository) service.SavedLookup {
	if repo == nil {
		return nil
	}
	return repo
}
