package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/psilva-leo/ai-todo/internal/config"
	"github.com/psilva-leo/ai-todo/internal/gemini"
	"github.com/psilva-leo/ai-todo/internal/handlers"
	"github.com/psilva-leo/ai-todo/internal/middleware"
	"github.com/psilva-leo/ai-todo/internal/service"
	"github.com/psilva-leo/ai-todo/internal/store"
)

func main() {
	cfg := config.Load()

	st, cleanup, err := openStore(cfg)
	if err != nil {
		log.Fatalf("store init failed: %v", err)
	}
	defer cleanup()

	var extractor handlers.TaskExtractor
	if cfg.GoogleAPIKey != "" {
		extractor = gemini.New(cfg.GoogleAPIKey)
	} else {
		log.Println("GOOGLE_API_KEY not set, audio suggestions disabled")
	}

	h := handlers.New(service.New(st), extractor)

	router := gin.Default()
	router.Use(middleware.RequestID())

	router.GET("/health", h.Health)
	router.POST("/todos", h.CreateTodo)
	router.GET("/todos", h.ListTodos)
	router.GET("/todos/:id", h.GetTodo)
	router.PATCH("/todos/:id", h.UpdateTodo)
	router.DELETE("/todos/:id", h.DeleteTodo)
	router.POST("/audio/suggestions", h.SuggestTasks)
	router.POST("/audio/confirm", h.ConfirmTasks)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("signal received, starting graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown timed out, forcing exit: %v", err)
	}
}

// openStore selects the backing store: Postgres when DATABASE_URL is
// set, the in-memory map otherwise. Both satisfy the same contract.
func openStore(cfg *config.Config) (store.Store, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, using in-memory store")
		return store.NewMemory(), func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, err
	}

	pg := store.NewPostgres(db)
	if cfg.RunMigrations {
		log.Println("running migrations")
		if err := pg.Migrate(context.Background()); err != nil {
			db.Close()
			return nil, nil, err
		}
	}

	return pg, func() { db.Close() }, nil
}
