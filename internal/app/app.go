package app

import (
	"context"
	"net/http"
	"time"

	"github.com/daybook/daybook/internal/config"
	"github.com/daybook/daybook/internal/rest"
	"github.com/daybook/daybook/internal/storage"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// Application wires configuration, storage, router, and server lifecycle.
type Application struct {
	cfg    config.Application
	router *mux.Router
	srv    *http.Server
}

// NewApplication constructs the full HTTP application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	slot, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()

	// Build dependencies (store, services, handlers...)
	deps, err := BuildDependencies(slot, cfg)
	if err != nil {
		return nil, err
	}

	// The durable slot is read once; absent or corrupt data means an empty
	// store, never a startup failure.
	if err := deps.EventStore.Load(context.Background()); err != nil {
		return nil, err
	}
	log.Infof("Loaded %d stored events from %s", deps.EventStore.Len(), slot.Path())

	// Middleware chain
	SetupMiddleware(r, deps, cfg)

	// Routes
	RegisterRoutes(r, deps, cfg)

	// Frontend
	if cfg.Frontend.Enabled {
		frontend := rest.NewFrontendHandler("frontend", "index.html")
		r.PathPrefix("/").Handler(frontend)
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.Addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, router: r, srv: srv}, nil
}

// Run starts the HTTP server and blocks.
func (a *Application) Run() error {
	log.Infof("Starting server on %s", a.srv.Addr)
	return a.srv.ListenAndServe()
}
