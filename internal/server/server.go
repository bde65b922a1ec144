//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lockerhub/boxhub/internal/store"
)

// StateStore is the store surface the HTTP layer consumes. Views never
// touch collections directly; every mutation goes through this API.
type StateStore interface {
	Boxes() []store.Box
	Box(boxID string) (store.Box, error)
	History() []store.HistoryRecord
	Users() []store.User
	CurrentUserID() string
	CurrentUser() (store.User, bool)
	SetCurrentUserID(userID string) error
	AbnormalAlertEnabled() bool
	SetAbnormalAlertEnabled(enabled bool)
	LastAlertBoxID() string
	ShowAlertBanner() bool
	ClearLastAlert()
	LogEvent(boxID string, eventType store.EventType, note string) (store.HistoryRecord, error)
	ToggleFavoriteBox(boxID string) error
	SeedDemoData(days int)
	AdminPinSet() bool
	SetAdminPin(pin string) error
	ClearAdminPin()
	IsAdminMode() bool
	EnableAdminMode(pin string) bool
	DisableAdminMode()
	HasSeenOnboarding() bool
	SetHasSeenOnboarding(seen bool)
	Hydrated() bool
}

type Server struct {
	store        StateStore
	logger       *zap.Logger
	server       *http.Server
	AuditManager *AuditManager
}

func New(stateStore StateStore, auditManager *AuditManager, logger *zap.Logger) *Server {
	return &Server{
		store:        stateStore,
		logger:       logger,
		AuditManager: auditManager,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	s.logger.Info("server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}

	s.AuditManager.Shutdown(ctx)
	s.logger.Info("server shutdown completed")
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()
	// Method mismatches on subrouter routes fall through to not-found
	// unless the root router handles them.
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/").Subrouter()
	api.Use(s.auditLogMiddleware)

	api.HandleFunc("/boxes", s.handleListBoxes).Methods(http.MethodGet)
	api.HandleFunc("/boxes/{id}", s.handleGetBox).Methods(http.MethodGet)
	api.HandleFunc("/boxes/{id}/events", s.handleLogEvent).Methods(http.MethodPost)
	api.HandleFunc("/boxes/{id}/favorite", s.handleToggleFavorite).Methods(http.MethodPost)

	api.HandleFunc("/history", s.handleListHistory).Methods(http.MethodGet)
	api.HandleFunc("/users", s.handleListUsers).Methods(http.MethodGet)
	api.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)

	api.HandleFunc("/session", s.handleGetSession).Methods(http.MethodGet)
	api.HandleFunc("/session/user", s.handleSetCurrentUser).Methods(http.MethodPut)
	api.HandleFunc("/session/onboarding", s.handleSetOnboarding).Methods(http.MethodPut)

	api.HandleFunc("/alerts/banner", s.handleGetBanner).Methods(http.MethodGet)
	api.HandleFunc("/alerts/last", s.handleClearLastAlert).Methods(http.MethodDelete)
	api.HandleFunc("/settings/alerts", s.handleSetAlertEnabled).Methods(http.MethodPut)

	api.HandleFunc("/settings/pin", s.handleSetAdminPin).Methods(http.MethodPut)
	api.HandleFunc("/settings/pin", s.handleClearAdminPin).Methods(http.MethodDelete)
	api.HandleFunc("/admin/session", s.handleEnableAdminMode).Methods(http.MethodPost)
	api.HandleFunc("/admin/session", s.handleDisableAdminMode).Methods(http.MethodDelete)

	api.HandleFunc("/demo/seed", s.handleSeedDemoData).Methods(http.MethodPost)

	return router
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// requireHydrated rejects destructive writes until persisted state has
// been loaded, so a half-started process cannot clobber stored data.
func (s *Server) requireHydrated(w http.ResponseWriter) bool {
	if !s.store.Hydrated() {
		respondError(w, http.StatusServiceUnavailable, "Store not hydrated yet")
		return false
	}
	return true
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"hydrated": s.store.Hydrated(),
	})
}
