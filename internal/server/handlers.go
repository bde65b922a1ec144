package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lockerhub/boxhub/internal/stats"
	"github.com/lockerhub/boxhub/internal/store"
)

func (s *Server) handleListBoxes(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.store.Boxes())
}

func (s *Server) handleGetBox(w http.ResponseWriter, r *http.Request) {
	boxID := mux.Vars(r)["id"]

	box, err := s.store.Box(boxID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Box not found")
		return
	}

	respondJSON(w, http.StatusOK, box)
}

func (s *Server) handleLogEvent(w http.ResponseWriter, r *http.Request) {
	if !s.requireHydrated(w) {
		return
	}

	boxID := mux.Vars(r)["id"]

	var eventRequest struct {
		Type string `json:"type"`
		Note string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&eventRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := s.store.LogEvent(boxID, store.EventType(eventRequest.Type), eventRequest.Note)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrBoxNotFound):
			respondError(w, http.StatusNotFound, "Box not found")
		case errors.Is(err, store.ErrInvalidEventType):
			respondError(w, http.StatusBadRequest, "Invalid event type")
		default:
			respondError(w, http.StatusInternalServerError, "Failed to log event")
		}
		return
	}

	respondJSON(w, http.StatusCreated, record)
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	if !s.requireHydrated(w) {
		return
	}

	boxID := mux.Vars(r)["id"]

	if err := s.store.ToggleFavoriteBox(boxID); err != nil {
		respondError(w, http.StatusNotFound, "Box not found")
		return
	}

	box, err := s.store.Box(boxID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to read box")
		return
	}

	respondJSON(w, http.StatusOK, box)
}

func (s *Server) handleListHistory(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.store.History())
}

func (s *Server) handleListUsers(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.store.Users())
}

// handleStats aggregates over the full history in admin mode, and only
// over the current user's records otherwise. The scoping decision
// lives here, not in the store.
func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	history := s.store.History()
	scope := "all"
	if !s.store.IsAdminMode() {
		history = stats.FilterByUser(history, s.store.CurrentUserID())
		scope = "current_user"
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"scope":   scope,
		"summary": stats.Aggregate(history),
	})
}

func (s *Server) handleGetSession(w http.ResponseWriter, _ *http.Request) {
	user, _ := s.store.CurrentUser()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"current_user_id":     s.store.CurrentUserID(),
		"current_user":        user,
		"is_admin_mode":       s.store.IsAdminMode(),
		"admin_pin_set":       s.store.AdminPinSet(),
		"has_seen_onboarding": s.store.HasSeenOnboarding(),
		"hydrated":            s.store.Hydrated(),
	})
}

func (s *Server) handleSetCurrentUser(w http.ResponseWriter, r *http.Request) {
	if !s.requireHydrated(w) {
		return
	}

	var userRequest struct {
		UserID string `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&userRequest); err != nil || userRequest.UserID == "" {
		respondError(w, http.StatusBadRequest, "Missing user_id")
		return
	}

	if err := s.store.SetCurrentUserID(userRequest.UserID); err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"current_user_id": userRequest.UserID})
}

func (s *Server) handleSetOnboarding(w http.ResponseWriter, r *http.Request) {
	var onboardingRequest struct {
		Seen bool `json:"seen"`
	}
	if err := json.NewDecoder(r.Body).Decode(&onboardingRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.store.SetHasSeenOnboarding(onboardingRequest.Seen)
	respondJSON(w, http.StatusOK, map[string]bool{"has_seen_onboarding": onboardingRequest.Seen})
}

func (s *Server) handleGetBanner(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"show_alert_banner": s.store.ShowAlertBanner(),
		"last_alert_box_id": s.store.LastAlertBoxID(),
	})
}

func (s *Server) handleClearLastAlert(w http.ResponseWriter, _ *http.Request) {
	s.store.ClearLastAlert()
	respondJSON(w, http.StatusOK, map[string]bool{"show_alert_banner": s.store.ShowAlertBanner()})
}

func (s *Server) handleSetAlertEnabled(w http.ResponseWriter, r *http.Request) {
	var alertRequest struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&alertRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.store.SetAbnormalAlertEnabled(alertRequest.Enabled)
	respondJSON(w, http.StatusOK, map[string]bool{"abnormal_alert_enabled": alertRequest.Enabled})
}

func (s *Server) handleSetAdminPin(w http.ResponseWriter, r *http.Request) {
	if !s.requireHydrated(w) {
		return
	}

	var pinRequest struct {
		Pin string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&pinRequest); err != nil || pinRequest.Pin == "" {
		respondError(w, http.StatusBadRequest, "Missing pin")
		return
	}

	if err := s.store.SetAdminPin(pinRequest.Pin); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to set admin pin")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"admin_pin_set": true})
}

func (s *Server) handleClearAdminPin(w http.ResponseWriter, _ *http.Request) {
	s.store.ClearAdminPin()
	respondJSON(w, http.StatusOK, map[string]bool{"admin_pin_set": false})
}

func (s *Server) handleEnableAdminMode(w http.ResponseWriter, r *http.Request) {
	var pinRequest struct {
		Pin string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&pinRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !s.store.EnableAdminMode(pinRequest.Pin) {
		respondError(w, http.StatusUnauthorized, "Invalid admin pin")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"is_admin_mode": true})
}

func (s *Server) handleDisableAdminMode(w http.ResponseWriter, _ *http.Request) {
	s.store.DisableAdminMode()
	respondJSON(w, http.StatusOK, map[string]bool{"is_admin_mode": false})
}

func (s *Server) handleSeedDemoData(w http.ResponseWriter, r *http.Request) {
	if !s.requireHydrated(w) {
		return
	}

	var seedRequest struct {
		Days int `json:"days"`
	}
	if r.Body != nil {
		// Body is optional; an empty or invalid one seeds the default span.
		_ = json.NewDecoder(r.Body).Decode(&seedRequest)
	}

	s.store.SeedDemoData(seedRequest.Days)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Demo data seeded",
		"events":  len(s.store.History()),
	})
}
