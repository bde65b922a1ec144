package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry := AuditLogEntry{
			Timestamp: time.Now(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   handlerName(r.URL.Path, r.Method),
			UserID:    s.store.CurrentUserID(),
		}

		if strings.HasPrefix(r.URL.Path, "/boxes/") {
			parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
			if len(parts) >= 2 {
				entry.BoxID = parts[1]
			}
		}

		if r.Body != nil {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)

			if strings.HasSuffix(r.URL.Path, "/events") {
				var eventRequest struct {
					Type string `json:"type"`
				}
				if err := json.Unmarshal(requestBody, &eventRequest); err == nil {
					entry.EventType = eventRequest.Type
				}
			}
		}

		wrw := newResponseRecorder(w)

		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.statusCode
		entry.Response = wrw.body.String()

		s.AuditManager.LogEntry(entry)
	})
}

func handlerName(path, method string) string {
	switch {
	case strings.HasPrefix(path, "/boxes"):
		switch {
		case strings.HasSuffix(path, "/events"):
			return "handleLogEvent"
		case strings.HasSuffix(path, "/favorite"):
			return "handleToggleFavorite"
		case path == "/boxes":
			return "handleListBoxes"
		default:
			return "handleGetBox"
		}
	case path == "/history":
		return "handleListHistory"
	case path == "/users":
		return "handleListUsers"
	case path == "/stats":
		return "handleStats"
	case strings.HasPrefix(path, "/session"):
		if method == http.MethodGet {
			return "handleGetSession"
		}
		if strings.HasSuffix(path, "/onboarding") {
			return "handleSetOnboarding"
		}
		return "handleSetCurrentUser"
	case strings.HasPrefix(path, "/alerts"):
		if method == http.MethodDelete {
			return "handleClearLastAlert"
		}
		return "handleGetBanner"
	case strings.HasPrefix(path, "/settings/alerts"):
		return "handleSetAlertEnabled"
	case strings.HasPrefix(path, "/settings/pin"):
		if method == http.MethodDelete {
			return "handleClearAdminPin"
		}
		return "handleSetAdminPin"
	case strings.HasPrefix(path, "/admin/session"):
		if method == http.MethodDelete {
			return "handleDisableAdminMode"
		}
		return "handleEnableAdminMode"
	case strings.HasPrefix(path, "/demo"):
		return "handleSeedDemoData"
	}
	return "unknown"
}

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func newResponseRecorder(w http.ResponseWriter) *responseRecorder {
	return &responseRecorder{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (w *responseRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}
