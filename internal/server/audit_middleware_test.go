package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lockerhub/boxhub/internal/store"
)

func TestAuditMiddleware_CapturesRequestShape(t *testing.T) {
	srv, mockStore := newTestServer(t)
	mockStore.EXPECT().CurrentUserID().Return("user-002")
	mockStore.EXPECT().Hydrated().Return(true)
	mockStore.EXPECT().
		LogEvent("BOX-A", store.EventDelivery, "parcel").
		Return(store.HistoryRecord{ID: "ev-1"}, nil)

	router := srv.setupRoutes()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/boxes/BOX-A/events",
		jsonBody(t, map[string]string{"type": "DELIVERY", "note": "parcel"})))
	require.Equal(t, http.StatusCreated, rec.Code)

	// The manager is not started, so the entry sits in the input queue.
	select {
	case entry := <-srv.AuditManager.inputChan:
		assert.Equal(t, "handleLogEvent", entry.Handler)
		assert.Equal(t, http.MethodPost, entry.Method)
		assert.Equal(t, "/boxes/BOX-A/events", entry.Path)
		assert.Equal(t, http.StatusCreated, entry.StatusCode)
		assert.Equal(t, "user-002", entry.UserID)
		assert.Equal(t, "BOX-A", entry.BoxID)
		assert.Equal(t, "DELIVERY", entry.EventType)
		assert.Contains(t, entry.Request, `"DELIVERY"`)
		assert.Contains(t, entry.Response, `"ev-1"`)
	default:
		t.Fatal("no audit entry was queued")
	}
}

func TestHandlerName(t *testing.T) {
	tests := []struct {
		path   string
		method string
		want   string
	}{
		{"/boxes", http.MethodGet, "handleListBoxes"},
		{"/boxes/BOX-A", http.MethodGet, "handleGetBox"},
		{"/boxes/BOX-A/events", http.MethodPost, "handleLogEvent"},
		{"/boxes/BOX-A/favorite", http.MethodPost, "handleToggleFavorite"},
		{"/history", http.MethodGet, "handleListHistory"},
		{"/users", http.MethodGet, "handleListUsers"},
		{"/stats", http.MethodGet, "handleStats"},
		{"/session", http.MethodGet, "handleGetSession"},
		{"/session/user", http.MethodPut, "handleSetCurrentUser"},
		{"/session/onboarding", http.MethodPut, "handleSetOnboarding"},
		{"/alerts/banner", http.MethodGet, "handleGetBanner"},
		{"/alerts/last", http.MethodDelete, "handleClearLastAlert"},
		{"/settings/alerts", http.MethodPut, "handleSetAlertEnabled"},
		{"/settings/pin", http.MethodPut, "handleSetAdminPin"},
		{"/settings/pin", http.MethodDelete, "handleClearAdminPin"},
		{"/admin/session", http.MethodPost, "handleEnableAdminMode"},
		{"/admin/session", http.MethodDelete, "handleDisableAdminMode"},
		{"/demo/seed", http.MethodPost, "handleSeedDemoData"},
		{"/nope", http.MethodGet, "unknown"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, handlerName(tc.path, tc.method), "%s %s", tc.method, tc.path)
	}
}

func TestResponseRecorder_DefaultsToOK(t *testing.T) {
	rec := httptest.NewRecorder()
	wrw := newResponseRecorder(rec)

	_, err := wrw.Write([]byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, wrw.statusCode)
	assert.Equal(t, "hello", wrw.body.String())
	assert.Equal(t, "hello", rec.Body.String())
}
