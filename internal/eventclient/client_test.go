package eventclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestClient_GetEventByID_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/events/e1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "e1",
			"title": "Opening Ceremony",
			"description": "Campus opening",
			"eventDate": "2025-09-01T18:00:00Z",
			"location": "Main Hall",
			"capacity": 100,
			"currentBookings": 40
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, newTestLogger(t))

	summary := c.GetEventByID(context.Background(), "e1")

	require.NotNil(t, summary)
	assert.Equal(t, "e1", summary.ID)
	assert.Equal(t, "Opening Ceremony", summary.Title)
	assert.Equal(t, 100, summary.Capacity)
	assert.Equal(t, 40, summary.CurrentBookings)
	assert.False(t, summary.IsCapacityReached())
}

func TestClient_GetEventByID_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such event", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, newTestLogger(t))

	assert.Nil(t, c.GetEventByID(context.Background(), "missing"))
}

func TestClient_GetEventByID_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, newTestLogger(t))

	assert.Nil(t, c.GetEventByID(context.Background(), "e1"))
}

func TestClient_GetEventByID_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	c := New(srv.URL, time.Second, newTestLogger(t))

	assert.Nil(t, c.GetEventByID(context.Background(), "e1"))
}

func TestClient_GetEventByID_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, newTestLogger(t))

	assert.Nil(t, c.GetEventByID(context.Background(), "e1"))
}

func TestClient_UpdateBookingCount_Increment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/events/e1/bookings", r.URL.Path)

		var body updateBookingCountRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, body.IsIncrement)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, newTestLogger(t))

	assert.True(t, c.UpdateBookingCount(context.Background(), "e1", true))
}

func TestClient_UpdateBookingCount_Decrement(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body updateBookingCountRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.False(t, body.IsIncrement)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, newTestLogger(t))

	assert.True(t, c.UpdateBookingCount(context.Background(), "e1", false))
}

func TestClient_UpdateBookingCount_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "conflict", http.StatusConflict)
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second, newTestLogger(t))

	assert.False(t, c.UpdateBookingCount(context.Background(), "e1", true))
}

func TestClient_UpdateBookingCount_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL, time.Second, newTestLogger(t))

	assert.False(t, c.UpdateBookingCount(context.Background(), "e1", true))
}
