package core

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func Test_Rate_Limiter_Throttles_A_Single_Client(t *testing.T) {
	// Arrange
	limiter := NewClientRateLimiter(rate.Limit(0), 2)

	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	statuses := make([]int, 0, 3)

	// Act
	for i := 0; i < 3; i++ {
		request := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		request.RemoteAddr = "198.51.100.7:41234"

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		statuses = append(statuses, recorder.Code)
	}

	// Assert
	require.Equal(t, []int{
		http.StatusOK,
		http.StatusOK,
		http.StatusTooManyRequests,
	}, statuses)
}

func Test_Rate_Limiter_Tracks_Clients_Separately(t *testing.T) {
	// Arrange
	limiter := NewClientRateLimiter(rate.Limit(0), 1)

	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	first.RemoteAddr = "198.51.100.7:41234"

	exhausted := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	exhausted.RemoteAddr = "198.51.100.7:55678"

	other := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	other.RemoteAddr = "203.0.113.9:41234"

	// Act
	firstRecorder := httptest.NewRecorder()
	handler.ServeHTTP(firstRecorder, first)

	// Same host on a different port shares the budget.
	exhaustedRecorder := httptest.NewRecorder()
	handler.ServeHTTP(exhaustedRecorder, exhausted)

	otherRecorder := httptest.NewRecorder()
	handler.ServeHTTP(otherRecorder, other)

	// Assert
	require.Equal(t, http.StatusOK, firstRecorder.Code)
	require.Equal(t, http.StatusTooManyRequests, exhaustedRecorder.Code)
	require.Equal(t, http.StatusOK, otherRecorder.Code)
}
