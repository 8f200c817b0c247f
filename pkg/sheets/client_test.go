package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-acoustics-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsConfigured(t *testing.T) {
	assert.False(t, NewClient("", "").IsConfigured())
	assert.False(t, NewClient("https://example.com/hook", "").IsConfigured())
	assert.False(t, NewClient("", "secret").IsConfigured())
	assert.True(t, NewClient("https://example.com/hook", "secret").IsConfigured())
}

func TestAppendPayload(t *testing.T) {
	var got payload
	var contentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sub := &domain.ContactSubmission{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Message:     "Please call me about a survey",
		GDPRConsent: "on",
	}

	client := NewClient(srv.URL, "shared-secret")
	err := client.Append(context.Background(), sub)
	require.NoError(t, err)

	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "shared-secret", got.Token)
	require.NotNil(t, got.Data)
	assert.Equal(t, "Jane Doe", got.Data.Name)
	assert.Equal(t, "jane@example.com", got.Data.Email)
}

func TestAppendErrors(t *testing.T) {
	t.Run("Server error status is reported", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		err := NewClient(srv.URL, "secret").Append(context.Background(), &domain.ContactSubmission{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("Cancelled context aborts the request", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := NewClient(srv.URL, "secret").Append(ctx, &domain.ContactSubmission{})
		require.Error(t, err)
	})
}
