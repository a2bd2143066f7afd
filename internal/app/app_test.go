package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrovia/portal/config"
	"github.com/agrovia/portal/internal/db"
	"github.com/agrovia/portal/internal/portal"
)

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewSource(t *testing.T) {
	manager := portal.NewManager(db.New(db.NewExecutor(config.Default().Database.Options(), noOpLogger())))
	mock := portal.NewMockSource()

	t.Run("Mock", func(t *testing.T) {
		cfg := config.Default().Content
		cfg.Mode = config.ModeMock

		src, err := NewSource(cfg, manager, mock, noOpLogger())
		require.NoError(t, err)
		assert.Same(t, mock, src)
	})

	t.Run("LiveWithoutFallback", func(t *testing.T) {
		cfg := config.Default().Content
		cfg.Fallback = false

		src, err := NewSource(cfg, manager, mock, noOpLogger())
		require.NoError(t, err)
		assert.IsType(t, &portal.LiveSource{}, src)
	})

	t.Run("LiveWithFallback", func(t *testing.T) {
		src, err := NewSource(config.Default().Content, manager, mock, noOpLogger())
		require.NoError(t, err)
		assert.IsType(t, &portal.FallbackSource{}, src)
	})

	t.Run("BadTimeout", func(t *testing.T) {
		cfg := config.Default().Content
		cfg.BreakerTimeout = "soon"

		_, err := NewSource(cfg, manager, mock, noOpLogger())
		assert.Error(t, err)
	})
}

func TestNew_Routes(t *testing.T) {
	cfg := config.Default()
	cfg.Content.Mode = config.ModeMock
	cfg.App.RateLimit = 0

	a, err := New(cfg, noOpLogger())
	require.NoError(t, err)

	tests := []struct {
		method string
		target string
		code   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/api/videos-v2", http.StatusOK},
		{http.MethodGet, "/api/categorias/site", http.StatusOK},
		{http.MethodPost, "/api/signup", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			a.Echo.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.code, rec.Code)
		})
	}

	require.NoError(t, a.GracefulShutdown(context.Background()))
}

func TestNew_HomeUsesAPIURL(t *testing.T) {
	cfg := config.Default()
	cfg.Content.Mode = config.ModeMock
	cfg.App.RateLimit = 0
	require.NoError(t, cfg.Apply(config.Overrides{APIURL: "https://api.agrovia.example"}))

	a, err := New(cfg, noOpLogger())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://api.agrovia.example/api/posts/1")
}
