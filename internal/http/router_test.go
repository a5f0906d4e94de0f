package httpapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"crime-evidence/internal/evidence/handler"
	"crime-evidence/internal/evidence/models"
	"crime-evidence/internal/platform/middleware"
)

type allowAllValidator struct{}

func (allowAllValidator) ValidateToken(string) (*middleware.JWTClaims, error) {
	return &middleware.JWTClaims{Subject: "tester"}, nil
}

type denyAllValidator struct{}

func (denyAllValidator) ValidateToken(string) (*middleware.JWTClaims, error) {
	return nil, errors.New("invalid token")
}

type stubService struct{}

func (stubService) CalculateEvidenceFee(context.Context, models.EvidenceCase) (*models.EvidenceFee, error) {
	return nil, nil
}

func (stubService) CreateEvidence(context.Context, models.EvidenceCreate) (*models.CreateResult, error) {
	return &models.CreateResult{}, nil
}

func (stubService) UpdateEvidence(context.Context, models.EvidenceUpdate) (*models.UpdateResult, error) {
	return &models.UpdateResult{}, nil
}

func newTestRouter(validator middleware.JWTValidator, health func() error) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(Deps{
		Logger:    logger,
		Validator: validator,
		Evidence:  handler.New(stubService{}, logger),
		Health:    health,
	})
}

func TestHealthEndpoint(t *testing.T) {
	t.Run("healthy dependencies return 200 without auth", func(t *testing.T) {
		router := newTestRouter(denyAllValidator{}, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("failing dependency returns 503", func(t *testing.T) {
		router := newTestRouter(denyAllValidator{}, func() error { return errors.New("db down") })
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestMetricsEndpointIsOpen(t *testing.T) {
	router := newTestRouter(denyAllValidator{}, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIRequiresBearerToken(t *testing.T) {
	t.Run("missing token is unauthorized", func(t *testing.T) {
		router := newTestRouter(allowAllValidator{}, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/internal/v1/evidence/calculate-evidence-fee", nil)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejected token is unauthorized", func(t *testing.T) {
		router := newTestRouter(denyAllValidator{}, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/internal/v1/evidence/calculate-evidence-fee", nil)
		req.Header.Set("Authorization", "Bearer nope")
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
