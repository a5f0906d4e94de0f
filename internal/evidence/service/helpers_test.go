package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crime-evidence/internal/evidence/models"
	"crime-evidence/internal/evidence/store/requirements"
)

// fakeCourtData counts calls so tests can assert the fee gate short-circuits
// before any collaborator is reached.
type fakeCourtData struct {
	count int64
	err   error
	calls int
}

func (f *fakeCourtData) CapitalAssetCount(_ context.Context, _ int) (int64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.count, nil
}

// fakeMeansAssessment serves a canned assessment and echoes updates back,
// the way the real service returns the persisted state.
type fakeMeansAssessment struct {
	assessment  *models.MeansAssessment
	findErr     error
	updateErr   error
	lastUpdate  *models.MeansAssessment
	findCalls   int
	updateCalls int
}

func (f *fakeMeansAssessment) Find(_ context.Context, _ int) (*models.MeansAssessment, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.assessment != nil {
		return f.assessment, nil
	}
	return &models.MeansAssessment{}, nil
}

func (f *fakeMeansAssessment) Update(_ context.Context, assessment models.MeansAssessment) (*models.MeansAssessment, error) {
	f.updateCalls++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.lastUpdate = &assessment
	return &assessment, nil
}

func newTestService(t *testing.T, store requirements.Store, courtData *fakeCourtData, meansAssessment *fakeMeansAssessment) *Service {
	t.Helper()
	if store == nil {
		store = requirements.Seeded()
	}
	if courtData == nil {
		courtData = &fakeCourtData{}
	}
	if meansAssessment == nil {
		meansAssessment = &fakeMeansAssessment{}
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := New(store, courtData, meansAssessment, logger)
	require.NoError(t, err)
	return svc
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
