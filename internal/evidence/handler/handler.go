package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"crime-evidence/internal/evidence/models"
	"crime-evidence/pkg/platform/httputil"
	"crime-evidence/pkg/requestcontext"
)

// Service defines the interface for evidence operations.
type Service interface {
	CalculateEvidenceFee(ctx context.Context, ec models.EvidenceCase) (*models.EvidenceFee, error)
	CreateEvidence(ctx context.Context, ce models.EvidenceCreate) (*models.CreateResult, error)
	UpdateEvidence(ctx context.Context, upd models.EvidenceUpdate) (*models.UpdateResult, error)
}

// Handler wires the evidence endpoints to the evidence service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an evidence handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts evidence endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/evidence", func(r chi.Router) {
		r.Post("/", h.HandleCreate)
		r.Put("/", h.HandleUpdate)
		r.Post("/calculate-evidence-fee", h.HandleCalculateFee)
	})
}

// HandleCalculateFee handles POST /evidence/calculate-evidence-fee requests.
func (h *Handler) HandleCalculateFee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[CalculateFeeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	fee, err := h.service.CalculateEvidenceFee(ctx, req.ToCase())
	if err != nil {
		h.logger.ErrorContext(ctx, "evidence fee calculation failed",
			"request_id", requestID,
			"rep_id", req.RepID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "evidence fee calculated",
		"request_id", requestID,
		"rep_id", req.RepID,
		"fee_determined", fee != nil,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromFee(fee))
}

// HandleCreate handles POST /evidence requests.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[CreateEvidenceRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.CreateEvidence(ctx, req.ToCreate())
	if err != nil {
		h.logger.ErrorContext(ctx, "evidence defaulting failed",
			"request_id", requestID,
			"mag_court_outcome", req.MagCourtOutcome,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "evidence items defaulted",
		"request_id", requestID,
		"applicant_items", len(result.ApplicantItems.Items),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromCreateResult(result))
}

// HandleUpdate handles PUT /evidence requests.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[UpdateEvidenceRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.UpdateEvidence(ctx, req.ToUpdate())
	if err != nil {
		h.logger.ErrorContext(ctx, "evidence update failed",
			"request_id", requestID,
			"financial_assessment_id", req.FinancialAssessmentID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "evidence updated",
		"request_id", requestID,
		"financial_assessment_id", req.FinancialAssessmentID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromUpdateResult(result))
}
