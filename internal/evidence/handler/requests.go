package handler

import (
	"strings"
	"time"

	"crime-evidence/internal/evidence/models"
	dErrors "crime-evidence/pkg/domain-errors"
)

// CalculateFeeRequest is the HTTP request body for
// POST /api/internal/v1/evidence/calculate-evidence-fee.
type CalculateFeeRequest struct {
	RepID                       int                          `json:"repId"`
	MagCourtOutcome             string                       `json:"magCourtOutcome"`
	EvidenceFee                 *EvidenceFeePayload          `json:"evidenceFee,omitempty"`
	CapitalEvidence             []CapitalEvidenceItemPayload `json:"capitalEvidence,omitempty"`
	IncomeEvidenceReceivedDate  *time.Time                   `json:"incomeEvidenceReceivedDate,omitempty"`
	CapitalEvidenceReceivedDate *time.Time                   `json:"capitalEvidenceReceivedDate,omitempty"`
	EmstCode                    string                       `json:"emstCode"`
}

// EvidenceFeePayload carries an already determined fee on the request.
type EvidenceFeePayload struct {
	FeeLevel    string `json:"feeLevel"`
	Description string `json:"description"`
}

// CapitalEvidenceItemPayload is one capital evidence item on the request.
type CapitalEvidenceItemPayload struct {
	EvidenceType string     `json:"evidenceType"`
	DateReceived *time.Time `json:"dateReceived,omitempty"`
}

// Validate implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *CalculateFeeRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.RepID <= 0 {
		return dErrors.New(dErrors.CodeValidation, "repId is required")
	}
	r.MagCourtOutcome = strings.TrimSpace(r.MagCourtOutcome)
	if r.MagCourtOutcome == "" {
		return dErrors.New(dErrors.CodeValidation, "magCourtOutcome is required")
	}
	return nil
}

// ToCase converts the request to the domain evidence case. A nil capital
// evidence list stays nil: the distinction drives the fee determination.
func (r *CalculateFeeRequest) ToCase() models.EvidenceCase {
	ec := models.EvidenceCase{
		RepID:                       r.RepID,
		MagCourtOutcome:             r.MagCourtOutcome,
		IncomeEvidenceReceivedDate:  r.IncomeEvidenceReceivedDate,
		CapitalEvidenceReceivedDate: r.CapitalEvidenceReceivedDate,
		EmstCode:                    r.EmstCode,
	}
	if r.EvidenceFee != nil {
		ec.EvidenceFee = &models.EvidenceFee{
			FeeLevel:    r.EvidenceFee.FeeLevel,
			Description: r.EvidenceFee.Description,
		}
	}
	if r.CapitalEvidence != nil {
		ec.CapitalEvidence = make([]models.CapitalEvidenceItem, 0, len(r.CapitalEvidence))
		for _, item := range r.CapitalEvidence {
			ec.CapitalEvidence = append(ec.CapitalEvidence, models.CapitalEvidenceItem{
				EvidenceType: item.EvidenceType,
				DateReceived: item.DateReceived,
			})
		}
	}
	return ec
}

// ApplicantPayload identifies one person on the application.
type ApplicantPayload struct {
	ID               int    `json:"id"`
	EmploymentStatus string `json:"employmentStatus"`
}

// CreateEvidenceRequest is the HTTP request body for
// POST /api/internal/v1/evidence.
type CreateEvidenceRequest struct {
	MagCourtOutcome        string            `json:"magCourtOutcome"`
	ApplicantDetails       ApplicantPayload  `json:"applicantDetails"`
	PartnerDetails         *ApplicantPayload `json:"partnerDetails,omitempty"`
	ApplicantPensionAmount float64           `json:"applicantPensionAmount"`
	PartnerPensionAmount   float64           `json:"partnerPensionAmount"`
}

// Validate implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *CreateEvidenceRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.MagCourtOutcome = strings.TrimSpace(r.MagCourtOutcome)
	if r.MagCourtOutcome == "" {
		return dErrors.New(dErrors.CodeValidation, "magCourtOutcome is required")
	}
	r.ApplicantDetails.EmploymentStatus = strings.TrimSpace(r.ApplicantDetails.EmploymentStatus)
	if r.ApplicantDetails.EmploymentStatus == "" {
		return dErrors.New(dErrors.CodeValidation, "applicantDetails.employmentStatus is required")
	}
	if r.ApplicantPensionAmount < 0 || r.PartnerPensionAmount < 0 {
		return dErrors.New(dErrors.CodeValidation, "pension amounts cannot be negative")
	}
	if r.PartnerDetails != nil && strings.TrimSpace(r.PartnerDetails.EmploymentStatus) == "" {
		return dErrors.New(dErrors.CodeValidation, "partnerDetails.employmentStatus is required when a partner is supplied")
	}
	return nil
}

// ToCreate converts the request to the domain create input.
func (r *CreateEvidenceRequest) ToCreate() models.EvidenceCreate {
	ce := models.EvidenceCreate{
		MagCourtOutcome:        r.MagCourtOutcome,
		ApplicantDetails:       toApplicantDetails(r.ApplicantDetails),
		ApplicantPensionAmount: r.ApplicantPensionAmount,
		PartnerPensionAmount:   r.PartnerPensionAmount,
	}
	if r.PartnerDetails != nil {
		details := toApplicantDetails(*r.PartnerDetails)
		ce.PartnerDetails = &details
	}
	return ce
}

// IncomeEvidenceItemPayload is one supplied income evidence item.
type IncomeEvidenceItemPayload struct {
	ID           int        `json:"id,omitempty"`
	EvidenceType string     `json:"evidenceType"`
	DateReceived *time.Time `json:"dateReceived,omitempty"`
	Description  string     `json:"description,omitempty"`
	Mandatory    bool       `json:"mandatory"`
}

// UpdateEvidenceRequest is the HTTP request body for
// PUT /api/internal/v1/evidence.
type UpdateEvidenceRequest struct {
	FinancialAssessmentID int    `json:"financialAssessmentId"`
	MagCourtOutcome       string `json:"magCourtOutcome"`

	ApplicantDetails ApplicantPayload            `json:"applicantDetails"`
	PartnerDetails   *ApplicantPayload           `json:"partnerDetails,omitempty"`
	ApplicantItems   []IncomeEvidenceItemPayload `json:"applicantIncomeEvidenceItems,omitempty"`
	PartnerItems     []IncomeEvidenceItemPayload `json:"partnerIncomeEvidenceItems,omitempty"`

	ApplicantPensionAmount float64 `json:"applicantPensionAmount"`
	PartnerPensionAmount   float64 `json:"partnerPensionAmount"`

	ApplicationReceivedDate time.Time  `json:"applicationReceivedDate"`
	EvidenceDueDate         *time.Time `json:"evidenceDueDate,omitempty"`
	EvidenceReceivedDate    *time.Time `json:"evidenceReceivedDate,omitempty"`
	UpliftAppliedDate       *time.Time `json:"upliftAppliedDate,omitempty"`
	UpliftRemovedDate       *time.Time `json:"upliftRemovedDate,omitempty"`
}

// Validate implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *UpdateEvidenceRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.FinancialAssessmentID <= 0 {
		return dErrors.New(dErrors.CodeValidation, "financialAssessmentId is required")
	}
	r.MagCourtOutcome = strings.TrimSpace(r.MagCourtOutcome)
	if r.ApplicationReceivedDate.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "applicationReceivedDate is required")
	}
	return nil
}

// ToUpdate converts the request to the domain update input. The persisted
// "previous"/"old" values are filled in by the service from the stored
// assessment, never trusted from the caller.
func (r *UpdateEvidenceRequest) ToUpdate() models.EvidenceUpdate {
	upd := models.EvidenceUpdate{
		FinancialAssessmentID:   r.FinancialAssessmentID,
		MagCourtOutcome:         r.MagCourtOutcome,
		ApplicantDetails:        toApplicantDetails(r.ApplicantDetails),
		ApplicantItems:          toEvidenceItems(r.ApplicantItems),
		PartnerItems:            toEvidenceItems(r.PartnerItems),
		ApplicantPensionAmount:  r.ApplicantPensionAmount,
		PartnerPensionAmount:    r.PartnerPensionAmount,
		ApplicationReceivedDate: r.ApplicationReceivedDate,
		EvidenceDueDate:         r.EvidenceDueDate,
		EvidenceReceivedDate:    r.EvidenceReceivedDate,
		UpliftAppliedDate:       r.UpliftAppliedDate,
		UpliftRemovedDate:       r.UpliftRemovedDate,
	}
	if r.PartnerDetails != nil {
		details := toApplicantDetails(*r.PartnerDetails)
		upd.PartnerDetails = &details
	}
	return upd
}

func toApplicantDetails(p ApplicantPayload) models.ApplicantDetails {
	return models.ApplicantDetails{
		ID:               p.ID,
		EmploymentStatus: p.EmploymentStatus,
	}
}

func toEvidenceItems(payloads []IncomeEvidenceItemPayload) []models.IncomeEvidenceItem {
	if payloads == nil {
		return nil
	}
	items := make([]models.IncomeEvidenceItem, 0, len(payloads))
	for _, p := range payloads {
		items = append(items, models.IncomeEvidenceItem{
			ID:           p.ID,
			EvidenceType: p.EvidenceType,
			DateReceived: p.DateReceived,
			Description:  p.Description,
			Mandatory:    p.Mandatory,
		})
	}
	return items
}
