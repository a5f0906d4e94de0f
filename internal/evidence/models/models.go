// Package models holds the evidence domain types exchanged between the
// handlers, services, stores, and collaborator clients. Nil pointers mean
// "absent": a nil received date is outstanding evidence, a nil fee is no
// fee determined, a nil partner is no partner on the application.
package models

import "time"

// ApplicantType distinguishes whose evidence a requirement or item belongs to.
type ApplicantType string

const (
	ApplicantTypeApplicant ApplicantType = "APPLICANT"
	ApplicantTypePartner   ApplicantType = "PARTNER"
)

// EvidenceFee is the determined fee for a case. Either both fields are set
// or the fee is absent entirely.
type EvidenceFee struct {
	FeeLevel    string `json:"feeLevel"`
	Description string `json:"description"`
}

// CapitalEvidenceItem is one piece of capital evidence on a case. A nil
// DateReceived means the item is outstanding.
type CapitalEvidenceItem struct {
	EvidenceType string     `json:"evidenceType"`
	DateReceived *time.Time `json:"dateReceived,omitempty"`
}

// EvidenceCase carries everything the fee determination needs about a rep
// order. A nil CapitalEvidence slice means the case has no capital evidence
// list at all, which is distinct from an empty one only in that neither
// produces a local item count.
type EvidenceCase struct {
	RepID                       int                   `json:"repId"`
	MagCourtOutcome             string                `json:"magCourtOutcome"`
	EvidenceFee                 *EvidenceFee          `json:"evidenceFee,omitempty"`
	CapitalEvidence             []CapitalEvidenceItem `json:"capitalEvidence,omitempty"`
	IncomeEvidenceReceivedDate  *time.Time            `json:"incomeEvidenceReceivedDate,omitempty"`
	CapitalEvidenceReceivedDate *time.Time            `json:"capitalEvidenceReceivedDate,omitempty"`
	EmstCode                    string                `json:"emstCode"`
}

// ApplicantDetails identifies one person on the application together with
// their employment status code.
type ApplicantDetails struct {
	ID               int    `json:"id"`
	EmploymentStatus string `json:"employmentStatus"`
}

// IncomeEvidenceItem is one supplied (or defaulted) income evidence item.
// Description carries the free text required for the "other" evidence types.
type IncomeEvidenceItem struct {
	ID           int        `json:"id,omitempty"`
	EvidenceType string     `json:"evidenceType"`
	DateReceived *time.Time `json:"dateReceived,omitempty"`
	Description  string     `json:"description,omitempty"`
	Mandatory    bool       `json:"mandatory"`
}

// EvidenceCreate is the input for defaulting a new application's income
// evidence items.
type EvidenceCreate struct {
	MagCourtOutcome        string
	ApplicantDetails       ApplicantDetails
	PartnerDetails         *ApplicantDetails
	ApplicantPensionAmount float64
	PartnerPensionAmount   float64
}

// EvidenceItems pairs a person with their evidence item list.
type EvidenceItems struct {
	Details ApplicantDetails     `json:"applicantDetails"`
	Items   []IncomeEvidenceItem `json:"incomeEvidenceItems"`
}

// CreateResult is the outcome of defaulting evidence items for a new
// application.
type CreateResult struct {
	ApplicantItems EvidenceItems
	PartnerItems   *EvidenceItems
}

// EvidenceUpdate is the per-update working set. The "Previous"/"Old" fields
// hold the persisted summary values loaded before this update; the plain
// fields hold what the caller wants them to become. The update service
// treats the struct as immutable input and returns an UpdateResult.
type EvidenceUpdate struct {
	FinancialAssessmentID int
	MagCourtOutcome       string

	ApplicantDetails ApplicantDetails
	PartnerDetails   *ApplicantDetails
	ApplicantItems   []IncomeEvidenceItem
	PartnerItems     []IncomeEvidenceItem

	ApplicantPensionAmount float64
	PartnerPensionAmount   float64

	ApplicationReceivedDate time.Time
	EvidencePending         bool

	EvidenceDueDate         *time.Time
	PreviousEvidenceDueDate *time.Time
	EvidenceReceivedDate    *time.Time

	UpliftAppliedDate    *time.Time
	OldUpliftAppliedDate *time.Time
	UpliftRemovedDate    *time.Time
	OldUpliftRemovedDate *time.Time
}

// UpdateResult bundles the post-update state handed back to the caller.
type UpdateResult struct {
	ApplicantItems          EvidenceItems
	PartnerItems            *EvidenceItems
	DueDate                 *time.Time
	AllEvidenceReceivedDate *time.Time
	UpliftAppliedDate       *time.Time
	UpliftRemovedDate       *time.Time
}

// EvidenceReceivedResult reports whether a role's minimum item count was met
// and which requirement row applied.
type EvidenceReceivedResult struct {
	Received        bool
	RequirementID   int
	MinimumRequired int
}

// IncomeEvidenceSummary mirrors the means assessment service's evidence
// summary block: the persisted due/received/uplift dates for an assessment.
type IncomeEvidenceSummary struct {
	EvidenceDueDate      *time.Time `json:"evidenceDueDate,omitempty"`
	EvidenceReceivedDate *time.Time `json:"evidenceReceivedDate,omitempty"`
	UpliftAppliedDate    *time.Time `json:"upliftAppliedDate,omitempty"`
	UpliftRemovedDate    *time.Time `json:"upliftRemovedDate,omitempty"`
	EvidencePending      bool       `json:"evidencePending"`
}

// AssessmentEvidenceItem is an income evidence item as the means assessment
// service stores it, keyed by the person it belongs to.
type AssessmentEvidenceItem struct {
	ID           int        `json:"id,omitempty"`
	ApplicantID  int        `json:"applicantId"`
	EvidenceType string     `json:"evidenceType"`
	DateReceived *time.Time `json:"dateReceived,omitempty"`
	OtherText    string     `json:"otherText,omitempty"`
}

// MeansAssessment is the slice of a means assessment this service reads and
// writes: the evidence summary plus the stored evidence items.
type MeansAssessment struct {
	FinancialAssessmentID int                      `json:"financialAssessmentId"`
	Summary               IncomeEvidenceSummary    `json:"incomeEvidenceSummary"`
	EvidenceItems         []AssessmentEvidenceItem `json:"incomeEvidence"`
}
