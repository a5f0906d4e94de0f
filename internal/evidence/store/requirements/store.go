// Package requirements looks up how many income evidence items an
// applicant or partner must provide, and which items those are. The data is
// reference data migrated from TOGDATA; this service only ever reads it.
package requirements

import (
	"context"

	"crime-evidence/internal/evidence/models"
	dErrors "crime-evidence/pkg/domain-errors"
)

// ErrNotFound is returned by Find when no requirement bracket matches.
// Callers treat it as "no requirement", not as a failure.
var ErrNotFound = dErrors.New(dErrors.CodeNotFound, "no income evidence requirement matches")

// Key identifies a requirement bracket lookup. PartnerEmstCode nil matches
// only rows with no partner code.
type Key struct {
	MagCourtOutcome   string               `json:"magCourtOutcome"`
	ApplicantEmstCode string               `json:"applicantEmstCode"`
	PartnerEmstCode   *string              `json:"partnerEmstCode,omitempty"`
	ApplicantType     models.ApplicantType `json:"applicantType"`
	PensionAmount     float64              `json:"pensionAmount"`
}

// Requirement is a matched requirement row.
type Requirement struct {
	ID                    int `json:"id"`
	EvidenceItemsRequired int `json:"evidenceItemsRequired"`
}

// RequiredItem is one evidence item a requirement row demands. EvidenceType
// matches supplied items by exact code.
type RequiredItem struct {
	ID            int    `json:"id"`
	RequirementID int    `json:"requirementId"`
	EvidenceType  string `json:"evidenceType"`
	Mandatory     bool   `json:"mandatory"`
}

// Store is the read-only lookup contract. Among rows matching the outcome,
// employment codes, and role, Find selects the row with the smallest annual
// pension ceiling that is still >= the key's pension amount (the
// tightest-fitting bracket), returning ErrNotFound when no bracket
// qualifies.
type Store interface {
	Find(ctx context.Context, key Key) (*Requirement, error)
	RequiredItems(ctx context.Context, requirementID int) ([]RequiredItem, error)
}
