// Package audit captures key evidence actions for downstream review. Events
// are emitted from domain logic, buffered on a channel, and drained by a
// worker into one or more sinks. Auditing is ops-grade here, not
// fail-closed: a full buffer drops the event with a warning rather than
// failing the business operation.
package audit

import "time"

// Actions emitted by the evidence service.
const (
	ActionFeeDetermined   = "evidence_fee_determined"
	ActionEvidenceCreated = "income_evidence_created"
	ActionEvidenceUpdated = "income_evidence_updated"
)

// Event is one audited evidence action.
type Event struct {
	Timestamp             time.Time `json:"timestamp"`
	TransactionID         string    `json:"transactionId,omitempty"`
	RepID                 int       `json:"repId,omitempty"`
	FinancialAssessmentID int       `json:"financialAssessmentId,omitempty"`
	Action                string    `json:"action"`
	Outcome               string    `json:"outcome"`
}
