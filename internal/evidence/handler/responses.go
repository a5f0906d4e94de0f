package handler

import (
	"time"

	"crime-evidence/internal/evidence/models"
)

// CalculateFeeResponse is the HTTP response for the fee determination.
// A null evidenceFee means no fee was determined, which is a valid outcome.
type CalculateFeeResponse struct {
	EvidenceFee *EvidenceFeePayload `json:"evidenceFee"`
}

// FromFee converts the determined fee (possibly absent) to a response.
func FromFee(fee *models.EvidenceFee) *CalculateFeeResponse {
	resp := &CalculateFeeResponse{}
	if fee != nil {
		resp.EvidenceFee = &EvidenceFeePayload{
			FeeLevel:    fee.FeeLevel,
			Description: fee.Description,
		}
	}
	return resp
}

// EvidenceItemsPayload pairs a person with their evidence item list.
type EvidenceItemsPayload struct {
	Details ApplicantPayload            `json:"applicantDetails"`
	Items   []IncomeEvidenceItemPayload `json:"incomeEvidenceItems"`
}

// CreateEvidenceResponse is the HTTP response for the evidence defaulting.
type CreateEvidenceResponse struct {
	ApplicantItems EvidenceItemsPayload  `json:"applicantEvidenceItems"`
	PartnerItems   *EvidenceItemsPayload `json:"partnerEvidenceItems,omitempty"`
}

// FromCreateResult converts a domain create result to an HTTP response.
func FromCreateResult(result *models.CreateResult) *CreateEvidenceResponse {
	resp := &CreateEvidenceResponse{
		ApplicantItems: fromEvidenceItems(result.ApplicantItems),
	}
	if result.PartnerItems != nil {
		partner := fromEvidenceItems(*result.PartnerItems)
		resp.PartnerItems = &partner
	}
	return resp
}

// UpdateEvidenceResponse is the HTTP response for the evidence update.
type UpdateEvidenceResponse struct {
	ApplicantItems          EvidenceItemsPayload  `json:"applicantEvidenceItems"`
	PartnerItems            *EvidenceItemsPayload `json:"partnerEvidenceItems,omitempty"`
	DueDate                 *time.Time            `json:"evidenceDueDate,omitempty"`
	AllEvidenceReceivedDate *time.Time            `json:"allEvidenceReceivedDate,omitempty"`
	UpliftAppliedDate       *time.Time            `json:"upliftAppliedDate,omitempty"`
	UpliftRemovedDate       *time.Time            `json:"upliftRemovedDate,omitempty"`
}

// FromUpdateResult converts a domain update result to an HTTP response.
func FromUpdateResult(result *models.UpdateResult) *UpdateEvidenceResponse {
	resp := &UpdateEvidenceResponse{
		ApplicantItems:          fromEvidenceItems(result.ApplicantItems),
		DueDate:                 result.DueDate,
		AllEvidenceReceivedDate: result.AllEvidenceReceivedDate,
		UpliftAppliedDate:       result.UpliftAppliedDate,
		UpliftRemovedDate:       result.UpliftRemovedDate,
	}
	if result.PartnerItems != nil {
		partner := fromEvidenceItems(*result.PartnerItems)
		resp.PartnerItems = &partner
	}
	return resp
}

func fromEvidenceItems(items models.EvidenceItems) EvidenceItemsPayload {
	payload := EvidenceItemsPayload{
		Details: ApplicantPayload{
			ID:               items.Details.ID,
			EmploymentStatus: items.Details.EmploymentStatus,
		},
		Items: make([]IncomeEvidenceItemPayload, 0, len(items.Items)),
	}
	for _, item := range items.Items {
		payload.Items = append(payload.Items, IncomeEvidenceItemPayload{
			ID:           item.ID,
			EvidenceType: item.EvidenceType,
			DateReceived: item.DateReceived,
			Description:  item.Description,
			Mandatory:    item.Mandatory,
		})
	}
	return payload
}
