package service

import (
	"context"

	"crime-evidence/internal/audit"
	"crime-evidence/internal/evidence/models"
	dErrors "crime-evidence/pkg/domain-errors"
	"crime-evidence/pkg/requestcontext"
)

// UpdateEvidence runs the full update pipeline: load the persisted summary,
// validate the supplied dates and items, decide whether all evidence is now
// received per role, apply the due/received/uplift date transitions, and
// persist the result back to the means assessment service.
func (s *Service) UpdateEvidence(ctx context.Context, upd models.EvidenceUpdate) (*models.UpdateResult, error) {
	if len(upd.ApplicantItems) == 0 && len(upd.PartnerItems) == 0 {
		s.recordValidationFailure("no_evidence_items")
		return nil, dErrors.New(dErrors.CodeNoEvidence, "no income evidence items provided")
	}

	assessment, err := s.meansAssessment.Find(ctx, upd.FinancialAssessmentID)
	if err != nil {
		return nil, err
	}
	upd.PreviousEvidenceDueDate = assessment.Summary.EvidenceDueDate
	upd.OldUpliftAppliedDate = assessment.Summary.UpliftAppliedDate
	upd.OldUpliftRemovedDate = assessment.Summary.UpliftRemovedDate
	upd.EvidencePending = assessment.Summary.EvidencePending

	if err := CheckEvidenceReceivedDate(ctx, upd.EvidenceReceivedDate, upd.ApplicationReceivedDate); err != nil {
		s.recordValidationFailure("received_date")
		return nil, err
	}
	if err := CheckExtraEvidenceDescriptions(upd.ApplicantItems); err != nil {
		s.recordValidationFailure("evidence_description")
		return nil, err
	}
	if err := CheckExtraEvidenceDescriptions(upd.PartnerItems); err != nil {
		s.recordValidationFailure("evidence_description")
		return nil, err
	}
	if err := CheckEvidenceDueDates(ctx, upd.EvidenceDueDate, upd.PreviousEvidenceDueDate, upd.EvidencePending); err != nil {
		s.recordValidationFailure("due_date")
		return nil, err
	}

	allReceived, err := s.allEvidenceReceived(ctx, upd)
	if err != nil {
		return nil, err
	}

	if err := ValidateUpliftDates(ctx, upd, allReceived); err != nil {
		s.recordValidationFailure("uplift_dates")
		return nil, err
	}

	summary := s.applyDateTransitions(ctx, upd, allReceived)

	updated, err := s.meansAssessment.Update(ctx, models.MeansAssessment{
		FinancialAssessmentID: upd.FinancialAssessmentID,
		Summary:               summary,
		EvidenceItems:         assessmentItems(upd),
	})
	if err != nil {
		return nil, err
	}

	result := buildUpdateResult(upd, updated)

	if s.metrics != nil {
		label := "N"
		if allReceived {
			label = "Y"
		}
		s.metrics.EvidenceUpdates.WithLabelValues(label).Inc()
	}
	s.emit(ctx, audit.Event{
		FinancialAssessmentID: upd.FinancialAssessmentID,
		Action:                audit.ActionEvidenceUpdated,
		Outcome:               upd.MagCourtOutcome,
	})
	s.logger.InfoContext(ctx, "income evidence updated",
		"financial_assessment_id", upd.FinancialAssessmentID,
		"all_evidence_received", allReceived,
	)
	return result, nil
}

// allEvidenceReceived checks each role's requirement independently: a role
// with no supplied items imposes no requirement. Partner items on an
// application without a partner are a caller error.
func (s *Service) allEvidenceReceived(ctx context.Context, upd models.EvidenceUpdate) (bool, error) {
	var partnerEmstCode *string
	if upd.PartnerDetails != nil {
		partnerEmstCode = &upd.PartnerDetails.EmploymentStatus
	}

	applicantReceived := true
	if len(upd.ApplicantItems) > 0 {
		received, err := s.CheckEvidenceReceived(
			ctx,
			upd.ApplicantItems,
			upd.MagCourtOutcome,
			upd.ApplicantDetails.EmploymentStatus,
			partnerEmstCode,
			upd.ApplicantPensionAmount,
			models.ApplicantTypeApplicant,
		)
		if err != nil {
			return false, err
		}
		applicantReceived = received
	}

	partnerReceived := true
	if len(upd.PartnerItems) > 0 {
		if upd.PartnerDetails == nil {
			return false, dErrors.New(dErrors.CodeValidation, "partner evidence items supplied without partner details")
		}
		received, err := s.CheckEvidenceReceived(
			ctx,
			upd.PartnerItems,
			upd.MagCourtOutcome,
			upd.ApplicantDetails.EmploymentStatus,
			partnerEmstCode,
			upd.PartnerPensionAmount,
			models.ApplicantTypePartner,
		)
		if err != nil {
			return false, err
		}
		partnerReceived = received
	}

	return applicantReceived && partnerReceived, nil
}

// applyDateTransitions mutates a working copy of the summary dates:
//   - a missing due date carries the previous one forward
//   - the received date is stamped when everything has just arrived, and
//     cleared again when something is re-outstanding
//   - a changed uplift application resets the removal, and the removal is
//     auto-stamped once everything is in while an uplift is still applied
func (s *Service) applyDateTransitions(ctx context.Context, upd models.EvidenceUpdate, allReceived bool) models.IncomeEvidenceSummary {
	due := upd.EvidenceDueDate
	if due == nil && upd.PreviousEvidenceDueDate != nil {
		due = upd.PreviousEvidenceDueDate
	}

	received := upd.EvidenceReceivedDate
	if allReceived && received == nil {
		now := requestcontext.Now(ctx)
		received = &now
	}
	if !allReceived && received != nil {
		received = nil
	}

	applied := upd.UpliftAppliedDate
	removed := upd.UpliftRemovedDate
	if !sameDatePtr(applied, upd.OldUpliftAppliedDate) {
		removed = nil
	}
	if allReceived && applied != nil && removed == nil {
		today := dateOf(requestcontext.Now(ctx))
		removed = &today
	}

	return models.IncomeEvidenceSummary{
		EvidenceDueDate:      due,
		EvidenceReceivedDate: received,
		UpliftAppliedDate:    applied,
		UpliftRemovedDate:    removed,
		EvidencePending:      !allReceived,
	}
}

// assessmentItems flattens both roles' items into the means assessment
// representation, stamping each with its owner's id.
func assessmentItems(upd models.EvidenceUpdate) []models.AssessmentEvidenceItem {
	items := make([]models.AssessmentEvidenceItem, 0, len(upd.ApplicantItems)+len(upd.PartnerItems))
	for _, item := range upd.ApplicantItems {
		items = append(items, toAssessmentItem(item, upd.ApplicantDetails.ID))
	}
	if upd.PartnerDetails != nil {
		for _, item := range upd.PartnerItems {
			items = append(items, toAssessmentItem(item, upd.PartnerDetails.ID))
		}
	}
	return items
}

func toAssessmentItem(item models.IncomeEvidenceItem, applicantID int) models.AssessmentEvidenceItem {
	return models.AssessmentEvidenceItem{
		ID:           item.ID,
		ApplicantID:  applicantID,
		EvidenceType: item.EvidenceType,
		DateReceived: item.DateReceived,
		OtherText:    item.Description,
	}
}

// buildUpdateResult splits the persisted items back out per person and pairs
// them with the post-transition summary dates.
func buildUpdateResult(upd models.EvidenceUpdate, updated *models.MeansAssessment) *models.UpdateResult {
	result := &models.UpdateResult{
		ApplicantItems: models.EvidenceItems{
			Details: upd.ApplicantDetails,
			Items:   itemsFor(updated.EvidenceItems, upd.ApplicantDetails.ID),
		},
		DueDate:                 updated.Summary.EvidenceDueDate,
		AllEvidenceReceivedDate: updated.Summary.EvidenceReceivedDate,
		UpliftAppliedDate:       updated.Summary.UpliftAppliedDate,
		UpliftRemovedDate:       updated.Summary.UpliftRemovedDate,
	}
	if upd.PartnerDetails != nil && len(upd.PartnerItems) > 0 {
		result.PartnerItems = &models.EvidenceItems{
			Details: *upd.PartnerDetails,
			Items:   itemsFor(updated.EvidenceItems, upd.PartnerDetails.ID),
		}
	}
	return result
}

func itemsFor(items []models.AssessmentEvidenceItem, applicantID int) []models.IncomeEvidenceItem {
	var out []models.IncomeEvidenceItem
	for _, item := range items {
		if item.ApplicantID != applicantID {
			continue
		}
		out = append(out, models.IncomeEvidenceItem{
			ID:           item.ID,
			EvidenceType: item.EvidenceType,
			DateReceived: item.DateReceived,
			Description:  item.OtherText,
		})
	}
	return out
}
