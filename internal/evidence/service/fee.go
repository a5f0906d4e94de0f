package service

import (
	"context"
	"strings"

	"crime-evidence/internal/audit"
	"crime-evidence/internal/evidence/models"
	"crime-evidence/internal/evidence/staticdata"
)

const (
	outcomeSentForTrial      = "SENT FOR TRIAL"
	outcomeCommittedForTrial = "COMMITTED FOR TRIAL"
)

// CalculateEvidenceFee determines the evidence fee for a case. When the
// outcome is not trial related, or a fee level already exists, the existing
// (possibly absent) fee is returned unchanged and no collaborator is
// called. A nil result with a nil error means no fee was determined, which
// is a valid terminal state.
func (s *Service) CalculateEvidenceFee(ctx context.Context, ec models.EvidenceCase) (*models.EvidenceFee, error) {
	if !feeCalculationRequired(ec) {
		if s.metrics != nil {
			s.metrics.FeeCalculations.WithLabelValues("skipped").Inc()
		}
		return ec.EvidenceFee, nil
	}

	var capitalItemCount *int64
	var outstandingCount int64
	if ec.CapitalEvidence != nil {
		var receivedCount int64
		for _, item := range ec.CapitalEvidence {
			if item.DateReceived != nil {
				receivedCount++
			} else {
				outstandingCount++
			}
		}
		capitalItemCount = &receivedCount
	}

	if capitalItemCount != nil {
		// The locally derived count only proves a capital evidence list
		// exists; the count used for the rule match is always the
		// authoritative one held by the court data service.
		count, err := s.courtData.CapitalAssetCount(ctx, ec.RepID)
		if err != nil {
			return nil, err
		}
		capitalItemCount = &count
	}

	incomeEvidenceReceived := "N"
	if ec.IncomeEvidenceReceivedDate != nil {
		incomeEvidenceReceived = "Y"
	}

	capitalEvidenceReceived := "N"
	if ec.CapitalEvidenceReceivedDate != nil || capitalItemCount == nil || outstandingCount == 0 {
		capitalEvidenceReceived = "Y"
	}

	if strings.TrimSpace(ec.EmstCode) != "" && capitalItemCount != nil {
		if rule, ok := staticdata.MatchFeeRule(ec.EmstCode, incomeEvidenceReceived, capitalEvidenceReceived, *capitalItemCount); ok {
			detail, err := staticdata.DescribeFeeLevel(rule.FeeLevel)
			if err != nil {
				return nil, err
			}

			fee := &models.EvidenceFee{
				FeeLevel:    detail.FeeLevel,
				Description: detail.Description,
			}
			if s.metrics != nil {
				s.metrics.FeeCalculations.WithLabelValues(fee.FeeLevel).Inc()
			}
			s.emit(ctx, audit.Event{
				RepID:   ec.RepID,
				Action:  audit.ActionFeeDetermined,
				Outcome: fee.FeeLevel,
			})
			s.logger.InfoContext(ctx, "evidence fee determined",
				"rep_id", ec.RepID,
				"emst_code", ec.EmstCode,
				"fee_level", fee.FeeLevel,
			)
			return fee, nil
		}
	}

	if s.metrics != nil {
		s.metrics.FeeCalculations.WithLabelValues("none").Inc()
	}
	return nil, nil
}

// feeCalculationRequired gates the fee determination: only trial-related
// outcomes without an existing fee level are calculated.
func feeCalculationRequired(ec models.EvidenceCase) bool {
	if !strings.EqualFold(ec.MagCourtOutcome, outcomeSentForTrial) &&
		!strings.EqualFold(ec.MagCourtOutcome, outcomeCommittedForTrial) {
		return false
	}
	return ec.EvidenceFee == nil || ec.EvidenceFee.FeeLevel == ""
}
