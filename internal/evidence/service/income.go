package service

import (
	"context"

	"crime-evidence/internal/audit"
	"crime-evidence/internal/evidence/models"
	"crime-evidence/internal/evidence/store/requirements"
	dErrors "crime-evidence/pkg/domain-errors"
)

// CheckEvidenceReceived reports whether the supplied items satisfy the
// income evidence requirement for one role: the minimum count must be met
// and no mandatory item may be missing or unreceived.
func (s *Service) CheckEvidenceReceived(
	ctx context.Context,
	items []models.IncomeEvidenceItem,
	magCourtOutcome string,
	applicantEmstCode string,
	partnerEmstCode *string,
	pensionAmount float64,
	role models.ApplicantType,
) (bool, error) {
	result, err := s.checkMinimumEvidenceItemsReceived(ctx, items, magCourtOutcome, applicantEmstCode, partnerEmstCode, pensionAmount, role)
	if err != nil {
		return false, err
	}
	if !result.Received {
		return false, nil
	}
	if result.RequirementID == 0 || result.MinimumRequired == 0 {
		// No requirement, or a zero-minimum one: satisfied without
		// fetching item details.
		return true, nil
	}

	outstanding, err := s.isRequiredEvidenceOutstanding(ctx, result.RequirementID, items)
	if err != nil {
		return false, err
	}
	return !outstanding, nil
}

// checkMinimumEvidenceItemsReceived resolves the requirement bracket and
// compares the supplied item count against its minimum. No matching bracket
// means no requirement, which is trivially satisfied.
func (s *Service) checkMinimumEvidenceItemsReceived(
	ctx context.Context,
	items []models.IncomeEvidenceItem,
	magCourtOutcome string,
	applicantEmstCode string,
	partnerEmstCode *string,
	pensionAmount float64,
	role models.ApplicantType,
) (models.EvidenceReceivedResult, error) {
	req, err := s.requirements.Find(ctx, requirements.Key{
		MagCourtOutcome:   magCourtOutcome,
		ApplicantEmstCode: applicantEmstCode,
		PartnerEmstCode:   partnerEmstCode,
		ApplicantType:     role,
		PensionAmount:     pensionAmount,
	})
	if err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			return models.EvidenceReceivedResult{Received: true}, nil
		}
		return models.EvidenceReceivedResult{}, err
	}

	return models.EvidenceReceivedResult{
		Received:        len(items) >= req.EvidenceItemsRequired,
		RequirementID:   req.ID,
		MinimumRequired: req.EvidenceItemsRequired,
	}, nil
}

// isRequiredEvidenceOutstanding checks the mandatory required items against
// what was provided. The provided items are only those supplied; there may
// be many more items required than provided, so the full required list is
// loaded first and filtered to the mandatory ones.
func (s *Service) isRequiredEvidenceOutstanding(ctx context.Context, requirementID int, providedItems []models.IncomeEvidenceItem) (bool, error) {
	required, err := s.requirements.RequiredItems(ctx, requirementID)
	if err != nil {
		return false, err
	}

	var mandatory []requirements.RequiredItem
	for _, item := range required {
		if item.Mandatory {
			mandatory = append(mandatory, item)
		}
	}
	if len(mandatory) == 0 {
		return false, nil
	}
	if len(providedItems) == 0 {
		return true, nil
	}

	for _, requiredItem := range mandatory {
		if !itemReceived(providedItems, requiredItem.EvidenceType) {
			return true, nil
		}
	}
	return false, nil
}

func itemReceived(items []models.IncomeEvidenceItem, evidenceType string) bool {
	for _, item := range items {
		if item.EvidenceType == evidenceType {
			return item.DateReceived != nil
		}
	}
	return false
}

// CreateEvidence returns the default income evidence items a new
// application must provide, per role.
func (s *Service) CreateEvidence(ctx context.Context, ce models.EvidenceCreate) (*models.CreateResult, error) {
	var partnerEmstCode *string
	if ce.PartnerDetails != nil {
		partnerEmstCode = &ce.PartnerDetails.EmploymentStatus
	}

	applicantItems, err := s.defaultEvidenceItems(ctx, ce, partnerEmstCode, models.ApplicantTypeApplicant, ce.ApplicantPensionAmount)
	if err != nil {
		return nil, err
	}

	result := &models.CreateResult{
		ApplicantItems: models.EvidenceItems{
			Details: ce.ApplicantDetails,
			Items:   applicantItems,
		},
	}

	if ce.PartnerDetails != nil {
		partnerItems, err := s.defaultEvidenceItems(ctx, ce, partnerEmstCode, models.ApplicantTypePartner, ce.PartnerPensionAmount)
		if err != nil {
			return nil, err
		}
		result.PartnerItems = &models.EvidenceItems{
			Details: *ce.PartnerDetails,
			Items:   partnerItems,
		}
	}

	s.emit(ctx, audit.Event{
		Action:  audit.ActionEvidenceCreated,
		Outcome: ce.MagCourtOutcome,
	})
	return result, nil
}

func (s *Service) defaultEvidenceItems(
	ctx context.Context,
	ce models.EvidenceCreate,
	partnerEmstCode *string,
	role models.ApplicantType,
	pensionAmount float64,
) ([]models.IncomeEvidenceItem, error) {
	req, err := s.requirements.Find(ctx, requirements.Key{
		MagCourtOutcome:   ce.MagCourtOutcome,
		ApplicantEmstCode: ce.ApplicantDetails.EmploymentStatus,
		PartnerEmstCode:   partnerEmstCode,
		ApplicantType:     role,
		PensionAmount:     pensionAmount,
	})
	if err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if req.EvidenceItemsRequired <= 0 {
		return nil, nil
	}

	required, err := s.requirements.RequiredItems(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	items := make([]models.IncomeEvidenceItem, 0, len(required))
	for _, r := range required {
		items = append(items, models.IncomeEvidenceItem{
			EvidenceType: r.EvidenceType,
			Mandatory:    r.Mandatory,
		})
	}
	return items, nil
}
