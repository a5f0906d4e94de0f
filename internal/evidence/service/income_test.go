package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"crime-evidence/internal/evidence/models"
	"crime-evidence/internal/evidence/store/requirements"
)

// =============================================================================
// Income Evidence Requirement Test Suite
// =============================================================================

type IncomeSuite struct {
	suite.Suite
	store   *requirements.MemoryStore
	service *Service
}

func TestIncomeSuite(t *testing.T) {
	suite.Run(t, new(IncomeSuite))
}

func (s *IncomeSuite) SetupTest() {
	s.store = requirements.Seeded()
	s.service = newTestService(s.T(), s.store, nil, nil)
}

func (s *IncomeSuite) checkReceived(items []models.IncomeEvidenceItem, pension float64) bool {
	received, err := s.service.CheckEvidenceReceived(
		context.Background(),
		items,
		"COMMITTED FOR TRIAL",
		"EMPLOY",
		nil,
		pension,
		models.ApplicantTypeApplicant,
	)
	s.Require().NoError(err)
	return received
}

// =============================================================================
// Minimum Count Tests
// =============================================================================

func (s *IncomeSuite) TestMinimumCount() {
	wageSlip := models.IncomeEvidenceItem{EvidenceType: "WAGE SLIP", DateReceived: datePtr(2026, 3, 1)}
	bankStatement := models.IncomeEvidenceItem{EvidenceType: "BANK STATEMENT", DateReceived: datePtr(2026, 3, 2)}
	nino := models.IncomeEvidenceItem{EvidenceType: "NINO", DateReceived: datePtr(2026, 3, 3)}

	s.Run("too few items is not received", func() {
		s.False(s.checkReceived([]models.IncomeEvidenceItem{wageSlip}, 1000))
	})

	s.Run("exactly the minimum is received", func() {
		s.True(s.checkReceived([]models.IncomeEvidenceItem{wageSlip, bankStatement}, 1000))
	})

	s.Run("adding items never revokes a satisfied requirement", func() {
		s.True(s.checkReceived([]models.IncomeEvidenceItem{wageSlip, bankStatement, nino}, 1000))
	})

	s.Run("no matching bracket means no requirement", func() {
		received, err := s.service.CheckEvidenceReceived(
			context.Background(),
			[]models.IncomeEvidenceItem{wageSlip},
			"COMMITTED FOR TRIAL",
			"PASSPORTED",
			nil,
			0,
			models.ApplicantTypeApplicant,
		)
		s.NoError(err)
		s.True(received)
	})
}

// =============================================================================
// Pension Bracket Tests
// =============================================================================

func (s *IncomeSuite) TestPensionBracketSelection() {
	// Seeded EMPLOY rows: ceiling 4999 requires 2 items, ceiling 99999999
	// requires 3. A higher pension lands in the wider bracket.
	items := []models.IncomeEvidenceItem{
		{EvidenceType: "WAGE SLIP", DateReceived: datePtr(2026, 3, 1)},
		{EvidenceType: "BANK STATEMENT", DateReceived: datePtr(2026, 3, 2)},
	}

	s.Run("low pension uses the tight bracket", func() {
		s.True(s.checkReceived(items, 1000))
	})

	s.Run("high pension needs the larger minimum", func() {
		s.False(s.checkReceived(items, 10000))
	})
}

// =============================================================================
// Mandatory Item Tests
// =============================================================================

func (s *IncomeSuite) TestMandatoryItems() {
	s.Run("count met but mandatory item missing is outstanding", func() {
		items := []models.IncomeEvidenceItem{
			{EvidenceType: "WAGE SLIP", DateReceived: datePtr(2026, 3, 1)},
			{EvidenceType: "NINO", DateReceived: datePtr(2026, 3, 2)},
		}
		s.False(s.checkReceived(items, 1000), "BANK STATEMENT is mandatory and absent")
	})

	s.Run("mandatory item present but unreceived is outstanding", func() {
		items := []models.IncomeEvidenceItem{
			{EvidenceType: "WAGE SLIP", DateReceived: datePtr(2026, 3, 1)},
			{EvidenceType: "BANK STATEMENT"},
		}
		s.False(s.checkReceived(items, 1000))
	})

	s.Run("optional items do not need receipt", func() {
		received, err := s.service.CheckEvidenceReceived(
			context.Background(),
			[]models.IncomeEvidenceItem{
				{EvidenceType: "WAGE SLIP", DateReceived: datePtr(2026, 3, 1)},
				{EvidenceType: "BANK STATEMENT", DateReceived: datePtr(2026, 3, 2)},
				{EvidenceType: "NINO"},
			},
			"COMMITTED FOR TRIAL",
			"EMPLOY",
			nil,
			10000,
			models.ApplicantTypeApplicant,
		)
		s.NoError(err)
		s.True(received, "NINO is optional in the wide bracket")
	})
}

// =============================================================================
// Create Defaults Tests
// =============================================================================

func (s *IncomeSuite) TestCreateEvidence() {
	ctx := context.Background()

	s.Run("applicant defaults come from the matched bracket", func() {
		result, err := s.service.CreateEvidence(ctx, models.EvidenceCreate{
			MagCourtOutcome:        "COMMITTED FOR TRIAL",
			ApplicantDetails:       models.ApplicantDetails{ID: 1, EmploymentStatus: "EMPLOY"},
			ApplicantPensionAmount: 1000,
		})
		s.Require().NoError(err)
		s.Require().Len(result.ApplicantItems.Items, 2)
		s.Equal("WAGE SLIP", result.ApplicantItems.Items[0].EvidenceType)
		s.True(result.ApplicantItems.Items[0].Mandatory)
		s.Nil(result.PartnerItems)
	})

	s.Run("partner gets their own requirement row", func() {
		partner := models.ApplicantDetails{ID: 2, EmploymentStatus: "EMPLOY"}
		result, err := s.service.CreateEvidence(ctx, models.EvidenceCreate{
			MagCourtOutcome:        "COMMITTED FOR TRIAL",
			ApplicantDetails:       models.ApplicantDetails{ID: 1, EmploymentStatus: "EMPLOY"},
			PartnerDetails:         &partner,
			ApplicantPensionAmount: 1000,
		})
		s.Require().NoError(err)
		s.Require().NotNil(result.PartnerItems)
		s.Require().Len(result.PartnerItems.Items, 1)
		s.Equal("WAGE SLIP", result.PartnerItems.Items[0].EvidenceType)
		s.Equal(2, result.PartnerItems.Details.ID)
	})

	s.Run("no bracket means no default items", func() {
		result, err := s.service.CreateEvidence(ctx, models.EvidenceCreate{
			MagCourtOutcome:  "COMMITTED FOR TRIAL",
			ApplicantDetails: models.ApplicantDetails{ID: 1, EmploymentStatus: "PASSPORTED"},
		})
		s.Require().NoError(err)
		s.Empty(result.ApplicantItems.Items)
	})
}
