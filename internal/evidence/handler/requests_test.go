package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateFeeRequestToCase(t *testing.T) {
	t.Run("nil capital evidence stays nil", func(t *testing.T) {
		req := CalculateFeeRequest{RepID: 1, MagCourtOutcome: "SENT FOR TRIAL"}
		ec := req.ToCase()
		assert.Nil(t, ec.CapitalEvidence, "nil and empty lists have different fee semantics")
	})

	t.Run("empty capital evidence stays empty but non-nil", func(t *testing.T) {
		req := CalculateFeeRequest{
			RepID:           1,
			MagCourtOutcome: "SENT FOR TRIAL",
			CapitalEvidence: []CapitalEvidenceItemPayload{},
		}
		ec := req.ToCase()
		require.NotNil(t, ec.CapitalEvidence)
		assert.Empty(t, ec.CapitalEvidence)
	})
}

func TestCreateEvidenceRequestValidate(t *testing.T) {
	valid := func() CreateEvidenceRequest {
		return CreateEvidenceRequest{
			MagCourtOutcome:  "COMMITTED FOR TRIAL",
			ApplicantDetails: ApplicantPayload{ID: 1, EmploymentStatus: "EMPLOY"},
		}
	}

	t.Run("valid request passes", func(t *testing.T) {
		req := valid()
		assert.NoError(t, req.Validate())
	})

	t.Run("blank outcome fails", func(t *testing.T) {
		req := valid()
		req.MagCourtOutcome = "  "
		assert.Error(t, req.Validate())
	})

	t.Run("blank employment status fails", func(t *testing.T) {
		req := valid()
		req.ApplicantDetails.EmploymentStatus = ""
		assert.Error(t, req.Validate())
	})

	t.Run("negative pension fails", func(t *testing.T) {
		req := valid()
		req.ApplicantPensionAmount = -1
		assert.Error(t, req.Validate())
	})

	t.Run("partner without employment status fails", func(t *testing.T) {
		req := valid()
		req.PartnerDetails = &ApplicantPayload{ID: 2}
		assert.Error(t, req.Validate())
	})
}

func TestUpdateEvidenceRequestValidate(t *testing.T) {
	t.Run("missing application received date fails", func(t *testing.T) {
		req := UpdateEvidenceRequest{FinancialAssessmentID: 9000}
		assert.Error(t, req.Validate())
	})

	t.Run("complete request passes and maps items", func(t *testing.T) {
		received := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)
		req := UpdateEvidenceRequest{
			FinancialAssessmentID:   9000,
			ApplicationReceivedDate: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
			ApplicantItems: []IncomeEvidenceItemPayload{
				{EvidenceType: "WAGE SLIP", DateReceived: &received, Mandatory: true},
			},
		}
		require.NoError(t, req.Validate())

		upd := req.ToUpdate()
		require.Len(t, upd.ApplicantItems, 1)
		assert.Equal(t, "WAGE SLIP", upd.ApplicantItems[0].EvidenceType)
		assert.True(t, upd.ApplicantItems[0].Mandatory)
		assert.Nil(t, upd.PartnerDetails)
	})
}
