package staticdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "crime-evidence/pkg/domain-errors"
)

func TestIncomeEvidenceFrom(t *testing.T) {
	t.Run("known code resolves with letter wording", func(t *testing.T) {
		evidence, err := IncomeEvidenceFrom("BANK STATEMENT")
		require.NoError(t, err)
		assert.Equal(t, "Bank Statement(s) covering 3 months", evidence.LetterDescription)
		assert.False(t, evidence.Adhoc)
	})

	t.Run("adhoc codes carry the adhoc flag", func(t *testing.T) {
		evidence, err := IncomeEvidenceFrom("WAGE SLIP ADHOC")
		require.NoError(t, err)
		assert.True(t, evidence.Adhoc)
	})

	t.Run("blank code resolves to zero value", func(t *testing.T) {
		evidence, err := IncomeEvidenceFrom("  ")
		require.NoError(t, err)
		assert.Empty(t, evidence.Code)
	})

	t.Run("unknown code is a validation failure", func(t *testing.T) {
		_, err := IncomeEvidenceFrom("PAYSLIP")
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeValidation))
	})
}

func TestIsOtherEvidenceType(t *testing.T) {
	assert.True(t, IsOtherEvidenceType("OTHER"))
	assert.True(t, IsOtherEvidenceType("OTHER BUSINESS"))
	assert.True(t, IsOtherEvidenceType("OTHER_ADHOC"))
	assert.False(t, IsOtherEvidenceType("TAX RETURN"))
}
