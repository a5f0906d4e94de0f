package staticdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "crime-evidence/pkg/domain-errors"
)

func TestDescribeFeeLevel(t *testing.T) {
	t.Run("known levels resolve", func(t *testing.T) {
		detail, err := DescribeFeeLevel(FeeLevel1)
		require.NoError(t, err)
		assert.Equal(t, "LEVEL1", detail.FeeLevel)
		assert.Equal(t, "Evidence fee level 1", detail.Description)

		detail, err = DescribeFeeLevel(FeeLevel2)
		require.NoError(t, err)
		assert.Equal(t, "LEVEL2", detail.FeeLevel)
		assert.Equal(t, "Evidence fee level 2", detail.Description)
	})

	t.Run("unknown level is a configuration fault", func(t *testing.T) {
		_, err := DescribeFeeLevel(FeeLevel("LEVEL9"))
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeConfiguration))
	})
}

func TestVerifyFeeLevelCatalog(t *testing.T) {
	// Every level the rule table can produce must have a catalog entry.
	assert.NoError(t, VerifyFeeLevelCatalog())
}
