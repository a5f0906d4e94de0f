package staticdata

import (
	dErrors "crime-evidence/pkg/domain-errors"
)

// FeeLevelDetail is the externally visible fee level code and description
// attached to a determined fee.
type FeeLevelDetail struct {
	FeeLevel    string
	Description string
}

var feeLevels = map[FeeLevel]FeeLevelDetail{
	FeeLevel1: {FeeLevel: "LEVEL1", Description: "Evidence fee level 1"},
	FeeLevel2: {FeeLevel: "LEVEL2", Description: "Evidence fee level 2"},
}

// DescribeFeeLevel resolves a fee level to its catalog entry. A missing
// entry is a configuration-integrity fault: the rule table and catalog have
// diverged.
func DescribeFeeLevel(level FeeLevel) (FeeLevelDetail, error) {
	detail, ok := feeLevels[level]
	if !ok {
		return FeeLevelDetail{}, dErrors.Newf(dErrors.CodeConfiguration,
			"fee level %q has no catalog entry", level)
	}
	return detail, nil
}

// VerifyFeeLevelCatalog checks that every level the rule table can produce
// exists in the catalog. Run at startup; a failure aborts boot.
func VerifyFeeLevelCatalog() error {
	for _, rule := range feeRules {
		if _, ok := feeLevels[rule.FeeLevel]; !ok {
			return dErrors.Newf(dErrors.CodeConfiguration,
				"fee rule for %q produces level %q with no catalog entry", rule.EmstCode, rule.FeeLevel)
		}
	}
	return nil
}
