package staticdata

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// =============================================================================
// Fee Rule Table Test Suite
// =============================================================================
// Justification for unit tests: the rule table is evaluated top to bottom and
// the first match wins, so both the row contents and their order are part of
// the contract. These tests pin the boundaries exactly.

type FeeRulesSuite struct {
	suite.Suite
}

func TestFeeRulesSuite(t *testing.T) {
	suite.Run(t, new(FeeRulesSuite))
}

func (s *FeeRulesSuite) TestSelfEmployedRules() {
	s.Run("SELF matches at any capital count", func() {
		for _, count := range []int64{0, 1, 100} {
			rule, ok := MatchFeeRule("SELF", "Y", "Y", count)
			s.True(ok, "count %d should match", count)
			s.Equal(FeeLevel1, rule.FeeLevel)
		}
	})

	s.Run("SELF-CASH and SELF-SOT map to level 1", func() {
		for _, code := range []string{"SELF-CASH", "SELF-SOT"} {
			rule, ok := MatchFeeRule(code, "Y", "Y", 0)
			s.True(ok)
			s.Equal(FeeLevel1, rule.FeeLevel)
		}
	})
}

func (s *FeeRulesSuite) TestEmpcdsBoundaries() {
	s.Run("zero through three items map to level 2", func() {
		for _, count := range []int64{0, 1, 2, 3} {
			rule, ok := MatchFeeRule("EMPCDS", "Y", "Y", count)
			s.True(ok, "count %d should match", count)
			s.Equal(FeeLevel2, rule.FeeLevel, "count %d", count)
		}
	})

	s.Run("four or more items map to level 1", func() {
		for _, count := range []int64{4, 5, 50} {
			rule, ok := MatchFeeRule("EMPCDS", "Y", "Y", count)
			s.True(ok, "count %d should match", count)
			s.Equal(FeeLevel1, rule.FeeLevel, "count %d", count)
		}
	})
}

func (s *FeeRulesSuite) TestEmployedBoundaries() {
	for _, code := range []string{"EMPLOY", "EMPLOYED-CASH", "NONPASS"} {
		s.Run(code+" zero items has no rule", func() {
			_, ok := MatchFeeRule(code, "Y", "Y", 0)
			s.False(ok)
		})

		s.Run(code+" one through four items map to level 2", func() {
			for _, count := range []int64{1, 2, 3, 4} {
				rule, ok := MatchFeeRule(code, "Y", "Y", count)
				s.True(ok, "count %d should match", count)
				s.Equal(FeeLevel2, rule.FeeLevel, "count %d", count)
			}
		})

		s.Run(code+" five or more items map to level 1", func() {
			for _, count := range []int64{5, 6, 999} {
				rule, ok := MatchFeeRule(code, "Y", "Y", count)
				s.True(ok, "count %d should match", count)
				s.Equal(FeeLevel1, rule.FeeLevel, "count %d", count)
			}
		})
	}
}

func (s *FeeRulesSuite) TestCompletenessFlagsMustMatchExactly() {
	s.Run("outstanding income evidence never matches", func() {
		_, ok := MatchFeeRule("SELF", "N", "Y", 0)
		s.False(ok)
	})

	s.Run("outstanding capital evidence never matches", func() {
		_, ok := MatchFeeRule("SELF", "Y", "N", 0)
		s.False(ok)
	})
}

func (s *FeeRulesSuite) TestUnknownEmploymentCode() {
	_, ok := MatchFeeRule("PASSPORTED", "Y", "Y", 3)
	s.False(ok)
}

func (s *FeeRulesSuite) TestMatchIsDeterministic() {
	// Same inputs must always select the same row.
	first, ok := MatchFeeRule("EMPLOY", "Y", "Y", 4)
	s.Require().True(ok)
	for i := 0; i < 100; i++ {
		rule, ok := MatchFeeRule("EMPLOY", "Y", "Y", 4)
		s.Require().True(ok)
		s.Equal(first, rule)
	}
}

func (s *FeeRulesSuite) TestFeeRulesReturnsCopy() {
	rules := FeeRules()
	s.Require().NotEmpty(rules)
	rules[0].EmstCode = "TAMPERED"

	fresh := FeeRules()
	s.Equal("SELF-CASH", fresh[0].EmstCode)
}
