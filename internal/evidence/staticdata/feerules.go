// Package staticdata holds reference data migrated from the
// TOGDATA.EVIDENCE_FEE_RULES and income evidence tables. The data is fixed
// at compile time; the lookup functions are pure and safe for concurrent use.
package staticdata

// FeeLevel is the discrete output of the fee rule table.
type FeeLevel string

const (
	FeeLevel1 FeeLevel = "LEVEL1"
	FeeLevel2 FeeLevel = "LEVEL2"
)

// FeeRuleRow is one row of the evidence fee rule table. CapitalItemsUpper
// is nil for unbounded rows.
type FeeRuleRow struct {
	EmstCode                   string
	AllIncomeEvidenceReceived  string
	AllCapitalEvidenceReceived string
	CapitalItemsLower          int64
	CapitalItemsUpper          *int64
	FeeLevel                   FeeLevel
}

func upper(n int64) *int64 { return &n }

// feeRules is evaluated top to bottom and the first matching row wins, so
// declaration order is part of the contract. Do not reorder.
var feeRules = []FeeRuleRow{
	{"SELF-CASH", "Y", "Y", 0, nil, FeeLevel1},
	{"SELF-SOT", "Y", "Y", 0, nil, FeeLevel1},
	{"SELF", "Y", "Y", 0, nil, FeeLevel1},
	{"EMPCDS", "Y", "Y", 0, upper(3), FeeLevel2},
	{"EMPCDS", "Y", "Y", 4, nil, FeeLevel1},
	{"EMPLOY", "Y", "Y", 1, upper(4), FeeLevel2},
	{"EMPLOY", "Y", "Y", 5, nil, FeeLevel1},
	{"EMPLOYED-CASH", "Y", "Y", 1, upper(4), FeeLevel2},
	{"EMPLOYED-CASH", "Y", "Y", 5, nil, FeeLevel1},
	{"NONPASS", "Y", "Y", 1, upper(4), FeeLevel2},
	{"NONPASS", "Y", "Y", 5, nil, FeeLevel1},
}

// FeeRules returns the rule table in declaration order.
func FeeRules() []FeeRuleRow {
	rules := make([]FeeRuleRow, len(feeRules))
	copy(rules, feeRules)
	return rules
}

// MatchFeeRule scans the rule table in declaration order and returns the
// first row whose emst code and completeness flags match exactly and whose
// count range contains capitalItemCount. Callers must not invoke it with
// blank inputs; the fee engine skips rule lookup entirely when any input is
// absent.
func MatchFeeRule(emstCode, incomeReceived, capitalReceived string, capitalItemCount int64) (FeeRuleRow, bool) {
	for _, rule := range feeRules {
		if rule.EmstCode != emstCode ||
			rule.AllIncomeEvidenceReceived != incomeReceived ||
			rule.AllCapitalEvidenceReceived != capitalReceived {
			continue
		}
		if capitalItemCount < rule.CapitalItemsLower {
			continue
		}
		if rule.CapitalItemsUpper != nil && capitalItemCount > *rule.CapitalItemsUpper {
			continue
		}
		return rule, true
	}
	return FeeRuleRow{}, false
}
