package staticdata

import (
	"strings"

	dErrors "crime-evidence/pkg/domain-errors"
)

// IncomeEvidenceType is one income evidence classification, including the
// letter wording (English and Welsh) used in correspondence and whether the
// type is an ad-hoc request.
type IncomeEvidenceType struct {
	Code                   string
	Description            string
	LetterDescription      string
	WelshLetterDescription string
	Adhoc                  bool
}

var incomeEvidenceTypes = []IncomeEvidenceType{
	{"SIGNATURE", "Signature", "Signature", "Llofnod", false},
	{"CDS15", "CDS 15", "CDS 15", "CDS 15", true},
	{"FREEZING", "Freezing order", "Freezing order", "Gorchymyn Rhewi", true},
	{"RESTRAINING", "Restraint Order", "Restraint Order", "Gorchymyn Atal", true},
	{"CONFISCATION", "Confiscation order", "Confiscation order", "Gorchymyn Atafaeliad", true},
	{"OTHER_ADHOC", "Other Adhoc", "Other Adhoc", "Ad Hoc eraill", true},
	{"EMP LETTER ADHOC", "Letter from Employer", "Letter from Employer", "Llythyr o'r cyflogwr", true},
	{"WAGE SLIP ADHOC", "Wage Slip", "Wage Slip within past 3 months", "Papur Cyflog o fewn y tri mis diwethaf", true},
	{"NINO", "National Insurance Number", "National Insurance Number", "Rhif Yswiriant Cenedlaethol", false},
	{"ACCOUNTS", "Set of Accounts", "Set of Accounts", "Cyfrifon", false},
	{"OTHER BUSINESS", "Other Business Records", "Other Business Records", "Cofnodion Busnes eraill", false},
	{"CASH BOOK", "Cash Book", "Cash Book", "Llyfr Arian", false},
	{"WAGE SLIP", "Wage Slip", "Wage Slip within past 3 months", "Papur Cyflog o fewn y tri mis diwethaf", false},
	{"BANK STATEMENT", "Bank Statement", "Bank Statement(s) covering 3 months", "Cyfriflen Banc", false},
	{"TAX RETURN", "Tax Return", "Tax Return", "Ffurflen Dreth", false},
	{"EMP LETTER", "Letter from Employer", "Letter from Employer", "Llythyr oddi wrth Gyflogwr", false},
	{"OTHER", "Other Ad-hoc evidence", "Text to be entered", "", false},
}

// otherEvidenceTypes are the codes that require accompanying free text on
// any supplied item.
var otherEvidenceTypes = map[string]struct{}{
	"OTHER":          {},
	"OTHER BUSINESS": {},
	"OTHER_ADHOC":    {},
}

// IncomeEvidenceFrom resolves an evidence type code. Blank codes resolve to
// (zero, nil); unknown non-blank codes are a validation failure.
func IncomeEvidenceFrom(code string) (IncomeEvidenceType, error) {
	if strings.TrimSpace(code) == "" {
		return IncomeEvidenceType{}, nil
	}
	for _, t := range incomeEvidenceTypes {
		if t.Code == code {
			return t, nil
		}
	}
	return IncomeEvidenceType{}, dErrors.Newf(dErrors.CodeValidation,
		"income evidence type %q does not exist", code)
}

// IsOtherEvidenceType reports whether the code is one of the "other"
// evidence types that require descriptive text.
func IsOtherEvidenceType(code string) bool {
	_, ok := otherEvidenceTypes[code]
	return ok
}
