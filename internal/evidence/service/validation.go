package service

import (
	"context"
	"strings"
	"time"

	"crime-evidence/internal/evidence/models"
	"crime-evidence/internal/evidence/staticdata"
	dErrors "crime-evidence/pkg/domain-errors"
	"crime-evidence/pkg/requestcontext"
)

// All date invariants operate at day granularity: the hour an update
// arrives must not change its validity.

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDate(a, b time.Time) bool {
	return dateOf(a).Equal(dateOf(b))
}

func sameDatePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return sameDate(*a, *b)
}

// CheckEvidenceReceivedDate enforces that a supplied received date is
// neither in the future nor before the application was received.
func CheckEvidenceReceivedDate(ctx context.Context, received *time.Time, applicationReceived time.Time) error {
	if received == nil {
		return nil
	}
	today := dateOf(requestcontext.Now(ctx))
	if dateOf(*received).After(today) {
		return dErrors.New(dErrors.CodeValidation, "income evidence received date cannot be in the future")
	}
	if dateOf(*received).Before(dateOf(applicationReceived)) {
		return dErrors.New(dErrors.CodeValidation, "income evidence received date cannot be before the application received date")
	}
	return nil
}

// CheckExtraEvidenceDescriptions rejects unknown evidence types and "other"
// type items without descriptive text.
func CheckExtraEvidenceDescriptions(items []models.IncomeEvidenceItem) error {
	for _, item := range items {
		if _, err := staticdata.IncomeEvidenceFrom(item.EvidenceType); err != nil {
			return err
		}
		if staticdata.IsOtherEvidenceType(item.EvidenceType) && strings.TrimSpace(item.Description) == "" {
			return dErrors.New(dErrors.CodeValidation, "when other evidence is supplied, descriptive text must be provided")
		}
	}
	return nil
}

// CheckEvidenceDueDates enforces the due date rules: a pending case keeps
// its due date once one has been set, and a changed due date may never be
// in the past (retaining the previous, already-past date is allowed).
func CheckEvidenceDueDates(ctx context.Context, due, previousDue *time.Time, evidencePending bool) error {
	if due == nil && previousDue != nil && evidencePending {
		return dErrors.New(dErrors.CodeValidation, "evidence due date cannot be removed while evidence is pending")
	}
	if due != nil {
		today := dateOf(requestcontext.Now(ctx))
		if dateOf(*due).Before(today) && !sameDatePtr(due, previousDue) {
			return dErrors.New(dErrors.CodeValidation, "cannot set the evidence due date in the past")
		}
	}
	return nil
}

// ValidateUpliftDates enforces the uplift applied/removed invariants.
// Removal rules run before applied-date rules; the order is part of the
// contract because an update can trip several rules at once and callers
// key behaviour off the first violation reported.
func ValidateUpliftDates(ctx context.Context, upd models.EvidenceUpdate, allEvidenceReceived bool) error {
	today := dateOf(requestcontext.Now(ctx))

	if upd.UpliftRemovedDate != nil && upd.OldUpliftAppliedDate == nil {
		return dErrors.New(dErrors.CodeValidation, "uplift removed date cannot be set when no uplift has been applied")
	}
	if upd.UpliftRemovedDate != nil &&
		!sameDatePtr(upd.UpliftRemovedDate, upd.OldUpliftRemovedDate) &&
		!sameDate(*upd.UpliftRemovedDate, today) {
		return dErrors.New(dErrors.CodeValidation, "uplift removed date must be set to today")
	}
	if upd.OldUpliftRemovedDate != nil {
		if upd.UpliftRemovedDate == nil {
			return dErrors.New(dErrors.CodeValidation, "uplift removed date cannot be cleared once set")
		}
		if !sameDatePtr(upd.UpliftRemovedDate, upd.OldUpliftRemovedDate) {
			return dErrors.New(dErrors.CodeValidation, "uplift removed date cannot be changed once set")
		}
	}

	if upd.UpliftAppliedDate != nil && upd.OldUpliftAppliedDate == nil && allEvidenceReceived {
		return dErrors.New(dErrors.CodeValidation, "uplift cannot be applied once all evidence has been received")
	}
	if upd.UpliftAppliedDate != nil &&
		!sameDatePtr(upd.UpliftAppliedDate, upd.OldUpliftAppliedDate) &&
		!sameDate(*upd.UpliftAppliedDate, today) {
		return dErrors.New(dErrors.CodeValidation, "uplift applied date must be set to today")
	}
	if upd.OldUpliftAppliedDate != nil {
		if upd.UpliftAppliedDate == nil {
			return dErrors.New(dErrors.CodeValidation, "uplift applied date cannot be cleared once set")
		}
		if upd.OldUpliftRemovedDate == nil && !sameDatePtr(upd.UpliftAppliedDate, upd.OldUpliftAppliedDate) {
			return dErrors.New(dErrors.CodeValidation, "a new uplift cannot be applied until the previous uplift has been removed")
		}
	}

	return nil
}
