package requirements

import (
	"context"
	"sync"

	"crime-evidence/internal/evidence/models"
)

// StoredRequirement is a full requirement row as held by the memory store.
type StoredRequirement struct {
	ID                    int
	MagCourtOutcome       string
	ApplicantEmstCode     string
	PartnerEmstCode       *string
	ApplicantType         models.ApplicantType
	AnnualPensionAmount   float64
	EvidenceItemsRequired int
}

// MemoryStore serves requirement lookups from in-process data. Used by
// tests and by dev environments without a database.
type MemoryStore struct {
	mu           sync.RWMutex
	requirements []StoredRequirement
	items        map[int][]RequiredItem
}

func NewMemory() *MemoryStore {
	return &MemoryStore{
		items: make(map[int][]RequiredItem),
	}
}

// AddRequirement registers a requirement row and its required items.
func (s *MemoryStore) AddRequirement(req StoredRequirement, items ...RequiredItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requirements = append(s.requirements, req)
	for i := range items {
		items[i].RequirementID = req.ID
	}
	s.items[req.ID] = append(s.items[req.ID], items...)
}

func (s *MemoryStore) Find(_ context.Context, key Key) (*Requirement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var best *StoredRequirement
	for i := range s.requirements {
		row := &s.requirements[i]
		if row.MagCourtOutcome != key.MagCourtOutcome ||
			row.ApplicantEmstCode != key.ApplicantEmstCode ||
			row.ApplicantType != key.ApplicantType {
			continue
		}
		if !partnerCodeMatches(row.PartnerEmstCode, key.PartnerEmstCode) {
			continue
		}
		if row.AnnualPensionAmount < key.PensionAmount {
			continue
		}
		if best == nil || row.AnnualPensionAmount < best.AnnualPensionAmount {
			best = row
		}
	}

	if best == nil {
		return nil, ErrNotFound
	}
	return &Requirement{ID: best.ID, EvidenceItemsRequired: best.EvidenceItemsRequired}, nil
}

func (s *MemoryStore) RequiredItems(_ context.Context, requirementID int) ([]RequiredItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.items[requirementID]
	out := make([]RequiredItem, len(items))
	copy(out, items)
	return out, nil
}

func partnerCodeMatches(rowCode, keyCode *string) bool {
	if rowCode == nil || keyCode == nil {
		return rowCode == nil && keyCode == nil
	}
	return *rowCode == *keyCode
}

// Seeded returns a memory store preloaded with representative requirement
// rows so the service can run without a database.
func Seeded() *MemoryStore {
	s := NewMemory()

	s.AddRequirement(
		StoredRequirement{
			ID: 1000, MagCourtOutcome: "COMMITTED FOR TRIAL", ApplicantEmstCode: "EMPLOY",
			ApplicantType: models.ApplicantTypeApplicant, AnnualPensionAmount: 4999, EvidenceItemsRequired: 2,
		},
		RequiredItem{ID: 1, EvidenceType: "WAGE SLIP", Mandatory: true},
		RequiredItem{ID: 2, EvidenceType: "BANK STATEMENT", Mandatory: true},
	)
	s.AddRequirement(
		StoredRequirement{
			ID: 1001, MagCourtOutcome: "COMMITTED FOR TRIAL", ApplicantEmstCode: "EMPLOY",
			ApplicantType: models.ApplicantTypeApplicant, AnnualPensionAmount: 99999999, EvidenceItemsRequired: 3,
		},
		RequiredItem{ID: 3, EvidenceType: "WAGE SLIP", Mandatory: true},
		RequiredItem{ID: 4, EvidenceType: "BANK STATEMENT", Mandatory: true},
		RequiredItem{ID: 5, EvidenceType: "NINO", Mandatory: false},
	)
	s.AddRequirement(
		StoredRequirement{
			ID: 1002, MagCourtOutcome: "SENT FOR TRIAL", ApplicantEmstCode: "SELF",
			ApplicantType: models.ApplicantTypeApplicant, AnnualPensionAmount: 99999999, EvidenceItemsRequired: 2,
		},
		RequiredItem{ID: 6, EvidenceType: "TAX RETURN", Mandatory: true},
		RequiredItem{ID: 7, EvidenceType: "ACCOUNTS", Mandatory: false},
	)
	s.AddRequirement(
		StoredRequirement{
			ID: 1003, MagCourtOutcome: "COMMITTED FOR TRIAL", ApplicantEmstCode: "EMPLOY",
			PartnerEmstCode: ptr("EMPLOY"), ApplicantType: models.ApplicantTypePartner,
			AnnualPensionAmount: 99999999, EvidenceItemsRequired: 1,
		},
		RequiredItem{ID: 8, EvidenceType: "WAGE SLIP", Mandatory: true},
	)

	return s
}

func ptr(s string) *string { return &s }
