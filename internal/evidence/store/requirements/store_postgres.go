package requirements

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PostgresStore reads the income_evidence_required reference tables.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed requirement store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Find selects the tightest-fitting pension bracket: the matching row with
// the smallest annual_pension_amount still >= the given pension amount.
func (s *PostgresStore) Find(ctx context.Context, key Key) (*Requirement, error) {
	query := `
		SELECT id, evidence_items_required
		FROM crime_evidence.income_evidence_required
		WHERE mcoo_outcome = $1
		  AND applicant_emst_code = $2
		  AND ((partner_emst_code IS NULL AND $3::text IS NULL) OR partner_emst_code = $3)
		  AND applicant_partner = $4
		  AND annual_pension_amount >= $5
		ORDER BY annual_pension_amount ASC
		LIMIT 1
	`
	var req Requirement
	err := s.db.QueryRowContext(ctx, query,
		key.MagCourtOutcome,
		key.ApplicantEmstCode,
		key.PartnerEmstCode,
		string(key.ApplicantType),
		key.PensionAmount,
	).Scan(&req.ID, &req.EvidenceItemsRequired)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find income evidence requirement: %w", err)
	}
	return &req, nil
}

func (s *PostgresStore) RequiredItems(ctx context.Context, requirementID int) ([]RequiredItem, error) {
	query := `
		SELECT id, income_evidence_required_id, income_evidence_required_description, mandatory
		FROM crime_evidence.income_evidence_required_item
		WHERE income_evidence_required_id = $1
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, requirementID)
	if err != nil {
		return nil, fmt.Errorf("list required evidence items: %w", err)
	}
	defer rows.Close()

	var items []RequiredItem
	for rows.Next() {
		var item RequiredItem
		var mandatory string
		if err := rows.Scan(&item.ID, &item.RequirementID, &item.EvidenceType, &mandatory); err != nil {
			return nil, fmt.Errorf("scan required evidence item: %w", err)
		}
		item.Mandatory = mandatory == "Y"
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate required evidence items: %w", err)
	}
	return items, nil
}
