//go:build integration

// Package containers provides shared test container helpers for integration
// tests. Containers are started per suite; Ryuk reaps them after the run.
package containers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostgresContainer wraps a testcontainers PostgreSQL instance with the
// crime_evidence reference schema applied.
type PostgresContainer struct {
	Container testcontainers.Container
	DSN       string
	DB        *sql.DB
}

const referenceSchema = `
CREATE SCHEMA IF NOT EXISTS crime_evidence;

CREATE TABLE crime_evidence.income_evidence_required (
	id                      SERIAL PRIMARY KEY,
	mcoo_outcome            TEXT NOT NULL,
	applicant_emst_code     TEXT NOT NULL,
	partner_emst_code       TEXT,
	applicant_partner       TEXT NOT NULL,
	annual_pension_amount   NUMERIC NOT NULL,
	evidence_items_required INT NOT NULL
);

CREATE TABLE crime_evidence.income_evidence_required_item (
	id                                   SERIAL PRIMARY KEY,
	income_evidence_required_id          INT NOT NULL REFERENCES crime_evidence.income_evidence_required (id),
	income_evidence_required_description TEXT NOT NULL,
	mandatory                            TEXT NOT NULL DEFAULT 'N'
);
`

// NewPostgresContainer starts a PostgreSQL container and applies the
// reference schema.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("crime_evidence"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to open postgres connection: %v", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to ping postgres: %v", err)
	}
	if _, err := db.ExecContext(ctx, referenceSchema); err != nil {
		_ = db.Close()
		_ = container.Terminate(ctx)
		t.Fatalf("failed to apply reference schema: %v", err)
	}

	return &PostgresContainer{
		Container: container,
		DSN:       dsn,
		DB:        db,
	}
}

// TruncateTables clears the given tables in the crime_evidence schema,
// restarting identity sequences.
func (p *PostgresContainer) TruncateTables(ctx context.Context, tables ...string) error {
	qualified := make([]string, 0, len(tables))
	for _, table := range tables {
		qualified = append(qualified, "crime_evidence."+table)
	}
	_, err := p.DB.ExecContext(ctx,
		fmt.Sprintf("TRUNCATE %s RESTART IDENTITY CASCADE", strings.Join(qualified, ", ")))
	return err
}

// Close releases the database handle and terminates the container.
func (p *PostgresContainer) Close(ctx context.Context) error {
	_ = p.DB.Close()
	return p.Container.Terminate(ctx)
}
