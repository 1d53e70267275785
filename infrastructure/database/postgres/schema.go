package postgres

import (
	"context"
	"fmt"
)

// Schema cria as tabelas usadas pela API. É idempotente.
const Schema = `
CREATE TABLE IF NOT EXISTS deals (
	id             TEXT PRIMARY KEY,
	source_row     INTEGER NOT NULL,
	deal_name      TEXT NOT NULL,
	stage          TEXT NOT NULL,
	ae             TEXT NOT NULL,
	region         TEXT NOT NULL,
	industry       TEXT NOT NULL,
	amount         DOUBLE PRECISION NOT NULL DEFAULT 0,
	potential_size DOUBLE PRECISION NOT NULL DEFAULT 0,
	confidence     TEXT NOT NULL,
	date           TEXT NOT NULL,
	close_date     TEXT,
	lead_source    TEXT,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS deals_source_row_idx ON deals (source_row);

CREATE TABLE IF NOT EXISTS funnel_sections (
	section_key    TEXT PRIMARY KEY,
	date_columns   TEXT[] NOT NULL DEFAULT '{}',
	totals         INTEGER[] NOT NULL DEFAULT '{}',
	channel_counts JSONB NOT NULL DEFAULT '{}'::jsonb,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS sync_records (
	id             TEXT PRIMARY KEY,
	last_sync      TIMESTAMPTZ NOT NULL,
	status         TEXT NOT NULL,
	records_synced INTEGER NOT NULL DEFAULT 0,
	content_hash   TEXT NOT NULL DEFAULT '',
	error          TEXT
);
`

// EnsureSchema aplica o Schema na conexão informada
func EnsureSchema(ctx context.Context, q Queryer) error {
	if _, err := q.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("erro ao aplicar schema: %w", err)
	}
	return nil
}
