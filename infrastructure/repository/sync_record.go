package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/lead-pipeline-api/infrastructure/database/postgres"
	"github.com/vfg2006/lead-pipeline-api/internal/domain"
)

const (
	syncRecordsTable = "sync_records sr"
)

//go:generate mockgen -source=sync_record.go -destination=mocks/sync_record_mock.go -package=mocks
type SyncRecordRepository interface {
	// GetLatest retorna nil, nil quando nunca houve sincronização
	GetLatest(ctx context.Context) (*domain.SyncRecord, error)
	// Replace mantém no máximo um registro: apaga o anterior e grava o novo
	Replace(ctx context.Context, record *domain.SyncRecord) error
}

type syncRecordRepository struct {
	conn postgres.Conn
}

func NewSyncRecordRepository(conn postgres.Conn) SyncRecordRepository {
	return &syncRecordRepository{
		conn: conn,
	}
}

func (r *syncRecordRepository) GetLatest(ctx context.Context) (*domain.SyncRecord, error) {
	query, args, err := squirrel.
		Select("sr.id", "sr.last_sync", "sr.status", "sr.records_synced", "sr.content_hash", "sr.error").
		From(syncRecordsTable).
		OrderBy("sr.last_sync DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record := &domain.SyncRecord{}
	var (
		status   string
		lastSync sql.NullTime
		errMsg   sql.NullString
	)

	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&record.ID,
		&lastSync,
		&status,
		&record.RecordsSynced,
		&record.ContentHash,
		&errMsg,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro de sincronização: %w", wrapPQError(err))
	}

	record.Status = domain.SyncStatus(status)
	if lastSync.Valid {
		record.LastSync = &lastSync.Time
	}
	if errMsg.Valid {
		record.Error = &errMsg.String
	}

	return record, nil
}

func (r *syncRecordRepository) Replace(ctx context.Context, record *domain.SyncRecord) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("sync_records").
		Columns("id", "last_sync", "status", "records_synced", "content_hash", "error").
		Values(
			record.ID,
			record.LastSync,
			string(record.Status),
			record.RecordsSynced,
			record.ContentHash,
			record.Error,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		if _, err := q.Exec(ctx, "DELETE FROM sync_records"); err != nil {
			return fmt.Errorf("erro ao apagar registro de sincronização: %w", wrapPQError(err))
		}

		if _, err := q.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao gravar registro de sincronização: %w", wrapPQError(err))
		}

		return nil
	})
}
