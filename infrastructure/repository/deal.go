// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/lead-pipeline-api/infrastructure/database/postgres"
	"github.com/vfg2006/lead-pipeline-api/internal/domain"
)

const (
	dealsTable     = "deals d"
	dealsInsertMax = 500 // 14 parâmetros por linha, bem abaixo do limite do postgres
)

var dealColumns = []string{
	"id", "source_row", "deal_name", "stage", "ae", "region", "industry",
	"amount", "potential_size", "confidence", "date", "close_date", "lead_source", "created_at",
}

//go:generate mockgen -source=deal.go -destination=mocks/deal_mock.go -package=mocks
type DealRepository interface {
	// ReplaceAll apaga todos os deals e insere a nova geração na mesma transação
	ReplaceAll(ctx context.Context, deals []*domain.Deal) error
	List(ctx context.Context, filters *domain.DealFilters, limit int) ([]*domain.Deal, error)
}

type dealRepository struct {
	conn postgres.Conn
}

func NewDealRepository(conn postgres.Conn) DealRepository {
	return &dealRepository{
		conn: conn,
	}
}

func (r *dealRepository) ReplaceAll(ctx context.Context, deals []*domain.Deal) error {
	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		if _, err := q.Exec(ctx, "DELETE FROM deals"); err != nil {
			return fmt.Errorf("erro ao apagar deals: %w", wrapPQError(err))
		}

		for start := 0; start < len(deals); start += dealsInsertMax {
			end := min(start+dealsInsertMax, len(deals))
			if err := r.insertBatch(ctx, q, deals[start:end]); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *dealRepository) insertBatch(ctx context.Context, q postgres.Queryer, deals []*domain.Deal) error {
	builder := squirrel.StatementBuilder.
		Insert("deals").
		Columns(dealColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, deal := range deals {
		builder = builder.Values(
			deal.ID,
			deal.SourceRow,
			deal.DealName,
			deal.Stage,
			deal.AE,
			deal.Region,
			deal.Industry,
			deal.Amount,
			deal.PotentialSize,
			deal.Confidence,
			deal.Date,
			deal.CloseDate,
			deal.LeadSource,
			deal.CreatedAt,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir deals: %w", wrapPQError(err))
	}

	return nil
}

func (r *dealRepository) List(ctx context.Context, filters *domain.DealFilters, limit int) ([]*domain.Deal, error) {
	columns := make([]string, len(dealColumns))
	for i, column := range dealColumns {
		columns[i] = "d." + column
	}

	builder := squirrel.
		Select(columns...).
		From(dealsTable).
		OrderBy("d.source_row ASC").
		PlaceholderFormat(squirrel.Dollar)

	if !filters.IsEmpty() {
		eq := squirrel.Eq{}
		if filters.AE != "" {
			eq["d.ae"] = filters.AE
		}
		if filters.Region != "" {
			eq["d.region"] = filters.Region
		}
		if filters.Stage != "" {
			eq["d.stage"] = filters.Stage
		}
		if filters.Industry != "" {
			eq["d.industry"] = filters.Industry
		}
		builder = builder.Where(eq)
	}

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", wrapPQError(err))
	}
	defer rows.Close()

	deals := make([]*domain.Deal, 0)
	for rows.Next() {
		deal, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear deal: %w", err)
		}
		deals = append(deals, deal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return deals, nil
}

func scanDeal(rows *sql.Rows) (*domain.Deal, error) {
	deal := &domain.Deal{}
	var closeDate, leadSource sql.NullString

	err := rows.Scan(
		&deal.ID,
		&deal.SourceRow,
		&deal.DealName,
		&deal.Stage,
		&deal.AE,
		&deal.Region,
		&deal.Industry,
		&deal.Amount,
		&deal.PotentialSize,
		&deal.Confidence,
		&deal.Date,
		&closeDate,
		&leadSource,
		&deal.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if closeDate.Valid {
		deal.CloseDate = &closeDate.String
	}
	if leadSource.Valid {
		deal.LeadSource = &leadSource.String
	}

	return deal, nil
}

// wrapPQError acrescenta o código do postgres à mensagem quando disponível
func wrapPQError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return err
}
