package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/vfg2006/lead-pipeline-api/infrastructure/database/postgres"
	"github.com/vfg2006/lead-pipeline-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	funnelSectionsTable = "funnel_sections fs"
)

//go:generate mockgen -source=funnel_section.go -destination=mocks/funnel_section_mock.go -package=mocks
type FunnelSectionRepository interface {
	// ReplaceAll substitui o conjunto inteiro de seções; não há histórico
	ReplaceAll(ctx context.Context, sections map[domain.SectionKey]*domain.FunnelSection) error
	List(ctx context.Context) (map[domain.SectionKey]*domain.FunnelSection, error)
}

type funnelSectionRepository struct {
	conn postgres.Conn
}

func NewFunnelSectionRepository(conn postgres.Conn) FunnelSectionRepository {
	return &funnelSectionRepository{
		conn: conn,
	}
}

func (r *funnelSectionRepository) ReplaceAll(ctx context.Context, sections map[domain.SectionKey]*domain.FunnelSection) error {
	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		if _, err := q.Exec(ctx, "DELETE FROM funnel_sections"); err != nil {
			return fmt.Errorf("erro ao apagar seções do funil: %w", wrapPQError(err))
		}

		if len(sections) == 0 {
			return nil
		}

		builder := squirrel.StatementBuilder.
			Insert("funnel_sections").
			Columns("section_key", "date_columns", "totals", "channel_counts").
			PlaceholderFormat(squirrel.Dollar)

		for key, section := range sections {
			channelsJSON, err := json.Marshal(section.ChannelCounts)
			if err != nil {
				return fmt.Errorf("erro ao serializar canais da seção %s: %w", key, err)
			}

			builder = builder.Values(
				string(key),
				pq.Array(section.DateColumns),
				pq.Array(toInt64(section.Totals)),
				channelsJSON,
			)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := q.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir seções do funil: %w", wrapPQError(err))
		}

		return nil
	})
}

func (r *funnelSectionRepository) List(ctx context.Context) (map[domain.SectionKey]*domain.FunnelSection, error) {
	query, args, err := squirrel.
		Select("fs.section_key", "fs.date_columns", "fs.totals", "fs.channel_counts").
		From(funnelSectionsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", wrapPQError(err))
	}
	defer rows.Close()

	sections := make(map[domain.SectionKey]*domain.FunnelSection)
	for rows.Next() {
		var (
			key          string
			dateColumns  []string
			totals       []int64
			channelsJSON []byte
		)

		if err := rows.Scan(&key, pq.Array(&dateColumns), pq.Array(&totals), &channelsJSON); err != nil {
			return nil, fmt.Errorf("erro ao escanear seção do funil: %w", err)
		}

		section := domain.NewFunnelSection(domain.SectionKey(key))
		if dateColumns != nil {
			section.DateColumns = dateColumns
		}
		section.Totals = toInt(totals)

		if len(channelsJSON) > 0 {
			if err := json.Unmarshal(channelsJSON, &section.ChannelCounts); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de channel_counts: %w", err)
			}
		}

		sections[section.Key] = section
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sections, nil
}

func toInt64(values []int) []int64 {
	out := make([]int64, len(values))
	for i, v := range values {
		out[i] = int64(v)
	}
	return out
}

func toInt(values []int64) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = int(v)
	}
	return out
}
