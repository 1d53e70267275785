package ingesting

import (
	"strings"
	"time"

	"github.com/vfg2006/lead-pipeline-api/internal/domain"
	"github.com/vfg2006/lead-pipeline-api/pkg/utils"
)

type dealField string

const (
	fieldDealName      dealField = "deal_name"
	fieldStage         dealField = "stage"
	fieldAE            dealField = "ae"
	fieldRegion        dealField = "region"
	fieldIndustry      dealField = "industry"
	fieldAmount        dealField = "amount"
	fieldPotentialSize dealField = "potential_size"
	fieldConfidence    dealField = "confidence"
	fieldDate          dealField = "date"
	fieldCloseDate     dealField = "close_date"
	fieldLeadSource    dealField = "lead_source"
)

// headerAliases mapeia os nomes de coluna usados nas revisões da planilha para o campo canônico
var headerAliases = map[string]dealField{
	"Deal Name":           fieldDealName,
	"Deal":                fieldDealName,
	"Deal Stage":          fieldStage,
	"Stage":               fieldStage,
	"AE":                  fieldAE,
	"Account Executive":   fieldAE,
	"Geography":           fieldRegion,
	"Geography (New)":     fieldRegion,
	"Region":              fieldRegion,
	"Industry":            fieldIndustry,
	"Amount":              fieldAmount,
	"Potential Deal Size": fieldPotentialSize,
	"Potential Size":      fieldPotentialSize,
	"Confidence":          fieldConfidence,
	"Date":                fieldDate,
	"Close Date":          fieldCloseDate,
	"Lead Source":         fieldLeadSource,
	"Lead Source (New)":   fieldLeadSource,
}

// discardStages são estágios que nunca viram deal
var discardStages = map[string]struct{}{
	"reject":   {},
	"rejected": {},
}

type NormalizeOptions struct {
	MaxRecords int
	Now        func() time.Time
	NewID      func() string
}

// NormalizeStats resume o que aconteceu com as linhas da planilha
type NormalizeStats struct {
	Rows             int
	Kept             int
	MissingRequired  int
	DiscardedByStage int
	Truncated        bool
}

// NormalizeDeals converte a grade (primeira linha = cabeçalho) em deals canônicos,
// preservando a ordem das linhas. Problemas de linha nunca viram erro: a linha é
// descartada ou o campo recebe um valor padrão.
func NormalizeDeals(grid [][]string, opts NormalizeOptions) ([]*domain.Deal, NormalizeStats) {
	stats := NormalizeStats{}
	if len(grid) < 2 {
		return []*domain.Deal{}, stats
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = utils.NewDealID
	}

	columns := columnIndex(grid[0])
	ingestedAt := opts.Now().UTC()
	today := ingestedAt.Format(time.DateOnly)

	deals := make([]*domain.Deal, 0, len(grid)-1)
	for i, row := range grid[1:] {
		if isBlankRow(row) {
			continue
		}
		stats.Rows++

		get := func(field dealField) string {
			idx, ok := columns[field]
			if !ok {
				return ""
			}
			return cell(row, idx)
		}

		deal := &domain.Deal{
			SourceRow: i + 2,
			DealName:  get(fieldDealName),
			Stage:     get(fieldStage),
		}

		if deal.DealName == "" || deal.Stage == "" {
			stats.MissingRequired++
			continue
		}

		if _, discard := discardStages[strings.ToLower(deal.Stage)]; discard {
			stats.DiscardedByStage++
			continue
		}

		if opts.MaxRecords > 0 && len(deals) >= opts.MaxRecords {
			stats.Truncated = true
			break
		}

		deal.AE = orDefault(get(fieldAE), domain.UnknownValue)
		deal.Region = orDefault(get(fieldRegion), domain.UnknownValue)
		deal.Industry = orDefault(get(fieldIndustry), domain.UnknownValue)
		deal.Confidence = orDefault(get(fieldConfidence), domain.DefaultConfidence)
		deal.Date = orDefault(get(fieldDate), today)
		deal.CloseDate = optional(get(fieldCloseDate))
		deal.LeadSource = optional(get(fieldLeadSource))

		deal.Amount = CleanCurrency(get(fieldAmount))
		deal.PotentialSize = CleanCurrency(get(fieldPotentialSize))
		if deal.PotentialSize == 0 {
			deal.PotentialSize = deal.Amount
		}

		deal.ID = opts.NewID()
		deal.CreatedAt = ingestedAt

		deals = append(deals, deal)
	}

	stats.Kept = len(deals)
	return deals, stats
}

// columnIndex monta o mapa campo → coluna; se dois cabeçalhos apontam para o
// mesmo campo, vale o último.
func columnIndex(headers []string) map[dealField]int {
	columns := make(map[dealField]int, len(headers))
	for i, header := range headers {
		if field, ok := headerAliases[strings.TrimSpace(header)]; ok {
			columns[field] = i
		}
	}
	return columns
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
