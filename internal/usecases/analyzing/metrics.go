package analyzing

import (
	"sort"
	"strings"

	"github.com/vfg2006/lead-pipeline-api/internal/domain"
	"github.com/vfg2006/lead-pipeline-api/pkg/utils"
)

// Vocabulário de estágios fechados, comparado sem diferenciar maiúsculas
var (
	wonStages = map[string]struct{}{
		"deal won":   {},
		"closed won": {},
		"won":        {},
	}
	lostStages = map[string]struct{}{
		"deal lost":   {},
		"closed lost": {},
		"lost":        {},
	}
)

// Regiões acompanhadas no funil de leads
const (
	RegionUS    = "US"
	RegionIndia = "India"
)

func isWon(stage string) bool {
	_, ok := wonStages[strings.ToLower(stage)]
	return ok
}

func isLost(stage string) bool {
	_, ok := lostStages[strings.ToLower(stage)]
	return ok
}

// PipelineMetrics calcula os totais do pipeline. Deals abertos entram nos
// totais mas não no denominador da taxa de vitória.
func PipelineMetrics(deals []*domain.Deal) *domain.PipelineMetrics {
	metrics := &domain.PipelineMetrics{
		Stages: make(map[string]*domain.StageMetrics),
	}

	won, closed := 0, 0
	for _, deal := range deals {
		metrics.TotalDeals++
		metrics.TotalValue += deal.PotentialSize

		switch {
		case isWon(deal.Stage):
			won++
			closed++
		case isLost(deal.Stage):
			closed++
		}

		stage, ok := metrics.Stages[deal.Stage]
		if !ok {
			stage = &domain.StageMetrics{}
			metrics.Stages[deal.Stage] = stage
		}
		stage.Count++
		stage.Value += deal.PotentialSize
	}

	if metrics.TotalDeals > 0 {
		metrics.AvgDealSize = utils.RoundWithTwoDecimalPlace(metrics.TotalValue / float64(metrics.TotalDeals))
	}
	metrics.WinRate = utils.RoundWithTwoDecimalPlace(utils.Percentage(float64(won), float64(closed)))
	metrics.TotalValue = utils.RoundWithTwoDecimalPlace(metrics.TotalValue)

	for _, stage := range metrics.Stages {
		stage.Value = utils.RoundWithTwoDecimalPlace(stage.Value)
	}

	return metrics
}

// AEPerformance agrupa por AE mantendo a ordem da primeira aparição
func AEPerformance(deals []*domain.Deal) []*domain.AEPerformance {
	byAE := make(map[string]*domain.AEPerformance)
	result := make([]*domain.AEPerformance, 0)

	for _, deal := range deals {
		if deal.AE == "" {
			continue
		}

		perf, ok := byAE[deal.AE]
		if !ok {
			perf = &domain.AEPerformance{AEName: deal.AE}
			byAE[deal.AE] = perf
			result = append(result, perf)
		}

		perf.TotalDeals++
		perf.TotalValue += deal.PotentialSize

		switch {
		case isWon(deal.Stage):
			perf.WonDeals++
			perf.TotalClosed++
		case isLost(deal.Stage):
			perf.TotalClosed++
		}
	}

	for _, perf := range result {
		perf.AvgDealSize = utils.RoundWithTwoDecimalPlace(perf.TotalValue / float64(perf.TotalDeals))
		perf.ConversionRate = utils.RoundWithTwoDecimalPlace(
			utils.Percentage(float64(perf.WonDeals), float64(perf.TotalClosed)),
		)
		perf.TotalValue = utils.RoundWithTwoDecimalPlace(perf.TotalValue)
	}

	return result
}

func RegionalMetrics(deals []*domain.Deal) []*domain.RegionalMetrics {
	byRegion := make(map[string]*domain.RegionalMetrics)
	result := make([]*domain.RegionalMetrics, 0)

	for _, deal := range deals {
		if deal.Region == "" {
			continue
		}

		metrics, ok := byRegion[deal.Region]
		if !ok {
			metrics = &domain.RegionalMetrics{Region: deal.Region}
			byRegion[deal.Region] = metrics
			result = append(result, metrics)
		}

		metrics.TotalDeals++
		metrics.TotalValue += deal.PotentialSize
	}

	for _, metrics := range result {
		metrics.AvgDealSize = utils.RoundWithTwoDecimalPlace(metrics.TotalValue / float64(metrics.TotalDeals))
		metrics.TotalValue = utils.RoundWithTwoDecimalPlace(metrics.TotalValue)
	}

	return result
}

// FilterOptions retorna os valores distintos e não vazios, ordenados
func FilterOptions(deals []*domain.Deal) *domain.FilterOptions {
	aes := make(map[string]struct{})
	regions := make(map[string]struct{})
	stages := make(map[string]struct{})
	industries := make(map[string]struct{})

	for _, deal := range deals {
		addNonEmpty(aes, deal.AE)
		addNonEmpty(regions, deal.Region)
		addNonEmpty(stages, deal.Stage)
		addNonEmpty(industries, deal.Industry)
	}

	return &domain.FilterOptions{
		AEs:        sortedKeys(aes),
		Regions:    sortedKeys(regions),
		Stages:     sortedKeys(stages),
		Industries: sortedKeys(industries),
	}
}

// LeadFunnel cruza os totais das seções MQL/SQL com a contagem de deals por região
func LeadFunnel(deals []*domain.Deal, sections map[domain.SectionKey]*domain.FunnelSection) *domain.LeadFunnel {
	funnel := &domain.LeadFunnel{}

	funnel.SetUS(regionFunnel(
		sections[domain.SectionMQLUS],
		sections[domain.SectionSQLUS],
		countByRegion(deals, RegionUS),
	))
	funnel.SetIndia(regionFunnel(
		sections[domain.SectionMQLIndia],
		sections[domain.SectionSQLIndia],
		countByRegion(deals, RegionIndia),
	))

	return funnel
}

func regionFunnel(mql, sql *domain.FunnelSection, deals int) domain.RegionFunnel {
	f := domain.RegionFunnel{
		MQL:   mql.TotalSum(),
		SQL:   sql.TotalSum(),
		Deals: deals,
	}

	f.MQLToSQL = utils.RoundWithOneDecimalPlace(utils.Percentage(float64(f.SQL), float64(f.MQL)))
	f.SQLToDeal = utils.RoundWithOneDecimalPlace(utils.Percentage(float64(f.Deals), float64(f.SQL)))
	f.Overall = utils.RoundWithOneDecimalPlace(utils.Percentage(float64(f.Deals), float64(f.MQL)))

	return f
}

func countByRegion(deals []*domain.Deal, region string) int {
	count := 0
	for _, deal := range deals {
		if strings.EqualFold(deal.Region, region) {
			count++
		}
	}
	return count
}

func addNonEmpty(set map[string]struct{}, value string) {
	if value != "" {
		set[value] = struct{}{}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
