package ingesting

import (
	"strings"

	"github.com/vfg2006/lead-pipeline-api/internal/config"
	"github.com/vfg2006/lead-pipeline-api/internal/domain"
)

// SectionMarker associa o texto do marcador à seção que ele inicia
type SectionMarker struct {
	Label string
	Key   domain.SectionKey
}

// SectionLayout descreve a posição das tabelas empilhadas na aba de MQL/SQL.
// Colunas começam em zero; LastValueColumn é inclusiva.
type SectionLayout struct {
	MarkerColumn     int
	LabelColumn      int
	FirstValueColumn int
	LastValueColumn  int
	HeaderToken      string
	TotalToken       string
	BrokenRefPrefix  string
	Markers          []SectionMarker
}

func DefaultSectionLayout() SectionLayout {
	return SectionLayout{
		MarkerColumn:     1,
		LabelColumn:      1,
		FirstValueColumn: 2,
		LastValueColumn:  7,
		HeaderToken:      "Acquisition Channel",
		TotalToken:       "Total",
		BrokenRefPrefix:  "#REF",
		Markers: []SectionMarker{
			{Label: "MQL - US", Key: domain.SectionMQLUS},
			{Label: "MQL - India", Key: domain.SectionMQLIndia},
			{Label: "SQL - US", Key: domain.SectionSQLUS},
			{Label: "SQL - India", Key: domain.SectionSQLIndia},
		},
	}
}

// SectionLayoutFromConfig aplica as colunas configuradas sobre o layout padrão
func SectionLayoutFromConfig(cfg config.Funnel) SectionLayout {
	layout := DefaultSectionLayout()
	layout.MarkerColumn = cfg.MarkerColumn
	layout.LabelColumn = cfg.LabelColumn
	layout.FirstValueColumn = cfg.FirstValueColumn
	layout.LastValueColumn = cfg.LastValueColumn
	return layout
}

// parserState é o estado explícito do parser de seções:
//
//	idle           --marcador-->  awaitingHeader
//	awaitingHeader --marcador-->  awaitingHeader (o último marcador vence)
//	awaitingHeader --cabeçalho--> readingRows
//	readingRows    --marcador-->  awaitingHeader (seção anterior fica sem totais)
//	readingRows    --"Total"-->   idle
type parserState int

const (
	stateIdle parserState = iota
	stateAwaitingHeader
	stateReadingRows
)

type sectionParser struct {
	layout   SectionLayout
	state    parserState
	current  *domain.FunnelSection
	sections map[domain.SectionKey]*domain.FunnelSection
}

// ParseSections separa a grade em seções de funil. Seções cujo marcador não
// aparece ficam de fora do mapa; um marcador sem cabeçalho gera seção vazia.
func ParseSections(grid [][]string, layout SectionLayout) map[domain.SectionKey]*domain.FunnelSection {
	p := &sectionParser{
		layout:   layout,
		state:    stateIdle,
		sections: make(map[domain.SectionKey]*domain.FunnelSection),
	}

	for _, row := range grid {
		p.consume(row)
	}

	return p.sections
}

func (p *sectionParser) consume(row []string) {
	if key, ok := p.markerOf(row); ok {
		p.current = domain.NewFunnelSection(key)
		p.sections[key] = p.current
		p.state = stateAwaitingHeader
		return
	}

	label := cell(row, p.layout.LabelColumn)

	switch p.state {
	case stateAwaitingHeader:
		if label == p.layout.HeaderToken {
			p.current.DateColumns = p.headerLabels(row)
			p.state = stateReadingRows
		}

	case stateReadingRows:
		switch {
		case label == p.layout.TotalToken:
			p.current.Totals = p.values(row)
			p.current = nil
			p.state = stateIdle
		case label == "" || label == p.layout.HeaderToken:
		case p.layout.BrokenRefPrefix != "" && strings.HasPrefix(label, p.layout.BrokenRefPrefix):
		default:
			values := p.values(row)
			if sum(values) != 0 {
				p.current.ChannelCounts[label] = values
			}
		}
	}
}

func (p *sectionParser) markerOf(row []string) (domain.SectionKey, bool) {
	value := cell(row, p.layout.MarkerColumn)
	if value == "" {
		return "", false
	}

	for _, marker := range p.layout.Markers {
		if strings.Contains(value, marker.Label) {
			return marker.Key, true
		}
	}
	return "", false
}

func (p *sectionParser) headerLabels(row []string) []string {
	labels := make([]string, 0, p.layout.LastValueColumn-p.layout.FirstValueColumn+1)
	for col := p.layout.FirstValueColumn; col <= p.layout.LastValueColumn && col < len(row); col++ {
		labels = append(labels, cell(row, col))
	}

	for len(labels) > 0 && labels[len(labels)-1] == "" {
		labels = labels[:len(labels)-1]
	}
	return labels
}

// values lê uma contagem por coluna de data do cabeçalho, com zero para células ausentes
func (p *sectionParser) values(row []string) []int {
	values := make([]int, len(p.current.DateColumns))
	for i := range values {
		values[i] = parseCount(cell(row, p.layout.FirstValueColumn+i))
	}
	return values
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
