// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

const (
	UnknownValue      = "Unknown"
	DefaultConfidence = "Medium"
)

// Deal é o registro canônico de uma oportunidade vinda da planilha de vendas
type Deal struct {
	ID            string    `json:"id"`
	SourceRow     int       `json:"source_row"` // Linha da planilha (base 1) de onde o deal veio
	DealName      string    `json:"deal_name"`
	Stage         string    `json:"stage"`
	AE            string    `json:"ae"`
	Region        string    `json:"region"`
	Industry      string    `json:"industry"`
	Amount        float64   `json:"amount"`
	PotentialSize float64   `json:"potential_size"`
	Confidence    string    `json:"confidence"`
	Date          string    `json:"date"`
	CloseDate     *string   `json:"close_date"`
	LeadSource    *string   `json:"lead_source"`
	CreatedAt     time.Time `json:"created_at"`
}

// DealFilters são os filtros de igualdade aceitos na listagem de deals
type DealFilters struct {
	AE       string
	Region   string
	Stage    string
	Industry string
}

func (f *DealFilters) IsEmpty() bool {
	return f == nil || (f.AE == "" && f.Region == "" && f.Stage == "" && f.Industry == "")
}

type DealListResponse struct {
	Deals []*Deal `json:"deals"`
	Count int     `json:"count"`
}
