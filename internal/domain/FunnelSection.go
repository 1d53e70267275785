package domain

// SectionKey identifica uma das tabelas empilhadas da aba de MQL/SQL
type SectionKey string

const (
	SectionMQLUS    SectionKey = "mql_us"
	SectionMQLIndia SectionKey = "mql_india"
	SectionSQLUS    SectionKey = "sql_us"
	SectionSQLIndia SectionKey = "sql_india"
)

// FunnelSection guarda as contagens por canal de aquisição de uma seção.
// Totals vem da linha "Total" da própria planilha e não é recalculado.
type FunnelSection struct {
	Key           SectionKey       `json:"-"`
	ChannelCounts map[string][]int `json:"channels"`
	DateColumns   []string         `json:"dates"`
	Totals        []int            `json:"totals"`
}

func NewFunnelSection(key SectionKey) *FunnelSection {
	return &FunnelSection{
		Key:           key,
		ChannelCounts: make(map[string][]int),
		DateColumns:   []string{},
		Totals:        []int{},
	}
}

// TotalSum soma os totais informados pela planilha
func (s *FunnelSection) TotalSum() int {
	if s == nil {
		return 0
	}

	sum := 0
	for _, total := range s.Totals {
		sum += total
	}
	return sum
}

// FunnelSectionsResponse é o formato do endpoint de métricas MQL/SQL
type FunnelSectionsResponse struct {
	MQLUS    *FunnelSection `json:"mql_us"`
	MQLIndia *FunnelSection `json:"mql_india"`
	SQLUS    *FunnelSection `json:"sql_us"`
	SQLIndia *FunnelSection `json:"sql_india"`
}
