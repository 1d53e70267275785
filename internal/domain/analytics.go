package domain

type StageMetrics struct {
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

type PipelineMetrics struct {
	TotalDeals  int                      `json:"total_deals"`
	TotalValue  float64                  `json:"total_value"`
	AvgDealSize float64                  `json:"avg_deal_size"`
	WinRate     float64                  `json:"win_rate"`
	Stages      map[string]*StageMetrics `json:"stages"`
}

type AEPerformance struct {
	AEName         string  `json:"ae_name"`
	TotalDeals     int     `json:"total_deals"`
	TotalValue     float64 `json:"total_value"`
	WonDeals       int     `json:"won_deals"`
	TotalClosed    int     `json:"total_closed"`
	AvgDealSize    float64 `json:"avg_deal_size"`
	ConversionRate float64 `json:"conversion_rate"`
}

type AEPerformanceResponse struct {
	AEPerformance []*AEPerformance `json:"ae_performance"`
}

type RegionalMetrics struct {
	Region      string  `json:"region"`
	TotalDeals  int     `json:"total_deals"`
	TotalValue  float64 `json:"total_value"`
	AvgDealSize float64 `json:"avg_deal_size"`
}

type RegionalMetricsResponse struct {
	RegionalMetrics []*RegionalMetrics `json:"regional_metrics"`
}

type FilterOptions struct {
	AEs        []string `json:"aes"`
	Regions    []string `json:"regions"`
	Stages     []string `json:"stages"`
	Industries []string `json:"industries"`
}

// RegionFunnel é a conversão MQL → SQL → Deal de uma região
type RegionFunnel struct {
	MQL       int
	SQL       int
	Deals     int
	MQLToSQL  float64
	SQLToDeal float64
	Overall   float64
}

// LeadFunnel mantém o formato plano consumido pelo dashboard
type LeadFunnel struct {
	MQLUS                    int     `json:"mql_us"`
	SQLUS                    int     `json:"sql_us"`
	DealsUS                  int     `json:"deals_us"`
	ConversionMQLToSQLUS     float64 `json:"conversion_mql_to_sql_us"`
	ConversionSQLToDealUS    float64 `json:"conversion_sql_to_deal_us"`
	OverallConversionUS      float64 `json:"overall_conversion_us"`
	MQLIndia                 int     `json:"mql_india"`
	SQLIndia                 int     `json:"sql_india"`
	DealsIndia               int     `json:"deals_india"`
	ConversionMQLToSQLIndia  float64 `json:"conversion_mql_to_sql_india"`
	ConversionSQLToDealIndia float64 `json:"conversion_sql_to_deal_india"`
	OverallConversionIndia   float64 `json:"overall_conversion_india"`
}

func (l *LeadFunnel) SetUS(f RegionFunnel) {
	l.MQLUS, l.SQLUS, l.DealsUS = f.MQL, f.SQL, f.Deals
	l.ConversionMQLToSQLUS = f.MQLToSQL
	l.ConversionSQLToDealUS = f.SQLToDeal
	l.OverallConversionUS = f.Overall
}

func (l *LeadFunnel) SetIndia(f RegionFunnel) {
	l.MQLIndia, l.SQLIndia, l.DealsIndia = f.MQL, f.SQL, f.Deals
	l.ConversionMQLToSQLIndia = f.MQLToSQL
	l.ConversionSQLToDealIndia = f.SQLToDeal
	l.OverallConversionIndia = f.Overall
}
