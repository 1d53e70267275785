package sheets

import (
	"context"
	"errors"

	"github.com/vfg2006/lead-pipeline-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/lead-pipeline-api/internal/config"
)

var ErrFunnelSheetNotConfigured = errors.New("FUNNEL_SHEET_URL não configurada")

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type SheetsIntegrator interface {
	FetchDeals(ctx context.Context) ([]byte, error)
	FetchFunnel(ctx context.Context) ([]byte, error)
}

type SheetsService struct {
	cfg    config.Sheets
	Client sheetsclient.Client
}

func New(cfg *config.Config, client sheetsclient.Client) SheetsIntegrator {
	return &SheetsService{
		cfg:    cfg.Sheets,
		Client: client,
	}
}

func (s *SheetsService) FetchDeals(ctx context.Context) ([]byte, error) {
	return s.Client.FetchCSV(ctx, s.cfg.DealsURL, s.cfg.DealsFetchTimeout)
}

func (s *SheetsService) FetchFunnel(ctx context.Context) ([]byte, error) {
	if s.cfg.FunnelURL == "" {
		return nil, ErrFunnelSheetNotConfigured
	}
	return s.Client.FetchCSV(ctx, s.cfg.FunnelURL, s.cfg.FunnelFetchTimeout)
}
