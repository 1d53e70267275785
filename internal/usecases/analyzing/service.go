package analyzing

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-pipeline-api/infrastructure/repository"
	"github.com/vfg2006/lead-pipeline-api/internal/config"
	"github.com/vfg2006/lead-pipeline-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type Analyzer interface {
	ListDeals(ctx context.Context, filters *domain.DealFilters) ([]*domain.Deal, error)
	GetPipelineMetrics(ctx context.Context) (*domain.PipelineMetrics, error)
	GetAEPerformance(ctx context.Context) ([]*domain.AEPerformance, error)
	GetRegionalMetrics(ctx context.Context) ([]*domain.RegionalMetrics, error)
	GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error)
	// GetFunnelSections retorna as quatro seções; as que nunca foram sincronizadas vêm vazias
	GetFunnelSections(ctx context.Context) (*domain.FunnelSectionsResponse, error)
	GetLeadFunnel(ctx context.Context) (*domain.LeadFunnel, error)
	GetSyncStatus(ctx context.Context) (*domain.SyncRecord, error)
}

type Service struct {
	maxRecords           int
	dealRepository       repository.DealRepository
	funnelRepository     repository.FunnelSectionRepository
	syncRecordRepository repository.SyncRecordRepository
}

func NewService(
	cfg *config.Config,
	dealRepo repository.DealRepository,
	funnelRepo repository.FunnelSectionRepository,
	syncRecordRepo repository.SyncRecordRepository,
) Analyzer {
	return &Service{
		maxRecords:           cfg.App.MaxRecords,
		dealRepository:       dealRepo,
		funnelRepository:     funnelRepo,
		syncRecordRepository: syncRecordRepo,
	}
}

func (s *Service) ListDeals(ctx context.Context, filters *domain.DealFilters) ([]*domain.Deal, error) {
	deals, err := s.dealRepository.List(ctx, filters, s.maxRecords)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar deals")
		return nil, err
	}

	return deals, nil
}

func (s *Service) GetPipelineMetrics(ctx context.Context) (*domain.PipelineMetrics, error) {
	deals, err := s.ListDeals(ctx, nil)
	if err != nil {
		return nil, err
	}

	return PipelineMetrics(deals), nil
}

func (s *Service) GetAEPerformance(ctx context.Context) ([]*domain.AEPerformance, error) {
	deals, err := s.ListDeals(ctx, nil)
	if err != nil {
		return nil, err
	}

	return AEPerformance(deals), nil
}

func (s *Service) GetRegionalMetrics(ctx context.Context) ([]*domain.RegionalMetrics, error) {
	deals, err := s.ListDeals(ctx, nil)
	if err != nil {
		return nil, err
	}

	return RegionalMetrics(deals), nil
}

func (s *Service) GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	deals, err := s.ListDeals(ctx, nil)
	if err != nil {
		return nil, err
	}

	return FilterOptions(deals), nil
}

func (s *Service) GetFunnelSections(ctx context.Context) (*domain.FunnelSectionsResponse, error) {
	sections, err := s.listSections(ctx)
	if err != nil {
		return nil, err
	}

	section := func(key domain.SectionKey) *domain.FunnelSection {
		if found, ok := sections[key]; ok {
			return found
		}
		return domain.NewFunnelSection(key)
	}

	return &domain.FunnelSectionsResponse{
		MQLUS:    section(domain.SectionMQLUS),
		MQLIndia: section(domain.SectionMQLIndia),
		SQLUS:    section(domain.SectionSQLUS),
		SQLIndia: section(domain.SectionSQLIndia),
	}, nil
}

func (s *Service) GetLeadFunnel(ctx context.Context) (*domain.LeadFunnel, error) {
	sections, err := s.listSections(ctx)
	if err != nil {
		return nil, err
	}

	deals, err := s.ListDeals(ctx, nil)
	if err != nil {
		return nil, err
	}

	return LeadFunnel(deals, sections), nil
}

func (s *Service) GetSyncStatus(ctx context.Context) (*domain.SyncRecord, error) {
	record, err := s.syncRecordRepository.GetLatest(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar status de sincronização")
		return nil, err
	}

	if record == nil {
		return domain.NeverSynced(), nil
	}

	return record, nil
}

func (s *Service) listSections(ctx context.Context) (map[domain.SectionKey]*domain.FunnelSection, error) {
	sections, err := s.funnelRepository.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar seções do funil")
		return nil, err
	}

	return sections, nil
}
