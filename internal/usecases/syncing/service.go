package syncing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-pipeline-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/lead-pipeline-api/infrastructure/repository"
	"github.com/vfg2006/lead-pipeline-api/internal/config"
	"github.com/vfg2006/lead-pipeline-api/internal/domain"
	"github.com/vfg2006/lead-pipeline-api/internal/usecases/ingesting"
	"github.com/vfg2006/lead-pipeline-api/pkg/utils"
)

// State é a etapa corrente de uma execução de sincronização
type State string

const (
	StateIdle       State = "idle"
	StateFetching   State = "fetching"
	StateParsing    State = "parsing"
	StatePersisting State = "persisting"
	StateDone       State = "done"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type Syncer interface {
	// Sync busca, normaliza e substitui os deals e as seções do funil
	Sync(ctx context.Context) (*domain.SyncResult, error)
	// AutoSync só sincroniza quando o conteúdo da planilha mudou
	AutoSync(ctx context.Context) *domain.AutoSyncResult
}

type Service struct {
	sheetsService        sheets.SheetsIntegrator
	dealRepository       repository.DealRepository
	funnelRepository     repository.FunnelSectionRepository
	syncRecordRepository repository.SyncRecordRepository
	layout               ingesting.SectionLayout
	maxRecords           int
	now                  func() time.Time
	newRecordID          func() (string, error)
}

func NewService(
	cfg *config.Config,
	sheetsService sheets.SheetsIntegrator,
	dealRepo repository.DealRepository,
	funnelRepo repository.FunnelSectionRepository,
	syncRecordRepo repository.SyncRecordRepository,
) *Service {
	return &Service{
		sheetsService:        sheetsService,
		dealRepository:       dealRepo,
		funnelRepository:     funnelRepo,
		syncRecordRepository: syncRecordRepo,
		layout:               ingesting.SectionLayoutFromConfig(cfg.Funnel),
		maxRecords:           cfg.App.MaxRecords,
		now:                  time.Now,
		newRecordID:          utils.GenerateID,
	}
}

// run acompanha a execução corrente e registra as transições de estado
type run struct {
	kind  string
	state State
	start time.Time
}

func (s *Service) newRun(kind string) *run {
	r := &run{kind: kind, state: StateIdle, start: s.now()}
	logrus.WithField("sync", kind).Debug("Iniciando sincronização")
	return r
}

func (r *run) transition(next State) {
	logrus.WithFields(logrus.Fields{
		"sync": r.kind,
		"from": r.state,
		"to":   next,
	}).Debug("Transição de estado da sincronização")
	r.state = next
}

func (s *Service) Sync(ctx context.Context) (*domain.SyncResult, error) {
	r := s.newRun("manual")

	r.transition(StateFetching)
	raw, err := s.sheetsService.FetchDeals(ctx)
	if err != nil {
		return nil, s.fail(ctx, r, NewSyncError(KindFetchFailure, ErrFetchFailed, err, ""))
	}

	return s.syncFrom(ctx, r, raw)
}

// syncFrom executa parse, normalização e persistência a partir do CSV já baixado
func (s *Service) syncFrom(ctx context.Context, r *run, raw []byte) (*domain.SyncResult, error) {
	r.transition(StateParsing)
	grid, err := ingesting.ReadGrid(raw)
	if err != nil {
		return nil, s.fail(ctx, r, NewSyncError(KindEmptyResult, ErrNoValidData, err, ""))
	}

	deals, stats := ingesting.NormalizeDeals(grid, ingesting.NormalizeOptions{
		MaxRecords: s.maxRecords,
		Now:        s.now,
	})

	logger := logrus.WithFields(logrus.Fields{
		"sync":               r.kind,
		"rows":               stats.Rows,
		"kept":               stats.Kept,
		"missing_required":   stats.MissingRequired,
		"discarded_by_stage": stats.DiscardedByStage,
	})
	if stats.Truncated {
		logger.Warnf("Planilha excede o limite de %d deals; linhas excedentes ignoradas", s.maxRecords)
	}

	if len(deals) == 0 {
		return nil, s.fail(ctx, r, NewSyncError(KindEmptyResult, ErrNoValidData, nil, ""))
	}

	r.transition(StatePersisting)
	if err := s.dealRepository.ReplaceAll(ctx, deals); err != nil {
		return nil, s.fail(ctx, r, NewSyncError(KindPersistence, ErrPersistence, err, "deals"))
	}

	result := &domain.SyncResult{
		Status:        domain.SyncStatusSuccess,
		RecordsSynced: len(deals),
	}

	synced, err := s.syncFunnel(ctx)
	if err != nil {
		funnelErr := NewSyncError(KindPartialFunnel, ErrFunnelSync, err, "")
		logger.WithError(funnelErr).Warn("Deals sincronizados, mas a sincronização do funil falhou")
		msg := funnelErr.Error()
		result.FunnelError = &msg
	}
	result.FunnelSynced = synced

	recordID, err := s.newRecordID()
	if err != nil {
		return nil, s.fail(ctx, r, NewSyncError(KindPersistence, ErrGenerateID, err, "sync record"))
	}

	lastSync := s.now().UTC()
	record := &domain.SyncRecord{
		ID:            recordID,
		LastSync:      &lastSync,
		Status:        domain.SyncStatusSuccess,
		RecordsSynced: len(deals),
		ContentHash:   ingesting.Fingerprint(raw),
	}

	if err := s.syncRecordRepository.Replace(ctx, record); err != nil {
		return nil, s.fail(ctx, r, NewSyncError(KindPersistence, ErrPersistence, err, "sync record"))
	}

	r.transition(StateDone)
	result.LastSync = lastSync

	logger.WithFields(logrus.Fields{
		"records_synced": result.RecordsSynced,
		"funnel_synced":  result.FunnelSynced,
		"duration":       s.now().Sub(r.start).String(),
	}).Info("Sincronização da planilha concluída")

	return result, nil
}

// syncFunnel substitui as seções de MQL/SQL. Planilha de funil não configurada
// não é erro: as seções atuais ficam como estão.
func (s *Service) syncFunnel(ctx context.Context) (bool, error) {
	raw, err := s.sheetsService.FetchFunnel(ctx)
	if errors.Is(err, sheets.ErrFunnelSheetNotConfigured) {
		logrus.Info("FUNNEL_SHEET_URL vazia, sincronização do funil ignorada")
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "erro ao buscar planilha do funil")
	}

	grid, err := ingesting.ReadGrid(raw)
	if err != nil {
		return false, errors.Wrap(err, "erro ao ler planilha do funil")
	}

	sections := ingesting.ParseSections(grid, s.layout)
	if len(sections) == 0 {
		return false, errors.New("nenhuma seção de MQL/SQL encontrada na planilha")
	}

	if err := s.funnelRepository.ReplaceAll(ctx, sections); err != nil {
		return false, errors.Wrap(err, "erro ao salvar seções do funil")
	}

	logrus.WithField("sections", len(sections)).Info("Seções do funil sincronizadas")
	return true, nil
}

// fail grava um registro de erro sem fingerprint, para que o próximo
// auto-sync tente de novo, e devolve o próprio erro. Toda falha passa por aqui,
// inclusive as que acontecem depois de os deals já terem sido substituídos.
func (s *Service) fail(ctx context.Context, r *run, syncErr *SyncError) error {
	r.transition(StateDone)

	logger := logrus.WithFields(logrus.Fields{
		"sync": r.kind,
		"kind": syncErr.Kind,
	})
	logger.WithError(syncErr).Error("Sincronização da planilha falhou")

	recordID, err := s.newRecordID()
	if err != nil {
		logger.WithError(err).Warn("Erro ao gerar ID do registro de sincronização, usando UUID")
		recordID = uuid.NewString()
	}

	lastSync := s.now().UTC()
	msg := syncErr.Error()
	record := &domain.SyncRecord{
		ID:            recordID,
		LastSync:      &lastSync,
		Status:        domain.SyncStatusError,
		RecordsSynced: 0,
		Error:         &msg,
	}

	if err := s.syncRecordRepository.Replace(ctx, record); err != nil {
		logger.WithError(err).Error("Erro ao gravar registro de falha da sincronização")
	}

	return syncErr
}

func (s *Service) AutoSync(ctx context.Context) *domain.AutoSyncResult {
	r := s.newRun("auto")

	previous, err := s.syncRecordRepository.GetLatest(ctx)
	if err != nil {
		return checkError(nil, errors.Wrap(err, "erro ao buscar último registro de sincronização"))
	}

	var (
		previousHash string
		lastSync     *time.Time
	)
	if previous != nil {
		previousHash = previous.ContentHash
		lastSync = previous.LastSync
	}

	r.transition(StateFetching)
	raw, err := s.sheetsService.FetchDeals(ctx)
	if err != nil {
		return checkError(lastSync, s.fail(ctx, r, NewSyncError(KindFetchFailure, ErrFetchFailed, err, "")))
	}

	if !ingesting.HasChanged(raw, previousHash) {
		r.transition(StateDone)
		logrus.WithField("sync", r.kind).Debug("Planilha sem alterações")
		return &domain.AutoSyncResult{
			Synced:   false,
			Reason:   domain.AutoSyncNoChanges,
			LastSync: lastSync,
		}
	}

	logrus.WithField("sync", r.kind).Info("Alterações detectadas na planilha")

	result, err := s.syncFrom(ctx, r, raw)
	if err != nil {
		return checkError(lastSync, err)
	}

	return &domain.AutoSyncResult{
		Synced:        true,
		Reason:        domain.AutoSyncChangesDetected,
		LastSync:      &result.LastSync,
		RecordsSynced: result.RecordsSynced,
		RecordsCount:  result.RecordsSynced,
		FunnelError:   result.FunnelError,
	}
}

func checkError(lastSync *time.Time, err error) *domain.AutoSyncResult {
	logrus.WithError(err).Error("Erro na verificação automática da planilha")

	msg := err.Error()
	return &domain.AutoSyncResult{
		Synced:   false,
		Reason:   domain.AutoSyncCheckError,
		LastSync: lastSync,
		Error:    &msg,
	}
}
