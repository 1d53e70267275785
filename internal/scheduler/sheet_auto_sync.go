package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/lead-pipeline-api/internal/config"
	"github.com/vfg2006/lead-pipeline-api/internal/domain"
	"github.com/vfg2006/lead-pipeline-api/internal/usecases/syncing"
)

// SheetAutoSyncConfig representa a configuração do agendador de auto-sync da planilha
type SheetAutoSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SheetAutoSyncService consulta a planilha periodicamente e sincroniza quando ela muda.
// Só evita execuções sobrepostas dele mesmo; um POST /api/sheets/sync concorrente não é bloqueado.
type SheetAutoSyncService struct {
	scheduler           *gocron.Scheduler
	config              SheetAutoSyncConfig
	syncer              syncing.Syncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.AutoSyncResult
}

func NewSheetAutoSyncService(syncer syncing.Syncer, appConfig *config.Config) *SheetAutoSyncService {
	autoSyncConfig := SheetAutoSyncConfig{
		CronSchedule: appConfig.AutoSync.CronSchedule,
		SyncEnabled:  appConfig.AutoSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": autoSyncConfig.CronSchedule,
		"sync_enabled":  autoSyncConfig.SyncEnabled,
	}).Info("Configuração do agendador de auto-sync da planilha carregada")

	return &SheetAutoSyncService{
		scheduler:   scheduler,
		config:      autoSyncConfig,
		syncer:      syncer,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *SheetAutoSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Auto-sync da planilha desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de auto-sync da planilha")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runAutoSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar auto-sync da planilha: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de auto-sync da planilha")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SheetAutoSyncService) runAutoSync(ctx context.Context) {
	startTime, ok := s.claim()
	if !ok {
		logrus.Info("Auto-sync da planilha já em andamento, ignorando")
		return
	}

	s.execute(ctx, startTime)
}

// claim marca a execução como em andamento; false se outra já estiver rodando
func (s *SheetAutoSyncService) claim() (time.Time, bool) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return time.Time{}, false
	}

	startTime := time.Now()
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	return startTime, true
}

// execute roda um auto-sync já reivindicado por claim e libera a marca ao terminar
func (s *SheetAutoSyncService) execute(ctx context.Context, startTime time.Time) {
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	result := s.syncer.AutoSync(ctx)

	logrus.WithFields(logrus.Fields{
		"synced":         result.Synced,
		"reason":         result.Reason,
		"records_synced": result.RecordsSynced,
		"duration":       time.Since(startTime).String(),
	}).Info("Auto-sync da planilha concluído")

	s.syncMutex.Lock()
	s.lastResult = result
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente um auto-sync; retorna false se já houver um em andamento.
// A execução é reivindicada antes de a goroutine começar, então um cron no meio do caminho é que desiste.
func (s *SheetAutoSyncService) TriggerManualSync(ctx context.Context) bool {
	startTime, ok := s.claim()
	if !ok {
		logrus.Info("Auto-sync da planilha já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando auto-sync manual da planilha")
	go s.execute(context.WithoutCancel(ctx), startTime)
	return true
}

// GetStatus retorna o status atual do agendador
func (s *SheetAutoSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
