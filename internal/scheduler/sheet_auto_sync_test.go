package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-pipeline-api/internal/config"
	"github.com/vfg2006/lead-pipeline-api/internal/domain"
	"github.com/vfg2006/lead-pipeline-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func newAutoSyncConfig(enabled bool, cron string) *config.Config {
	return &config.Config{
		AutoSync: config.AutoSync{
			CronSchedule: cron,
			Enabled:      enabled,
		},
	}
}

func TestSheetAutoSyncService_runAutoSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := mocks.NewMockSyncer(ctrl)
	service := NewSheetAutoSyncService(mockSyncer, newAutoSyncConfig(true, "*/5 * * * *"))

	expected := &domain.AutoSyncResult{
		Synced:        true,
		Reason:        domain.AutoSyncChangesDetected,
		RecordsSynced: 4,
		RecordsCount:  4,
	}
	mockSyncer.EXPECT().AutoSync(gomock.Any()).Return(expected)

	service.runAutoSync(context.Background())

	status := service.GetStatus()
	assert.Equal(t, expected, status["last_result"])
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "*/5 * * * *", status["sync_cron"])
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestSheetAutoSyncService_skipsOverlappingRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada a AutoSync é esperada
	mockSyncer := mocks.NewMockSyncer(ctrl)
	service := NewSheetAutoSyncService(mockSyncer, newAutoSyncConfig(true, "*/5 * * * *"))
	service.syncRunning = true

	service.runAutoSync(context.Background())
	assert.False(t, service.TriggerManualSync(context.Background()))

	assert.Nil(t, service.GetStatus()["last_result"])
}

func TestSheetAutoSyncService_Start(t *testing.T) {
	t.Run("disabled does not schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewSheetAutoSyncService(mocks.NewMockSyncer(ctrl), newAutoSyncConfig(false, "invalid"))

		require.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
	})

	t.Run("invalid cron expression", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewSheetAutoSyncService(mocks.NewMockSyncer(ctrl), newAutoSyncConfig(true, "not a cron"))

		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("valid cron expression schedules one job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewSheetAutoSyncService(mocks.NewMockSyncer(ctrl), newAutoSyncConfig(true, "0 0 1 1 *"))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		require.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 1)
	})
}

func TestSheetAutoSyncService_manualTriggerClaimsBeforeStarting(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockSyncer := mocks.NewMockSyncer(ctrl)
	service := NewSheetAutoSyncService(mockSyncer, newAutoSyncConfig(true, "*/5 * * * *"))

	release := make(chan struct{})
	result := &domain.AutoSyncResult{Synced: false, Reason: domain.AutoSyncNoChanges}
	mockSyncer.EXPECT().AutoSync(gomock.Any()).DoAndReturn(
		func(context.Context) *domain.AutoSyncResult {
			<-release
			return result
		}).Times(1)

	require.True(t, service.TriggerManualSync(context.Background()))

	// O cron que dispara logo depois encontra a execução manual já reivindicada
	assert.Equal(t, true, service.GetStatus()["sync_running"])
	service.runAutoSync(context.Background())
	assert.False(t, service.TriggerManualSync(context.Background()))

	close(release)

	assert.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == false
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, result, service.GetStatus()["last_result"])
}
