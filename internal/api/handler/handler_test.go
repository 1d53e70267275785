package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/lead-pipeline-api/internal/api/handler/router"
	"github.com/vfg2006/lead-pipeline-api/internal/domain"
	analyzingmocks "github.com/vfg2006/lead-pipeline-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/lead-pipeline-api/internal/usecases/syncing"
	syncingmocks "github.com/vfg2006/lead-pipeline-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

type fakeCronJob struct {
	triggered int
	busy      bool
}

func (f *fakeCronJob) TriggerManualSync(ctx context.Context) bool {
	if f.busy {
		return false
	}
	f.triggered++
	return true
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

type testAPI struct {
	analyzer *analyzingmocks.MockAnalyzer
	syncer   *syncingmocks.MockSyncer
	cron     *fakeCronJob
	router   http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	ctrl := gomock.NewController(t)

	api := &testAPI{
		analyzer: analyzingmocks.NewMockAnalyzer(ctrl),
		syncer:   syncingmocks.NewMockSyncer(ctrl),
		cron:     &fakeCronJob{},
	}

	api.router = router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Deals(api.analyzer)...),
		router.WithRoutes(Analytics(api.analyzer)...),
		router.WithRoutes(Sheets(api.syncer)...),
		router.WithRoutes(CronJobs(CronJobServices{SheetAutoSyncService: api.cron})...),
	)

	return api
}

func (a *testAPI) do(method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRoot(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, apiMessage, decode(t, rec)["message"])
}

func TestListDeals(t *testing.T) {
	t.Run("query parameters become filters", func(t *testing.T) {
		api := newTestAPI(t)
		api.analyzer.EXPECT().
			ListDeals(gomock.Any(), &domain.DealFilters{AE: "Alice", Region: "US"}).
			Return([]*domain.Deal{{ID: "1", DealName: "Acme", Stage: "Deal Won", AE: "Alice", Region: "US"}}, nil)

		rec := api.do(http.MethodGet, "/api/deals?ae=Alice&region=US")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, float64(1), body["count"])
		deals := body["deals"].([]any)
		require.Len(t, deals, 1)
		assert.Equal(t, "Acme", deals[0].(map[string]any)["deal_name"])
	})

	t.Run("no filters and empty store", func(t *testing.T) {
		api := newTestAPI(t)
		api.analyzer.EXPECT().ListDeals(gomock.Any(), gomock.Nil()).Return(nil, nil)

		rec := api.do(http.MethodGet, "/api/deals")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"deals":[],"count":0}`, rec.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		api := newTestAPI(t)
		api.analyzer.EXPECT().ListDeals(gomock.Any(), gomock.Nil()).Return(nil, errors.New("db down"))

		rec := api.do(http.MethodGet, "/api/deals")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "SRV_002", decode(t, rec)["code"])
	})
}

func TestAnalytics(t *testing.T) {
	t.Run("pipeline", func(t *testing.T) {
		api := newTestAPI(t)
		api.analyzer.EXPECT().GetPipelineMetrics(gomock.Any()).Return(&domain.PipelineMetrics{
			TotalDeals: 2,
			WinRate:    50,
			Stages:     map[string]*domain.StageMetrics{"Deal Won": {Count: 1, Value: 10}},
		}, nil)

		rec := api.do(http.MethodGet, "/api/analytics/pipeline")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, float64(50), body["win_rate"])
		assert.Contains(t, body["stages"], "Deal Won")
	})

	t.Run("ae performance is wrapped", func(t *testing.T) {
		api := newTestAPI(t)
		api.analyzer.EXPECT().GetAEPerformance(gomock.Any()).Return(nil, nil)

		rec := api.do(http.MethodGet, "/api/analytics/ae-performance")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ae_performance":[]}`, rec.Body.String())
	})

	t.Run("regional metrics are wrapped", func(t *testing.T) {
		api := newTestAPI(t)
		api.analyzer.EXPECT().GetRegionalMetrics(gomock.Any()).Return([]*domain.RegionalMetrics{
			{Region: "US", TotalDeals: 1, TotalValue: 10, AvgDealSize: 10},
		}, nil)

		rec := api.do(http.MethodGet, "/api/analytics/regional")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"regional_metrics":[{"region":"US","total_deals":1,"total_value":10,"avg_deal_size":10}]}`,
			rec.Body.String())
	})

	t.Run("mql-sql keeps the dashboard keys", func(t *testing.T) {
		api := newTestAPI(t)
		api.analyzer.EXPECT().GetFunnelSections(gomock.Any()).Return(&domain.FunnelSectionsResponse{
			MQLUS:    domain.NewFunnelSection(domain.SectionMQLUS),
			MQLIndia: domain.NewFunnelSection(domain.SectionMQLIndia),
			SQLUS:    domain.NewFunnelSection(domain.SectionSQLUS),
			SQLIndia: domain.NewFunnelSection(domain.SectionSQLIndia),
		}, nil)

		rec := api.do(http.MethodGet, "/api/analytics/mql-sql")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		for _, key := range []string{"mql_us", "mql_india", "sql_us", "sql_india"} {
			section := body[key].(map[string]any)
			assert.Contains(t, section, "channels")
			assert.Contains(t, section, "dates")
			assert.Contains(t, section, "totals")
		}
	})

	t.Run("lead funnel", func(t *testing.T) {
		api := newTestAPI(t)
		api.analyzer.EXPECT().GetLeadFunnel(gomock.Any()).Return(&domain.LeadFunnel{MQLUS: 10, OverallConversionUS: 12.5}, nil)

		rec := api.do(http.MethodGet, "/api/analytics/lead-funnel")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, float64(10), body["mql_us"])
		assert.Equal(t, 12.5, body["overall_conversion_us"])
		assert.Contains(t, body, "conversion_sql_to_deal_india")
	})

	t.Run("failure maps to database error", func(t *testing.T) {
		api := newTestAPI(t)
		api.analyzer.EXPECT().GetFilterOptions(gomock.Any()).Return(nil, errors.New("db down"))

		rec := api.do(http.MethodGet, "/api/analytics/filters")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestGetSyncStatus(t *testing.T) {
	api := newTestAPI(t)
	api.analyzer.EXPECT().GetSyncStatus(gomock.Any()).Return(domain.NeverSynced(), nil)

	rec := api.do(http.MethodGet, "/api/sync-status")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"never_synced","last_sync":null,"records_synced":0}`, rec.Body.String())
}

func TestSyncSheets(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api := newTestAPI(t)
		api.syncer.EXPECT().Sync(gomock.Any()).Return(&domain.SyncResult{
			Status:        domain.SyncStatusSuccess,
			RecordsSynced: 2,
			LastSync:      time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
			FunnelSynced:  true,
		}, nil)

		rec := api.do(http.MethodPost, "/api/sheets/sync")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "success", body["status"])
		assert.Equal(t, float64(2), body["records_synced"])
		assert.Equal(t, "2024-03-10T12:00:00Z", body["last_sync"])
		assert.Equal(t, true, body["funnel_synced"])
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "fetch failure",
			err:        syncing.NewSyncError(syncing.KindFetchFailure, syncing.ErrFetchFailed, errors.New("timeout"), ""),
			wantStatus: http.StatusBadGateway,
			wantCode:   "SYNC_001",
		},
		{
			name:       "no valid data",
			err:        syncing.NewSyncError(syncing.KindEmptyResult, syncing.ErrNoValidData, nil, ""),
			wantStatus: http.StatusBadRequest,
			wantCode:   "SYNC_002",
		},
		{
			name:       "persistence failure",
			err:        syncing.NewSyncError(syncing.KindPersistence, syncing.ErrPersistence, errors.New("deadlock"), "deals"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "SRV_002",
		},
		{
			name:       "unexpected error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "SRV_001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.syncer.EXPECT().Sync(gomock.Any()).Return(nil, tt.err)

			rec := api.do(http.MethodPost, "/api/sheets/sync")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decode(t, rec)["code"])
		})
	}
}

func TestAutoSyncSheets(t *testing.T) {
	api := newTestAPI(t)
	msg := "failed to fetch sheet data: timeout"
	api.syncer.EXPECT().AutoSync(gomock.Any()).Return(&domain.AutoSyncResult{
		Synced: false,
		Reason: domain.AutoSyncCheckError,
		Error:  &msg,
	})

	rec := api.do(http.MethodPost, "/api/sheets/auto-sync")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["synced"])
	assert.Equal(t, "check_error", body["reason"])
	assert.True(t, strings.HasSuffix(body["error"].(string), "timeout"))
}

func TestCronJobs(t *testing.T) {
	t.Run("run sheets job", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodPost, "/api/cron/run/sheets")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, api.cron.triggered)
		assert.Equal(t, true, decode(t, rec)["started"])
	})

	t.Run("job already running", func(t *testing.T) {
		api := newTestAPI(t)
		api.cron.busy = true

		rec := api.do(http.MethodPost, "/api/cron/run/all")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, false, decode(t, rec)["started"])
	})

	t.Run("unknown job type", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodPost, "/api/cron/run/meta")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, api.cron.triggered)
	})

	t.Run("status", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodGet, "/api/cron/status")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, decode(t, rec), "sheets")
	})
}
