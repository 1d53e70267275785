package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/lead-pipeline-api/internal/api/handler"
	"github.com/vfg2006/lead-pipeline-api/internal/config"
	"github.com/vfg2006/lead-pipeline-api/internal/domain"
	analyzingmocks "github.com/vfg2006/lead-pipeline-api/internal/usecases/analyzing/mocks"
	syncingmocks "github.com/vfg2006/lead-pipeline-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T, origins []string) (http.Handler, *analyzingmocks.MockAnalyzer) {
	ctrl := gomock.NewController(t)
	analyzer := analyzingmocks.NewMockAnalyzer(ctrl)

	cfg := &config.Config{Cors: config.Cors{AllowedOrigins: origins}}
	h := NewHandler(cfg, analyzer, syncingmocks.NewMockSyncer(ctrl), handler.CronJobServices{})

	return h, analyzer
}

func TestNewHandler(t *testing.T) {
	t.Run("healthcheck", func(t *testing.T) {
		h, _ := newTestHandler(t, []string{"*"})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Body.String())
	})

	t.Run("cors headers on api routes", func(t *testing.T) {
		h, analyzer := newTestHandler(t, []string{"http://localhost:3000"})
		analyzer.EXPECT().GetSyncStatus(gomock.Any()).Return(domain.NeverSynced(), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/sync-status", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight does not reach the router", func(t *testing.T) {
		h, _ := newTestHandler(t, []string{"*"})

		req := httptest.NewRequest(http.MethodOptions, "/api/sheets/sync", nil)
		req.Header.Set("Origin", "http://example.com")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		h, _ := newTestHandler(t, []string{"*"})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/trends", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("cron without scheduler", func(t *testing.T) {
		h, _ := newTestHandler(t, []string{"*"})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/cron/run/sheets", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
