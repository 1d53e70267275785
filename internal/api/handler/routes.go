package handler

import (
	"net/http"

	"github.com/vfg2006/lead-pipeline-api/internal/api/handler/router"
	"github.com/vfg2006/lead-pipeline-api/internal/usecases/analyzing"
	"github.com/vfg2006/lead-pipeline-api/internal/usecases/syncing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/api/",
			Method:  http.MethodGet,
			Handler: RootHandler(),
		},
	}
}

func Deals(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/api/deals",
			Method:  http.MethodGet,
			Handler: ListDeals(service),
		},
	}
}

func Analytics(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/api/analytics/pipeline",
			Method:  http.MethodGet,
			Handler: GetPipelineMetrics(service),
		},
		{
			Path:    "/api/analytics/ae-performance",
			Method:  http.MethodGet,
			Handler: GetAEPerformance(service),
		},
		{
			Path:    "/api/analytics/regional",
			Method:  http.MethodGet,
			Handler: GetRegionalMetrics(service),
		},
		{
			Path:    "/api/analytics/filters",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
		{
			Path:    "/api/analytics/mql-sql",
			Method:  http.MethodGet,
			Handler: GetFunnelSections(service),
		},
		{
			Path:    "/api/analytics/lead-funnel",
			Method:  http.MethodGet,
			Handler: GetLeadFunnel(service),
		},
		{
			Path:    "/api/sync-status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(service),
		},
	}
}

func Sheets(service syncing.Syncer) []router.Route {
	return []router.Route{
		{
			Path:    "/api/sheets/sync",
			Method:  http.MethodPost,
			Handler: SyncSheets(service),
		},
		{
			Path:    "/api/sheets/auto-sync",
			Method:  http.MethodPost,
			Handler: AutoSyncSheets(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cron/run/:type",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
