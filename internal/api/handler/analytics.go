package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/lead-pipeline-api/internal/domain"
	"github.com/vfg2006/lead-pipeline-api/internal/usecases/analyzing"
	"github.com/vfg2006/lead-pipeline-api/pkg/apiErrors"
	"github.com/vfg2006/lead-pipeline-api/pkg/log"
)

// analyticsHandler adapta uma leitura do Analyzer para o formato JSON da API
func analyticsHandler[T any](name string, read func(ctx context.Context) (T, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := read(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Errorf("Erro ao calcular %s", name)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular "+name, nil)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func GetPipelineMetrics(service analyzing.Analyzer) http.Handler {
	return analyticsHandler("métricas do pipeline", service.GetPipelineMetrics)
}

func GetAEPerformance(service analyzing.Analyzer) http.Handler {
	return analyticsHandler("performance por AE", func(ctx context.Context) (*domain.AEPerformanceResponse, error) {
		performance, err := service.GetAEPerformance(ctx)
		if err != nil {
			return nil, err
		}
		if performance == nil {
			performance = []*domain.AEPerformance{}
		}
		return &domain.AEPerformanceResponse{AEPerformance: performance}, nil
	})
}

func GetRegionalMetrics(service analyzing.Analyzer) http.Handler {
	return analyticsHandler("métricas regionais", func(ctx context.Context) (*domain.RegionalMetricsResponse, error) {
		metrics, err := service.GetRegionalMetrics(ctx)
		if err != nil {
			return nil, err
		}
		if metrics == nil {
			metrics = []*domain.RegionalMetrics{}
		}
		return &domain.RegionalMetricsResponse{RegionalMetrics: metrics}, nil
	})
}

func GetFilterOptions(service analyzing.Analyzer) http.Handler {
	return analyticsHandler("opções de filtro", service.GetFilterOptions)
}

func GetFunnelSections(service analyzing.Analyzer) http.Handler {
	return analyticsHandler("métricas de MQL/SQL", service.GetFunnelSections)
}

func GetLeadFunnel(service analyzing.Analyzer) http.Handler {
	return analyticsHandler("funil de leads", service.GetLeadFunnel)
}

func GetSyncStatus(service analyzing.Analyzer) http.Handler {
	return analyticsHandler("status de sincronização", service.GetSyncStatus)
}
