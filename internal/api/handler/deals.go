package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/lead-pipeline-api/internal/domain"
	"github.com/vfg2006/lead-pipeline-api/internal/usecases/analyzing"
	"github.com/vfg2006/lead-pipeline-api/pkg/apiErrors"
	"github.com/vfg2006/lead-pipeline-api/pkg/log"
)

func ListDeals(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filters := &domain.DealFilters{
			AE:       strings.TrimSpace(query.Get("ae")),
			Region:   strings.TrimSpace(query.Get("region")),
			Stage:    strings.TrimSpace(query.Get("stage")),
			Industry: strings.TrimSpace(query.Get("industry")),
		}
		if filters.IsEmpty() {
			filters = nil
		}

		deals, err := service.ListDeals(r.Context(), filters)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar deals")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar deals no banco de dados", nil)
			return
		}

		if deals == nil {
			deals = []*domain.Deal{}
		}

		writeJSON(w, http.StatusOK, domain.DealListResponse{
			Deals: deals,
			Count: len(deals),
		})
	})
}
