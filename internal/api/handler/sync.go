package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/lead-pipeline-api/internal/usecases/syncing"
	"github.com/vfg2006/lead-pipeline-api/pkg/apiErrors"
	"github.com/vfg2006/lead-pipeline-api/pkg/log"
)

func SyncSheets(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - SyncSheets")

		result, err := service.Sync(r.Context())
		if err != nil {
			logger.WithError(err).Error("Erro ao sincronizar planilha")

			var syncErr *syncing.SyncError
			if errors.As(err, &syncErr) {
				apiErrors.WriteError(w, syncErr.Code(), syncErr.Error(), map[string]any{"kind": syncErr.Kind})
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao sincronizar planilha", nil)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

// AutoSyncSheets sempre responde 200: erros de verificação vêm no próprio corpo (reason=check_error)
func AutoSyncSheets(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - AutoSyncSheets")

		writeJSON(w, http.StatusOK, service.AutoSync(r.Context()))
	})
}
