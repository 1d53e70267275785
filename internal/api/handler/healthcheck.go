package handler

import (
	"net/http"
	"time"
)

const apiMessage = "Lead Pipeline Dashboard API"

// HealthcheckHandler responde sem tocar no banco; serve como sonda de liveness
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})
}

func RootHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": apiMessage})
	})
}
