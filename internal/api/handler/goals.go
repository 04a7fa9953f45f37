package handler

import (
	"net/http"

	"github.com/vfg2006/leads-analytics-api/infrastructure/integrator/metrika"
	"github.com/vfg2006/leads-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/leads-analytics-api/pkg/log"
)

// ListGoals lista as metas do contador, usadas para configurar a importação de leads
func ListGoals(adAnalytics metrika.AdAnalytics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		goals, err := adAnalytics.ListGoals(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("goals: erro ao listar metas")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar metas do contador", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, goals)
	})
}
