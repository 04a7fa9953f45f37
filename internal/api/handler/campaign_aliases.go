package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/leads-analytics-api/internal/domain"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/aliasing"
	"github.com/vfg2006/leads-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/leads-analytics-api/pkg/log"
	"github.com/vfg2006/leads-analytics-api/pkg/validation"
)

func ListCampaignAliases(service aliasing.AliasManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		aliases, err := service.ListAliases()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("aliases: erro ao listar aliases")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar aliases de campanha", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, aliases)
	})
}

// SaveCampaignAliases grava a lista enviada; origens existentes são sobrescritas
func SaveCampaignAliases(service aliasing.AliasManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var aliases []domain.CampaignAlias
		if err := json.NewDecoder(r.Body).Decode(&aliases); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "O corpo deve ser uma lista de aliases", nil)
			return
		}

		if errs := validation.ValidateSlice(aliases); errs != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Aliases inválidos", errs)
			return
		}

		if err := service.SaveAliases(r.Context(), aliases); err != nil {
			if errors.Is(err, aliasing.ErrInvalidAlias) || errors.Is(err, aliasing.ErrDuplicateAlias) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
			log.ForContext(r.Context()).WithError(err).Error("aliases: erro ao salvar aliases")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar aliases de campanha", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]int{"saved": len(aliases)})
	})
}

func DeleteCampaignAlias(service aliasing.AliasManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		source := httprouter.ParamsFromContext(r.Context()).ByName("source")

		if err := service.DeleteAlias(source); err != nil {
			if errors.Is(err, aliasing.ErrAliasNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
				return
			}
			log.ForContext(r.Context()).WithError(err).Error("aliases: erro ao remover alias")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover alias de campanha", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
