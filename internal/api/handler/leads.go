package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/leads-analytics-api/internal/domain"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/leading"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/reconciling"
	"github.com/vfg2006/leads-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/leads-analytics-api/pkg/log"
	"github.com/vfg2006/leads-analytics-api/pkg/validation"
)

func ListLeads(service leading.LeadManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, ok := parseFilters(w, r)
		if !ok {
			return
		}

		leads, err := service.ListLeads(r.Context(), filters)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("leads: erro ao listar leads")
			writeLeadError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, leads)
	})
}

func AppendLeads(service leading.LeadManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var requests []domain.NewLeadRequest
		if err := json.NewDecoder(r.Body).Decode(&requests); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "O corpo deve ser uma lista de leads", nil)
			return
		}

		if errs := validation.ValidateSlice(requests); errs != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Leads inválidos", errs)
			return
		}

		count, err := service.AppendLeads(r.Context(), requests)
		if err != nil {
			logger.WithError(err).Error("leads: erro ao adicionar leads")
			writeLeadError(w, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, map[string]int{"appended": count})
	})
}

// UpdateLeadStatus altera qualificação, alvo ou valor de venda de uma linha
func UpdateLeadStatus(service leading.LeadManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rowID, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("row_id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "row_id inválido", nil)
			return
		}

		var update domain.LeadStatusUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.UpdateStatus(r.Context(), rowID, update); err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("row_id", rowID).Error("leads: erro ao atualizar lead")
			writeLeadError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// PurgeLeads remove as linhas do intervalo informado
func PurgeLeads(service leading.LeadManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters, ok := parseFilters(w, r)
		if !ok {
			return
		}

		deleted, err := service.PurgeRange(r.Context(), filters)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("leads: erro ao remover leads")
			writeLeadError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]int{"deleted": deleted})
	})
}

func MarkDuplicates(service reconciling.Reconciler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := service.MarkDuplicates(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("reconcile: erro ao marcar duplicados")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao marcar duplicados na planilha", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

// StartArchiveMerge recebe as linhas já extraídas do arquivo e inicia a mesclagem em segundo plano
func StartArchiveMerge(service reconciling.Reconciler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var rows []domain.ArchiveRow
		if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "O corpo deve ser uma lista de linhas", nil)
			return
		}

		if errs := validation.ValidateSlice(rows); errs != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Linhas inválidas", errs)
			return
		}

		job, err := service.StartArchiveMerge(r.Context(), rows)
		if err != nil {
			if errors.Is(err, reconciling.ErrEmptyImport) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}
			logger.WithError(err).Error("reconcile: erro ao iniciar mesclagem")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar mesclagem", nil)
			return
		}

		logger.WithFields(log.Fields{
			"job_id": job.ID,
			"rows":   job.TotalRows,
		}).Info("reconcile: mesclagem iniciada")

		writeJSON(w, r, http.StatusAccepted, job)
	})
}

func GetArchiveMerge(service reconciling.Reconciler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jobID := httprouter.ParamsFromContext(r.Context()).ByName("job_id")

		job, err := service.GetMergeJob(jobID)
		if err != nil {
			if errors.Is(err, reconciling.ErrJobNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar mesclagem", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, job)
	})
}

func writeLeadError(w http.ResponseWriter, err error) {
	if writeFilterError(w, err) {
		return
	}

	switch {
	case errors.Is(err, leading.ErrInvalidDate), errors.Is(err, leading.ErrInvalidRow):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, leading.ErrEmptyUpdate), errors.Is(err, leading.ErrNothingToWrite):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao acessar a planilha de leads", nil)
	}
}
