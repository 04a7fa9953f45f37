package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/leads-analytics-api/internal/domain"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/insighting"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/leading"
	"github.com/vfg2006/leads-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/leads-analytics-api/pkg/log"
	"github.com/vfg2006/leads-analytics-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("http: erro ao codificar resposta")
	}
}

// parseFilters lê start_date e end_date da query
func parseFilters(w http.ResponseWriter, r *http.Request) (*domain.Filters, bool) {
	query := r.URL.Query()

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date deve estar no formato YYYY-MM-DD", nil)
		return nil, false
	}

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date deve estar no formato YYYY-MM-DD", nil)
		return nil, false
	}

	return &domain.Filters{StartDate: startDate, EndDate: endDate}, true
}

// writeFilterError traduz os erros de intervalo comuns às consultas; retorna false se o erro não é de filtro
func writeFilterError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, insighting.ErrMissingDates), errors.Is(err, leading.ErrMissingDates):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, insighting.ErrInvalidPeriod), errors.Is(err, leading.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	default:
		return false
	}
	return true
}
