package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/leads-analytics-api/internal/analytics"
	"github.com/vfg2006/leads-analytics-api/internal/domain"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/insighting"
	"github.com/vfg2006/leads-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/leads-analytics-api/pkg/log"
	"github.com/vfg2006/leads-analytics-api/pkg/middleware"
	"github.com/vfg2006/leads-analytics-api/pkg/utils"
)

const (
	defaultHistoryChunks = 1
	maxHistoryChunks     = 24
)

func GetSummary(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := parseFilters(w, r)
		if !ok {
			return
		}

		report, err := service.GetSummary(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("insights: erro ao gerar resumo")
			writeInsightError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"campaigns":   len(report.CampaignStats),
			"total_leads": report.Totals.TotalLeads,
		}).Info("insights: resumo gerado")

		writeJSON(w, r, http.StatusOK, report)
	})
}

func GetGrouped(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := parseFilters(w, r)
		if !ok {
			return
		}

		mode := domain.BucketMode(r.URL.Query().Get("mode"))
		if mode == "" {
			mode = domain.BucketModeWeek
		}

		report, err := service.GetGrouped(r.Context(), filters, mode)
		if err != nil {
			logger.WithError(err).WithField("mode", mode).Error("insights: erro ao gerar relatório agrupado")
			writeInsightError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"mode":    mode,
			"periods": len(report.Periods),
		}).Info("insights: relatório agrupado gerado")

		writeJSON(w, r, http.StatusOK, report)
	})
}

// GetSpendHistory carrega os blocos de gasto anteriores a before (padrão: amanhã)
func GetSpendHistory(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		before := analytics.DateOnly(time.Now()).AddDate(0, 0, 1)
		parsed, err := utils.ParseDate(query.Get("before"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "before deve estar no formato YYYY-MM-DD", nil)
			return
		}
		if parsed != nil {
			before = *parsed
		}

		mode := domain.BucketMode(query.Get("mode"))
		if mode == "" {
			mode = domain.BucketModeMonth
		}

		chunks := defaultHistoryChunks
		if raw := query.Get("chunks"); raw != "" {
			chunks, err = strconv.Atoi(raw)
			if err != nil || chunks < 1 || chunks > maxHistoryChunks {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "chunks deve ser um número entre 1 e 24", nil)
				return
			}
		}

		viewerID := 0
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			viewerID = claims.UserID
		}

		history, err := service.GetSpendHistory(r.Context(), viewerID, before, mode, chunks)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"before": analytics.FormatISODate(before),
				"mode":   mode,
				"chunks": chunks,
			}).Error("insights: erro ao carregar histórico de gasto")
			writeInsightError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, history)
	})
}

func writeInsightError(w http.ResponseWriter, err error) {
	if writeFilterError(w, err) {
		return
	}

	switch {
	case errors.Is(err, insighting.ErrInvalidMode):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "mode deve ser week ou month", nil)
	case errors.Is(err, insighting.ErrStaleLoad):
		apiErrors.WriteError(w, apiErrors.ErrRequestSuperseded, "Carregamento substituído por uma requisição mais recente", nil)
	case errors.Is(err, insighting.ErrRowStore):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Não foi possível ler a planilha de leads", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar o serviço de analytics", nil)
	}
}
