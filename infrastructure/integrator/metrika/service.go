package metrika

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metrikadomain "github.com/vfg2006/leads-analytics-api/infrastructure/integrator/metrika/domain"
	"github.com/vfg2006/leads-analytics-api/infrastructure/integrator/metrika/metrikaclient"
	"github.com/vfg2006/leads-analytics-api/internal/analytics"
	"github.com/vfg2006/leads-analytics-api/internal/config"
	"github.com/vfg2006/leads-analytics-api/internal/domain"
	"github.com/vfg2006/leads-analytics-api/pkg/utils"
)

var (
	ErrLogRequestFailed  = errors.New("pedido de logs não foi processado")
	ErrLogRequestTimeout = errors.New("pedido de logs não ficou pronto a tempo")
)

// AdAnalytics é a fonte externa de gastos, metas e eventos de lead
type AdAnalytics interface {
	FetchExpenses(ctx context.Context, dateFrom, dateTo time.Time) ([]domain.SpendRecord, error)
	FetchLeadEvents(ctx context.Context, dateFrom, dateTo time.Time, filters domain.LeadEventFilters, aliases analytics.AliasMap) ([]domain.LeadRecord, error)
	ListGoals(ctx context.Context) ([]domain.Goal, error)
}

type MetrikaIntegrator struct {
	Client       metrikaclient.Client
	pollInterval time.Duration
	maxPolls     int
	sleep        utils.SleepFunc
}

func New(cfg *config.Config, client metrikaclient.Client) *MetrikaIntegrator {
	maxPolls := cfg.Metrika.LogMaxPolls
	if maxPolls <= 0 {
		maxPolls = 1
	}

	return &MetrikaIntegrator{
		Client:       client,
		pollInterval: time.Duration(cfg.Metrika.LogPollSeconds) * time.Second,
		maxPolls:     maxPolls,
		sleep:        utils.ContextSleep,
	}
}

// FetchExpenses retorna o gasto por campanha no período
func (s *MetrikaIntegrator) FetchExpenses(ctx context.Context, dateFrom, dateTo time.Time) ([]domain.SpendRecord, error) {
	resp, err := s.Client.GetCampaignExpenses(ctx, dateFrom, dateTo)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"date_from": dateFrom.Format(time.DateOnly),
			"date_to":   dateTo.Format(time.DateOnly),
			"error":     err.Error(),
		}).Error("metrika: erro ao buscar gastos")
		return nil, err
	}

	records := make([]domain.SpendRecord, 0, len(resp.Data))
	for _, row := range resp.Data {
		record := domain.SpendRecord{
			CampaignLabel: row.Label(),
			Spend:         utils.RoundWithTwoDecimalPlace(row.Metric(0)),
			Visits:        int(row.Metric(1)),
		}
		record.RecalculateCostPerVisit()
		records = append(records, record)
	}

	logrus.WithFields(logrus.Fields{
		"date_from": dateFrom.Format(time.DateOnly),
		"date_to":   dateTo.Format(time.DateOnly),
		"campaigns": len(records),
	}).Debug("metrika: gastos obtidos")

	return records, nil
}

func (s *MetrikaIntegrator) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	goals, err := s.Client.GetGoals(ctx)
	if err != nil {
		logrus.WithError(err).Error("metrika: erro ao listar metas")
		return nil, err
	}

	result := make([]domain.Goal, 0, len(goals))
	for _, goal := range goals {
		result = append(result, domain.Goal{ID: goal.ID, Name: goal.Name, Type: goal.Type})
	}
	return result, nil
}

// FetchLeadEvents exporta as visitas com conversão do período pela Logs API e converte em leads
func (s *MetrikaIntegrator) FetchLeadEvents(ctx context.Context, dateFrom, dateTo time.Time, filters domain.LeadEventFilters, aliases analytics.AliasMap) ([]domain.LeadRecord, error) {
	goals, err := s.ListGoals(ctx)
	if err != nil {
		return nil, err
	}
	goalNames := make(map[int64]string, len(goals))
	for _, goal := range goals {
		goalNames[goal.ID] = goal.Name
	}

	request, err := s.Client.CreateLogRequest(ctx, dateFrom, dateTo, metrikadomain.VisitLogFields)
	if err != nil {
		logrus.WithError(err).Error("metrika: erro ao criar pedido de logs")
		return nil, err
	}

	defer func() {
		if err := s.Client.CleanLogRequest(context.WithoutCancel(ctx), request.RequestID); err != nil {
			logrus.WithError(err).WithField("request_id", request.RequestID).Warn("metrika: erro ao limpar pedido de logs")
		}
	}()

	processed, err := s.waitProcessed(ctx, request.RequestID)
	if err != nil {
		return nil, err
	}

	leads := make([]domain.LeadRecord, 0)
	for _, part := range processed.Parts {
		rows, err := s.Client.DownloadLogPart(ctx, request.RequestID, part.PartNumber)
		if err != nil {
			return nil, err
		}

		for _, row := range rows {
			if lead, ok := visitToLead(row, filters, goalNames, aliases); ok {
				leads = append(leads, lead)
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"date_from": dateFrom.Format(time.DateOnly),
		"date_to":   dateTo.Format(time.DateOnly),
		"leads":     len(leads),
	}).Info("metrika: eventos de lead importados")

	return leads, nil
}

func (s *MetrikaIntegrator) waitProcessed(ctx context.Context, requestID int64) (*metrikadomain.LogRequest, error) {
	for poll := 1; poll <= s.maxPolls; poll++ {
		request, err := s.Client.GetLogRequest(ctx, requestID)
		if err != nil {
			return nil, err
		}

		if request.Status == metrikadomain.LogStatusProcessed {
			return request, nil
		}
		if request.Failed() {
			return nil, fmt.Errorf("metrika: %w: status %s", ErrLogRequestFailed, request.Status)
		}

		if poll < s.maxPolls {
			if err := s.sleep(ctx, s.pollInterval); err != nil {
				return nil, err
			}
		}
	}

	return nil, fmt.Errorf("metrika: %w: %d consultas", ErrLogRequestTimeout, s.maxPolls)
}

func visitToLead(row map[string]string, filters domain.LeadEventFilters, goalNames map[int64]string, aliases analytics.AliasMap) (domain.LeadRecord, bool) {
	goalIDs := parseGoalIDs(row[metrikadomain.FieldGoalsID])
	if len(goalIDs) == 0 {
		return domain.LeadRecord{}, false
	}

	goalID, ok := firstAllowedGoal(goalIDs, filters.GoalIDs)
	if !ok {
		return domain.LeadRecord{}, false
	}

	if filters.Source != "" && !strings.EqualFold(row[metrikadomain.FieldTrafficSource], filters.Source) {
		return domain.LeadRecord{}, false
	}

	date, clock, _ := strings.Cut(strings.TrimSpace(row[metrikadomain.FieldDateTime]), " ")

	campaign := strings.TrimSpace(row[metrikadomain.FieldDirectOrder])
	if campaign == "" || campaign == "0" {
		campaign = strings.TrimSpace(row[metrikadomain.FieldUTMCampaign])
	}

	return domain.LeadRecord{
		DateRaw:         date,
		TimeRaw:         clock,
		CampaignRaw:     aliases.Resolve(campaign),
		GoalLabel:       goalNames[goalID],
		ExternalVisitID: row[metrikadomain.FieldVisitID],
	}, true
}

func firstAllowedGoal(goalIDs, allowed []int64) (int64, bool) {
	if len(allowed) == 0 {
		return goalIDs[0], true
	}
	for _, id := range goalIDs {
		for _, allowedID := range allowed {
			if id == allowedID {
				return id, true
			}
		}
	}
	return 0, false
}

// parseGoalIDs lê o formato "[101,102]" da Logs API
func parseGoalIDs(raw string) []int64 {
	raw = strings.Trim(strings.TrimSpace(raw), "[]")
	if raw == "" {
		return nil
	}

	ids := make([]int64, 0)
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
