package leading

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/leads-analytics-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/leads-analytics-api/infrastructure/repository"
	"github.com/vfg2006/leads-analytics-api/internal/analytics"
	"github.com/vfg2006/leads-analytics-api/internal/config"
	"github.com/vfg2006/leads-analytics-api/internal/domain"
)

// firstDataRow é a primeira linha depois do cabeçalho
const firstDataRow = 2

var (
	ErrMissingDates   = errors.New("é necessário informar as datas de início e fim")
	ErrInvalidPeriod  = errors.New("a data de início não pode ser posterior à data de fim")
	ErrInvalidDate    = errors.New("data do lead inválida")
	ErrInvalidRow     = errors.New("linha inválida")
	ErrEmptyUpdate    = errors.New("nenhum campo para atualizar")
	ErrNothingToWrite = errors.New("nenhum lead para gravar")
)

type LeadManager interface {
	ListLeads(ctx context.Context, filters *domain.Filters) ([]domain.LeadView, error)
	AppendLeads(ctx context.Context, requests []domain.NewLeadRequest) (int, error)
	UpdateStatus(ctx context.Context, rowID int, update domain.LeadStatusUpdate) error
	// PurgeRange remove definitivamente as linhas com data dentro do intervalo
	PurgeRange(ctx context.Context, filters *domain.Filters) (int, error)
}

type Service struct {
	cfg        *config.Config
	rowStore   sheets.RowStore
	aliasRepo  repository.CampaignAliasRepository
	classifier *analytics.Classifier
}

func NewService(cfg *config.Config, rowStore sheets.RowStore, aliasRepo repository.CampaignAliasRepository) *Service {
	return &Service{
		cfg:        cfg,
		rowStore:   rowStore,
		aliasRepo:  aliasRepo,
		classifier: analytics.NewClassifier(analytics.DefaultVocabulary),
	}
}

func (s *Service) ListLeads(ctx context.Context, filters *domain.Filters) ([]domain.LeadView, error) {
	start, end, err := validateFilters(filters)
	if err != nil {
		return nil, err
	}

	rows, err := s.rowStore.GetRows(ctx, s.cfg.Sheets.LeadsTable)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar leads: %w", err)
	}

	aliases := s.loadAliases()
	leads := analytics.FilterByRange(domain.LeadsFromRows(rows), start, end)

	views := make([]domain.LeadView, 0, len(leads))
	for _, lead := range leads {
		views = append(views, domain.LeadView{
			LeadRecord:   lead,
			CampaignName: aliases.DisplayName(lead.CampaignRaw),
			LeadFacets:   s.classifier.Classify(lead),
		})
	}

	return views, nil
}

func (s *Service) AppendLeads(ctx context.Context, requests []domain.NewLeadRequest) (int, error) {
	if len(requests) == 0 {
		return 0, ErrNothingToWrite
	}

	rows := make([]map[string]string, 0, len(requests))
	for i, request := range requests {
		lead := request.ToLead()
		if _, ok := analytics.ParseLeadDate(lead.DateRaw); !ok {
			return 0, fmt.Errorf("%w: linha %d (%q)", ErrInvalidDate, i, lead.DateRaw)
		}
		rows = append(rows, lead.ToValues())
	}

	count, err := s.rowStore.AppendRows(ctx, s.cfg.Sheets.LeadsTable, rows)
	if err != nil {
		return 0, fmt.Errorf("erro ao gravar leads: %w", err)
	}

	logrus.WithField("count", count).Info("leads: leads adicionados manualmente")
	return count, nil
}

func (s *Service) UpdateStatus(ctx context.Context, rowID int, update domain.LeadStatusUpdate) error {
	if rowID < firstDataRow {
		return ErrInvalidRow
	}

	patch := update.ToPatch()
	if len(patch) == 0 {
		return ErrEmptyUpdate
	}

	if err := s.rowStore.UpdateRow(ctx, s.cfg.Sheets.LeadsTable, rowID, patch); err != nil {
		return fmt.Errorf("erro ao atualizar lead %d: %w", rowID, err)
	}

	return nil
}

func (s *Service) PurgeRange(ctx context.Context, filters *domain.Filters) (int, error) {
	start, end, err := validateFilters(filters)
	if err != nil {
		return 0, err
	}

	table := s.cfg.Sheets.LeadsTable
	rows, err := s.rowStore.GetRows(ctx, table)
	if err != nil {
		return 0, fmt.Errorf("erro ao ler leads para remoção: %w", err)
	}

	leads := analytics.FilterByRange(domain.LeadsFromRows(rows), start, end)
	if len(leads) == 0 {
		return 0, nil
	}

	rowIDs := make([]int, 0, len(leads))
	for _, lead := range leads {
		rowIDs = append(rowIDs, lead.RowID)
	}

	deleted, err := s.rowStore.DeleteRows(ctx, table, rowIDs)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover leads: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"start":   analytics.FormatISODate(start),
		"end":     analytics.FormatISODate(end),
		"deleted": deleted,
	}).Warn("leads: leads removidos por intervalo")

	return deleted, nil
}

func (s *Service) loadAliases() analytics.AliasMap {
	if s.aliasRepo == nil {
		return analytics.AliasMap{}
	}

	aliases, err := s.aliasRepo.ListAliases()
	if err != nil {
		logrus.WithError(err).Warn("leads: erro ao carregar aliases de campanha")
		return analytics.AliasMap{}
	}

	return analytics.NewAliasMap(aliases)
}

func validateFilters(filters *domain.Filters) (time.Time, time.Time, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return time.Time{}, time.Time{}, ErrMissingDates
	}

	start, end := analytics.DateOnly(*filters.StartDate), analytics.DateOnly(*filters.EndDate)
	if start.After(end) {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}

	return start, end, nil
}
