package insighting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/leads-analytics-api/infrastructure/integrator/metrika"
	"github.com/vfg2006/leads-analytics-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/leads-analytics-api/infrastructure/repository"
	"github.com/vfg2006/leads-analytics-api/internal/analytics"
	"github.com/vfg2006/leads-analytics-api/internal/config"
	"github.com/vfg2006/leads-analytics-api/internal/domain"
	"github.com/vfg2006/leads-analytics-api/pkg/utils"
)

const defaultMaxConcurrentFetches = 3

type Service struct {
	cfg         *config.Config
	rowStore    sheets.RowStore
	adAnalytics metrika.AdAnalytics
	aliasRepo   repository.CampaignAliasRepository
	aggregator  *analytics.Aggregator

	historyMu      sync.Mutex
	historyLoaders map[int]*Loader
}

func NewService(
	cfg *config.Config,
	rowStore sheets.RowStore,
	adAnalytics metrika.AdAnalytics,
	aliasRepo repository.CampaignAliasRepository,
) *Service {
	return &Service{
		cfg:         cfg,
		rowStore:    rowStore,
		adAnalytics: adAnalytics,
		aliasRepo:   aliasRepo,
		aggregator:  analytics.NewAggregator(analytics.NewClassifier(analytics.DefaultVocabulary)),

		historyLoaders: make(map[int]*Loader),
	}
}

func (s *Service) GetSummary(ctx context.Context, filters *domain.Filters) (*domain.SummaryReport, error) {
	start, end, err := validateFilters(filters)
	if err != nil {
		return nil, err
	}

	aliases := s.loadAliases()

	var (
		wg       sync.WaitGroup
		rows     []domain.Row
		rowsErr  error
		spend    []domain.SpendRecord
		spendErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		rows, rowsErr = s.rowStore.GetRows(ctx, s.cfg.Sheets.LeadsTable)
	}()
	go func() {
		defer wg.Done()
		spend, spendErr = s.adAnalytics.FetchExpenses(ctx, start, end)
	}()
	wg.Wait()

	if rowsErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrRowStore, rowsErr)
	}

	var (
		index   map[string]float64
		fetched *float64
	)
	if spendErr != nil {
		logrus.WithError(spendErr).WithFields(logrus.Fields{
			"start": analytics.FormatISODate(start),
			"end":   analytics.FormatISODate(end),
		}).Warn("insights: gasto indisponível, seguindo sem custos")
	} else {
		index = analytics.BuildSpendIndex(spend, aliases)
		sum := utils.RoundWithTwoDecimalPlace(domain.SumSpend(spend))
		fetched = &sum
	}

	leads := analytics.FilterByRange(domain.LeadsFromRows(rows), start, end)
	result := s.aggregator.Aggregate(leads, index, aliases)

	return &domain.SummaryReport{
		AggregateResult: result,
		FetchedSpend:    fetched,
		Filters:         filters,
	}, nil
}

func (s *Service) GetGrouped(ctx context.Context, filters *domain.Filters, mode domain.BucketMode) (*domain.GroupedReport, error) {
	start, end, err := validateFilters(filters)
	if err != nil {
		return nil, err
	}

	if !mode.IsValid() {
		return nil, ErrInvalidMode
	}

	aliases := s.loadAliases()
	buckets := analytics.BuildBuckets(start, end, mode)

	var (
		wg      sync.WaitGroup
		rows    []domain.Row
		rowsErr error
		spends  []analytics.BucketSpend
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		rows, rowsErr = s.rowStore.GetRows(ctx, s.cfg.Sheets.LeadsTable)
	}()
	go func() {
		defer wg.Done()
		spends = s.fetchBucketSpends(ctx, buckets, start, end)
	}()
	wg.Wait()

	if rowsErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrRowStore, rowsErr)
	}

	periods, overall := s.aggregator.GroupByBuckets(domain.LeadsFromRows(rows), spends, start, end, aliases)

	return &domain.GroupedReport{
		Mode:          mode,
		Periods:       periods,
		OverallTotals: overall,
		Filters:       filters,
	}, nil
}

// GetSpendHistory mantém um carregamento por usuário: uma nova chamada do mesmo usuário
// interrompe a anterior, que retorna ErrStaleLoad.
func (s *Service) GetSpendHistory(ctx context.Context, viewerID int, before time.Time, mode domain.BucketMode, chunks int) (*domain.SpendHistory, error) {
	if !mode.IsValid() {
		return nil, ErrInvalidMode
	}

	loader := s.beginHistory(viewerID, NewLoader(s.adAnalytics, mode, before, s.loadAliases()))
	defer s.endHistory(viewerID, loader)

	for i := 0; i < chunks; i++ {
		if _, err := loader.LoadMore(ctx); err != nil {
			return nil, err
		}
	}

	history := loader.History()
	return &history, nil
}

func (s *Service) beginHistory(viewerID int, loader *Loader) *Loader {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()

	if previous, ok := s.historyLoaders[viewerID]; ok {
		previous.Stop()
		logrus.WithField("viewer_id", viewerID).Debug("insights: histórico anterior interrompido")
	}
	s.historyLoaders[viewerID] = loader
	return loader
}

func (s *Service) endHistory(viewerID int, loader *Loader) {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()

	if s.historyLoaders[viewerID] == loader {
		delete(s.historyLoaders, viewerID)
	}
}

// fetchBucketSpends busca o gasto de cada bucket recortado ao intervalo, mantendo a ordem dos buckets.
// Uma falha marca apenas o bucket correspondente.
func (s *Service) fetchBucketSpends(ctx context.Context, buckets []domain.Bucket, start, end time.Time) []analytics.BucketSpend {
	maxConcurrent := s.cfg.Insights.MaxConcurrentFetches
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrentFetches
	}

	results := make([]analytics.BucketSpend, len(buckets))
	semaphore := make(chan struct{}, maxConcurrent)

	var wg sync.WaitGroup
	for i, bucket := range buckets {
		wg.Add(1)
		go func(i int, bucket domain.Bucket) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			from, to := analytics.ClipToRange(bucket, start, end)
			records, err := s.adAnalytics.FetchExpenses(ctx, from, to)
			if err != nil {
				logrus.WithError(err).WithField("bucket", bucket.Label).Warn("insights: falha ao buscar gasto do período")
				results[i] = analytics.BucketSpend{Bucket: bucket, Failed: true}
				return
			}

			results[i] = analytics.BucketSpend{Bucket: bucket, Spend: records}
		}(i, bucket)
	}
	wg.Wait()

	return results
}

// loadAliases devolve um mapa vazio quando o repositório falha; os nomes ficam sem tradução
func (s *Service) loadAliases() analytics.AliasMap {
	if s.aliasRepo == nil {
		return analytics.AliasMap{}
	}

	aliases, err := s.aliasRepo.ListAliases()
	if err != nil {
		logrus.WithError(err).Warn("insights: erro ao carregar aliases de campanha")
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
