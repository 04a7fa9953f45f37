package insighting

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/leads-analytics-api/internal/analytics"
	"github.com/vfg2006/leads-analytics-api/internal/domain"
	"github.com/vfg2006/leads-analytics-api/pkg/utils"
)

const totalKey = "total"

// Loader carrega o histórico de gasto um bucket por vez, andando para trás a partir da fronteira.
// Cada carregamento recebe uma geração; uma nova chamada cancela a anterior e respostas antigas são descartadas.
// Depois de Stop, nenhuma resposta é somada.
type Loader struct {
	fetcher ExpenseFetcher
	aliases analytics.AliasMap

	mu         sync.Mutex
	mode       domain.BucketMode
	frontier   time.Time
	campaigns  map[string]domain.SpendRecord
	total      map[string]domain.SpendRecord
	series     []domain.SpendChunk
	generation uint64
	cancel     context.CancelFunc
	stopped    bool
}

func NewLoader(fetcher ExpenseFetcher, mode domain.BucketMode, frontier time.Time, aliases analytics.AliasMap) *Loader {
	l := &Loader{
		fetcher: fetcher,
		aliases: aliases,
	}
	l.reset(mode, frontier)
	return l
}

// LoadMore busca o bucket imediatamente anterior à fronteira e soma ao acumulado
func (l *Loader) LoadMore(ctx context.Context) (domain.SpendChunk, error) {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return domain.SpendChunk{}, ErrStaleLoad
	}
	l.generation++
	generation := l.generation
	if l.cancel != nil {
		l.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel

	bucket := analytics.BucketFor(l.frontier.AddDate(0, 0, -1), l.mode)
	end := l.frontier.AddDate(0, 0, -1)
	l.mu.Unlock()

	records, err := l.fetcher.FetchExpenses(ctx, bucket.Start, end)

	l.mu.Lock()
	defer l.mu.Unlock()
	cancel()

	if generation != l.generation {
		logrus.WithField("bucket", bucket.Label).Debug("insights: descartando carregamento antigo")
		return domain.SpendChunk{}, ErrStaleLoad
	}
	l.cancel = nil

	if err != nil {
		return domain.SpendChunk{}, err
	}

	resolved := make([]domain.SpendRecord, 0, len(records))
	for _, record := range records {
		record.CampaignLabel = l.aliases.DisplayName(record.CampaignLabel)
		resolved = append(resolved, record)
	}

	chunkTotal := totalOf(resolved)
	l.campaigns = analytics.MergeChunk(l.campaigns, resolved)
	l.total = analytics.MergeChunk(l.total, []domain.SpendRecord{chunkTotal})
	l.frontier = bucket.Start

	chunk := domain.SpendChunk{
		Label:     bucket.Label,
		StartDate: analytics.FormatISODate(bucket.Start),
		EndDate:   analytics.FormatISODate(end),
		Spend:     utils.RoundWithTwoDecimalPlace(chunkTotal.Spend),
		Visits:    chunkTotal.Visits,
	}
	l.series = append(l.series, chunk)

	return chunk, nil
}

// Stop cancela o carregamento em andamento; ele e os próximos retornam ErrStaleLoad
func (l *Loader) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stopped = true
	l.generation++
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// History retorna uma cópia do estado acumulado, campanhas por gasto decrescente
func (l *Loader) History() domain.SpendHistory {
	l.mu.Lock()
	defer l.mu.Unlock()

	campaigns := make([]domain.SpendRecord, 0, len(l.campaigns))
	for _, record := range l.campaigns {
		record.Spend = utils.RoundWithTwoDecimalPlace(record.Spend)
		record.CostPerVisit = utils.RoundWithTwoDecimalPlace(record.CostPerVisit)
		campaigns = append(campaigns, record)
	}
	sort.Slice(campaigns, func(i, j int) bool {
		if campaigns[i].Spend != campaigns[j].Spend {
			return campaigns[i].Spend > campaigns[j].Spend
		}
		return campaigns[i].CampaignLabel < campaigns[j].CampaignLabel
	})

	total := l.total[totalKey]
	total.CampaignLabel = totalKey
	total.Spend = utils.RoundWithTwoDecimalPlace(total.Spend)
	total.CostPerVisit = utils.RoundWithTwoDecimalPlace(total.CostPerVisit)

	series := make([]domain.SpendChunk, len(l.series))
	copy(series, l.series)

	return domain.SpendHistory{
		Mode:      l.mode,
		Frontier:  analytics.FormatISODate(l.frontier),
		Campaigns: campaigns,
		Total:     total,
		Series:    series,
	}
}

func (l *Loader) reset(mode domain.BucketMode, frontier time.Time) {
	l.mode = mode
	l.frontier = analytics.DateOnly(frontier)
	l.campaigns = map[string]domain.SpendRecord{}
	l.total = map[string]domain.SpendRecord{}
	l.series = nil
}

func totalOf(records []domain.SpendRecord) domain.SpendRecord {
	total := domain.SpendRecord{CampaignLabel: totalKey}
	for _, record := range records {
		total.Spend += record.Spend
		total.Visits += record.Visits
	}
	total.RecalculateCostPerVisit()
	return total
}
