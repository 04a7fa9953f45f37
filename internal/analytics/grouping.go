package analytics

import (
	"time"

	"github.com/vfg2006/leads-analytics-api/internal/domain"
	"github.com/vfg2006/leads-analytics-api/pkg/utils"
)

// BucketSpend é o gasto já buscado para um bucket. Failed indica que a busca falhou.
type BucketSpend struct {
	Bucket domain.Bucket
	Spend  []domain.SpendRecord
	Failed bool
}

// GroupByBuckets agrega os leads de cada bucket, recortado para [start, end].
// Buckets sem leads e sem gasto são omitidos. Os totais gerais são a soma dos totais dos buckets.
func (a *Aggregator) GroupByBuckets(leads []domain.LeadRecord, spends []BucketSpend, start, end time.Time, aliases AliasMap) ([]domain.BucketGroup, domain.Totals) {
	groups := make([]domain.BucketGroup, 0, len(spends))
	totals := make([]domain.Totals, 0, len(spends))

	for _, item := range spends {
		from, to := ClipToRange(item.Bucket, start, end)
		bucketLeads := FilterByRange(leads, from, to)

		var index map[string]float64
		var fetched *float64
		if !item.Failed {
			index = BuildSpendIndex(item.Spend, aliases)
			sum := utils.RoundWithTwoDecimalPlace(domain.SumSpend(item.Spend))
			fetched = &sum
		}

		if len(bucketLeads) == 0 && (fetched == nil || *fetched == 0) {
			continue
		}

		result := a.Aggregate(bucketLeads, index, aliases)

		groups = append(groups, domain.BucketGroup{
			Label:         item.Bucket.Label,
			StartDate:     FormatISODate(item.Bucket.Start),
			EndDate:       FormatISODate(item.Bucket.End),
			CampaignStats: result.CampaignStats,
			Totals:        result.Totals,
			FetchedSpend:  fetched,
		})
		totals = append(totals, result.Totals)
	}

	return groups, MergeTotals(totals)
}

// GroupByBuckets usa o vocabulário padrão
func GroupByBuckets(leads []domain.LeadRecord, spends []BucketSpend, start, end time.Time, aliases AliasMap) ([]domain.BucketGroup, domain.Totals) {
	return defaultAggregator.GroupByBuckets(leads, spends, start, end, aliases)
}
