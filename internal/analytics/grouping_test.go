package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/leads-analytics-api/internal/domain"
)

func TestGroupByBuckets_ExemploSemanal(t *testing.T) {
	leads := []domain.LeadRecord{
		{DateRaw: "2025-01-06", CampaignRaw: "a", QualificationRaw: "квал"},
		{DateRaw: "2025-01-06", CampaignRaw: "a", QualificationRaw: ""},
	}
	start, end := date(2025, 1, 6), date(2025, 1, 12)
	buckets := BuildBuckets(start, end, domain.BucketModeWeek)
	require.Len(t, buckets, 1)

	groups, totals := GroupByBuckets(leads, []BucketSpend{{Bucket: buckets[0]}}, start, end, nil)

	require.Len(t, groups, 1)
	assert.Equal(t, "06.01 - 12.01", groups[0].Label)
	assert.Equal(t, "2025-01-06", groups[0].StartDate)
	assert.Equal(t, "2025-01-12", groups[0].EndDate)
	require.Len(t, groups[0].CampaignStats, 1)
	assert.Equal(t, "a", groups[0].CampaignStats[0].Name)
	assert.Equal(t, 2, groups[0].CampaignStats[0].TotalLeads)
	assert.Equal(t, 1, groups[0].CampaignStats[0].QualifiedLeads)
	assert.Equal(t, 50.0, groups[0].CampaignStats[0].QualifiedPercent)
	assert.Equal(t, 2, totals.TotalLeads)
}

func TestGroupByBuckets_OmiteBucketsVazios(t *testing.T) {
	start, end := date(2025, 1, 1), date(2025, 1, 26)
	buckets := BuildBuckets(start, end, domain.BucketModeWeek)
	require.Len(t, buckets, 4)

	leads := []domain.LeadRecord{
		{DateRaw: "2025-01-02", CampaignRaw: "a"},
		{DateRaw: "2024-12-30", CampaignRaw: "a"},
		{DateRaw: "2025-01-20", CampaignRaw: "b", TargetRaw: "целевой"},
	}
	spends := []BucketSpend{
		{Bucket: buckets[0], Spend: []domain.SpendRecord{{CampaignLabel: "A", Spend: 40}}},
		{Bucket: buckets[1]},
		{Bucket: buckets[2], Spend: []domain.SpendRecord{{CampaignLabel: "c", Spend: 70}}},
		{Bucket: buckets[3], Failed: true},
	}

	groups, totals := GroupByBuckets(leads, spends, start, end, nil)

	require.Len(t, groups, 3)

	assert.Equal(t, "30.12 - 05.01", groups[0].Label)
	assert.Equal(t, "2024-12-30", groups[0].StartDate)
	assert.Equal(t, 1, groups[0].Totals.TotalLeads, "lead fora do intervalo consultado não entra")
	assert.Equal(t, floatPtr(40), groups[0].Totals.Spend)
	assert.Equal(t, floatPtr(40), groups[0].FetchedSpend)

	assert.Equal(t, "13.01 - 19.01", groups[1].Label)
	assert.Empty(t, groups[1].CampaignStats)
	assert.Equal(t, floatPtr(0), groups[1].Totals.Spend)
	assert.Equal(t, floatPtr(70), groups[1].FetchedSpend)

	assert.Equal(t, "20.01 - 26.01", groups[2].Label)
	assert.Nil(t, groups[2].FetchedSpend)
	assert.Nil(t, groups[2].Totals.Spend)
	assert.Nil(t, groups[2].CampaignStats[0].Spend)

	assert.Equal(t, 2, totals.TotalLeads)
	assert.Equal(t, 1, totals.TargetLeads)
	assert.Equal(t, floatPtr(40), totals.Spend)
	assert.Equal(t, floatPtr(20), totals.CostPerLead)
}
