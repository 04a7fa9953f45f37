package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/leads-analytics-api/internal/domain"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestAggregate_ExemploSemanal(t *testing.T) {
	leads := []domain.LeadRecord{
		{DateRaw: "2025-01-06", CampaignRaw: "a", QualificationRaw: "квал"},
		{DateRaw: "2025-01-06", CampaignRaw: "a", QualificationRaw: ""},
	}

	result := Aggregate(leads, map[string]float64{}, nil)

	require.Len(t, result.CampaignStats, 1)
	stat := result.CampaignStats[0]
	assert.Equal(t, "a", stat.Name)
	assert.Equal(t, 2, stat.TotalLeads)
	assert.Equal(t, 1, stat.QualifiedLeads)
	assert.Equal(t, 0, stat.TargetLeads)
	assert.Equal(t, 50.0, stat.QualifiedPercent)
	assert.Nil(t, stat.Spend)
	assert.Nil(t, stat.CostPerLead)
	assert.Equal(t, 2, result.Totals.TotalLeads)
	assert.Equal(t, floatPtr(0), result.Totals.Spend)
}

func TestAggregate_AliasesEGasto(t *testing.T) {
	aliases := AliasMap{"123": "Поиск"}
	leads := []domain.LeadRecord{
		{CampaignRaw: "123", TargetRaw: "целевой", QualificationRaw: "квал", SaleAmountRaw: "1000"},
		{CampaignRaw: "Поиск", TargetRaw: "нецелевой"},
		{CampaignRaw: "", QualificationRaw: "квалифицированный"},
		{CampaignRaw: "123", TargetRaw: "да"},
	}
	spend := map[string]float64{"поиск": 300, "sem leads": 999}

	result := Aggregate(leads, spend, aliases)

	require.Len(t, result.CampaignStats, 2)

	search := result.CampaignStats[0]
	assert.Equal(t, "Поиск", search.Name)
	assert.Equal(t, domain.Counters{TotalLeads: 3, TargetLeads: 2, QualifiedLeads: 1, Sales: 1}, search.Counters)
	assert.Equal(t, 66.67, search.TargetPercent)
	assert.Equal(t, 33.33, search.QualifiedPercent)
	assert.Equal(t, 33.33, search.ConversionRate)
	assert.Equal(t, floatPtr(300), search.Spend)
	assert.Equal(t, floatPtr(100), search.CostPerLead)
	assert.Equal(t, floatPtr(150), search.CostPerTarget)
	assert.Equal(t, floatPtr(300), search.CostPerQualified)

	other := result.CampaignStats[1]
	assert.Equal(t, domain.DefaultCampaignName, other.Name)
	assert.Equal(t, 1, other.TotalLeads)
	assert.Nil(t, other.Spend)
	assert.Nil(t, other.CostPerLead)

	totals := result.Totals
	assert.Equal(t, domain.Counters{TotalLeads: 4, TargetLeads: 2, QualifiedLeads: 2, Sales: 1}, totals.Counters)
	assert.Equal(t, floatPtr(300), totals.Spend, "gasto de campanhas sem leads não entra no total")
	assert.Equal(t, floatPtr(75), totals.CostPerLead)
	assert.Equal(t, floatPtr(150), totals.CostPerTarget)
	assert.Equal(t, floatPtr(150), totals.CostPerQualified)
	assert.Equal(t, 50.0, totals.TargetPercent)
	assert.Equal(t, 25.0, totals.ConversionRate)
}

func TestAggregate_OrdenacaoEstavel(t *testing.T) {
	leads := []domain.LeadRecord{
		{CampaignRaw: "x"},
		{CampaignRaw: "y"},
		{CampaignRaw: "z"},
		{CampaignRaw: "z"},
		{CampaignRaw: "w"},
	}

	result := Aggregate(leads, nil, nil)

	names := make([]string, 0, len(result.CampaignStats))
	for _, stat := range result.CampaignStats {
		names = append(names, stat.Name)
	}
	assert.Equal(t, []string{"z", "x", "y", "w"}, names)
}

func TestAggregate_SemGasto(t *testing.T) {
	leads := []domain.LeadRecord{{CampaignRaw: "a", TargetRaw: "целевой"}}

	result := Aggregate(leads, nil, nil)

	assert.Nil(t, result.CampaignStats[0].Spend)
	assert.Nil(t, result.Totals.Spend)
	assert.Nil(t, result.Totals.CostPerLead)
	assert.Equal(t, 100.0, result.Totals.TargetPercent)
}

func TestAggregate_GastoZeroNaoGeraCusto(t *testing.T) {
	leads := []domain.LeadRecord{{CampaignRaw: "a"}}

	result := Aggregate(leads, map[string]float64{"a": 0}, nil)

	assert.Equal(t, floatPtr(0), result.CampaignStats[0].Spend)
	assert.Nil(t, result.CampaignStats[0].CostPerLead)
}

func TestAggregate_RotulosComMesmaChaveNaoDuplicamGasto(t *testing.T) {
	leads := []domain.LeadRecord{
		{CampaignRaw: "Brand"},
		{CampaignRaw: " brand "},
		{CampaignRaw: "Brand"},
	}

	result := Aggregate(leads, map[string]float64{"brand": 100}, nil)

	require.Len(t, result.CampaignStats, 2)
	assert.Equal(t, "Brand", result.CampaignStats[0].Name)
	assert.Equal(t, floatPtr(100), result.CampaignStats[0].Spend)
	assert.Equal(t, floatPtr(50), result.CampaignStats[0].CostPerLead)
	assert.Nil(t, result.CampaignStats[1].Spend)
	assert.Nil(t, result.CampaignStats[1].CostPerLead)
	assert.Equal(t, floatPtr(100), result.Totals.Spend)
}

func TestAggregate_SemLeads(t *testing.T) {
	result := Aggregate(nil, map[string]float64{"a": 10}, nil)

	assert.NotNil(t, result.CampaignStats)
	assert.Empty(t, result.CampaignStats)
	assert.Equal(t, 0, result.Totals.TotalLeads)
	assert.Equal(t, 0.0, result.Totals.TargetPercent)
	assert.Equal(t, floatPtr(0), result.Totals.Spend)
	assert.Nil(t, result.Totals.CostPerLead)
}

func TestAggregate_SomaDosLeadsConfereComTotal(t *testing.T) {
	raw := []domain.LeadRecord{
		{DateRaw: "2025-01-06", CampaignRaw: "a", TargetRaw: "целевой"},
		{DateRaw: "06.01.2025", CampaignRaw: "b", QualificationRaw: "квал"},
		{DateRaw: "data ruim", CampaignRaw: "a"},
		{DateRaw: "2025-01-07", CampaignRaw: ""},
		{DateRaw: "", CampaignRaw: "c"},
		{DateRaw: "2025-01-08", CampaignRaw: "A "},
	}
	leads := FilterByRange(raw, date(2025, 1, 1), date(2025, 1, 31))
	require.Len(t, leads, 4)

	result := Aggregate(leads, nil, nil)

	sum := 0
	for _, stat := range result.CampaignStats {
		sum += stat.TotalLeads
		assert.GreaterOrEqual(t, stat.TargetPercent, 0.0)
		assert.LessOrEqual(t, stat.TargetPercent, 100.0)
	}
	assert.Equal(t, len(leads), sum)
	assert.Equal(t, len(leads), result.Totals.TotalLeads)
}

func TestBuildSpendIndex(t *testing.T) {
	aliases := AliasMap{"123": "Поиск"}
	records := []domain.SpendRecord{
		{CampaignLabel: "123", Spend: 100},
		{CampaignLabel: "Поиск ", Spend: 50},
		{CampaignLabel: "Other", Spend: 20},
	}

	index := BuildSpendIndex(records, aliases)

	assert.Equal(t, map[string]float64{"поиск": 150, "other": 20}, index)
}

func TestFilterByRange(t *testing.T) {
	leads := []domain.LeadRecord{
		{RowID: 1, DateRaw: "2024-12-31"},
		{RowID: 2, DateRaw: "01.01.2025"},
		{RowID: 3, DateRaw: "2025-01-31"},
		{RowID: 4, DateRaw: "2025-02-01"},
		{RowID: 5, DateRaw: "?"},
	}

	filtered := FilterByRange(leads, date(2025, 1, 1), date(2025, 1, 31))

	require.Len(t, filtered, 2)
	assert.Equal(t, 2, filtered[0].RowID)
	assert.Equal(t, 3, filtered[1].RowID)
}

func TestMergeTotals(t *testing.T) {
	parts := []domain.Totals{
		{Counters: domain.Counters{TotalLeads: 2, TargetLeads: 1}, Rates: domain.Rates{Spend: floatPtr(100)}},
		{Counters: domain.Counters{TotalLeads: 2, QualifiedLeads: 2}},
	}

	totals := MergeTotals(parts)

	assert.Equal(t, domain.Counters{TotalLeads: 4, TargetLeads: 1, QualifiedLeads: 2}, totals.Counters)
	assert.Equal(t, floatPtr(100), totals.Spend)
	assert.Equal(t, floatPtr(25), totals.CostPerLead)
	assert.Equal(t, 25.0, totals.TargetPercent)
}
