package analytics

import (
	"sort"
	"time"

	"github.com/vfg2006/leads-analytics-api/internal/domain"
	"github.com/vfg2006/leads-analytics-api/pkg/utils"
)

// Aggregator calcula estatísticas por campanha e totais de um conjunto de leads
type Aggregator struct {
	classifier *Classifier
}

func NewAggregator(classifier *Classifier) *Aggregator {
	if classifier == nil {
		classifier = defaultClassifier
	}
	return &Aggregator{classifier: classifier}
}

var defaultAggregator = NewAggregator(defaultClassifier)

// Aggregate agrega com o vocabulário padrão
func Aggregate(leads []domain.LeadRecord, spendByCampaign map[string]float64, aliases AliasMap) domain.AggregateResult {
	return defaultAggregator.Aggregate(leads, spendByCampaign, aliases)
}

// Aggregate agrupa os leads pelo nome exibido da campanha e junta o gasto pelo nome normalizado.
// spendByCampaign nil significa gasto indisponível: nenhum campo de gasto é preenchido.
// O gasto total considera apenas campanhas que tiveram leads. Rótulos que normalizam para a
// mesma chave recebem o gasto uma única vez, no primeiro rótulo visto.
func (a *Aggregator) Aggregate(leads []domain.LeadRecord, spendByCampaign map[string]float64, aliases AliasMap) domain.AggregateResult {
	stats := make([]*domain.CampaignStat, 0)
	byName := make(map[string]*domain.CampaignStat)
	var totals domain.Totals

	for _, lead := range leads {
		name := aliases.DisplayName(lead.CampaignRaw)

		stat, ok := byName[name]
		if !ok {
			stat = &domain.CampaignStat{Name: name}
			byName[name] = stat
			stats = append(stats, stat)
		}

		facets := a.classifier.Classify(lead)
		stat.Add(facets)
		totals.Add(facets)
	}

	var totalSpend *float64
	if spendByCampaign != nil {
		sum := 0.0
		totalSpend = &sum
	}

	attached := make(map[string]bool)
	result := make([]domain.CampaignStat, 0, len(stats))
	for _, stat := range stats {
		var spend *float64
		if spendByCampaign != nil {
			key := NormalizeCampaignName(stat.Name)
			if value, ok := spendByCampaign[key]; ok && !attached[key] {
				attached[key] = true
				spend = &value
				*totalSpend += value
			}
		}

		stat.Rates = CalculateRates(stat.Counters, spend)
		result = append(result, *stat)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalLeads > result[j].TotalLeads
	})

	totals.Rates = CalculateRates(totals.Counters, totalSpend)

	return domain.AggregateResult{
		CampaignStats: result,
		Totals:        totals,
	}
}

// CalculateRates deriva percentuais e custos dos contadores
func CalculateRates(counters domain.Counters, spend *float64) domain.Rates {
	rates := domain.Rates{
		TargetPercent:    percent(counters.TargetLeads, counters.TotalLeads),
		QualifiedPercent: percent(counters.QualifiedLeads, counters.TotalLeads),
		ConversionRate:   percent(counters.Sales, counters.TotalLeads),
	}

	if spend == nil {
		return rates
	}

	value := utils.RoundWithTwoDecimalPlace(*spend)
	rates.Spend = &value
	rates.CostPerLead = costPer(*spend, counters.TotalLeads)
	rates.CostPerTarget = costPer(*spend, counters.TargetLeads)
	rates.CostPerQualified = costPer(*spend, counters.QualifiedLeads)

	return rates
}

// MergeTotals soma os totais de vários períodos e recalcula as taxas
func MergeTotals(parts []domain.Totals) domain.Totals {
	var totals domain.Totals
	var spend *float64

	for _, part := range parts {
		totals.Merge(part.Counters)
		if part.Spend != nil {
			if spend == nil {
				spend = new(float64)
			}
			*spend += *part.Spend
		}
	}

	totals.Rates = CalculateRates(totals.Counters, spend)
	return totals
}

// BuildSpendIndex monta o índice de gasto por nome normalizado, resolvendo aliases do lado do gasto
func BuildSpendIndex(records []domain.SpendRecord, aliases AliasMap) map[string]float64 {
	index := make(map[string]float64, len(records))
	for _, record := range records {
		key := NormalizeCampaignName(aliases.DisplayName(record.CampaignLabel))
		index[key] += record.Spend
	}
	return index
}

// FilterByRange mantém os leads com data válida dentro de [start, end]
func FilterByRange(leads []domain.LeadRecord, start, end time.Time) []domain.LeadRecord {
	start, end = DateOnly(start), DateOnly(end)

	filtered := make([]domain.LeadRecord, 0, len(leads))
	for _, lead := range leads {
		date, ok := ParseLeadDate(lead.DateRaw)
		if !ok || date.Before(start) || date.After(end) {
			continue
		}
		filtered = append(filtered, lead)
	}

	return filtered
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(float64(count) / float64(total) * 100)
}

func costPer(spend float64, count int) *float64 {
	if spend <= 0 || count <= 0 {
		return nil
	}
	value := utils.RoundWithTwoDecimalPlace(spend / float64(count))
	return &value
}
