package analytics

import "github.com/vfg2006/leads-analytics-api/internal/domain"

// MergeChunk soma um novo bloco de gastos ao acumulado sem alterar o mapa recebido.
// Campanhas já presentes têm gasto e visitas somados e o custo por visita recalculado.
func MergeChunk(existing map[string]domain.SpendRecord, incoming []domain.SpendRecord) map[string]domain.SpendRecord {
	merged := make(map[string]domain.SpendRecord, len(existing)+len(incoming))
	for key, record := range existing {
		merged[key] = record
	}

	for _, record := range incoming {
		current, ok := merged[record.CampaignLabel]
		if !ok {
			merged[record.CampaignLabel] = record
			continue
		}

		current.Spend += record.Spend
		current.Visits += record.Visits
		current.RecalculateCostPerVisit()
		merged[record.CampaignLabel] = current
	}

	return merged
}
