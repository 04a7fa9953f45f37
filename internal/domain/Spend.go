package domain

// SpendRecord é o gasto agregado de uma campanha no período consultado
type SpendRecord struct {
	CampaignLabel string  `json:"campaign"`
	Spend         float64 `json:"spend"`
	Visits        int     `json:"visits"`
	CostPerVisit  float64 `json:"cost_per_visit"`
}

// RecalculateCostPerVisit recalcula o custo por visita a partir do gasto e das visitas
func (s *SpendRecord) RecalculateCostPerVisit() {
	if s.Visits > 0 {
		s.CostPerVisit = s.Spend / float64(s.Visits)
		return
	}
	s.CostPerVisit = 0
}

// SumSpend soma o gasto de todos os registros
func SumSpend(records []SpendRecord) float64 {
	total := 0.0
	for _, record := range records {
		total += record.Spend
	}
	return total
}
