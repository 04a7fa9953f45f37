package metrikadomain

// Métricas da consulta de gastos por campanha
const (
	MetricAdCost = "ym:ad:RUBAdCost"
	MetricVisits = "ym:ad:visits"
	DimensionAd  = "ym:ad:directOrder"
)

type StatDimension struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type StatRow struct {
	Dimensions []StatDimension `json:"dimensions"`
	Metrics    []float64       `json:"metrics"`
}

type StatResponse struct {
	Data      []StatRow `json:"data"`
	TotalRows int       `json:"total_rows"`
}

// Label retorna o rótulo da primeira dimensão, ou o id quando não há nome
func (r StatRow) Label() string {
	if len(r.Dimensions) == 0 {
		return ""
	}
	if r.Dimensions[0].Name != "" {
		return r.Dimensions[0].Name
	}
	return r.Dimensions[0].ID
}

// Metric retorna a métrica na posição, ou zero
func (r StatRow) Metric(i int) float64 {
	if i < 0 || i >= len(r.Metrics) {
		return 0
	}
	return r.Metrics[i]
}
