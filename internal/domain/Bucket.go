package domain

import "time"

// BucketMode define o agrupamento temporal
type BucketMode string

const (
	BucketModeWeek  BucketMode = "week"
	BucketModeMonth BucketMode = "month"
)

// IsValid verifica se o modo é suportado
func (m BucketMode) IsValid() bool {
	return m == BucketModeWeek || m == BucketModeMonth
}

// Bucket é uma janela de calendário (semana de segunda a domingo ou mês)
type Bucket struct {
	Label string
	Start time.Time
	End   time.Time
}

// Contains verifica se a data (somente dia) está dentro do bucket
func (b Bucket) Contains(date time.Time) bool {
	return !date.Before(b.Start) && !date.After(b.End)
}

// BucketGroup são as estatísticas de um bucket no relatório agrupado
type BucketGroup struct {
	Label         string         `json:"label"`
	StartDate     string         `json:"start_date"`
	EndDate       string         `json:"end_date"`
	CampaignStats []CampaignStat `json:"campaign_stats"`
	Totals        Totals         `json:"totals"`
	FetchedSpend  *float64       `json:"fetched_spend,omitempty"`
}

// GroupedReport é a resposta da consulta agrupada por semana ou mês
type GroupedReport struct {
	Mode          BucketMode    `json:"mode"`
	Periods       []BucketGroup `json:"periods"`
	OverallTotals Totals        `json:"overall_totals"`
	Filters       *Filters      `json:"filters"`
}

// SummaryReport é a resposta da consulta por intervalo
type SummaryReport struct {
	AggregateResult
	FetchedSpend *float64 `json:"fetched_spend,omitempty"`
	Filters      *Filters `json:"filters"`
}
