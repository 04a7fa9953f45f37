package insighting

import (
	"context"
	"time"

	"github.com/vfg2006/leads-analytics-api/internal/domain"
)

// Insighter expõe as consultas agregadas do painel
type Insighter interface {
	// GetSummary agrega os leads e o gasto do intervalo por campanha
	GetSummary(ctx context.Context, filters *domain.Filters) (*domain.SummaryReport, error)

	// GetGrouped agrega o intervalo em buckets de semana ou mês
	GetGrouped(ctx context.Context, filters *domain.Filters, mode domain.BucketMode) (*domain.GroupedReport, error)

	// GetSpendHistory carrega blocos de gasto para trás a partir de before.
	// Uma nova chamada do mesmo viewerID interrompe a anterior.
	GetSpendHistory(ctx context.Context, viewerID int, before time.Time, mode domain.BucketMode, chunks int) (*domain.SpendHistory, error)
}

// ExpenseFetcher busca o gasto por campanha de um intervalo
type ExpenseFetcher interface {
	FetchExpenses(ctx context.Context, dateFrom, dateTo time.Time) ([]domain.SpendRecord, error)
}
