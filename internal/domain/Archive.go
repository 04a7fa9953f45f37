package domain

import "time"

// MatchPriority indica qual regra encontrou a linha correspondente
type MatchPriority int

const (
	MatchNone MatchPriority = iota
	MatchExactTime
	MatchNearTime
	MatchSingleCandidate
)

// ArchiveRow é uma linha importada de um arquivo corrigido (exportação Excel)
type ArchiveRow struct {
	Date          string `json:"date" validate:"required"`
	Time          string `json:"time"`
	Campaign      string `json:"campaign"`
	Qualification string `json:"qualification"`
	Target        string `json:"target"`
	SaleAmount    string `json:"sale_amount"`
}

// ArchiveMatch é o resultado da correspondência de uma linha importada
type ArchiveMatch struct {
	ImportIndex int           `json:"import_index"`
	RowID       int           `json:"row_id,omitempty"`
	Priority    MatchPriority `json:"priority"`
}

// Matched indica se a linha importada encontrou correspondente
func (m ArchiveMatch) Matched() bool {
	return m.Priority != MatchNone
}

// MergeResult são os contadores finais de uma mesclagem de arquivo
type MergeResult struct {
	Matched       int            `json:"matched"`
	Updated       int            `json:"updated"`
	NotMatched    int            `json:"not_matched"`
	Skipped       int            `json:"skipped"`
	FailedBatches int            `json:"failed_batches"`
	Matches       []ArchiveMatch `json:"matches"`
}

// JobStatus é o estado de um job em segundo plano
type JobStatus string

const (
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// MergeJob acompanha uma mesclagem de arquivo em execução
type MergeJob struct {
	ID          string       `json:"id"`
	Status      JobStatus    `json:"status"`
	TotalRows   int          `json:"total_rows"`
	Result      *MergeResult `json:"result,omitempty"`
	Error       string       `json:"error,omitempty"`
	StartedAt   time.Time    `json:"started_at"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
}

// DuplicateResult é o resultado da marcação de duplicados
type DuplicateResult struct {
	Checked int   `json:"checked"`
	Marked  int   `json:"marked"`
	RowIDs  []int `json:"row_ids"`
}
