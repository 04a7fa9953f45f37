package domain

import "time"

// Filters são as datas (inclusivas) de uma consulta
type Filters struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}
