package domain

// Goal é uma meta configurada no contador de analytics
type Goal struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// LeadEventFilters restringe a importação de eventos de lead
type LeadEventFilters struct {
	GoalIDs []int64
	Source  string
}
