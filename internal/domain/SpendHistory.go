package domain

// SpendChunk é um período carregado pelo carregador incremental
type SpendChunk struct {
	Label     string  `json:"label"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Spend     float64 `json:"spend"`
	Visits    int     `json:"visits"`
}

// SpendHistory é o estado acumulado do carregador incremental
type SpendHistory struct {
	Mode      BucketMode    `json:"mode"`
	Frontier  string        `json:"frontier"`
	Campaigns []SpendRecord `json:"campaigns"`
	Total     SpendRecord   `json:"total"`
	Series    []SpendChunk  `json:"series"`
}
