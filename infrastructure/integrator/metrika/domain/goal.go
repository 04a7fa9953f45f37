package metrikadomain

type Goal struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type GoalsResponse struct {
	Goals []Goal `json:"goals"`
}
