package domain

import "strings"

// Colunas da planilha de leads
const (
	ColumnDate          = "Дата"
	ColumnTime          = "Время"
	ColumnCampaign      = "Кампания"
	ColumnQualification = "Квалификация"
	ColumnTarget        = "Целевой"
	ColumnSaleAmount    = "Сумма продажи"
	ColumnGoal          = "Цель"
	ColumnExternalVisit = "ID визита"
)

// LeadColumns é a ordem padrão das colunas ao criar linhas novas
var LeadColumns = []string{
	ColumnDate,
	ColumnTime,
	ColumnCampaign,
	ColumnQualification,
	ColumnTarget,
	ColumnSaleAmount,
	ColumnGoal,
	ColumnExternalVisit,
}

// Row é uma linha genérica do armazenamento tabular, indexada pelo cabeçalho
type Row struct {
	ID     int               `json:"row_id"`
	Values map[string]string `json:"values"`
}

// RowPatch é uma alteração parcial de uma linha existente
type RowPatch struct {
	RowID int               `json:"row_id"`
	Patch map[string]string `json:"patch"`
}

// LeadRecord representa um evento de lead lido da planilha
type LeadRecord struct {
	RowID            int    `json:"row_id"`
	DateRaw          string `json:"date"`
	TimeRaw          string `json:"time"`
	CampaignRaw      string `json:"campaign"`
	QualificationRaw string `json:"qualification"`
	TargetRaw        string `json:"target"`
	SaleAmountRaw    string `json:"sale_amount"`
	GoalLabel        string `json:"goal,omitempty"`
	ExternalVisitID  string `json:"external_visit_id,omitempty"`
}

// LeadFacets são as classificações booleanas de um lead
type LeadFacets struct {
	IsTarget    bool `json:"is_target"`
	IsQualified bool `json:"is_qualified"`
	IsSale      bool `json:"is_sale"`
}

// LeadFromRow converte uma linha da planilha em LeadRecord
func LeadFromRow(row Row) LeadRecord {
	get := func(column string) string {
		return strings.TrimSpace(row.Values[column])
	}

	return LeadRecord{
		RowID:            row.ID,
		DateRaw:          get(ColumnDate),
		TimeRaw:          get(ColumnTime),
		CampaignRaw:      row.Values[ColumnCampaign],
		QualificationRaw: get(ColumnQualification),
		TargetRaw:        get(ColumnTarget),
		SaleAmountRaw:    get(ColumnSaleAmount),
		GoalLabel:        get(ColumnGoal),
		ExternalVisitID:  get(ColumnExternalVisit),
	}
}

// LeadsFromRows converte todas as linhas
func LeadsFromRows(rows []Row) []LeadRecord {
	leads := make([]LeadRecord, 0, len(rows))
	for _, row := range rows {
		leads = append(leads, LeadFromRow(row))
	}
	return leads
}

// ToValues converte o lead para o formato de linha da planilha
func (l LeadRecord) ToValues() map[string]string {
	return map[string]string{
		ColumnDate:          l.DateRaw,
		ColumnTime:          l.TimeRaw,
		ColumnCampaign:      l.CampaignRaw,
		ColumnQualification: l.QualificationRaw,
		ColumnTarget:        l.TargetRaw,
		ColumnSaleAmount:    l.SaleAmountRaw,
		ColumnGoal:          l.GoalLabel,
		ColumnExternalVisit: l.ExternalVisitID,
	}
}

// LeadStatusUpdate é a edição de status de um lead. Campos nil não são alterados.
type LeadStatusUpdate struct {
	Qualification *string `json:"qualification"`
	Target        *string `json:"target"`
	SaleAmount    *string `json:"sale_amount"`
}

// ToPatch monta o patch de colunas a partir dos campos informados
func (u LeadStatusUpdate) ToPatch() map[string]string {
	patch := make(map[string]string)
	if u.Qualification != nil {
		patch[ColumnQualification] = *u.Qualification
	}
	if u.Target != nil {
		patch[ColumnTarget] = *u.Target
	}
	if u.SaleAmount != nil {
		patch[ColumnSaleAmount] = *u.SaleAmount
	}
	return patch
}

// LeadView é o lead com o nome de campanha resolvido e a classificação
type LeadView struct {
	LeadRecord
	CampaignName string `json:"campaign_name"`
	LeadFacets
}

// NewLeadRequest é a criação manual de um lead
type NewLeadRequest struct {
	Date          string `json:"date" validate:"required"`
	Time          string `json:"time"`
	Campaign      string `json:"campaign"`
	Qualification string `json:"qualification"`
	Target        string `json:"target"`
	SaleAmount    string `json:"sale_amount"`
}

// ToLead converte a requisição em LeadRecord
func (r NewLeadRequest) ToLead() LeadRecord {
	return LeadRecord{
		DateRaw:          strings.TrimSpace(r.Date),
		TimeRaw:          strings.TrimSpace(r.Time),
		CampaignRaw:      strings.TrimSpace(r.Campaign),
		QualificationRaw: strings.TrimSpace(r.Qualification),
		TargetRaw:        strings.TrimSpace(r.Target),
		SaleAmountRaw:    strings.TrimSpace(r.SaleAmount),
	}
}
