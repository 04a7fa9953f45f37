package domain

import "time"

// CampaignAlias mapeia um identificador externo ou rótulo bruto para o nome exibido
type CampaignAlias struct {
	Source      string    `json:"source" validate:"required"`
	DisplayName string    `json:"display_name" validate:"required"`
	UpdatedAt   time.Time `json:"updated_at"`
}
