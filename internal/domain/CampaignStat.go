package domain

// DefaultCampaignName é usado quando o lead não tem campanha
const DefaultCampaignName = "Другое"

// Counters são os contadores de leads compartilhados por campanha e totais
type Counters struct {
	TotalLeads     int `json:"total_leads"`
	TargetLeads    int `json:"target_leads"`
	QualifiedLeads int `json:"qualified_leads"`
	Sales          int `json:"sales"`
}

// Add soma as facetas de um lead aos contadores
func (c *Counters) Add(facets LeadFacets) {
	c.TotalLeads++
	if facets.IsTarget {
		c.TargetLeads++
	}
	if facets.IsQualified {
		c.QualifiedLeads++
	}
	if facets.IsSale {
		c.Sales++
	}
}

// Merge soma outro conjunto de contadores
func (c *Counters) Merge(other Counters) {
	c.TotalLeads += other.TotalLeads
	c.TargetLeads += other.TargetLeads
	c.QualifiedLeads += other.QualifiedLeads
	c.Sales += other.Sales
}

// Rates são os percentuais e custos derivados dos contadores
type Rates struct {
	TargetPercent    float64  `json:"target_percent"`
	QualifiedPercent float64  `json:"qualified_percent"`
	ConversionRate   float64  `json:"conversion_rate"`
	Spend            *float64 `json:"spend,omitempty"`
	CostPerLead      *float64 `json:"cost_per_lead,omitempty"`
	CostPerTarget    *float64 `json:"cost_per_target,omitempty"`
	CostPerQualified *float64 `json:"cost_per_qualified,omitempty"`
}

// CampaignStat são as estatísticas de uma campanha dentro de um período
type CampaignStat struct {
	Name string `json:"name"`
	Counters
	Rates
}

// Totals são os totais de um período, somados entre campanhas
type Totals struct {
	Counters
	Rates
}

// AggregateResult é o resultado do agregador
type AggregateResult struct {
	CampaignStats []CampaignStat `json:"campaign_stats"`
	Totals        Totals         `json:"totals"`
}
