package analytics

import (
	"strings"

	"github.com/vfg2006/leads-analytics-api/internal/domain"
)

// NormalizeCampaignName gera a chave de junção de uma campanha: minúsculas e sem espaços nas bordas
func NormalizeCampaignName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// AliasMap mapeia o nome normalizado (id externo ou rótulo bruto) para o nome exibido
type AliasMap map[string]string

// NewAliasMap monta o mapa a partir dos aliases cadastrados
func NewAliasMap(aliases []domain.CampaignAlias) AliasMap {
	m := make(AliasMap, len(aliases))
	for _, alias := range aliases {
		key := NormalizeCampaignName(alias.Source)
		if key == "" || strings.TrimSpace(alias.DisplayName) == "" {
			continue
		}
		m[key] = alias.DisplayName
	}
	return m
}

// Resolve retorna o nome exibido para o rótulo bruto, ou o próprio rótulo quando não há alias
func (a AliasMap) Resolve(raw string) string {
	if display, ok := a[NormalizeCampaignName(raw)]; ok {
		return display
	}
	return raw
}

// DisplayName resolve o alias e aplica o nome padrão para campanhas vazias
func (a AliasMap) DisplayName(raw string) string {
	name := a.Resolve(raw)
	if strings.TrimSpace(name) == "" {
		return domain.DefaultCampaignName
	}
	return name
}

// MatchKind define como um termo do vocabulário é comparado
type MatchKind int

const (
	MatchExact MatchKind = iota
	MatchSubstring
)

// Term é uma palavra do vocabulário de status
type Term struct {
	Word string
	Kind MatchKind
}

func (t Term) matches(value string) bool {
	word := strings.ToLower(t.Word)
	if t.Kind == MatchSubstring {
		return strings.Contains(value, word)
	}
	return value == word
}

// FacetRule classifica um campo de status. Exclude tem precedência sobre Include.
type FacetRule struct {
	Include []Term
	Exclude []Term
}

// Matches aplica a regra ao valor bruto do campo
func (r FacetRule) Matches(raw string) bool {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return false
	}

	for _, term := range r.Exclude {
		if term.matches(value) {
			return false
		}
	}

	for _, term := range r.Include {
		if term.matches(value) {
			return true
		}
	}

	return false
}

// Vocabulary é a tabela de palavras usada para classificar leads
type Vocabulary struct {
	Target          FacetRule
	Qualified       FacetRule
	NoSaleValues    []string
	DuplicateMarker string
}

// DefaultVocabulary é o vocabulário usado pela planilha de leads
var DefaultVocabulary = Vocabulary{
	Target: FacetRule{
		Include: []Term{
			{Word: "целев", Kind: MatchSubstring},
			{Word: "да", Kind: MatchExact},
			{Word: "yes", Kind: MatchExact},
			{Word: "target", Kind: MatchExact},
			{Word: "+", Kind: MatchExact},
		},
		Exclude: []Term{
			{Word: "нецелев", Kind: MatchSubstring},
			{Word: "не целев", Kind: MatchSubstring},
		},
	},
	Qualified: FacetRule{
		Include: []Term{
			{Word: "квал", Kind: MatchSubstring},
			{Word: "qualified", Kind: MatchExact},
		},
		Exclude: []Term{
			{Word: "неквал", Kind: MatchSubstring},
			{Word: "не квал", Kind: MatchSubstring},
			{Word: "дубль", Kind: MatchSubstring},
		},
	},
	NoSaleValues:    []string{"0"},
	DuplicateMarker: "дубль",
}

// Classifier classifica leads a partir de um vocabulário
type Classifier struct {
	vocabulary Vocabulary
}

func NewClassifier(vocabulary Vocabulary) *Classifier {
	return &Classifier{vocabulary: vocabulary}
}

var defaultClassifier = NewClassifier(DefaultVocabulary)

// Classify retorna as facetas de um lead. Status desconhecido resulta em todas falsas.
func (c *Classifier) Classify(lead domain.LeadRecord) domain.LeadFacets {
	return domain.LeadFacets{
		IsTarget:    c.vocabulary.Target.Matches(lead.TargetRaw),
		IsQualified: c.vocabulary.Qualified.Matches(lead.QualificationRaw),
		IsSale:      c.isSale(lead.SaleAmountRaw),
	}
}

func (c *Classifier) isSale(raw string) bool {
	value := strings.TrimSpace(raw)
	if value == "" {
		return false
	}
	for _, noSale := range c.vocabulary.NoSaleValues {
		if value == noSale {
			return false
		}
	}
	return true
}

// IsDuplicateMarked verifica se a qualificação já contém a marca de duplicado
func (c *Classifier) IsDuplicateMarked(qualification string) bool {
	marker := strings.ToLower(c.vocabulary.DuplicateMarker)
	return marker != "" && strings.Contains(strings.ToLower(qualification), marker)
}

// DuplicateMarker é o valor gravado na qualificação de leads duplicados
func (c *Classifier) DuplicateMarker() string {
	return c.vocabulary.DuplicateMarker
}

// ClassifyLead classifica com o vocabulário padrão
func ClassifyLead(lead domain.LeadRecord) domain.LeadFacets {
	return defaultClassifier.Classify(lead)
}
