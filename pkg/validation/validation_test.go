package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/leads-analytics-api/internal/domain"
)

type groupedQuery struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	Mode      string `json:"mode" validate:"required,bucket_mode"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  map[string]string
	}{
		{
			name:  "deve aceitar consulta válida",
			input: groupedQuery{StartDate: "2025-01-06", Mode: "week"},
			want:  nil,
		},
		{
			name:  "deve usar o nome json dos campos",
			input: groupedQuery{StartDate: "06.01.2025", Mode: "day"},
			want: map[string]string{
				"start_date": "data deve estar no formato AAAA-MM-DD",
				"mode":       "modo deve ser week ou month",
			},
		},
		{
			name:  "deve validar requisição de login",
			input: domain.LoginRequest{Email: "invalido"},
			want: map[string]string{
				"email":    "email inválido",
				"password": "campo obrigatório",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.input))
		})
	}
}

func TestValidateSlice(t *testing.T) {
	errors := ValidateSlice([]domain.CampaignAlias{
		{Source: "123", DisplayName: "a"},
		{Source: "", DisplayName: "b"},
	})

	assert.Equal(t, map[string]string{"[1].source": "campo obrigatório"}, errors)
	assert.Nil(t, ValidateSlice([]domain.CampaignAlias{{Source: "1", DisplayName: "a"}}))
}
