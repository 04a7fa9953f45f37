package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseLeadDate(t *testing.T) {
	expected := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  string
		ok   bool
	}{
		{name: "Formato ISO", raw: "2025-01-06", ok: true},
		{name: "Formato com pontos", raw: "06.01.2025", ok: true},
		{name: "ISO com horário", raw: "2025-01-06 10:15:00", ok: true},
		{name: "ISO com T", raw: "2025-01-06T10:15:00Z", ok: true},
		{name: "Espaços nas bordas", raw: " 06.01.2025 ", ok: true},
		{name: "Mês inválido", raw: "2025-13-01", ok: false},
		{name: "Dia inválido", raw: "31.02.2025", ok: false},
		{name: "Vazio", raw: "", ok: false},
		{name: "Texto", raw: "ontem", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, ok := ParseLeadDate(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, expected, date)
			}
		})
	}
}

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
		ok       bool
	}{
		{name: "Com segundos descartados", raw: "14:05:59", expected: 845, ok: true},
		{name: "Hora com um dígito", raw: "9:07", expected: 547, ok: true},
		{name: "Meia-noite", raw: "00:00:00", expected: 0, ok: true},
		{name: "Somente hora", raw: "14", ok: false},
		{name: "Não numérico", raw: "ab:cd", ok: false},
		{name: "Minuto fora do intervalo", raw: "10:75", ok: false},
		{name: "Vazio", raw: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minutes, ok := TimeToMinutes(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, minutes)
		})
	}
}

func TestDateOnly_IgnoraFusoEHorario(t *testing.T) {
	msk := time.FixedZone("MSK", 3*3600)
	date := time.Date(2025, 1, 6, 23, 30, 0, 0, msk)

	assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), DateOnly(date))
}
