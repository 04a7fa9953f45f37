package analytics

import (
	"strconv"
	"strings"
	"time"
)

const (
	ISODateLayout  = "2006-01-02"
	LeadDateLayout = "02.01.2006"
)

// ParseLeadDate aceita YYYY-MM-DD ou DD.MM.YYYY e retorna somente a data, em UTC
func ParseLeadDate(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if i := strings.IndexAny(value, "T "); i > 0 {
		value = value[:i]
	}
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range []string{ISODateLayout, LeadDateLayout} {
		if date, err := time.Parse(layout, value); err == nil {
			return date, true
		}
	}

	return time.Time{}, false
}

// DateOnly descarta horário e fuso, mantendo ano, mês e dia
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatISODate formata a data como YYYY-MM-DD
func FormatISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// TimeToMinutes converte "H:MM", "HH:MM:SS" em minutos desde a meia-noite. Segundos são descartados.
func TimeToMinutes(raw string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}

	return hours*60 + minutes, true
}
