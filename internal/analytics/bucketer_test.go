package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/leads-analytics-api/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestBuildBuckets(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		mode     domain.BucketMode
		expected []domain.Bucket
	}{
		{
			name:  "Semanas de segunda a domingo sem recorte",
			start: date(2025, 1, 1),
			end:   date(2025, 1, 15),
			mode:  domain.BucketModeWeek,
			expected: []domain.Bucket{
				{Label: "30.12 - 05.01", Start: date(2024, 12, 30), End: date(2025, 1, 5)},
				{Label: "06.01 - 12.01", Start: date(2025, 1, 6), End: date(2025, 1, 12)},
				{Label: "13.01 - 19.01", Start: date(2025, 1, 13), End: date(2025, 1, 19)},
			},
		},
		{
			name:  "Intervalo de um dia no domingo",
			start: date(2025, 1, 12),
			end:   date(2025, 1, 12),
			mode:  domain.BucketModeWeek,
			expected: []domain.Bucket{
				{Label: "06.01 - 12.01", Start: date(2025, 1, 6), End: date(2025, 1, 12)},
			},
		},
		{
			name:  "Meses do calendário",
			start: date(2025, 1, 15),
			end:   date(2025, 3, 2),
			mode:  domain.BucketModeMonth,
			expected: []domain.Bucket{
				{Label: "Январь 2025", Start: date(2025, 1, 1), End: date(2025, 1, 31)},
				{Label: "Февраль 2025", Start: date(2025, 2, 1), End: date(2025, 2, 28)},
				{Label: "Март 2025", Start: date(2025, 3, 1), End: date(2025, 3, 31)},
			},
		},
		{
			name:  "Virada de ano e fevereiro bissexto",
			start: date(2023, 12, 31),
			end:   date(2024, 2, 1),
			mode:  domain.BucketModeMonth,
			expected: []domain.Bucket{
				{Label: "Декабрь 2023", Start: date(2023, 12, 1), End: date(2023, 12, 31)},
				{Label: "Январь 2024", Start: date(2024, 1, 1), End: date(2024, 1, 31)},
				{Label: "Февраль 2024", Start: date(2024, 2, 1), End: date(2024, 2, 29)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildBuckets(tt.start, tt.end, tt.mode))
		})
	}
}

func TestBuildBuckets_InicioDepoisDoFim(t *testing.T) {
	buckets := BuildBuckets(date(2025, 2, 1), date(2025, 1, 1), domain.BucketModeWeek)

	assert.NotNil(t, buckets)
	assert.Empty(t, buckets)
}

func TestBuildBuckets_ModoInvalido(t *testing.T) {
	assert.Empty(t, BuildBuckets(date(2025, 1, 1), date(2025, 2, 1), domain.BucketMode("day")))
}

func TestBuildBuckets_HorarioNaoAfetaBuckets(t *testing.T) {
	msk := time.FixedZone("MSK", 3*3600)
	start := time.Date(2025, 1, 5, 23, 59, 0, 0, msk)
	end := time.Date(2025, 1, 6, 0, 1, 0, 0, msk)

	buckets := BuildBuckets(start, end, domain.BucketModeWeek)

	require.Len(t, buckets, 2)
	assert.Equal(t, date(2024, 12, 30), buckets[0].Start)
	assert.Equal(t, date(2025, 1, 6), buckets[1].Start)
}

func TestBuildBuckets_CobreCadaDiaUmaVez(t *testing.T) {
	start, end := date(2024, 2, 10), date(2024, 5, 20)

	for _, mode := range []domain.BucketMode{domain.BucketModeWeek, domain.BucketModeMonth} {
		t.Run(string(mode), func(t *testing.T) {
			buckets := BuildBuckets(start, end, mode)
			require.NotEmpty(t, buckets)

			for i := 1; i < len(buckets); i++ {
				assert.Equal(t, buckets[i-1].End.AddDate(0, 0, 1), buckets[i].Start, "buckets devem ser contíguos")
			}

			for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
				hits := 0
				for _, bucket := range buckets {
					from, to := ClipToRange(bucket, start, end)
					if !day.Before(from) && !day.After(to) {
						hits++
					}
				}
				assert.Equal(t, 1, hits, "dia %s", FormatISODate(day))
			}
		})
	}
}

func TestPeriodStart(t *testing.T) {
	assert.Equal(t, date(2025, 1, 6), PeriodStart(date(2025, 1, 12), domain.BucketModeWeek))
	assert.Equal(t, date(2025, 1, 6), PeriodStart(date(2025, 1, 6), domain.BucketModeWeek))
	assert.Equal(t, date(2025, 1, 1), PeriodStart(date(2025, 1, 12), domain.BucketModeMonth))
}
