package analytics

import (
	"fmt"
	"time"

	"github.com/vfg2006/leads-analytics-api/internal/domain"
)

var monthNames = [...]string{
	"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}

// MonthName retorna o nome do mês usado nos rótulos
func MonthName(month time.Month) string {
	return monthNames[month-1]
}

// WeekStart retorna a segunda-feira da semana da data
func WeekStart(date time.Time) time.Time {
	date = DateOnly(date)
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return date.AddDate(0, 0, -(weekday - 1))
}

// MonthStart retorna o primeiro dia do mês da data
func MonthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// PeriodStart retorna o início do bucket que contém a data
func PeriodStart(date time.Time, mode domain.BucketMode) time.Time {
	if mode == domain.BucketModeMonth {
		return MonthStart(date)
	}
	return WeekStart(date)
}

// BucketFor retorna o bucket de calendário que contém a data
func BucketFor(date time.Time, mode domain.BucketMode) domain.Bucket {
	start := PeriodStart(date, mode)

	if mode == domain.BucketModeMonth {
		return domain.Bucket{
			Label: fmt.Sprintf("%s %d", MonthName(start.Month()), start.Year()),
			Start: start,
			End:   start.AddDate(0, 1, -1),
		}
	}

	end := start.AddDate(0, 0, 6)
	return domain.Bucket{
		Label: fmt.Sprintf("%s - %s", start.Format("02.01"), end.Format("02.01")),
		Start: start,
		End:   end,
	}
}

// BuildBuckets lista, em ordem crescente, os buckets que intersectam [start, end].
// As datas dos buckets são as do calendário, sem recorte pelo intervalo consultado.
func BuildBuckets(start, end time.Time, mode domain.BucketMode) []domain.Bucket {
	start, end = DateOnly(start), DateOnly(end)
	if start.After(end) || !mode.IsValid() {
		return []domain.Bucket{}
	}

	var buckets []domain.Bucket
	for cursor := start; !cursor.After(end); {
		bucket := BucketFor(cursor, mode)
		buckets = append(buckets, bucket)
		cursor = bucket.End.AddDate(0, 0, 1)
	}

	return buckets
}

// ClipToRange recorta o bucket para o intervalo consultado
func ClipToRange(bucket domain.Bucket, start, end time.Time) (time.Time, time.Time) {
	start, end = DateOnly(start), DateOnly(end)
	from, to := bucket.Start, bucket.End
	if start.After(from) {
		from = start
	}
	if end.Before(to) {
		to = end
	}
	return from, to
}
