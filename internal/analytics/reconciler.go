package analytics

import (
	"strings"

	"github.com/vfg2006/leads-analytics-api/internal/domain"
)

// NearTimeWindowMinutes é a distância máxima aceita na correspondência por horário aproximado
const NearTimeWindowMinutes = 10

type dateTimeKey struct {
	date string
	time string
}

// FindDuplicates usa o vocabulário padrão
func FindDuplicates(leads []domain.LeadRecord) []int {
	return defaultClassifier.FindDuplicates(leads)
}

// FindDuplicates retorna, na ordem de entrada, as linhas que repetem um par (data, hora) já visto.
// A primeira ocorrência é a canônica. Linhas já marcadas como duplicadas não são retornadas.
func (c *Classifier) FindDuplicates(leads []domain.LeadRecord) []int {
	seen := make(map[dateTimeKey]struct{}, len(leads))
	duplicates := make([]int, 0)

	for _, lead := range leads {
		key := dateTimeKey{
			date: strings.TrimSpace(lead.DateRaw),
			time: strings.TrimSpace(lead.TimeRaw),
		}
		if key.date == "" || key.time == "" {
			continue
		}

		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			continue
		}

		if c.IsDuplicateMarked(lead.QualificationRaw) {
			continue
		}

		duplicates = append(duplicates, lead.RowID)
	}

	return duplicates
}

// DuplicatePatches monta os patches que gravam a marca de duplicado
func (c *Classifier) DuplicatePatches(rowIDs []int) []domain.RowPatch {
	patches := make([]domain.RowPatch, 0, len(rowIDs))
	for _, rowID := range rowIDs {
		patches = append(patches, domain.RowPatch{
			RowID: rowID,
			Patch: map[string]string{domain.ColumnQualification: c.DuplicateMarker()},
		})
	}
	return patches
}

// ArchiveMatchReport é o resultado da correspondência de um arquivo importado
type ArchiveMatchReport struct {
	Matches []domain.ArchiveMatch
	Patches []domain.RowPatch
	Skipped int
}

// MatchedCount conta as linhas importadas que encontraram correspondente
func (r ArchiveMatchReport) MatchedCount() int {
	count := 0
	for _, match := range r.Matches {
		if match.Matched() {
			count++
		}
	}
	return count
}

type liveCandidate struct {
	rowID     int
	minutes   int
	hasMinute bool
}

type dateCampaignKey struct {
	date     string
	campaign string
}

func archiveKey(date, campaign string, aliases AliasMap) (dateCampaignKey, bool) {
	parsed, ok := ParseLeadDate(date)
	if !ok {
		return dateCampaignKey{}, false
	}
	return dateCampaignKey{
		date:     FormatISODate(parsed),
		campaign: NormalizeCampaignName(aliases.DisplayName(campaign)),
	}, true
}

// MatchArchive procura, para cada linha importada com status de alvo preenchido, a linha viva correspondente.
// Prioridades: horário exato, horário a até 10 minutos, candidato único na mesma data e campanha.
// Linhas sem correspondência não geram patch.
func MatchArchive(imports []domain.ArchiveRow, live []domain.LeadRecord, aliases AliasMap) ArchiveMatchReport {
	index := make(map[dateCampaignKey][]liveCandidate)
	for _, lead := range live {
		key, ok := archiveKey(lead.DateRaw, lead.CampaignRaw, aliases)
		if !ok {
			continue
		}
		minutes, hasMinute := TimeToMinutes(lead.TimeRaw)
		index[key] = append(index[key], liveCandidate{rowID: lead.RowID, minutes: minutes, hasMinute: hasMinute})
	}

	report := ArchiveMatchReport{
		Matches: make([]domain.ArchiveMatch, 0, len(imports)),
	}
	patchByRow := make(map[int]int)

	for i, row := range imports {
		if strings.TrimSpace(row.Target) == "" {
			report.Skipped++
			continue
		}

		match := domain.ArchiveMatch{ImportIndex: i}

		if key, ok := archiveKey(row.Date, row.Campaign, aliases); ok {
			match.RowID, match.Priority = matchCandidates(index[key], row.Time)
		}

		report.Matches = append(report.Matches, match)
		if !match.Matched() {
			continue
		}

		patch := archivePatch(row)
		if pos, ok := patchByRow[match.RowID]; ok {
			for column, value := range patch {
				report.Patches[pos].Patch[column] = value
			}
			continue
		}

		patchByRow[match.RowID] = len(report.Patches)
		report.Patches = append(report.Patches, domain.RowPatch{RowID: match.RowID, Patch: patch})
	}

	return report
}

func matchCandidates(candidates []liveCandidate, rawTime string) (int, domain.MatchPriority) {
	if len(candidates) == 0 {
		return 0, domain.MatchNone
	}

	if minutes, ok := TimeToMinutes(rawTime); ok {
		for _, candidate := range candidates {
			if candidate.hasMinute && candidate.minutes == minutes {
				return candidate.rowID, domain.MatchExactTime
			}
		}

		best, bestDiff := -1, NearTimeWindowMinutes+1
		for i, candidate := range candidates {
			if !candidate.hasMinute {
				continue
			}
			diff := absInt(candidate.minutes - minutes)
			if diff > 0 && diff <= NearTimeWindowMinutes && diff < bestDiff {
				best, bestDiff = i, diff
			}
		}
		if best >= 0 {
			return candidates[best].rowID, domain.MatchNearTime
		}
	}

	if len(candidates) == 1 {
		return candidates[0].rowID, domain.MatchSingleCandidate
	}

	return 0, domain.MatchNone
}

// campos vazios no arquivo não sobrescrevem a linha viva
func archivePatch(row domain.ArchiveRow) map[string]string {
	patch := map[string]string{
		domain.ColumnTarget: strings.TrimSpace(row.Target),
	}
	if value := strings.TrimSpace(row.Qualification); value != "" {
		patch[domain.ColumnQualification] = value
	}
	if value := strings.TrimSpace(row.SaleAmount); value != "" {
		patch[domain.ColumnSaleAmount] = value
	}
	return patch
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
