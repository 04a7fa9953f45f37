package sheets

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/leads-analytics-api/infrastructure/cache"
	"github.com/vfg2006/leads-analytics-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/leads-analytics-api/internal/config"
	"github.com/vfg2006/leads-analytics-api/internal/domain"
)

// Primeira linha de dados. A linha 1 é o cabeçalho.
const firstDataRow = 2

var (
	ErrUnknownColumn = errors.New("coluna inexistente na tabela")
	ErrTableNotFound = errors.New("tabela não encontrada")
	ErrEmptyTable    = errors.New("tabela sem cabeçalho")
)

// RowStore é o armazenamento tabular de leads. O RowID é o número da linha na aba.
type RowStore interface {
	GetRows(ctx context.Context, table string) ([]domain.Row, error)
	AppendRows(ctx context.Context, table string, rows []map[string]string) (int, error)
	UpdateRow(ctx context.Context, table string, rowID int, patch map[string]string) error
	UpdateRowsBatch(ctx context.Context, table string, patches []domain.RowPatch) error
	DeleteRows(ctx context.Context, table string, rowIDs []int) (int, error)
}

// IsRetryable indica se vale repetir a escrita: apenas limite de cota ou falha temporária da API.
// Erros de coluna ou linha inválida se repetiriam em toda tentativa.
func IsRetryable(err error) bool {
	return sheetsclient.IsRetryable(err)
}

type SheetsIntegrator struct {
	spreadsheetID string
	client        sheetsclient.Client
	cache         cache.RowCache
}

func New(cfg *config.Config, client sheetsclient.Client, rowCache cache.RowCache) *SheetsIntegrator {
	return &SheetsIntegrator{
		spreadsheetID: cfg.Sheets.SpreadsheetID,
		client:        client,
		cache:         rowCache,
	}
}

// GetRows retorna todas as linhas com dados. O resultado pode vir do cache.
func (s *SheetsIntegrator) GetRows(ctx context.Context, table string) ([]domain.Row, error) {
	if rows, ok := s.cache.Get(ctx, table); ok {
		logrus.WithField("table", table).Debug("sheets: linhas obtidas do cache")
		return rows, nil
	}

	values, err := s.client.GetValues(ctx, s.spreadsheetID, quoteTable(table))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"table": table,
			"error": err.Error(),
		}).Error("sheets: erro ao ler linhas")
		return nil, err
	}

	rows := make([]domain.Row, 0, len(values))
	if len(values) > 0 {
		header := toStrings(values[0])
		for i, line := range values[1:] {
			row := domain.Row{ID: i + firstDataRow, Values: make(map[string]string, len(header))}
			empty := true
			for col, cell := range toStrings(line) {
				if col >= len(header) || header[col] == "" {
					continue
				}
				row.Values[header[col]] = cell
				if strings.TrimSpace(cell) != "" {
					empty = false
				}
			}
			if !empty {
				rows = append(rows, row)
			}
		}
	}

	s.cache.Set(ctx, table, rows)

	logrus.WithFields(logrus.Fields{
		"table": table,
		"rows":  len(rows),
	}).Debug("sheets: linhas lidas da planilha")

	return rows, nil
}

// AppendRows adiciona as linhas ao final da tabela na ordem do cabeçalho
func (s *SheetsIntegrator) AppendRows(ctx context.Context, table string, rows []map[string]string) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	header, err := s.header(ctx, table)
	if err != nil {
		return 0, err
	}

	values := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		line := make([]interface{}, len(header))
		for col, name := range header {
			line[col] = row[name]
		}
		values = append(values, line)
	}

	count, err := s.client.AppendValues(ctx, s.spreadsheetID, quoteTable(table)+"!A1", values)
	s.cache.Invalidate(ctx, table)
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"table": table,
		"rows":  count,
	}).Info("sheets: linhas adicionadas")

	return int(count), nil
}

func (s *SheetsIntegrator) UpdateRow(ctx context.Context, table string, rowID int, patch map[string]string) error {
	return s.UpdateRowsBatch(ctx, table, []domain.RowPatch{{RowID: rowID, Patch: patch}})
}

// UpdateRowsBatch grava todas as células alteradas numa única requisição
func (s *SheetsIntegrator) UpdateRowsBatch(ctx context.Context, table string, patches []domain.RowPatch) error {
	if len(patches) == 0 {
		return nil
	}

	header, err := s.header(ctx, table)
	if err != nil {
		return err
	}

	columns := make(map[string]int, len(header))
	for col, name := range header {
		if name != "" {
			columns[name] = col
		}
	}

	data := make([]sheetsclient.ValueRange, 0, len(patches))
	for _, patch := range patches {
		if patch.RowID < firstDataRow {
			return fmt.Errorf("sheets: linha inválida %d", patch.RowID)
		}

		names := make([]string, 0, len(patch.Patch))
		for name := range patch.Patch {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			col, ok := columns[name]
			if !ok {
				return fmt.Errorf("sheets: %w: %s", ErrUnknownColumn, name)
			}
			data = append(data, sheetsclient.ValueRange{
				Range:  fmt.Sprintf("%s!%s%d", quoteTable(table), ColumnLetter(col), patch.RowID),
				Values: [][]interface{}{{patch.Patch[name]}},
			})
		}
	}

	err = s.client.BatchUpdateValues(ctx, s.spreadsheetID, data)
	s.cache.Invalidate(ctx, table)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"table": table,
		"rows":  len(patches),
		"cells": len(data),
	}).Info("sheets: linhas atualizadas")

	return nil
}

// DeleteRows remove as linhas informadas. Os RowIDs das linhas seguintes mudam depois da remoção.
func (s *SheetsIntegrator) DeleteRows(ctx context.Context, table string, rowIDs []int) (int, error) {
	if len(rowIDs) == 0 {
		return 0, nil
	}

	sheetList, err := s.client.ListSheets(ctx, s.spreadsheetID)
	if err != nil {
		return 0, err
	}

	sheetID := int64(-1)
	for _, sheet := range sheetList {
		if sheet.Title == table {
			sheetID = sheet.ID
			break
		}
	}
	if sheetID < 0 {
		return 0, fmt.Errorf("sheets: %w: %s", ErrTableNotFound, table)
	}

	ranges := RowRanges(rowIDs)
	err = s.client.DeleteRowRanges(ctx, s.spreadsheetID, sheetID, ranges)
	s.cache.Invalidate(ctx, table)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, r := range ranges {
		deleted += int(r.End - r.Start)
	}

	logrus.WithFields(logrus.Fields{
		"table": table,
		"rows":  deleted,
	}).Info("sheets: linhas removidas")

	return deleted, nil
}

func (s *SheetsIntegrator) header(ctx context.Context, table string) ([]string, error) {
	values, err := s.client.GetValues(ctx, s.spreadsheetID, quoteTable(table)+"!1:1")
	if err != nil {
		return nil, err
	}
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("sheets: %w: %s", ErrEmptyTable, table)
	}
	return toStrings(values[0]), nil
}

// RowRanges agrupa as linhas em intervalos contíguos, do maior para o menor, sem repetições
func RowRanges(rowIDs []int) []sheetsclient.RowRange {
	ids := make([]int, 0, len(rowIDs))
	seen := make(map[int]struct{}, len(rowIDs))
	for _, id := range rowIDs {
		if id < firstDataRow {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ids)))

	ranges := make([]sheetsclient.RowRange, 0)
	for _, id := range ids {
		start := int64(id - 1)
		if n := len(ranges); n > 0 && ranges[n-1].Start == start+1 {
			ranges[n-1].Start = start
			continue
		}
		ranges = append(ranges, sheetsclient.RowRange{Start: start, End: start + 1})
	}
	return ranges
}

// ColumnLetter converte o índice da coluna (começando em zero) para a notação A1
func ColumnLetter(index int) string {
	letters := ""
	for index >= 0 {
		letters = string(rune('A'+index%26)) + letters
		index = index/26 - 1
	}
	return letters
}

func quoteTable(table string) string {
	return "'" + strings.ReplaceAll(table, "'", "''") + "'"
}

func toStrings(values []interface{}) []string {
	result := make([]string, len(values))
	for i, value := range values {
		if value == nil {
			continue
		}
		result[i] = strings.TrimSpace(fmt.Sprint(value))
	}
	return result
}
