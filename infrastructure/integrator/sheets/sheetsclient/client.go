package sheetsclient

import (
	"context"
	"errors"
	"net/http"

	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/leads-analytics-api/internal/config"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	valueInputOption  = "USER_ENTERED"
	valueRenderOption = "FORMATTED_VALUE"
)

// ValueRange é um intervalo A1 com seus valores
type ValueRange struct {
	Range  string
	Values [][]interface{}
}

// SheetInfo descreve uma aba da planilha
type SheetInfo struct {
	ID       int64
	Title    string
	RowCount int64
}

// RowRange é um intervalo de linhas [Start, End) com índice começando em zero
type RowRange struct {
	Start int64
	End   int64
}

type Client interface {
	GetValues(ctx context.Context, spreadsheetID, a1Range string) ([][]interface{}, error)
	AppendValues(ctx context.Context, spreadsheetID, a1Range string, values [][]interface{}) (int64, error)
	BatchUpdateValues(ctx context.Context, spreadsheetID string, data []ValueRange) error
	ListSheets(ctx context.Context, spreadsheetID string) ([]SheetInfo, error)
	DeleteRowRanges(ctx context.Context, spreadsheetID string, sheetID int64, ranges []RowRange) error
}

type SheetsClient struct {
	service *sheets.Service
}

// NewClient cria o cliente com as credenciais da conta de serviço (JSON do secret file ou arquivo local)
func NewClient(ctx context.Context, cfg config.Sheets, opts ...option.ClientOption) (Client, error) {
	clientOpts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	switch {
	case cfg.CredentialsJSON != "":
		clientOpts = append(clientOpts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		clientOpts = append(clientOpts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	clientOpts = append(clientOpts, opts...)

	service, err := sheets.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "sheets: erro ao criar serviço")
	}

	return &SheetsClient{service: service}, nil
}

func (c *SheetsClient) GetValues(ctx context.Context, spreadsheetID, a1Range string) ([][]interface{}, error) {
	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, a1Range).
		ValueRenderOption(valueRenderOption).
		Context(ctx).
		Do()
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "sheets: erro ao ler %s", a1Range)
	}

	return resp.Values, nil
}

func (c *SheetsClient) AppendValues(ctx context.Context, spreadsheetID, a1Range string, values [][]interface{}) (int64, error) {
	resp, err := c.service.Spreadsheets.Values.Append(spreadsheetID, a1Range, &sheets.ValueRange{Values: values}).
		ValueInputOption(valueInputOption).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return 0, pkgerrors.Wrapf(err, "sheets: erro ao adicionar linhas em %s", a1Range)
	}

	if resp.Updates == nil {
		return 0, nil
	}
	return resp.Updates.UpdatedRows, nil
}

func (c *SheetsClient) BatchUpdateValues(ctx context.Context, spreadsheetID string, data []ValueRange) error {
	ranges := make([]*sheets.ValueRange, 0, len(data))
	for _, item := range data {
		ranges = append(ranges, &sheets.ValueRange{Range: item.Range, Values: item.Values})
	}

	_, err := c.service.Spreadsheets.Values.BatchUpdate(spreadsheetID, &sheets.BatchUpdateValuesRequest{
		ValueInputOption: valueInputOption,
		Data:             ranges,
	}).Context(ctx).Do()
	if err != nil {
		return pkgerrors.Wrapf(err, "sheets: erro ao atualizar %d intervalos", len(data))
	}

	return nil
}

func (c *SheetsClient) ListSheets(ctx context.Context, spreadsheetID string) ([]SheetInfo, error) {
	resp, err := c.service.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties").
		Context(ctx).
		Do()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "sheets: erro ao listar abas")
	}

	result := make([]SheetInfo, 0, len(resp.Sheets))
	for _, sheet := range resp.Sheets {
		if sheet.Properties == nil {
			continue
		}
		info := SheetInfo{ID: sheet.Properties.SheetId, Title: sheet.Properties.Title}
		if sheet.Properties.GridProperties != nil {
			info.RowCount = sheet.Properties.GridProperties.RowCount
		}
		result = append(result, info)
	}

	return result, nil
}

// DeleteRowRanges remove os intervalos numa única requisição. Os intervalos devem vir do maior para o menor.
func (c *SheetsClient) DeleteRowRanges(ctx context.Context, spreadsheetID string, sheetID int64, ranges []RowRange) error {
	requests := make([]*sheets.Request, 0, len(ranges))
	for _, r := range ranges {
		requests = append(requests, &sheets.Request{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: r.Start,
					EndIndex:   r.End,
				},
			},
		})
	}

	_, err := c.service.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	if err != nil {
		return pkgerrors.Wrap(err, "sheets: erro ao remover linhas")
	}

	return nil
}

// IsRetryable indica se a API recusou a requisição por limite de cota ou falha temporária do servidor
func IsRetryable(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
	}
	return false
}
