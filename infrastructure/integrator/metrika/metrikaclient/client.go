package metrikaclient

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	metrikadomain "github.com/vfg2006/leads-analytics-api/infrastructure/integrator/metrika/domain"
	"github.com/vfg2006/leads-analytics-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	dateLayout = "2006-01-02"
	statLimit  = 10000
)

type Client interface {
	GetGoals(ctx context.Context) ([]metrikadomain.Goal, error)
	GetCampaignExpenses(ctx context.Context, dateFrom, dateTo time.Time) (*metrikadomain.StatResponse, error)
	CreateLogRequest(ctx context.Context, dateFrom, dateTo time.Time, fields []string) (*metrikadomain.LogRequest, error)
	GetLogRequest(ctx context.Context, requestID int64) (*metrikadomain.LogRequest, error)
	DownloadLogPart(ctx context.Context, requestID int64, part int) ([]map[string]string, error)
	CleanLogRequest(ctx context.Context, requestID int64) error
}

type MetrikaClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
	counterID  string
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Metrika.RequestTimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &MetrikaClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.Metrika.URL, "/"),
		token:      cfg.Metrika.Token,
		counterID:  cfg.Metrika.CounterID,
	}
}

func (c *MetrikaClient) GetGoals(ctx context.Context) ([]metrikadomain.Goal, error) {
	var response metrikadomain.GoalsResponse
	path := fmt.Sprintf("/management/v1/counter/%s/goals", c.counterID)

	if err := c.doJSON(ctx, http.MethodGet, path, nil, &response); err != nil {
		return nil, errors.Wrap(err, "metrika: erro ao listar metas")
	}

	return response.Goals, nil
}

func (c *MetrikaClient) GetCampaignExpenses(ctx context.Context, dateFrom, dateTo time.Time) (*metrikadomain.StatResponse, error) {
	query := url.Values{}
	query.Set("ids", c.counterID)
	query.Set("metrics", metrikadomain.MetricAdCost+","+metrikadomain.MetricVisits)
	query.Set("dimensions", metrikadomain.DimensionAd)
	query.Set("date1", dateFrom.Format(dateLayout))
	query.Set("date2", dateTo.Format(dateLayout))
	query.Set("limit", strconv.Itoa(statLimit))
	query.Set("accuracy", "full")

	var response metrikadomain.StatResponse
	if err := c.doJSON(ctx, http.MethodGet, "/stat/v1/data", query, &response); err != nil {
		return nil, errors.Wrapf(err, "metrika: erro ao buscar gastos de %s a %s", dateFrom.Format(dateLayout), dateTo.Format(dateLayout))
	}

	return &response, nil
}

func (c *MetrikaClient) CreateLogRequest(ctx context.Context, dateFrom, dateTo time.Time, fields []string) (*metrikadomain.LogRequest, error) {
	query := url.Values{}
	query.Set("date1", dateFrom.Format(dateLayout))
	query.Set("date2", dateTo.Format(dateLayout))
	query.Set("fields", strings.Join(fields, ","))
	query.Set("source", "visits")

	var response metrikadomain.LogRequestResponse
	path := fmt.Sprintf("/management/v1/counter/%s/logrequests", c.counterID)
	if err := c.doJSON(ctx, http.MethodPost, path, query, &response); err != nil {
		return nil, errors.Wrap(err, "metrika: erro ao criar pedido de logs")
	}

	return &response.LogRequest, nil
}

func (c *MetrikaClient) GetLogRequest(ctx context.Context, requestID int64) (*metrikadomain.LogRequest, error) {
	var response metrikadomain.LogRequestResponse
	path := fmt.Sprintf("/management/v1/counter/%s/logrequest/%d", c.counterID, requestID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &response); err != nil {
		return nil, errors.Wrapf(err, "metrika: erro ao consultar pedido de logs %d", requestID)
	}

	return &response.LogRequest, nil
}

// DownloadLogPart baixa uma parte do log (TSV com cabeçalho) como linhas indexadas pelo nome do campo
func (c *MetrikaClient) DownloadLogPart(ctx context.Context, requestID int64, part int) ([]map[string]string, error) {
	path := fmt.Sprintf("/management/v1/counter/%s/logrequest/%d/part/%d/download", c.counterID, requestID, part)

	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "metrika: erro ao baixar parte %d do pedido %d", part, requestID)
	}
	defer resp.Body.Close()

	rows, err := parseTSV(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "metrika: erro ao ler parte %d do pedido %d", part, requestID)
	}

	return rows, nil
}

func (c *MetrikaClient) CleanLogRequest(ctx context.Context, requestID int64) error {
	path := fmt.Sprintf("/management/v1/counter/%s/logrequest/%d/clean", c.counterID, requestID)
	if err := c.doJSON(ctx, http.MethodPost, path, nil, nil); err != nil {
		return errors.Wrapf(err, "metrika: erro ao limpar pedido de logs %d", requestID)
	}
	return nil
}

func (c *MetrikaClient) doJSON(ctx context.Context, method, path string, query url.Values, out interface{}) error {
	resp, err := c.do(ctx, method, path, query)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "erro ao decodificar a resposta")
	}
	return nil
}

// do executa a requisição e converte status diferentes de 200 em ErrorResponse
func (c *MetrikaClient) do(ctx context.Context, method, path string, query url.Values) (*http.Response, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		apiErr := &metrikadomain.ErrorResponse{}
		body, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == 0 {
			apiErr.Code = resp.StatusCode
			apiErr.Message = strings.TrimSpace(string(body))
		}
		return nil, apiErr
	}

	return resp, nil
}

func parseTSV(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return []map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]string, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
