package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/leads-analytics-api/internal/domain"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/insighting"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/leads-analytics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestGetSummary(t *testing.T) {
	march1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	march31 := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		target     string
		setupMock  func(m *mocks.MockInsighter)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "deve repassar o intervalo e devolver o resumo",
			target: "/v1/analytics/summary?start_date=2024-03-01&end_date=2024-03-31",
			setupMock: func(m *mocks.MockInsighter) {
				m.EXPECT().GetSummary(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filters *domain.Filters) (*domain.SummaryReport, error) {
						assert.Equal(t, march1, *filters.StartDate)
						assert.Equal(t, march31, *filters.EndDate)
						return &domain.SummaryReport{Filters: filters}, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "data mal formatada não chama o serviço",
			target:     "/v1/analytics/summary?start_date=01.03.2024&end_date=2024-03-31",
			setupMock:  func(m *mocks.MockInsighter) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:   "datas ausentes respondem 400",
			target: "/v1/analytics/summary",
			setupMock: func(m *mocks.MockInsighter) {
				m.EXPECT().GetSummary(gomock.Any(), gomock.Any()).Return(nil, insighting.ErrMissingDates)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:   "início depois do fim responde 400",
			target: "/v1/analytics/summary?start_date=2024-04-01&end_date=2024-03-31",
			setupMock: func(m *mocks.MockInsighter) {
				m.EXPECT().GetSummary(gomock.Any(), gomock.Any()).Return(nil, insighting.ErrInvalidPeriod)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:   "falha na planilha responde 502",
			target: "/v1/analytics/summary?start_date=2024-03-01&end_date=2024-03-31",
			setupMock: func(m *mocks.MockInsighter) {
				m.EXPECT().GetSummary(gomock.Any(), gomock.Any()).
					Return(nil, errors.Wrap(insighting.ErrRowStore, "timeout"))
			},
			wantStatus: http.StatusBadGateway,
			wantCode:   apiErrors.ErrExternalService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockInsighter := mocks.NewMockInsighter(ctrl)
			tt.setupMock(mockInsighter)

			rec := serve(Analytics(mockInsighter), clientClaims, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestGetGrouped(t *testing.T) {
	t.Run("modo padrão é semanal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockInsighter := mocks.NewMockInsighter(ctrl)
		mockInsighter.EXPECT().
			GetGrouped(gomock.Any(), gomock.Any(), domain.BucketModeWeek).
			Return(&domain.GroupedReport{Mode: domain.BucketModeWeek, Periods: []domain.BucketGroup{{Label: "04.03 - 10.03"}}}, nil)

		rec := serve(Analytics(mockInsighter), clientClaims, http.MethodGet,
			"/v1/analytics/grouped?start_date=2024-03-01&end_date=2024-03-31", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var report domain.GroupedReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		assert.Equal(t, domain.BucketModeWeek, report.Mode)
		assert.Len(t, report.Periods, 1)
	})

	t.Run("modo inválido responde 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockInsighter := mocks.NewMockInsighter(ctrl)
		mockInsighter.EXPECT().
			GetGrouped(gomock.Any(), gomock.Any(), domain.BucketMode("year")).
			Return(nil, insighting.ErrInvalidMode)

		rec := serve(Analytics(mockInsighter), clientClaims, http.MethodGet,
			"/v1/analytics/grouped?start_date=2024-03-01&end_date=2024-03-31&mode=year", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetSpendHistory(t *testing.T) {
	t.Run("deve repassar before, modo e blocos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockInsighter := mocks.NewMockInsighter(ctrl)
		mockInsighter.EXPECT().
			GetSpendHistory(gomock.Any(), clientClaims.UserID, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), domain.BucketModeMonth, 3).
			Return(&domain.SpendHistory{Mode: domain.BucketModeMonth, Frontier: "2024-01-01"}, nil)

		rec := serve(Analytics(mockInsighter), clientClaims, http.MethodGet,
			"/v1/analytics/expenses/history?before=2024-04-01&mode=month&chunks=3", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"frontier":"2024-01-01"`)
	})

	t.Run("quantidade de blocos fora do limite responde 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockInsighter := mocks.NewMockInsighter(ctrl)

		rec := serve(Analytics(mockInsighter), clientClaims, http.MethodGet,
			"/v1/analytics/expenses/history?chunks=100", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("falha no serviço externo responde 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockInsighter := mocks.NewMockInsighter(ctrl)
		mockInsighter.EXPECT().
			GetSpendHistory(gomock.Any(), gomock.Any(), gomock.Any(), domain.BucketModeWeek, 1).
			Return(nil, errors.New("metrika fora do ar"))

		rec := serve(Analytics(mockInsighter), clientClaims, http.MethodGet,
			"/v1/analytics/expenses/history?mode=week", "")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("consulta substituída responde 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockInsighter := mocks.NewMockInsighter(ctrl)
		mockInsighter.EXPECT().
			GetSpendHistory(gomock.Any(), clientClaims.UserID, gomock.Any(), domain.BucketModeMonth, 1).
			Return(nil, insighting.ErrStaleLoad)

		rec := serve(Analytics(mockInsighter), clientClaims, http.MethodGet,
			"/v1/analytics/expenses/history", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrRequestSuperseded, decodeError(t, rec).Code)
	})
}
