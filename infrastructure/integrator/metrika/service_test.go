package metrika

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metrikadomain "github.com/vfg2006/leads-analytics-api/infrastructure/integrator/metrika/domain"
	"github.com/vfg2006/leads-analytics-api/infrastructure/integrator/metrika/metrikaclient/mocks"
	"github.com/vfg2006/leads-analytics-api/internal/analytics"
	"github.com/vfg2006/leads-analytics-api/internal/config"
	"github.com/vfg2006/leads-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newIntegrator(client *mocks.MockClient, maxPolls int) (*MetrikaIntegrator, *[]time.Duration) {
	cfg := &config.Config{Metrika: config.Metrika{LogPollSeconds: 5, LogMaxPolls: maxPolls}}
	integrator := New(cfg, client)

	sleeps := &[]time.Duration{}
	integrator.sleep = func(_ context.Context, d time.Duration) error {
		*sleeps = append(*sleeps, d)
		return nil
	}
	return integrator, sleeps
}

func TestMetrikaIntegrator_FetchExpenses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	integrator, _ := newIntegrator(client, 1)
	from := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)

	client.EXPECT().
		GetCampaignExpenses(gomock.Any(), from, to).
		Return(&metrikadomain.StatResponse{Data: []metrikadomain.StatRow{
			{Dimensions: []metrikadomain.StatDimension{{ID: "777", Name: "Поиск"}}, Metrics: []float64{1500.456, 30}},
			{Dimensions: []metrikadomain.StatDimension{{ID: "888"}}, Metrics: []float64{100, 0}},
		}}, nil)

	records, err := integrator.FetchExpenses(context.Background(), from, to)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Поиск", records[0].CampaignLabel)
	assert.Equal(t, 1500.46, records[0].Spend)
	assert.Equal(t, 30, records[0].Visits)
	assert.InDelta(t, 50.0153, records[0].CostPerVisit, 0.0001)
	assert.Equal(t, domain.SpendRecord{CampaignLabel: "888", Spend: 100, Visits: 0, CostPerVisit: 0}, records[1])
}

func TestMetrikaIntegrator_FetchExpensesErro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	integrator, _ := newIntegrator(client, 1)

	client.EXPECT().GetCampaignExpenses(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := integrator.FetchExpenses(context.Background(), time.Now(), time.Now())
	assert.EqualError(t, err, "timeout")
}

func TestMetrikaIntegrator_FetchLeadEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	integrator, sleeps := newIntegrator(client, 5)
	day := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	client.EXPECT().GetGoals(gomock.Any()).Return([]metrikadomain.Goal{{ID: 101, Name: "Заявка"}, {ID: 102, Name: "Звонок"}}, nil)
	client.EXPECT().
		CreateLogRequest(gomock.Any(), day, day, metrikadomain.VisitLogFields).
		Return(&metrikadomain.LogRequest{RequestID: 9, Status: metrikadomain.LogStatusCreated}, nil)
	gomock.InOrder(
		client.EXPECT().GetLogRequest(gomock.Any(), int64(9)).Return(&metrikadomain.LogRequest{RequestID: 9, Status: metrikadomain.LogStatusCreated}, nil),
		client.EXPECT().GetLogRequest(gomock.Any(), int64(9)).Return(&metrikadomain.LogRequest{
			RequestID: 9,
			Status:    metrikadomain.LogStatusProcessed,
			Parts:     []metrikadomain.LogPart{{PartNumber: 0}},
		}, nil),
	)
	client.EXPECT().DownloadLogPart(gomock.Any(), int64(9), 0).Return([]map[string]string{
		{
			metrikadomain.FieldVisitID:       "111",
			metrikadomain.FieldDateTime:      "2025-01-06 10:15:00",
			metrikadomain.FieldGoalsID:       "[55,102]",
			metrikadomain.FieldTrafficSource: "ad",
			metrikadomain.FieldDirectOrder:   "777",
		},
		{
			metrikadomain.FieldVisitID:       "222",
			metrikadomain.FieldDateTime:      "2025-01-06 11:00:00",
			metrikadomain.FieldGoalsID:       "[]",
			metrikadomain.FieldTrafficSource: "ad",
		},
		{
			metrikadomain.FieldVisitID:       "333",
			metrikadomain.FieldDateTime:      "2025-01-06 12:00:00",
			metrikadomain.FieldGoalsID:       "[101]",
			metrikadomain.FieldTrafficSource: "organic",
		},
		{
			metrikadomain.FieldVisitID:       "444",
			metrikadomain.FieldDateTime:      "2025-01-06 13:00:00",
			metrikadomain.FieldGoalsID:       "[55]",
			metrikadomain.FieldTrafficSource: "ad",
		},
		{
			metrikadomain.FieldVisitID:       "555",
			metrikadomain.FieldDateTime:      "2025-01-06 14:00:00",
			metrikadomain.FieldGoalsID:       "[101]",
			metrikadomain.FieldTrafficSource: "AD",
			metrikadomain.FieldDirectOrder:   "0",
			metrikadomain.FieldUTMCampaign:   "brand",
		},
	}, nil)
	client.EXPECT().CleanLogRequest(gomock.Any(), int64(9)).Return(nil)

	leads, err := integrator.FetchLeadEvents(context.Background(), day, day,
		domain.LeadEventFilters{GoalIDs: []int64{101, 102}, Source: "ad"},
		analytics.AliasMap{"777": "Поиск"})

	require.NoError(t, err)
	assert.Equal(t, []domain.LeadRecord{
		{DateRaw: "2025-01-06", TimeRaw: "10:15:00", CampaignRaw: "Поиск", GoalLabel: "Звонок", ExternalVisitID: "111"},
		{DateRaw: "2025-01-06", TimeRaw: "14:00:00", CampaignRaw: "brand", GoalLabel: "Заявка", ExternalVisitID: "555"},
	}, leads)
	assert.Equal(t, []time.Duration{5 * time.Second}, *sleeps)
}

func TestMetrikaIntegrator_FetchLeadEventsPedidoFalhou(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	integrator, _ := newIntegrator(client, 5)

	client.EXPECT().GetGoals(gomock.Any()).Return(nil, nil)
	client.EXPECT().CreateLogRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(&metrikadomain.LogRequest{RequestID: 3}, nil)
	client.EXPECT().GetLogRequest(gomock.Any(), int64(3)).Return(&metrikadomain.LogRequest{RequestID: 3, Status: metrikadomain.LogStatusProcessingFailed}, nil)
	client.EXPECT().CleanLogRequest(gomock.Any(), int64(3)).Return(errors.New("já removido"))

	_, err := integrator.FetchLeadEvents(context.Background(), time.Now(), time.Now(), domain.LeadEventFilters{}, nil)
	assert.ErrorIs(t, err, ErrLogRequestFailed)
}

func TestMetrikaIntegrator_FetchLeadEventsTempoEsgotado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	integrator, sleeps := newIntegrator(client, 3)

	client.EXPECT().GetGoals(gomock.Any()).Return(nil, nil)
	client.EXPECT().CreateLogRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(&metrikadomain.LogRequest{RequestID: 4}, nil)
	client.EXPECT().GetLogRequest(gomock.Any(), int64(4)).Return(&metrikadomain.LogRequest{RequestID: 4, Status: metrikadomain.LogStatusCreated}, nil).Times(3)
	client.EXPECT().CleanLogRequest(gomock.Any(), int64(4)).Return(nil)

	_, err := integrator.FetchLeadEvents(context.Background(), time.Now(), time.Now(), domain.LeadEventFilters{}, nil)
	assert.ErrorIs(t, err, ErrLogRequestTimeout)
	assert.Len(t, *sleeps, 2)
}

func TestMetrikaIntegrator_ListGoals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	integrator, _ := newIntegrator(client, 1)

	client.EXPECT().GetGoals(gomock.Any()).Return([]metrikadomain.Goal{{ID: 101, Name: "Заявка", Type: "action"}}, nil)

	goals, err := integrator.ListGoals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Goal{{ID: 101, Name: "Заявка", Type: "action"}}, goals)
}

func TestParseGoalIDs(t *testing.T) {
	assert.Equal(t, []int64{101, 102}, parseGoalIDs("[101, 102]"))
	assert.Nil(t, parseGoalIDs("[]"))
	assert.Equal(t, []int64{7}, parseGoalIDs("[x,7]"))
}
