package leading

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sheetsmocks "github.com/vfg2006/leads-analytics-api/infrastructure/integrator/sheets/mocks"
	repomocks "github.com/vfg2006/leads-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/leads-analytics-api/internal/config"
	"github.com/vfg2006/leads-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

const leadsTable = "Лиды"

func newTestService(t *testing.T) (*Service, *sheetsmocks.MockRowStore, *repomocks.MockCampaignAliasRepository) {
	ctrl := gomock.NewController(t)
	rowStore := sheetsmocks.NewMockRowStore(ctrl)
	aliasRepo := repomocks.NewMockCampaignAliasRepository(ctrl)
	cfg := &config.Config{Sheets: config.Sheets{LeadsTable: leadsTable}}
	return NewService(cfg, rowStore, aliasRepo), rowStore, aliasRepo
}

func rangeFilters(start, end string) *domain.Filters {
	s, _ := time.Parse(time.DateOnly, start)
	e, _ := time.Parse(time.DateOnly, end)
	return &domain.Filters{StartDate: &s, EndDate: &e}
}

var rows = []domain.Row{
	{ID: 2, Values: map[string]string{domain.ColumnDate: "2025-01-06", domain.ColumnCampaign: "555", domain.ColumnTarget: "целевой"}},
	{ID: 3, Values: map[string]string{domain.ColumnDate: "07.01.2025", domain.ColumnCampaign: ""}},
	{ID: 4, Values: map[string]string{domain.ColumnDate: "2025-02-01", domain.ColumnCampaign: "x"}},
	{ID: 5, Values: map[string]string{domain.ColumnDate: "", domain.ColumnCampaign: "x"}},
}

func TestListLeads(t *testing.T) {
	t.Run("deve listar leads do intervalo com campanha resolvida", func(t *testing.T) {
		service, rowStore, aliasRepo := newTestService(t)
		rowStore.EXPECT().GetRows(gomock.Any(), leadsTable).Return(rows, nil)
		aliasRepo.EXPECT().ListAliases().Return([]domain.CampaignAlias{{Source: "555", DisplayName: "Поиск"}}, nil)

		leads, err := service.ListLeads(context.Background(), rangeFilters("2025-01-01", "2025-01-31"))
		require.NoError(t, err)

		require.Len(t, leads, 2)
		assert.Equal(t, 2, leads[0].RowID)
		assert.Equal(t, "Поиск", leads[0].CampaignName)
		assert.True(t, leads[0].IsTarget)
		assert.Equal(t, domain.DefaultCampaignName, leads[1].CampaignName)
	})

	t.Run("deve validar intervalo", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.ListLeads(context.Background(), rangeFilters("2025-02-01", "2025-01-01"))
		assert.ErrorIs(t, err, ErrInvalidPeriod)

		_, err = service.ListLeads(context.Background(), nil)
		assert.ErrorIs(t, err, ErrMissingDates)
	})
}

func TestAppendLeads(t *testing.T) {
	t.Run("deve gravar leads no formato da planilha", func(t *testing.T) {
		service, rowStore, _ := newTestService(t)
		rowStore.EXPECT().AppendRows(gomock.Any(), leadsTable, []map[string]string{{
			domain.ColumnDate:          "2025-01-06",
			domain.ColumnTime:          "10:30:00",
			domain.ColumnCampaign:      "Бренд",
			domain.ColumnQualification: "",
			domain.ColumnTarget:        "да",
			domain.ColumnSaleAmount:    "",
			domain.ColumnGoal:          "",
			domain.ColumnExternalVisit: "",
		}}).Return(1, nil)

		count, err := service.AppendLeads(context.Background(), []domain.NewLeadRequest{
			{Date: " 2025-01-06 ", Time: "10:30:00", Campaign: "Бренд", Target: "да"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("deve recusar data inválida sem gravar", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.AppendLeads(context.Background(), []domain.NewLeadRequest{{Date: "2025-13-40"}})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestUpdateStatus(t *testing.T) {
	qualification := "квал"
	sale := "1500"

	t.Run("deve atualizar apenas os campos informados", func(t *testing.T) {
		service, rowStore, _ := newTestService(t)
		rowStore.EXPECT().UpdateRow(gomock.Any(), leadsTable, 7, map[string]string{
			domain.ColumnQualification: "квал",
			domain.ColumnSaleAmount:    "1500",
		}).Return(nil)

		err := service.UpdateStatus(context.Background(), 7, domain.LeadStatusUpdate{Qualification: &qualification, SaleAmount: &sale})
		assert.NoError(t, err)
	})

	t.Run("deve recusar atualização vazia e linha de cabeçalho", func(t *testing.T) {
		service, _, _ := newTestService(t)

		assert.ErrorIs(t, service.UpdateStatus(context.Background(), 7, domain.LeadStatusUpdate{}), ErrEmptyUpdate)
		assert.ErrorIs(t, service.UpdateStatus(context.Background(), 1, domain.LeadStatusUpdate{Qualification: &qualification}), ErrInvalidRow)
	})

	t.Run("deve propagar erro da planilha", func(t *testing.T) {
		service, rowStore, _ := newTestService(t)
		rowStore.EXPECT().UpdateRow(gomock.Any(), leadsTable, 7, gomock.Any()).Return(errors.New("429"))

		err := service.UpdateStatus(context.Background(), 7, domain.LeadStatusUpdate{Qualification: &qualification})
		assert.Error(t, err)
	})
}

func TestPurgeRange(t *testing.T) {
	t.Run("deve remover somente linhas com data no intervalo", func(t *testing.T) {
		service, rowStore, _ := newTestService(t)
		rowStore.EXPECT().GetRows(gomock.Any(), leadsTable).Return(rows, nil)
		rowStore.EXPECT().DeleteRows(gomock.Any(), leadsTable, []int{2, 3}).Return(2, nil)

		deleted, err := service.PurgeRange(context.Background(), rangeFilters("2025-01-01", "2025-01-31"))
		require.NoError(t, err)
		assert.Equal(t, 2, deleted)
	})

	t.Run("não deve chamar remoção quando nada casa", func(t *testing.T) {
		service, rowStore, _ := newTestService(t)
		rowStore.EXPECT().GetRows(gomock.Any(), leadsTable).Return(rows, nil)

		deleted, err := service.PurgeRange(context.Background(), rangeFilters("2024-01-01", "2024-01-31"))
		require.NoError(t, err)
		assert.Zero(t, deleted)
	})
}
