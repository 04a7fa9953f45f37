package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/leads-analytics-api/internal/domain"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/leading"
	leadmocks "github.com/vfg2006/leads-analytics-api/internal/usecases/leading/mocks"
	"github.com/vfg2006/leads-analytics-api/internal/usecases/reconciling"
	reconcilemocks "github.com/vfg2006/leads-analytics-api/internal/usecases/reconciling/mocks"
	"github.com/vfg2006/leads-analytics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func setupLeadMocks(t *testing.T) (*leadmocks.MockLeadManager, *reconcilemocks.MockReconciler) {
	ctrl := gomock.NewController(t)
	return leadmocks.NewMockLeadManager(ctrl), reconcilemocks.NewMockReconciler(ctrl)
}

func TestListLeads(t *testing.T) {
	leads, reconciler := setupLeadMocks(t)
	leads.EXPECT().ListLeads(gomock.Any(), gomock.Any()).Return([]domain.LeadView{
		{
			LeadRecord:   domain.LeadRecord{RowID: 2, DateRaw: "2024-03-01", CampaignRaw: "brand"},
			CampaignName: "Бренд",
			LeadFacets:   domain.LeadFacets{IsTarget: true},
		},
	}, nil)

	rec := serve(Leads(leads, reconciler), clientClaims, http.MethodGet, "/v1/leads?start_date=2024-03-01&end_date=2024-03-02", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var views []domain.LeadView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "Бренд", views[0].CampaignName)
	assert.True(t, views[0].IsTarget)
}

func TestAppendLeads(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		body       string
		setupMock  func(m *leadmocks.MockLeadManager)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "admin adiciona leads",
			claims: adminClaims,
			body:   `[{"date":"2024-03-01","time":"10:00","campaign":"brand"}]`,
			setupMock: func(m *leadmocks.MockLeadManager) {
				m.EXPECT().AppendLeads(gomock.Any(), []domain.NewLeadRequest{
					{Date: "2024-03-01", Time: "10:00", Campaign: "brand"},
				}).Return(1, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "cliente não pode adicionar",
			claims:     clientClaims,
			body:       `[{"date":"2024-03-01"}]`,
			setupMock:  func(m *leadmocks.MockLeadManager) {},
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:       "lead sem data responde 400 com detalhes",
			claims:     adminClaims,
			body:       `[{"campaign":"brand"}]`,
			setupMock:  func(m *leadmocks.MockLeadManager) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:   "data em formato desconhecido responde 400",
			claims: adminClaims,
			body:   `[{"date":"março"}]`,
			setupMock: func(m *leadmocks.MockLeadManager) {
				m.EXPECT().AppendLeads(gomock.Any(), gomock.Any()).Return(0, leading.ErrInvalidDate)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "corpo que não é lista responde 400",
			claims:     adminClaims,
			body:       `{"date":"2024-03-01"}`,
			setupMock:  func(m *leadmocks.MockLeadManager) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leads, reconciler := setupLeadMocks(t)
			tt.setupMock(leads)

			rec := serve(Leads(leads, reconciler), tt.claims, http.MethodPost, "/v1/leads", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestUpdateLeadStatus(t *testing.T) {
	t.Run("deve repassar a linha e os campos", func(t *testing.T) {
		leads, reconciler := setupLeadMocks(t)
		leads.EXPECT().UpdateStatus(gomock.Any(), 7, gomock.Any()).
			DoAndReturn(func(_ any, _ int, update domain.LeadStatusUpdate) error {
				require.NotNil(t, update.Qualification)
				assert.Equal(t, "Квал", *update.Qualification)
				assert.Nil(t, update.Target)
				return nil
			})

		rec := serve(Leads(leads, reconciler), adminClaims, http.MethodPut, "/v1/leads/7", `{"qualification":"Квал"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("row_id não numérico responde 400", func(t *testing.T) {
		leads, reconciler := setupLeadMocks(t)

		rec := serve(Leads(leads, reconciler), adminClaims, http.MethodPut, "/v1/leads/abc", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("atualização vazia responde 400", func(t *testing.T) {
		leads, reconciler := setupLeadMocks(t)
		leads.EXPECT().UpdateStatus(gomock.Any(), 7, gomock.Any()).Return(leading.ErrEmptyUpdate)

		rec := serve(Leads(leads, reconciler), adminClaims, http.MethodPut, "/v1/leads/7", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
	})

	t.Run("falha na planilha responde 502", func(t *testing.T) {
		leads, reconciler := setupLeadMocks(t)
		leads.EXPECT().UpdateStatus(gomock.Any(), 7, gomock.Any()).Return(errors.New("quota"))

		rec := serve(Leads(leads, reconciler), adminClaims, http.MethodPut, "/v1/leads/7", `{"target":"Да"}`)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestPurgeLeads(t *testing.T) {
	leads, reconciler := setupLeadMocks(t)
	leads.EXPECT().PurgeRange(gomock.Any(), gomock.Any()).Return(4, nil)

	rec := serve(Leads(leads, reconciler), adminClaims, http.MethodDelete, "/v1/leads?start_date=2024-03-01&end_date=2024-03-02", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":4}`, rec.Body.String())
}

func TestMarkDuplicates(t *testing.T) {
	leads, reconciler := setupLeadMocks(t)
	reconciler.EXPECT().MarkDuplicates(gomock.Any()).
		Return(&domain.DuplicateResult{Checked: 10, Marked: 2, RowIDs: []int{5, 9}}, nil)

	rec := serve(Leads(leads, reconciler), adminClaims, http.MethodPost, "/v1/leads/duplicates/mark", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"checked":10,"marked":2,"row_ids":[5,9]}`, rec.Body.String())
}

func TestArchiveMerge(t *testing.T) {
	startedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("deve iniciar o job e responder 202", func(t *testing.T) {
		leads, reconciler := setupLeadMocks(t)
		reconciler.EXPECT().StartArchiveMerge(gomock.Any(), []domain.ArchiveRow{
			{Date: "01.03.2024", Time: "10:00", Campaign: "brand", Qualification: "Квал"},
		}).Return(&domain.MergeJob{ID: "abc123", Status: domain.JobStatusRunning, TotalRows: 1, StartedAt: startedAt}, nil)

		rec := serve(Leads(leads, reconciler), adminClaims, http.MethodPost, "/v1/leads/archive-merge",
			`[{"date":"01.03.2024","time":"10:00","campaign":"brand","qualification":"Квал"}]`)

		require.Equal(t, http.StatusAccepted, rec.Code)

		var job domain.MergeJob
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
		assert.Equal(t, "abc123", job.ID)
		assert.Equal(t, domain.JobStatusRunning, job.Status)
	})

	t.Run("lista vazia responde 400", func(t *testing.T) {
		leads, reconciler := setupLeadMocks(t)
		reconciler.EXPECT().StartArchiveMerge(gomock.Any(), gomock.Any()).Return(nil, reconciling.ErrEmptyImport)

		rec := serve(Leads(leads, reconciler), adminClaims, http.MethodPost, "/v1/leads/archive-merge", `[]`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("consulta de job existente", func(t *testing.T) {
		leads, reconciler := setupLeadMocks(t)
		reconciler.EXPECT().GetMergeJob("abc123").Return(&domain.MergeJob{
			ID:     "abc123",
			Status: domain.JobStatusCompleted,
			Result: &domain.MergeResult{Matched: 1, Updated: 1},
		}, nil)

		rec := serve(Leads(leads, reconciler), adminClaims, http.MethodGet, "/v1/leads/archive-merge/abc123", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"completed"`)
	})

	t.Run("job desconhecido responde 404", func(t *testing.T) {
		leads, reconciler := setupLeadMocks(t)
		reconciler.EXPECT().GetMergeJob("nope").Return(nil, reconciling.ErrJobNotFound)

		rec := serve(Leads(leads, reconciler), adminClaims, http.MethodGet, "/v1/leads/archive-merge/nope", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrResourceNotFound, decodeError(t, rec).Code)
	})
}
