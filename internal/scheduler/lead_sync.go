package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/leads-analytics-api/infrastructure/integrator/metrika"
	"github.com/vfg2006/leads-analytics-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/leads-analytics-api/infrastructure/repository"
	"github.com/vfg2006/leads-analytics-api/internal/analytics"
	"github.com/vfg2006/leads-analytics-api/internal/config"
	"github.com/vfg2006/leads-analytics-api/internal/domain"
)

// DuplicateMarker marca duplicados depois da importação
type DuplicateMarker interface {
	MarkDuplicates(ctx context.Context) (*domain.DuplicateResult, error)
}

// LeadSyncConfig representa a configuração do agendador de importação de leads
type LeadSyncConfig struct {
	CronSchedule   string
	LookbackDays   int
	SyncEnabled    bool
	GoalIDs        []int64
	Source         string
	MarkDuplicates bool
}

// LeadSyncResult resume uma execução da importação
type LeadSyncResult struct {
	Fetched          int `json:"fetched"`
	Appended         int `json:"appended"`
	Skipped          int `json:"skipped"`
	DuplicatesMarked int `json:"duplicates_marked"`
}

// LeadSyncService importa diariamente as conversões de metas como leads na planilha
type LeadSyncService struct {
	scheduler   *gocron.Scheduler
	config      LeadSyncConfig
	appConfig   *config.Config
	rowStore    sheets.RowStore
	adAnalytics metrika.AdAnalytics
	aliasRepo   repository.CampaignAliasRepository
	duplicates  DuplicateMarker
	now         func() time.Time

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *LeadSyncResult
	lastError           string
}

func NewLeadSyncService(
	rowStore sheets.RowStore,
	adAnalytics metrika.AdAnalytics,
	aliasRepo repository.CampaignAliasRepository,
	duplicates DuplicateMarker,
	appConfig *config.Config,
) *LeadSyncService {
	syncConfig := LeadSyncConfig{
		CronSchedule:   appConfig.LeadSync.CronSchedule,
		LookbackDays:   appConfig.LeadSync.LookbackDays,
		SyncEnabled:    appConfig.LeadSync.Enabled,
		GoalIDs:        parseGoalIDs(appConfig.LeadSync.GoalIDs),
		Source:         appConfig.LeadSync.Source,
		MarkDuplicates: appConfig.LeadSync.MarkDuplicates,
	}
	if syncConfig.LookbackDays <= 0 {
		syncConfig.LookbackDays = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   syncConfig.CronSchedule,
		"lookback_days":   syncConfig.LookbackDays,
		"sync_enabled":    syncConfig.SyncEnabled,
		"goal_ids":        syncConfig.GoalIDs,
		"source":          syncConfig.Source,
		"mark_duplicates": syncConfig.MarkDuplicates,
	}).Info("lead-sync: configuração do agendador carregada")

	return &LeadSyncService{
		scheduler:   gocron.NewScheduler(time.UTC),
		config:      syncConfig,
		appConfig:   appConfig,
		rowStore:    rowStore,
		adAnalytics: adAnalytics,
		aliasRepo:   aliasRepo,
		duplicates:  duplicates,
		now:         time.Now,
	}
}

// Start inicia o agendador e o para quando o contexto é cancelado
func (s *LeadSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("lead-sync: importação desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar importação de leads: %w", err)
	}

	s.scheduler.StartAsync()
	logrus.WithField("cron", s.config.CronSchedule).Info("lead-sync: agendador iniciado")

	go func() {
		<-ctx.Done()
		logrus.Info("lead-sync: parando agendador")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma importação fora do horário, ignorando se já houver uma em andamento
func (s *LeadSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("lead-sync: importação já em andamento, ignorando solicitação manual")
		return
	}

	logrus.Info("lead-sync: iniciando importação manual")
	go s.runSync(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *LeadSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
		"last_error":             s.lastError,
	}
}

func (s *LeadSyncService) runSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("lead-sync: importação já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	result, err := s.Sync(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastResult = result
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("lead-sync: importação falhou")
	}
}

// Sync importa as visitas com conversão da janela configurada, pulando as que já estão na planilha
func (s *LeadSyncService) Sync(ctx context.Context) (*LeadSyncResult, error) {
	today := analytics.DateOnly(s.now())
	dateFrom := today.AddDate(0, 0, -s.config.LookbackDays)
	dateTo := today.AddDate(0, 0, -1)
	table := s.appConfig.Sheets.LeadsTable

	aliases := s.loadAliases()

	events, err := s.adAnalytics.FetchLeadEvents(ctx, dateFrom, dateTo, domain.LeadEventFilters{
		GoalIDs: s.config.GoalIDs,
		Source:  s.config.Source,
	}, aliases)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar conversões: %w", err)
	}

	result := &LeadSyncResult{Fetched: len(events)}
	if len(events) == 0 {
		return result, nil
	}

	rows, err := s.rowStore.GetRows(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler leads existentes: %w", err)
	}

	seen := make(map[string]struct{}, len(rows))
	for _, lead := range domain.LeadsFromRows(rows) {
		if lead.ExternalVisitID != "" {
			seen[lead.ExternalVisitID] = struct{}{}
		}
	}

	values := make([]map[string]string, 0, len(events))
	for _, event := range events {
		if event.ExternalVisitID != "" {
			if _, ok := seen[event.ExternalVisitID]; ok {
				result.Skipped++
				continue
			}
			seen[event.ExternalVisitID] = struct{}{}
		}
		values = append(values, event.ToValues())
	}

	if len(values) > 0 {
		appended, err := s.rowStore.AppendRows(ctx, table, values)
		if err != nil {
			return result, fmt.Errorf("erro ao gravar leads importados: %w", err)
		}
		result.Appended = appended
	}

	if s.config.MarkDuplicates && s.duplicates != nil && result.Appended > 0 {
		marked, err := s.duplicates.MarkDuplicates(ctx)
		if err != nil {
			logrus.WithError(err).Warn("lead-sync: erro ao marcar duplicados")
		} else {
			result.DuplicatesMarked = marked.Marked
		}
	}

	logrus.WithFields(logrus.Fields{
		"from":       analytics.FormatISODate(dateFrom),
		"to":         analytics.FormatISODate(dateTo),
		"fetched":    result.Fetched,
		"appended":   result.Appended,
		"skipped":    result.Skipped,
		"duplicates": result.DuplicatesMarked,
	}).Info("lead-sync: importação concluída")

	return result, nil
}

func (s *LeadSyncService) loadAliases() analytics.AliasMap {
	if s.aliasRepo == nil {
		return analytics.AliasMap{}
	}

	aliases, err := s.aliasRepo.ListAliases()
	if err != nil {
		logrus.WithError(err).Warn("lead-sync: erro ao carregar aliases de campanha")
		return analytics.AliasMap{}
	}

	return analytics.NewAliasMap(aliases)
}

func parseGoalIDs(raw []string) []int64 {
	ids := make([]int64, 0, len(raw))
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				logrus.WithField("goal", part).Warn("lead-sync: id de meta inválido ignorado")
				continue
			}
			ids = append(ids, id)
		}
	}
	return ids
}
