package reconciling

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/leads-analytics-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/leads-analytics-api/infrastructure/repository"
	"github.com/vfg2006/leads-analytics-api/internal/analytics"
	"github.com/vfg2006/leads-analytics-api/internal/config"
	"github.com/vfg2006/leads-analytics-api/internal/domain"
	"github.com/vfg2006/leads-analytics-api/pkg/utils"
)

const (
	defaultBatchSize   = 50
	defaultMaxAttempts = 3
	jobRetention       = 24 * time.Hour
)

type Reconciler interface {
	// StartArchiveMerge dispara a mesclagem em segundo plano e retorna o job criado
	StartArchiveMerge(ctx context.Context, rows []domain.ArchiveRow) (*domain.MergeJob, error)
	GetMergeJob(jobID string) (*domain.MergeJob, error)
	MergeArchive(ctx context.Context, rows []domain.ArchiveRow) (*domain.MergeResult, error)
	MarkDuplicates(ctx context.Context) (*domain.DuplicateResult, error)
}

type Service struct {
	cfg        *config.Config
	rowStore   sheets.RowStore
	aliasRepo  repository.CampaignAliasRepository
	classifier *analytics.Classifier
	sleep      utils.SleepFunc
	now        func() time.Time

	jobsMu sync.RWMutex
	jobs   map[string]*domain.MergeJob
}

func NewService(cfg *config.Config, rowStore sheets.RowStore, aliasRepo repository.CampaignAliasRepository) *Service {
	return &Service{
		cfg:        cfg,
		rowStore:   rowStore,
		aliasRepo:  aliasRepo,
		classifier: analytics.NewClassifier(analytics.DefaultVocabulary),
		sleep:      utils.ContextSleep,
		now:        time.Now,
		jobs:       make(map[string]*domain.MergeJob),
	}
}

func (s *Service) StartArchiveMerge(ctx context.Context, rows []domain.ArchiveRow) (*domain.MergeJob, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyImport
	}

	jobID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do job: %w", err)
	}

	job := &domain.MergeJob{
		ID:        jobID,
		Status:    domain.JobStatusRunning,
		TotalRows: len(rows),
		StartedAt: s.now(),
	}

	s.jobsMu.Lock()
	s.pruneJobs()
	s.jobs[jobID] = job
	snapshot := *job
	s.jobsMu.Unlock()

	// o job sobrevive ao fim da requisição
	go s.runJob(context.WithoutCancel(ctx), jobID, rows)

	return &snapshot, nil
}

func (s *Service) GetMergeJob(jobID string) (*domain.MergeJob, error) {
	s.jobsMu.RLock()
	defer s.jobsMu.RUnlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return nil, ErrJobNotFound
	}

	snapshot := *job
	return &snapshot, nil
}

// MergeArchive casa as linhas importadas com as linhas vivas e grava os patches em lotes.
// Um lote que esgota as tentativas é registrado e pulado; a operação segue com os demais.
func (s *Service) MergeArchive(ctx context.Context, imports []domain.ArchiveRow) (*domain.MergeResult, error) {
	table := s.cfg.Sheets.LeadsTable

	rows, err := s.rowStore.GetRows(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler linhas para mesclagem: %w", err)
	}

	report := analytics.MatchArchive(imports, domain.LeadsFromRows(rows), s.loadAliases())

	result := &domain.MergeResult{
		Matched:    report.MatchedCount(),
		NotMatched: len(report.Matches) - report.MatchedCount(),
		Skipped:    report.Skipped,
		Matches:    report.Matches,
	}

	batchSize := s.cfg.ArchiveMerge.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	maxAttempts := s.cfg.ArchiveMerge.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	backoff := utils.NewBackoff(time.Duration(s.cfg.ArchiveMerge.BackoffBaseSeconds)*time.Second, maxAttempts).
		WithSleep(s.sleep).
		WithRetryIf(sheets.IsRetryable)
	pause := time.Duration(s.cfg.ArchiveMerge.BatchPauseMs) * time.Millisecond

	for start := 0; start < len(report.Patches); start += batchSize {
		end := min(start+batchSize, len(report.Patches))
		batch := report.Patches[start:end]

		err := backoff.Do(ctx, func(attempt int) error {
			err := s.rowStore.UpdateRowsBatch(ctx, table, batch)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"batch":   start / batchSize,
					"attempt": attempt,
				}).Warn("reconcile: falha ao gravar lote")
			}
			return err
		})
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"batch": start / batchSize,
				"rows":  len(batch),
			}).Error("reconcile: lote descartado após esgotar tentativas")
			result.FailedBatches++
		} else {
			result.Updated += len(batch)
		}

		if end < len(report.Patches) {
			if err := s.sleep(ctx, pause); err != nil {
				return result, err
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"matched":       result.Matched,
		"updated":       result.Updated,
		"notMatched":    result.NotMatched,
		"skipped":       result.Skipped,
		"failedBatches": result.FailedBatches,
	}).Info("reconcile: mesclagem concluída")

	return result, nil
}

// MarkDuplicates grava a marca de duplicado nas linhas que repetem data e hora, numa única atualização
func (s *Service) MarkDuplicates(ctx context.Context) (*domain.DuplicateResult, error) {
	table := s.cfg.Sheets.LeadsTable

	rows, err := s.rowStore.GetRows(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler linhas para duplicados: %w", err)
	}

	leads := domain.LeadsFromRows(rows)
	rowIDs := s.classifier.FindDuplicates(leads)

	result := &domain.DuplicateResult{
		Checked: len(leads),
		Marked:  len(rowIDs),
		RowIDs:  rowIDs,
	}

	if len(rowIDs) == 0 {
		return result, nil
	}

	if err := s.rowStore.UpdateRowsBatch(ctx, table, s.classifier.DuplicatePatches(rowIDs)); err != nil {
		return nil, fmt.Errorf("erro ao marcar duplicados: %w", err)
	}

	logrus.WithField("marked", len(rowIDs)).Info("reconcile: duplicados marcados")

	return result, nil
}

func (s *Service) runJob(ctx context.Context, jobID string, rows []domain.ArchiveRow) {
	result, err := s.MergeArchive(ctx, rows)

	s.jobsMu.Lock()
	defer s.jobsMu.Unlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return
	}

	completedAt := s.now()
	job.CompletedAt = &completedAt
	job.Result = result

	if err != nil {
		logrus.WithError(err).WithField("jobID", jobID).Error("reconcile: job de mesclagem falhou")
		job.Status = domain.JobStatusFailed
		job.Error = err.Error()
		return
	}

	job.Status = domain.JobStatusCompleted
}

// pruneJobs remove jobs finalizados há mais tempo que a retenção. Chamar com jobsMu travado.
func (s *Service) pruneJobs() {
	limit := s.now().Add(-jobRetention)
	for id, job := range s.jobs {
		if job.CompletedAt != nil && job.CompletedAt.Before(limit) {
			delete(s.jobs, id)
		}
	}
}

func (s *Service) loadAliases() analytics.AliasMap {
	if s.aliasRepo == nil {
		return analytics.AliasMap{}
	}

	aliases, err := s.aliasRepo.ListAliases()
	if err != nil {
		logrus.WithError(err).Warn("reconcile: erro ao carregar aliases de campanha")
		return analytics.AliasMap{}
	}

	return analytics.NewAliasMap(aliases)
}
