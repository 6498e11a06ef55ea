package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"address-resolver/internal/models"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"
)

const recentRuns = 32

// ErrBatchInProgress is returned when a run is started while another is active.
var ErrBatchInProgress = errors.New("service: a batch is already running")

// BatchStore interface for dependency injection
type BatchStore interface {
	SaveRun(ctx context.Context, run models.BatchRun) error
	GetRun(ctx context.Context, id string) (*models.BatchRun, error)
}

// BatchProcessor interface for dependency injection
type BatchProcessor interface {
	ProcessBatch(ctx context.Context, lines []string, onProgress func(models.Progress, models.AddressRecord)) ([]models.AddressRecord, error)
}

// BatchService runs one batch at a time in the background and keeps its results.
type BatchService struct {
	processor BatchProcessor
	store     BatchStore

	mu     sync.Mutex
	active *models.BatchRun
	recent *lru.Cache[string, models.BatchRun]
	done   chan struct{}
}

// NewBatchService creates a batch service. store may be nil to keep results in memory only.
func NewBatchService(processor BatchProcessor, store BatchStore) *BatchService {
	recent, _ := lru.New[string, models.BatchRun](recentRuns)
	return &BatchService{
		processor: processor,
		store:     store,
		recent:    recent,
	}
}

// Start begins a run over lines and returns its id.
func (s *BatchService) Start(ctx context.Context, lines []string) (string, error) {
	lines = nonBlank(lines)
	if len(lines) == 0 {
		return "", ErrEmptyBatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil {
		return "", ErrBatchInProgress
	}

	run := &models.BatchRun{
		ID:        uuid.NewString(),
		Status:    models.RunStatusRunning,
		Progress:  models.Progress{Total: len(lines)},
		Records:   make([]models.AddressRecord, 0, len(lines)),
		CreatedAt: time.Now().UTC(),
	}
	s.active = run
	s.done = make(chan struct{})

	go s.run(context.WithoutCancel(ctx), run, lines, s.done)

	log.Info().Str("run_id", run.ID).Int("total", len(lines)).Msg("batch started")
	return run.ID, nil
}

func (s *BatchService) run(ctx context.Context, run *models.BatchRun, lines []string, done chan struct{}) {
	defer close(done)

	records, err := s.processor.ProcessBatch(ctx, lines, func(p models.Progress, rec models.AddressRecord) {
		s.mu.Lock()
		run.Progress = p
		run.Records = append(run.Records, rec)
		s.mu.Unlock()
	})
	if err != nil {
		log.Error().Err(err).Str("run_id", run.ID).Msg("batch aborted")
	}

	s.mu.Lock()
	finished := time.Now().UTC()
	if records != nil {
		run.Records = records
	}
	run.Status = models.RunStatusCompleted
	run.FinishedAt = &finished
	run.Summary = models.Summarize(run.Records)
	final := snapshot(run)
	s.recent.Add(final.ID, final)
	s.active = nil
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.SaveRun(ctx, final); err != nil {
			log.Error().Err(err).Str("run_id", final.ID).Msg("failed to persist batch")
		}
	}

	log.Info().
		Str("run_id", final.ID).
		Int("high", final.Summary.High).
		Int("medium", final.Summary.Medium).
		Int("low", final.Summary.Low).
		Int("none", final.Summary.None).
		Msg("batch completed")
}

// Get returns the run with id, or nil when it is unknown.
func (s *BatchService) Get(ctx context.Context, id string) (*models.BatchRun, error) {
	s.mu.Lock()
	if s.active != nil && s.active.ID == id {
		run := snapshot(s.active)
		run.Summary = models.Summarize(run.Records)
		s.mu.Unlock()
		return &run, nil
	}
	if run, ok := s.recent.Get(id); ok {
		s.mu.Unlock()
		return &run, nil
	}
	s.mu.Unlock()

	if s.store == nil {
		return nil, nil
	}
	run, err := s.store.GetRun(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load batch: %w", err)
	}
	return run, nil
}

// Wait blocks until the active run, if any, has finished.
func (s *BatchService) Wait() {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done != nil {
		<-done
	}
}

func snapshot(run *models.BatchRun) models.BatchRun {
	cp := *run
	cp.Records = append([]models.AddressRecord(nil), run.Records...)
	return cp
}
