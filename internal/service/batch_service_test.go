package service

import (
	"context"
	"testing"

	"address-resolver/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockBatchProcessor is a mock implementation of the BatchProcessor interface
type MockBatchProcessor struct {
	mock.Mock
}

func (m *MockBatchProcessor) ProcessBatch(ctx context.Context, lines []string, onProgress func(models.Progress, models.AddressRecord)) ([]models.AddressRecord, error) {
	args := m.Called(ctx, lines, onProgress)
	return args.Get(0).([]models.AddressRecord), args.Error(1)
}

var batchRecords = []models.AddressRecord{
	{OriginalAddress: "서울 강남구 역삼동 835-6", LotAddress: "서울 강남구 역삼동 835-6", MatchConfidence: models.ConfidenceHigh},
	{OriginalAddress: "대구 북구 산격동 1666", LotAddress: "대구 북구 산격동 1666", MatchConfidence: models.ConfidenceNone},
}

func reportProgress(args mock.Arguments) {
	onProgress := args.Get(2).(func(models.Progress, models.AddressRecord))
	for i, rec := range batchRecords {
		onProgress(models.Progress{Current: i + 1, Total: len(batchRecords)}, rec)
	}
}

func TestBatchService_Start_EmptyInput(t *testing.T) {
	processor := new(MockBatchProcessor)
	svc := NewBatchService(processor, nil)

	_, err := svc.Start(context.Background(), []string{"", "  "})

	assert.ErrorIs(t, err, ErrEmptyBatch)
	processor.AssertNotCalled(t, "ProcessBatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestBatchService_RunCompletes(t *testing.T) {
	lines := []string{"서울 강남구 역삼동 835-6", "대구 북구 산격동 1666"}

	processor := new(MockBatchProcessor)
	processor.On("ProcessBatch", mock.Anything, lines, mock.Anything).
		Run(reportProgress).
		Return(batchRecords, nil)

	store := new(MockBatchStore)
	store.On("SaveRun", mock.Anything, mock.MatchedBy(func(run models.BatchRun) bool {
		return run.Status == models.RunStatusCompleted && len(run.Records) == 2
	})).Return(nil)

	svc := NewBatchService(processor, store)

	id, err := svc.Start(context.Background(), append([]string{"  "}, lines...))
	require.NoError(t, err)
	require.NotEmpty(t, id)
	svc.Wait()

	run, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, models.RunStatusCompleted, run.Status)
	assert.Equal(t, models.Progress{Current: 2, Total: 2}, run.Progress)
	assert.Equal(t, batchRecords, run.Records)
	assert.Equal(t, models.Summary{High: 1, None: 1}, run.Summary)
	assert.NotNil(t, run.FinishedAt)

	processor.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestBatchService_RejectsConcurrentRun(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	processor := new(MockBatchProcessor)
	processor.On("ProcessBatch", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			close(started)
			<-release
		}).
		Return(batchRecords, nil).Once()

	svc := NewBatchService(processor, nil)

	id, err := svc.Start(context.Background(), []string{"서울 강남구 역삼동 835-6"})
	require.NoError(t, err)
	<-started

	run, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, models.RunStatusRunning, run.Status)

	_, err = svc.Start(context.Background(), []string{"대구 북구 산격동 1666"})
	assert.ErrorIs(t, err, ErrBatchInProgress)

	close(release)
	svc.Wait()

	run, err = svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusCompleted, run.Status)
}

func TestBatchService_Get(t *testing.T) {
	stored := &models.BatchRun{ID: "stored-run", Status: models.RunStatusCompleted}

	tests := []struct {
		name      string
		id        string
		withStore bool
		storeRun  *models.BatchRun
		storeErr  error
		expected  *models.BatchRun
		expectErr bool
	}{
		{name: "unknown run without store", id: "missing"},
		{name: "unknown run in store", id: "missing", withStore: true},
		{name: "run loaded from store", id: "stored-run", withStore: true, storeRun: stored, expected: stored},
		{name: "store error", id: "broken", withStore: true, storeErr: assert.AnError, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var svc *BatchService
			store := new(MockBatchStore)
			if tt.withStore {
				store.On("GetRun", mock.Anything, tt.id).Return(tt.storeRun, tt.storeErr)
				svc = NewBatchService(new(MockBatchProcessor), store)
			} else {
				svc = NewBatchService(new(MockBatchProcessor), nil)
			}

			run, err := svc.Get(context.Background(), tt.id)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, run)
			}
			store.AssertExpectations(t)
		})
	}
}
