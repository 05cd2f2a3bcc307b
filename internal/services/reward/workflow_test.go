package reward

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/arturyumaev/casinodesk/internal/dependencies/mocks"
	"github.com/arturyumaev/casinodesk/internal/dependencies/random"
	"github.com/arturyumaev/casinodesk/internal/gameapi"
	"github.com/arturyumaev/casinodesk/internal/model"
	"github.com/arturyumaev/casinodesk/internal/notify"
	"github.com/arturyumaev/casinodesk/internal/services/grid"
	"github.com/arturyumaev/casinodesk/internal/services/mutation"
	"github.com/arturyumaev/casinodesk/internal/storage/memory"
	"github.com/arturyumaev/casinodesk/internal/testutil"
)

type fakeAPI struct {
	mu        sync.Mutex
	rewardErr error

	grants []float64
}

func (f *fakeAPI) Users(ctx context.Context) ([]model.PlayerRecord, error) {
	return []model.PlayerRecord{{ID: "1", Name: "Alice"}}, nil
}

func (f *fakeAPI) SetRole(ctx context.Context, id model.RecordID, role model.Role) error {
	return nil
}

func (f *fakeAPI) GrantReward(ctx context.Context, id model.RecordID, amount float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rewardErr != nil {
		return f.rewardErr
	}
	f.grants = append(f.grants, amount)
	return nil
}

func (f *fakeAPI) FetchAssets(ctx context.Context) (*model.AssetConfig, error) {
	return &model.AssetConfig{}, nil
}

func (f *fakeAPI) SaveAssets(ctx context.Context, cfg *model.AssetConfig) (*model.AssetConfig, error) {
	return cfg, nil
}

func (f *fakeAPI) ResetAssets(ctx context.Context) (*model.AssetConfig, error) {
	return &model.AssetConfig{}, nil
}

type WorkflowSuite struct {
	suite.Suite
	api      *fakeAPI
	workflow *Workflow
	ctx      context.Context
}

func TestWorkflowSuite(t *testing.T) {
	suite.Run(t, new(WorkflowSuite))
}

func (s *WorkflowSuite) SetupTest() {
	s.api = &fakeAPI{}

	store := memory.New()
	clk := mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	logger := testutil.NopLogger()

	notifier := notify.New("op-1", store, clk, logger)
	gridController := grid.NewController(s.api, store, clk, logger)
	pipeline := mutation.NewPipeline(s.api, gridController, notifier, random.New(), logger)

	s.workflow = NewWorkflow(pipeline)
	s.ctx = context.Background()
}

func (s *WorkflowSuite) TestStartsClosed() {
	s.Equal(StateClosed, s.workflow.State())
}

func (s *WorkflowSuite) TestOpenPrefillsDefaultAmount() {
	s.Require().NoError(s.workflow.Open("1"))

	s.Equal(StateOpen, s.workflow.State())
	s.Equal(model.RecordID("1"), s.workflow.Target())
	s.Equal(float64(DefaultAmount), s.workflow.Amount())
}

func (s *WorkflowSuite) TestOpenRequiresTarget() {
	s.ErrorIs(s.workflow.Open(""), model.ErrNoTargetRecord)
}

func (s *WorkflowSuite) TestReopenRetargetsAndResetsAmount() {
	s.Require().NoError(s.workflow.Open("1"))
	s.Require().NoError(s.workflow.SetAmount(250))

	s.Require().NoError(s.workflow.Open("2"))
	s.Equal(model.RecordID("2"), s.workflow.Target())
	s.Equal(float64(DefaultAmount), s.workflow.Amount())
}

func (s *WorkflowSuite) TestSetAmountRequiresOpen() {
	s.ErrorIs(s.workflow.SetAmount(500), model.ErrNotOpen)
}

func (s *WorkflowSuite) TestSubmitRequiresOpen() {
	_, err := s.workflow.Submit(s.ctx, "op-1")
	s.ErrorIs(err, model.ErrNotOpen)
}

func (s *WorkflowSuite) TestSubmitGrantsAndCloses() {
	s.Require().NoError(s.workflow.Open("1"))
	s.Require().NoError(s.workflow.SetAmount(2500))

	result, err := s.workflow.Submit(s.ctx, "op-1")
	s.Require().NoError(err)

	s.Equal(mutation.StatusSucceeded, result.Status)
	s.Equal(StateClosed, s.workflow.State())
	s.Equal([]float64{2500}, s.api.grants)
}

func (s *WorkflowSuite) TestInvalidAmountRejectedBeforeNetwork() {
	s.Require().NoError(s.workflow.Open("1"))
	s.Require().NoError(s.workflow.SetAmount(-10))

	_, err := s.workflow.Submit(s.ctx, "op-1")
	s.ErrorIs(err, model.ErrInvalidAmount)

	s.Equal(StateOpen, s.workflow.State(), "workflow stays open after a rejected amount")
	s.Empty(s.api.grants)
}

func (s *WorkflowSuite) TestFailedSubmitStaysOpen() {
	s.api.rewardErr = &gameapi.APIError{StatusCode: 500, Message: "ledger unavailable"}

	s.Require().NoError(s.workflow.Open("1"))
	result, err := s.workflow.Submit(s.ctx, "op-1")
	s.Require().NoError(err)

	s.Equal(mutation.StatusFailed, result.Status)
	s.Equal(StateOpen, s.workflow.State())
	s.Equal(model.RecordID("1"), s.workflow.Target())
	s.Equal(float64(DefaultAmount), s.workflow.Amount(), "amount survives a failed submit")
}

func (s *WorkflowSuite) TestCloseDiscards() {
	s.Require().NoError(s.workflow.Open("1"))
	s.workflow.Close()

	s.Equal(StateClosed, s.workflow.State())
	s.Empty(s.workflow.Target())
}
