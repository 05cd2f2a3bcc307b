package reward

import (
	"context"
	"sync"

	"github.com/arturyumaev/casinodesk/internal/model"
	"github.com/arturyumaev/casinodesk/internal/services/mutation"
)

// DefaultAmount is the prefilled reward when the workflow opens.
const DefaultAmount = 1000

// State is where the workflow sits between commands.
type State string

const (
	StateClosed     State = "closed"
	StateOpen       State = "open"
	StateSubmitting State = "submitting"
)

// Workflow models the reward dialog: it opens against one target record
// with a prefilled amount, the operator adjusts the amount, and submission
// hands off to the mutation pipeline. A failed submission leaves the
// workflow open so the operator can retry without re-entering anything.
type Workflow struct {
	mu       sync.Mutex
	state    State
	target   model.RecordID
	amount   float64
	pipeline *mutation.Pipeline
}

// NewWorkflow creates a closed workflow.
func NewWorkflow(pipeline *mutation.Pipeline) *Workflow {
	return &Workflow{
		state:    StateClosed,
		pipeline: pipeline,
	}
}

// Open targets a record and resets the amount to the default. Opening while
// already open simply retargets, the way clicking a different row would.
func (w *Workflow) Open(target model.RecordID) error {
	if target == "" {
		return model.ErrNoTargetRecord
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == StateSubmitting {
		return model.ErrNotOpen
	}

	w.state = StateOpen
	w.target = target
	w.amount = DefaultAmount
	return nil
}

// SetAmount replaces the pending amount. Any value is accepted here; the
// positive-amount rule is enforced at submission, matching a form that
// validates on submit rather than on every keystroke.
func (w *Workflow) SetAmount(amount float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateOpen {
		return model.ErrNotOpen
	}

	w.amount = amount
	return nil
}

// Close abandons the workflow and discards its target and amount.
func (w *Workflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = StateClosed
	w.target = ""
	w.amount = 0
}

// Submit validates the amount and dispatches the grant. Success closes the
// workflow; failure returns it to open with the target and amount intact.
func (w *Workflow) Submit(ctx context.Context, sessionID model.SessionID) (mutation.Result, error) {
	w.mu.Lock()
	if w.state != StateOpen {
		w.mu.Unlock()
		return mutation.Result{}, model.ErrNotOpen
	}

	op, err := w.pipeline.RewardGrant(w.target, w.amount)
	if err != nil {
		w.mu.Unlock()
		return mutation.Result{}, err
	}

	w.state = StateSubmitting
	w.mu.Unlock()

	result := w.pipeline.Run(ctx, sessionID, op)

	w.mu.Lock()
	defer w.mu.Unlock()
	if result.Status == mutation.StatusSucceeded {
		w.state = StateClosed
		w.target = ""
		w.amount = 0
	} else {
		w.state = StateOpen
	}
	return result, nil
}

// State returns the current workflow state.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Target returns the record the workflow is aimed at.
func (w *Workflow) Target() model.RecordID {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.target
}

// Amount returns the pending reward amount.
func (w *Workflow) Amount() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.amount
}
