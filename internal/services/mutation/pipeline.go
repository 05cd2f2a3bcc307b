package mutation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/arturyumaev/casinodesk/internal/dependencies/random"
	"github.com/arturyumaev/casinodesk/internal/gameapi"
	"github.com/arturyumaev/casinodesk/internal/model"
	"github.com/arturyumaev/casinodesk/internal/notify"
	"github.com/arturyumaev/casinodesk/internal/services/grid"
)

const (
	// idLength and idAlphabet shape generated notification IDs.
	idLength   = 8
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Status is the lifecycle state of one dispatched mutation.
type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Operation is one remote mutation together with the notification copy its
// lifecycle publishes. Build operations through the pipeline's constructors
// so validation runs before anything is dispatched.
type Operation struct {
	Loading  string
	Success  string
	Fallback string
	Call     func(ctx context.Context) error
}

// Result describes how a dispatched mutation ended. NotificationID ties the
// result back to the loading and terminal notifications, which always share
// one ID.
type Result struct {
	NotificationID string
	Status         Status
	Err            error
}

// Pipeline dispatches mutations against the game service. Each run
// publishes a loading notification, performs the remote call, and settles
// into exactly one terminal notification. A success re-fetches the player
// collection so the grid reflects what the service now holds; there is no
// local guessing at the outcome.
type Pipeline struct {
	api      gameapi.API
	grid     grid.ControllerInterface
	notifier *notify.Service
	random   random.Random
	logger   *slog.Logger
}

// NewPipeline creates a mutation pipeline.
func NewPipeline(
	api gameapi.API,
	gridController grid.ControllerInterface,
	notifier *notify.Service,
	rnd random.Random,
	logger *slog.Logger,
) *Pipeline {
	return &Pipeline{
		api:      api,
		grid:     gridController,
		notifier: notifier,
		random:   rnd,
		logger:   logger.With(slog.String("component", "mutation")),
	}
}

// RoleChange builds an operation that assigns a role to one player. Only
// assignable roles pass; ADMIN is granted out-of-band.
func (p *Pipeline) RoleChange(recordID model.RecordID, role model.Role) (Operation, error) {
	assignable := false
	for _, r := range model.AssignableRoles {
		if r == role {
			assignable = true
			break
		}
	}
	if !assignable {
		return Operation{}, model.ErrInvalidRole
	}

	return Operation{
		Loading:  "Updating role...",
		Success:  "Role updated",
		Fallback: "Failed to update role",
		Call: func(ctx context.Context) error {
			return p.api.SetRole(ctx, recordID, role)
		},
	}, nil
}

// RewardGrant builds an operation that credits play money to one player.
// The amount is validated here, before any network traffic.
func (p *Pipeline) RewardGrant(recordID model.RecordID, amount float64) (Operation, error) {
	if amount <= 0 {
		return Operation{}, model.ErrInvalidAmount
	}

	return Operation{
		Loading:  "Granting reward...",
		Success:  "Reward granted",
		Fallback: "Failed to grant reward",
		Call: func(ctx context.Context) error {
			return p.api.GrantReward(ctx, recordID, amount)
		},
	}, nil
}

// Run dispatches one operation and blocks until it settles.
func (p *Pipeline) Run(ctx context.Context, sessionID model.SessionID, op Operation) Result {
	id := "mut-" + p.random.String(idLength, idAlphabet)

	p.notifier.Publish(ctx, model.Notification{
		ID:      id,
		Kind:    model.NotifyLoading,
		Message: op.Loading,
	})

	if err := op.Call(ctx); err != nil {
		p.notifier.Publish(ctx, model.Notification{
			ID:      id,
			Kind:    model.NotifyError,
			Message: errorMessage(err, op.Fallback),
		})
		return Result{NotificationID: id, Status: StatusFailed, Err: err}
	}

	// The refresh keeps the grid honest after a success. If it fails the
	// mutation still succeeded; the stale snapshot stands until the
	// operator refreshes by hand.
	if _, err := p.grid.Refresh(ctx, sessionID); err != nil {
		p.logger.Warn("post-mutation refresh failed",
			slog.String("session_id", string(sessionID)),
			slog.String("error", err.Error()),
		)
	}

	p.notifier.Publish(ctx, model.Notification{
		ID:      id,
		Kind:    model.NotifySuccess,
		Message: op.Success,
	})
	return Result{NotificationID: id, Status: StatusSucceeded}
}

// Go dispatches an operation without waiting. Each call runs independently;
// results arrive on the returned channel when the operation settles.
func (p *Pipeline) Go(ctx context.Context, sessionID model.SessionID, op Operation) <-chan Result {
	done := make(chan Result, 1)
	go func() {
		done <- p.Run(ctx, sessionID, op)
		close(done)
	}()
	return done
}

// errorMessage prefers the service's own error text and falls back to the
// operation's generic message for transport-level failures.
func errorMessage(err error, fallback string) string {
	var apiErr *gameapi.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
