package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/arturyumaev/casinodesk/internal/dependencies/clock"
	"github.com/arturyumaev/casinodesk/internal/dependencies/random"
	"github.com/arturyumaev/casinodesk/internal/gameapi"
	"github.com/arturyumaev/casinodesk/internal/model"
	"github.com/arturyumaev/casinodesk/internal/notify"
	"github.com/arturyumaev/casinodesk/internal/services/assets"
	"github.com/arturyumaev/casinodesk/internal/services/grid"
	"github.com/arturyumaev/casinodesk/internal/services/mutation"
	"github.com/arturyumaev/casinodesk/internal/services/reward"
	"github.com/arturyumaev/casinodesk/internal/services/stats"
	"github.com/arturyumaev/casinodesk/internal/storage"
	"github.com/arturyumaev/casinodesk/internal/storage/memory"
	redisstorage "github.com/arturyumaev/casinodesk/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired console components for one operator session.
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Game service client
	API gameapi.API

	// Session-bound services
	SessionID       model.SessionID
	Notifier        *notify.Service
	GridController  *grid.Controller
	Pipeline        *mutation.Pipeline
	RewardWorkflow  *reward.Workflow
	AssetEditor     *assets.Editor
	StatsController *stats.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// SessionID names the operator session all services bind to.
	// If empty, defaults to "default".
	SessionID model.SessionID
	// APIConfig configures the game service client (ignored if APIClient set)
	APIConfig gameapi.Config
	// APIClient overrides the game service client (useful for testing)
	APIClient gameapi.API
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	api := cfg.APIClient
	if api == nil {
		api = gameapi.New(cfg.APIConfig, logger)
	}

	sessionID := cfg.SessionID
	if sessionID == "" {
		sessionID = "default"
	}

	return newWithDependencies(sessionID, api, store, clock.New(), random.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	sessionID model.SessionID,
	api gameapi.API,
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *App {
	notifier := notify.New(sessionID, store, clk, logger)
	gridController := grid.NewController(api, store, clk, logger)
	pipeline := mutation.NewPipeline(api, gridController, notifier, rnd, logger)
	rewardWorkflow := reward.NewWorkflow(pipeline)
	assetEditor := assets.NewEditor(api, store, notifier, clk, rnd, logger)
	statsController := stats.NewController(api, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		API:             api,
		SessionID:       sessionID,
		Notifier:        notifier,
		GridController:  gridController,
		Pipeline:        pipeline,
		RewardWorkflow:  rewardWorkflow,
		AssetEditor:     assetEditor,
		StatsController: statsController,
	}
}
