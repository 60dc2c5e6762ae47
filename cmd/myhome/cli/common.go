package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/agent"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/catalog"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/config"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/favorites"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/observe"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/provider"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/store"
	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/tools"
)

const mongoConnectTimeout = 5 * time.Second

// app bundles the wired components behind a chat session.
type app struct {
	cfg       *config.Config
	obs       *observe.Observer
	orch      *agent.Orchestrator
	favorites favorites.Store
	sessions  store.Storage
	userID    string
}

func buildApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if providerType != "" {
		cfg.LLM.Provider = providerType
	}
	if verbose {
		cfg.Logging.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	obs := newObserver(cfg.Logging)

	p, err := provider.NewFromConfig(cfg.LLM)
	if err != nil {
		return nil, err
	}

	cat, err := newCatalog(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	favStore := newFavoritesStore(ctx, cfg.Mongo, obs)

	sessions, err := store.NewSQLiteStore(cfg.Session.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	uid := userID
	if uid == "" {
		uid = cfg.Agent.DefaultUserID
	}

	registry := tools.NewRegistry(tools.Deps{
		Catalog:       cat,
		Favorites:     favStore,
		DefaultUserID: uid,
	})

	return &app{
		cfg:       cfg,
		obs:       obs,
		orch:      agent.New(p, registry, sessions, obs, cfg.Agent),
		favorites: favStore,
		sessions:  sessions,
		userID:    uid,
	}, nil
}

func (a *app) Close(ctx context.Context) {
	if err := a.favorites.Close(ctx); err != nil {
		a.obs.Log().Warn().Str("error", err.Error()).Msg("failed to close favorites store")
	}
	if err := a.sessions.Close(); err != nil {
		a.obs.Log().Warn().Str("error", err.Error()).Msg("failed to close session store")
	}
	_ = a.obs.Close()
}

func newObserver(cfg config.LoggingConfig) *observe.Observer {
	if cfg.Format == "json" {
		return observe.NewJSON(os.Stderr, cfg.Verbose)
	}
	return observe.New(os.Stderr, cfg.Verbose)
}

func newCatalog(cfg config.CatalogConfig) (*catalog.Catalog, error) {
	if cfg.Path != "" {
		return catalog.NewFromFile(cfg.Path)
	}
	return catalog.New(), nil
}

// newFavoritesStore prefers MongoDB; when it is unreachable (or --offline
// was given) favorites live in memory for the life of the process.
func newFavoritesStore(ctx context.Context, cfg config.MongoConfig, obs *observe.Observer) favorites.Store {
	if offline {
		return favorites.NewMemoryStore()
	}

	connectCtx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	mongoStore, err := favorites.NewMongoStore(connectCtx, cfg.URI, cfg.Database)
	if err != nil {
		obs.Log().Warn().
			Str("error", err.Error()).
			Msg("mongodb unreachable, favorites will not persist across restarts")
		return favorites.NewMemoryStore()
	}
	return mongoStore
}
