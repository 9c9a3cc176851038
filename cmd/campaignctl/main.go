// Command campaignctl is the client side of the campaign lifecycle. It keeps
// a per-user campaign cache in Redis (or in memory) and reconciles it with
// the campaign API.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"jobboard-ads/internal/adapter/cache"
	"jobboard-ads/internal/adapter/kv"
	"jobboard-ads/internal/adapter/remote"
	"jobboard-ads/internal/adapter/store"
	"jobboard-ads/internal/config"
	"jobboard-ads/internal/core/lifecycle"
	"jobboard-ads/internal/core/port"
	"jobboard-ads/internal/logger"
)

// app holds what every subcommand shares. The store is opened lazily so
// commands such as token work without Redis.
type app struct {
	cfg     config.Config
	log     *slog.Logger
	closers []io.Closer
	store   *store.Store
}

func main() {
	a := &app{}
	root := &cobra.Command{
		Use:           "campaignctl",
		Short:         "Manage ad campaigns from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			a.cfg = cfg
			var closer io.Closer
			a.log, closer = logger.New(cfg.Log)
			a.closers = append(a.closers, closer)
			return nil
		},
	}
	root.AddCommand(
		draftCommand(a),
		createCommand(a),
		editCommand(a),
		launchCommand(a),
		eventCommand(a, "pause", "Pause an active campaign"),
		eventCommand(a, "resume", "Resume a paused campaign"),
		eventCommand(a, "pay", "Record the payment of a campaign awaiting payment"),
		eventCommand(a, "end", "End a campaign"),
		showCommand(a),
		listCommand(a),
		syncCommand(a),
		removeCommand(a),
		tokenCommand(a),
	)

	err := root.ExecuteContext(context.Background())
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// open builds the store for the configured user and loads the cache.
func (a *app) open(ctx context.Context) (*store.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	var backend port.KeyValueStore
	switch a.cfg.Cache.Backend {
	case "memory":
		backend = kv.NewMemory(a.cfg.Cache.MemorySize)
	default:
		r, err := kv.NewRedis(ctx, a.cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, r)
		backend = r
	}

	userID := a.cfg.Remote.UserID
	s := store.New(
		cache.NewCampaignCache(backend, userID),
		cache.NewDraftCache(backend, userID),
		remote.New(a.cfg.Remote),
		lifecycle.NewEngine(a.cfg.ReviewBounds()),
		userID,
		store.WithLogger(a.log.With(slog.String("user_id", userID))),
		store.WithRemoteTimeout(a.cfg.Remote.Timeout),
	)
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	a.store = s
	return s, nil
}

func (a *app) close() {
	if a.store != nil {
		a.store.Close()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i].Close()
	}
}
