package healthlog

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/healthlog/internal/app"
	"github.com/saadjs/healthlog/internal/config"
	"github.com/saadjs/healthlog/internal/db"
	"github.com/saadjs/healthlog/internal/kv"
	"github.com/saadjs/healthlog/internal/ledger"
	"github.com/saadjs/healthlog/internal/logging"
	"github.com/saadjs/healthlog/internal/rollover"
)

type session struct {
	ctx      context.Context
	cfg      *config.Config
	ledger   *ledger.Ledger
	rollover *rollover.Manager
	user     string
	log      *slog.Logger
}

// withLedger opens the configured store, brings the ledger up to today and
// hands it to run.
func withLedger(cmd *cobra.Command, run func(*session) error) error {
	return withSession(cmd, true, run)
}

func withSession(cmd *cobra.Command, check bool, run func(*session) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	policy, err := rollover.ParsePolicy(cfg.Rollover.Policy)
	if err != nil {
		return err
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	l, err := ledger.Open(ctx, kv.WithPrefix(store, cfg.Storage.Prefix), ledger.Options{
		Clock:  appClock,
		Logger: log,
	})
	if err != nil {
		return err
	}
	s := &session{
		ctx:      ctx,
		cfg:      cfg,
		ledger:   l,
		rollover: rollover.NewManager(l, policy, log),
		user:     cfg.User.ID,
		log:      log,
	}
	if check {
		if _, err := s.rollover.Check(ctx); err != nil {
			return err
		}
	}
	return run(s)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.Storage.Driver = config.DriverSQLite
		cfg.Storage.Path = dbPath
	}
	if userID != "" {
		cfg.User.ID = userID
	}
	return cfg, nil
}

func openStore(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	if cfg.Storage.Driver == config.DriverRedis {
		r, err := kv.NewRedis(ctx, kv.RedisOptions{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	if err := app.EnsureDBDir(cfg.Storage.Path); err != nil {
		return nil, err
	}
	sqldb, err := db.Open(cfg.Storage.Path)
	if err != nil {
		return nil, err
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		sqldb.Close()
		return nil, err
	}
	return kv.NewSQLite(sqldb), nil
}

func storeLocation(cfg *config.Config) string {
	if cfg.Storage.Driver == config.DriverRedis {
		return "redis://" + cfg.Storage.Redis.Addr
	}
	return cfg.Storage.Path
}

func parsePositiveInt(name, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}
