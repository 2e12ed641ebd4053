package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/config"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/constants"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/lifecycle"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/errors"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/infra/persistence/model"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/infra/persistence/sqlite"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the draft store database selected by drafts.driver and
// migrates its schema when the application starts.
func New(params Params) (*gorm.DB, error) {
	gormLogger := newGormSlogLogger(params.Logger, params.Config)

	db, err := open(params.Config, gormLogger)
	if err != nil {
		return nil, err
	}
	db = db.Session(&gorm.Session{
		// Draft writes are single statements; no implicit transaction needed.
		SkipDefaultTransaction: true,
		Logger:                 gormLogger,
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping database")
			}

			if err := Migrate(ctx, db); err != nil {
				return err
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Migrate creates or updates the tables owned by this service.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.JourneyDraftModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate journey drafts")
	}

	return nil
}

func open(cfg *config.Config, gormLogger logger.Interface) (*gorm.DB, error) {
	switch cfg.Drafts.Driver {
	case constants.DraftsDriverSQLite:
		return sqlite.Open(cfg.Drafts.SQLitePath, gormLogger)
	case constants.DraftsDriverPostgres:
		if cfg.Postgres == nil {
			return nil, errors.New("drafts.driver is postgres but no postgres section is configured")
		}
		db, err := pgLib.New(cfg.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create PostgreSQL client")
		}

		return db, nil
	default:
		return nil, errors.Errorf("unsupported drafts driver %q", cfg.Drafts.Driver)
	}
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Draft store pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Draft store pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
