package importer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dashboardvendas/importer/pkg/config"
	"github.com/dashboardvendas/importer/pkg/db/models"
	pkgerrors "github.com/dashboardvendas/importer/pkg/errors"
	"github.com/dashboardvendas/importer/pkg/logger"
	"go.uber.org/multierr"
	"gorm.io/gorm"
)

// Summary is the run-level output: counts reported on completion.
type Summary struct {
	OrdersSeen     int
	OrdersInserted int
	ItemsInserted  int
}

// Loader drives the end-to-end persistence of grouped records with
// idempotent inserts and periodic commit checkpoints.
type Loader struct {
	db              *gorm.DB
	repo            Repository
	log             *logger.Logger
	checkpointEvery int
	stmtTimeout     time.Duration
}

func NewLoader(db *gorm.DB, repo Repository, log *logger.Logger, cfg config.ImportConfig) *Loader {
	every := cfg.CheckpointEvery
	if every <= 0 {
		every = 100
	}
	return &Loader{
		db:              db,
		repo:            repo,
		log:             log,
		checkpointEvery: every,
		stmtTimeout:     cfg.StatementTimeout,
	}
}

// Run processes every group in first-seen order. Per group: insert-or-ignore
// the header; only when the header is new, insert all of the group's items.
// The open transaction is committed after every checkpointEvery newly
// inserted orders, so a failure loses at most one checkpoint's worth of work
// and the next run resumes where the last commit left off.
func (l *Loader) Run(ctx context.Context, src Source) (Summary, error) {
	var sum Summary

	tx := l.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return sum, pkgerrors.Wrap(pkgerrors.CodeDatabase, tx.Error, "beginning transaction")
	}
	defer func() {
		// no-op when the final commit already closed the scope
		_ = tx.Rollback()
	}()

	err := EachGroup(ctx, src, func(g Group) error {
		sum.OrdersSeen++
		gctx := l.log.WithOrderNumber(ctx, g.Key)

		if g.Key == "" {
			// Known source defect: rows without an order number collapse
			// into one group. Preserved, but worth an operator's attention.
			l.log.Warn(gctx, fmt.Sprintf("%d rows carry no order number and share one header", len(g.Rows)))
		}

		repo := l.repo.WithTx(tx)

		order := BuildOrder(g)
		inserted, err := l.insertOrder(gctx, repo, &order)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDatabase, err, fmt.Sprintf("inserting order %q", g.Key))
		}
		if !inserted {
			// Pre-existing order: skip the whole group so re-runs never
			// attach duplicate items.
			return nil
		}
		sum.OrdersInserted++

		items := make([]models.OrderItem, 0, len(g.Rows))
		for _, row := range g.Rows {
			items = append(items, BuildItem(row, order.ID))
		}
		if err := l.insertItems(gctx, repo, items); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDatabase, err, fmt.Sprintf("inserting %d items for order %q", len(items), g.Key))
		}
		sum.ItemsInserted += len(items)

		if sum.OrdersInserted%l.checkpointEvery == 0 {
			if err := tx.Commit().Error; err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDatabase, err, "committing checkpoint")
			}
			pctx := l.log.WithFields(gctx, map[string]any{
				"orders_seen":     sum.OrdersSeen,
				"orders_inserted": sum.OrdersInserted,
				"items_inserted":  sum.ItemsInserted,
			})
			l.log.Info(pctx, "checkpoint committed")

			tx = l.db.WithContext(ctx).Begin()
			if tx.Error != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDatabase, tx.Error, "beginning transaction after checkpoint")
			}
		}
		return nil
	})
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil && !rollbackNoop(rbErr) {
			err = multierr.Append(err, rbErr)
		}
		if pkgerrors.As(err) == nil {
			err = pkgerrors.Wrap(pkgerrors.CodeSource, err, "reading source")
		}
		return sum, err
	}

	// Final commit regardless of whether a checkpoint boundary was just hit.
	if err := tx.Commit().Error; err != nil {
		return sum, pkgerrors.Wrap(pkgerrors.CodeDatabase, err, "committing final batch")
	}
	return sum, nil
}

func (l *Loader) insertOrder(ctx context.Context, repo Repository, order *models.Order) (bool, error) {
	ctx, cancel := l.stmtCtx(ctx)
	defer cancel()
	return repo.InsertOrderIgnore(ctx, order)
}

func (l *Loader) insertItems(ctx context.Context, repo Repository, items []models.OrderItem) error {
	ctx, cancel := l.stmtCtx(ctx)
	defer cancel()
	return repo.InsertItems(ctx, items)
}

// stmtCtx bounds one database round-trip; a hanging call must not block the
// run indefinitely.
func (l *Loader) stmtCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.stmtTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, l.stmtTimeout)
}

func rollbackNoop(err error) bool {
	return errors.Is(err, sql.ErrTxDone) || errors.Is(err, gorm.ErrInvalidTransaction)
}
