package repositories

import (
	"context"
	"fmt"

	"github.com/JP-maker/gamegauge-api/internal/logger"
	"github.com/jmoiron/sqlx"
)

// TxSetter returns a copy of ctx carrying tx.
type TxSetter func(ctx context.Context, tx *sqlx.Tx) context.Context

// Transactor runs a group of repository calls atomically.
type Transactor struct {
	db       *sqlx.DB
	txGetter TxGetter
	txSetter TxSetter
}

func NewTransactor(db *sqlx.DB, txGetter TxGetter, txSetter TxSetter) *Transactor {
	return &Transactor{db: db, txGetter: txGetter, txSetter: txSetter}
}

// WithinTx calls fn with a context bound to a transaction. When ctx already
// carries one (request-scoped TxMiddleware), fn joins it and the owner of that
// transaction decides commit or rollback.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if t.txGetter != nil && t.txGetter(ctx) != nil {
		return fn(ctx)
	}

	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
	}()

	if err := fn(t.txSetter(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.FromContext(ctx).Errorw("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
