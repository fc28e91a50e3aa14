package db

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// WithTx runs fn inside a single transaction. The transaction is committed
// when fn returns nil and rolled back otherwise (including on panic, which is
// re-raised after the rollback).
func WithTx(ctx context.Context, pool *pgxpool.Pool, reason string, fn func(tx pgx.Tx) error) (err error) {
	log.Tracef("starting transaction: (%s)", reason)

	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx (%s): %w", reason, err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}

		panicErr := recover()
		if panicErr != nil {
			log.Errorf("panic in tx (%s): %v\n%s", reason, panicErr, debug.Stack())
		}

		// rollback on a fresh context: the request one may already be canceled
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			log.Errorf("tx rollback (%s): %s", reason, rbErr)
		} else {
			log.Tracef("transaction rolled back: (%s)", reason)
		}

		if panicErr != nil {
			panic(panicErr)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx (%s): %w", reason, err)
	}
	committed = true

	log.Tracef("committed transaction: (%s)", reason)
	return nil
}
