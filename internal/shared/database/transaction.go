package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sumcoda/boardbuddy/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

var errNilTransactionFunc = errors.New("database: transaction function is nil")

// WithTransaction executes the provided fn within a read-write transaction while propagating context.
// Any error returned by fn (or a panic) rolls the transaction back.
//
// Usage:
//
//	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
//	    if err := repo.Create(ctx, tx, entity); err != nil {
//	        return err // rollback
//	    }
//	    return nil // commit
//	})
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	return withTransaction(ctx, db, fn, nil)
}

// WithReadOnlyTransaction is WithTransaction for query-only service methods.
func WithReadOnlyTransaction(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	return withTransaction(ctx, db, fn, &sql.TxOptions{ReadOnly: true})
}

func withTransaction(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error, opts *sql.TxOptions) error {
	if fn == nil {
		return errNilTransactionFunc
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var txOpts []*sql.TxOptions
	if opts != nil {
		txOpts = append(txOpts, opts)
	}

	err := db.WithContext(ctx).Transaction(fn, txOpts...)
	if err != nil {
		logger.FromContext(ctx).DebugContext(ctx, "트랜잭션 롤백", "read_only", opts != nil && opts.ReadOnly, "error", err)
	}
	return err
}
