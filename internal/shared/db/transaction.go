// Package db carries the transaction plumbing shared by all repositories.
package db

import (
	"context"

	"gorm.io/gorm"
)

// txKey marks the active *gorm.DB transaction inside a context.
type txKey struct{}

// TransactionManager opens gorm transactions and threads the handle through
// ctx so every repository call inside the closure joins the same unit of
// work.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction runs fn inside one transaction. The ctx handed to fn
// carries the transaction; an error from fn rolls everything back, nil
// commits.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}

// GetTx returns the transaction bound to ctx, or the manager's base
// connection when none is active.
func (tm *TransactionManager) GetTx(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return tm.db.WithContext(ctx)
}

// GetTxFromContext is the repository-side accessor: the transaction bound to
// ctx when called inside RunInTransaction, defaultDB otherwise.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
