package infrastructure

import (
	"context"

	"gorm.io/gorm"
)

type txContextKey struct{}

// GormTransactor implements shared.Transactor. It opens a gorm transaction
// and carries it through the context so that repository calls inside fn all
// join the same unit of work.
type GormTransactor struct {
	DB *gorm.DB
}

func (t *GormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

// dbFromContext returns the transaction carried in ctx, if any, otherwise
// the repository's own handle.
func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
