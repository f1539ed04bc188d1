package contextkeys

import (
	"context"

	"gorm.io/gorm"
)

// Custom key type to avoid context collisions.
type contextKey string

// DBContextKey is the key under which the per-request *gorm.DB is stored.
const DBContextKey = contextKey("db")

// WithDB stores the gorm handle in the context.
func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, DBContextKey, db)
}

// DBFromContext returns the stored gorm handle, or nil when absent.
func DBFromContext(ctx context.Context) *gorm.DB {
	if db, ok := ctx.Value(DBContextKey).(*gorm.DB); ok {
		return db
	}
	return nil
}
