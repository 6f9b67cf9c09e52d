package domain

import "context"

// Database defines lifecycle operations for the backing store. The
// SQLite implementation owns its own migration files; a different
// backend would bring its own.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}
