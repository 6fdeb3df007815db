package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/config"
)

type Repository struct {
	cfg    *config.Config
	dbpool *sql.DB
}

func NewRepository(cfg *config.Config, dbpool *sql.DB) *Repository {
	return &Repository{
		cfg:    cfg,
		dbpool: dbpool,
	}
}

// Open creates the SQLite connection pool. WAL mode keeps readers unblocked
// during upload confirms; busy_timeout lets the web layer win short write
// races instead of failing.
func Open(cfg *config.Config) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)",
		cfg.Database.Path,
	)
	return sql.Open("sqlite", dsn)
}

func (r *Repository) queryContext() (context.Context, context.CancelFunc) {
	return contextWithTimeout(r.cfg.Database.QueryTimeout)
}

func (r *Repository) txContext() (context.Context, context.CancelFunc) {
	return contextWithTimeout(r.cfg.Database.TransactionTimeout)
}

func contextWithTimeout(seconds int) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(seconds)*time.Second)
}
