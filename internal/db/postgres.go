package db

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	once sync.Once
	pool *sql.DB
	err  error
)

// Connect opens the Postgres pool once per process and returns the same
// handle on every subsequent call. The pool is the concurrency boundary; it
// is safe to share across requests.
func Connect(databaseURL string) (*sql.DB, error) {
	once.Do(func() {
		pool, err = open(databaseURL)
	})
	return pool, err
}

func open(databaseURL string) (*sql.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is empty")
	}

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(10)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
