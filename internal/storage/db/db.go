package db

import (
	"context"
	"fmt"
	"time"

	"github.com/DanRulev/conceptbot/internal/config"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/jmoiron/sqlx"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch cfg.Driver {
	case DriverPostgres:
		dsn := fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
			cfg.Conn.Host, cfg.Conn.Port, cfg.Conn.Name, cfg.Conn.User, cfg.Conn.Password, cfg.Conn.SSL)
		db, err = sqlx.Open(DriverPostgres, dsn)
	case DriverSQLite:
		db, err = openSQLite(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	if cfg.Driver == DriverPostgres {
		db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
		db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	return db, nil
}

// OpenSQLite opens a pure Go SQLite database; ":memory:" gives a private in-memory store.
func OpenSQLite(path string) (*sqlx.DB, error) {
	return openSQLite(path)
}

func openSQLite(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open(DriverSQLite, path)
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer; one connection also keeps ":memory:" databases alive.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = OFF",
	}
	if path != ":memory:" {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL", "PRAGMA synchronous = NORMAL")
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	return db, nil
}
