package docstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/teamboard/internal/dbx"
	"github.com/dmitrijs2005/teamboard/internal/server/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Dialect describes a database/sql driver the SQL backend can run on.
type Dialect struct {
	Name   string
	Driver string
	Goose  string
	// Placeholder renders the n-th (1-based) bind parameter.
	Placeholder func(n int) string
}

var (
	Postgres = Dialect{
		Name:        "postgres",
		Driver:      "pgx",
		Goose:       "pgx",
		Placeholder: func(n int) string { return "$" + strconv.Itoa(n) },
	}
	SQLite = Dialect{
		Name:        "sqlite",
		Driver:      "sqlite",
		Goose:       "sqlite3",
		Placeholder: func(int) string { return "?" },
	}
)

// DialectByName returns the dialect called name ("postgres" or "sqlite").
func DialectByName(name string) (Dialect, error) {
	switch name {
	case Postgres.Name:
		return Postgres, nil
	case SQLite.Name:
		return SQLite, nil
	default:
		return Dialect{}, fmt.Errorf("unknown sql dialect %q", name)
	}
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB, d Dialect) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(d.Goose); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// OpenSQL opens dsn with the dialect's driver, checks connectivity and
// runs migrations.
func OpenSQL(ctx context.Context, d Dialect, dsn string) (*sql.DB, error) {
	db, err := sql.Open(d.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if d.Name == SQLite.Name {
		// one writer at a time, and ":memory:" stays a single database
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	if err := RunMigrations(ctx, db, d); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// SQLBackend keeps the document as one row of the documents table. The
// upsert is a single statement, which is the commit point.
type SQLBackend struct {
	db      dbx.DBTX
	name    string
	dialect Dialect
}

func NewSQLBackend(db dbx.DBTX, d Dialect, name string) *SQLBackend {
	return &SQLBackend{db: db, name: name, dialect: d}
}

func (b *SQLBackend) Name() string {
	return b.name
}

func (b *SQLBackend) Read(ctx context.Context) ([]byte, error) {
	query := `SELECT body FROM documents WHERE name = ` + b.dialect.Placeholder(1)

	var body string
	err := b.db.QueryRowContext(ctx, query, b.name).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return []byte(body), nil
}

func (b *SQLBackend) Write(ctx context.Context, data []byte) error {
	query := `INSERT INTO documents (name, body, updated_at)
		VALUES (` + b.dialect.Placeholder(1) + `, ` + b.dialect.Placeholder(2) + `, CURRENT_TIMESTAMP)
		ON CONFLICT (name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`

	if _, err := b.db.ExecContext(ctx, query, b.name, string(data)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
