package docstore

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/teamboard/internal/common"
	"github.com/dmitrijs2005/teamboard/internal/logging"
	"github.com/dmitrijs2005/teamboard/internal/server/models"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenSQL(context.Background(), SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLBackend_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	projects := NewCollection[models.Project](NewSQLBackend(db, SQLite, "projects"), logging.Nop())
	users := NewCollection[models.User](NewSQLBackend(db, SQLite, "users"), logging.Nop())

	assert.Empty(t, projects.Load(ctx))

	require.NoError(t, projects.ReplaceAll(ctx, sampleProjects()))
	require.NoError(t, users.ReplaceAll(ctx, []models.User{{ID: "u1", Email: "a@x"}}))

	assert.Equal(t, sampleProjects(), projects.Load(ctx))
	assert.Equal(t, []models.User{{ID: "u1", Email: "a@x"}}, users.Load(ctx))

	// second write is an upsert, not a duplicate row
	require.NoError(t, projects.ReplaceAll(ctx, sampleProjects()[:1]))
	assert.Len(t, projects.Load(ctx), 1)

	var rows int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&rows))
	assert.Equal(t, 2, rows)
}

func TestSQLBackend_MigrationsAreIdempotent(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, RunMigrations(context.Background(), db, SQLite))
}

func TestSQLBackend_PostgresQueries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	ctx := context.Background()

	b := NewSQLBackend(db, Postgres, "users")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT body FROM documents WHERE name = $1`)).
		WithArgs("users").
		WillReturnError(sql.ErrNoRows)
	_, err = b.Read(ctx)
	assert.ErrorIs(t, err, ErrNotExist)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT body FROM documents WHERE name = $1`)).
		WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow(`[]`))
	got, err := b.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))

	mock.ExpectExec(`INSERT INTO documents \(name, body, updated_at\)\s+VALUES \(\$1, \$2, CURRENT_TIMESTAMP\)\s+ON CONFLICT \(name\) DO UPDATE`).
		WithArgs("users", `[{"id":"u1"}]`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, b.Write(ctx, []byte(`[{"id":"u1"}]`)))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLBackend_ErrorsSurface(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	ctx := context.Background()

	c := NewCollection[models.User](NewSQLBackend(db, Postgres, "users"), logging.Nop())

	mock.ExpectQuery("SELECT body").WillReturnError(errors.New("connection refused"))
	assert.Empty(t, c.Load(ctx), "read errors degrade to empty")

	mock.ExpectExec("INSERT INTO documents").WillReturnError(errors.New("connection refused"))
	err = c.ReplaceAll(ctx, []models.User{{ID: "u1"}})
	assert.ErrorIs(t, err, common.ErrorStorage)

	mock.ExpectQuery("SELECT body").WillReturnError(errors.New("connection reset"))
	err = c.Update(ctx, func(users []models.User) ([]models.User, error) {
		return append(users, models.User{ID: "u2"}), nil
	})
	assert.ErrorIs(t, err, common.ErrorStorage, "no write after a failed read")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_Error(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		assert.Equal(t, ".", dir)
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	err = RunMigrations(context.Background(), db, Postgres)
	assert.ErrorContains(t, err, "boom")
}

func TestDialectByName(t *testing.T) {
	d, err := DialectByName("postgres")
	require.NoError(t, err)
	assert.Equal(t, "pgx", d.Driver)
	assert.Equal(t, "$2", d.Placeholder(2))

	d, err = DialectByName("sqlite")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Driver)
	assert.Equal(t, "?", d.Placeholder(2))

	_, err = DialectByName("oracle")
	assert.Error(t, err)
}
