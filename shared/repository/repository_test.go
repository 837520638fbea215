package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"studio/infras/database"
	otelMocks "studio/infras/otel/mocks"
	"studio/shared/constant"
	"studio/shared/dto"
	"studio/shared/model"
	"studio/shared/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID      int64  `db:"id"   readonly:"true"`
	Body    string `db:"body"`
	Ignored string `db:"-"`
	model.Metadata
}

func newRepository(t *testing.T, driver string) (repository.Repository[note], sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, driver)
	conn := &database.Connection{Read: sqlxDB, Write: sqlxDB, Driver: driver}

	return repository.NewRepository[note]("note", "notes", "id", conn, otelMocks.NewOtel()), mock
}

func TestNewRepositoryColumns(t *testing.T) {
	repo, _ := newRepository(t, constant.DriverPostgres)

	assert.Equal(t, []string{"body", "created_at"}, repo.InsertColumns)
}

func TestInsert(t *testing.T) {
	tests := []struct {
		driver string
		query  string
	}{
		{driver: constant.DriverPostgres, query: "INSERT INTO notes (body, created_at) VALUES ($1, $2) RETURNING id"},
		{driver: constant.DriverSQLite, query: "INSERT INTO notes (body, created_at) VALUES (?, ?) RETURNING id"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			repo, mock := newRepository(t, tt.driver)

			mock.ExpectPrepare(regexp.QuoteMeta(tt.query)).
				ExpectQuery().
				WithArgs("hello", sqlmock.AnyArg()).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

			id, err := repo.Insert(context.Background(), note{Body: "hello", Metadata: model.Metadata{CreatedAt: time.Now()}})
			require.NoError(t, err)
			assert.Equal(t, int64(7), id)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInsertError(t *testing.T) {
	repo, mock := newRepository(t, constant.DriverPostgres)

	mock.ExpectPrepare("INSERT INTO notes").
		ExpectQuery().
		WillReturnError(errors.New("relation \"notes\" does not exist"))

	_, err := repo.Insert(context.Background(), note{Body: "hello"})
	assert.ErrorContains(t, err, "does not exist")
}

func TestInsertIgnoreConflict(t *testing.T) {
	repo, mock := newRepository(t, constant.DriverPostgres)

	query := regexp.QuoteMeta("INSERT INTO notes (body, created_at) VALUES ($1, $2) ON CONFLICT (body) DO NOTHING")

	mock.ExpectExec(query).WithArgs("hello", sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(query).WithArgs("hello", sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 0))

	created, err := repo.InsertIgnoreConflict(context.Background(), note{Body: "hello"}, "body")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.InsertIgnoreConflict(context.Background(), note{Body: "hello"}, "body")
	require.NoError(t, err)
	assert.False(t, created)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet(t *testing.T) {
	repo, mock := newRepository(t, constant.DriverPostgres)

	query := regexp.QuoteMeta("SELECT notes.id, notes.body, notes.created_at FROM notes  WHERE (id = $1)  LIMIT 1")
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectPrepare(query).
		ExpectQuery().
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "body", "created_at"}).AddRow(5, "hello", created))

	mock.ExpectPrepare(query).
		ExpectQuery().
		WithArgs(6).
		WillReturnRows(sqlmock.NewRows([]string{"id", "body", "created_at"}))

	got, found, err := repo.Get(context.Background(), dto.Eq("id", 5))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "hello", got.Body)
	assert.Equal(t, created, got.CreatedAt)

	_, found, err = repo.Get(context.Background(), dto.Eq("id", 6))
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllNewestFirst(t *testing.T) {
	repo, mock := newRepository(t, constant.DriverPostgres)

	query := regexp.QuoteMeta("SELECT notes.body FROM notes  ORDER BY created_at DESC, id DESC LIMIT $1")

	mock.ExpectPrepare(query).
		ExpectQuery().
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow("newer").AddRow("older"))

	notes, err := repo.GetAll(context.Background(), dto.Newest("created_at", 2), dto.FilterGroup{}, "body")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "newer", notes[0].Body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllEmpty(t *testing.T) {
	repo, mock := newRepository(t, constant.DriverSQLite)

	mock.ExpectPrepare(regexp.QuoteMeta("LIMIT ?")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id", "body", "created_at"}))

	notes, err := repo.GetAll(context.Background(), dto.Newest("id", 20), dto.FilterGroup{})
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestCount(t *testing.T) {
	repo, mock := newRepository(t, constant.DriverPostgres)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT COUNT(notes.id) FROM notes")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.Count(context.Background(), dto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	repo, mock := newRepository(t, constant.DriverPostgres)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE notes SET body = $1  WHERE (id = $2) ")).
		WithArgs("changed", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Update(context.Background(), map[string]any{"body": "changed"}, dto.Eq("id", 5))
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	_, err = repo.Update(context.Background(), map[string]any{"body": "changed"}, dto.FilterGroup{})
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert(t *testing.T) {
	repo, mock := newRepository(t, constant.DriverSQLite)

	query := regexp.QuoteMeta("INSERT INTO notes (body, created_at) VALUES (?, ?) ON CONFLICT (body) DO UPDATE SET created_at = EXCLUDED.created_at")

	mock.ExpectExec(query).WithArgs("logo", sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Upsert(context.Background(), note{Body: "logo"}, "body"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock := newRepository(t, constant.DriverPostgres)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM notes  WHERE (id = $1) ")).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Delete(context.Background(), dto.Eq("id", 5))
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	_, err = repo.Delete(context.Background(), dto.FilterGroup{})
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllTieDirection(t *testing.T) {
	repo, mock := newRepository(t, constant.DriverPostgres)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT notes.body FROM notes  ORDER BY body ASC, id DESC ")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow("a"))

	params := dto.QueryParams{SortBy: "body", SortDir: dto.SortDirAsc, TieDir: dto.SortDirDesc}

	notes, err := repo.GetAll(context.Background(), params, dto.FilterGroup{}, "body")
	require.NoError(t, err)
	assert.Len(t, notes, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
