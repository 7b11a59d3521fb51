package projects

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectColumns() []string {
	return []string{
		"id", "name", "budget", "status", "province", "city",
		"latitude", "longitude", "created_at", "updated_at",
	}
}

func projectRow(id int64, name string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(projectColumns()).
		AddRow(id, name, 1000.5, "planning", "Ontario", "Ottawa", 45.4, -75.7, now, now)
}

func setupRepo(t *testing.T) (*Repo, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return NewRepo(db), mock, db
}

func TestRepoCreate(t *testing.T) {
	repo, mock, db := setupRepo(t)
	defer db.Close()

	mock.ExpectQuery(`insert into projects`).
		WithArgs("Bridge", 1000.5, "planning", "Ontario", "Ottawa", 45.4, -75.7).
		WillReturnRows(projectRow(1, "Bridge"))

	p, err := repo.Create(context.Background(), NewProject{
		Name:      "Bridge",
		Budget:    1000.5,
		Status:    "planning",
		Province:  "Ontario",
		City:      "Ottawa",
		Latitude:  45.4,
		Longitude: -75.7,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "Bridge", p.Name)
	assert.False(t, p.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepoGet(t *testing.T) {
	repo, mock, db := setupRepo(t)
	defer db.Close()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`select .+ from projects`).
			WithArgs(int64(1)).
			WillReturnRows(projectRow(1, "Bridge"))

		p, err := repo.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Bridge", p.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`select .+ from projects`).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(context.Background(), 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRepoUpdate(t *testing.T) {
	repo, mock, db := setupRepo(t)
	defer db.Close()

	t.Run("updates mutable fields", func(t *testing.T) {
		mock.ExpectQuery(`update projects`).
			WithArgs(int64(1), "Renamed", 2000.0, "completed", "Quebec").
			WillReturnRows(projectRow(1, "Renamed"))

		p, err := repo.Update(context.Background(), 1, UpdateProject{
			Name: "Renamed", Budget: 2000, Status: "completed", Province: "Quebec",
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", p.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`update projects`).
			WithArgs(int64(99), "X", 1.0, "planning", "Ontario").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Update(context.Background(), 99, UpdateProject{
			Name: "X", Budget: 1, Status: "planning", Province: "Ontario",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRepoDelete(t *testing.T) {
	repo, mock, db := setupRepo(t)
	defer db.Close()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(`delete from projects`).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.Delete(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectExec(`delete from projects`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.Delete(context.Background(), 99)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepoStats(t *testing.T) {
	repo, mock, db := setupRepo(t)
	defer db.Close()

	mock.ExpectQuery(`select count`).
		WillReturnRows(sqlmock.NewRows([]string{"count", "sum", "avg"}).AddRow(int64(3), 6000.0, 2000.0))
	mock.ExpectQuery(`select status, count`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("planning", int64(2)).
			AddRow("completed", int64(1)))
	mock.ExpectQuery(`select province, count`).
		WillReturnRows(sqlmock.NewRows([]string{"province", "count"}).
			AddRow("Ontario", int64(3)))

	s, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), s.TotalProjects)
	assert.Equal(t, 6000.0, s.TotalBudget)
	assert.Equal(t, 2000.0, s.AverageBudget)
	assert.Equal(t, int64(2), s.ByStatus["planning"])
	assert.Equal(t, int64(3), s.ByProvince["Ontario"])
	require.NoError(t, mock.ExpectationsWereMet())
}
