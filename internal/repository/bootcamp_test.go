package repository

import (
	"context"
	"net/url"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestBootcampRepository_ListCountsFilteredSet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBootcampRepository(db)

	// The count must see the same WHERE clause as the page fetch.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "bootcamps" WHERE average_cost <= \$1`).
		WithArgs("10000").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(57))

	mock.ExpectQuery(`SELECT .+ FROM "bootcamps" WHERE average_cost <= \$1 .* ORDER BY created_at DESC LIMIT \$2`).
		WithArgs("10000", 25).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Devworks Bootcamp").
			AddRow(2, "ModernTech Bootcamp"))

	mock.ExpectQuery(`SELECT .+ FROM "courses" WHERE .*"courses"\."bootcamp_id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "bootcamp_id", "title"}))

	values := url.Values{"average_cost[lte]": {"10000"}}
	bootcamps, meta, err := repo.List(context.Background(), values)
	require.NoError(t, err)

	assert.Len(t, bootcamps, 2)
	require.NotNil(t, meta.Next)
	assert.Equal(t, 2, meta.Next.Page)
	assert.Nil(t, meta.Prev)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// An unrecognized bracketed token must degrade into a harmless literal
// filter, never into a bind error that fails the whole request.
func TestBootcampRepository_ListUnknownTokenStillSucceeds(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBootcampRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "bootcamps" WHERE name = \$1`).
		WithArgs(`{"foo":"bar"}`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(`SELECT .+ FROM "bootcamps" WHERE name = \$1`).
		WithArgs(`{"foo":"bar"}`, 25).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	bootcamps, meta, err := repo.List(context.Background(), url.Values{"name[foo]": {"bar"}})
	require.NoError(t, err)
	assert.Empty(t, bootcamps)
	assert.Nil(t, meta.Next)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// careers is a jsonb string array; member-of-set must unnest it rather than
// compare the whole column against text.
func TestBootcampRepository_ListCareersInMatchesArrayElements(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBootcampRepository(db)

	clause := `EXISTS \(SELECT 1 FROM jsonb_array_elements_text\(careers\) AS elem\(value\) WHERE elem\.value IN \(\$1,\$2\)\)`

	mock.ExpectQuery(`SELECT count\(\*\) FROM "bootcamps" WHERE ` + clause).
		WithArgs("Web Development", "Data Science").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`SELECT .+ FROM "bootcamps" WHERE ` + clause).
		WithArgs("Web Development", "Data Science", 25).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Devworks Bootcamp"))

	mock.ExpectQuery(`SELECT .+ FROM "courses" WHERE .*"courses"\."bootcamp_id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "bootcamp_id", "title"}))

	values := url.Values{"careers[in]": {"Web Development,Data Science"}}
	bootcamps, _, err := repo.List(context.Background(), values)
	require.NoError(t, err)
	assert.Len(t, bootcamps, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBootcampRepository_DeleteCascadesToCourses(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBootcampRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "courses" SET "deleted_at"=.+ WHERE bootcamp_id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`UPDATE "bootcamps" SET "deleted_at"=.+ WHERE "bootcamps"\."id" = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBootcampRepository_DeleteMissingRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBootcampRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "courses" SET "deleted_at"=.+ WHERE bootcamp_id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE "bootcamps" SET "deleted_at"=.+ WHERE "bootcamps"\."id" = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBootcampRepository_WithinRadius(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBootcampRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM "bootcamps" WHERE \(\$1 \* acos\(`).
		WithArgs(3963.0, 42.34, -71.07, 42.34, 10.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Devworks Bootcamp"))

	bootcamps, err := repo.WithinRadius(context.Background(), 42.34, -71.07, 10)
	require.NoError(t, err)
	assert.Len(t, bootcamps, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBootcampRepository_UpdatePhotoMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBootcampRepository(db)

	mock.ExpectExec(`UPDATE "bootcamps" SET .*"photo"=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePhoto(context.Background(), 42, "Photo_42.jpg")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
