package services

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SampleSite/SampleSite-Backend/src/config"
	"github.com/SampleSite/SampleSite-Backend/src/db"
	"github.com/SampleSite/SampleSite-Backend/src/models"
	"github.com/SampleSite/SampleSite-Backend/src/validation"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	database, err := db.Connect(config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"}, log)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(database))
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return database
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	database, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)
	return database, mock
}

func TestRecordServiceCreateThenGet(t *testing.T) {
	ctx := context.Background()
	service := NewRecordService(newTestDB(t), models.LocationDetailSchema)

	submitted := &models.LocationDetailModel{Name: "Alice", Address: "1 Main St", City: "Springfield"}
	id, err := service.Create(ctx, submitted)
	require.NoError(t, err)
	assert.Positive(t, id)
	assert.Equal(t, id, submitted.Id)

	loaded, err := service.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, submitted, loaded)
	assert.Equal(t, "Springfield", loaded.String())
}

func TestRecordServiceAssignsDistinctIDs(t *testing.T) {
	ctx := context.Background()
	service := NewRecordService(newTestDB(t), models.EntitySchema)

	first, err := service.Create(ctx, &models.EntityModel{Title: "one", Description: "first"})
	require.NoError(t, err)
	second, err := service.Create(ctx, &models.EntityModel{Title: "two", Description: "second"})
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	loaded, err := service.Get(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "two", loaded.Title)
	assert.Equal(t, "second", loaded.Description)
}

func TestRecordServiceGetNotFound(t *testing.T) {
	service := NewRecordService(newTestDB(t), models.EntitySchema)

	record, err := service.Get(context.Background(), 404)
	assert.Nil(t, record)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordServiceCreateRejectsInvalidRecord(t *testing.T) {
	database := newTestDB(t)
	service := NewRecordService(database, models.LocationDetailSchema)

	_, err := service.Create(context.Background(), &models.LocationDetailModel{
		Name:    "Alice",
		Address: "1 Main St",
		City:    strings.Repeat("c", 21),
	})
	assert.ErrorIs(t, err, ErrConstraintViolation)
	assert.ErrorIs(t, err, validation.ErrInvalid)

	var count int64
	require.NoError(t, database.Model(&models.LocationDetailModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRecordServiceCreateOnPostgres(t *testing.T) {
	database, mock := newMockDB(t)
	service := NewRecordService(database, models.LocationDetailSchema)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "location_details"`)).
		WithArgs("Alice", "1 Main St", "Springfield").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	id, err := service.Create(context.Background(),
		&models.LocationDetailModel{Name: "Alice", Address: "1 Main St", City: "Springfield"})
	require.NoError(t, err)
	assert.Equal(t, 7, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordServiceCreateMapsDatabaseConstraintErrors(t *testing.T) {
	cases := []struct {
		name       string
		dbErr      error
		constraint bool
	}{
		{name: "string truncation", dbErr: &pgconn.PgError{Code: "22001", Message: "value too long"}, constraint: true},
		{name: "not null", dbErr: &pgconn.PgError{Code: "23502", Message: "null value"}, constraint: true},
		{name: "connection failure", dbErr: errors.New("connection reset by peer"), constraint: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			database, mock := newMockDB(t)
			service := NewRecordService(database, models.EntitySchema)

			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "entities"`)).WillReturnError(tc.dbErr)
			mock.ExpectRollback()

			_, err := service.Create(context.Background(), &models.EntityModel{Title: "t", Description: "d"})
			require.Error(t, err)
			assert.Equal(t, tc.constraint, errors.Is(err, ErrConstraintViolation))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
