package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SampleSite/SampleSite-Backend/src/logger"
	"github.com/SampleSite/SampleSite-Backend/src/metrics"
	"github.com/SampleSite/SampleSite-Backend/src/models"
	"github.com/SampleSite/SampleSite-Backend/src/validation"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrConstraintViolation = errors.New("constraint violation")
)

// RecordStore persists and loads records of one kind.
type RecordStore[T models.Record] interface {
	Create(ctx context.Context, record T) (int, error)
	Get(ctx context.Context, id int) (T, error)
}

// RecordService is the gorm-backed RecordStore.
type RecordService[T models.Record] struct {
	db     *gorm.DB
	schema models.Schema[T]
}

// NewRecordService creates a new instance of RecordService for the schema's kind
func NewRecordService[T models.Record](db *gorm.DB, schema models.Schema[T]) *RecordService[T] {
	return &RecordService[T]{db: db, schema: schema}
}

// Create inserts the record and returns its assigned id
func (s *RecordService[T]) Create(ctx context.Context, record T) (int, error) {
	if errs := validation.Check(s.schema.Fields, record.Values()); errs != nil {
		return 0, fmt.Errorf("%w: %w", ErrConstraintViolation, &validation.ValidationError{Kind: s.schema.Kind, Fields: errs})
	}

	result := s.db.WithContext(ctx).Create(record)
	if result.Error != nil {
		if isConstraintError(result.Error) {
			return 0, fmt.Errorf("%w: %w", ErrConstraintViolation, result.Error)
		}
		return 0, result.Error
	}

	logger.FromContext(ctx).WithField("kind", s.schema.Kind).
		WithField("id", record.RecordID()).
		Info("record created")
	metrics.RecordCreated(string(s.schema.Kind))
	return record.RecordID(), nil
}

// Get retrieves a record by ID
func (s *RecordService[T]) Get(ctx context.Context, id int) (T, error) {
	record := s.schema.Build(nil)
	result := s.db.WithContext(ctx).First(record, id)
	if result.Error != nil {
		var zero T
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return zero, fmt.Errorf("%w: %s %d", ErrNotFound, s.schema.Kind, id)
		}
		return zero, result.Error
	}
	return record, nil
}

// isConstraintError reports integrity constraint violations (SQLSTATE class
// 23) and string truncation (22001).
func isConstraintError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "23") || pgErr.Code == "22001"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated)
}
