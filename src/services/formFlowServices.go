package services

import (
	"context"
	"errors"

	"github.com/SampleSite/SampleSite-Backend/src/dtos"
	"github.com/SampleSite/SampleSite-Backend/src/logger"
	"github.com/SampleSite/SampleSite-Backend/src/metrics"
	"github.com/SampleSite/SampleSite-Backend/src/models"
	"github.com/SampleSite/SampleSite-Backend/src/validation"
)

// FlowState is the state a form request ends in.
type FlowState int

const (
	StateDisplay FlowState = iota
	StateSubmitted
)

func (s FlowState) String() string {
	switch s {
	case StateDisplay:
		return "display"
	case StateSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// FlowResult is what a form request produced: the form to render and, when
// the submission was stored, the new record.
type FlowResult[T models.Record] struct {
	State     FlowState
	Form      dtos.FormView
	Persisted bool
	ID        int
	Record    T
}

// FormFlowService drives display, validation and persistence of one record kind's form.
type FormFlowService[T models.Record] struct {
	store  RecordStore[T]
	schema models.Schema[T]
}

// NewFormFlowService creates a new instance of FormFlowService
func NewFormFlowService[T models.Record](store RecordStore[T], schema models.Schema[T]) *FormFlowService[T] {
	return &FormFlowService[T]{store: store, schema: schema}
}

// FieldNames returns the names of the fields a submission is read from
func (f *FormFlowService[T]) FieldNames() []string {
	return f.schema.FieldNames()
}

// Display returns an empty form. It never touches the store.
func (f *FormFlowService[T]) Display() *FlowResult[T] {
	return &FlowResult[T]{
		State: StateDisplay,
		Form:  f.emptyForm(),
	}
}

// Submit validates values and stores the record when they are valid. Invalid
// input is not an error: the result carries the bound form with per-field
// errors. Store failures are returned as errors.
func (f *FormFlowService[T]) Submit(ctx context.Context, values map[string]string) (*FlowResult[T], error) {
	kind := string(f.schema.Kind)
	log := logger.FromContext(ctx).WithField("kind", kind)

	record, err := validation.Validate(f.schema, values)
	if err != nil {
		var verr *validation.ValidationError
		if !errors.As(err, &verr) {
			return nil, err
		}
		metrics.RecordFormSubmission(kind, metrics.OutcomeInvalid)
		log.WithField("fields", len(verr.Fields)).Debug("form submission rejected")
		return &FlowResult[T]{
			State: StateSubmitted,
			Form:  dtos.NewFormView(f.schema.Title, f.schema.Fields, values, verr.Fields),
		}, nil
	}

	id, err := f.store.Create(ctx, record)
	if err != nil {
		metrics.RecordFormSubmission(kind, metrics.OutcomeError)
		return nil, err
	}

	metrics.RecordFormSubmission(kind, metrics.OutcomeValid)
	return &FlowResult[T]{
		State:     StateSubmitted,
		Form:      f.emptyForm(),
		Persisted: true,
		ID:        id,
		Record:    record,
	}, nil
}

func (f *FormFlowService[T]) emptyForm() dtos.FormView {
	return dtos.NewFormView(f.schema.Title, f.schema.Fields, nil, nil)
}
