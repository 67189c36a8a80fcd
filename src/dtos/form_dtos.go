package dtos

import "github.com/SampleSite/SampleSite-Backend/src/models"

// FieldView is the render state of one form field
type FieldView struct {
	Name      string
	Label     string
	Value     string
	MaxLength int
	Multiline bool
	Errors    []string
}

// FormView is the view model handed to the form template
type FormView struct {
	Title  string
	Fields []FieldView
}

// NewFormView builds the view model for a form. Nil values and errors give an
// empty, unbound form.
func NewFormView(title string, fields []models.Field, values map[string]string, errs map[string][]string) FormView {
	form := FormView{Title: title, Fields: make([]FieldView, 0, len(fields))}
	for _, f := range fields {
		form.Fields = append(form.Fields, FieldView{
			Name:      f.Name,
			Label:     f.Label,
			Value:     values[f.Name],
			MaxLength: f.MaxLength,
			Multiline: f.Multiline,
			Errors:    errs[f.Name],
		})
	}
	return form
}

// HasErrors reports whether any field carries an error
func (f FormView) HasErrors() bool {
	for _, field := range f.Fields {
		if len(field.Errors) > 0 {
			return true
		}
	}
	return false
}

// Field returns the named field
func (f FormView) Field(name string) (FieldView, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return FieldView{}, false
}
