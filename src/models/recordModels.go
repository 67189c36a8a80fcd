package models

// Kind names a record kind stored by the site.
type Kind string

const (
	KindEntity         Kind = "entity"
	KindLocationDetail Kind = "location_detail"
)

// Record is implemented by every persisted record kind.
type Record interface {
	RecordID() int
	// Values returns the record's form fields keyed by field name.
	Values() map[string]string
	String() string
}

// Field describes one form field of a record kind.
type Field struct {
	Name      string
	Label     string
	MaxLength int // 0 means unbounded
	Multiline bool
}

// Schema is the explicit description of a record kind: its fields and how
// to build a typed record from submitted values.
type Schema[T Record] struct {
	Kind   Kind
	Title  string
	Fields []Field
	Build  func(values map[string]string) T
}

// FieldNames returns the schema's field names in form order.
func (s Schema[T]) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}
