package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldYear      = "year"
	FieldInput     = "input"
	FieldOutput    = "output"
	FieldResults   = "results"
	FieldSkipped   = "skipped"
	FieldError     = "error"
)

// Components
const (
	ComponentApp       = "app"
	ComponentAggregate = "aggregate"
	ComponentOutput    = "output"
)
