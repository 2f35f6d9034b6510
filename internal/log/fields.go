package log

// Common field names for structured logging
const (
	FieldComponent       = "component"
	FieldOperation       = "operation"
	FieldError           = "error"
	FieldErrorType       = "error_type"
	FieldEntryID         = "entry_id"
	FieldDate            = "date"
	FieldCategory        = "category"
	FieldDurationMinutes = "duration_minutes"
	FieldCount           = "count"
	FieldPath            = "path"
	FieldView            = "view"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentTracker  = "tracker"
	ComponentStorage  = "storage"
	ComponentAnalysis = "analysis"
	ComponentTUI      = "tui"
	ComponentSeed     = "seed"
)

// Operations defines standard operation names
const (
	OpAppend   = "append"
	OpList     = "list"
	OpAnalyze  = "analyze"
	OpValidate = "validate"
	OpSeed     = "seed"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeDatabase      = "database_error"
)
