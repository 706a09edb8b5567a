package log

const (
	// Process
	FieldComponent = "component"
	FieldCommand   = "command"

	// Generation
	FieldFormat   = "format"
	FieldCount    = "count"
	FieldParallel = "parallel"
	FieldLength   = "length"

	// Inspection
	FieldIDType = "id_type"
	FieldValid  = "valid"

	// Config
	FieldConfigFile = "config_file"
)
