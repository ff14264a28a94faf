package schemas

import _ "embed"

// ConfigSchema is the JSON Schema for the scoring/output configuration file.
//
//go:embed config.schema.json
var ConfigSchema string

// SummarySchema is the JSON Schema for the conversion-summary.json artifact.
//
//go:embed conversion_summary.schema.json
var SummarySchema string
