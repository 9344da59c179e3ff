// Package schemas holds the JSON Schema describing the resume record shape.
package schemas

import _ "embed"

//go:embed resume_record.schema.json
var resumeRecordSchema string

// ResumeRecordSchema returns the JSON Schema for the canonical resume
// record.
func ResumeRecordSchema() string {
	return resumeRecordSchema
}
