// Package schemas embeds the JSON Schemas shipped with the parser.
package schemas

import _ "embed"

// ResumeSchemaFile is the file name of the resume output schema
const ResumeSchemaFile = "resume.schema.json"

// ResumeSchema is the JSON Schema every parsed Resume conforms to
//
//go:embed resume.schema.json
var ResumeSchema []byte
