package domain

// FieldTypeUnknown is the placeholder type assigned to every extracted field.
// Types are never inferred from sample data; the model is asked to reason
// about them instead.
const FieldTypeUnknown = "unknown"

// Field describes a single column of an uploaded sample.
type Field struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Schema is the placeholder schema derived from an uploaded sample file.
type Schema struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Extraction is the result of parsing an uploaded sample file: a
// pretty-printed schema, the re-serialized sample preview, and the raw
// field list.
type Extraction struct {
	SchemaText string  `json:"schema_text"`
	SampleText string  `json:"sample_text"`
	Fields     []Field `json:"fields"`
}
