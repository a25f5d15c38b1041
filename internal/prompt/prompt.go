// Package prompt builds the natural-language instruction texts sent to the
// model service. Builders are pure string templating: inputs are embedded
// verbatim inside fenced code blocks with no escaping or validation, and the
// model is expected to tolerate arbitrary text inside the fences.
package prompt

// ComplianceHeader opens every compliance-check prompt.
const ComplianceHeader = "You are a data governance reviewer. " +
	"Determine whether the SQL query below complies with the data governance policy implied by the schema."

// ClassificationHeader opens every sensitivity-classification prompt.
const ClassificationHeader = "You are a data classification assistant. " +
	"Classify the sensitivity of each field in the schema below using the provided data sample."

// BuildCompliancePrompt returns the compliance-check prompt for the given
// schema and query texts.
func BuildCompliancePrompt(schema, query string) string {
	return ComplianceHeader + `

The schema describes field names, types, and PII flags. Treat any field marked as PII or obviously
containing personal data (names, emails, phone numbers, addresses, identifiers) as restricted.

Schema:
` + "```json\n" + schema + "\n```" + `

SQL query:
` + "```sql\n" + query + "\n```" + `

Answer with a clear verdict (COMPLIANT or NON-COMPLIANT) followed by a short explanation.
List each restricted field the query touches and why it is a problem. Use markdown formatting.`
}

// BuildClassificationPrompt returns the classification prompt for the given
// schema and sample texts.
func BuildClassificationPrompt(schema, sample string) string {
	return ClassificationHeader + `

For every field, assign one sensitivity level: PUBLIC, INTERNAL, CONFIDENTIAL, or PII.
Base the decision on both the field name and the sample values.

Schema:
` + "```json\n" + schema + "\n```" + `

Data sample:
` + "```\n" + sample + "\n```" + `

Return a markdown table with columns: field, sensitivity, reasoning.`
}
