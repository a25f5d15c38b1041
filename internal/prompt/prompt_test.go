package prompt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"datawarden/internal/prompt"
)

func TestBuildCompliancePrompt_ContainsInputsVerbatim(t *testing.T) {
	schema := `{"fields":[{"name":"email","type":"string","pii":true}]}`
	query := "SELECT email, ssn FROM users WHERE id = 'weird -- \"input\"'"

	out := prompt.BuildCompliancePrompt(schema, query)

	assert.Contains(t, out, schema)
	assert.Contains(t, out, query)
	assert.Contains(t, out, prompt.ComplianceHeader)
}

func TestBuildCompliancePrompt_Deterministic(t *testing.T) {
	first := prompt.BuildCompliancePrompt("schema text", "query text")
	second := prompt.BuildCompliancePrompt("schema text", "query text")

	assert.Equal(t, first, second)
}

func TestBuildClassificationPrompt_ContainsInputsVerbatim(t *testing.T) {
	schema := `{"name":"users.csv","fields":[{"name":"email","type":"unknown"}]}`
	sample := "email,phone\nalice@example.com,555-0100"

	out := prompt.BuildClassificationPrompt(schema, sample)

	assert.Contains(t, out, schema)
	assert.Contains(t, out, sample)
	assert.Contains(t, out, prompt.ClassificationHeader)
}

func TestBuildClassificationPrompt_NoEscaping(t *testing.T) {
	// Inputs go into the fences verbatim, even when they contain fence-like text.
	sample := "value\n```\nnested fence\n```"

	out := prompt.BuildClassificationPrompt("{}", sample)

	assert.Contains(t, out, sample)
}
