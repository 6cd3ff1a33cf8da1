package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scoreSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["distribution", "dominant", "explanation"],
	"properties": {
		"distribution": {"type": "object"},
		"dominant": {"type": "string", "enum": ["Builder", "Thriver", "Enabler", "Supportee"]},
		"explanation": {"type": "string"}
	}
}`

const validReport = `{
	"distribution": {"Builder": 0.457, "Thriver": 0.543, "Enabler": 0, "Supportee": 0},
	"dominant": "Thriver",
	"explanation": "Why this RoleColor: ..."
}`

func TestValidateJSONString_ValidDocument(t *testing.T) {
	assert.NoError(t, ValidateJSONString(scoreSchema, validReport))
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	doc := `{"distribution": {}, "dominant": "Thriver"}`

	err := ValidateJSONString(scoreSchema, doc)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "explanation")
}

func TestValidateJSONString_InvalidEnumValue(t *testing.T) {
	doc := `{
		"distribution": {},
		"dominant": "Dreamer",
		"explanation": "text"
	}`

	err := ValidateJSONString(scoreSchema, doc)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{ not json`, validReport)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateJSON_Files(t *testing.T) {
	tmpDir := t.TempDir()
	schemaPath := filepath.Join(tmpDir, "schema.json")
	docPath := filepath.Join(tmpDir, "doc.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(scoreSchema), 0644))
	require.NoError(t, os.WriteFile(docPath, []byte(validReport), 0644))

	assert.NoError(t, ValidateJSON(schemaPath, docPath))
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	tmpDir := t.TempDir()
	schemaPath := filepath.Join(tmpDir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(scoreSchema), 0644))

	assert.Error(t, ValidateJSON(schemaPath, filepath.Join(tmpDir, "missing.json")))
	assert.Error(t, ValidateJSON(filepath.Join(tmpDir, "nope.json"), schemaPath))
}

func TestResolveSchemaPath_Missing(t *testing.T) {
	assert.Equal(t, "", ResolveSchemaPath("schemas/does-not-exist.schema.json"))
}
