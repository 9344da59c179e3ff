package schemas_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anton/hh-resume-extractor/internal/hh"
	validate "github.com/anton/hh-resume-extractor/internal/schemas"
	"github.com/anton/hh-resume-extractor/schemas"
)

func TestSchema_AcceptsEmptyRecord(t *testing.T) {
	data, err := json.Marshal(hh.EmptyRecord())
	require.NoError(t, err)

	assert.NoError(t, validate.ValidateJSONString(schemas.ResumeRecordSchema(), string(data)))
}

func TestSchema_AcceptsPopulatedRecord(t *testing.T) {
	state := hh.PageState{
		"resume": map[string]any{
			"title": map[string]any{"value": "Backend Engineer"},
			"keySkills": map[string]any{
				"value": []any{map[string]any{"string": "Go", "id": "1"}},
			},
			"experience": map[string]any{
				"value": []any{map[string]any{"companyName": "Яндекс", "position": "Developer"}},
			},
			"totalExperience": map[string]any{
				"value": map[string]any{"years": 5.0, "months": 3.0},
			},
			"language": map[string]any{
				"value": []any{map[string]any{"id": "en", "title": "Английский", "degree": "B2"}},
			},
			"primaryEducation": map[string]any{
				"value": []any{map[string]any{"name": "МГУ", "year": 2016.0}},
			},
		},
	}

	data, err := json.Marshal(hh.Extract(state, ""))
	require.NoError(t, err)

	assert.NoError(t, validate.ValidateJSONString(schemas.ResumeRecordSchema(), string(data)))
}

func TestSchema_RejectsMissingSection(t *testing.T) {
	data, err := json.Marshal(hh.EmptyRecord())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	delete(m, "skills")
	trimmed, err := json.Marshal(m)
	require.NoError(t, err)

	assert.Error(t, validate.ValidateJSONString(schemas.ResumeRecordSchema(), string(trimmed)))
}

func TestSchema_RejectsUnknownSection(t *testing.T) {
	data, err := json.Marshal(hh.EmptyRecord())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	m["extra_section"] = map[string]any{}
	extended, err := json.Marshal(m)
	require.NoError(t, err)

	assert.Error(t, validate.ValidateJSONString(schemas.ResumeRecordSchema(), string(extended)))
}
