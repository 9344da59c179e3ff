package hh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDig(t *testing.T) {
	m := map[string]any{
		"a": map[string]any{
			"b": map[string]any{"c": 42.0},
		},
	}

	assert.Equal(t, 42.0, dig(m, "a", "b", "c"))
	assert.Nil(t, dig(m, "a", "missing"))
	assert.Nil(t, dig(m, "a", "b", "c", "deeper")) // scalar mid-path
	assert.Nil(t, dig(nil, "a"))
}

func TestField_EnvelopeUnwrap(t *testing.T) {
	state := PageState{
		"resume": map[string]any{
			"title": map[string]any{"value": "Backend Engineer"},
		},
	}

	assert.Equal(t, "Backend Engineer", field(state, "title"))
	assert.Nil(t, field(state, "missing"))
}

func TestField_BareScalarTreatedAsAbsent(t *testing.T) {
	state := PageState{
		"resume": map[string]any{
			"title": "Backend Engineer", // no {value} envelope
		},
	}

	assert.Nil(t, field(state, "title"))
}

func TestTitleOrString(t *testing.T) {
	assert.Equal(t, "RUB", titleOrString(map[string]any{"title": "RUB"}))
	assert.Equal(t, "RUB", titleOrString("RUB"))
	assert.Equal(t, 5.0, titleOrString(5.0))
	assert.Equal(t, map[string]any{"name": "x"}, titleOrString(map[string]any{"name": "x"}))
}

func TestIntval(t *testing.T) {
	assert.Equal(t, 7, intval(7.0))
	assert.Equal(t, 7, intval(7))
	assert.Equal(t, 0, intval("7"))
	assert.Equal(t, 0, intval(nil))
}

func TestMapSection_RecoversToEmpty(t *testing.T) {
	out := mapSection(func() map[string]any {
		panic("schema drift")
	})

	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestMapSection_NilBecomesEmpty(t *testing.T) {
	out := mapSection(func() map[string]any { return nil })
	assert.NotNil(t, out)
}

func TestListSection_RecoversToEmpty(t *testing.T) {
	out := listSection(func() []SkillEntry {
		var skills []any
		_ = skills[3] // index fault
		return nil
	})

	assert.NotNil(t, out)
	assert.Empty(t, out)
}
