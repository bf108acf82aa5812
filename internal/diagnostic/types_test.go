package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics

	assert.NoError(t, d.Error())
	assert.False(t, d.HasErrors())

	d.AddWarning("text_fielddata", "fielddata on text fields is memory hungry", "mapping", "properties.body")
	assert.NoError(t, d.Error(), "warnings alone are not errors")

	d.AddError("unresolved_alias", "alias path does not resolve", "mapping", "properties.a", "user.name")
	d.AddError("duplicate_field", `field "index" already declared by NumberPropertyBase`, "ScaledFloatNumberProperty", "")

	require.Error(t, d.Error())
	assert.Equal(t,
		`[mapping] properties.a: [unresolved_alias] alias path does not resolve (did you mean "user.name"?); `+
			`[ScaledFloatNumberProperty]: [duplicate_field] field "index" already declared by NumberPropertyBase`,
		d.Error().Error())
	assert.Equal(t, []string{"unresolved_alias", "duplicate_field"}, d.Codes())
}

func TestDiagnostics_MergeAndAll(t *testing.T) {
	var a, b Diagnostics

	a.AddError("b_code", "second", "", "z")
	a.AddInfo("note", "just saying", "", "")
	b.AddError("a_code", "first", "", "a")
	b.AddWarning("warn", "careful", "", "m")

	a.Merge(b)

	all := a.All()
	require.Len(t, all, 4)
	assert.Equal(t, "a_code", all[0].Code)
	assert.Equal(t, "b_code", all[1].Code)
	assert.Equal(t, SeverityWarning, all[2].Severity)
	assert.Equal(t, SeverityInfo, all[3].Severity)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
