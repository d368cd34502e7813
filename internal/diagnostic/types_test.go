package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddAndMerge(t *testing.T) {
	d := &Diagnostics{}
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddInfo("empty_stack", "no annotations", "e", "")
	d.AddWarning("undeclared_attribute", "unknown attribute", "e", "pathh")
	assert.True(t, d.IsValid())
	assert.Equal(t, 2, d.Len())

	other := Diagnostics{}
	other.AddError("duplicate_type", "duplicate type A", "A", "")
	other.Add(Diagnostic{Severity: DiagnosticWarning, Code: "w"})

	d.Merge(other)

	assert.False(t, d.IsValid())
	assert.True(t, d.HasErrors())
	assert.Equal(t, 4, d.Len())

	all := d.All()
	require.Len(t, all, 4)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, DiagnosticInfo, all[3].Severity)

	require.Error(t, d.Error())
	assert.Equal(t, "[A]: [duplicate_type] duplicate type A", d.Error().Error())
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{
			name: "message only",
			diag: Diagnostic{Message: "model bundle is empty"},
			want: "model bundle is empty",
		},
		{
			name: "type and attribute",
			diag: Diagnostic{Code: "x", Message: "bad", Type: "GetMapping", Attribute: "path"},
			want: "[GetMapping] path: [x] bad",
		},
		{
			name: "suggestions",
			diag: Diagnostic{Message: "unknown", Attribute: "pth", Suggestions: []string{"path", "paths"}},
			want: "pth: unknown (did you mean path, paths?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestDiagnosticSeverity_String(t *testing.T) {
	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
