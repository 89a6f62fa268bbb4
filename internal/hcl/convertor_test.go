package hcl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestConverter_ToGoValue(t *testing.T) {
	testCases := []struct {
		name     string
		input    cty.Value
		expected any
	}{
		{"null", cty.NullVal(cty.String), nil},
		{"string", cty.StringVal("ES2020"), "ES2020"},
		{"bool", cty.True, true},
		{"integer", cty.NumberIntVal(42), int64(42)},
		{"fraction", cty.NumberFloatVal(1.5), 1.5},
		{"empty tuple", cty.EmptyTupleVal, []any{}},
		{"list", cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")}), []any{"a", "b"}},
		{"set", cty.SetVal([]cty.Value{cty.StringVal("only")}), []any{"only"}},
		{"empty object", cty.EmptyObjectVal, map[string]any{}},
		{
			name: "nested object",
			input: cty.ObjectVal(map[string]cty.Value{
				"paths": cty.MapVal(map[string]cty.Value{
					"@/*": cty.TupleVal([]cty.Value{cty.StringVal("src/*")}),
				}),
			}),
			expected: map[string]any{"paths": map[string]any{"@/*": []any{"src/*"}}},
		},
	}

	c := NewConverter()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.ToGoValue(tc.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("converted value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConverter_ToGoValue_Unknown(t *testing.T) {
	_, err := NewConverter().ToGoValue(cty.UnknownVal(cty.String))
	assert.ErrorContains(t, err, "not known")
}

func TestConverter_ToOptions(t *testing.T) {
	c := NewConverter()

	opts, err := c.ToOptions(cty.NullVal(cty.DynamicPseudoType))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, opts)

	opts, err = c.ToOptions(cty.ObjectVal(map[string]cty.Value{"strict": cty.True}))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"strict": true}, opts)

	_, err = c.ToOptions(cty.StringVal("strict"))
	assert.ErrorContains(t, err, "compiler_options must be an object, got string")
}
