package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSafeFloat(t *testing.T) {
	cases := []struct {
		name  string
		input any
		def   float64
		want  float64
	}{
		{"nil uses default", nil, 7, 7},
		{"float passes through", 3.5, 0, 3.5},
		{"int converts", 42, 0, 42},
		{"numeric string", "12.5", 0, 12.5},
		{"padded numeric string", " 8 ", 0, 8},
		{"json number", json.Number("99.5"), 0, 99.5},
		{"garbage string", "abc", 1, 1},
		{"negative allowed", -5.0, 0, -5},
		{"map uses default", map[string]any{}, 2, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, SafeFloat(tc.input, tc.def))
		})
	}
}

func TestSafeInt(t *testing.T) {
	require.Equal(t, 0, SafeInt(nil, 0))
	require.Equal(t, 3, SafeInt(nil, 3))
	require.Equal(t, 7, SafeInt("7.9", 0))
	require.Equal(t, 12, SafeInt(12.0, 0))
	require.Equal(t, -4, SafeInt("-4", 0))
	require.Equal(t, 5, SafeInt([]any{}, 5))
}

func TestStringify(t *testing.T) {
	require.Equal(t, "", Stringify(nil))
	require.Equal(t, "hello", Stringify("hello"))
	require.Equal(t, "101", Stringify(float64(101)))
	require.Equal(t, "101", Stringify(json.Number("101")))
	require.Equal(t, "1.5", Stringify(1.5))
}

func TestFirstStringPriorityOrder(t *testing.T) {
	raw := map[string]any{
		"student_name":     "secondary",
		"student_truename": "primary",
	}
	require.Equal(t, "primary", firstString(raw, "student_truename", "student_name", "name"))

	delete(raw, "student_truename")
	require.Equal(t, "secondary", firstString(raw, "student_truename", "student_name", "name"))

	require.Equal(t, "", firstString(map[string]any{"name": ""}, "name"))
}
