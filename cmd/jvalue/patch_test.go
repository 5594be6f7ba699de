package main

import (
	"testing"

	"github.com/KimNorgaard/go-jvalue"
	"github.com/stretchr/testify/require"
)

func TestApplyPatch(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		patch string
		merge bool
		want  string
	}{
		{
			name:  "add and remove",
			doc:   `{"a": 1, "b": [1, 2]}`,
			patch: `[{"op": "add", "path": "/c", "value": "x"}, {"op": "remove", "path": "/b/0"}]`,
			want:  `{"a": 1, "b": [2], "c": "x"}`,
		},
		{
			name:  "replace",
			doc:   `{"a": {"b": null}}`,
			patch: `[{"op": "replace", "path": "/a/b", "value": [true]}]`,
			want:  `{"a": {"b": [true]}}`,
		},
		{
			name:  "merge",
			doc:   `{"a": 1, "b": {"c": 2, "d": 3}}`,
			patch: `{"a": null, "b": {"c": 4}}`,
			merge: true,
			want:  `{"b": {"c": 4, "d": 3}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := applyPatch(jvalue.MustParse(tt.doc), jvalue.MustParse(tt.patch), tt.merge)
			require.NoError(t, err)
			require.True(t, jvalue.Compare(jvalue.MustParse(tt.want), got, true), "got %s", got)
		})
	}
}

func TestApplyPatch_Errors(t *testing.T) {
	doc := jvalue.MustParse(`{"a": 1}`)

	_, err := applyPatch(doc, jvalue.MustParse(`{"op": "add"}`), false)
	require.Error(t, err)

	_, err = applyPatch(doc, jvalue.MustParse(`[{"op": "remove", "path": "/missing"}]`), false)
	require.Error(t, err)

	_, err = applyPatch(doc, jvalue.MustParse(`[{"op": "test", "path": "/a", "value": 2}]`), false)
	require.Error(t, err)
}
