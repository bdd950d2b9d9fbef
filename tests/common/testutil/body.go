//go:build unit || e2e

// Package testutil builds request bodies that deviate from a valid DTO in one field.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a decoded JSON body in place.
type Mutation func(body map[string]any)

// Field sets key to value, or removes key when value is nil.
func Field(key string, value any) Mutation {
	return func(body map[string]any) {
		if value == nil {
			delete(body, key)
			return
		}
		body[key] = value
	}
}

// DtoMap round-trips v through JSON so the result carries the wire field names, then applies muts.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, mutate := range muts {
		mutate(body)
	}
	return body
}
