//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a request body after it has been turned into JSON fields.
type Mutation func(m map[string]any)

// Set replaces a field, or removes it when value is nil.
func Set(key string, value any) Mutation {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

func Drop(key string) Mutation {
	return Set(key, nil)
}

// JSONBody renders v through its JSON tags so tests can send payloads the
// typed request structs cannot express.
func JSONBody(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	m := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, mutate := range muts {
		mutate(m)
	}
	return m
}
