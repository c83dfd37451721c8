package testutil

import (
	"encoding/json"
	"testing"

	"github.com/specialistvlad/dcorder/internal/report"
	"github.com/stretchr/testify/require"
)

// DecodePlan parses a JSON plan report.
func DecodePlan(t *testing.T, stdout string) report.Document {
	t.Helper()
	var doc report.Document
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc), "stdout must be a JSON plan:\n%s", stdout)
	return doc
}

// OrderedComponents returns the identifiers of the build order, in order.
func OrderedComponents(doc report.Document) []string {
	out := make([]string, 0, len(doc.Order))
	for _, step := range doc.Order {
		out = append(out, step.Component)
	}
	return out
}

// Position returns the index of id in the build order, or -1.
func Position(doc report.Document, id string) int {
	for i, step := range doc.Order {
		if step.Component == id {
			return i
		}
	}
	return -1
}
