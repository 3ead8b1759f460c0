package negotiate_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/switchbacklabs/switchback/http/negotiate"
)

func TestAutoneg(t *testing.T) {
	candidates := []string{"text/html", "application/json"}

	tcs := []struct {
		name       string
		candidates []string
		accept     string
		expected   string
	}{
		{"Exact", candidates, "application/json", "application/json"},
		{"Quality-Ordered", candidates, "text/html;q=0.2, application/json", "application/json"},
		{"Wildcard-First-Candidate", candidates, "*/*", "text/html"},
		{"Subtype-Wildcard", []string{"application/json", "text/plain"}, "text/*", "text/plain"},
		{"Specificity-Beats-Range", []string{"text/html", "text/plain"}, "text/*, text/plain", "text/plain"},
		{"No-Acceptable", candidates, "image/png", ""},
		{"Absent-Header", candidates, "", ""},
		{"No-Candidates", nil, "application/json", ""},
		{"Malformed-Skipped", candidates, "gibberish, ;;;, application/json", "application/json"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			actual := negotiate.Autoneg().BestMatch(tc.candidates, tc.accept)
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestMatcherFunc(t *testing.T) {
	var gotCandidates []string
	var gotAccept string
	m := negotiate.MatcherFunc(func(candidates []string, accept string) string {
		gotCandidates = candidates
		gotAccept = accept
		return "text/html"
	})

	actual := m.BestMatch([]string{"text/html"}, "text/html")

	require.Equal(t, "text/html", actual)
	require.Equal(t, []string{"text/html"}, gotCandidates)
	require.Equal(t, "text/html", gotAccept)
}
