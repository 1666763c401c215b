package selector

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// MaxVisible caps how many matches are rendered at once.
const MaxVisible = 10

type Match struct {
	Label string
	Index int
	Score int
}

type labelSource []string

func (s labelSource) String(i int) string { return s[i] }

func (s labelSource) Len() int { return len(s) }

// Filter ranks candidates against query. An empty query keeps every
// candidate in its original order; otherwise non-matches are dropped and the
// rest are ordered by descending score, ties keeping candidate order.
func Filter(candidates []string, query string) []Match {
	if query == "" {
		out := make([]Match, len(candidates))
		for i, c := range candidates {
			out[i] = Match{Label: c, Index: i}
		}
		return out
	}
	found := fuzzy.FindFrom(query, labelSource(candidates))
	out := make([]Match, 0, len(found))
	for _, f := range found {
		out = append(out, Match{Label: candidates[f.Index], Index: f.Index, Score: f.Score})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Index < out[j].Index
	})
	return out
}

// StripAnnotation drops a trailing " (...)" annotation such as " (main)" or
// a project's " (/path)".
func StripAnnotation(label string) string {
	if !strings.HasSuffix(label, ")") {
		return label
	}
	if i := strings.Index(label, " ("); i >= 0 {
		return label[:i]
	}
	return label
}

// ExactMatch reports the first candidate whose stripped label equals query,
// ignoring case.
func ExactMatch(candidates []string, query string) (int, bool) {
	if query == "" {
		return -1, false
	}
	for i, c := range candidates {
		if strings.EqualFold(StripAnnotation(c), query) {
			return i, true
		}
	}
	return -1, false
}
