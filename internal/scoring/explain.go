package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/rolecolor/internal/taxonomy"
)

// DefaultTopK is the number of top signal keywords surfaced in explanations.
const DefaultTopK = 5

// TopSignals returns the dominant category's strongest keywords: hits sorted
// by descending count (ties keep keyword-list order), truncated to topK.
func TopSignals(dist Distribution, hitMaps map[taxonomy.Category][]KeywordHit, topK int) []string {
	dom := dist.Dominant()

	hits := make([]KeywordHit, len(hitMaps[dom]))
	copy(hits, hitMaps[dom])
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Count > hits[j].Count
	})

	if topK > len(hits) {
		topK = len(hits)
	}
	keywords := make([]string, 0, topK)
	for _, h := range hits[:topK] {
		keywords = append(keywords, h.Keyword)
	}
	return keywords
}

// Explain produces a human-readable justification for the dominant category.
// When the dominant category has no keyword hits (e.g. empty input), the
// message states that the choice came from the overall distribution despite
// limited keyword evidence.
func Explain(dist Distribution, hitMaps map[taxonomy.Category][]KeywordHit, topK int) string {
	dom := dist.Dominant()
	keywords := TopSignals(dist, hitMaps, topK)

	if len(keywords) == 0 {
		return fmt.Sprintf(
			"Why this RoleColor:\nThe resume most strongly reflects a %s-type contributor based on the scoring distribution, but keyword evidence was limited in the provided text.\n",
			dom,
		)
	}

	return fmt.Sprintf(
		"Why this RoleColor:\nThe resume most strongly reflects a %s-type contributor.\n\nTop linguistic signals: %s\n",
		dom, strings.Join(keywords, ", "),
	)
}
