package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/rolecolor/internal/taxonomy"
)

// phraseBonusWeight is the extra credit per hit for multi-token keywords.
// Phrases carry more signal than single tokens.
const phraseBonusWeight = 1.2

// Distribution maps each category to its share of the total damped score.
// Values are non-negative and sum to 1 within floating rounding; when the
// text carries no keyword signal at all, every category gets a uniform 0.25.
type Distribution map[taxonomy.Category]float64

// Dominant returns the category with the highest share. Ties resolve to the
// first category in definition order.
func (d Distribution) Dominant() taxonomy.Category {
	best := taxonomy.Categories()[0]
	bestScore := math.Inf(-1)
	for _, cat := range taxonomy.Categories() {
		if d[cat] > bestScore {
			best = cat
			bestScore = d[cat]
		}
	}
	return best
}

// Scorer scores resume text against a RoleColor taxonomy. The zero value is
// not usable; construct with NewScorer.
type Scorer struct {
	taxonomy *taxonomy.Taxonomy
}

// NewScorer returns a Scorer over the given taxonomy, or over the built-in
// taxonomy when tax is nil.
func NewScorer(tax *taxonomy.Taxonomy) *Scorer {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Scorer{taxonomy: tax}
}

// Score turns raw resume text into a normalized score distribution plus the
// per-category keyword hits used for explainability. It is a pure function
// of its input: identical text yields bit-identical distributions.
func (s *Scorer) Score(text string) (Distribution, map[taxonomy.Category][]KeywordHit) {
	textNorm := Normalize(text)

	damped := make(map[taxonomy.Category]float64, 4)
	hitMaps := make(map[taxonomy.Category][]KeywordHit, 4)

	for _, cat := range taxonomy.Categories() {
		count, hits := CountKeywordHits(textNorm, s.taxonomy.Keywords(cat))

		phraseBonus := 0.0
		for _, h := range hits {
			if isPhrase(h.Keyword) {
				phraseBonus += phraseBonusWeight * float64(h.Count)
			}
		}
		rawScore := float64(count) + phraseBonus

		// Dampen keyword stuffing: going from 1 to 2 hits matters more
		// than going from 10 to 11.
		damped[cat] = math.Log1p(rawScore)
		hitMaps[cat] = hits
	}

	total := 0.0
	for _, v := range damped {
		total += v
	}

	dist := make(Distribution, 4)
	if total == 0 {
		for _, cat := range taxonomy.Categories() {
			dist[cat] = 0.25
		}
	} else {
		for _, cat := range taxonomy.Categories() {
			dist[cat] = round3(damped[cat] / total)
		}
	}

	return dist, hitMaps
}

// isPhrase reports whether a keyword is a multi-token phrase: an internal
// space, an ASCII "->", or the arrow glyph.
func isPhrase(keyword string) bool {
	return strings.Contains(keyword, " ") ||
		strings.Contains(keyword, "->") ||
		strings.Contains(keyword, "→")
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
