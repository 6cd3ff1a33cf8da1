package scoring

import "github.com/jonathan/rolecolor/internal/taxonomy"

// Report is the full scoring output for one resume: the distribution, the
// dominant category, the explanation, and the evidence behind them. It is
// the document shape shared by the CLI JSON output and the HTTP API, and is
// described by schemas/score.schema.json.
type Report struct {
	Distribution Distribution                       `json:"distribution"`
	Dominant     taxonomy.Category                  `json:"dominant"`
	Explanation  string                             `json:"explanation"`
	TopSignals   []string                           `json:"top_signals,omitempty"`
	Hits         map[taxonomy.Category][]KeywordHit `json:"hits,omitempty"`
	Summary      string                             `json:"summary,omitempty"`
}

// Report scores text and assembles the complete report. topK bounds the
// top-signals list; values below 1 fall back to DefaultTopK.
func (s *Scorer) Report(text string, topK int) *Report {
	if topK < 1 {
		topK = DefaultTopK
	}

	dist, hitMaps := s.Score(text)
	return &Report{
		Distribution: dist,
		Dominant:     dist.Dominant(),
		Explanation:  Explain(dist, hitMaps, topK),
		TopSignals:   TopSignals(dist, hitMaps, topK),
		Hits:         hitMaps,
	}
}
