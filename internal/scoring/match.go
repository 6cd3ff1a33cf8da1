package scoring

import "regexp"

// KeywordHit records how many times one keyword matched. Hits are kept in
// keyword-list order so downstream ranking has a stable tie-break instead of
// depending on map iteration order.
type KeywordHit struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// CountKeywordHits counts boundary-delimited occurrences of each keyword in
// normText, which must already be normalized. A match must be preceded by
// the start of the text or whitespace and followed by the end of the text or
// whitespace, so "ship" never matches inside "shipping". Multi-word phrases
// match as one contiguous unit including their internal spaces.
//
// Scanning is non-overlapping and left-to-right; a match consumes its
// trailing boundary character, so "deadline deadline deadline" counts two
// hits for "deadline", not three.
//
// Keywords with zero hits are omitted from the result. The total is the sum
// of all counts.
func CountKeywordHits(normText string, keywords []string) (int, []KeywordHit) {
	total := 0
	hits := []KeywordHit{} // non-nil so empty categories serialize as [] not null
	for _, kw := range keywords {
		kwNorm := Normalize(kw)
		if kwNorm == "" {
			continue
		}
		pattern := regexp.MustCompile(`(?:^|\s)` + regexp.QuoteMeta(kwNorm) + `(?:$|\s)`)
		n := len(pattern.FindAllStringIndex(normText, -1))
		if n > 0 {
			hits = append(hits, KeywordHit{Keyword: kw, Count: n})
			total += n
		}
	}
	return total, hits
}
