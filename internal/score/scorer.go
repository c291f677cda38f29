// Package score decides whether a headline is major enough to alert on.
//
// Scoring is deliberately dumb: case-insensitive substring matching
// against fixed keyword sets, weighted accumulation, and a threshold.
// An exclusion match short-circuits everything else. There is no
// stemming or tokenization; each distinct keyword that matches
// contributes independently, even when matches overlap.
package score

import "strings"

// Scorer computes impact scores for headlines against an immutable
// taxonomy. Construct one with NewScorer; the zero value is not usable.
type Scorer struct {
	tax     Taxonomy
	weights Weights
}

// NewScorer builds a Scorer over the given taxonomy and weights.
// Terms are uppercased once here so scoring never re-normalizes them.
func NewScorer(tax Taxonomy, w Weights) *Scorer {
	norm := Taxonomy{
		UrgencyTriggers: upperAll(tax.UrgencyTriggers),
		RecencyPhrases:  upperAll(tax.RecencyPhrases),
		Exclusions:      upperAll(tax.Exclusions),
		Categories:      make([]Category, len(tax.Categories)),
	}
	for i, cat := range tax.Categories {
		norm.Categories[i] = Category{
			Label:    cat.Label,
			Keywords: upperAll(cat.Keywords),
		}
	}
	return &Scorer{tax: norm, weights: w}
}

// Score returns the impact score for a title. Excluded and empty
// titles score 0.
func (s *Scorer) Score(title string) int {
	_, n := s.IsRelevant(title)
	return n
}

// IsRelevant reports whether a title clears the relevance threshold,
// along with its accumulated score. Any exclusion term match returns
// (false, 0) immediately, regardless of co-occurring keywords.
func (s *Scorer) IsRelevant(title string) (bool, int) {
	upper := strings.ToUpper(title)
	if strings.TrimSpace(upper) == "" {
		return false, 0
	}

	for _, term := range s.tax.Exclusions {
		if strings.Contains(upper, term) {
			return false, 0
		}
	}

	total := 0
	for _, trigger := range s.tax.UrgencyTriggers {
		if strings.Contains(upper, trigger) {
			total += s.weights.Urgency
		}
	}
	for _, cat := range s.tax.Categories {
		for _, kw := range cat.Keywords {
			if strings.Contains(upper, kw) {
				total += len(strings.Fields(kw)) * s.weights.KeywordWord
			}
		}
	}
	for _, phrase := range s.tax.RecencyPhrases {
		if strings.Contains(upper, phrase) {
			total += s.weights.Recency
		}
	}

	return total >= s.weights.Threshold, total
}

// IsUrgent reports whether the title contains any urgency trigger.
// Used downstream for severity tiering; exclusions do not apply here
// because excluded items never reach formatting.
func (s *Scorer) IsUrgent(title string) bool {
	upper := strings.ToUpper(title)
	for _, trigger := range s.tax.UrgencyTriggers {
		if strings.Contains(upper, trigger) {
			return true
		}
	}
	return false
}

// Categorize returns the label of the first category (in taxonomy
// order) with a keyword matching the title, or DefaultCategory.
func (s *Scorer) Categorize(title string) string {
	upper := strings.ToUpper(title)
	for _, cat := range s.tax.Categories {
		for _, kw := range cat.Keywords {
			if strings.Contains(upper, kw) {
				return cat.Label
			}
		}
	}
	return DefaultCategory
}

func upperAll(terms []string) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = strings.ToUpper(t)
	}
	return out
}
