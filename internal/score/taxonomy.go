package score

// Taxonomy holds the keyword sets the scorer matches against. All matching
// is case-insensitive substring search; terms are normalized to uppercase
// when a Scorer is constructed, so the lists here can be written naturally.
//
// The sets are plain data so tests and config files can substitute
// alternate taxonomies without touching the scoring mechanism.
type Taxonomy struct {
	// UrgencyTriggers mark a headline as breaking on their own.
	UrgencyTriggers []string `json:"urgency_triggers"`

	// Categories are ordered; the first category with a matching
	// keyword provides the item's label.
	Categories []Category `json:"categories"`

	// RecencyPhrases add a small bonus for freshness wording.
	RecencyPhrases []string `json:"recency_phrases"`

	// Exclusions disqualify a headline outright, before any scoring.
	Exclusions []string `json:"exclusions"`
}

// Category is a labeled group of topic keywords.
type Category struct {
	Label    string   `json:"label"`
	Keywords []string `json:"keywords"`
}

// Weights holds the scoring parameters.
type Weights struct {
	// Urgency is the score contributed by each urgency trigger match.
	// It must clear Threshold on its own.
	Urgency int `json:"urgency"`

	// KeywordWord is the score contributed per word of each matching
	// topic keyword, so longer phrases score higher.
	KeywordWord int `json:"keyword_word"`

	// Recency is the bonus for each matching recency phrase.
	Recency int `json:"recency"`

	// Threshold is the minimum score for a headline to be relevant.
	Threshold int `json:"threshold"`
}

// DefaultWeights returns the standard scoring parameters.
func DefaultWeights() Weights {
	return Weights{
		Urgency:     100,
		KeywordWord: 10,
		Recency:     5,
		Threshold:   30,
	}
}

// DefaultCategory labels items whose title matches no category keyword.
const DefaultCategory = "Market News"

// DefaultTaxonomy returns the curated keyword sets for ES/NQ futures
// watching. Organized by category for transparency - you see exactly
// what the bot is listening for.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		UrgencyTriggers: []string{
			"BREAKING", "URGENT", "ALERT", "HALT", "FLASH",
		},

		Categories: []Category{
			{
				Label: "Macro",
				Keywords: []string{
					"FOMC", "FED RATE", "FEDERAL RESERVE", "INTEREST RATE",
					"INFLATION", "CPI", "PPI",
					"NFP", "NONFARM PAYROLLS", "JOBS REPORT", "UNEMPLOYMENT",
					"YIELD CURVE", "RECESSION", "MARKET CRASH",
				},
			},
			{
				Label: "Policy",
				Keywords: []string{
					"TAX CUT", "DEREGULATION", "GOVERNMENT SHUTDOWN",
					"MIDTERM ELECTION", "SUPREME COURT TARIFF", "USMCA",
				},
			},
			{
				Label: "Tech & AI",
				Keywords: []string{
					"AI MONETIZATION", "SEMICONDUCTOR TARIFF",
					"QUANTUM COMPUTING", "SOVEREIGN AI", "HYPERSCALER CAPEX",
				},
			},
			{
				Label: "Geopolitics & Energy",
				Keywords: []string{
					"CRUDE OIL", "OIL PRICE", "OPEC+", "TAIWAN STRAIT",
					"TRADE WAR", "CHINA EXPORT BAN", "LITHIUM SUPPLY",
				},
			},
		},

		RecencyPhrases: []string{
			"JUST IN", "DEVELOPING", "LIVE UPDATES",
		},

		Exclusions: []string{
			"WEATHER", "SPORTS", "CELEBRITY", "HOROSCOPE", "LOTTERY",
			"ROYAL FAMILY", "SPONSORED", "GIVEAWAY",
		},
	}
}
