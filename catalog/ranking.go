package catalog

import (
	"sort"
	"strings"

	"github.com/facette/natsort"
)

// classification scores for evidence ranking. higher means the document is
// shown earlier on the page. unknown classifications score 10.
var classificationScores = map[string]int{
	// direct connection
	"Flight Logs":           100,
	"Flight Manifest":       100,
	"Little Black Book":     95,
	"Black Book":            95,
	"Contact Book":          95,
	"Handwritten Notes":     92,
	"Personal Calendar":     90,
	"Appointment Book":      90,
	"Text Messages":         90,
	"Direct Communications": 90,
	"Island Records":        90,

	// named directly
	"Email":               80,
	"Emails":              80,
	"Deposition":          75,
	"Depositions":         75,
	"Testimony":           75,
	"Contact Information": 70,
	"Financial Records":   65,
	"Bank Statement":      65,
	"Financial Document":  65,
	"Phone Records":       60,

	// mentioned
	"News Article":          50,
	"News Articles":         50,
	"Article":               45,
	"Court Filing":          40,
	"Legal Document":        35,
	"Court Document":        35,
	"Third-Party Testimony": 30,
	"Reference":             25,
	"Mention":               20,

	"Document": 10,
	"Unknown":  5,
}

// snippet keywords that bump a document's score, 3 points each, capped at 15
var boostKeywords = []string{
	"flight", "flew", "island", "massage", "met with", "visited",
	"guest", "pilot", "passenger", "lolita express", "little st james",
	"new mexico", "palm beach", "manhattan", "residence", "private",
}

func classificationScore(classification string) int {
	if score, ok := classificationScores[classification]; ok {
		return score
	}
	return 10
}

// RankScore computes the display priority for one document.
func RankScore(doc *DocumentEvidence) int {
	score := float64(classificationScore(doc.Classification))

	if doc.MatchCount > 1 {
		boost := doc.MatchCount * 2
		if boost > 10 {
			boost = 10
		}
		score += float64(boost)
	}

	if len(doc.Matches) > 0 {
		var b strings.Builder
		for _, m := range doc.Matches {
			b.WriteString(strings.ToLower(m.Snippet))
			b.WriteByte(' ')
		}
		snippets := b.String()

		keywordBoost := 0
		for _, kw := range boostKeywords {
			if strings.Contains(snippets, kw) {
				keywordBoost += 3
			}
		}
		if keywordBoost > 15 {
			keywordBoost = 15
		}
		score += float64(keywordBoost)
	}

	if doc.VerificationStatus == "UNVERIFIED" {
		score *= 0.95
	}

	return int(score + 0.5)
}

// RankTier buckets a classification into tier 1 (direct connection), 2
// (named directly) or 3 (mentioned).
func RankTier(classification string) int {
	score := classificationScore(classification)
	switch {
	case score >= 90:
		return 1
	case score >= 60:
		return 2
	default:
		return 3
	}
}

// TierLabel is the human-readable name for a rank tier.
func TierLabel(tier int) string {
	switch tier {
	case 1:
		return "Direct Connection"
	case 2:
		return "Named Directly"
	case 3:
		return "Mentioned"
	default:
		return "Reference"
	}
}

// RankDocuments sorts documents most-relevant first: score descending, then
// match count descending, then natural filename order so "doc-2.pdf" sorts
// before "doc-10.pdf". the input slice is not modified.
func RankDocuments(docs []DocumentEvidence) []DocumentEvidence {
	if len(docs) == 0 {
		return nil
	}

	ranked := make([]DocumentEvidence, len(docs))
	copy(ranked, docs)

	scores := make(map[string]int, len(ranked))
	for i := range ranked {
		scores[ranked[i].Filename+"\x00"+ranked[i].SourceURL] = RankScore(&ranked[i])
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		sa := scores[ranked[a].Filename+"\x00"+ranked[a].SourceURL]
		sb := scores[ranked[b].Filename+"\x00"+ranked[b].SourceURL]
		if sa != sb {
			return sa > sb
		}
		if ranked[a].MatchCount != ranked[b].MatchCount {
			return ranked[a].MatchCount > ranked[b].MatchCount
		}
		return natsort.Compare(ranked[a].Filename, ranked[b].Filename)
	})

	return ranked
}
