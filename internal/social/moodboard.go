// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package social

import (
	"strings"
	"unicode/utf8"
)

// minTermLength is the shortest word, in runes, treated as salient.
const minTermLength = 4

// stopwords are common words that never make a useful moodboard term.
var stopwords = map[string]bool{
	"about": true, "after": true, "again": true, "also": true, "been": true,
	"before": true, "being": true, "both": true, "could": true, "does": true,
	"each": true, "every": true, "from": true, "have": true, "here": true,
	"into": true, "just": true, "know": true, "like": true, "made": true,
	"make": true, "more": true, "most": true, "much": true, "only": true,
	"other": true, "ours": true, "over": true, "really": true, "same": true,
	"should": true, "some": true, "such": true, "than": true, "that": true,
	"their": true, "them": true, "then": true, "there": true, "these": true,
	"they": true, "this": true, "those": true, "through": true, "very": true,
	"want": true, "were": true, "what": true, "when": true, "where": true,
	"which": true, "while": true, "will": true, "with": true, "would": true,
	"your": true, "yours": true,
}

// salientTerms extracts campaign-specific words from the campaign name and
// then the key message: lowercased, at least minTermLength runes, not a
// stopword, first occurrence wins.
func salientTerms(campaign, message string) []string {
	var terms []string
	seen := make(map[string]bool)
	for _, src := range []string{campaign, message} {
		for _, field := range strings.Fields(src) {
			// Contractions ("we're") are never salient.
			if strings.ContainsAny(field, "'’") {
				continue
			}
			for _, w := range words(field) {
				w = strings.ToLower(w)
				if utf8.RuneCountInString(w) < minTermLength || stopwords[w] || seen[w] {
					continue
				}
				seen[w] = true
				terms = append(terms, w)
			}
		}
	}
	return terms
}

// moodboard merges campaign terms with the tone's keyword register,
// deduplicated case-insensitively and capped at limit. Campaign terms take
// at most half the board so the tone always shows; leftover room goes back
// to terms.
func moodboard(terms, keywords []string, limit int) []string {
	toneShare := min(len(keywords), limit/2)
	termShare := limit - toneShare

	out := make([]string, 0, limit)
	seen := make(map[string]bool)
	add := func(s string) {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] || len(out) >= limit {
			return
		}
		seen[key] = true
		out = append(out, s)
	}
	for _, t := range firstN(terms, termShare) {
		add(t)
	}
	for _, k := range keywords {
		add(k)
	}
	for _, t := range terms {
		add(t)
	}
	return out
}
