// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package social

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// toHashtag joins the words of s into a single CamelCase hashtag, dropping
// anything that is not a letter or digit. It returns "" when nothing
// usable remains.
func toHashtag(s string) string {
	// A Caser carries state, so each call gets its own.
	caser := cases.Title(language.English)
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(caser.String(w))
	}
	if b.Len() == 0 {
		return ""
	}
	return "#" + b.String()
}

// words splits s on anything that is not a letter or digit.
func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// hashtagPool orders candidate hashtags for a campaign: the campaign tag,
// then the tone register, then tags made from salient terms. Duplicates are
// dropped case-insensitively.
func hashtagPool(campaign string, register, terms []string) []string {
	var pool []string
	seen := make(map[string]bool)
	add := func(tag string) {
		key := strings.ToLower(tag)
		if tag == "" || seen[key] {
			return
		}
		seen[key] = true
		pool = append(pool, tag)
	}
	add(toHashtag(campaign))
	for _, tag := range register {
		add(tag)
	}
	for _, term := range terms {
		add(toHashtag(term))
	}
	return pool
}

// firstN returns up to n leading elements of s.
func firstN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
