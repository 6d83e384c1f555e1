// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tmpl compiles and renders the phrase templates behind both
// generators. Templates use Liquid syntax and are parsed once, when the
// owning package initializes; rendering only binds values.
package tmpl

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/osteele/liquid"
)

// Bindings maps template variable names to values.
type Bindings = map[string]any

// Template is a compiled phrase template.
type Template struct {
	name string
	tpl  *liquid.Template
}

var engine = newEngine()

func newEngine() *liquid.Engine {
	e := liquid.NewEngine()

	// {{ objective | sentence }} appends a period unless the text already
	// ends in terminal punctuation.
	e.RegisterFilter("sentence", Sentence)

	// {{ recipient | fallback: "there" }} substitutes for blank values.
	e.RegisterFilter("fallback", func(value any, alt string) string {
		s := strings.TrimSpace(fmt.Sprint(value))
		if value == nil || s == "" {
			return alt
		}
		return s
	})

	// {{ objective | lowerfirst }} lowercases a leading common verb so the
	// objective can continue a sentence.
	e.RegisterFilter("lowerfirst", LowerFirst)

	// {{ subject | bare }} drops trailing sentence punctuation so the text
	// can sit mid-line.
	e.RegisterFilter("bare", Bare)

	return e
}

// Parse compiles src under name.
func Parse(name, src string) (*Template, error) {
	tpl, err := engine.ParseString(src)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	return &Template{name: name, tpl: tpl}, nil
}

// MustParse is like Parse but panics on error. Use it for templates that
// are compiled at package initialization.
func MustParse(name, src string) *Template {
	t, err := Parse(name, src)
	if err != nil {
		panic(err)
	}
	return t
}

// Render executes the template with b. Bound values are emitted as-is.
func (t *Template) Render(b Bindings) (string, error) {
	out, err := t.tpl.RenderString(b)
	if err != nil {
		return "", fmt.Errorf("rendering template %s: %w", t.name, err)
	}
	return out, nil
}

// Sentence returns s with a trailing period added when it does not already
// end in ".", "!", "?", or an ellipsis. Blank input stays blank.
func Sentence(s string) string {
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if s == "" {
		return s
	}
	switch {
	case strings.HasSuffix(s, "."), strings.HasSuffix(s, "!"),
		strings.HasSuffix(s, "?"), strings.HasSuffix(s, "…"):
		return s
	}
	return s + "."
}

// openers are verbs that commonly start an objective ("Align on ...",
// "Get sign-off ..."). Only these are lowercased when an objective continues
// a framing sentence.
var openers = map[string]bool{
	"agree": true, "align": true, "approve": true, "book": true, "bring": true,
	"build": true, "celebrate": true, "check": true, "choose": true,
	"clarify": true, "close": true, "collect": true, "complete": true,
	"confirm": true, "coordinate": true, "decide": true, "define": true,
	"discuss": true, "explore": true, "finalize": true, "find": true,
	"finish": true, "follow": true, "gather": true, "get": true,
	"introduce": true, "invite": true, "kick": true, "launch": true,
	"lock": true, "make": true, "map": true, "meet": true, "move": true,
	"outline": true, "pick": true, "plan": true, "prepare": true,
	"prioritize": true, "reach": true, "review": true, "revisit": true,
	"schedule": true, "secure": true, "set": true, "share": true,
	"ship": true, "start": true, "sync": true, "talk": true, "thank": true,
	"update": true, "walk": true, "welcome": true, "wrap": true,
}

// LowerFirst lowercases the first letter of s when its first word is a
// capitalized common verb ("Align on decisions"). Anything else, including
// "I", names, and acronyms, is returned unchanged.
func LowerFirst(s string) string {
	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
	if end < 0 {
		end = len(s)
	}
	word := s[:end]
	if word == "" || word != titleWord(word) || !openers[strings.ToLower(word)] {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

// titleWord returns word with only its first letter upper-case.
func titleWord(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}

// Bare returns s without trailing whitespace and sentence punctuation
// (".", "!", "?", "…"). Text made only of punctuation is returned as-is.
func Bare(s string) string {
	out := strings.TrimRightFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(".!?…", r)
	})
	if out == "" {
		return s
	}
	return out
}
