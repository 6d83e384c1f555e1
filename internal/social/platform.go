// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package social

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/copy-engine/internal/tmpl"
	"github.com/pdiddy/copy-engine/internal/tone"
	"github.com/pdiddy/copy-engine/pkg/types"
)

// unspecifiedPlatform names a breakdown requested with a blank identifier.
const unspecifiedPlatform = "unspecified"

// post carries the request-level values every platform renders from.
type post struct {
	bank      tone.Bank
	campaign  string
	message   string
	audience  string
	adjective string
	url       string
	hashtags  []string
}

// profile is the template family for one platform.
type profile struct {
	label       string
	linksInline bool
	maxHashtags int

	// sep joins the rendered sections of the primary copy.
	sep      string
	sections []*tmpl.Template
	notes    []*tmpl.Template

	// frame, when set, reshapes the rendered sections (lead first) into the
	// final copy and may add notes.
	frame func(parts []string, p post) (string, []string)
}

func mustParseAll(name string, srcs ...string) []*tmpl.Template {
	out := make([]*tmpl.Template, len(srcs))
	for i, src := range srcs {
		out[i] = tmpl.MustParse(fmt.Sprintf("social/%s/%d", name, i), src)
	}
	return out
}

const bioNote = `{% if bio_url != "" %}Raw links are not clickable in {{ label }} captions: put {{ bio_url }} in the profile bio.{% endif %}`

var profiles = map[string]*profile{
	"linkedin": {
		label:       "LinkedIn",
		linksInline: true,
		maxHashtags: 3,
		sep:         "\n\n",
		sections: mustParseAll("linkedin",
			"{{ hook }}",
			"{{ message | sentence }}",
			"{{ campaign }} is built for {{ audience }}, with a {{ adjective }} approach from day one.",
			`{% if url != "" %}Learn more: {{ url }}{% endif %}`,
			"{{ hashtags }}",
		),
		notes: mustParseAll("linkedin/notes",
			"Hashtags: {{ hashtags }} (keep to 3 to 5).",
			`Keep the hook above the "see more" fold, roughly the first 140 characters.`,
			"Post Tuesday to Thursday mornings and reply to comments within the first hour.",
		),
	},
	"twitter": {
		label:       "X (Twitter)",
		linksInline: true,
		maxHashtags: 2,
		sep:         " ",
		sections: mustParseAll("twitter",
			"{{ hook }} {{ message | sentence }}",
			"{{ url }}",
			"{{ hashtags }}",
		),
		notes: mustParseAll("twitter/notes",
			"Hashtags: {{ hashtags }} (no more than 2).",
			"Pin the lead post for the campaign window and quote-post it with results.",
		),
		frame: frameTweet,
	},
	"instagram": {
		label:       "Instagram",
		maxHashtags: 8,
		sep:         "\n\n",
		sections: mustParseAll("instagram",
			"{{ campaign }}: {{ message | sentence }}",
			"{{ adjective | capitalize }} energy for {{ audience }}.",
			"{{ link_note }}",
			"{{ hashtags }}",
		),
		notes: mustParseAll("instagram/notes",
			"Hashtags: place {{ hashtags }} in the caption or the first comment.",
			"Lead with the visual: a carousel or Reel with a {{ adjective }} look; the first caption line is the hook.",
			bioNote,
			"Share to Stories with a link sticker.",
		),
	},
	"facebook": {
		label:       "Facebook",
		linksInline: true,
		maxHashtags: 2,
		sep:         "\n\n",
		sections: mustParseAll("facebook",
			"{{ hook }} {{ message | sentence }}",
			"{{ campaign }} is made for {{ audience }}. What would you do with it?",
			"{{ url }}",
			"{{ hashtags }}",
		),
		notes: mustParseAll("facebook/notes",
			"Hashtags: {{ hashtags }} (1 or 2 at most).",
			"End with a question to invite comments from {{ audience }}.",
			"Native video or a single strong image outperforms link-only posts.",
		),
	},
	"tiktok": {
		label:       "TikTok",
		maxHashtags: 5,
		sep:         "\n",
		sections: mustParseAll("tiktok",
			"Hook (0-3s): {{ hook }} {{ campaign }}.",
			"Beat (3-20s): {{ message | sentence }}",
			"Payoff (20-30s): Made for {{ audience }}. {{ link_note }}",
			"Caption: {{ hashtags }}",
		),
		notes: mustParseAll("tiktok/notes",
			"Hashtags: {{ hashtags }} in the caption.",
			"Land the hook in the first 3 seconds and keep the cut between 21 and 34 seconds.",
			"Pick a trending sound that fits the {{ adjective }} tone and add on-screen captions.",
			bioNote,
		),
	},
}

// genericProfile serves identifiers with no profile of their own.
var genericProfile = &profile{
	linksInline: true,
	maxHashtags: 3,
	sep:         "\n\n",
	sections: mustParseAll("generic",
		"{{ campaign }}: {{ message | sentence }}",
		"{{ url }}",
		"{{ hashtags }}",
	),
	notes: mustParseAll("generic/notes",
		"Hashtags: {{ hashtags }}.",
		"Adapt length and format to {{ label }} conventions before posting.",
		`{% if url != "" %}Check that {{ label }} renders inline links; move the link to the profile if it does not.{% endif %}`,
	),
}

// aliases maps alternate identifiers onto profile keys.
var aliases = map[string]string{
	"x":  "twitter",
	"ig": "instagram",
	"fb": "facebook",
}

// lookupPlatform normalizes raw and returns its identifier and profile.
// Unknown identifiers resolve to the generic profile.
func lookupPlatform(raw string) (string, *profile) {
	id := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := aliases[id]; ok {
		id = canonical
	}
	if id == "" {
		id = unspecifiedPlatform
	}
	if p, ok := profiles[id]; ok {
		return id, p
	}
	return id, genericProfile
}

// Known reports whether raw names a platform with its own profile.
func Known(raw string) bool {
	_, p := lookupPlatform(raw)
	return p != genericProfile
}

// Label returns the display name for raw, or its normalized identifier when
// the platform has no profile of its own.
func Label(raw string) string {
	id, p := lookupPlatform(raw)
	if p.label == "" {
		return id
	}
	return p.label
}

// Platform describes a supported platform for listings.
type Platform struct {
	ID          string   `json:"id" yaml:"id"`
	Label       string   `json:"label" yaml:"label"`
	LinksInline bool     `json:"linksInline" yaml:"links_inline"`
	MaxHashtags int      `json:"maxHashtags" yaml:"max_hashtags"`
	Aliases     []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// Platforms lists every platform with its own profile, sorted by ID.
func Platforms() []Platform {
	out := make([]Platform, 0, len(profiles))
	for id, p := range profiles {
		pl := Platform{ID: id, Label: p.label, LinksInline: p.linksInline, MaxHashtags: p.maxHashtags}
		for alias, target := range aliases {
			if target == id {
				pl.Aliases = append(pl.Aliases, alias)
			}
		}
		sort.Strings(pl.Aliases)
		out = append(out, pl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (prof *profile) bindings(id string, p post) tmpl.Bindings {
	label := prof.label
	if label == "" {
		label = id
	}
	b := tmpl.Bindings{
		"platform":  id,
		"label":     label,
		"hook":      p.bank.Hook,
		"campaign":  p.campaign,
		"message":   p.message,
		"audience":  p.audience,
		"adjective": p.adjective,
		"hashtags":  strings.Join(firstN(p.hashtags, prof.maxHashtags), " "),
		"url":       "",
		"bio_url":   "",
		"link_note": "",
	}
	if p.url != "" {
		if prof.linksInline {
			b["url"] = p.url
		} else {
			b["bio_url"] = p.url
			b["link_note"] = "Link in bio."
		}
	}
	return b
}

// build renders the breakdown for the platform identified by id.
func (prof *profile) build(id string, p post) (types.PlatformBreakdown, error) {
	b := prof.bindings(id, p)

	parts, err := renderNonBlank(prof.sections, b)
	if err != nil {
		return types.PlatformBreakdown{}, err
	}
	if len(parts) == 0 {
		return types.PlatformBreakdown{}, fmt.Errorf("primary copy is empty")
	}
	notes, err := renderNonBlank(prof.notes, b)
	if err != nil {
		return types.PlatformBreakdown{}, err
	}

	text := strings.Join(parts, prof.sep)
	if prof.frame != nil {
		var extra []string
		text, extra = prof.frame(parts, p)
		notes = append(notes, extra...)
	}

	return types.PlatformBreakdown{
		Platform:     id,
		PrimaryCopy:  text,
		SupportNotes: notes,
	}, nil
}

// renderNonBlank renders each template and keeps the non-blank outputs,
// trimmed, in order.
func renderNonBlank(ts []*tmpl.Template, b tmpl.Bindings) ([]string, error) {
	var out []string
	for _, t := range ts {
		s, err := t.Render(b)
		if err != nil {
			return nil, err
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}
