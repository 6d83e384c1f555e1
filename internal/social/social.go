// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package social generates a multi-platform social plan from a validated
// SocialRequest: a campaign headline, an angle summary, one breakdown per
// requested platform in request order, and a moodboard.
package social

import (
	"strings"

	"github.com/pdiddy/copy-engine/internal/tmpl"
	"github.com/pdiddy/copy-engine/internal/tone"
	"github.com/pdiddy/copy-engine/pkg/types"
)

const (
	// DefaultMoodboardCap is the moodboard size used when none is configured.
	DefaultMoodboardCap = 10

	// MinMoodboardCap and MaxMoodboardCap bound a configured cap.
	MinMoodboardCap = 6
	MaxMoodboardCap = 10

	defaultAudience = "your audience"
)

var angleTpl = tmpl.MustParse("social/angle", "Speak to {{ audience }} with one idea: {{ message | sentence }}")

// headlineFrames holds each tone's compiled headline template.
var headlineFrames = compileHeadlines()

func compileHeadlines() map[types.Tone]*tmpl.Template {
	out := make(map[types.Tone]*tmpl.Template, len(types.Tones))
	for _, b := range tone.All() {
		out[b.Tone] = tmpl.MustParse("social/headline/"+string(b.Tone), b.HeadlineFrame)
	}
	return out
}

// Generator builds social plans. It holds only configuration and is safe
// for concurrent use.
type Generator struct {
	moodboardCap int
}

// New returns a Generator for cfg. A non-positive cap selects
// DefaultMoodboardCap; other values are clamped to
// [MinMoodboardCap, MaxMoodboardCap].
func New(cfg types.SocialConfig) *Generator {
	c := cfg.MoodboardCap
	switch {
	case c <= 0:
		c = DefaultMoodboardCap
	case c < MinMoodboardCap:
		c = MinMoodboardCap
	case c > MaxMoodboardCap:
		c = MaxMoodboardCap
	}
	return &Generator{moodboardCap: c}
}

// MoodboardCap returns the effective moodboard cap.
func (g *Generator) MoodboardCap() int {
	return g.moodboardCap
}

var defaultGenerator = New(types.SocialConfig{})

// GenerateSocialPlan builds a plan for req with the default moodboard cap.
func GenerateSocialPlan(req types.SocialRequest) (types.SocialResult, error) {
	return defaultGenerator.Generate(req)
}

// Generate builds a plan for req. Platform identifiers are matched
// case-insensitively; an unrecognized identifier gets the generic template
// and never fails the request. The result has one breakdown per entry of
// req.Platforms, in the same order.
func (g *Generator) Generate(req types.SocialRequest) (types.SocialResult, error) {
	bank, ok := tone.PhrasesFor(req.Tone)
	if !ok {
		return types.SocialResult{}, types.Internal("no phrase bank for tone %q", req.Tone)
	}
	if len(req.Platforms) == 0 {
		return types.SocialResult{}, types.Internal("no platforms to build breakdowns for")
	}
	campaign := strings.TrimSpace(req.CampaignName)
	message := strings.TrimSpace(req.KeyMessage)
	if campaign == "" || message == "" {
		return types.SocialResult{}, types.Internal("campaign name and key message are required")
	}
	audience := strings.TrimSpace(req.TargetAudience)
	if audience == "" {
		audience = defaultAudience
	}
	url, _ := req.URL.Get()
	url = strings.TrimSpace(url)

	adjective := bank.Adjective(campaign)
	headline, err := headlineFrames[req.Tone].Render(tmpl.Bindings{
		"campaign":  campaign,
		"adjective": adjective,
	})
	if err != nil {
		return types.SocialResult{}, types.Internal("%v", err)
	}
	angle, err := angleTpl.Render(tmpl.Bindings{
		"audience": audience,
		"message":  message,
	})
	if err != nil {
		return types.SocialResult{}, types.Internal("%v", err)
	}

	terms := salientTerms(campaign, message)
	p := post{
		bank:      bank,
		campaign:  campaign,
		message:   message,
		audience:  audience,
		adjective: adjective,
		url:       url,
		hashtags:  hashtagPool(campaign, bank.Hashtags, terms),
	}

	breakdowns := make([]types.PlatformBreakdown, 0, len(req.Platforms))
	for _, raw := range req.Platforms {
		id, prof := lookupPlatform(raw)
		b, err := prof.build(id, p)
		if err != nil {
			return types.SocialResult{}, types.Internal("building %s breakdown: %v", id, err)
		}
		breakdowns = append(breakdowns, b)
	}

	return types.SocialResult{
		CampaignHeadline:   headline,
		AngleSummary:       angle,
		PlatformBreakdowns: breakdowns,
		Moodboard:          moodboard(terms, bank.Keywords, g.moodboardCap),
	}, nil
}
