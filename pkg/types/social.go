// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SocialRequest is a validated request for a multi-platform social plan.
type SocialRequest struct {
	CampaignName   string
	KeyMessage     string
	Tone           Tone
	TargetAudience string

	// Platforms lists platform identifiers in the order the caller wants
	// breakdowns returned. Never empty after validation.
	Platforms []string

	// URL is the campaign link, if any.
	URL Optional[string]
}

// PlatformBreakdown is the copy and operating notes for one platform.
type PlatformBreakdown struct {
	// Platform is the normalized, lowercase platform identifier.
	Platform string `json:"platform" yaml:"platform"`

	// PrimaryCopy is the ready-to-post text for the platform.
	PrimaryCopy string `json:"primaryCopy" yaml:"primary_copy"`

	// SupportNotes holds short hashtag, cadence, and format hints.
	SupportNotes []string `json:"supportNotes" yaml:"support_notes"`
}

// SocialResult is the generated social plan.
type SocialResult struct {
	CampaignHeadline string `json:"campaignHeadline" yaml:"campaign_headline"`
	AngleSummary     string `json:"angleSummary" yaml:"angle_summary"`

	// PlatformBreakdowns has one entry per requested platform, in request
	// order.
	PlatformBreakdowns []PlatformBreakdown `json:"platformBreakdowns" yaml:"platform_breakdowns"`

	// Moodboard holds deduplicated keywords, at most the configured cap.
	Moodboard []string `json:"moodboard" yaml:"moodboard"`
}
