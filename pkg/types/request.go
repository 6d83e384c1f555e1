// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RequestKind names which generator an envelope is addressed to.
type RequestKind string

const (
	KindEmail  RequestKind = "email"
	KindSocial RequestKind = "social"
)

// Envelope is the raw, untrusted shape of a generation request as it
// arrives over HTTP or from a brief file.
type Envelope struct {
	Kind    RequestKind `json:"kind" yaml:"kind"`
	Payload RawPayload  `json:"payload" yaml:"payload"`
}

// RawPayload is the union of every field either request kind accepts.
// Nothing here has been checked; the validator narrows it into an
// EmailRequest or SocialRequest.
type RawPayload struct {
	// Email fields.
	SenderName    string `json:"senderName,omitempty" yaml:"sender_name,omitempty"`
	RecipientName string `json:"recipientName,omitempty" yaml:"recipient_name,omitempty"`
	SubjectIdea   string `json:"subjectIdea,omitempty" yaml:"subject_idea,omitempty"`
	Objective     string `json:"objective,omitempty" yaml:"objective,omitempty"`
	CallToAction  string `json:"callToAction,omitempty" yaml:"call_to_action,omitempty"`

	// Social fields.
	CampaignName   string   `json:"campaignName,omitempty" yaml:"campaign_name,omitempty"`
	KeyMessage     string   `json:"keyMessage,omitempty" yaml:"key_message,omitempty"`
	TargetAudience string   `json:"targetAudience,omitempty" yaml:"target_audience,omitempty"`
	Platforms      []string `json:"platforms,omitempty" yaml:"platforms,omitempty"`
	URL            string   `json:"url,omitempty" yaml:"url,omitempty"`

	// Shared.
	Tone string `json:"tone,omitempty" yaml:"tone,omitempty"`
}

// Request is a validated request. Exactly one of Email or Social is set,
// matching Kind.
type Request struct {
	Kind   RequestKind
	Email  *EmailRequest
	Social *SocialRequest
}

// Result is the output of whichever generator served a Request. Exactly one
// of Email or Social is set, matching Kind.
type Result struct {
	Kind   RequestKind   `json:"-" yaml:"-"`
	Email  *EmailResult  `json:"-" yaml:"-"`
	Social *SocialResult `json:"-" yaml:"-"`
}

// Value returns the populated result record.
func (r Result) Value() any {
	if r.Kind == KindSocial {
		return r.Social
	}
	return r.Email
}
