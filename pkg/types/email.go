// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// EmailRequest is a validated request for email copy. SubjectIdea,
// Objective, and CallToAction are non-empty by the time a generator sees it.
type EmailRequest struct {
	SenderName    string
	RecipientName string
	SubjectIdea   string
	Objective     string
	Tone          Tone
	CallToAction  string
}

// EmailResult is the generated email copy. Field names on the wire follow
// the web client's format.
type EmailResult struct {
	// SubjectLine holds two or more distinct subject-line variants.
	SubjectLine []string `json:"subjectLine" yaml:"subject_line"`

	// PreviewText is the single inbox-preview sentence.
	PreviewText string `json:"previewText" yaml:"preview_text"`

	// Intro is the salutation line addressed to the recipient.
	Intro string `json:"intro" yaml:"intro"`

	// Body holds the ordered body paragraphs. Exactly one of them is built
	// around the call to action.
	Body []string `json:"body" yaml:"body"`

	// Signoff is the closing register followed by the sender's name.
	Signoff string `json:"signoff" yaml:"signoff"`
}
