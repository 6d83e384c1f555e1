// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate narrows raw, untrusted generation requests into the
// strict request records the generators accept. Every rejection is a
// *types.Error whose Kind tells a malformed shape apart from an unsupported
// tone, a missing field, or an empty platform list.
package validate

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/pdiddy/copy-engine/pkg/types"
)

// Decode parses a JSON envelope ({"kind": ..., "payload": {...}}).
func Decode(data []byte) (types.Envelope, error) {
	var env types.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return types.Envelope{}, types.NewError(types.ErrMalformed, "", "invalid payload: %v", err)
	}
	return env, nil
}

// Envelope validates env and returns the request it carries.
func Envelope(env types.Envelope) (types.Request, error) {
	kind := types.RequestKind(strings.ToLower(strings.TrimSpace(string(env.Kind))))
	switch kind {
	case types.KindEmail:
		req, err := Email(env.Payload)
		if err != nil {
			return types.Request{}, err
		}
		return types.Request{Kind: kind, Email: &req}, nil
	case types.KindSocial:
		req, err := Social(env.Payload)
		if err != nil {
			return types.Request{}, err
		}
		return types.Request{Kind: kind, Social: &req}, nil
	case "":
		return types.Request{}, types.NewError(types.ErrMalformed, "kind", "request kind is required")
	default:
		return types.Request{}, types.NewError(types.ErrMalformed, "kind", "unknown agent kind %q", env.Kind)
	}
}

// field names a raw value by its wire name for error reporting.
type field struct {
	name  string
	value string
}

// requireAll returns a missing-field error for the first blank field.
func requireAll(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return types.NewError(types.ErrMissingField, f.name, "%s is required", f.name)
		}
	}
	return nil
}

func parseTone(raw string) (types.Tone, error) {
	if strings.TrimSpace(raw) == "" {
		return "", types.NewError(types.ErrMissingField, "tone", "tone is required")
	}
	t, ok := types.ParseTone(raw)
	if !ok {
		return "", types.NewError(types.ErrUnsupportedTone, "tone", "unsupported tone %q", raw)
	}
	return t, nil
}

// Email validates an email payload. Subject idea, objective, call to action,
// and tone are required; sender and recipient names are optional.
func Email(raw types.RawPayload) (types.EmailRequest, error) {
	if err := requireAll(
		field{"subjectIdea", raw.SubjectIdea},
		field{"objective", raw.Objective},
		field{"callToAction", raw.CallToAction},
	); err != nil {
		return types.EmailRequest{}, err
	}
	t, err := parseTone(raw.Tone)
	if err != nil {
		return types.EmailRequest{}, err
	}
	return types.EmailRequest{
		SenderName:    strings.TrimSpace(raw.SenderName),
		RecipientName: strings.TrimSpace(raw.RecipientName),
		SubjectIdea:   strings.TrimSpace(raw.SubjectIdea),
		Objective:     strings.TrimSpace(raw.Objective),
		Tone:          t,
		CallToAction:  strings.TrimSpace(raw.CallToAction),
	}, nil
}

// Social validates a social payload. Campaign name, key message, tone, and
// at least one platform are required; audience and URL are optional. A
// present URL must be an absolute http or https URL.
func Social(raw types.RawPayload) (types.SocialRequest, error) {
	if err := requireAll(
		field{"campaignName", raw.CampaignName},
		field{"keyMessage", raw.KeyMessage},
	); err != nil {
		return types.SocialRequest{}, err
	}
	t, err := parseTone(raw.Tone)
	if err != nil {
		return types.SocialRequest{}, err
	}
	platforms, err := parsePlatforms(raw.Platforms)
	if err != nil {
		return types.SocialRequest{}, err
	}
	link, err := parseURL(raw.URL)
	if err != nil {
		return types.SocialRequest{}, err
	}
	return types.SocialRequest{
		CampaignName:   strings.TrimSpace(raw.CampaignName),
		KeyMessage:     strings.TrimSpace(raw.KeyMessage),
		Tone:           t,
		TargetAudience: strings.TrimSpace(raw.TargetAudience),
		Platforms:      platforms,
		URL:            link,
	}, nil
}

// parsePlatforms trims each identifier and keeps request order. Case is
// left to the generator, which matches identifiers case-insensitively.
func parsePlatforms(raw []string) ([]string, error) {
	out := make([]string, 0, len(raw))
	blank := -1
	for i, p := range raw {
		p = strings.TrimSpace(p)
		if p == "" {
			if blank < 0 {
				blank = i
			}
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, types.NewError(types.ErrNoPlatforms, "platforms", "at least one platform is required")
	}
	if blank >= 0 {
		name := fmt.Sprintf("platforms[%d]", blank)
		return nil, types.NewError(types.ErrInvalidField, name, "platform identifier is blank")
	}
	return out, nil
}

func parseURL(raw string) (types.Optional[string], error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return types.None[string](), nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return types.None[string](), types.NewError(types.ErrInvalidField, "url", "url %q must be an absolute http(s) URL", raw)
	}
	return types.Some(raw), nil
}
