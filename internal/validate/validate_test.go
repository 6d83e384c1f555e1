// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/copy-engine/pkg/types"
)

func emailPayload() types.RawPayload {
	return types.RawPayload{
		SenderName:    " Ava ",
		RecipientName: "Jordan",
		SubjectIdea:   "Sprint recap",
		Objective:     "align on decisions",
		Tone:          "professional",
		CallToAction:  "Approve by Thursday",
	}
}

func socialPayload() types.RawPayload {
	return types.RawPayload{
		CampaignName:   "Velocity Sprint",
		KeyMessage:     "ship faster",
		Tone:           "bold",
		TargetAudience: "founders",
		Platforms:      []string{"linkedin", " TikTok "},
		URL:            "https://x.io",
	}
}

func TestEmail(t *testing.T) {
	got, err := Email(emailPayload())
	require.NoError(t, err)
	assert.Equal(t, types.EmailRequest{
		SenderName:    "Ava",
		RecipientName: "Jordan",
		SubjectIdea:   "Sprint recap",
		Objective:     "align on decisions",
		Tone:          types.ToneProfessional,
		CallToAction:  "Approve by Thursday",
	}, got)
}

func TestEmailRejections(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(p *types.RawPayload)
		wantKind  types.ErrorKind
		wantField string
	}{
		{name: "unsupported tone", mutate: func(p *types.RawPayload) { p.Tone = "sarcastic" }, wantKind: types.ErrUnsupportedTone, wantField: "tone"},
		{name: "missing tone", mutate: func(p *types.RawPayload) { p.Tone = "" }, wantKind: types.ErrMissingField, wantField: "tone"},
		{name: "missing subject", mutate: func(p *types.RawPayload) { p.SubjectIdea = "  " }, wantKind: types.ErrMissingField, wantField: "subjectIdea"},
		{name: "missing objective", mutate: func(p *types.RawPayload) { p.Objective = "" }, wantKind: types.ErrMissingField, wantField: "objective"},
		{name: "missing cta", mutate: func(p *types.RawPayload) { p.CallToAction = "" }, wantKind: types.ErrMissingField, wantField: "callToAction"},
		{
			name: "shape checked before tone",
			mutate: func(p *types.RawPayload) {
				p.Objective = ""
				p.Tone = "sarcastic"
			},
			wantKind:  types.ErrMissingField,
			wantField: "objective",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := emailPayload()
			tt.mutate(&p)
			_, err := Email(p)
			require.Error(t, err)

			var verr *types.Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantKind, verr.Kind)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.True(t, verr.Validation())
		})
	}
}

func TestEmailOptionalNames(t *testing.T) {
	p := emailPayload()
	p.SenderName = ""
	p.RecipientName = ""
	got, err := Email(p)
	require.NoError(t, err)
	assert.Empty(t, got.SenderName)
	assert.Empty(t, got.RecipientName)
}

func TestSocial(t *testing.T) {
	got, err := Social(socialPayload())
	require.NoError(t, err)
	assert.Equal(t, "Velocity Sprint", got.CampaignName)
	assert.Equal(t, types.ToneBold, got.Tone)
	assert.Equal(t, []string{"linkedin", "TikTok"}, got.Platforms)
	link, ok := got.URL.Get()
	assert.True(t, ok)
	assert.Equal(t, "https://x.io", link)
}

func TestSocialWithoutURL(t *testing.T) {
	p := socialPayload()
	p.URL = "  "
	got, err := Social(p)
	require.NoError(t, err)
	assert.False(t, got.URL.Present())
}

func TestSocialRejections(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(p *types.RawPayload)
		wantKind  types.ErrorKind
		wantField string
	}{
		{name: "unsupported tone", mutate: func(p *types.RawPayload) { p.Tone = "sarcastic" }, wantKind: types.ErrUnsupportedTone, wantField: "tone"},
		{name: "missing campaign", mutate: func(p *types.RawPayload) { p.CampaignName = "" }, wantKind: types.ErrMissingField, wantField: "campaignName"},
		{name: "missing message", mutate: func(p *types.RawPayload) { p.KeyMessage = "" }, wantKind: types.ErrMissingField, wantField: "keyMessage"},
		{name: "nil platforms", mutate: func(p *types.RawPayload) { p.Platforms = nil }, wantKind: types.ErrNoPlatforms, wantField: "platforms"},
		{name: "empty platforms", mutate: func(p *types.RawPayload) { p.Platforms = []string{} }, wantKind: types.ErrNoPlatforms, wantField: "platforms"},
		{name: "only blank platforms", mutate: func(p *types.RawPayload) { p.Platforms = []string{" ", ""} }, wantKind: types.ErrNoPlatforms, wantField: "platforms"},
		{name: "one blank platform", mutate: func(p *types.RawPayload) { p.Platforms = []string{"linkedin", " "} }, wantKind: types.ErrInvalidField, wantField: "platforms[1]"},
		{name: "relative url", mutate: func(p *types.RawPayload) { p.URL = "/launch" }, wantKind: types.ErrInvalidField, wantField: "url"},
		{name: "non-http url", mutate: func(p *types.RawPayload) { p.URL = "ftp://x.io/file" }, wantKind: types.ErrInvalidField, wantField: "url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := socialPayload()
			tt.mutate(&p)
			_, err := Social(p)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, types.KindOf(err))

			var verr *types.Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestUnknownPlatformPassesValidation(t *testing.T) {
	p := socialPayload()
	p.Platforms = []string{"Mastodon"}
	got, err := Social(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mastodon"}, got.Platforms)
}

func TestDecodeAndEnvelope(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantKind types.RequestKind
		wantErr  types.ErrorKind
	}{
		{
			name:     "email",
			body:     `{"kind":"email","payload":{"senderName":"Ava","recipientName":"Jordan","subjectIdea":"Sprint recap","objective":"align on decisions","tone":"professional","callToAction":"Approve by Thursday"}}`,
			wantKind: types.KindEmail,
		},
		{
			name:     "social",
			body:     `{"kind":"social","payload":{"campaignName":"Velocity Sprint","keyMessage":"ship faster","tone":"bold","targetAudience":"founders","platforms":["linkedin","tiktok"],"url":"https://x.io"}}`,
			wantKind: types.KindSocial,
		},
		{
			name:    "sarcastic tone",
			body:    `{"kind":"email","payload":{"subjectIdea":"a","objective":"b","callToAction":"c","tone":"sarcastic"}}`,
			wantErr: types.ErrUnsupportedTone,
		},
		{name: "not json", body: `{kind: email`, wantErr: types.ErrMalformed},
		{name: "wrong payload type", body: `{"kind":"email","payload":[1,2]}`, wantErr: types.ErrMalformed},
		{name: "missing kind", body: `{"payload":{}}`, wantErr: types.ErrMalformed},
		{name: "unknown kind", body: `{"kind":"sms","payload":{}}`, wantErr: types.ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := Decode([]byte(tt.body))
			if err == nil {
				var req types.Request
				req, err = Envelope(env)
				if tt.wantErr == "" {
					require.NoError(t, err)
					assert.Equal(t, tt.wantKind, req.Kind)
					return
				}
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, types.KindOf(err))
		})
	}
}

func TestEnvelopeSetsExactlyOneRequest(t *testing.T) {
	req, err := Envelope(types.Envelope{Kind: "Email", Payload: emailPayload()})
	require.NoError(t, err)
	assert.NotNil(t, req.Email)
	assert.Nil(t, req.Social)

	req, err = Envelope(types.Envelope{Kind: types.KindSocial, Payload: socialPayload()})
	require.NoError(t, err)
	assert.Nil(t, req.Email)
	assert.NotNil(t, req.Social)
}
