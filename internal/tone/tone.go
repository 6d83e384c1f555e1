// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tone maps each declared tone to its phrase bank: the openers,
// connectors, closings, adjectives, and keyword registers that both
// generators draw from. The mapping is checked for completeness when the
// package initializes, so a tone without a bank fails at startup rather
// than at request time.
package tone

import (
	"fmt"
	"hash/fnv"
	"slices"
	"strings"

	"github.com/pdiddy/copy-engine/pkg/types"
)

// Bank is the phrase inventory for one tone. Frame fields are Liquid
// templates rendered by the generators; everything else is literal text.
type Bank struct {
	Tone types.Tone

	// Label and Helper describe the tone in pickers.
	Label  string
	Helper string

	// Email phrasing.
	Greeting        string
	Opener          string
	Restate         string
	Connector       string
	Detail          string
	CTALead         string
	Closing         string
	PreviewRegister string

	// SubjectFrames hold the direct, question, and urgency subject-line
	// templates, in that order. Each binds {{ subject }}, possibly through
	// a filter such as {{ subject | bare }}.
	SubjectFrames []string

	// Social phrasing.
	Hook string

	// HeadlineFrame binds {{ campaign }} and {{ adjective }}.
	HeadlineFrame string

	// Adjectives color headline and body language.
	Adjectives []string

	// Keywords is the moodboard register.
	Keywords []string

	// Hashtags is the social hashtag register.
	Hashtags []string
}

// Adjective picks one of the bank's adjectives, stable for a given seed.
func (b Bank) Adjective(seed string) string {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(seed)))
	return b.Adjectives[int(h.Sum32()%uint32(len(b.Adjectives)))]
}

func (b Bank) clone() Bank {
	b.SubjectFrames = slices.Clone(b.SubjectFrames)
	b.Adjectives = slices.Clone(b.Adjectives)
	b.Keywords = slices.Clone(b.Keywords)
	b.Hashtags = slices.Clone(b.Hashtags)
	return b
}

// PhrasesFor returns the bank for t. The second result is false only for a
// tone outside types.Tones; every declared tone resolves.
func PhrasesFor(t types.Tone) (Bank, bool) {
	b, ok := banks[t]
	if !ok {
		return Bank{}, false
	}
	return b.clone(), true
}

// All returns every bank in palette order.
func All() []Bank {
	out := make([]Bank, 0, len(types.Tones))
	for _, t := range types.Tones {
		out = append(out, banks[t].clone())
	}
	return out
}

func init() {
	if err := checkBanks(banks); err != nil {
		panic(err)
	}
}

// subjectFrameCount is the number of subject-line framings every bank
// supplies: direct, question, urgency.
const subjectFrameCount = 3

// checkBanks verifies that m holds a complete bank for every declared tone
// and nothing else.
func checkBanks(m map[types.Tone]Bank) error {
	if len(m) != len(types.Tones) {
		return fmt.Errorf("tone banks: have %d banks for %d tones", len(m), len(types.Tones))
	}
	for _, t := range types.Tones {
		b, ok := m[t]
		if !ok {
			return fmt.Errorf("tone banks: no bank for %q", t)
		}
		if b.Tone != t {
			return fmt.Errorf("tone banks: bank for %q is labeled %q", t, b.Tone)
		}
		fields := map[string]string{
			"label": b.Label, "helper": b.Helper, "greeting": b.Greeting,
			"opener": b.Opener, "restate": b.Restate, "connector": b.Connector,
			"detail": b.Detail, "cta lead": b.CTALead, "closing": b.Closing,
			"preview register": b.PreviewRegister, "hook": b.Hook,
		}
		for name, v := range fields {
			if strings.TrimSpace(v) == "" {
				return fmt.Errorf("tone banks: %q has empty %s", t, name)
			}
		}
		if len(b.SubjectFrames) != subjectFrameCount {
			return fmt.Errorf("tone banks: %q has %d subject frames, want %d", t, len(b.SubjectFrames), subjectFrameCount)
		}
		for _, f := range b.SubjectFrames {
			if !strings.Contains(f, "{{ subject") {
				return fmt.Errorf("tone banks: %q subject frame %q does not bind subject", t, f)
			}
		}
		if !strings.Contains(b.HeadlineFrame, "{{ campaign }}") {
			return fmt.Errorf("tone banks: %q headline frame does not bind campaign", t)
		}
		if len(b.Adjectives) == 0 || len(b.Keywords) < 4 || len(b.Hashtags) < 2 {
			return fmt.Errorf("tone banks: %q needs adjectives, at least 4 keywords and 2 hashtags", t)
		}
	}
	return nil
}
