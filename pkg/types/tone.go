// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for copy-engine: the tone
// enumeration, request and result records, and the typed error.
package types

import "strings"

// Tone selects the register that both generators write in. The set is
// closed: a request whose tone is not one of the constants below never
// reaches a generator.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneBold         Tone = "bold"
	TonePlayful      Tone = "playful"
	ToneEmpathetic   Tone = "empathetic"
)

// Tones lists every declared tone in palette order.
var Tones = []Tone{
	ToneProfessional,
	ToneFriendly,
	ToneBold,
	TonePlayful,
	ToneEmpathetic,
}

// ParseTone matches s against the declared tones, ignoring case and
// surrounding whitespace.
func ParseTone(s string) (Tone, bool) {
	want := Tone(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range Tones {
		if t == want {
			return t, true
		}
	}
	return "", false
}

// Valid reports whether t is one of the declared tones.
func (t Tone) Valid() bool {
	for _, known := range Tones {
		if t == known {
			return true
		}
	}
	return false
}
