// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tone

import "github.com/pdiddy/copy-engine/pkg/types"

var banks = map[types.Tone]Bank{
	types.ToneProfessional: {
		Tone:            types.ToneProfessional,
		Label:           "Professional",
		Helper:          "Executive-ready",
		Greeting:        "Hi",
		Opener:          "I'm writing so we can",
		Restate:         "The goal is straightforward:",
		Connector:       "To keep momentum on",
		Detail:          "I've outlined the key points so the next steps are clear.",
		CTALead:         "Next step:",
		Closing:         "Best regards",
		PreviewRegister: "A concise update to help us",
		SubjectFrames: []string{
			"{{ subject | bare }}: key takeaways",
			"Can we align on {{ subject | bare }}?",
			"Action needed: {{ subject }}",
		},
		Hook:          "Here's what we've learned:",
		HeadlineFrame: "{{ campaign }}: a {{ adjective }} path forward",
		Adjectives:    []string{"clear", "focused", "strategic"},
		Keywords:      []string{"clean lines", "navy and slate", "data-driven", "executive calm", "structured grids"},
		Hashtags:      []string{"#Leadership", "#Strategy", "#Growth"},
	},
	types.ToneFriendly: {
		Tone:            types.ToneFriendly,
		Label:           "Friendly",
		Helper:          "Approachable and upbeat",
		Greeting:        "Hey",
		Opener:          "I wanted to reach out so we can",
		Restate:         "Here's what I'm hoping we can do:",
		Connector:       "Quick context on",
		Detail:          "I pulled together the highlights so it's easy to catch up.",
		CTALead:         "When you get a sec:",
		Closing:         "Cheers",
		PreviewRegister: "A friendly note so we can",
		SubjectFrames: []string{
			"{{ subject | bare }} (quick update)",
			"Got a minute for {{ subject | bare }}?",
			"Quick favor: {{ subject }}",
		},
		Hook:          "Quick story time:",
		HeadlineFrame: "{{ campaign }}: {{ adjective }} and ready to share",
		Adjectives:    []string{"warm", "easygoing", "upbeat"},
		Keywords:      []string{"sunlit", "soft pastels", "candid smiles", "coffee-shop warmth", "hand-drawn notes"},
		Hashtags:      []string{"#Community", "#GoodVibes", "#TeamWork"},
	},
	types.ToneBold: {
		Tone:            types.ToneBold,
		Label:           "Bold",
		Helper:          "High-energy",
		Greeting:        "Hi",
		Opener:          "let's move fast and",
		Restate:         "Here's the play:",
		Connector:       "Here's the bottom line on",
		Detail:          "No fluff, just what matters and what happens next.",
		CTALead:         "Your move:",
		Closing:         "Let's go",
		PreviewRegister: "Big moves ahead. Let's",
		SubjectFrames: []string{
			"{{ subject | bare }}: let's make it happen",
			"Ready to win on {{ subject | bare }}?",
			"Now or never: {{ subject }}",
		},
		Hook:          "Stop scrolling.",
		HeadlineFrame: "{{ campaign }}: {{ adjective }} by design",
		Adjectives:    []string{"fearless", "high-voltage", "unstoppable"},
		Keywords:      []string{"high contrast", "electric accents", "bold typography", "kinetic motion", "neon edges"},
		Hashtags:      []string{"#GameChanger", "#BuildInPublic", "#Momentum"},
	},
	types.TonePlayful: {
		Tone:            types.TonePlayful,
		Label:           "Playful",
		Helper:          "Creative spark",
		Greeting:        "Hiya",
		Opener:          "guess what? It's time to",
		Restate:         "The master plan (drumroll, please):",
		Connector:       "Plot twist on",
		Detail:          "I promise this is more fun than another status meeting.",
		CTALead:         "Your mission, should you choose to accept it:",
		Closing:         "High fives",
		PreviewRegister: "Psst! A little nudge to",
		SubjectFrames: []string{
			"{{ subject | bare }} (the fun version)",
			"Who's ready for {{ subject | bare }}?",
			"Don't miss out: {{ subject }}",
		},
		Hook:          "Okay, hear us out:",
		HeadlineFrame: "{{ campaign }}: the {{ adjective }} edition",
		Adjectives:    []string{"delightful", "cheeky", "spirited"},
		Keywords:      []string{"confetti pops", "bright gradients", "doodle overlays", "playful motion", "sticker art"},
		Hashtags:      []string{"#JustForFun", "#SmallWins", "#Creative"},
	},
	types.ToneEmpathetic: {
		Tone:            types.ToneEmpathetic,
		Label:           "Empathetic",
		Helper:          "Supportive",
		Greeting:        "Hi",
		Opener:          "I know things are busy, so I wanted to check in so we can",
		Restate:         "What I'd love for us to do, at a pace that works for you:",
		Connector:       "With care for everything on your plate, a note on",
		Detail:          "Take what's useful and let me know where I can help.",
		CTALead:         "Whenever you're ready:",
		Closing:         "Warmly",
		PreviewRegister: "A thoughtful note to help us",
		SubjectFrames: []string{
			"{{ subject | bare }}: here to help",
			"How are you feeling about {{ subject | bare }}?",
			"A gentle reminder: {{ subject }}",
		},
		Hook:          "We hear you.",
		HeadlineFrame: "{{ campaign }}: a {{ adjective }} step together",
		Adjectives:    []string{"thoughtful", "supportive", "human-centered"},
		Keywords:      []string{"soft natural light", "earth tones", "gentle textures", "real moments", "quiet mornings"},
		Hashtags:      []string{"#InThisTogether", "#Wellbeing", "#Support"},
	},
}
