// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package email generates email copy from a validated EmailRequest: subject
// variants, preview text, an intro line, body paragraphs, and a sign-off.
// Output is a pure function of the request.
package email

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/copy-engine/internal/tmpl"
	"github.com/pdiddy/copy-engine/internal/tone"
	"github.com/pdiddy/copy-engine/pkg/types"
)

const (
	// PreviewLimit is the longest preview text, in runes, that fits an inbox
	// preview pane.
	PreviewLimit = 140

	// MinSubjectVariants is the fewest distinct subject lines a result holds.
	MinSubjectVariants = 2

	ellipsis = "…"
)

// An objective that starts with a common verb continues the tone's framing
// ("...so we can align on decisions."). Any other objective, such as one
// opening with "I" or a name, is kept verbatim as its own sentence.
var (
	previewTpl      = tmpl.MustParse("email/preview", "{{ register }} {{ objective | lowerfirst | sentence }}")
	previewPlainTpl = tmpl.MustParse("email/preview-plain", "{{ objective | sentence }}")
	introTpl        = tmpl.MustParse("email/intro", `{{ greeting }} {{ recipient | fallback: "there" }}, {{ opener }} {{ objective | lowerfirst | sentence }}`)
	introPlainTpl   = tmpl.MustParse("email/intro-plain", `{{ greeting }} {{ recipient | fallback: "there" }}, {{ objective | sentence }}`)
	restateTpl      = tmpl.MustParse("email/restate", "{{ restate }} {{ objective | sentence }}")
	contextTpl      = tmpl.MustParse("email/context", "{{ connector }} {{ subject | bare }}: I want this to feel {{ adjective }}. {{ detail }}")
	ctaTpl          = tmpl.MustParse("email/cta", "{{ lead }} {{ cta }}{{ punct }}")
	signoffTpl      = tmpl.MustParse("email/signoff", "{{ closing }},\n{{ sender | fallback: \"The team\" }}")
)

// subjectFrames holds each tone's compiled subject-line templates.
var subjectFrames = compileSubjectFrames()

func compileSubjectFrames() map[types.Tone][]*tmpl.Template {
	out := make(map[types.Tone][]*tmpl.Template, len(types.Tones))
	for _, b := range tone.All() {
		frames := make([]*tmpl.Template, len(b.SubjectFrames))
		for i, src := range b.SubjectFrames {
			frames[i] = tmpl.MustParse("email/subject/"+string(b.Tone), src)
		}
		out[b.Tone] = frames
	}
	return out
}

// GenerateEmailCopy builds email copy for req. SubjectIdea, Objective, and
// CallToAction must be non-empty and Tone must be declared; otherwise the
// result cannot be assembled and an ErrInternal error is returned. The call
// to action appears verbatim in exactly one body paragraph.
func GenerateEmailCopy(req types.EmailRequest) (types.EmailResult, error) {
	bank, ok := tone.PhrasesFor(req.Tone)
	if !ok {
		return types.EmailResult{}, types.Internal("no phrase bank for tone %q", req.Tone)
	}
	required := []struct{ name, value string }{
		{"subject idea", req.SubjectIdea},
		{"objective", req.Objective},
		{"call to action", req.CallToAction},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return types.EmailResult{}, types.Internal("%s is empty", f.name)
		}
	}

	subject := strings.TrimSpace(req.SubjectIdea)
	objective := strings.TrimSpace(req.Objective)

	subjects, err := subjectLines(req.Tone, subject)
	if err != nil {
		return types.EmailResult{}, err
	}

	introFrame, previewFrame := introTpl, previewTpl
	if !continuesFrame(objective) {
		introFrame, previewFrame = introPlainTpl, previewPlainTpl
	}

	preview, err := previewText(previewFrame, bank, objective)
	if err != nil {
		return types.EmailResult{}, types.Internal("%v", err)
	}

	g := renderer{}
	intro := g.render(introFrame, tmpl.Bindings{
		"greeting":  bank.Greeting,
		"recipient": req.RecipientName,
		"opener":    bank.Opener,
		"objective": objective,
	})
	body := []string{
		g.render(restateTpl, tmpl.Bindings{
			"restate":   bank.Restate,
			"objective": objective,
		}),
		g.render(contextTpl, tmpl.Bindings{
			"connector": bank.Connector,
			"subject":   subject,
			"adjective": bank.Adjective(subject),
			"detail":    bank.Detail,
		}),
		g.render(ctaTpl, tmpl.Bindings{
			"lead":  bank.CTALead,
			"cta":   req.CallToAction,
			"punct": terminalPunct(req.CallToAction),
		}),
	}
	signoff := g.render(signoffTpl, tmpl.Bindings{
		"closing": bank.Closing,
		"sender":  req.SenderName,
	})
	if g.err != nil {
		return types.EmailResult{}, types.Internal("%v", g.err)
	}

	for i, p := range body {
		if strings.TrimSpace(p) == "" {
			return types.EmailResult{}, types.Internal("body paragraph %d is empty", i+1)
		}
	}

	return types.EmailResult{
		SubjectLine: subjects,
		PreviewText: preview,
		Intro:       intro,
		Body:        body,
		Signoff:     signoff,
	}, nil
}

// subjectLines renders every subject frame for t and drops duplicates,
// keeping frame order.
func subjectLines(t types.Tone, subject string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, f := range subjectFrames[t] {
		line, err := f.Render(tmpl.Bindings{"subject": subject})
		if err != nil {
			return nil, types.Internal("%v", err)
		}
		line = strings.TrimSpace(line)
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		out = append(out, line)
	}
	if len(out) < MinSubjectVariants {
		return nil, types.Internal("only %d distinct subject lines for tone %q", len(out), t)
	}
	return out, nil
}

// continuesFrame reports whether objective can follow the tone's opener
// mid-sentence: it already starts lower-case or opens with a common verb.
func continuesFrame(objective string) bool {
	r, _ := utf8.DecodeRuneInString(tmpl.LowerFirst(objective))
	return unicode.IsLower(r)
}

// previewText renders the preview sentence with frame, shortening the
// objective on a word boundary when the sentence would exceed PreviewLimit.
func previewText(frame *tmpl.Template, bank tone.Bank, objective string) (string, error) {
	b := tmpl.Bindings{"register": bank.PreviewRegister, "objective": objective}
	out, err := frame.Render(b)
	if err != nil {
		return "", err
	}
	n := utf8.RuneCountInString(out)
	if n <= PreviewLimit {
		return out, nil
	}

	// Room left for the objective once the frame and the ellipsis are
	// accounted for.
	budget := utf8.RuneCountInString(objective) - (n - PreviewLimit) - utf8.RuneCountInString(ellipsis)
	b["objective"] = truncateWords(objective, budget) + ellipsis
	return frame.Render(b)
}

// truncateWords returns the longest prefix of s, cut at a word boundary,
// that is at most limit runes. A single word longer than limit is cut
// mid-word.
func truncateWords(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !unicode.IsSpace(runes[cut]) {
		cut--
	}
	if cut == 0 {
		cut = limit
	}
	return strings.TrimRightFunc(string(runes[:cut]), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
}

// terminalPunct returns "." when s does not already end a sentence.
func terminalPunct(s string) string {
	trimmed := strings.TrimRightFunc(s, unicode.IsSpace)
	if tmpl.Sentence(trimmed) == trimmed {
		return ""
	}
	return "."
}

// renderer renders a sequence of templates and keeps the first error.
type renderer struct {
	err error
}

func (r *renderer) render(t *tmpl.Template, b tmpl.Bindings) string {
	if r.err != nil {
		return ""
	}
	out, err := t.Render(b)
	if err != nil {
		r.err = err
		return ""
	}
	return out
}
