// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns generation results into documents: Markdown for
// review, HTML for previews, and YAML or JSON for hand-off to other tools.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/copy-engine/internal/social"
	"github.com/pdiddy/copy-engine/internal/tmpl"
	"github.com/pdiddy/copy-engine/pkg/types"
)

var emailDoc = tmpl.MustParse("render/email", `# {{ headline }}

## Subject lines

{% for s in subjects %}{{ forloop.index }}. {{ s }}
{% endfor %}
**Preview:** {{ preview }}

---

{{ intro }}

{% for p in body %}{{ p }}

{% endfor %}{{ signoff }}
`)

var socialDoc = tmpl.MustParse("render/social", `# {{ headline }}

{{ angle }}

{% for b in breakdowns %}## {{ b.label }}

{{ b.copy }}

{% for n in b.notes %}- {{ n }}
{% endfor %}
{% endfor %}## Moodboard

{{ moodboard | join: ", " }}
`)

// ParseFormat returns the OutputFormat named by s. The empty string selects
// Markdown.
func ParseFormat(s string) (types.OutputFormat, error) {
	f := types.OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "", "md":
		return types.OutputMarkdown, nil
	case types.OutputMarkdown, types.OutputHTML, types.OutputYAML, types.OutputJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want markdown, html, yaml, or json)", s)
	}
}

// Markdown renders res as a Markdown document.
func Markdown(res types.Result) (string, error) {
	switch {
	case res.Kind == types.KindEmail && res.Email != nil:
		return emailMarkdown(res.Email)
	case res.Kind == types.KindSocial && res.Social != nil:
		return socialMarkdown(res.Social)
	default:
		return "", fmt.Errorf("nothing to render for kind %q", res.Kind)
	}
}

func emailMarkdown(e *types.EmailResult) (string, error) {
	headline := ""
	if len(e.SubjectLine) > 0 {
		headline = e.SubjectLine[0]
	}
	return emailDoc.Render(tmpl.Bindings{
		"headline": headline,
		"subjects": e.SubjectLine,
		"preview":  e.PreviewText,
		"intro":    e.Intro,
		"body":     e.Body,
		"signoff":  hardBreaks(e.Signoff),
	})
}

func socialMarkdown(s *types.SocialResult) (string, error) {
	breakdowns := make([]map[string]any, len(s.PlatformBreakdowns))
	for i, b := range s.PlatformBreakdowns {
		breakdowns[i] = map[string]any{
			"label": social.Label(b.Platform),
			"copy":  hardBreaks(b.PrimaryCopy),
			"notes": b.SupportNotes,
		}
	}
	return socialDoc.Render(tmpl.Bindings{
		"headline":   s.CampaignHeadline,
		"angle":      s.AngleSummary,
		"breakdowns": breakdowns,
		"moodboard":  s.Moodboard,
	})
}

// hardBreaks keeps single newlines as line breaks in Markdown. Blank lines
// still separate paragraphs.
func hardBreaks(s string) string {
	lines := strings.Split(s, "\n")
	for i := 0; i < len(lines)-1; i++ {
		if lines[i] != "" && lines[i+1] != "" {
			lines[i] += "  "
		}
	}
	return strings.Join(lines, "\n")
}

// HTML renders res as an HTML fragment. Raw HTML in the copy is not passed
// through.
func HTML(res types.Result) (string, error) {
	md, err := Markdown(res)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("converting markdown to HTML: %w", err)
	}
	return buf.String(), nil
}

// Write renders res in format f to w.
func Write(w io.Writer, res types.Result, f types.OutputFormat) error {
	var (
		data []byte
		err  error
	)
	switch f {
	case types.OutputMarkdown:
		var s string
		s, err = Markdown(res)
		data = []byte(s)
	case types.OutputHTML:
		var s string
		s, err = HTML(res)
		data = []byte(s)
	case types.OutputYAML:
		if v := res.Value(); isNil(v) {
			err = fmt.Errorf("nothing to render for kind %q", res.Kind)
		} else if data, err = yaml.Marshal(v); err != nil {
			err = fmt.Errorf("marshaling YAML: %w", err)
		}
	case types.OutputJSON:
		if v := res.Value(); isNil(v) {
			err = fmt.Errorf("nothing to render for kind %q", res.Kind)
		} else if data, err = json.MarshalIndent(v, "", "  "); err != nil {
			err = fmt.Errorf("marshaling JSON: %w", err)
		} else {
			data = append(data, '\n')
		}
	default:
		err = fmt.Errorf("unknown output format %q", f)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func isNil(v any) bool {
	switch r := v.(type) {
	case *types.EmailResult:
		return r == nil
	case *types.SocialResult:
		return r == nil
	default:
		return v == nil
	}
}
