// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tmpl

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		src  string
		b    Bindings
		want string
	}{
		{
			name: "plain interpolation",
			src:  "{{ subject }}: where we landed",
			b:    Bindings{"subject": "Sprint recap"},
			want: "Sprint recap: where we landed",
		},
		{
			name: "sentence filter adds period",
			src:  "{{ objective | sentence }}",
			b:    Bindings{"objective": "align on decisions"},
			want: "align on decisions.",
		},
		{
			name: "sentence filter keeps question mark",
			src:  "{{ cta | sentence }}",
			b:    Bindings{"cta": "Could you approve by Thursday?"},
			want: "Could you approve by Thursday?",
		},
		{
			name: "fallback on blank",
			src:  "Hi {{ recipient | fallback: \"there\" }},",
			b:    Bindings{"recipient": "  "},
			want: "Hi there,",
		},
		{
			name: "fallback on missing binding",
			src:  "Hi {{ recipient | fallback: \"there\" }},",
			b:    Bindings{},
			want: "Hi there,",
		},
		{
			name: "fallback keeps value",
			src:  "Hi {{ recipient | fallback: \"there\" }},",
			b:    Bindings{"recipient": "Jordan"},
			want: "Hi Jordan,",
		},
		{
			name: "bare strips trailing question mark",
			src:  "Can we align on {{ subject | bare }}?",
			b:    Bindings{"subject": "Ready to launch?"},
			want: "Can we align on Ready to launch?",
		},
		{
			name: "user text is not reinterpreted",
			src:  "{{ subject }}",
			b:    Bindings{"subject": "{{ not a tag }}"},
			want: "{{ not a tag }}",
		},
		{
			name: "bound whitespace is preserved",
			src:  "[{{ a }}]",
			b:    Bindings{"a": " x "},
			want: "[ x ]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl, err := Parse(tt.name, tt.src)
			require.NoError(t, err)
			got, err := tpl.Render(tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse("broken", "{% if ready %}never closed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("broken", "{% for x in xs %}never closed") })
}

func TestSentence(t *testing.T) {
	assert.Equal(t, "", Sentence(""))
	assert.Equal(t, "done.", Sentence("done"))
	assert.Equal(t, "done.", Sentence("done.  "))
	assert.Equal(t, "done!", Sentence("done!"))
	assert.Equal(t, "wait…", Sentence("wait…"))
}

func TestLowerFirst(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Align on decisions", "align on decisions"},
		{"Get sign-off on the launch", "get sign-off on the launch"},
		{"ship faster", "ship faster"},
		{"I need sign-off on the Q3 budget", "I need sign-off on the Q3 budget"},
		{"Acme's renewal closes Friday", "Acme's renewal closes Friday"},
		{"Jordan's team to approve", "Jordan's team to approve"},
		{"API rollout", "API rollout"},
		{"ALIGN now", "ALIGN now"},
		{"Alignment review", "Alignment review"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LowerFirst(tt.in), tt.in)
	}
}

func TestBare(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Ready to launch?", "Ready to launch"},
		{"Ship it!! ", "Ship it"},
		{"Q3 plan...", "Q3 plan"},
		{"Almost there…", "Almost there"},
		{"v2.0 rollout", "v2.0 rollout"},
		{"?", "?"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Bare(tt.in), tt.in)
	}
}

func TestRenderConcurrent(t *testing.T) {
	tpl := MustParse("concurrent", "{{ n }} ready")
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := tpl.Render(Bindings{"n": i})
			assert.NoError(t, err)
			assert.NotEmpty(t, out)
		}(i)
	}
	wg.Wait()
}
